// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/grammiz/ent/gradeevent"
	"github.com/abhisek/grammiz/ent/llmrequestevent"
	"github.com/abhisek/grammiz/ent/schema"
	"github.com/abhisek/grammiz/ent/sessionevent"
	"github.com/abhisek/grammiz/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	gradeeventMixin := schema.GradeEvent{}.Mixin()
	gradeeventMixinFields0 := gradeeventMixin[0].Fields()
	_ = gradeeventMixinFields0
	gradeeventFields := schema.GradeEvent{}.Fields()
	_ = gradeeventFields
	// gradeeventDescTimestamp is the schema descriptor for timestamp field.
	gradeeventDescTimestamp := gradeeventMixinFields0[1].Descriptor()
	// gradeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	gradeevent.DefaultTimestamp = gradeeventDescTimestamp.Default.(func() time.Time)
	// gradeeventDescSessionID is the schema descriptor for session_id field.
	gradeeventDescSessionID := gradeeventFields[0].Descriptor()
	// gradeevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	gradeevent.SessionIDValidator = gradeeventDescSessionID.Validators[0].(func(string) error)
	// gradeeventDescStage is the schema descriptor for stage field.
	gradeeventDescStage := gradeeventFields[1].Descriptor()
	// gradeevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	gradeevent.StageValidator = gradeeventDescStage.Validators[0].(func(string) error)
	// gradeeventDescDifficulty is the schema descriptor for difficulty field.
	gradeeventDescDifficulty := gradeeventFields[2].Descriptor()
	// gradeevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	gradeevent.DifficultyValidator = gradeeventDescDifficulty.Validators[0].(func(string) error)
	// gradeeventDescSentence is the schema descriptor for sentence field.
	gradeeventDescSentence := gradeeventFields[3].Descriptor()
	// gradeevent.SentenceValidator is a validator for the "sentence" field. It is called by the builders before save.
	gradeevent.SentenceValidator = gradeeventDescSentence.Validators[0].(func(string) error)
	// gradeeventDescFeedback is the schema descriptor for feedback field.
	gradeeventDescFeedback := gradeeventFields[6].Descriptor()
	// gradeevent.DefaultFeedback holds the default value on creation for the feedback field.
	gradeevent.DefaultFeedback = gradeeventDescFeedback.Default.(string)
	// gradeeventDescCorrectData is the schema descriptor for correct_data field.
	gradeeventDescCorrectData := gradeeventFields[7].Descriptor()
	// gradeevent.DefaultCorrectData holds the default value on creation for the correct_data field.
	gradeevent.DefaultCorrectData = gradeeventDescCorrectData.Default.(string)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescDifficulty is the schema descriptor for difficulty field.
	sessioneventDescDifficulty := sessioneventFields[2].Descriptor()
	// sessionevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	sessionevent.DifficultyValidator = sessioneventDescDifficulty.Validators[0].(func(string) error)
	// sessioneventDescSentencesCompleted is the schema descriptor for sentences_completed field.
	sessioneventDescSentencesCompleted := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultSentencesCompleted holds the default value on creation for the sentences_completed field.
	sessionevent.DefaultSentencesCompleted = sessioneventDescSentencesCompleted.Default.(int)
	// sessioneventDescStagesPassed is the schema descriptor for stages_passed field.
	sessioneventDescStagesPassed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultStagesPassed holds the default value on creation for the stages_passed field.
	sessionevent.DefaultStagesPassed = sessioneventDescStagesPassed.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
