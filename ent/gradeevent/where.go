// Code generated by ent, DO NOT EDIT.

package gradeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/grammiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSessionID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldStage, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Sentence applies equality check predicate on the "sentence" field. It's identical to SentenceEQ.
func Sentence(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSentence, v))
}

// Work applies equality check predicate on the "work" field. It's identical to WorkEQ.
func Work(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldWork, v))
}

// Correct applies equality check predicate on the "correct" field. It's identical to CorrectEQ.
func Correct(v bool) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldCorrect, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldFeedback, v))
}

// CorrectData applies equality check predicate on the "correct_data" field. It's identical to CorrectDataEQ.
func CorrectData(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldCorrectData, v))
}

// TimeMs applies equality check predicate on the "time_ms" field. It's identical to TimeMsEQ.
func TimeMs(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimeMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldStage, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldDifficulty, v))
}

// SentenceEQ applies the EQ predicate on the "sentence" field.
func SentenceEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldSentence, v))
}

// SentenceNEQ applies the NEQ predicate on the "sentence" field.
func SentenceNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldSentence, v))
}

// SentenceIn applies the In predicate on the "sentence" field.
func SentenceIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldSentence, vs...))
}

// SentenceNotIn applies the NotIn predicate on the "sentence" field.
func SentenceNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldSentence, vs...))
}

// SentenceGT applies the GT predicate on the "sentence" field.
func SentenceGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldSentence, v))
}

// SentenceGTE applies the GTE predicate on the "sentence" field.
func SentenceGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldSentence, v))
}

// SentenceLT applies the LT predicate on the "sentence" field.
func SentenceLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldSentence, v))
}

// SentenceLTE applies the LTE predicate on the "sentence" field.
func SentenceLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldSentence, v))
}

// SentenceContains applies the Contains predicate on the "sentence" field.
func SentenceContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldSentence, v))
}

// SentenceHasPrefix applies the HasPrefix predicate on the "sentence" field.
func SentenceHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldSentence, v))
}

// SentenceHasSuffix applies the HasSuffix predicate on the "sentence" field.
func SentenceHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldSentence, v))
}

// SentenceEqualFold applies the EqualFold predicate on the "sentence" field.
func SentenceEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldSentence, v))
}

// SentenceContainsFold applies the ContainsFold predicate on the "sentence" field.
func SentenceContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldSentence, v))
}

// WorkEQ applies the EQ predicate on the "work" field.
func WorkEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldWork, v))
}

// WorkNEQ applies the NEQ predicate on the "work" field.
func WorkNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldWork, v))
}

// WorkIn applies the In predicate on the "work" field.
func WorkIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldWork, vs...))
}

// WorkNotIn applies the NotIn predicate on the "work" field.
func WorkNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldWork, vs...))
}

// WorkGT applies the GT predicate on the "work" field.
func WorkGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldWork, v))
}

// WorkGTE applies the GTE predicate on the "work" field.
func WorkGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldWork, v))
}

// WorkLT applies the LT predicate on the "work" field.
func WorkLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldWork, v))
}

// WorkLTE applies the LTE predicate on the "work" field.
func WorkLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldWork, v))
}

// WorkContains applies the Contains predicate on the "work" field.
func WorkContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldWork, v))
}

// WorkHasPrefix applies the HasPrefix predicate on the "work" field.
func WorkHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldWork, v))
}

// WorkHasSuffix applies the HasSuffix predicate on the "work" field.
func WorkHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldWork, v))
}

// WorkEqualFold applies the EqualFold predicate on the "work" field.
func WorkEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldWork, v))
}

// WorkContainsFold applies the ContainsFold predicate on the "work" field.
func WorkContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldWork, v))
}

// CorrectEQ applies the EQ predicate on the "correct" field.
func CorrectEQ(v bool) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldCorrect, v))
}

// CorrectNEQ applies the NEQ predicate on the "correct" field.
func CorrectNEQ(v bool) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldCorrect, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldFeedback, v))
}

// CorrectDataEQ applies the EQ predicate on the "correct_data" field.
func CorrectDataEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldCorrectData, v))
}

// CorrectDataNEQ applies the NEQ predicate on the "correct_data" field.
func CorrectDataNEQ(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldCorrectData, v))
}

// CorrectDataIn applies the In predicate on the "correct_data" field.
func CorrectDataIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldCorrectData, vs...))
}

// CorrectDataNotIn applies the NotIn predicate on the "correct_data" field.
func CorrectDataNotIn(vs ...string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldCorrectData, vs...))
}

// CorrectDataGT applies the GT predicate on the "correct_data" field.
func CorrectDataGT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldCorrectData, v))
}

// CorrectDataGTE applies the GTE predicate on the "correct_data" field.
func CorrectDataGTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldCorrectData, v))
}

// CorrectDataLT applies the LT predicate on the "correct_data" field.
func CorrectDataLT(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldCorrectData, v))
}

// CorrectDataLTE applies the LTE predicate on the "correct_data" field.
func CorrectDataLTE(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldCorrectData, v))
}

// CorrectDataContains applies the Contains predicate on the "correct_data" field.
func CorrectDataContains(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContains(FieldCorrectData, v))
}

// CorrectDataHasPrefix applies the HasPrefix predicate on the "correct_data" field.
func CorrectDataHasPrefix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasPrefix(FieldCorrectData, v))
}

// CorrectDataHasSuffix applies the HasSuffix predicate on the "correct_data" field.
func CorrectDataHasSuffix(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldHasSuffix(FieldCorrectData, v))
}

// CorrectDataEqualFold applies the EqualFold predicate on the "correct_data" field.
func CorrectDataEqualFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEqualFold(FieldCorrectData, v))
}

// CorrectDataContainsFold applies the ContainsFold predicate on the "correct_data" field.
func CorrectDataContainsFold(v string) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldContainsFold(FieldCorrectData, v))
}

// TimeMsEQ applies the EQ predicate on the "time_ms" field.
func TimeMsEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldEQ(FieldTimeMs, v))
}

// TimeMsNEQ applies the NEQ predicate on the "time_ms" field.
func TimeMsNEQ(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNEQ(FieldTimeMs, v))
}

// TimeMsIn applies the In predicate on the "time_ms" field.
func TimeMsIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldIn(FieldTimeMs, vs...))
}

// TimeMsNotIn applies the NotIn predicate on the "time_ms" field.
func TimeMsNotIn(vs ...int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldNotIn(FieldTimeMs, vs...))
}

// TimeMsGT applies the GT predicate on the "time_ms" field.
func TimeMsGT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGT(FieldTimeMs, v))
}

// TimeMsGTE applies the GTE predicate on the "time_ms" field.
func TimeMsGTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldGTE(FieldTimeMs, v))
}

// TimeMsLT applies the LT predicate on the "time_ms" field.
func TimeMsLT(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLT(FieldTimeMs, v))
}

// TimeMsLTE applies the LTE predicate on the "time_ms" field.
func TimeMsLTE(v int) predicate.GradeEvent {
	return predicate.GradeEvent(sql.FieldLTE(FieldTimeMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GradeEvent) predicate.GradeEvent {
	return predicate.GradeEvent(sql.NotPredicates(p))
}
