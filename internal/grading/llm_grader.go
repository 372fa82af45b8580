package grading

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/llm"
)

// LLMGrader implements Grader using the LLM provider.
type LLMGrader struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGrader with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGrader {
	return &LLMGrader{provider: provider, config: cfg}
}

// verdictOutput is the raw LLM response.
type verdictOutput struct {
	IsCorrect   bool   `json:"is_correct"`
	Feedback    string `json:"feedback"`
	CorrectData string `json:"correct_data"`
}

// Grade submits the stage's work and returns the oracle's verdict.
// The work snapshot is serialized at call time; whatever the user edits
// afterward does not change what was sent.
func (g *LLMGrader) Grade(ctx context.Context, stage drill.Stage, sentence drill.Sentence, work any) (*Verdict, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	workJSON, err := json.Marshal(work)
	if err != nil {
		return nil, fmt.Errorf("serialize %s work: %w", stage, err)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(stage, sentence, workJSON)},
		},
		Schema:      VerdictSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("grading failed: %w", err)
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse verdict: %w", err)
	}

	return &Verdict{
		IsCorrect:   raw.IsCorrect,
		Feedback:    raw.Feedback,
		CorrectData: raw.CorrectData,
	}, nil
}
