package grading

import (
	"context"

	"github.com/abhisek/grammiz/internal/drill"
)

// Verdict is the grader's judgement of one stage submission.
type Verdict struct {
	// IsCorrect is the pass/fail decision.
	IsCorrect bool

	// Feedback is free-form display text, shown verbatim.
	Feedback string

	// CorrectData optionally carries the expected answer, for display
	// after a miss. Empty when the grader withholds it.
	CorrectData string
}

// Grader judges a stage's work against the active sentence.
// Implementations must be treated as slow and fallible: callers catch
// every error at the call site and convert it into feedback.
type Grader interface {
	// Grade submits the work record for the given stage. The work value
	// is the stage's typed record from drill.History.WorkFor.
	Grade(ctx context.Context, stage drill.Stage, sentence drill.Sentence, work any) (*Verdict, error)
}
