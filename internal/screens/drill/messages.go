package drill

import (
	"time"

	gram "github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/grading"
)

// sentenceReadyMsg is sent when the next sentence has been taken from
// the pool (or seeded from the fallback set).
type sentenceReadyMsg struct {
	Raw      string
	Fallback bool
}

// refillDoneMsg is sent when an asynchronous pool refill finishes.
type refillDoneMsg struct {
	Err error
}

// gradeResultMsg carries the verdict for a submission. Stage records
// which stage the submission was for; verdicts are applied as delivered
// even when the learner has since moved on.
type gradeResultMsg struct {
	Stage   gram.Stage
	Verdict *grading.Verdict
	Err     error
}

// advanceSentenceMsg fires after the Friday success display delay to
// start the next sentence.
type advanceSentenceMsg struct{}

// hypePollMsg polls the hype service for a finished track.
type hypePollMsg time.Time
