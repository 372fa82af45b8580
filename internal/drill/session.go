package drill

// DefaultFeedback is the feedback line shown before the first submission.
const DefaultFeedback = "Digital DGP. Grind mode: ON."

// Session aggregates the state of one practice run: the active sentence,
// the stage machine, the five per-stage work records, the feedback line,
// the loading flag, and the selected difficulty. All mutation flows
// through the session controller that owns it; there are no concurrent
// writers.
type Session struct {
	Sentence     Sentence
	Machine      *Machine
	History      *History
	Feedback     string
	Loading      bool
	Difficulty   Difficulty
	MusicEnabled bool

	// SentencesDone counts sentences fully completed (past Friday)
	// since the session began or was last reset.
	SentencesDone int
}

// NewSession creates a session at Monday with empty work, ready to load
// its first sentence.
func NewSession(difficulty Difficulty) *Session {
	return &Session{
		Machine:      NewMachine(),
		History:      NewHistory(),
		Feedback:     DefaultFeedback,
		Loading:      true,
		Difficulty:   difficulty,
		MusicEnabled: true,
	}
}

// BeginSentence installs a new active sentence and resets the stage
// machine and all per-stage work. Used for the initial load, natural
// advancement past Friday, and difficulty changes alike.
func (s *Session) BeginSentence(raw string) {
	s.Sentence = NewSentence(raw)
	s.Machine.ResetForNewSentence()
	s.History = NewHistory()
}

// ChangeDifficulty resets the entire session for the new difficulty:
// stage, completed history, all per-stage work, and the sentence counter.
// The caller is responsible for discarding and refilling the pool.
func (s *Session) ChangeDifficulty(d Difficulty) {
	s.Difficulty = d
	s.Sentence = Sentence{}
	s.Machine.ResetForNewSentence()
	s.History = NewHistory()
	s.SentencesDone = 0
	s.Loading = true
	s.Feedback = DefaultFeedback
}

// Stage returns the active stage.
func (s *Session) Stage() Stage {
	return s.Machine.Current()
}
