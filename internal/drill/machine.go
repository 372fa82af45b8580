package drill

// Machine owns the current stage and the completed-stage history for the
// active sentence. Completed history is always a prefix of StageOrder up
// to (and excluding) the current stage.
type Machine struct {
	current   Stage
	completed []Stage
}

// NewMachine creates a Machine positioned at Monday with no history.
func NewMachine() *Machine {
	return &Machine{current: StageMonday}
}

// Current returns the active stage.
func (m *Machine) Current() Stage {
	return m.current
}

// Completed returns the completed stages in order. The returned slice is
// a copy; callers cannot disturb the prefix invariant through it.
func (m *Machine) Completed() []Stage {
	out := make([]Stage, len(m.completed))
	copy(out, m.completed)
	return out
}

// IsCompleted reports whether the given stage has been completed for the
// active sentence.
func (m *Machine) IsCompleted(s Stage) bool {
	for _, c := range m.completed {
		if c == s {
			return true
		}
	}
	return false
}

// Advance moves to the next stage after a correct verdict, appending the
// prior stage to the completed history. When the current stage is Friday
// it reports sentenceDone = true and stays put: there is no sixth stage,
// the caller starts a new sentence instead.
func (m *Machine) Advance() (sentenceDone bool) {
	next, ok := m.current.Next()
	m.completed = append(m.completed, m.current)
	if !ok {
		return true
	}
	m.current = next
	return false
}

// ResetForNewSentence returns the machine to Monday with empty history.
func (m *Machine) ResetForNewSentence() {
	m.current = StageMonday
	m.completed = m.completed[:0]
}
