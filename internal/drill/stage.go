package drill

// Stage is one of the five weekly drill stages, in fixed order.
// Friday is terminal: completing it finishes the sentence, not the week.
type Stage int

const (
	StageMonday Stage = iota
	StageTuesday
	StageWednesday
	StageThursday
	StageFriday
)

// StageOrder lists the stages in drill order.
var StageOrder = []Stage{StageMonday, StageTuesday, StageWednesday, StageThursday, StageFriday}

var stageNames = map[Stage]string{
	StageMonday:    "Monday",
	StageTuesday:   "Tuesday",
	StageWednesday: "Wednesday",
	StageThursday:  "Thursday",
	StageFriday:    "Friday",
}

// stageFocus is the one-line description shown under the stage name.
var stageFocus = map[Stage]string{
	StageMonday:    "Parts of speech",
	StageTuesday:   "Subjects and predicates",
	StageWednesday: "Clauses and sentence type",
	StageThursday:  "Fix the errors",
	StageFriday:    "Sentence diagram",
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Focus returns a short description of what the stage asks for.
func (s Stage) Focus() string {
	return stageFocus[s]
}

// Next returns the following stage and true, or the same stage and false
// when s is Friday.
func (s Stage) Next() (Stage, bool) {
	if s >= StageFriday {
		return s, false
	}
	return s + 1, true
}
