package drill

// PartOfSpeech is a word-class tag for Monday work.
type PartOfSpeech string

const (
	PosNoun         PartOfSpeech = "Noun"
	PosVerb         PartOfSpeech = "Verb"
	PosPronoun      PartOfSpeech = "Pronoun"
	PosAdjective    PartOfSpeech = "Adjective"
	PosAdverb       PartOfSpeech = "Adverb"
	PosPreposition  PartOfSpeech = "Preposition"
	PosConjunction  PartOfSpeech = "Conjunction"
	PosInterjection PartOfSpeech = "Interjection"
)

// PartsOfSpeech lists the selectable tags in display order.
var PartsOfSpeech = []PartOfSpeech{
	PosNoun, PosVerb, PosAdjective, PosAdverb,
	PosPronoun, PosPreposition, PosConjunction, PosInterjection,
}

// subTypes maps each part of speech to its selectable sub-types.
// A part of speech with no entry has no sub-type refinement.
var subTypes = map[PartOfSpeech][]string{
	PosNoun: {
		"Subject", "Direct Object", "Indirect Object", "Object of Preposition",
		"Appositive", "Predicate Nominative", "Direct Address",
	},
	PosVerb: {
		"Action Transitive", "Action Intransitive", "Linking", "Helping",
	},
	PosPronoun: {
		"Personal", "Possessive", "Reflexive", "Demonstrative",
		"Indefinite", "Relative", "Interrogative",
	},
	PosAdjective: {
		"Descriptive", "Predicate Adjective", "Proper", "Article",
	},
	PosAdverb: {
		"Manner", "Time", "Place", "Degree", "Frequency",
	},
	PosConjunction: {
		"Coordinating", "Subordinating", "Correlative",
	},
}

// Abbrev returns the short label shown under a tagged word.
func (p PartOfSpeech) Abbrev() string {
	switch p {
	case PosNoun:
		return "n"
	case PosVerb:
		return "v"
	case PosPronoun:
		return "pro"
	case PosAdjective:
		return "adj"
	case PosAdverb:
		return "adv"
	case PosPreposition:
		return "prep"
	case PosConjunction:
		return "conj"
	case PosInterjection:
		return "interj"
	}
	return string(p)
}

// SubTypesFor returns the sub-type choices for a part of speech.
// The result is nil for tags without refinements (Preposition, Interjection).
func SubTypesFor(pos PartOfSpeech) []string {
	return subTypes[pos]
}

// ValidSubType reports whether sub is a legal sub-type for pos.
func ValidSubType(pos PartOfSpeech, sub string) bool {
	for _, s := range subTypes[pos] {
		if s == sub {
			return true
		}
	}
	return false
}
