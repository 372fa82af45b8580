package drill

import "strings"

// Sentence is the practice sentence under analysis: lowercase words,
// space separated, no punctuation. Word indices are the unit of reference
// used by every stage's work record ("word 3 is the subject").
type Sentence struct {
	Raw   string
	Words []string
}

// NewSentence splits a raw sentence string into indexed words.
// Empty and whitespace-only strings yield a zero-word sentence.
func NewSentence(raw string) Sentence {
	return Sentence{
		Raw:   raw,
		Words: strings.Fields(raw),
	}
}

// Empty reports whether the sentence has no words.
func (s Sentence) Empty() bool {
	return len(s.Words) == 0
}

// Word returns the word at idx, or "" when idx is out of range.
func (s Sentence) Word(idx int) string {
	if idx < 0 || idx >= len(s.Words) {
		return ""
	}
	return s.Words[idx]
}
