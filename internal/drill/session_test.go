package drill

import "testing"

func TestBeginSentenceResetsEverything(t *testing.T) {
	s := NewSession(DifficultyEasy)
	s.BeginSentence("the dog ran fast yesterday")

	// Do some work and advance a couple of stages.
	s.History.Monday.SetPartOfSpeech(1, PosNoun)
	s.History.Tuesday.Toggle(CategorySubject, 1)
	s.Machine.Advance()
	s.Machine.Advance()

	s.BeginSentence("my brother plays loud music at night")

	if s.Stage() != StageMonday {
		t.Errorf("stage = %s, want Monday", s.Stage())
	}
	if len(s.Machine.Completed()) != 0 {
		t.Error("expected empty completed history")
	}
	if len(s.History.Monday.Tags) != 0 {
		t.Error("expected fresh Monday work")
	}
	if len(s.History.Tuesday.Subject) != 0 {
		t.Error("expected fresh Tuesday work")
	}
	if got := len(s.Sentence.Words); got != 7 {
		t.Errorf("words = %d, want 7", got)
	}
}

func TestChangeDifficultyResetsSession(t *testing.T) {
	s := NewSession(DifficultyEasy)
	s.BeginSentence("the dog ran fast yesterday")
	s.SentencesDone = 2
	s.Machine.Advance()
	s.Loading = false
	s.Feedback = "nice"

	s.ChangeDifficulty(DifficultyHard)

	if s.Difficulty != DifficultyHard {
		t.Errorf("difficulty = %s, want hard", s.Difficulty)
	}
	if !s.Sentence.Empty() {
		t.Error("expected active sentence discarded")
	}
	if s.SentencesDone != 0 {
		t.Errorf("sentencesDone = %d, want 0", s.SentencesDone)
	}
	if !s.Loading {
		t.Error("expected loading flag set while the pool refills")
	}
	if s.Stage() != StageMonday {
		t.Errorf("stage = %s, want Monday", s.Stage())
	}
}

func TestSentenceWordLookup(t *testing.T) {
	s := NewSentence("the dog ran fast yesterday")
	if got := s.Word(1); got != "dog" {
		t.Errorf("Word(1) = %q, want dog", got)
	}
	if got := s.Word(9); got != "" {
		t.Errorf("Word(9) = %q, want empty", got)
	}
	if got := s.Word(-1); got != "" {
		t.Errorf("Word(-1) = %q, want empty", got)
	}
}
