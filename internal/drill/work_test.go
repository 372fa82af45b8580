package drill

import (
	"encoding/json"
	"testing"
)

func TestSetPartOfSpeechClearsSubType(t *testing.T) {
	w := NewMondayWork()
	w.SetPartOfSpeech(1, PosNoun)
	if !w.SetSubType(1, "Subject") {
		t.Fatal("expected sub-type to be accepted")
	}

	w.SetPartOfSpeech(1, PosVerb)

	tag := w.Tags[1]
	if tag.POS != PosVerb {
		t.Errorf("POS = %q, want Verb", tag.POS)
	}
	if tag.SubType != "" {
		t.Errorf("SubType = %q, want cleared", tag.SubType)
	}
}

func TestSetSubTypeRequiresPartOfSpeech(t *testing.T) {
	w := NewMondayWork()
	if w.SetSubType(0, "Subject") {
		t.Error("expected rejection when no part of speech is set")
	}
	if len(w.Tags) != 0 {
		t.Errorf("expected no tags, got %d", len(w.Tags))
	}
}

func TestSetSubTypeRejectsWrongFamily(t *testing.T) {
	w := NewMondayWork()
	w.SetPartOfSpeech(2, PosVerb)
	if w.SetSubType(2, "Direct Object") {
		t.Error("expected rejection of a noun sub-type on a verb tag")
	}
	if w.Tags[2].SubType != "" {
		t.Errorf("SubType = %q, want empty", w.Tags[2].SubType)
	}
	if !w.SetSubType(2, "Linking") {
		t.Error("expected a verb sub-type to be accepted")
	}
}

func TestToggleIdempotence(t *testing.T) {
	w := NewTuesdayWork()

	for _, c := range TuesdayCategories {
		// An even number of toggles restores the original membership.
		w.Toggle(c, 3)
		w.Toggle(c, 3)
		if w.Set(c).Has(3) {
			t.Errorf("%s: expected index 3 absent after two toggles", c)
		}

		w.Toggle(c, 3)
		w.Toggle(c, 3)
		w.Toggle(c, 3)
		if !w.Set(c).Has(3) {
			t.Errorf("%s: expected index 3 present after three toggles", c)
		}
	}
}

func TestToggleIsPerCategory(t *testing.T) {
	w := NewTuesdayWork()
	w.Toggle(CategorySubject, 1)
	if w.Verb.Has(1) || w.CompleteSubject.Has(1) || w.CompletePredicate.Has(1) {
		t.Error("toggle leaked into another category")
	}
}

func TestIndexSetMarshalsSorted(t *testing.T) {
	s := make(IndexSet)
	s.Toggle(4)
	s.Toggle(0)
	s.Toggle(2)

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[0,2,4]" {
		t.Errorf("marshal = %s, want [0,2,4]", data)
	}
}

func TestWednesdayClauseCountClamped(t *testing.T) {
	w := NewWednesdayWork()
	w.SetClauseCount(0)
	if w.ClauseCount != 1 {
		t.Errorf("ClauseCount = %d, want 1", w.ClauseCount)
	}
	w.SetClauseCount(3)
	if w.ClauseCount != 3 {
		t.Errorf("ClauseCount = %d, want 3", w.ClauseCount)
	}
}

func TestFridayAssignAndRotate(t *testing.T) {
	w := NewFridayWork()

	w.Assign("subj", 1)
	w.Assign("verb", 2)
	if !w.WordUsed(1) || !w.WordUsed(2) {
		t.Error("expected assigned words to be reported used")
	}
	if w.WordUsed(0) {
		t.Error("expected unassigned word to be reported free")
	}

	// Assign does not clear a word's prior slot; masking is presentation.
	w.Assign("obj", 1)
	if w.slot("subj").WordIdx != 1 || w.slot("obj").WordIdx != 1 {
		t.Error("expected word 1 in both slots after double assignment")
	}

	w.ToggleRotation("mod1")
	if got := w.slot("mod1").Rotation; got != 0 {
		t.Errorf("mod1 rotation = %d, want 0 after toggle from 45", got)
	}
	w.ToggleRotation("mod1")
	if got := w.slot("mod1").Rotation; got != 45 {
		t.Errorf("mod1 rotation = %d, want 45 after second toggle", got)
	}
}

func TestResetDiagramPreservesRotations(t *testing.T) {
	w := NewFridayWork()
	w.Assign("subj", 0)
	w.ToggleRotation("verb") // 0 -> 45

	w.ResetDiagram()

	for _, s := range w.Slots {
		if s.WordIdx != NoWord {
			t.Errorf("slot %s still holds word %d", s.ID, s.WordIdx)
		}
	}
	if w.slot("verb").Rotation != 45 {
		t.Error("expected verb rotation preserved across reset")
	}
	if w.slot("mod2").Rotation != 45 {
		t.Error("expected mod2 rotation preserved across reset")
	}
}

func TestFridayMarshalEmptySlotIsNull(t *testing.T) {
	w := NewFridayWork()
	w.Assign("subj", 3)

	data, err := json.Marshal(w)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out struct {
		Slots []struct {
			ID      string `json:"id"`
			WordIdx *int   `json:"wordIdx"`
		} `json:"slots"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Slots) != 5 {
		t.Fatalf("slots = %d, want 5", len(out.Slots))
	}
	if out.Slots[0].WordIdx == nil || *out.Slots[0].WordIdx != 3 {
		t.Error("expected subj slot to carry word index 3")
	}
	if out.Slots[1].WordIdx != nil {
		t.Error("expected empty verb slot to marshal as null")
	}
}

func TestHistoryWorkFor(t *testing.T) {
	h := NewHistory()
	if _, ok := h.WorkFor(StageMonday).(*MondayWork); !ok {
		t.Error("Monday record has wrong type")
	}
	if _, ok := h.WorkFor(StageFriday).(*FridayWork); !ok {
		t.Error("Friday record has wrong type")
	}
}
