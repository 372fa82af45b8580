package drill

import (
	"encoding/json"
	"sort"
)

// POSTag is a Monday tag for a single word: a part of speech and an
// optional sub-type drawn from that part of speech's sub-type set.
type POSTag struct {
	POS     PartOfSpeech `json:"pos"`
	SubType string       `json:"subType,omitempty"`
}

// MondayWork holds part-of-speech tags keyed by word index.
type MondayWork struct {
	Tags map[int]POSTag `json:"tags"`
}

// NewMondayWork creates an empty Monday record.
func NewMondayWork() *MondayWork {
	return &MondayWork{Tags: make(map[int]POSTag)}
}

// SetPartOfSpeech replaces the tag at idx with {pos, no sub-type}.
// Any previously chosen sub-type is cleared.
func (w *MondayWork) SetPartOfSpeech(idx int, pos PartOfSpeech) {
	w.Tags[idx] = POSTag{POS: pos}
}

// SetSubType sets the sub-type at idx, preserving the part of speech.
// It reports false (and changes nothing) when no part of speech is set
// at idx or when sub is not legal for the tag's part of speech.
func (w *MondayWork) SetSubType(idx int, sub string) bool {
	tag, ok := w.Tags[idx]
	if !ok {
		return false
	}
	if !ValidSubType(tag.POS, sub) {
		return false
	}
	tag.SubType = sub
	w.Tags[idx] = tag
	return true
}

// ClearTag removes the tag at idx.
func (w *MondayWork) ClearTag(idx int) {
	delete(w.Tags, idx)
}

// IndexSet is a toggle set of word indices.
type IndexSet map[int]struct{}

// Toggle applies the symmetric difference of idx against the set:
// absent indices are added, present ones removed. An even number of
// toggles on the same index restores the original membership.
func (s IndexSet) Toggle(idx int) {
	if _, ok := s[idx]; ok {
		delete(s, idx)
		return
	}
	s[idx] = struct{}{}
}

// Has reports membership.
func (s IndexSet) Has(idx int) bool {
	_, ok := s[idx]
	return ok
}

// Sorted returns the members in ascending order.
func (s IndexSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for idx := range s {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// MarshalJSON encodes the set as a sorted index array, matching the
// wire shape the grader expects.
func (s IndexSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// TuesdayCategory names one of the four Tuesday index sets.
type TuesdayCategory int

const (
	CategorySubject TuesdayCategory = iota
	CategoryVerb
	CategoryCompleteSubject
	CategoryCompletePredicate
)

// TuesdayCategories lists the categories in display order.
var TuesdayCategories = []TuesdayCategory{
	CategorySubject, CategoryVerb, CategoryCompleteSubject, CategoryCompletePredicate,
}

func (c TuesdayCategory) String() string {
	switch c {
	case CategorySubject:
		return "Subject"
	case CategoryVerb:
		return "Verb"
	case CategoryCompleteSubject:
		return "Complete Subject"
	case CategoryCompletePredicate:
		return "Complete Predicate"
	}
	return "Unknown"
}

// TuesdayWork holds the four toggle sets for subject/predicate analysis.
type TuesdayWork struct {
	Subject           IndexSet `json:"subjectIndices"`
	Verb              IndexSet `json:"verbIndices"`
	CompleteSubject   IndexSet `json:"completeSubjectIndices"`
	CompletePredicate IndexSet `json:"completePredicateIndices"`
}

// NewTuesdayWork creates an empty Tuesday record.
func NewTuesdayWork() *TuesdayWork {
	return &TuesdayWork{
		Subject:           make(IndexSet),
		Verb:              make(IndexSet),
		CompleteSubject:   make(IndexSet),
		CompletePredicate: make(IndexSet),
	}
}

// Set returns the index set for the given category.
func (w *TuesdayWork) Set(c TuesdayCategory) IndexSet {
	switch c {
	case CategorySubject:
		return w.Subject
	case CategoryVerb:
		return w.Verb
	case CategoryCompleteSubject:
		return w.CompleteSubject
	default:
		return w.CompletePredicate
	}
}

// Toggle flips membership of idx in the named category.
func (w *TuesdayWork) Toggle(c TuesdayCategory, idx int) {
	w.Set(c).Toggle(idx)
}

// SentenceType classifies clause structure for Wednesday.
type SentenceType string

const (
	TypeSimple          SentenceType = "Simple"
	TypeCompound        SentenceType = "Compound"
	TypeComplex         SentenceType = "Complex"
	TypeCompoundComplex SentenceType = "Compound-Complex"
)

// SentenceTypes lists the selectable types in display order.
var SentenceTypes = []SentenceType{TypeSimple, TypeCompound, TypeComplex, TypeCompoundComplex}

// SentencePurpose classifies intent for Wednesday.
type SentencePurpose string

const (
	PurposeDeclarative   SentencePurpose = "Declarative"
	PurposeInterrogative SentencePurpose = "Interrogative"
	PurposeImperative    SentencePurpose = "Imperative"
	PurposeExclamatory   SentencePurpose = "Exclamatory"
)

// SentencePurposes lists the selectable purposes in display order.
var SentencePurposes = []SentencePurpose{
	PurposeDeclarative, PurposeInterrogative, PurposeImperative, PurposeExclamatory,
}

// WednesdayWork holds clause count and sentence classification.
type WednesdayWork struct {
	ClauseCount  int             `json:"clauseCount"`
	SentenceType SentenceType    `json:"sentenceType"`
	Purpose      SentencePurpose `json:"sentencePurpose"`
}

// NewWednesdayWork creates a Wednesday record with the default answers.
func NewWednesdayWork() *WednesdayWork {
	return &WednesdayWork{
		ClauseCount:  1,
		SentenceType: TypeSimple,
		Purpose:      PurposeDeclarative,
	}
}

// SetClauseCount replaces the clause count, clamped to a minimum of 1.
func (w *WednesdayWork) SetClauseCount(n int) {
	if n < 1 {
		n = 1
	}
	w.ClauseCount = n
}

// SetSentenceType replaces the sentence type.
func (w *WednesdayWork) SetSentenceType(t SentenceType) {
	w.SentenceType = t
}

// SetPurpose replaces the sentence purpose.
func (w *WednesdayWork) SetPurpose(p SentencePurpose) {
	w.Purpose = p
}

// ThursdayWork holds the corrected sentence text.
type ThursdayWork struct {
	Corrected string `json:"correctedSentence"`
}

// NewThursdayWork creates an empty Thursday record.
func NewThursdayWork() *ThursdayWork {
	return &ThursdayWork{}
}

// SetCorrected replaces the corrected sentence text.
func (w *ThursdayWork) SetCorrected(text string) {
	w.Corrected = text
}

// SlotKind is the fixed semantic role of a diagram slot.
type SlotKind string

const (
	SlotSubject  SlotKind = "subject"
	SlotVerb     SlotKind = "verb"
	SlotObject   SlotKind = "object"
	SlotModifier SlotKind = "modifier"
)

// NoWord marks a diagram slot with no assigned word.
const NoWord = -1

// Slot is one Reed-Kellogg diagram position: a fixed id and kind, a
// mutable word assignment, and a rotation (0 = baseline, 45 = slanted
// modifier connector).
type Slot struct {
	ID       string
	Kind     SlotKind
	WordIdx  int
	Rotation int
}

// MarshalJSON emits the original wire shape, with null for an empty slot.
func (s Slot) MarshalJSON() ([]byte, error) {
	var wordIdx *int
	if s.WordIdx != NoWord {
		wordIdx = &s.WordIdx
	}
	return json.Marshal(struct {
		ID       string   `json:"id"`
		Kind     SlotKind `json:"type"`
		WordIdx  *int     `json:"wordIdx"`
		Rotation int      `json:"rotation"`
	}{s.ID, s.Kind, wordIdx, s.Rotation})
}

// FridayWork holds the five diagram slots.
type FridayWork struct {
	Slots []Slot `json:"slots"`
}

// NewFridayWork creates the fixed five-slot diagram: subject, verb and
// object on the baseline, two modifiers pre-rotated to 45 degrees.
func NewFridayWork() *FridayWork {
	return &FridayWork{
		Slots: []Slot{
			{ID: "subj", Kind: SlotSubject, WordIdx: NoWord, Rotation: 0},
			{ID: "verb", Kind: SlotVerb, WordIdx: NoWord, Rotation: 0},
			{ID: "obj", Kind: SlotObject, WordIdx: NoWord, Rotation: 0},
			{ID: "mod1", Kind: SlotModifier, WordIdx: NoWord, Rotation: 45},
			{ID: "mod2", Kind: SlotModifier, WordIdx: NoWord, Rotation: 45},
		},
	}
}

// slot returns the slot with the given id, or nil.
func (w *FridayWork) slot(id string) *Slot {
	for i := range w.Slots {
		if w.Slots[i].ID == id {
			return &w.Slots[i]
		}
	}
	return nil
}

// Assign sets the named slot's word index. It does not clear a prior
// occupant of that word from other slots; masking already-used words is
// a presentation concern.
func (w *FridayWork) Assign(slotID string, wordIdx int) {
	if s := w.slot(slotID); s != nil {
		s.WordIdx = wordIdx
	}
}

// ToggleRotation flips the named slot between 0 and 45 degrees.
func (w *FridayWork) ToggleRotation(slotID string) {
	if s := w.slot(slotID); s != nil {
		if s.Rotation == 0 {
			s.Rotation = 45
		} else {
			s.Rotation = 0
		}
	}
}

// ResetDiagram clears all word assignments, preserving rotations.
func (w *FridayWork) ResetDiagram() {
	for i := range w.Slots {
		w.Slots[i].WordIdx = NoWord
	}
}

// WordUsed reports whether any slot currently holds wordIdx.
func (w *FridayWork) WordUsed(wordIdx int) bool {
	for _, s := range w.Slots {
		if s.WordIdx == wordIdx {
			return true
		}
	}
	return false
}

// History holds all five per-stage work records. The records coexist for
// the lifetime of a sentence and are wholly replaced when a new sentence
// begins. One strongly typed field per stage, never a dynamic map.
type History struct {
	Monday    *MondayWork
	Tuesday   *TuesdayWork
	Wednesday *WednesdayWork
	Thursday  *ThursdayWork
	Friday    *FridayWork
}

// NewHistory creates a History with fresh empty records for every stage.
func NewHistory() *History {
	return &History{
		Monday:    NewMondayWork(),
		Tuesday:   NewTuesdayWork(),
		Wednesday: NewWednesdayWork(),
		Thursday:  NewThursdayWork(),
		Friday:    NewFridayWork(),
	}
}

// WorkFor returns the record for the given stage, for serialization to
// the grader. The concrete type depends on the stage.
func (h *History) WorkFor(stage Stage) any {
	switch stage {
	case StageMonday:
		return h.Monday
	case StageTuesday:
		return h.Tuesday
	case StageWednesday:
		return h.Wednesday
	case StageThursday:
		return h.Thursday
	default:
		return h.Friday
	}
}
