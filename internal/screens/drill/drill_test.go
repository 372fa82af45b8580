package drill

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	gram "github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/grading"
	"github.com/abhisek/grammiz/internal/hype"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/sentencegen"
	"github.com/abhisek/grammiz/internal/store"
)

// mockGrader returns canned verdicts in FIFO order.
type mockGrader struct {
	verdicts []*grading.Verdict
	errs     []error
	calls    int
}

func (m *mockGrader) Grade(_ context.Context, _ gram.Stage, _ gram.Sentence, _ any) (*grading.Verdict, error) {
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if i < len(m.verdicts) {
		return m.verdicts[i], nil
	}
	return &grading.Verdict{IsCorrect: true, Feedback: "sigma"}, nil
}

// stubSource is a sentence source with a fixed batch or error.
type stubSource struct {
	batch []string
	err   error
	calls int
}

func (s *stubSource) GenerateBatch(_ context.Context, _ gram.Difficulty, _ int) ([]string, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
	gradeEvents   []store.GradeEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendGradeEvent(_ context.Context, data store.GradeEventData) error {
	m.gradeEvents = append(m.gradeEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryGradeEvents(_ context.Context, _ store.QueryOpts) ([]store.GradeRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) StageAccuracy(_ context.Context) ([]store.StageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int64) (*store.LLMRequestRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

// mockSnapshotRepo implements store.SnapshotRepo for testing.
type mockSnapshotRepo struct {
	snapshots []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.snapshots = append(m.snapshots, snap)
	return nil
}
func (m *mockSnapshotRepo) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snapshots) == 0 {
		return nil, nil
	}
	return m.snapshots[len(m.snapshots)-1], nil
}
func (m *mockSnapshotRepo) Prune(_ context.Context, _ int) error {
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDrillScreen(grader *mockGrader, source sentencegen.Source) (*DrillScreen, *mockEventRepo, *mockSnapshotRepo) {
	if source == nil {
		source = &stubSource{batch: []string{
			"the dog ran fast yesterday",
			"my brother plays loud music",
		}}
	}
	pool := sentencegen.NewPool(source, gram.DifficultyMedium, sentencegen.DefaultConfig())
	eventRepo := &mockEventRepo{}
	snapRepo := &mockSnapshotRepo{}
	s := New(gram.DifficultyMedium, pool, grader, hype.NewService(nil), eventRepo, snapRepo)
	return s, eventRepo, snapRepo
}

// beginSentence installs an active sentence directly.
func beginSentence(s *DrillScreen, raw string) {
	var scr screen.Screen = s
	scr.Update(sentenceReadyMsg{Raw: raw})
}

// runGrade submits and delivers the resulting verdict message.
func runGrade(t *testing.T, s *DrillScreen) {
	t.Helper()
	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a grading command from submit")
	}
	msg := cmd()
	scr.Update(msg)
}

func TestDrillScreen_TitleTracksStage(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	if s.Title() != "Monday" {
		t.Errorf("Title = %q, want Monday", s.Title())
	}
}

func TestDrillScreen_SentenceReadyClearsLoading(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")

	if s.session.Loading {
		t.Error("expected loading cleared")
	}
	if len(s.session.Sentence.Words) != 5 {
		t.Errorf("words = %d, want 5", len(s.session.Sentence.Words))
	}
	if s.session.Feedback != gram.DefaultFeedback {
		t.Errorf("feedback = %q", s.session.Feedback)
	}
}

func TestDrillScreen_CorrectVerdictAdvancesStage(t *testing.T) {
	grader := &mockGrader{verdicts: []*grading.Verdict{
		{IsCorrect: true, Feedback: "locked in"},
	}}
	s, eventRepo, _ := testDrillScreen(grader, nil)
	beginSentence(s, "the dog ran fast yesterday")

	runGrade(t, s)

	if s.session.Stage() != gram.StageTuesday {
		t.Errorf("stage = %s, want Tuesday", s.session.Stage())
	}
	if !s.session.Machine.IsCompleted(gram.StageMonday) {
		t.Error("expected Monday in completed history")
	}
	if len(eventRepo.gradeEvents) != 1 {
		t.Fatalf("grade events = %d, want 1", len(eventRepo.gradeEvents))
	}
	if eventRepo.gradeEvents[0].Stage != "monday" {
		t.Errorf("event stage = %q", eventRepo.gradeEvents[0].Stage)
	}
}

func TestDrillScreen_IncorrectVerdictHoldsStage(t *testing.T) {
	grader := &mockGrader{verdicts: []*grading.Verdict{
		{IsCorrect: false, Feedback: "nah", CorrectData: "ran is the verb"},
	}}
	s, _, _ := testDrillScreen(grader, nil)
	beginSentence(s, "the dog ran fast yesterday")

	runGrade(t, s)

	if s.session.Stage() != gram.StageMonday {
		t.Errorf("stage = %s, want Monday", s.session.Stage())
	}
	if s.session.Feedback != "nah  //  ran is the verb" {
		t.Errorf("feedback = %q", s.session.Feedback)
	}
}

func TestDrillScreen_GradeErrorKeepsWork(t *testing.T) {
	grader := &mockGrader{errs: []error{errors.New("provider down")}}
	s, _, _ := testDrillScreen(grader, nil)
	beginSentence(s, "the dog ran fast yesterday")
	s.session.History.Monday.SetPartOfSpeech(1, gram.PosNoun)

	runGrade(t, s)

	if s.session.Stage() != gram.StageMonday {
		t.Errorf("stage = %s, want Monday", s.session.Stage())
	}
	if _, ok := s.session.History.Monday.Tags[1]; !ok {
		t.Error("expected work preserved after grader failure")
	}
	if s.grading {
		t.Error("expected grading flag cleared")
	}
}

func TestDrillScreen_FridaySuccessSchedulesAdvance(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")

	// Walk all five stages with the default always-correct grader.
	for i := 0; i < 5; i++ {
		runGrade(t, s)
	}

	if !s.advancing {
		t.Error("expected advancing after Friday verdict")
	}
	if s.session.SentencesDone != 0 {
		t.Error("sentence counted before the display delay elapsed")
	}

	// Delay elapses: the next sentence comes from the pool.
	s.pool.Seed([]string{"my brother plays loud music"})
	var scr screen.Screen = s
	_, cmd := scr.Update(advanceSentenceMsg{})
	if cmd == nil {
		t.Fatal("expected a command to load the next sentence")
	}
	scr.Update(cmd())

	if s.session.SentencesDone != 1 {
		t.Errorf("sentences done = %d, want 1", s.session.SentencesDone)
	}
	if s.session.Stage() != gram.StageMonday {
		t.Errorf("stage = %s, want Monday", s.session.Stage())
	}
	if s.session.Sentence.Raw != "my brother plays loud music" {
		t.Errorf("sentence = %q", s.session.Sentence.Raw)
	}
	if len(s.session.Machine.Completed()) != 0 {
		t.Error("expected empty completed history on new sentence")
	}
}

func TestDrillScreen_SubmitGatedWhileLoading(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	// No sentence yet: session is loading.
	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected submit to be a no-op while loading")
	}
}

func TestDrillScreen_RefillFailureFallsBack(t *testing.T) {
	source := &stubSource{err: errors.New("llm down")}
	s, _, _ := testDrillScreen(&mockGrader{}, source)

	var scr screen.Screen = s
	_, cmd := scr.Update(refillDoneMsg{Err: source.err})
	if cmd == nil {
		t.Fatal("expected a fallback sentence command")
	}
	msg := cmd()
	ready, ok := msg.(sentenceReadyMsg)
	if !ok {
		t.Fatalf("message = %T, want sentenceReadyMsg", msg)
	}
	if !ready.Fallback {
		t.Error("expected fallback sentence")
	}
	scr.Update(msg)
	if s.session.Loading {
		t.Error("expected loading cleared after fallback")
	}
}

func TestDrillScreen_StaleVerdictApplied(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")

	// A verdict for Monday lands while the machine already sits at
	// Tuesday; it advances the machine from Tuesday regardless.
	s.session.Machine.Advance()
	var scr screen.Screen = s
	scr.Update(gradeResultMsg{
		Stage:   gram.StageMonday,
		Verdict: &grading.Verdict{IsCorrect: true, Feedback: "late but right"},
	})

	if s.session.Stage() != gram.StageWednesday {
		t.Errorf("stage = %s, want Wednesday", s.session.Stage())
	}
}

func TestDrillScreen_DifficultyCycleResetsEverything(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")
	s.session.SentencesDone = 3
	s.session.Machine.Advance()

	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress('D'))
	if cmd == nil {
		t.Fatal("expected a refill command")
	}

	if s.session.Difficulty != gram.DifficultyHard {
		t.Errorf("difficulty = %s, want hard", s.session.Difficulty)
	}
	if !s.session.Loading {
		t.Error("expected loading after difficulty change")
	}
	if s.session.SentencesDone != 0 {
		t.Error("expected sentence counter reset")
	}
	if s.session.Stage() != gram.StageMonday {
		t.Errorf("stage = %s, want Monday", s.session.Stage())
	}
	if s.pool.Len() != 0 {
		t.Error("expected pool discarded")
	}
	if s.pool.Difficulty() != gram.DifficultyHard {
		t.Errorf("pool difficulty = %s", s.pool.Difficulty())
	}
}

func TestDrillScreen_MondayEditing(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")

	var scr screen.Screen = s
	// Move cursor to "dog" and cycle to the first part of speech.
	scr.Update(specialKey(tea.KeyRight))
	scr.Update(specialKey(tea.KeyDown))

	tag, ok := s.session.History.Monday.Tags[1]
	if !ok {
		t.Fatal("expected a tag on word 1")
	}
	if tag.POS != gram.PartsOfSpeech[0] {
		t.Errorf("pos = %s, want %s", tag.POS, gram.PartsOfSpeech[0])
	}

	// Tab assigns the first sub-type for the tagged part of speech.
	scr.Update(specialKey(tea.KeyTab))
	tag = s.session.History.Monday.Tags[1]
	if tag.SubType != gram.SubTypesFor(tag.POS)[0] {
		t.Errorf("sub-type = %q", tag.SubType)
	}

	// Cycling the part of speech clears the sub-type.
	scr.Update(specialKey(tea.KeyDown))
	tag = s.session.History.Monday.Tags[1]
	if tag.SubType != "" {
		t.Error("expected sub-type cleared on part-of-speech change")
	}

	// Backspace clears the tag entirely.
	scr.Update(specialKey(tea.KeyBackspace))
	if _, ok := s.session.History.Monday.Tags[1]; ok {
		t.Error("expected tag cleared")
	}
}

func TestDrillScreen_TuesdayToggle(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")
	s.session.Machine.Advance() // Tuesday

	var scr screen.Screen = s
	scr.Update(specialKey(tea.KeyRight))
	scr.Update(specialKey(tea.KeySpace))
	if !s.session.History.Tuesday.Subject.Has(1) {
		t.Error("expected word 1 in subject set")
	}

	// Tab switches category; same word toggles into the verb set.
	scr.Update(specialKey(tea.KeyTab))
	scr.Update(specialKey(tea.KeySpace))
	if !s.session.History.Tuesday.Verb.Has(1) {
		t.Error("expected word 1 in verb set")
	}

	// Toggling again removes it.
	scr.Update(specialKey(tea.KeySpace))
	if s.session.History.Tuesday.Verb.Has(1) {
		t.Error("expected word 1 removed from verb set")
	}
}

func TestDrillScreen_FridayPlacement(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")
	for i := 0; i < 4; i++ {
		s.session.Machine.Advance()
	}
	if s.session.Stage() != gram.StageFriday {
		t.Fatalf("stage = %s", s.session.Stage())
	}

	var scr screen.Screen = s
	// Place word 1 in the subject slot.
	scr.Update(specialKey(tea.KeyRight))
	scr.Update(specialKey(tea.KeySpace))
	work := s.session.History.Friday
	if work.Slots[0].WordIdx != 1 {
		t.Errorf("subj word = %d, want 1", work.Slots[0].WordIdx)
	}

	// Rotate the selected slot.
	scr.Update(keyPress('r'))
	if work.Slots[0].Rotation != 45 {
		t.Errorf("rotation = %d, want 45", work.Slots[0].Rotation)
	}

	// Backspace clears the slot.
	scr.Update(specialKey(tea.KeyBackspace))
	if work.Slots[0].WordIdx != gram.NoWord {
		t.Error("expected slot cleared")
	}
}

func TestDrillScreen_QuitConfirmFlow(t *testing.T) {
	s, eventRepo, snapRepo := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")

	var scr screen.Screen = s
	scr.Update(specialKey(tea.KeyEscape))
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation")
	}

	scr.Update(keyPress('n'))
	if s.quitConfirm {
		t.Fatal("expected confirmation dismissed")
	}

	scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected handoff to the session summary")
	}
	if len(eventRepo.sessionEvents) == 0 || eventRepo.sessionEvents[len(eventRepo.sessionEvents)-1].Action != "end" {
		t.Error("expected session end event")
	}
	if len(snapRepo.snapshots) != 1 {
		t.Errorf("snapshots = %d, want 1", len(snapRepo.snapshots))
	}
}

func TestDrillScreen_MusicToggle(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)
	beginSentence(s, "the dog ran fast yesterday")

	var scr screen.Screen = s
	scr.Update(keyPress('m'))
	if s.session.MusicEnabled {
		t.Error("expected music disabled")
	}
	scr.Update(keyPress('m'))
	if !s.session.MusicEnabled {
		t.Error("expected music re-enabled")
	}
}

func TestDrillScreen_ViewStates(t *testing.T) {
	s, _, _ := testDrillScreen(&mockGrader{}, nil)

	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	beginSentence(s, "the dog ran fast yesterday")
	for _, stage := range gram.StageOrder {
		if s.session.Stage() != stage {
			t.Fatalf("stage = %s, want %s", s.session.Stage(), stage)
		}
		if s.View(80, 24) == "" {
			t.Errorf("expected non-empty view for %s", stage)
		}
		s.session.Machine.Advance()
		s.resetEditors()
	}
}
