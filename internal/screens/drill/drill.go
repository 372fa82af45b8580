package drill

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	gram "github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/grading"
	"github.com/abhisek/grammiz/internal/hype"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/screens/summary"
	"github.com/abhisek/grammiz/internal/sentencegen"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/ui/components"
	"github.com/abhisek/grammiz/internal/ui/layout"

	"github.com/google/uuid"
)

// advanceDelay is how long the Friday success verdict stays on screen
// before the next sentence loads.
const advanceDelay = 1500 * time.Millisecond

// DrillScreen runs the five-stage drill for one session. It owns the
// drill state and serializes every mutation through the update loop.
type DrillScreen struct {
	session   *gram.Session
	pool      *sentencegen.Pool
	grader    grading.Grader
	hypeSvc   *hype.Service
	eventRepo store.EventRepo
	snapRepo  store.SnapshotRepo

	sessionID string
	startTime time.Time
	stageTime time.Time

	grid     components.WordGrid
	input    components.TextInput
	wedRow   int // 0 = clauses, 1 = type, 2 = purpose
	tuesCat  gram.TuesdayCategory
	friSlot  int

	grading      bool
	advancing    bool
	stagesPassed int
	tallies      map[gram.Stage]*stageTally
	trackLabel   string
	quitConfirm  bool
	errMsg       string
}

// stageTally counts submissions per stage for the session report.
type stageTally struct {
	attempted int
	correct   int
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a DrillScreen with injected dependencies.
func New(difficulty gram.Difficulty, pool *sentencegen.Pool, grader grading.Grader, hypeSvc *hype.Service, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *DrillScreen {
	return &DrillScreen{
		session:   gram.NewSession(difficulty),
		pool:      pool,
		grader:    grader,
		hypeSvc:   hypeSvc,
		eventRepo: eventRepo,
		snapRepo:  snapRepo,
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		tallies:   make(map[gram.Stage]*stageTally),
		input:     components.NewTextInput("Rewrite the sentence...", false, 120),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	ctx := context.Background()
	_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:  s.sessionID,
		Action:     "start",
		Difficulty: string(s.session.Difficulty),
	})
	return tea.Batch(s.refillCmd(), hypePollCmd())
}

func (s *DrillScreen) Title() string {
	return s.session.Stage().String()
}

// HeaderStats feeds the difficulty and sentence count to the header.
func (s *DrillScreen) HeaderStats() (string, int) {
	return s.session.Difficulty.Label(), s.session.SentencesDone
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
	}
	switch s.session.Stage() {
	case gram.StageMonday:
		hints = append(hints,
			layout.KeyHint{Key: "←/→", Description: "Word"},
			layout.KeyHint{Key: "↑/↓", Description: "Part of speech"},
			layout.KeyHint{Key: "Tab", Description: "Sub-type"},
		)
	case gram.StageTuesday:
		hints = append(hints,
			layout.KeyHint{Key: "←/→", Description: "Word"},
			layout.KeyHint{Key: "Space", Description: "Toggle"},
			layout.KeyHint{Key: "Tab", Description: "Category"},
		)
	case gram.StageWednesday:
		hints = append(hints,
			layout.KeyHint{Key: "↑/↓", Description: "Row"},
			layout.KeyHint{Key: "←/→", Description: "Change"},
		)
	case gram.StageFriday:
		hints = append(hints,
			layout.KeyHint{Key: "Tab", Description: "Slot"},
			layout.KeyHint{Key: "Space", Description: "Place word"},
			layout.KeyHint{Key: "R", Description: "Rotate"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case refillDoneMsg:
		return s.handleRefillDone(msg)

	case sentenceReadyMsg:
		return s.handleSentenceReady(msg)

	case gradeResultMsg:
		return s.handleGradeResult(msg)

	case advanceSentenceMsg:
		return s.handleAdvanceSentence()

	case hypePollMsg:
		if track, ok := s.hypeSvc.ConsumeTrack(); ok && s.session.MusicEnabled {
			s.trackLabel = track.Stage.String()
		}
		return s, hypePollCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// refillCmd runs a pool refill off the UI loop.
func (s *DrillScreen) refillCmd() tea.Cmd {
	pool := s.pool
	return func() tea.Msg {
		return refillDoneMsg{Err: pool.Refill(context.Background())}
	}
}

// takeNextCmd pops the next sentence, seeding the fallback pair first
// when the pool is dry and generation has already failed.
func (s *DrillScreen) takeNext(fallbackOnEmpty bool) tea.Cmd {
	if raw, ok := s.pool.TakeNext(); ok {
		return func() tea.Msg { return sentenceReadyMsg{Raw: raw} }
	}
	if fallbackOnEmpty {
		s.pool.Seed(sentencegen.Fallback())
		if raw, ok := s.pool.TakeNext(); ok {
			return func() tea.Msg { return sentenceReadyMsg{Raw: raw, Fallback: true} }
		}
	}
	return nil
}

func (s *DrillScreen) handleRefillDone(msg refillDoneMsg) (screen.Screen, tea.Cmd) {
	// Background top-up finished while a sentence is active: nothing to do.
	if !s.session.Loading {
		return s, nil
	}
	// Waiting on a sentence. A failed refill falls back to the built-in
	// pair so the drill never stalls.
	return s, s.takeNext(msg.Err != nil)
}

func (s *DrillScreen) handleSentenceReady(msg sentenceReadyMsg) (screen.Screen, tea.Cmd) {
	s.session.BeginSentence(msg.Raw)
	s.session.Loading = false
	s.session.Feedback = gram.DefaultFeedback
	s.resetEditors()
	s.stageTime = time.Now()

	var cmds []tea.Cmd
	if s.session.MusicEnabled {
		s.hypeSvc.RequestTrack(context.Background(), gram.StageMonday)
	}
	if s.pool.NeedsRefill() {
		cmds = append(cmds, s.refillCmd())
	}
	return s, tea.Batch(cmds...)
}

func (s *DrillScreen) handleGradeResult(msg gradeResultMsg) (screen.Screen, tea.Cmd) {
	s.grading = false

	if msg.Err != nil {
		s.session.Feedback = "Grader glitched. Run it back."
		return s, nil
	}

	v := msg.Verdict
	s.session.Feedback = v.Feedback
	if !v.IsCorrect && v.CorrectData != "" {
		s.session.Feedback += "  //  " + v.CorrectData
	}

	_ = s.eventRepo.AppendGradeEvent(context.Background(), store.GradeEventData{
		SessionID:   s.sessionID,
		Stage:       strings.ToLower(msg.Stage.String()),
		Difficulty:  string(s.session.Difficulty),
		Sentence:    s.session.Sentence.Raw,
		Work:        serializeWork(s.session.History.WorkFor(msg.Stage)),
		Correct:     v.IsCorrect,
		Feedback:    v.Feedback,
		CorrectData: v.CorrectData,
		TimeMs:      int(time.Since(s.stageTime).Milliseconds()),
	})

	tally, ok := s.tallies[msg.Stage]
	if !ok {
		tally = &stageTally{}
		s.tallies[msg.Stage] = tally
	}
	tally.attempted++
	if v.IsCorrect {
		tally.correct++
	}

	if s.session.MusicEnabled {
		kind := hype.KindSuccess
		if !v.IsCorrect {
			kind = hype.KindError
		}
		s.hypeSvc.RequestSFX(context.Background(), kind)
	}

	if !v.IsCorrect {
		return s, nil
	}

	s.stagesPassed++

	// A verdict is applied even when it arrives for a stage the machine
	// has already left; the machine advances from wherever it stands.
	if s.session.Machine.Advance() {
		s.advancing = true
		return s, tea.Tick(advanceDelay, func(time.Time) tea.Msg {
			return advanceSentenceMsg{}
		})
	}

	s.resetEditors()
	s.stageTime = time.Now()
	if s.session.MusicEnabled {
		s.hypeSvc.RequestTrack(context.Background(), s.session.Stage())
	}
	return s, nil
}

func (s *DrillScreen) handleAdvanceSentence() (screen.Screen, tea.Cmd) {
	s.advancing = false
	s.session.SentencesDone++

	if cmd := s.takeNext(false); cmd != nil {
		return s, cmd
	}

	// Pool dry: show the loading state and refill. The refill handler
	// falls back to the built-in pair if generation fails again.
	s.session.Loading = true
	return s, s.refillCmd()
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, s.endSession()
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	// No input while loading a sentence or holding the Friday verdict.
	if s.session.Loading || s.advancing {
		return s, nil
	}

	// Thursday owns the keyboard for typing; only the few control keys
	// are intercepted above and below.
	if s.session.Stage() == gram.StageThursday && key != "enter" {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.session.History.Thursday.SetCorrected(s.input.Value())
		return s, cmd
	}

	switch key {
	case "enter":
		return s.submit()
	case "m":
		s.session.MusicEnabled = !s.session.MusicEnabled
		if !s.session.MusicEnabled {
			s.trackLabel = ""
		}
		return s, nil
	case "D":
		return s.cycleDifficulty()
	}

	return s.handleStageKey(key, msg)
}

// handleStageKey routes editing keys to the active stage's editor.
func (s *DrillScreen) handleStageKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Stage() {
	case gram.StageMonday:
		return s.handleMondayKey(key, msg)
	case gram.StageTuesday:
		return s.handleTuesdayKey(key, msg)
	case gram.StageWednesday:
		return s.handleWednesdayKey(key)
	case gram.StageFriday:
		return s.handleFridayKey(key, msg)
	}
	return s, nil
}

func (s *DrillScreen) handleMondayKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	work := s.session.History.Monday
	idx := s.grid.Cursor

	switch key {
	case "up", "k":
		work.SetPartOfSpeech(idx, cyclePOS(work, idx, -1))
	case "down", "j":
		work.SetPartOfSpeech(idx, cyclePOS(work, idx, +1))
	case "tab":
		if tag, ok := work.Tags[idx]; ok {
			work.SetSubType(idx, nextSubType(tag))
		}
	case "backspace":
		work.ClearTag(idx)
	default:
		var cmd tea.Cmd
		s.grid, cmd = s.grid.Update(msg)
		return s, cmd
	}
	return s, nil
}

// cyclePOS returns the part of speech delta steps away from the current
// tag at idx, wrapping around the display order.
func cyclePOS(work *gram.MondayWork, idx, delta int) gram.PartOfSpeech {
	cur := -1
	if tag, ok := work.Tags[idx]; ok {
		for i, pos := range gram.PartsOfSpeech {
			if pos == tag.POS {
				cur = i
				break
			}
		}
	}
	n := len(gram.PartsOfSpeech)
	return gram.PartsOfSpeech[((cur+delta)%n+n)%n]
}

// nextSubType returns the sub-type after the tag's current one in the
// part of speech's sub-type list, wrapping around.
func nextSubType(tag gram.POSTag) string {
	subs := gram.SubTypesFor(tag.POS)
	if len(subs) == 0 {
		return ""
	}
	for i, sub := range subs {
		if sub == tag.SubType {
			return subs[(i+1)%len(subs)]
		}
	}
	return subs[0]
}

func (s *DrillScreen) handleTuesdayKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch key {
	case "tab":
		s.tuesCat = gram.TuesdayCategories[(int(s.tuesCat)+1)%len(gram.TuesdayCategories)]
	case "space":
		s.session.History.Tuesday.Toggle(s.tuesCat, s.grid.Cursor)
	default:
		var cmd tea.Cmd
		s.grid, cmd = s.grid.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DrillScreen) handleWednesdayKey(key string) (screen.Screen, tea.Cmd) {
	work := s.session.History.Wednesday

	switch key {
	case "up", "k":
		if s.wedRow > 0 {
			s.wedRow--
		}
	case "down", "j":
		if s.wedRow < 2 {
			s.wedRow++
		}
	case "left", "h":
		switch s.wedRow {
		case 0:
			work.SetClauseCount(work.ClauseCount - 1)
		case 1:
			work.SetSentenceType(cycleChoice(gram.SentenceTypes, work.SentenceType, -1))
		case 2:
			work.SetPurpose(cycleChoice(gram.SentencePurposes, work.Purpose, -1))
		}
	case "right", "l":
		switch s.wedRow {
		case 0:
			work.SetClauseCount(work.ClauseCount + 1)
		case 1:
			work.SetSentenceType(cycleChoice(gram.SentenceTypes, work.SentenceType, +1))
		case 2:
			work.SetPurpose(cycleChoice(gram.SentencePurposes, work.Purpose, +1))
		}
	}
	return s, nil
}

// cycleChoice steps through a fixed option list, wrapping at both ends.
func cycleChoice[T comparable](options []T, current T, delta int) T {
	cur := 0
	for i, o := range options {
		if o == current {
			cur = i
			break
		}
	}
	n := len(options)
	return options[((cur+delta)%n+n)%n]
}

func (s *DrillScreen) handleFridayKey(key string, msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	work := s.session.History.Friday

	switch key {
	case "tab":
		s.friSlot = (s.friSlot + 1) % len(work.Slots)
	case "space":
		work.Assign(work.Slots[s.friSlot].ID, s.grid.Cursor)
		if s.session.MusicEnabled {
			s.hypeSvc.RequestSFX(context.Background(), hype.KindSelect)
		}
	case "backspace":
		work.Assign(work.Slots[s.friSlot].ID, gram.NoWord)
	case "r":
		work.ToggleRotation(work.Slots[s.friSlot].ID)
	default:
		var cmd tea.Cmd
		s.grid, cmd = s.grid.Update(msg)
		return s, cmd
	}
	return s, nil
}

// submit snapshots the active stage's work and grades it asynchronously.
func (s *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	if s.grading || s.session.Loading || s.advancing {
		return s, nil
	}
	s.grading = true

	stage := s.session.Stage()
	sentence := s.session.Sentence
	work := s.session.History.WorkFor(stage)
	grader := s.grader

	return s, func() tea.Msg {
		v, err := grader.Grade(context.Background(), stage, sentence, work)
		return gradeResultMsg{Stage: stage, Verdict: v, Err: err}
	}
}

// cycleDifficulty steps to the next difficulty and restarts the drill:
// fresh session state, empty pool, new first sentence.
func (s *DrillScreen) cycleDifficulty() (screen.Screen, tea.Cmd) {
	next := cycleChoice(gram.Difficulties, s.session.Difficulty, +1)
	s.session.ChangeDifficulty(next)
	s.pool.Reset(next)
	s.grading = false
	s.advancing = false
	return s, s.refillCmd()
}

// endSession persists the end event and a progress snapshot, then swaps
// in the session summary.
func (s *DrillScreen) endSession() tea.Cmd {
	ctx := context.Background()
	_ = s.eventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:          s.sessionID,
		Action:             "end",
		Difficulty:         string(s.session.Difficulty),
		SentencesCompleted: s.session.SentencesDone,
		StagesPassed:       s.stagesPassed,
		DurationSecs:       int(time.Since(s.startTime).Seconds()),
	})

	snapData := store.SnapshotData{
		Version:            1,
		Difficulty:         string(s.session.Difficulty),
		SentencesCompleted: s.session.SentencesDone,
	}
	if stats, err := s.eventRepo.StageAccuracy(ctx); err == nil {
		snapData.StageAccuracy = make(map[string]float64, len(stats))
		for _, st := range stats {
			snapData.StageAccuracy[st.Stage] = st.Accuracy()
		}
	}
	_ = s.snapRepo.Save(ctx, &store.Snapshot{
		Timestamp: time.Now(),
		Data:      snapData,
	})

	report := &summary.Report{
		Duration:           time.Since(s.startTime),
		Difficulty:         s.session.Difficulty,
		SentencesCompleted: s.session.SentencesDone,
		StagesPassed:       s.stagesPassed,
	}
	for _, stage := range gram.StageOrder {
		if tally, ok := s.tallies[stage]; ok {
			report.StageResults = append(report.StageResults, summary.StageResult{
				Stage:     stage,
				Attempted: tally.attempted,
				Correct:   tally.correct,
			})
		}
	}

	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: summary.New(report)} }
}

// resetEditors realigns the per-stage editor widgets with the session.
func (s *DrillScreen) resetEditors() {
	s.grid = components.NewWordGrid(s.session.Sentence.Words)
	s.wireGrid()
	s.tuesCat = gram.CategorySubject
	s.wedRow = 0
	s.friSlot = 0
	s.input = components.NewTextInput("Rewrite the sentence...", false, 120)
	s.input.Model.SetValue(s.session.Sentence.Raw)
	s.session.History.Thursday.SetCorrected(s.session.Sentence.Raw)
}

// wireGrid points the grid's annotation hooks at the active stage's work.
func (s *DrillScreen) wireGrid() {
	s.grid.Annotate = func(idx int) string {
		switch s.session.Stage() {
		case gram.StageMonday:
			if tag, ok := s.session.History.Monday.Tags[idx]; ok {
				label := tag.POS.Abbrev()
				if tag.SubType != "" {
					label += "·" + tag.SubType
				}
				return label
			}
		case gram.StageTuesday:
			return tuesdayMarks(s.session.History.Tuesday, idx)
		case gram.StageFriday:
			return fridayMark(s.session.History.Friday, idx)
		}
		return ""
	}
	s.grid.Marked = func(idx int) bool {
		switch s.session.Stage() {
		case gram.StageMonday:
			_, ok := s.session.History.Monday.Tags[idx]
			return ok
		case gram.StageTuesday:
			return tuesdayMarks(s.session.History.Tuesday, idx) != ""
		case gram.StageFriday:
			return s.session.History.Friday.WordUsed(idx)
		}
		return false
	}
}

// tuesdayMarks builds the compact category markers shown under a word.
func tuesdayMarks(work *gram.TuesdayWork, idx int) string {
	var b strings.Builder
	if work.Subject.Has(idx) {
		b.WriteString("S")
	}
	if work.Verb.Has(idx) {
		b.WriteString("V")
	}
	if work.CompleteSubject.Has(idx) {
		b.WriteString("cs")
	}
	if work.CompletePredicate.Has(idx) {
		b.WriteString("cp")
	}
	return b.String()
}

// fridayMark returns the slot id holding a word, if any.
func fridayMark(work *gram.FridayWork, idx int) string {
	for _, slot := range work.Slots {
		if slot.WordIdx == idx {
			return slot.ID
		}
	}
	return ""
}

// serializeWork renders a work record as JSON for the event log.
func serializeWork(work any) string {
	b, err := json.Marshal(work)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// hypePollCmd polls for finished audio twice a second.
func hypePollCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return hypePollMsg(t)
	})
}
