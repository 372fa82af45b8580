package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammiz/internal/drill"
)

func testReport() *Report {
	return &Report{
		Duration:           15 * time.Minute,
		Difficulty:         drill.DifficultyMedium,
		SentencesCompleted: 3,
		StagesPassed:       16,
		StageResults: []StageResult{
			{Stage: drill.StageMonday, Attempted: 4, Correct: 3},
			{Stage: drill.StageTuesday, Attempted: 3, Correct: 3},
			{Stage: drill.StageWednesday, Attempted: 5, Correct: 4},
			{Stage: drill.StageThursday, Attempted: 3, Correct: 3},
			{Stage: drill.StageFriday, Attempted: 3, Correct: 3},
		},
	}
}

func TestReport_Accuracy(t *testing.T) {
	r := testReport()
	if got := r.TotalAttempted(); got != 18 {
		t.Errorf("TotalAttempted = %d, want 18", got)
	}
	if got := r.TotalCorrect(); got != 16 {
		t.Errorf("TotalCorrect = %d, want 16", got)
	}
	want := float64(16) / float64(18)
	if got := r.Accuracy(); got != want {
		t.Errorf("Accuracy = %f, want %f", got, want)
	}
}

func TestReport_AccuracyEmpty(t *testing.T) {
	r := &Report{}
	if got := r.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %f, want 0", got)
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testReport())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testReport())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Sentences: 3") {
		t.Error("expected sentence count in view")
	}
	if !strings.Contains(view, "Monday") {
		t.Error("expected stage breakdown in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testReport())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testReport())
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
