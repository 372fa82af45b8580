package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammiz/internal/screen"
)

// fakeScreen stands in for a real screen and records whether Init ran.
type fakeScreen struct {
	title   string
	initRan bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.title }
func (s *fakeScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	drill := &fakeScreen{title: "drill"}
	r.Push(drill)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "drill" {
		t.Errorf("expected active 'drill', got %q", r.Active().Title())
	}
	if !drill.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	drill := &fakeScreen{title: "drill"}
	r.Push(drill)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	summary := &fakeScreen{title: "summary"}
	r.Replace(summary)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	summary := &fakeScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.Active().Title())
	}
	if !summary.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	home := &fakeScreen{title: "home"}
	r := New(home)

	drill := &fakeScreen{title: "drill"}
	r.Push(drill)

	// The drill hands off to the summary without growing the stack.
	summary := &fakeScreen{title: "summary"}
	r.Replace(summary)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.Active().Title())
	}
}
