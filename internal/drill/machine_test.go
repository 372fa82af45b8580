package drill

import "testing"

func TestAdvanceWalksStageOrder(t *testing.T) {
	m := NewMachine()

	want := []Stage{StageTuesday, StageWednesday, StageThursday, StageFriday}
	for i, next := range want {
		done := m.Advance()
		if done {
			t.Fatalf("step %d: unexpected sentenceDone", i)
		}
		if m.Current() != next {
			t.Fatalf("step %d: current = %s, want %s", i, m.Current(), next)
		}
		if got := len(m.Completed()); got != i+1 {
			t.Fatalf("step %d: completed = %d stages, want %d", i, got, i+1)
		}
	}
}

func TestAdvancePastFridaySignalsSentenceDone(t *testing.T) {
	m := NewMachine()
	for i := 0; i < 4; i++ {
		m.Advance()
	}
	if m.Current() != StageFriday {
		t.Fatalf("current = %s, want Friday", m.Current())
	}

	done := m.Advance()
	if !done {
		t.Fatal("expected sentenceDone on Friday")
	}
	if m.Current() != StageFriday {
		t.Errorf("current = %s, want Friday (no sixth stage)", m.Current())
	}
}

func TestCompletedIsPrefixOfStageOrder(t *testing.T) {
	m := NewMachine()
	m.Advance()
	m.Advance()

	completed := m.Completed()
	for i, s := range completed {
		if s != StageOrder[i] {
			t.Fatalf("completed[%d] = %s, want %s", i, s, StageOrder[i])
		}
	}
	for _, s := range completed {
		if s == m.Current() {
			t.Fatal("completed history contains the current stage")
		}
	}
}

func TestResetForNewSentence(t *testing.T) {
	m := NewMachine()
	m.Advance()
	m.Advance()

	m.ResetForNewSentence()

	if m.Current() != StageMonday {
		t.Errorf("current = %s, want Monday", m.Current())
	}
	if len(m.Completed()) != 0 {
		t.Errorf("completed = %v, want empty", m.Completed())
	}
}

func TestCompletedReturnsCopy(t *testing.T) {
	m := NewMachine()
	m.Advance()

	got := m.Completed()
	got[0] = StageFriday

	if m.Completed()[0] != StageMonday {
		t.Error("mutating the returned slice disturbed the machine")
	}
}
