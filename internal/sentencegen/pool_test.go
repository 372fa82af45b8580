package sentencegen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/abhisek/grammiz/internal/drill"
)

// scriptedSource returns canned batches in order and records calls.
type scriptedSource struct {
	mu      sync.Mutex
	batches [][]string
	errs    []error
	calls   int

	// block, when non-nil, is closed to release an in-progress call.
	block chan struct{}
	// started is signalled when a call begins.
	started chan struct{}
}

func (s *scriptedSource) GenerateBatch(_ context.Context, _ drill.Difficulty, _ int) ([]string, error) {
	s.mu.Lock()
	call := s.calls
	s.calls++
	started := s.started
	block := s.block
	s.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if block != nil {
		<-block
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if call < len(s.errs) && s.errs[call] != nil {
		return nil, s.errs[call]
	}
	if call < len(s.batches) {
		return s.batches[call], nil
	}
	return nil, errors.New("script exhausted")
}

func (s *scriptedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func batch(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("the cat number %d sat on the mat", i)
	}
	return out
}

func TestRefillAppendsBatch(t *testing.T) {
	src := &scriptedSource{batches: [][]string{batch(5)}}
	p := NewPool(src, drill.DifficultyEasy, DefaultConfig())

	if err := p.Refill(context.Background()); err != nil {
		t.Fatalf("refill: %v", err)
	}
	if p.Len() != 5 {
		t.Errorf("len = %d, want 5", p.Len())
	}
}

func TestTakeNextIsFIFO(t *testing.T) {
	src := &scriptedSource{batches: [][]string{{"first sentence here now ok yes", "second sentence here now ok yes"}}}
	p := NewPool(src, drill.DifficultyEasy, DefaultConfig())
	if err := p.Refill(context.Background()); err != nil {
		t.Fatalf("refill: %v", err)
	}

	got, ok := p.TakeNext()
	if !ok || got != "first sentence here now ok yes" {
		t.Errorf("TakeNext = %q, %v; want head of queue", got, ok)
	}
	if p.Len() != 1 {
		t.Errorf("len = %d, want 1", p.Len())
	}

	got, _ = p.TakeNext()
	if got != "second sentence here now ok yes" {
		t.Errorf("TakeNext = %q, want second sentence", got)
	}

	if _, ok := p.TakeNext(); ok {
		t.Error("expected exhausted queue")
	}
}

func TestRefillFailureLeavesQueueUnchanged(t *testing.T) {
	src := &scriptedSource{
		batches: [][]string{batch(3), nil},
		errs:    []error{nil, errors.New("provider down")},
	}
	p := NewPool(src, drill.DifficultyEasy, DefaultConfig())
	if err := p.Refill(context.Background()); err != nil {
		t.Fatalf("first refill: %v", err)
	}

	if err := p.Refill(context.Background()); err == nil {
		t.Fatal("expected error from failed refill")
	}
	if p.Len() != 3 {
		t.Errorf("len = %d, want 3 (unchanged)", p.Len())
	}

	// A failed refill clears the in-flight flag so the next one runs.
	if !p.NeedsRefill() && p.Len() >= DefaultConfig().LowWater {
		// queue still above low water, nothing to assert
	}
}

func TestRefillSingleFlight(t *testing.T) {
	src := &scriptedSource{
		batches: [][]string{batch(5)},
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	p := NewPool(src, drill.DifficultyEasy, DefaultConfig())

	done := make(chan error, 1)
	go func() { done <- p.Refill(context.Background()) }()
	<-src.started

	// Second refill while the first is in flight: no-op, no second request.
	if err := p.Refill(context.Background()); err != nil {
		t.Fatalf("concurrent refill: %v", err)
	}
	if src.callCount() != 1 {
		t.Fatalf("calls = %d, want 1", src.callCount())
	}

	close(src.block)
	if err := <-done; err != nil {
		t.Fatalf("refill: %v", err)
	}
	if p.Len() != 5 {
		t.Errorf("len = %d, want 5 (no duplicate entries)", p.Len())
	}
}

func TestNeedsRefillBelowLowWater(t *testing.T) {
	src := &scriptedSource{batches: [][]string{batch(3)}}
	p := NewPool(src, drill.DifficultyEasy, DefaultConfig())
	if err := p.Refill(context.Background()); err != nil {
		t.Fatalf("refill: %v", err)
	}

	if p.NeedsRefill() {
		t.Error("queue of 3 should not need refill at low water 2")
	}
	p.TakeNext()
	p.TakeNext()
	if !p.NeedsRefill() {
		t.Error("queue of 1 should need refill")
	}
}

func TestResetDiscardsQueueAndSwitchesDifficulty(t *testing.T) {
	src := &scriptedSource{batches: [][]string{batch(5)}}
	p := NewPool(src, drill.DifficultyEasy, DefaultConfig())
	if err := p.Refill(context.Background()); err != nil {
		t.Fatalf("refill: %v", err)
	}

	p.Reset(drill.DifficultyHard)

	if p.Len() != 0 {
		t.Errorf("len = %d, want 0 after reset", p.Len())
	}
	if p.Difficulty() != drill.DifficultyHard {
		t.Errorf("difficulty = %s, want hard", p.Difficulty())
	}
}

func TestSeedAppends(t *testing.T) {
	p := NewPool(&scriptedSource{}, drill.DifficultyEasy, DefaultConfig())
	p.Seed(Fallback())
	if p.Len() != 2 {
		t.Errorf("len = %d, want 2", p.Len())
	}
	head, _ := p.TakeNext()
	if head != FallbackSentences[0] {
		t.Errorf("head = %q, want first fallback sentence", head)
	}
}
