package sentencegen

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/llm"
)

func TestGenerateBatchNormalizes(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"sentences":[
			"The quick, brown fox jumped over it!",
			"my sister reads mystery novels before bed",
			"short one"
		]}`),
	})
	src := New(mock, DefaultConfig())

	got, err := src.GenerateBatch(context.Background(), drill.DifficultyEasy, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"the quick brown fox jumped over it",
		"my sister reads mystery novels before bed",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d sentences, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sentence %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGenerateBatchTruncatesToCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"sentences":[
			"the dog ran through the open gate",
			"a bird sang outside my window today",
			"the teacher wrote notes on the board"
		]}`),
	})
	src := New(mock, DefaultConfig())

	got, err := src.GenerateBatch(context.Background(), drill.DifficultyMedium, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d sentences, want 2", len(got))
	}
}

func TestGenerateBatchEmptyUsableIsError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"sentences":["too short","also short"]}`),
	})
	src := New(mock, DefaultConfig())

	if _, err := src.GenerateBatch(context.Background(), drill.DifficultyEasy, 5); err == nil {
		t.Fatal("expected error for an unusable batch")
	}
}

func TestGenerateBatchProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	src := New(mock, DefaultConfig())

	if _, err := src.GenerateBatch(context.Background(), drill.DifficultyEasy, 5); err == nil {
		t.Fatal("expected error")
	}
}

func TestGenerateBatchRequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"sentences":["the cat slept on the warm windowsill"]}`),
	})
	src := New(mock, DefaultConfig())

	if _, err := src.GenerateBatch(context.Background(), drill.DifficultyHard, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != BatchSchema {
		t.Error("expected the batch schema on the request")
	}
	if req.System == "" {
		t.Error("expected a system prompt")
	}
}
