package grading

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/llm"
)

func TestGradeCorrectVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"feedback":"nice","correct_data":""}`),
	})
	g := New(mock, DefaultConfig())

	sentence := drill.NewSentence("the dog ran fast yesterday")
	work := drill.NewMondayWork()
	work.SetPartOfSpeech(1, drill.PosNoun)
	work.SetSubType(1, "Subject")

	v, err := g.Grade(context.Background(), drill.StageMonday, sentence, work)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsCorrect {
		t.Error("expected correct verdict")
	}
	if v.Feedback != "nice" {
		t.Errorf("feedback = %q, want nice", v.Feedback)
	}
}

func TestGradeIncorrectVerdict(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":false,"feedback":"check word 3","correct_data":"ran is the verb"}`),
	})
	g := New(mock, DefaultConfig())

	sentence := drill.NewSentence("the dog ran fast yesterday")
	v, err := g.Grade(context.Background(), drill.StageMonday, sentence, drill.NewMondayWork())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsCorrect {
		t.Error("expected incorrect verdict")
	}
	if v.CorrectData == "" {
		t.Error("expected correct_data passed through")
	}
}

func TestGradeProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := New(mock, DefaultConfig())

	sentence := drill.NewSentence("the dog ran fast yesterday")
	if _, err := g.Grade(context.Background(), drill.StageMonday, sentence, drill.NewMondayWork()); err == nil {
		t.Fatal("expected error")
	}
}

func TestGradeSerializesWorkSnapshot(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"feedback":"ok"}`),
	})
	g := New(mock, DefaultConfig())

	sentence := drill.NewSentence("the dog ran fast yesterday")
	work := drill.NewTuesdayWork()
	work.Toggle(drill.CategorySubject, 1)
	work.Toggle(drill.CategoryVerb, 2)

	if _, err := g.Grade(context.Background(), drill.StageTuesday, sentence, work); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	userMsg := req.Messages[0].Content
	if !strings.Contains(userMsg, `"subjectIndices":[1]`) {
		t.Errorf("user message missing subject indices: %s", userMsg)
	}
	if !strings.Contains(userMsg, `"verbIndices":[2]`) {
		t.Errorf("user message missing verb indices: %s", userMsg)
	}
	if !strings.Contains(userMsg, "0:the 1:dog 2:ran 3:fast 4:yesterday") {
		t.Errorf("user message missing indexed words: %s", userMsg)
	}
	if req.Schema != VerdictSchema {
		t.Error("expected the verdict schema on the request")
	}
}

func TestGradeFridayWireShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"is_correct":true,"feedback":"ok"}`),
	})
	g := New(mock, DefaultConfig())

	sentence := drill.NewSentence("the dog ran fast yesterday")
	work := drill.NewFridayWork()
	work.Assign("subj", 1)

	if _, err := g.Grade(context.Background(), drill.StageFriday, sentence, work); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userMsg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(userMsg, `"id":"subj"`) || !strings.Contains(userMsg, `"wordIdx":1`) {
		t.Errorf("user message missing diagram slot data: %s", userMsg)
	}
	if !strings.Contains(userMsg, `"wordIdx":null`) {
		t.Errorf("expected empty slots serialized as null: %s", userMsg)
	}
}
