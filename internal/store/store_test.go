package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

func testEventRepo(t *testing.T, s *Store) EventRepo {
	t.Helper()
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo
}

func TestAppendAndQueryGradeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	events := []GradeEventData{
		{SessionID: "s1", Stage: "monday", Difficulty: "medium", Sentence: "the dog ran fast yesterday", Work: `{"tags":{}}`, Correct: true, Feedback: "sigma grindset", TimeMs: 4200},
		{SessionID: "s1", Stage: "tuesday", Difficulty: "medium", Sentence: "the dog ran fast yesterday", Work: `{"subjectIndices":[1]}`, Correct: false, Feedback: "not it", CorrectData: "dog is the subject", TimeMs: 3100},
		{SessionID: "s1", Stage: "tuesday", Difficulty: "medium", Sentence: "the dog ran fast yesterday", Work: `{"subjectIndices":[1],"verbIndices":[2]}`, Correct: true, Feedback: "no cap", TimeMs: 2800},
	}
	for i, e := range events {
		if err := repo.AppendGradeEvent(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryGradeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d events, want 3", len(got))
	}
	// Newest first.
	if got[0].Stage != "tuesday" || !got[0].Correct {
		t.Errorf("newest event = %+v, want the correct tuesday grade", got[0])
	}
	if got[2].Stage != "monday" {
		t.Errorf("oldest event stage = %q, want monday", got[2].Stage)
	}
	if got[1].CorrectData != "dog is the subject" {
		t.Errorf("correct_data = %q", got[1].CorrectData)
	}
}

func TestQueryGradeEventsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendGradeEvent(ctx, GradeEventData{
			SessionID: "s1", Stage: "monday", Difficulty: "easy",
			Sentence: "my cat sleeps all day long", Work: "{}", Correct: i%2 == 0, TimeMs: 1000,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryGradeEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d", got[0].Sequence, got[1].Sequence)
	}
}

func TestStageAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	grades := []struct {
		stage   string
		correct bool
	}{
		{"monday", true},
		{"monday", false},
		{"monday", true},
		{"friday", true},
	}
	for _, g := range grades {
		err := repo.AppendGradeEvent(ctx, GradeEventData{
			SessionID: "s1", Stage: g.stage, Difficulty: "hard",
			Sentence: "the tired teacher graded papers", Work: "{}", Correct: g.correct, TimeMs: 500,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.StageAccuracy(ctx)
	if err != nil {
		t.Fatalf("stage accuracy: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stages, want 2", len(stats))
	}

	byStage := make(map[string]StageStats)
	for _, st := range stats {
		byStage[st.Stage] = st
	}
	mon := byStage["monday"]
	if mon.Attempts != 3 || mon.Correct != 2 {
		t.Errorf("monday = %d/%d, want 2/3", mon.Correct, mon.Attempts)
	}
	if acc := mon.Accuracy(); acc < 0.66 || acc > 0.67 {
		t.Errorf("monday accuracy = %f", acc)
	}
	if fri := byStage["friday"]; fri.Accuracy() != 1.0 {
		t.Errorf("friday accuracy = %f, want 1.0", fri.Accuracy())
	}
}

func TestAppendSessionEvents(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "start", Difficulty: "medium",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s1", Action: "end", Difficulty: "medium",
		SentencesCompleted: 2, StagesPassed: 10, DurationSecs: 600,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}
}

func TestLLMEventQueriesAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	reqs := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "sentence-gen", InputTokens: 100, OutputTokens: 50, Success: true, RequestBody: "[system]\ngen", ResponseBody: `{"sentences":[]}`},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "grading", InputTokens: 200, OutputTokens: 30, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "grading", InputTokens: 150, OutputTokens: 20, Success: false, ErrorMessage: "rate limited"},
	}
	for i, r := range reqs {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Single-event lookup round-trips the stored bodies.
	rec, err := repo.GetLLMEvent(ctx, records[2].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec == nil || rec.RequestBody != "[system]\ngen" {
		t.Errorf("request body = %+v", rec)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown sequence")
	}

	usage, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]LLMUsage)
	for _, u := range usage {
		byPurpose[u.Key] = u
	}
	if g := byPurpose["grading"]; g.Requests != 2 || g.InputTokens != 350 {
		t.Errorf("grading usage = %+v", g)
	}
	if sg := byPurpose["sentence-gen"]; sg.OutputTokens != 50 {
		t.Errorf("sentence-gen usage = %+v", sg)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Requests != 3 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestGlobalSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := testEventRepo(t, s)
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: "start", Difficulty: "easy"}); err != nil {
		t.Fatalf("session: %v", err)
	}
	if err := repo.AppendGradeEvent(ctx, GradeEventData{SessionID: "s1", Stage: "monday", Difficulty: "easy", Sentence: "birds sing in the morning", Work: "{}", Correct: true, TimeMs: 100}); err != nil {
		t.Fatalf("grade: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Model: "mock", Purpose: "grading", Success: true}); err != nil {
		t.Fatalf("llm: %v", err)
	}

	grades, err := repo.QueryGradeEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query grades: %v", err)
	}
	llms, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	if grades[0].Sequence != 2 {
		t.Errorf("grade sequence = %d, want 2", grades[0].Sequence)
	}
	if llms[0].Sequence != 3 {
		t.Errorf("llm sequence = %d, want 3", llms[0].Sequence)
	}
}
