package store

import (
	"context"
	"encoding/json"
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
		// so journal_mode is only meaningful with file-based DBs.
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

func TestSessionSnapshotRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionSnapshotRepo()
	ctx := context.Background()

	// No marker yet.
	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	data := json.RawMessage(`{"session_id":"s-1","current_index":2}`)
	if err := repo.Save(ctx, "s-1", data); err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.SessionID != "s-1" {
		t.Errorf("session id = %q, want s-1", snap.SessionID)
	}

	var decoded map[string]any
	if err := json.Unmarshal(snap.Data, &decoded); err != nil {
		t.Fatalf("decode snapshot data: %v", err)
	}
	if decoded["current_index"].(float64) != 2 {
		t.Errorf("current_index = %v, want 2", decoded["current_index"])
	}
}

func TestSessionSnapshotSaveReplacesMarker(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionSnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "s-1", json.RawMessage(`{"v":1}`)); err != nil {
		t.Fatalf("save 1: %v", err)
	}
	if err := repo.Save(ctx, "s-2", json.RawMessage(`{"v":2}`)); err != nil {
		t.Fatalf("save 2: %v", err)
	}

	count, err := s.Client().SessionSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1 (single marker)", count)
	}

	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if snap.SessionID != "s-2" {
		t.Errorf("session id = %q, want s-2", snap.SessionID)
	}
}

func TestSessionSnapshotClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionSnapshotRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, "s-1", json.RawMessage(`{}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	snap, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load after clear: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot after clear")
	}

	// Clearing an already-empty store is fine.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear (empty): %v", err)
	}
}

func TestCandidateArchiveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.CandidateRepo()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	rec := ArchivedInterview{
		SessionID:   "s-1",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "415-555-0134",
		Role:        "backend",
		FinalScore:  8.3,
		Summary:     "Strong candidate.",
		CompletedAt: now,
		Answers: []ArchivedAnswer{
			{QuestionIndex: 0, QuestionID: "q-0", QuestionText: "Q0", Difficulty: "easy", AnswerText: "A0", Score: 9, Feedback: "good", Confidence: 0.8, SubmittedAt: now},
			{QuestionIndex: 1, QuestionID: "q-1", QuestionText: "Q1", Difficulty: "easy", AnswerText: "A1", Score: 8, Feedback: "fine", Confidence: 0.7, SubmittedAt: now},
		},
	}

	if err := repo.Archive(ctx, rec); err != nil {
		t.Fatalf("archive: %v", err)
	}

	got, err := repo.Get(ctx, "s-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected archived interview")
	}
	if got.FinalScore != 8.3 {
		t.Errorf("final score = %v, want 8.3", got.FinalScore)
	}
	if len(got.Answers) != 2 {
		t.Fatalf("answers = %d, want 2", len(got.Answers))
	}
	if got.Answers[0].QuestionIndex != 0 || got.Answers[1].QuestionIndex != 1 {
		t.Error("answers not ordered by question index")
	}
}

func TestCandidateGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.CandidateRepo().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for missing session")
	}
}

func TestCandidateListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.CandidateRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Archive(ctx, ArchivedInterview{
			SessionID:   string(rune('a' + i)),
			Name:        "C",
			Email:       "c@example.com",
			Phone:       "1",
			Role:        "backend",
			FinalScore:  float64(i),
			CompletedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("archive %d: %v", i, err)
		}
	}

	list, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list len = %d, want 2", len(list))
	}
	if list[0].FinalScore != 2 {
		t.Errorf("first result score = %v, want newest (2)", list[0].FinalScore)
	}
}

func TestEventRepoAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "question-gen", InputTokens: 10, OutputTokens: 20, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "question-gen", Success: false, ErrorMessage: "boom"},
		{Provider: "mock", Model: "mock", Purpose: "answer-eval", InputTokens: 5, OutputTokens: 5, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.RecentLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent len = %d, want 2", len(recent))
	}
	if recent[0].Purpose != "answer-eval" {
		t.Errorf("newest first: got %q", recent[0].Purpose)
	}

	stats, err := repo.LLMStatsByPurpose(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	byPurpose := make(map[string]LLMStats)
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	qg := byPurpose["question-gen"]
	if qg.Requests != 2 || qg.Failures != 1 || qg.InputTokens != 10 {
		t.Errorf("question-gen stats = %+v", qg)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if seq <= prev {
			t.Errorf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
