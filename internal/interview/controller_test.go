package interview

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/abhisek/intervu/internal/evaluator"
	"github.com/abhisek/intervu/internal/intake"
	"github.com/abhisek/intervu/internal/questiongen"
	"github.com/abhisek/intervu/internal/schedule"
	"github.com/abhisek/intervu/internal/scoring"
	"github.com/abhisek/intervu/internal/store"
)

// fakeSnapshotRepo is an in-memory SessionSnapshotRepo.
type fakeSnapshotRepo struct {
	mu    sync.Mutex
	snap  *store.SessionSnapshot
	saves int
}

func (f *fakeSnapshotRepo) Save(_ context.Context, sessionID string, data json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.snap = &store.SessionSnapshot{SessionID: sessionID, Data: append(json.RawMessage(nil), data...)}
	return nil
}

func (f *fakeSnapshotRepo) Load(_ context.Context) (*store.SessionSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap, nil
}

func (f *fakeSnapshotRepo) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = nil
	return nil
}

// fakeCandidateRepo records archived interviews.
type fakeCandidateRepo struct {
	mu       sync.Mutex
	archived []store.ArchivedInterview
}

func (f *fakeCandidateRepo) Archive(_ context.Context, rec store.ArchivedInterview) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.archived = append(f.archived, rec)
	return nil
}

func (f *fakeCandidateRepo) List(context.Context, int) ([]store.ArchivedInterview, error) {
	return nil, nil
}

func (f *fakeCandidateRepo) Get(context.Context, string) (*store.ArchivedInterview, error) {
	return nil, nil
}

// countingGenerator wraps the offline generator and counts calls.
type countingGenerator struct {
	inner questiongen.Generator
	mu    sync.Mutex
	calls int
}

func (g *countingGenerator) Generate(ctx context.Context, role string, d schedule.Difficulty, prior string) questiongen.Question {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.inner.Generate(ctx, role, d, prior)
}

func newTestController(snaps *fakeSnapshotRepo, cands *fakeCandidateRepo) (*Controller, *countingGenerator) {
	gen := &countingGenerator{inner: questiongen.NewOfflineGenerator()}
	c := NewController(Deps{
		Generator:  gen,
		Evaluator:  evaluator.NewOfflineEvaluator(),
		Summarizer: scoring.NewOfflineSummarizer(),
		Snapshots:  snaps,
		Candidates: cands,
	})
	return c, gen
}

func testCandidate() Candidate {
	return Candidate{Name: "Jane Doe", Email: "jane@example.com", Phone: "415-555-0134"}
}

func TestBeginSessionRequiresCompleteProfile(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	ctx := context.Background()

	_, err := c.BeginSession(ctx, Candidate{Name: "Jane Doe"}, "backend")
	if err == nil {
		t.Fatal("want error for incomplete profile")
	}

	sess, err := c.BeginSession(ctx, testCandidate(), "backend")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if sess.Phase != PhaseInProgress {
		t.Errorf("phase = %q, want in_progress", sess.Phase)
	}
	if sess.SessionID == "" {
		t.Error("missing session id")
	}
	if sess.CurrentIndex != 0 {
		t.Errorf("current index = %d, want 0", sess.CurrentIndex)
	}
}

func TestStartIntakeMovesToAwaitingProfile(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})

	sess := c.StartIntake(intake.Contact{Name: "Jane Doe", Email: "jane@example.com"})
	if sess.Phase != PhaseAwaitingProfile {
		t.Errorf("phase = %q, want awaiting_profile", sess.Phase)
	}
	if sess.Candidate.Phone != "" {
		t.Errorf("phone = %q, want empty until supplied", sess.Candidate.Phone)
	}
}

func TestGenerateCurrentStartsTimerWithScheduleLimit(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")

	q, installed := c.GenerateCurrent(ctx)
	if !installed {
		t.Fatal("expected question installed")
	}
	if q.Difficulty != schedule.Easy {
		t.Errorf("first question difficulty = %q, want easy", q.Difficulty)
	}

	sess := c.GetSnapshot()
	if !sess.Timer.Running || sess.Timer.Remaining != 20 {
		t.Errorf("timer = %+v, want running at 20s", sess.Timer)
	}
}

func TestGenerateCurrentIsIdempotentPerIndex(t *testing.T) {
	c, gen := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")

	q1, _ := c.GenerateCurrent(ctx)
	q2, installed := c.GenerateCurrent(ctx)
	if installed {
		t.Error("second call installed a question")
	}
	if q1.ID != q2.ID {
		t.Error("second call returned a different question")
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
}

func TestSubmitAnswerAdvancesIndexOnce(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")
	c.GenerateCurrent(ctx)

	if !c.SubmitAnswer(ctx, 0, "my answer") {
		t.Fatal("submission rejected")
	}

	sess := c.GetSnapshot()
	if sess.CurrentIndex != 1 {
		t.Errorf("current index = %d, want 1", sess.CurrentIndex)
	}
	if len(sess.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(sess.Answers))
	}
	if sess.Answers[0].Score == nil || *sess.Answers[0].Score != 5 {
		t.Errorf("score = %v, want 5 (offline non-empty)", sess.Answers[0].Score)
	}

	// Second submission for the same index is a no-op.
	if c.SubmitAnswer(ctx, 0, "changed my mind") {
		t.Error("duplicate submission accepted")
	}
	sess = c.GetSnapshot()
	if sess.Answers[0].AnswerText != "my answer" {
		t.Errorf("stored answer changed: %q", sess.Answers[0].AnswerText)
	}
}

func TestSubmitAnswerRejectsWrongIndex(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")
	c.GenerateCurrent(ctx)

	if c.SubmitAnswer(ctx, 3, "wrong index") {
		t.Error("accepted submission for a future index")
	}
	if c.SubmitAnswer(ctx, -1, "negative") {
		t.Error("accepted submission for a negative index")
	}
}

func TestTimerExpiryTriggersOneSubmission(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")
	c.GenerateCurrent(ctx)
	c.SetDraft("half-typed thought")

	// Run the 20s easy timer down.
	expiries := 0
	for i := 0; i < 25; i++ {
		_, expired := c.Tick()
		if expired {
			expiries++
			sess := c.GetSnapshot()
			c.SubmitAnswer(ctx, sess.CurrentIndex, sess.Draft)
		}
	}
	if expiries != 1 {
		t.Fatalf("expiries = %d, want exactly 1", expiries)
	}

	sess := c.GetSnapshot()
	if len(sess.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(sess.Answers))
	}
	if sess.Answers[0].AnswerText != "half-typed thought" {
		t.Errorf("auto-submitted text = %q", sess.Answers[0].AnswerText)
	}
}

func TestFullInterviewCompletes(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	cands := &fakeCandidateRepo{}
	c, _ := newTestController(snaps, cands)
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")

	for i := 0; i < schedule.NumQuestions; i++ {
		q, _ := c.GenerateCurrent(ctx)
		if q.Difficulty != schedule.At(i) {
			t.Errorf("question %d difficulty = %q, want %q", i, q.Difficulty, schedule.At(i))
		}
		if !c.SubmitAnswer(ctx, i, "answer") {
			t.Fatalf("submission %d rejected", i)
		}
	}

	sess := c.GetSnapshot()
	if sess.Phase != PhaseCompleted {
		t.Fatalf("phase = %q, want completed", sess.Phase)
	}
	if sess.CurrentIndex != schedule.NumQuestions {
		t.Errorf("current index = %d, want 6", sess.CurrentIndex)
	}
	// All offline answers score 5, so the weighted mean is 5.0.
	if sess.FinalScore != 5.0 {
		t.Errorf("final score = %v, want 5.0", sess.FinalScore)
	}
	if sess.Summary == "" {
		t.Error("missing summary")
	}

	// Marker cleared, interview archived.
	if snaps.snap != nil {
		t.Error("resumable marker not cleared on completion")
	}
	if len(cands.archived) != 1 {
		t.Fatalf("archived = %d, want 1", len(cands.archived))
	}
	if cands.archived[0].FinalScore != 5.0 {
		t.Errorf("archived score = %v", cands.archived[0].FinalScore)
	}
	if len(cands.archived[0].Answers) != 6 {
		t.Errorf("archived answers = %d, want 6", len(cands.archived[0].Answers))
	}
}

func TestPauseAndResumeKeepTimer(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")
	c.GenerateCurrent(ctx)

	c.Tick()
	c.Tick()
	if !c.Pause(ctx) {
		t.Fatal("pause rejected")
	}

	// Ticks while paused change nothing.
	c.Tick()
	sess := c.GetSnapshot()
	if sess.Timer.Remaining != 18 {
		t.Errorf("remaining = %d, want 18", sess.Timer.Remaining)
	}

	if !c.Resume(ctx) {
		t.Fatal("resume rejected")
	}
	sess = c.GetSnapshot()
	if !sess.Timer.Running || sess.Timer.Remaining != 18 {
		t.Errorf("timer after resume = %+v, want running at 18s", sess.Timer)
	}
}

func TestResumeIfPresentRestoresSession(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	ctx := context.Background()

	// First controller: run two questions, then "crash".
	c1, _ := newTestController(snaps, &fakeCandidateRepo{})
	c1.BeginSession(ctx, testCandidate(), "backend")
	c1.GenerateCurrent(ctx)
	c1.SubmitAnswer(ctx, 0, "first answer")
	c1.GenerateCurrent(ctx)
	c1.Tick()
	c1.Pause(ctx)
	before := c1.GetSnapshot()

	// Second controller: fresh process, same store.
	c2, gen2 := newTestController(snaps, &fakeCandidateRepo{})
	restored := c2.ResumeIfPresent(ctx)
	if restored == nil {
		t.Fatal("expected resumable session")
	}
	if restored.Phase != PhasePaused {
		t.Errorf("restored phase = %q, want paused", restored.Phase)
	}
	if restored.CurrentIndex != before.CurrentIndex {
		t.Errorf("restored index = %d, want %d", restored.CurrentIndex, before.CurrentIndex)
	}
	if restored.Timer.Remaining != before.Timer.Remaining {
		t.Errorf("restored remaining = %d, want %d", restored.Timer.Remaining, before.Timer.Remaining)
	}

	// Resuming must not regenerate the question already present.
	c2.Resume(ctx)
	q, installed := c2.GenerateCurrent(ctx)
	if installed {
		t.Error("generator re-invoked for an index that already has a question")
	}
	if gen2.calls != 0 {
		t.Errorf("generator calls after resume = %d, want 0", gen2.calls)
	}
	if q.ID != before.Questions[1].ID {
		t.Error("current question changed across resume")
	}
}

func TestResumeIfPresentEmptyStore(t *testing.T) {
	c, _ := newTestController(&fakeSnapshotRepo{}, &fakeCandidateRepo{})
	if c.ResumeIfPresent(context.Background()) != nil {
		t.Error("expected nil with no marker")
	}
}

func TestResetClearsMarker(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	c, _ := newTestController(snaps, &fakeCandidateRepo{})
	ctx := context.Background()
	c.BeginSession(ctx, testCandidate(), "backend")

	c.Reset(ctx)
	if snaps.snap != nil {
		t.Error("marker not cleared on reset")
	}
	if c.GetSnapshot().Phase != PhaseNotStarted {
		t.Errorf("phase = %q, want not_started", c.GetSnapshot().Phase)
	}
}

func TestSnapshotPersistedOnTransitions(t *testing.T) {
	snaps := &fakeSnapshotRepo{}
	c, _ := newTestController(snaps, &fakeCandidateRepo{})
	ctx := context.Background()

	c.BeginSession(ctx, testCandidate(), "backend")
	afterBegin := snaps.saves
	if afterBegin == 0 {
		t.Fatal("no snapshot written on begin")
	}

	c.GenerateCurrent(ctx)
	if snaps.saves <= afterBegin {
		t.Error("no snapshot written on question install")
	}

	afterGen := snaps.saves
	c.SubmitAnswer(ctx, 0, "answer")
	if snaps.saves <= afterGen {
		t.Error("no snapshot written on answer merge")
	}
}
