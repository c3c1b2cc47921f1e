package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/intervu/internal/countdown"
	"github.com/abhisek/intervu/internal/evaluator"
	"github.com/abhisek/intervu/internal/intake"
	"github.com/abhisek/intervu/internal/questiongen"
	"github.com/abhisek/intervu/internal/schedule"
	"github.com/abhisek/intervu/internal/scoring"
	"github.com/abhisek/intervu/internal/store"
)

// Deps are the collaborators the controller consumes. The generator,
// evaluator, and summarizer never return errors; adapter failures resolve
// to deterministic fallbacks, so every transition here can make forward
// progress.
type Deps struct {
	Generator  questiongen.Generator
	Evaluator  evaluator.Evaluator
	Summarizer scoring.Summarizer
	Snapshots  store.SessionSnapshotRepo
	Candidates store.CandidateRepo
}

// Controller is the session state machine. All transitions are serialized
// through one mutex: timer ticks, submissions, and adapter completions are
// each applied as a single atomic step against the Session aggregate.
// LLM calls run outside the lock, with at most one generation and one
// evaluation in flight; stale results for an index that moved on are
// discarded.
type Controller struct {
	mu   sync.Mutex
	sess Session
	deps Deps

	genInFlight  bool
	evalInFlight bool
}

// NewController creates a controller with no active session.
func NewController(deps Deps) *Controller {
	return &Controller{
		deps: deps,
		sess: Session{Phase: PhaseNotStarted},
	}
}

// StartIntake applies parsed resume contact fields and moves the session
// to AwaitingProfile. The session stays there until all required fields
// are present.
func (c *Controller) StartIntake(contact intake.Contact) Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sess.Candidate = Candidate{
		Name:  contact.Name,
		Email: contact.Email,
		Phone: contact.Phone,
	}
	c.sess.Phase = PhaseAwaitingProfile
	return c.sess
}

// BeginSession starts the interview once the profile is complete. It
// assigns a fresh session id, resets the index, and persists the first
// resumable marker.
func (c *Controller) BeginSession(ctx context.Context, candidate Candidate, role string) (Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Phase == PhaseInProgress || c.sess.Phase == PhasePaused {
		return c.sess, fmt.Errorf("session already in progress")
	}
	if !candidate.Complete() {
		return c.sess, fmt.Errorf("profile incomplete: name, email, and phone are required")
	}

	c.sess = Session{
		SessionID:    uuid.NewString(),
		Candidate:    candidate,
		Role:         role,
		Phase:        PhaseInProgress,
		CurrentIndex: 0,
		StartedAt:    time.Now().UTC(),
	}
	c.persist(ctx)
	return c.sess, nil
}

// NeedsQuestion reports whether the current index has no question yet and
// no generation is in flight.
func (c *Controller) NeedsQuestion() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.Phase == PhaseInProgress &&
		c.sess.CurrentQuestion() == nil &&
		!c.genInFlight
}

// GenerateCurrent produces the question for the current index and starts
// its timer. The generator call runs outside the lock; if the session
// moved on meanwhile (reset, second concurrent call) the result is
// discarded. Returns the active question and whether this call installed
// it.
func (c *Controller) GenerateCurrent(ctx context.Context) (questiongen.Question, bool) {
	c.mu.Lock()
	if c.sess.Phase != PhaseInProgress || c.genInFlight {
		q := c.sess.CurrentQuestion()
		c.mu.Unlock()
		if q != nil {
			return *q, false
		}
		return questiongen.Question{}, false
	}
	if q := c.sess.CurrentQuestion(); q != nil {
		c.mu.Unlock()
		return *q, false
	}

	c.genInFlight = true
	idx := c.sess.CurrentIndex
	sessionID := c.sess.SessionID
	role := c.sess.Role
	difficulty := schedule.At(idx)
	prior := c.sess.priorQuestionContext()
	c.mu.Unlock()

	q := c.deps.Generator.Generate(ctx, role, difficulty, prior)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.genInFlight = false

	// Stale result: the session was reset or already holds this question.
	if c.sess.SessionID != sessionID || c.sess.CurrentIndex != idx || c.sess.CurrentQuestion() != nil {
		return q, false
	}

	c.sess.Questions = append(c.sess.Questions, q)
	c.sess.Timer = countdown.Start(q.TimeLimitSeconds)
	c.persist(ctx)
	return q, true
}

// SetDraft records the answer text composed so far, so timer expiry can
// auto-submit it.
func (c *Controller) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess.Draft = text
}

// Tick advances the countdown by one second. Expired is reported exactly
// once per question; the caller turns it into a submission of the current
// draft.
func (c *Controller) Tick() (countdown.Timer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Phase != PhaseInProgress {
		return c.sess.Timer, false
	}

	timer, expired := c.sess.Timer.Tick()
	c.sess.Timer = timer
	return timer, expired
}

// SubmitAnswer handles manual submission and timer-expiry auto-submission.
// It is idempotent per index: a second call for an already-answered index
// is rejected without touching the stored answer. Accepted submissions
// stop the timer, run the evaluation, merge the result, and advance the
// index; the sixth merge completes the interview.
func (c *Controller) SubmitAnswer(ctx context.Context, index int, text string) bool {
	c.mu.Lock()

	if c.sess.Phase != PhaseInProgress ||
		index != c.sess.CurrentIndex ||
		index >= len(c.sess.Questions) ||
		c.sess.Answered(index) ||
		c.evalInFlight {
		c.mu.Unlock()
		return false
	}

	q := c.sess.Questions[index]
	answer := Answer{
		QuestionID:   q.ID,
		QuestionText: q.Text,
		Difficulty:   q.Difficulty,
		AnswerText:   text,
		Timestamp:    time.Now().UTC(),
	}
	c.sess.Answers = append(c.sess.Answers, answer)
	c.sess.Timer = c.sess.Timer.Stop()
	c.sess.Draft = ""
	c.evalInFlight = true
	sessionID := c.sess.SessionID
	c.persist(ctx)
	c.mu.Unlock()

	ev := c.deps.Evaluator.Evaluate(ctx, q.Text, q.Difficulty, text)

	c.mu.Lock()
	c.evalInFlight = false

	// Stale result: session was reset while evaluating.
	if c.sess.SessionID != sessionID || !c.sess.Answered(index) {
		c.mu.Unlock()
		return false
	}

	score := ev.Score
	confidence := ev.Confidence
	c.sess.Answers[index].Score = &score
	c.sess.Answers[index].Feedback = ev.Feedback
	c.sess.Answers[index].Confidence = &confidence
	c.sess.CurrentIndex++

	if c.sess.CurrentIndex < schedule.NumQuestions {
		c.persist(ctx)
		c.mu.Unlock()
		return true
	}

	c.complete(ctx)
	return true
}

// complete finalizes the session: computes the authoritative weighted
// score, writes the summary, clears the resumable marker, and archives
// the interview. Called with the lock held; releases it.
func (c *Controller) complete(ctx context.Context) {
	c.sess.Phase = PhaseCompleted
	c.sess.Timer = c.sess.Timer.Stop()

	inputs := scoringInputs(c.sess.Answers)
	c.sess.FinalScore = scoring.FinalScore(inputs)
	name := c.sess.Candidate.Name
	finalScore := c.sess.FinalScore
	c.mu.Unlock()

	// Summary is a single best-effort LLM call with its own fallback.
	summary := c.deps.Summarizer.Summarize(ctx, name, finalScore, inputs)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess.Summary = summary

	if c.deps.Snapshots != nil {
		// Marker removal failing only means a spurious resume prompt later.
		_ = c.deps.Snapshots.Clear(ctx)
	}
	if c.deps.Candidates != nil {
		_ = c.deps.Candidates.Archive(ctx, archiveRecord(c.sess))
	}
}

// Pause suspends the timer and all adapter calls, keeping the session
// resumable at the same index and remaining time.
func (c *Controller) Pause(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Phase != PhaseInProgress {
		return false
	}
	c.sess.Phase = PhasePaused
	c.persist(ctx)
	return true
}

// Resume continues a paused session at the exact index and remaining time
// it held. The timer restarts only when the current question exists and
// is still unanswered.
func (c *Controller) Resume(ctx context.Context) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.Phase != PhasePaused {
		return false
	}
	c.sess.Phase = PhaseInProgress
	if c.sess.CurrentQuestion() != nil && !c.sess.Answered(c.sess.CurrentIndex) && c.sess.Timer.Remaining > 0 {
		c.sess.Timer.Running = true
	}
	c.persist(ctx)
	return true
}

// ResumeIfPresent loads the persisted marker and installs it as a paused
// session. Returns nil when no unfinished session exists; store failures
// are treated the same way, not as errors.
func (c *Controller) ResumeIfPresent(ctx context.Context) *Session {
	if c.deps.Snapshots == nil {
		return nil
	}
	snap, err := c.deps.Snapshots.Load(ctx)
	if err != nil || snap == nil {
		return nil
	}

	var sess Session
	if err := json.Unmarshal(snap.Data, &sess); err != nil {
		return nil
	}
	if sess.Phase == PhaseCompleted || sess.SessionID == "" {
		return nil
	}

	// The process died mid-interview; hold at Paused until the candidate
	// explicitly resumes.
	sess.Phase = PhasePaused
	sess.Timer.Running = false

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sess = sess
	out := c.sess
	return &out
}

// GetSnapshot returns a copy of the current session.
func (c *Controller) GetSnapshot() Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess
}

// Reset abandons the active session and removes the resumable marker.
func (c *Controller) Reset(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sess = Session{Phase: PhaseNotStarted}
	if c.deps.Snapshots != nil {
		_ = c.deps.Snapshots.Clear(ctx)
	}
}

// persist writes the resumable marker. Best effort: losing the store
// means losing resumability, never the in-memory interview. Called with
// the lock held.
func (c *Controller) persist(ctx context.Context) {
	if c.deps.Snapshots == nil {
		return
	}
	data, err := json.Marshal(c.sess)
	if err != nil {
		return
	}
	_ = c.deps.Snapshots.Save(ctx, c.sess.SessionID, data)
}

func scoringInputs(answers []Answer) []scoring.Input {
	out := make([]scoring.Input, len(answers))
	for i, a := range answers {
		out[i] = scoring.Input{
			Score:      a.Score,
			Difficulty: a.Difficulty,
			Feedback:   a.Feedback,
		}
	}
	return out
}

func archiveRecord(sess Session) store.ArchivedInterview {
	answers := make([]store.ArchivedAnswer, len(sess.Answers))
	for i, a := range sess.Answers {
		score := 0
		if a.Score != nil {
			score = *a.Score
		}
		confidence := 0.0
		if a.Confidence != nil {
			confidence = *a.Confidence
		}
		answers[i] = store.ArchivedAnswer{
			QuestionIndex: i,
			QuestionID:    a.QuestionID,
			QuestionText:  a.QuestionText,
			Difficulty:    string(a.Difficulty),
			AnswerText:    strings.TrimSpace(a.AnswerText),
			Score:         score,
			Feedback:      a.Feedback,
			Confidence:    confidence,
			SubmittedAt:   a.Timestamp,
		}
	}

	return store.ArchivedInterview{
		SessionID:   sess.SessionID,
		Name:        sess.Candidate.Name,
		Email:       sess.Candidate.Email,
		Phone:       sess.Candidate.Phone,
		Role:        sess.Role,
		FinalScore:  sess.FinalScore,
		Summary:     sess.Summary,
		CompletedAt: time.Now().UTC(),
		Answers:     answers,
	}
}
