package store

import (
	"context"
	"encoding/json"
	"time"
)

// SessionSnapshot is the persisted resumable marker: the full serialized
// session plus enough metadata to show a welcome-back prompt.
type SessionSnapshot struct {
	ID        int
	SessionID string
	Timestamp time.Time
	Data      json.RawMessage
}

// SessionSnapshotRepo manages the single "most recent unfinished session"
// marker. Save replaces any previous marker; Load returns nil when no
// unfinished session exists.
type SessionSnapshotRepo interface {
	Save(ctx context.Context, sessionID string, data json.RawMessage) error
	Load(ctx context.Context) (*SessionSnapshot, error)
	Clear(ctx context.Context) error
}

// ArchivedAnswer is one question/answer pair of a completed interview.
type ArchivedAnswer struct {
	QuestionIndex int
	QuestionID    string
	QuestionText  string
	Difficulty    string
	AnswerText    string
	Score         int
	Feedback      string
	Confidence    float64
	SubmittedAt   time.Time
}

// ArchivedInterview is the completion handoff record.
type ArchivedInterview struct {
	SessionID   string
	Name        string
	Email       string
	Phone       string
	Role        string
	FinalScore  float64
	Summary     string
	CompletedAt time.Time
	Answers     []ArchivedAnswer
}

// CandidateRepo stores and queries completed interviews.
type CandidateRepo interface {
	// Archive persists a completed interview and its answers atomically.
	Archive(ctx context.Context, rec ArchivedInterview) error

	// List returns completed interviews, most recent first.
	List(ctx context.Context, limit int) ([]ArchivedInterview, error)

	// Get returns one interview with its answers, or nil if not found.
	Get(ctx context.Context, sessionID string) (*ArchivedInterview, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMStats aggregates request events for one purpose label.
type LLMStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns the newest events first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEventData, error)

	// LLMStatsByPurpose aggregates all events grouped by purpose.
	LLMStatsByPurpose(ctx context.Context) ([]LLMStats, error)
}
