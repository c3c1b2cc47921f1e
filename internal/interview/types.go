// Package interview owns the session state machine: phase transitions,
// question sequencing, timed answer collection, and completion handoff.
package interview

import (
	"time"

	"github.com/abhisek/intervu/internal/countdown"
	"github.com/abhisek/intervu/internal/questiongen"
	"github.com/abhisek/intervu/internal/schedule"
)

// Phase is the session lifecycle state.
type Phase string

const (
	PhaseNotStarted      Phase = "not_started"
	PhaseAwaitingProfile Phase = "awaiting_profile"
	PhaseInProgress      Phase = "in_progress"
	PhasePaused          Phase = "paused"
	PhaseCompleted       Phase = "completed"
)

// Candidate is the interviewee's identity. Immutable once the session
// moves to InProgress.
type Candidate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Complete reports whether all required profile fields are present.
func (c Candidate) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Phone != ""
}

// Answer is one submitted response. Score, Feedback, and Confidence are
// absent until the evaluator merge completes.
type Answer struct {
	QuestionID   string              `json:"question_id"`
	QuestionText string              `json:"question_text"`
	Difficulty   schedule.Difficulty `json:"difficulty"`
	AnswerText   string              `json:"answer_text"`
	Score        *int                `json:"score,omitempty"`
	Feedback     string              `json:"feedback,omitempty"`
	Confidence   *float64            `json:"confidence,omitempty"`
	Timestamp    time.Time           `json:"timestamp"`
}

// Session is the aggregate the controller owns. It serializes as the
// resumable snapshot, so every field needed to continue after a restart
// lives here.
type Session struct {
	SessionID    string                 `json:"session_id"`
	Candidate    Candidate              `json:"candidate"`
	Role         string                 `json:"role"`
	Phase        Phase                  `json:"phase"`
	CurrentIndex int                    `json:"current_index"`
	Questions    []questiongen.Question `json:"questions"`
	Answers      []Answer               `json:"answers"`
	Timer        countdown.Timer        `json:"timer_state"`
	Draft        string                 `json:"draft"`
	FinalScore   float64                `json:"final_score"`
	Summary      string                 `json:"summary"`
	StartedAt    time.Time              `json:"started_at"`
}

// CurrentQuestion returns the question at the current index, or nil when
// it has not been generated yet.
func (s *Session) CurrentQuestion() *questiongen.Question {
	if s.CurrentIndex < len(s.Questions) {
		return &s.Questions[s.CurrentIndex]
	}
	return nil
}

// Answered reports whether an answer exists for the given index.
func (s *Session) Answered(index int) bool {
	return index >= 0 && index < len(s.Answers)
}

// priorQuestionContext joins already-asked question texts so the
// generator can avoid repeats within the session.
func (s *Session) priorQuestionContext() string {
	if len(s.Questions) == 0 {
		return ""
	}
	out := ""
	for i, q := range s.Questions {
		if i > 0 {
			out += "\n"
		}
		out += "- " + q.Text
	}
	return out
}
