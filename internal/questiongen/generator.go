// Package questiongen produces interview questions for a role and
// difficulty. Generation never fails: service errors, malformed output,
// and missing credentials all resolve to a deterministic fallback, so the
// session controller can always make forward progress.
package questiongen

import (
	"context"

	"github.com/google/uuid"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/schedule"
)

const maxAttempts = 3

// Question is a generated interview question. Difficulty and
// TimeLimitSeconds always come from the schedule, never from the service.
type Question struct {
	ID               string              `json:"question_id"`
	Text             string              `json:"question_text"`
	Difficulty       schedule.Difficulty `json:"difficulty"`
	TimeLimitSeconds int                 `json:"time_limit"`
}

// Generator produces a question for the given role and difficulty.
// PriorContext carries already-asked question texts so the service can
// avoid repeats within a session.
type Generator interface {
	Generate(ctx context.Context, role string, difficulty schedule.Difficulty, priorContext string) Question
}

// LLMGenerator generates questions through an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider}
}

// Generate asks the provider for a question, retrying up to three times on
// service errors or unparseable output, then falls back deterministically.
func (g *LLMGenerator) Generate(ctx context.Context, role string, difficulty schedule.Difficulty, priorContext string) Question {
	ctx = llm.WithPurpose(ctx, "question-gen")
	req := buildQuestionRequest(role, difficulty, priorContext)

	for range maxAttempts {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			continue
		}

		q, err := parseQuestion(resp.Content)
		if err != nil {
			continue
		}

		return canonicalize(q, difficulty)
	}

	return FallbackQuestion(role, difficulty)
}

// canonicalize overwrites service-supplied difficulty and time limit with
// the schedule's canonical values and assigns an ID if the service omitted
// a usable one.
func canonicalize(q Question, difficulty schedule.Difficulty) Question {
	q.Difficulty = difficulty
	q.TimeLimitSeconds = schedule.TimeLimit(difficulty)
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return q
}

// FallbackQuestion builds the deterministic question used when the service
// cannot produce one.
func FallbackQuestion(role string, difficulty schedule.Difficulty) Question {
	return Question{
		ID:               uuid.NewString(),
		Text:             fallbackText(role),
		Difficulty:       difficulty,
		TimeLimitSeconds: schedule.TimeLimit(difficulty),
	}
}

func fallbackText(role string) string {
	return "Describe your experience with " + role + " development and explain a challenging problem you've solved recently."
}
