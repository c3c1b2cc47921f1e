// Package evaluator scores a candidate's free-text answer against the
// question it was given. Like question generation, evaluation never fails:
// after three bad attempts the adapter returns a deterministic fallback.
package evaluator

import (
	"context"
	"strings"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/schedule"
)

const maxAttempts = 3

// Evaluation is the scored result for one answer. Score is an integer in
// [0,10]; Confidence is the service's self-reported certainty in [0,1].
type Evaluation struct {
	Score      int     `json:"score"`
	Feedback   string  `json:"feedback"`
	Confidence float64 `json:"confidence"`
}

// Evaluator scores an answer to a question.
type Evaluator interface {
	Evaluate(ctx context.Context, questionText string, difficulty schedule.Difficulty, answerText string) Evaluation
}

// LLMEvaluator evaluates answers through an LLM provider.
type LLMEvaluator struct {
	provider llm.Provider
}

// NewLLMEvaluator creates an evaluator backed by the given provider.
func NewLLMEvaluator(provider llm.Provider) *LLMEvaluator {
	return &LLMEvaluator{provider: provider}
}

// Evaluate asks the provider to score the answer, retrying up to three
// times, then falls back. Returned values are always clamped into their
// declared domains.
func (e *LLMEvaluator) Evaluate(ctx context.Context, questionText string, difficulty schedule.Difficulty, answerText string) Evaluation {
	ctx = llm.WithPurpose(ctx, "answer-eval")
	req := buildEvalRequest(questionText, difficulty, answerText)

	for range maxAttempts {
		resp, err := e.provider.Generate(ctx, req)
		if err != nil {
			continue
		}

		ev, err := parseEvaluation(resp.Content)
		if err != nil {
			continue
		}

		return ev
	}

	return fallbackEvaluation(answerText)
}

// fallbackEvaluation is the deterministic result after the service failed
// every attempt. Empty answers score zero; anything else gets a neutral 5.
func fallbackEvaluation(answerText string) Evaluation {
	if strings.TrimSpace(answerText) == "" {
		return Evaluation{Score: 0, Feedback: "no answer provided", Confidence: 0.1}
	}
	return Evaluation{Score: 5, Feedback: "neutral, technical issue", Confidence: 0.1}
}
