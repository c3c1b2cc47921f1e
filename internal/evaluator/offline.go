package evaluator

import (
	"context"
	"strings"

	"github.com/abhisek/intervu/internal/schedule"
)

// OfflineEvaluator scores deterministically without network calls: 5 for
// any non-empty answer, 0 for an empty one.
type OfflineEvaluator struct{}

// NewOfflineEvaluator creates a deterministic offline evaluator.
func NewOfflineEvaluator() *OfflineEvaluator {
	return &OfflineEvaluator{}
}

func (OfflineEvaluator) Evaluate(_ context.Context, _ string, _ schedule.Difficulty, answerText string) Evaluation {
	score := 5
	if strings.TrimSpace(answerText) == "" {
		score = 0
	}
	return Evaluation{Score: score, Feedback: "mock", Confidence: 0.3}
}
