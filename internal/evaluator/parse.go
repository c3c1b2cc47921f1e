package evaluator

import (
	"encoding/json"
	"fmt"
	"math"
)

// parseEvaluation strictly parses raw service output. The object is
// accepted only when score and confidence are numbers and feedback is a
// string; accepted values are then clamped into their domains.
func parseEvaluation(raw json.RawMessage) (Evaluation, error) {
	var body struct {
		Score      *float64 `json:"score"`
		Feedback   *string  `json:"feedback"`
		Confidence *float64 `json:"confidence"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return Evaluation{}, fmt.Errorf("parse evaluation: %w", err)
	}
	if body.Score == nil || body.Feedback == nil || body.Confidence == nil {
		return Evaluation{}, fmt.Errorf("parse evaluation: missing score, feedback, or confidence")
	}

	return Evaluation{
		Score:      int(math.Round(clamp(*body.Score, 0, 10))),
		Feedback:   *body.Feedback,
		Confidence: clamp(*body.Confidence, 0, 1),
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
