// Package scoring turns a finished interview's answers into a weighted
// final score and a short narrative summary.
package scoring

import (
	"math"

	"github.com/abhisek/intervu/internal/schedule"
)

// Input is one answer's contribution to the final score. Score is nil when
// evaluation never produced a value; such answers are excluded from both
// the weighted sum and the weight total.
type Input struct {
	Score      *int
	Difficulty schedule.Difficulty
	Feedback   string
}

// FinalScore computes the weighted mean of scored answers, rounded to one
// decimal place. Zero total weight yields 0.
func FinalScore(inputs []Input) float64 {
	var sum, weight float64
	for _, in := range inputs {
		if in.Score == nil {
			continue
		}
		w := float64(schedule.Weight(in.Difficulty))
		sum += float64(*in.Score) * w
		weight += w
	}

	if weight == 0 {
		return 0
	}
	return math.Round(sum/weight*10) / 10
}
