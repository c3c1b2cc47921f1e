package questiongen

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/intervu/internal/schedule"
)

// offlineBank holds templated question texts per difficulty. The %s slot
// takes the role. Selection cycles through the bank per difficulty so a
// six-question interview never repeats a template.
var offlineBank = map[schedule.Difficulty][]string{
	schedule.Easy: {
		"What attracted you to %s work, and which tools do you reach for first on a new project?",
		"Walk through how you would review a small %s change a teammate sent you.",
	},
	schedule.Medium: {
		"Describe a %s system you built or maintained. What was its weakest point and how did you address it?",
		"How would you debug a %s service that works locally but fails intermittently in production?",
	},
	schedule.Hard: {
		"Design the %s architecture for a feature that must handle a tenfold traffic increase next quarter. What breaks first and why?",
		"Tell me about the hardest %s tradeoff you have made between correctness and delivery speed, and how you would decide differently today.",
	},
}

// OfflineGenerator returns templated questions without any network calls.
// It is the first-class operating mode when no provider is configured.
type OfflineGenerator struct {
	used map[schedule.Difficulty]int
}

// NewOfflineGenerator creates a deterministic offline generator.
func NewOfflineGenerator() *OfflineGenerator {
	return &OfflineGenerator{used: make(map[schedule.Difficulty]int)}
}

func (g *OfflineGenerator) Generate(_ context.Context, role string, difficulty schedule.Difficulty, _ string) Question {
	bank := offlineBank[difficulty]
	if len(bank) == 0 {
		return FallbackQuestion(role, difficulty)
	}

	n := g.used[difficulty]
	g.used[difficulty]++
	text := fmt.Sprintf(bank[n%len(bank)], role)

	return Question{
		ID:               uuid.NewString(),
		Text:             text,
		Difficulty:       difficulty,
		TimeLimitSeconds: schedule.TimeLimit(difficulty),
	}
}
