package questiongen

import (
	"fmt"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/schedule"
)

const questionSystemPrompt = `You are a senior technical interviewer. You write one interview question at a time, calibrated to the requested difficulty. Respond with JSON only.`

// questionSchema constrains the provider's structured output. The adapter
// still re-parses and canonicalizes, since not every provider enforces
// schemas reliably.
var questionSchema = &llm.Schema{
	Name: "interview-question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_id":   map[string]any{"type": "string"},
			"question_text": map[string]any{"type": "string"},
			"difficulty":    map[string]any{"type": "string", "enum": []any{"easy", "medium", "hard"}},
			"time_limit":    map[string]any{"type": "integer"},
		},
		"required":             []any{"question_text"},
		"additionalProperties": false,
	},
}

func buildQuestionRequest(role string, difficulty schedule.Difficulty, priorContext string) llm.Request {
	prompt := fmt.Sprintf(
		"Generate one %s-difficulty technical interview question for a %s role. "+
			"The candidate will answer in free text within %d seconds, so scope the question accordingly. "+
			"Return JSON with fields question_id, question_text, difficulty, time_limit.",
		difficulty, role, schedule.TimeLimit(difficulty),
	)

	if priorContext != "" {
		prompt += "\n\nAlready asked in this interview, do not repeat:\n" + priorContext
	}

	return llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:      questionSchema,
		MaxTokens:   512,
		Temperature: 0.7,
	}
}
