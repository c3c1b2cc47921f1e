package evaluator

import (
	"fmt"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/schedule"
)

const evalSystemPrompt = `You are a strict but fair technical interviewer grading a candidate's answer. Score from 0 (no relevant content) to 10 (excellent). Respond with JSON only.`

var evalSchema = &llm.Schema{
	Name: "answer-eval",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score":      map[string]any{"type": "number"},
			"feedback":   map[string]any{"type": "string"},
			"confidence": map[string]any{"type": "number"},
		},
		"required":             []any{"score", "feedback", "confidence"},
		"additionalProperties": false,
	},
}

func buildEvalRequest(questionText string, difficulty schedule.Difficulty, answerText string) llm.Request {
	prompt := fmt.Sprintf(
		"Question (%s difficulty):\n%s\n\nCandidate answer:\n%s\n\n"+
			"Return JSON {score, feedback, confidence}. Score is 0-10, "+
			"feedback is one or two sentences, confidence is 0-1.",
		difficulty, questionText, answerText,
	)

	return llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:    evalSchema,
		MaxTokens: 512,
	}
}
