package evaluator

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/schedule"
)

func TestEvaluateAcceptsAndClamps(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantScore      int
		wantConfidence float64
	}{
		{"in range", `{"score": 7, "feedback": "solid", "confidence": 0.9}`, 7, 0.9},
		{"score above range", `{"score": 15, "feedback": "x", "confidence": 0.5}`, 10, 0.5},
		{"score below range", `{"score": -3, "feedback": "x", "confidence": 0.5}`, 0, 0.5},
		{"score rounds", `{"score": 6.6, "feedback": "x", "confidence": 0.5}`, 7, 0.5},
		{"confidence below range", `{"score": 5, "feedback": "x", "confidence": -0.5}`, 5, 0},
		{"confidence above range", `{"score": 5, "feedback": "x", "confidence": 1.7}`, 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.raw)})
			e := NewLLMEvaluator(mock)

			ev := e.Evaluate(context.Background(), "q", schedule.Medium, "an answer")
			if ev.Score != tt.wantScore {
				t.Errorf("score = %d, want %d", ev.Score, tt.wantScore)
			}
			if ev.Confidence != tt.wantConfidence {
				t.Errorf("confidence = %v, want %v", ev.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestEvaluateRejectsWrongTypes(t *testing.T) {
	// First two responses have a string score and a missing confidence;
	// the third is valid. Each rejection consumes an attempt.
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"score": "seven", "feedback": "x", "confidence": 0.5}`)},
		llm.MockResponse{Content: json.RawMessage(`{"score": 7, "feedback": "x"}`)},
		llm.MockResponse{Content: json.RawMessage(`{"score": 7, "feedback": "x", "confidence": 0.5}`)},
	)
	e := NewLLMEvaluator(mock)

	ev := e.Evaluate(context.Background(), "q", schedule.Easy, "an answer")
	if ev.Score != 7 {
		t.Errorf("score = %d, want 7", ev.Score)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestEvaluateFallbackNonEmptyAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
	)
	e := NewLLMEvaluator(mock)

	ev := e.Evaluate(context.Background(), "q", schedule.Hard, "I would use a load balancer.")
	if ev.Score != 5 {
		t.Errorf("score = %d, want 5", ev.Score)
	}
	if ev.Feedback != "neutral, technical issue" {
		t.Errorf("feedback = %q", ev.Feedback)
	}
	if ev.Confidence != 0.1 {
		t.Errorf("confidence = %v, want 0.1", ev.Confidence)
	}
}

func TestEvaluateFallbackEmptyAnswer(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
	)
	e := NewLLMEvaluator(mock)

	ev := e.Evaluate(context.Background(), "q", schedule.Hard, "   ")
	if ev.Score != 0 {
		t.Errorf("score = %d, want 0", ev.Score)
	}
	if ev.Feedback != "no answer provided" {
		t.Errorf("feedback = %q", ev.Feedback)
	}
	if ev.Confidence != 0.1 {
		t.Errorf("confidence = %v, want 0.1", ev.Confidence)
	}
}

func TestOfflineEvaluatorDeterministic(t *testing.T) {
	e := NewOfflineEvaluator()

	empty := e.Evaluate(context.Background(), "q", schedule.Easy, "")
	if empty.Score != 0 {
		t.Errorf("empty answer score = %d, want 0", empty.Score)
	}

	filled := e.Evaluate(context.Background(), "q", schedule.Easy, "some text")
	if filled.Score != 5 {
		t.Errorf("non-empty answer score = %d, want 5", filled.Score)
	}
	if filled.Feedback != "mock" || filled.Confidence != 0.3 {
		t.Errorf("feedback/confidence = %q/%v", filled.Feedback, filled.Confidence)
	}
}
