package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/schedule"
)

func TestGenerateAcceptsValidResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_id":"q-1","question_text":"Explain goroutine scheduling.","difficulty":"easy","time_limit":999}`),
	})
	g := NewLLMGenerator(mock)

	q := g.Generate(context.Background(), "backend", schedule.Hard, "")

	if q.Text != "Explain goroutine scheduling." {
		t.Errorf("text = %q", q.Text)
	}
	if q.ID != "q-1" {
		t.Errorf("id = %q, want service-supplied id kept", q.ID)
	}
	// Difficulty and time limit are canonical, never the service's.
	if q.Difficulty != schedule.Hard {
		t.Errorf("difficulty = %q, want hard", q.Difficulty)
	}
	if q.TimeLimitSeconds != 120 {
		t.Errorf("time limit = %d, want 120", q.TimeLimitSeconds)
	}
}

func TestGenerateAssignsIDWhenMissing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text":"What is a mutex?"}`),
	})
	g := NewLLMGenerator(mock)

	q := g.Generate(context.Background(), "backend", schedule.Easy, "")
	if q.ID == "" {
		t.Error("want generated id when service omits one")
	}
}

func TestGenerateRetriesMalformedThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json`)},
		llm.MockResponse{Content: json.RawMessage(`{"question_text":""}`)},
		llm.MockResponse{Content: json.RawMessage(`{"question_text":"Describe CAP."}`)},
	)
	g := NewLLMGenerator(mock)

	q := g.Generate(context.Background(), "backend", schedule.Medium, "")
	if q.Text != "Describe CAP." {
		t.Errorf("text = %q", q.Text)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestGenerateFallsBackAfterThreeFailures(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
		llm.MockResponse{Err: errors.New("down")},
	)
	g := NewLLMGenerator(mock)

	q := g.Generate(context.Background(), "backend", schedule.Hard, "")

	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want exactly 3", mock.CallCount())
	}
	if !strings.Contains(q.Text, "backend") {
		t.Errorf("fallback text missing role: %q", q.Text)
	}
	if q.Difficulty != schedule.Hard {
		t.Errorf("difficulty = %q, want hard", q.Difficulty)
	}
	if q.TimeLimitSeconds != 120 {
		t.Errorf("time limit = %d, want 120", q.TimeLimitSeconds)
	}
	if q.ID == "" {
		t.Error("fallback question missing id")
	}
}

func TestGeneratePassesPriorContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question_text":"Next question."}`),
	})
	g := NewLLMGenerator(mock)

	g.Generate(context.Background(), "backend", schedule.Easy, "What is a mutex?")

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "What is a mutex?") {
		t.Error("prior context not included in prompt")
	}
}

func TestOfflineGeneratorIsDeterministicAndOffline(t *testing.T) {
	g := NewOfflineGenerator()

	q1 := g.Generate(context.Background(), "frontend", schedule.Easy, "")
	q2 := g.Generate(context.Background(), "frontend", schedule.Easy, "")

	if !strings.Contains(q1.Text, "frontend") {
		t.Errorf("role not templated: %q", q1.Text)
	}
	if q1.Text == q2.Text {
		t.Error("consecutive easy questions repeat the same template")
	}
	if q1.TimeLimitSeconds != 20 {
		t.Errorf("time limit = %d, want 20", q1.TimeLimitSeconds)
	}
}
