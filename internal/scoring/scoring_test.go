package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/intervu/internal/llm"
	"github.com/abhisek/intervu/internal/schedule"
)

func intPtr(v int) *int { return &v }

func TestFinalScoreWeightedMean(t *testing.T) {
	// Two answered questions: 9 on easy (weight 1), 8 on medium (weight 2).
	// (9*1 + 8*2) / (1+2) = 25/3 = 8.33... rounds to 8.3.
	inputs := []Input{
		{Score: intPtr(9), Difficulty: schedule.Easy},
		{Score: intPtr(8), Difficulty: schedule.Medium},
		{Difficulty: schedule.Medium},
		{Difficulty: schedule.Hard},
		{Difficulty: schedule.Hard},
	}

	got := FinalScore(inputs)
	if got != 8.3 {
		t.Errorf("FinalScore = %v, want 8.3", got)
	}
}

func TestFinalScoreFullInterview(t *testing.T) {
	inputs := []Input{
		{Score: intPtr(10), Difficulty: schedule.Easy},
		{Score: intPtr(10), Difficulty: schedule.Easy},
		{Score: intPtr(10), Difficulty: schedule.Medium},
		{Score: intPtr(10), Difficulty: schedule.Medium},
		{Score: intPtr(10), Difficulty: schedule.Hard},
		{Score: intPtr(10), Difficulty: schedule.Hard},
	}
	if got := FinalScore(inputs); got != 10.0 {
		t.Errorf("FinalScore = %v, want 10", got)
	}
}

func TestFinalScoreZeroWeight(t *testing.T) {
	if got := FinalScore(nil); got != 0 {
		t.Errorf("FinalScore(nil) = %v, want 0", got)
	}

	unscored := []Input{{Difficulty: schedule.Hard}, {Difficulty: schedule.Easy}}
	if got := FinalScore(unscored); got != 0 {
		t.Errorf("FinalScore(unscored) = %v, want 0", got)
	}
}

func TestLLMSummarizerUsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"Strong fundamentals, weaker on system design."}`),
	})
	s := NewLLMSummarizer(mock)

	got := s.Summarize(context.Background(), "Ada", 7.5, nil)
	if got != "Strong fundamentals, weaker on system design." {
		t.Errorf("summary = %q", got)
	}
}

func TestLLMSummarizerFallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	s := NewLLMSummarizer(mock)

	got := s.Summarize(context.Background(), "Ada", 7.5, nil)
	if !strings.Contains(got, "7.5") || !strings.Contains(got, "Ada") {
		t.Errorf("fallback summary missing score or name: %q", got)
	}
	// Single attempt only.
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestLLMSummarizerFallsBackOnEmptyBody(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"summary":"  "}`),
	})
	s := NewLLMSummarizer(mock)

	got := s.Summarize(context.Background(), "Ada", 3.0, nil)
	if !strings.Contains(got, "3.0") {
		t.Errorf("want fallback summary, got %q", got)
	}
}

func TestOfflineSummarizer(t *testing.T) {
	s := NewOfflineSummarizer()
	got := s.Summarize(context.Background(), "Ada", 8.3, nil)
	if !strings.Contains(got, "8.3") {
		t.Errorf("summary missing score: %q", got)
	}
}
