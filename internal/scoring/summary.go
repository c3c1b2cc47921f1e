package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/intervu/internal/llm"
)

// Summarizer produces a short narrative summary of a completed interview.
// Implementations never fail; every error path resolves to the templated
// fallback.
type Summarizer interface {
	Summarize(ctx context.Context, candidateName string, finalScore float64, inputs []Input) string
}

const summarySystemPrompt = `You summarize a completed technical interview for a hiring reviewer. Write 2-4 sentences covering overall performance and one notable strength or weakness. Respond with JSON only.`

var summarySchema = &llm.Schema{
	Name: "interview-summary",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
		},
		"required":             []any{"summary"},
		"additionalProperties": false,
	},
}

// LLMSummarizer writes the summary through an LLM provider. It makes a
// single attempt; the final score shown to the user is computed locally
// either way, so a lost summary call costs only the narrative.
type LLMSummarizer struct {
	provider llm.Provider
}

// NewLLMSummarizer creates a summarizer backed by the given provider.
func NewLLMSummarizer(provider llm.Provider) *LLMSummarizer {
	return &LLMSummarizer{provider: provider}
}

func (s *LLMSummarizer) Summarize(ctx context.Context, candidateName string, finalScore float64, inputs []Input) string {
	ctx = llm.WithPurpose(ctx, "summary")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: summarySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryPrompt(candidateName, finalScore, inputs)},
		},
		Schema:    summarySchema,
		MaxTokens: 512,
	})
	if err != nil {
		return FallbackSummary(candidateName, finalScore)
	}

	var body struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(resp.Content, &body); err != nil || strings.TrimSpace(body.Summary) == "" {
		return FallbackSummary(candidateName, finalScore)
	}
	return body.Summary
}

func buildSummaryPrompt(candidateName string, finalScore float64, inputs []Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate: %s\nWeighted final score: %.1f/10\n\nPer-question feedback:\n", candidateName, finalScore)
	for i, in := range inputs {
		score := "unscored"
		if in.Score != nil {
			score = fmt.Sprintf("%d/10", *in.Score)
		}
		fmt.Fprintf(&b, "%d. [%s] %s - %s\n", i+1, in.Difficulty, score, in.Feedback)
	}
	b.WriteString("\nReturn JSON {summary}.")
	return b.String()
}

// FallbackSummary is the deterministic summary used when the service is
// unavailable or returns an unusable body.
func FallbackSummary(candidateName string, finalScore float64) string {
	return fmt.Sprintf(
		"%s completed the six-question interview with a weighted score of %.1f out of 10. "+
			"A narrative assessment could not be generated; review the per-question feedback for detail.",
		candidateName, finalScore,
	)
}

// OfflineSummarizer returns the templated summary without network calls.
type OfflineSummarizer struct{}

// NewOfflineSummarizer creates a deterministic offline summarizer.
func NewOfflineSummarizer() *OfflineSummarizer {
	return &OfflineSummarizer{}
}

func (OfflineSummarizer) Summarize(_ context.Context, candidateName string, finalScore float64, _ []Input) string {
	return FallbackSummary(candidateName, finalScore)
}
