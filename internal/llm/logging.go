package llm

import (
	"context"
	"time"

	"github.com/abhisek/intervu/internal/store"
)

// LoggingProvider wraps a Provider and records every call as an event row.
// Logging failures never fail the underlying call.
type LoggingProvider struct {
	inner        Provider
	providerName string
	events       store.EventRepo
}

// WithLogging wraps a provider with event logging. providerName labels the
// rows (anthropic, openai, gemini, openrouter, mock).
func WithLogging(inner Provider, providerName string, events store.EventRepo) *LoggingProvider {
	return &LoggingProvider{inner: inner, providerName: providerName, events: events}
}

func (p *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := p.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	data := store.LLMRequestEventData{
		Provider:  p.providerName,
		Model:     p.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: elapsed.Milliseconds(),
		Success:   err == nil,
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	} else {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}

	// Best effort: the call already succeeded or failed on its own terms.
	_ = p.events.AppendLLMRequest(ctx, data)

	return resp, err
}

func (p *LoggingProvider) ModelID() string {
	return p.inner.ModelID()
}
