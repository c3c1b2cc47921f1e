package intake

import (
	"context"
	"encoding/json"

	"github.com/abhisek/intervu/internal/llm"
)

const extractSystemPrompt = `You extract contact details from resume text. Return JSON with name, email, and phone. Use null for any field you cannot find with certainty. Never invent values.`

var contactSchema = &llm.Schema{
	Name: "contact-extract",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": []any{"string", "null"}},
			"email": map[string]any{"type": []any{"string", "null"}},
			"phone": map[string]any{"type": []any{"string", "null"}},
		},
		"required":             []any{"name", "email", "phone"},
		"additionalProperties": false,
	},
}

// ContactExtractor fills contact fields the regex pass missed by asking
// the LLM. Extraction failures return an empty Contact; the caller merges,
// so a failed call just leaves fields for the candidate to type in.
type ContactExtractor struct {
	provider llm.Provider
}

// NewContactExtractor creates an LLM-backed contact extractor.
func NewContactExtractor(provider llm.Provider) *ContactExtractor {
	return &ContactExtractor{provider: provider}
}

// Extract parses contact fields from resume text. Temperature is pinned to
// zero: extraction wants determinism, not creativity.
func (e *ContactExtractor) Extract(ctx context.Context, resumeText string) Contact {
	ctx = llm.WithPurpose(ctx, "contact-extract")

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: extractSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: resumeText},
		},
		Schema:      contactSchema,
		MaxTokens:   256,
		Temperature: 0,
	})
	if err != nil {
		return Contact{}
	}

	var body struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
	}
	if err := json.Unmarshal(resp.Content, &body); err != nil {
		return Contact{}
	}

	return Contact{
		Name:  deref(body.Name),
		Email: deref(body.Email),
		Phone: deref(body.Phone),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
