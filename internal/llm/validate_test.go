package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var evalSchema = &Schema{
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

func TestValidateResponseAccepts(t *testing.T) {
	content := json.RawMessage(`{"score": 7, "feedback": "solid", "confidence": 0.9}`)
	if err := validateResponse(evalSchema, content); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	content := json.RawMessage(`{"score": 7}`)
	err := validateResponse(evalSchema, content)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsWrongType(t *testing.T) {
	content := json.RawMessage(`{"score": "seven", "feedback": "x", "confidence": 0.5}`)
	err := validateResponse(evalSchema, content)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	content := json.RawMessage(`{"score": `)
	err := validateResponse(evalSchema, content)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("want ErrInvalidResponse, got %v", err)
	}
}

func TestSchemaCacheReuse(t *testing.T) {
	// Two validations against the same schema name should not recompile.
	content := json.RawMessage(`{"score": 5, "feedback": "ok", "confidence": 0.3}`)
	for range 3 {
		if err := validateResponse(evalSchema, content); err != nil {
			t.Fatalf("validateResponse: %v", err)
		}
	}
}
