package intake

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/intervu/internal/llm"
)

const sampleResume = `Jane Doe
Senior Backend Engineer

jane.doe@example.com | +1 415-555-0134 | San Francisco

Experience
Acme Corp, 2019-2024`

func TestParseExtractsAllFields(t *testing.T) {
	c := Parse(sampleResume)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane.doe@example.com", c.Email)
	assert.Equal(t, "+1 415-555-0134", c.Phone)
	assert.True(t, c.Complete())
}

func TestParseSkipsNonNameLines(t *testing.T) {
	text := "RESUME 2024\njane@example.com\nJane Doe\nEngineer"
	c := Parse(text)
	assert.Equal(t, "Jane Doe", c.Name)
}

func TestParseMissingFields(t *testing.T) {
	c := Parse("just some text with no contact details here")
	assert.False(t, c.Complete())
	assert.Equal(t, []string{"name", "email", "phone"}, c.Missing())
}

func TestMergeFillsOnlyEmptyFields(t *testing.T) {
	base := Contact{Name: "Jane Doe"}
	merged := base.Merge(Contact{Name: "Wrong Name", Email: "jane@example.com", Phone: "415-555-0134"})

	assert.Equal(t, "Jane Doe", merged.Name)
	assert.Equal(t, "jane@example.com", merged.Email)
	assert.Equal(t, "415-555-0134", merged.Phone)
}

func TestExtractorParsesResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"name":"Jane Doe","email":"jane@example.com","phone":null}`),
	})
	e := NewContactExtractor(mock)

	c := e.Extract(context.Background(), sampleResume)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane@example.com", c.Email)
	assert.Empty(t, c.Phone)
}

func TestExtractorReturnsEmptyOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("down")})
	e := NewContactExtractor(mock)

	c := e.Extract(context.Background(), sampleResume)
	assert.Equal(t, Contact{}, c)
}

func TestExtractorPinsTemperatureToZero(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"name":null,"email":null,"phone":null}`),
	})
	e := NewContactExtractor(mock)

	e.Extract(context.Background(), sampleResume)
	if assert.Len(t, mock.Calls, 1) {
		assert.Zero(t, mock.Calls[0].Temperature)
	}
}
