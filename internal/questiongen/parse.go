package questiongen

import (
	"encoding/json"
	"fmt"
	"strings"
)

// parseQuestion strictly parses raw service output. It accepts the object
// only when question_text is a non-empty string; every other field is
// optional and will be replaced with canonical values by the caller.
func parseQuestion(raw json.RawMessage) (Question, error) {
	var q Question
	if err := json.Unmarshal(raw, &q); err != nil {
		return Question{}, fmt.Errorf("parse question: %w", err)
	}

	q.Text = strings.TrimSpace(q.Text)
	if q.Text == "" {
		return Question{}, fmt.Errorf("parse question: empty question_text")
	}

	return q, nil
}
