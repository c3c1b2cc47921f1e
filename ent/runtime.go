// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/intervu/ent/answerrecord"
	"github.com/abhisek/intervu/ent/candidate"
	"github.com/abhisek/intervu/ent/llmrequestevent"
	"github.com/abhisek/intervu/ent/schema"
	"github.com/abhisek/intervu/ent/sessionsnapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answerrecordFields := schema.AnswerRecord{}.Fields()
	_ = answerrecordFields
	// answerrecordDescSubmittedAt is the schema descriptor for submitted_at field.
	answerrecordDescSubmittedAt := answerrecordFields[8].Descriptor()
	// answerrecord.DefaultSubmittedAt holds the default value on creation for the submitted_at field.
	answerrecord.DefaultSubmittedAt = answerrecordDescSubmittedAt.Default.(func() time.Time)
	candidateFields := schema.Candidate{}.Fields()
	_ = candidateFields
	// candidateDescCompletedAt is the schema descriptor for completed_at field.
	candidateDescCompletedAt := candidateFields[7].Descriptor()
	// candidate.DefaultCompletedAt holds the default value on creation for the completed_at field.
	candidate.DefaultCompletedAt = candidateDescCompletedAt.Default.(func() time.Time)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	sessionsnapshotFields := schema.SessionSnapshot{}.Fields()
	_ = sessionsnapshotFields
	// sessionsnapshotDescTimestamp is the schema descriptor for timestamp field.
	sessionsnapshotDescTimestamp := sessionsnapshotFields[1].Descriptor()
	// sessionsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionsnapshot.DefaultTimestamp = sessionsnapshotDescTimestamp.Default.(func() time.Time)
}
