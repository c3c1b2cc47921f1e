package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// AnswerRecord archives one question/answer pair of a completed interview.
type AnswerRecord struct {
	ent.Schema
}

func (AnswerRecord) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_index").
			Comment("Position in the six-question plan, 0-based"),
		field.String("question_id"),
		field.String("question_text"),
		field.String("difficulty").
			Comment("easy, medium, or hard"),
		field.String("answer_text"),
		field.Int("score").
			Comment("Clamped integer score 0-10"),
		field.String("feedback"),
		field.Float("confidence").
			Comment("Evaluator self-reported confidence 0-1"),
		field.Time("submitted_at").
			Default(time.Now),
	}
}

func (AnswerRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("candidate", Candidate.Type).
			Ref("answers").
			Unique().
			Required(),
	}
}
