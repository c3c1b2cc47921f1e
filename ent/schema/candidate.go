package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Candidate is a completed interview's archive record: who was
// interviewed, for what role, and how they scored.
type Candidate struct {
	ent.Schema
}

func (Candidate) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			Comment("Session that produced this record"),
		field.String("name"),
		field.String("email"),
		field.String("phone"),
		field.String("role").
			Comment("Role the candidate interviewed for"),
		field.Float("final_score").
			Comment("Weighted final score, one decimal place"),
		field.String("summary").
			Comment("Narrative summary of the interview"),
		field.Time("completed_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Candidate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("answers", AnswerRecord.Type),
	}
}

func (Candidate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("completed_at"),
		index.Fields("final_score"),
	}
}
