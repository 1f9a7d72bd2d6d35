package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionScore holds the schema definition for the ExecutionScore entity.
// Judge-produced quality scores for a run. Scoring happens in isolated
// sessions (early: instruction/context effectiveness, late: response
// quality); a judge failure leaves the row failed with an error message.
type ExecutionScore struct {
	ent.Schema
}

// Fields of the ExecutionScore.
func (ExecutionScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("score_id").
			Unique().
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.Enum("kind").
			Values("instruction_effectiveness", "context_effectiveness", "response_quality").
			Immutable(),
		field.Int("score").
			Optional().
			Nillable().
			Comment("0-100, extracted from the judge response"),
		field.Text("rationale").
			Optional().
			Nillable(),
		field.Enum("status").
			Values("pending", "completed", "failed").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Text("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the ExecutionScore.
func (ExecutionScore) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent_execution", AgentExecution.Type).
			Ref("scores").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ExecutionScore.
func (ExecutionScore) Indexes() []ent.Index {
	return []ent.Index{
		// One score per kind per run
		index.Fields("agent_execution_id", "kind").
			Unique(),
		index.Fields("kind", "score"),
	}
}
