package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionBlock holds the schema definition for the CompletionBlock entity.
// Render-ready transcript unit projected from a plan decision. A tool
// execution annotates the decision block of its owning decision instead of
// creating a second row, so (execution, loop_index, source_type) stays unique.
type CompletionBlock struct {
	ent.Schema
}

// Fields of the CompletionBlock.
func (CompletionBlock) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("block_id").
			Unique().
			Immutable(),
		field.String("completion_id").
			Immutable(),
		field.String("agent_execution_id").
			Immutable(),
		field.Enum("source_type").
			Values("decision", "tool").
			Default("decision").
			Immutable(),
		field.String("plan_decision_id").
			Optional().
			Nillable(),
		field.String("tool_execution_id").
			Optional().
			Nillable().
			Comment("Set when a tool annotates its decision block"),

		field.Int("block_index").
			Comment("seq * 10; gaps left for future interpolation"),
		field.Int("loop_index"),

		field.String("title"),
		field.Enum("status").
			Values("in_progress", "completed", "error", "stopped").
			Default("in_progress"),
		field.String("icon").
			Default("brain"),
		field.Text("content").
			Optional().
			Nillable(),
		field.Text("reasoning").
			Optional().
			Nillable(),

		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Only moves when an upsert actually changes content"),
	}
}

// Edges of the CompletionBlock.
func (CompletionBlock) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("completion", Completion.Type).
			Ref("blocks").
			Field("completion_id").
			Unique().
			Required().
			Immutable(),
		edge.From("agent_execution", AgentExecution.Type).
			Ref("blocks").
			Field("agent_execution_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CompletionBlock.
func (CompletionBlock) Indexes() []ent.Index {
	return []ent.Index{
		// At most one decision block per loop iteration
		index.Fields("agent_execution_id", "loop_index", "source_type").
			Unique(),
		index.Fields("completion_id", "block_index"),
		index.Fields("agent_execution_id", "block_index"),
	}
}
