package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Completion holds the schema definition for the Completion entity.
// One completion per user turn: it carries the user prompt in, is claimed by a
// worker, and ends up holding the assistant message rebuilt from its blocks.
type Completion struct {
	ent.Schema
}

// Fields of the Completion.
func (Completion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("completion_id").
			Unique().
			Immutable(),
		field.String("report_id").
			Immutable(),
		field.String("organization_id").
			Immutable().
			Comment("Denormalized for queue and instruction lookups"),
		field.String("user_id").
			Immutable(),
		field.Enum("status").
			Values("queued", "in_progress", "completed", "stopped", "error").
			Default("queued"),
		field.JSON("prompt", map[string]interface{}{}).
			Comment("CompletionCreate.prompt: content, widget_id?, step_id?, mentions?, mode?, model_id?"),
		field.Text("content").
			Optional().
			Nillable().
			Comment("Assistant message body, rebuilt from blocks"),
		field.Text("reasoning").
			Optional().
			Nillable().
			Comment("Joined reasoning excerpts, rebuilt from blocks"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Time("sigkill_at").
			Optional().
			Nillable().
			Comment("Set when a cancellation broadcast targets this completion"),

		// Queue coordination
		field.String("claimed_by").
			Optional().
			Nillable().
			Comment("Pod that claimed the row (multi-replica coordination)"),
		field.Time("claimed_at").
			Optional().
			Nillable(),
		field.Time("heartbeat_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Completion.
func (Completion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("report", Report.Type).
			Ref("completions").
			Field("report_id").
			Unique().
			Required().
			Immutable(),
		edge.To("agent_executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("blocks", CompletionBlock.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Completion.
func (Completion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("report_id", "created_at"),

		// Queue claiming is FIFO over queued rows
		index.Fields("status", "created_at"),
		// Orphan detection scans in_progress rows by heartbeat age
		index.Fields("status", "heartbeat_at"),
	}
}
