package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TableUsage holds the schema definition for the TableUsage entity.
// One row per table referenced in a step's final data model, written at tool
// success with success attributed from the step status. Aggregates over this
// table feed the schema ranking (weighted usage, success rate, failures,
// recency, feedback).
type TableUsage struct {
	ent.Schema
}

// Fields of the TableUsage.
func (TableUsage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("usage_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.String("datasource").
			Immutable(),
		field.String("table_name").
			Immutable(),
		field.Bool("success").
			Immutable(),
		field.Int("feedback").
			Default(0).
			Comment("Net thumbs applied later by collaborator services"),
		field.String("step_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("agent_execution_id").
			Optional().
			Nillable().
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the TableUsage.
func (TableUsage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "datasource", "table_name"),
		index.Fields("organization_id", "created_at"),
		index.Fields("created_at"),
	}
}
