package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Instruction holds the schema definition for the Instruction entity.
// Organization-scoped guidance injected into the planner context. load_mode
// decides whether an instruction is always included or retrieved by query
// match; the suggestion post-step writes drafts with source=suggested.
type Instruction struct {
	ent.Schema
}

// Fields of the Instruction.
func (Instruction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("instruction_id").
			Unique().
			Immutable(),
		field.String("organization_id").
			Immutable(),
		field.Text("text"),
		field.String("category").
			Optional().
			Nillable(),
		field.Enum("load_mode").
			Values("always", "intelligent").
			Default("intelligent"),
		field.Enum("status").
			Values("draft", "active", "archived").
			Default("active"),
		field.Enum("source").
			Values("user", "suggested").
			Default("user"),
		field.String("agent_execution_id").
			Optional().
			Nillable().
			Comment("Provenance for suggested drafts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Instruction.
func (Instruction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("organization_id", "status"),
		index.Fields("organization_id", "load_mode"),
	}
}
