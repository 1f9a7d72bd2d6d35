package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Notification outbox: every published stream event is inserted here and
// pg_notify'd in the same transaction, so late subscribers can catch up from
// a last-seen id. Rows are pruned by the retention cleanup once older than
// the event TTL.
type Event struct {
	ent.Schema
}

// Fields of the Event.
// The implicit autoincrement id doubles as the SSE event id for catchup.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("channel").
			Immutable().
			Comment("NOTIFY channel the payload was sent on"),
		field.String("completion_id").
			Optional().
			Immutable().
			Comment("Routing field for per-completion catchup; empty for global broadcasts"),
		field.JSON("payload", map[string]interface{}{}).
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("channel", "id"),
		index.Fields("completion_id", "id"),
		index.Fields("created_at"),
	}
}
