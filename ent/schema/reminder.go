package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Reminder holds the schema definition for the Reminder entity (recordatorios).
type Reminder struct {
	ent.Schema
}

// Fields of the Reminder.
func (Reminder) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Comment("Lead this reminder is attached to"),
		field.String("fecha").
			NotEmpty().
			Comment("Due date, YYYY-MM-DD"),
		field.String("hora").
			NotEmpty().
			Comment("Due time, HH:MM"),
		field.String("descripcion").
			NotEmpty().
			Comment("What to do"),
		field.Bool("completado").
			Default(false).
			Comment("Whether the reminder was completed"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Indexes of the Reminder.
func (Reminder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id"),
		index.Fields("fecha", "hora"),
		index.Fields("completado"),
	}
}
