package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// InternalNote holds the schema definition for the InternalNote entity
// (notas internas).
type InternalNote struct {
	ent.Schema
}

// Fields of the InternalNote.
func (InternalNote) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Comment("Lead this note is attached to"),
		field.Int("user_id").
			Comment("Author"),
		field.String("texto").
			NotEmpty().
			Comment("Note body"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Indexes of the InternalNote.
func (InternalNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id"),
		index.Fields("user_id"),
	}
}
