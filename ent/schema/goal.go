package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal holds the schema definition for the Goal entity (metas).
type Goal struct {
	ent.Schema
}

// Fields of the Goal.
func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.Int("vendedor_id").
			Comment("Agent the goal applies to"),
		field.String("mes").
			NotEmpty().
			Comment("Month, YYYY-MM"),
		field.Int("meta_ventas").
			NonNegative().
			Comment("Target closed sales for the month"),
		field.Int("meta_leads").
			NonNegative().
			Comment("Target leads handled for the month"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Indexes of the Goal.
func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("vendedor_id", "mes").Unique(),
		index.Fields("mes"),
	}
}
