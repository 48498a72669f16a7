package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Presupuesto holds the schema definition for the Presupuesto entity,
// the vehicle price-list catalog quotes are built from.
type Presupuesto struct {
	ent.Schema
}

// Fields of the Presupuesto.
func (Presupuesto) Fields() []ent.Field {
	return []ent.Field{
		field.String("modelo").
			NotEmpty().
			Comment("Vehicle model"),
		field.String("marca").
			NotEmpty().
			Comment("Vehicle brand"),
		field.String("imagen_url").
			Optional().
			Comment("Catalog image"),
		field.Float("precio_contado").
			Optional().
			Comment("Cash price"),
		field.Text("especificaciones_tecnicas").
			Optional().
			Comment("Technical specs shown to the client"),
		field.JSON("planes_cuotas", []QuotePlan{}).
			Optional().
			Comment("Published financing plans"),
		field.String("bonificaciones").
			Optional().
			Comment("Current promotions"),
		field.Float("anticipo").
			Optional().
			Comment("Suggested down payment"),
		field.Bool("activo").
			Default(true).
			Comment("Hidden from listings when false"),
		field.Int("created_by").
			Optional().
			Comment("User who published the entry"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Indexes of the Presupuesto.
func (Presupuesto) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("activo"),
		index.Fields("created_at"),
	}
}
