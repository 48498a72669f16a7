package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Quote holds the schema definition for the Quote entity (cotizaciones).
type Quote struct {
	ent.Schema
}

// Fields of the Quote.
func (Quote) Fields() []ent.Field {
	return []ent.Field{
		field.Int("lead_id").
			Comment("Lead this quote belongs to"),
		field.String("vehiculo").
			NotEmpty().
			Comment("Quoted vehicle model"),
		field.Float("precio_contado").
			Positive().
			Comment("Cash price"),
		field.JSON("planes", []QuotePlan{}).
			Comment("Financing plan options"),
		field.String("observaciones").
			Optional().
			Comment("Free-text remarks"),
		field.Int("created_by").
			Comment("User who issued the quote"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// QuotePlan is one financing option inside a quote.
type QuotePlan struct {
	Nombre      string  `json:"nombre"`
	Cuotas      int     `json:"cuotas"`
	MontoCuota  float64 `json:"monto_cuota"`
	Anticipo    float64 `json:"anticipo,omitempty"`
	Observacion string  `json:"observacion,omitempty"`
}

// Indexes of the Quote.
func (Quote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lead_id"),
		index.Fields("created_by"),
		index.Fields("created_at"),
	}
}
