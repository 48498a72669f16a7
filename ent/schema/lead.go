package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
	return []ent.Field{
		field.String("nombre").
			NotEmpty().
			Comment("Contact name"),
		field.String("telefono").
			NotEmpty().
			Comment("Contact phone, normalized to E.164 when possible"),
		field.String("modelo").
			NotEmpty().
			Comment("Vehicle model of interest"),
		field.String("forma_pago").
			Default("Contado").
			Comment("Payment preference (Contado, Plan de ahorro, Financiado)"),
		field.String("info_usado").
			Optional().
			Comment("Trade-in vehicle details"),
		field.Bool("entrega").
			Default(false).
			Comment("Whether the customer hands in a used vehicle"),
		field.String("notas").
			Default("").
			Comment("Free-text note"),
		field.String("estado").
			Default("nuevo").
			Comment("Lifecycle status; open set with defined automation semantics"),
		field.String("fuente").
			Default("otro").
			Comment("Source channel (web, whatsapp, sheets, zapier, otro)"),
		field.String("fecha").
			Comment("Intake date, YYYY-MM-DD"),
		field.String("equipo").
			Default("principal").
			Comment("Assignment pool the lead belongs to"),
		field.Int("assigned_to").
			Optional().
			Nillable().
			Comment("Assigned agent id; null when no one is available"),
		field.Int("created_by").
			Optional().
			Nillable().
			Comment("User who created the lead; null for webhook intake"),
		// Stored as raw text so a corrupt value can be recovered on read
		// instead of failing the whole row scan.
		field.Text("historial").
			Default("[]").
			Comment("Append-only status/assignment audit trail, JSON array"),
		field.Time("last_status_change").
			Optional().
			Nillable().
			Comment("When estado last changed"),
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

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		// Cursor queries filter by pool and scan newest-first over assigned leads.
		index.Fields("equipo", "created_at"),
		index.Fields("assigned_to"),
		index.Fields("created_by"),
		index.Fields("estado"),
		index.Fields("created_at"),
	}
}
