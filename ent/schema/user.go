package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Login email"),
		field.String("password_hash").
			Sensitive().
			NotEmpty().
			Comment("Bcrypt hashed password"),
		field.Enum("role").
			Values("owner", "gerente_general", "gerente", "vendedor").
			Default("vendedor").
			Comment("Role for access control and assignment eligibility"),
		field.Bool("active").
			Default(true).
			Comment("Inactive users are excluded from assignment rosters"),
		field.Int("reports_to").
			Optional().
			Nillable().
			Comment("Manager this user reports to"),
		field.String("equipo").
			Default("principal").
			Comment("Assignment pool this user belongs to"),
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

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role", "active"),
		index.Fields("equipo"),
		index.Fields("reports_to"),
	}
}
