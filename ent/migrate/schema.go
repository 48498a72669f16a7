// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "vendedor_id", Type: field.TypeInt},
		{Name: "mes", Type: field.TypeString},
		{Name: "meta_ventas", Type: field.TypeInt},
		{Name: "meta_leads", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_vendedor_id_mes",
				Unique:  true,
				Columns: []*schema.Column{GoalsColumns[1], GoalsColumns[2]},
			},
			{
				Name:    "goal_mes",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[2]},
			},
		},
	}
	// InternalNotesColumns holds the columns for the "internal_notes" table.
	InternalNotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "texto", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// InternalNotesTable holds the schema information for the "internal_notes" table.
	InternalNotesTable = &schema.Table{
		Name:       "internal_notes",
		Columns:    InternalNotesColumns,
		PrimaryKey: []*schema.Column{InternalNotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "internalnote_lead_id",
				Unique:  false,
				Columns: []*schema.Column{InternalNotesColumns[1]},
			},
			{
				Name:    "internalnote_user_id",
				Unique:  false,
				Columns: []*schema.Column{InternalNotesColumns[2]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "nombre", Type: field.TypeString},
		{Name: "telefono", Type: field.TypeString},
		{Name: "modelo", Type: field.TypeString},
		{Name: "forma_pago", Type: field.TypeString, Default: "Contado"},
		{Name: "info_usado", Type: field.TypeString, Nullable: true},
		{Name: "entrega", Type: field.TypeBool, Default: false},
		{Name: "notas", Type: field.TypeString, Default: ""},
		{Name: "estado", Type: field.TypeString, Default: "nuevo"},
		{Name: "fuente", Type: field.TypeString, Default: "otro"},
		{Name: "fecha", Type: field.TypeString},
		{Name: "equipo", Type: field.TypeString, Default: "principal"},
		{Name: "assigned_to", Type: field.TypeInt, Nullable: true},
		{Name: "created_by", Type: field.TypeInt, Nullable: true},
		{Name: "historial", Type: field.TypeString, Size: 2147483647, Default: "[]"},
		{Name: "last_status_change", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_equipo_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[11], LeadsColumns[16]},
			},
			{
				Name:    "lead_assigned_to",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[12]},
			},
			{
				Name:    "lead_created_by",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[13]},
			},
			{
				Name:    "lead_estado",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[8]},
			},
			{
				Name:    "lead_created_at",
				Unique:  false,
				Columns: []*schema.Column{LeadsColumns[16]},
			},
		},
	}
	// PresupuestosColumns holds the columns for the "presupuestos" table.
	PresupuestosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "modelo", Type: field.TypeString},
		{Name: "marca", Type: field.TypeString},
		{Name: "imagen_url", Type: field.TypeString, Nullable: true},
		{Name: "precio_contado", Type: field.TypeFloat64, Nullable: true},
		{Name: "especificaciones_tecnicas", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "planes_cuotas", Type: field.TypeJSON, Nullable: true},
		{Name: "bonificaciones", Type: field.TypeString, Nullable: true},
		{Name: "anticipo", Type: field.TypeFloat64, Nullable: true},
		{Name: "activo", Type: field.TypeBool, Default: true},
		{Name: "created_by", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PresupuestosTable holds the schema information for the "presupuestos" table.
	PresupuestosTable = &schema.Table{
		Name:       "presupuestos",
		Columns:    PresupuestosColumns,
		PrimaryKey: []*schema.Column{PresupuestosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "presupuesto_activo",
				Unique:  false,
				Columns: []*schema.Column{PresupuestosColumns[9]},
			},
			{
				Name:    "presupuesto_created_at",
				Unique:  false,
				Columns: []*schema.Column{PresupuestosColumns[11]},
			},
		},
	}
	// PushTokensColumns holds the columns for the "push_tokens" table.
	PushTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeInt},
		{Name: "endpoint", Type: field.TypeString},
		{Name: "p256dh", Type: field.TypeString},
		{Name: "auth", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PushTokensTable holds the schema information for the "push_tokens" table.
	PushTokensTable = &schema.Table{
		Name:       "push_tokens",
		Columns:    PushTokensColumns,
		PrimaryKey: []*schema.Column{PushTokensColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pushtoken_user_id",
				Unique:  false,
				Columns: []*schema.Column{PushTokensColumns[1]},
			},
			{
				Name:    "pushtoken_endpoint",
				Unique:  true,
				Columns: []*schema.Column{PushTokensColumns[2]},
			},
		},
	}
	// QuotesColumns holds the columns for the "quotes" table.
	QuotesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "vehiculo", Type: field.TypeString},
		{Name: "precio_contado", Type: field.TypeFloat64},
		{Name: "planes", Type: field.TypeJSON},
		{Name: "observaciones", Type: field.TypeString, Nullable: true},
		{Name: "created_by", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuotesTable holds the schema information for the "quotes" table.
	QuotesTable = &schema.Table{
		Name:       "quotes",
		Columns:    QuotesColumns,
		PrimaryKey: []*schema.Column{QuotesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quote_lead_id",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[1]},
			},
			{
				Name:    "quote_created_by",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[6]},
			},
			{
				Name:    "quote_created_at",
				Unique:  false,
				Columns: []*schema.Column{QuotesColumns[7]},
			},
		},
	}
	// RemindersColumns holds the columns for the "reminders" table.
	RemindersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "lead_id", Type: field.TypeInt},
		{Name: "fecha", Type: field.TypeString},
		{Name: "hora", Type: field.TypeString},
		{Name: "descripcion", Type: field.TypeString},
		{Name: "completado", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RemindersTable holds the schema information for the "reminders" table.
	RemindersTable = &schema.Table{
		Name:       "reminders",
		Columns:    RemindersColumns,
		PrimaryKey: []*schema.Column{RemindersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reminder_lead_id",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[1]},
			},
			{
				Name:    "reminder_fecha_hora",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[2], RemindersColumns[3]},
			},
			{
				Name:    "reminder_completado",
				Unique:  false,
				Columns: []*schema.Column{RemindersColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"owner", "gerente_general", "gerente", "vendedor"}, Default: "vendedor"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "reports_to", Type: field.TypeInt, Nullable: true},
		{Name: "equipo", Type: field.TypeString, Default: "principal"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[2]},
			},
			{
				Name:    "user_role_active",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[4], UsersColumns[5]},
			},
			{
				Name:    "user_equipo",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_reports_to",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GoalsTable,
		InternalNotesTable,
		LeadsTable,
		PresupuestosTable,
		PushTokensTable,
		QuotesTable,
		RemindersTable,
		UsersTable,
	}
)

func init() {
}
