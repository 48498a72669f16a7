// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/lead"
)

// Lead is the model entity for the Lead schema.
type Lead struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Contact name
	Nombre string `json:"nombre,omitempty"`
	// Contact phone, normalized to E.164 when possible
	Telefono string `json:"telefono,omitempty"`
	// Vehicle model of interest
	Modelo string `json:"modelo,omitempty"`
	// Payment preference (Contado, Plan de ahorro, Financiado)
	FormaPago string `json:"forma_pago,omitempty"`
	// Trade-in vehicle details
	InfoUsado string `json:"info_usado,omitempty"`
	// Whether the customer hands in a used vehicle
	Entrega bool `json:"entrega,omitempty"`
	// Free-text note
	Notas string `json:"notas,omitempty"`
	// Lifecycle status; open set with defined automation semantics
	Estado string `json:"estado,omitempty"`
	// Source channel (web, whatsapp, sheets, zapier, otro)
	Fuente string `json:"fuente,omitempty"`
	// Intake date, YYYY-MM-DD
	Fecha string `json:"fecha,omitempty"`
	// Assignment pool the lead belongs to
	Equipo string `json:"equipo,omitempty"`
	// Assigned agent id; null when no one is available
	AssignedTo *int `json:"assigned_to,omitempty"`
	// User who created the lead; null for webhook intake
	CreatedBy *int `json:"created_by,omitempty"`
	// Append-only status/assignment audit trail, JSON array
	Historial string `json:"historial,omitempty"`
	// When estado last changed
	LastStatusChange *time.Time `json:"last_status_change,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Lead) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lead.FieldEntrega:
			values[i] = new(sql.NullBool)
		case lead.FieldID, lead.FieldAssignedTo, lead.FieldCreatedBy:
			values[i] = new(sql.NullInt64)
		case lead.FieldNombre, lead.FieldTelefono, lead.FieldModelo, lead.FieldFormaPago, lead.FieldInfoUsado, lead.FieldNotas, lead.FieldEstado, lead.FieldFuente, lead.FieldFecha, lead.FieldEquipo, lead.FieldHistorial:
			values[i] = new(sql.NullString)
		case lead.FieldLastStatusChange, lead.FieldCreatedAt, lead.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Lead fields.
func (_m *Lead) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lead.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lead.FieldNombre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre", values[i])
			} else if value.Valid {
				_m.Nombre = value.String
			}
		case lead.FieldTelefono:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono", values[i])
			} else if value.Valid {
				_m.Telefono = value.String
			}
		case lead.FieldModelo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modelo", values[i])
			} else if value.Valid {
				_m.Modelo = value.String
			}
		case lead.FieldFormaPago:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field forma_pago", values[i])
			} else if value.Valid {
				_m.FormaPago = value.String
			}
		case lead.FieldInfoUsado:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field info_usado", values[i])
			} else if value.Valid {
				_m.InfoUsado = value.String
			}
		case lead.FieldEntrega:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field entrega", values[i])
			} else if value.Valid {
				_m.Entrega = value.Bool
			}
		case lead.FieldNotas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notas", values[i])
			} else if value.Valid {
				_m.Notas = value.String
			}
		case lead.FieldEstado:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field estado", values[i])
			} else if value.Valid {
				_m.Estado = value.String
			}
		case lead.FieldFuente:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fuente", values[i])
			} else if value.Valid {
				_m.Fuente = value.String
			}
		case lead.FieldFecha:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fecha", values[i])
			} else if value.Valid {
				_m.Fecha = value.String
			}
		case lead.FieldEquipo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field equipo", values[i])
			} else if value.Valid {
				_m.Equipo = value.String
			}
		case lead.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(int)
				*_m.AssignedTo = int(value.Int64)
			}
		case lead.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = new(int)
				*_m.CreatedBy = int(value.Int64)
			}
		case lead.FieldHistorial:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field historial", values[i])
			} else if value.Valid {
				_m.Historial = value.String
			}
		case lead.FieldLastStatusChange:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_status_change", values[i])
			} else if value.Valid {
				_m.LastStatusChange = new(time.Time)
				*_m.LastStatusChange = value.Time
			}
		case lead.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case lead.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Lead.
// This includes values selected through modifiers, order, etc.
func (_m *Lead) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Lead.
// Note that you need to call Lead.Unwrap() before calling this method if this Lead
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Lead) Update() *LeadUpdateOne {
	return NewLeadClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Lead entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Lead) Unwrap() *Lead {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Lead is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Lead) String() string {
	var builder strings.Builder
	builder.WriteString("Lead(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("nombre=")
	builder.WriteString(_m.Nombre)
	builder.WriteString(", ")
	builder.WriteString("telefono=")
	builder.WriteString(_m.Telefono)
	builder.WriteString(", ")
	builder.WriteString("modelo=")
	builder.WriteString(_m.Modelo)
	builder.WriteString(", ")
	builder.WriteString("forma_pago=")
	builder.WriteString(_m.FormaPago)
	builder.WriteString(", ")
	builder.WriteString("info_usado=")
	builder.WriteString(_m.InfoUsado)
	builder.WriteString(", ")
	builder.WriteString("entrega=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entrega))
	builder.WriteString(", ")
	builder.WriteString("notas=")
	builder.WriteString(_m.Notas)
	builder.WriteString(", ")
	builder.WriteString("estado=")
	builder.WriteString(_m.Estado)
	builder.WriteString(", ")
	builder.WriteString("fuente=")
	builder.WriteString(_m.Fuente)
	builder.WriteString(", ")
	builder.WriteString("fecha=")
	builder.WriteString(_m.Fecha)
	builder.WriteString(", ")
	builder.WriteString("equipo=")
	builder.WriteString(_m.Equipo)
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CreatedBy; v != nil {
		builder.WriteString("created_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("historial=")
	builder.WriteString(_m.Historial)
	builder.WriteString(", ")
	if v := _m.LastStatusChange; v != nil {
		builder.WriteString("last_status_change=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Leads is a parsable slice of Lead.
type Leads []*Lead
