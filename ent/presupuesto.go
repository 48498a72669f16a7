// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/presupuesto"
	"github.com/alluma/crm-backend/ent/schema"
)

// Presupuesto is the model entity for the Presupuesto schema.
type Presupuesto struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Vehicle model
	Modelo string `json:"modelo,omitempty"`
	// Vehicle brand
	Marca string `json:"marca,omitempty"`
	// Catalog image
	ImagenURL string `json:"imagen_url,omitempty"`
	// Cash price
	PrecioContado float64 `json:"precio_contado,omitempty"`
	// Technical specs shown to the client
	EspecificacionesTecnicas string `json:"especificaciones_tecnicas,omitempty"`
	// Published financing plans
	PlanesCuotas []schema.QuotePlan `json:"planes_cuotas,omitempty"`
	// Current promotions
	Bonificaciones string `json:"bonificaciones,omitempty"`
	// Suggested down payment
	Anticipo float64 `json:"anticipo,omitempty"`
	// Hidden from listings when false
	Activo bool `json:"activo,omitempty"`
	// User who published the entry
	CreatedBy int `json:"created_by,omitempty"`
	// Creation timestamp
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Presupuesto) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case presupuesto.FieldPlanesCuotas:
			values[i] = new([]byte)
		case presupuesto.FieldActivo:
			values[i] = new(sql.NullBool)
		case presupuesto.FieldPrecioContado, presupuesto.FieldAnticipo:
			values[i] = new(sql.NullFloat64)
		case presupuesto.FieldID, presupuesto.FieldCreatedBy:
			values[i] = new(sql.NullInt64)
		case presupuesto.FieldModelo, presupuesto.FieldMarca, presupuesto.FieldImagenURL, presupuesto.FieldEspecificacionesTecnicas, presupuesto.FieldBonificaciones:
			values[i] = new(sql.NullString)
		case presupuesto.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Presupuesto fields.
func (_m *Presupuesto) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case presupuesto.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case presupuesto.FieldModelo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modelo", values[i])
			} else if value.Valid {
				_m.Modelo = value.String
			}
		case presupuesto.FieldMarca:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field marca", values[i])
			} else if value.Valid {
				_m.Marca = value.String
			}
		case presupuesto.FieldImagenURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field imagen_url", values[i])
			} else if value.Valid {
				_m.ImagenURL = value.String
			}
		case presupuesto.FieldPrecioContado:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field precio_contado", values[i])
			} else if value.Valid {
				_m.PrecioContado = value.Float64
			}
		case presupuesto.FieldEspecificacionesTecnicas:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field especificaciones_tecnicas", values[i])
			} else if value.Valid {
				_m.EspecificacionesTecnicas = value.String
			}
		case presupuesto.FieldPlanesCuotas:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field planes_cuotas", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanesCuotas); err != nil {
					return fmt.Errorf("unmarshal field planes_cuotas: %w", err)
				}
			}
		case presupuesto.FieldBonificaciones:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bonificaciones", values[i])
			} else if value.Valid {
				_m.Bonificaciones = value.String
			}
		case presupuesto.FieldAnticipo:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field anticipo", values[i])
			} else if value.Valid {
				_m.Anticipo = value.Float64
			}
		case presupuesto.FieldActivo:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field activo", values[i])
			} else if value.Valid {
				_m.Activo = value.Bool
			}
		case presupuesto.FieldCreatedBy:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value.Valid {
				_m.CreatedBy = int(value.Int64)
			}
		case presupuesto.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Presupuesto.
// This includes values selected through modifiers, order, etc.
func (_m *Presupuesto) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Presupuesto.
// Note that you need to call Presupuesto.Unwrap() before calling this method if this Presupuesto
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Presupuesto) Update() *PresupuestoUpdateOne {
	return NewPresupuestoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Presupuesto entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Presupuesto) Unwrap() *Presupuesto {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Presupuesto is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Presupuesto) String() string {
	var builder strings.Builder
	builder.WriteString("Presupuesto(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("modelo=")
	builder.WriteString(_m.Modelo)
	builder.WriteString(", ")
	builder.WriteString("marca=")
	builder.WriteString(_m.Marca)
	builder.WriteString(", ")
	builder.WriteString("imagen_url=")
	builder.WriteString(_m.ImagenURL)
	builder.WriteString(", ")
	builder.WriteString("precio_contado=")
	builder.WriteString(fmt.Sprintf("%v", _m.PrecioContado))
	builder.WriteString(", ")
	builder.WriteString("especificaciones_tecnicas=")
	builder.WriteString(_m.EspecificacionesTecnicas)
	builder.WriteString(", ")
	builder.WriteString("planes_cuotas=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanesCuotas))
	builder.WriteString(", ")
	builder.WriteString("bonificaciones=")
	builder.WriteString(_m.Bonificaciones)
	builder.WriteString(", ")
	builder.WriteString("anticipo=")
	builder.WriteString(fmt.Sprintf("%v", _m.Anticipo))
	builder.WriteString(", ")
	builder.WriteString("activo=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activo))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", _m.CreatedBy))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Presupuestos is a parsable slice of Presupuesto.
type Presupuestos []*Presupuesto
