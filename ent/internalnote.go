// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/internalnote"
)

// InternalNote is the model entity for the InternalNote schema.
type InternalNote struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Lead this note is attached to
	LeadID int `json:"lead_id,omitempty"`
	// Author
	UserID int `json:"user_id,omitempty"`
	// Note body
	Texto string `json:"texto,omitempty"`
	// Creation timestamp
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*InternalNote) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case internalnote.FieldID, internalnote.FieldLeadID, internalnote.FieldUserID:
			values[i] = new(sql.NullInt64)
		case internalnote.FieldTexto:
			values[i] = new(sql.NullString)
		case internalnote.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the InternalNote fields.
func (_m *InternalNote) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case internalnote.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case internalnote.FieldLeadID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = int(value.Int64)
			}
		case internalnote.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case internalnote.FieldTexto:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field texto", values[i])
			} else if value.Valid {
				_m.Texto = value.String
			}
		case internalnote.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the InternalNote.
// This includes values selected through modifiers, order, etc.
func (_m *InternalNote) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this InternalNote.
// Note that you need to call InternalNote.Unwrap() before calling this method if this InternalNote
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *InternalNote) Update() *InternalNoteUpdateOne {
	return NewInternalNoteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the InternalNote entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *InternalNote) Unwrap() *InternalNote {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: InternalNote is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *InternalNote) String() string {
	var builder strings.Builder
	builder.WriteString("InternalNote(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("lead_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("texto=")
	builder.WriteString(_m.Texto)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// InternalNotes is a parsable slice of InternalNote.
type InternalNotes []*InternalNote
