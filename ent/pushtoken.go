// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/pushtoken"
)

// PushToken is the model entity for the PushToken schema.
type PushToken struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Subscription owner
	UserID int `json:"user_id,omitempty"`
	// Push service endpoint URL
	Endpoint string `json:"endpoint,omitempty"`
	// Client public key
	P256dh string `json:"p256dh,omitempty"`
	// Client auth secret
	Auth string `json:"-"`
	// Creation timestamp
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PushToken) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pushtoken.FieldID, pushtoken.FieldUserID:
			values[i] = new(sql.NullInt64)
		case pushtoken.FieldEndpoint, pushtoken.FieldP256dh, pushtoken.FieldAuth:
			values[i] = new(sql.NullString)
		case pushtoken.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PushToken fields.
func (_m *PushToken) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pushtoken.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pushtoken.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case pushtoken.FieldEndpoint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field endpoint", values[i])
			} else if value.Valid {
				_m.Endpoint = value.String
			}
		case pushtoken.FieldP256dh:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field p256dh", values[i])
			} else if value.Valid {
				_m.P256dh = value.String
			}
		case pushtoken.FieldAuth:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth", values[i])
			} else if value.Valid {
				_m.Auth = value.String
			}
		case pushtoken.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PushToken.
// This includes values selected through modifiers, order, etc.
func (_m *PushToken) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PushToken.
// Note that you need to call PushToken.Unwrap() before calling this method if this PushToken
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PushToken) Update() *PushTokenUpdateOne {
	return NewPushTokenClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PushToken entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PushToken) Unwrap() *PushToken {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PushToken is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PushToken) String() string {
	var builder strings.Builder
	builder.WriteString("PushToken(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("endpoint=")
	builder.WriteString(_m.Endpoint)
	builder.WriteString(", ")
	builder.WriteString("p256dh=")
	builder.WriteString(_m.P256dh)
	builder.WriteString(", ")
	builder.WriteString("auth=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PushTokens is a parsable slice of PushToken.
type PushTokens []*PushToken
