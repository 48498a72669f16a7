// Code generated by ent, DO NOT EDIT.

package pushtoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the pushtoken type in the database.
	Label = "push_token"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEndpoint holds the string denoting the endpoint field in the database.
	FieldEndpoint = "endpoint"
	// FieldP256dh holds the string denoting the p256dh field in the database.
	FieldP256dh = "p256dh"
	// FieldAuth holds the string denoting the auth field in the database.
	FieldAuth = "auth"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the pushtoken in the database.
	Table = "push_tokens"
)

// Columns holds all SQL columns for pushtoken fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEndpoint,
	FieldP256dh,
	FieldAuth,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	EndpointValidator func(string) error
	// P256dhValidator is a validator for the "p256dh" field. It is called by the builders before save.
	P256dhValidator func(string) error
	// AuthValidator is a validator for the "auth" field. It is called by the builders before save.
	AuthValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PushToken queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEndpoint orders the results by the endpoint field.
func ByEndpoint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpoint, opts...).ToFunc()
}

// ByP256dh orders the results by the p256dh field.
func ByP256dh(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldP256dh, opts...).ToFunc()
}

// ByAuth orders the results by the auth field.
func ByAuth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuth, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
