// Code generated by ent, DO NOT EDIT.

package reminder

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the reminder type in the database.
	Label = "reminder"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldFecha holds the string denoting the fecha field in the database.
	FieldFecha = "fecha"
	// FieldHora holds the string denoting the hora field in the database.
	FieldHora = "hora"
	// FieldDescripcion holds the string denoting the descripcion field in the database.
	FieldDescripcion = "descripcion"
	// FieldCompletado holds the string denoting the completado field in the database.
	FieldCompletado = "completado"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the reminder in the database.
	Table = "reminders"
)

// Columns holds all SQL columns for reminder fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldFecha,
	FieldHora,
	FieldDescripcion,
	FieldCompletado,
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
	// FechaValidator is a validator for the "fecha" field. It is called by the builders before save.
	FechaValidator func(string) error
	// HoraValidator is a validator for the "hora" field. It is called by the builders before save.
	HoraValidator func(string) error
	// DescripcionValidator is a validator for the "descripcion" field. It is called by the builders before save.
	DescripcionValidator func(string) error
	// DefaultCompletado holds the default value on creation for the "completado" field.
	DefaultCompletado bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Reminder queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByFecha orders the results by the fecha field.
func ByFecha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFecha, opts...).ToFunc()
}

// ByHora orders the results by the hora field.
func ByHora(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHora, opts...).ToFunc()
}

// ByDescripcion orders the results by the descripcion field.
func ByDescripcion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescripcion, opts...).ToFunc()
}

// ByCompletado orders the results by the completado field.
func ByCompletado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletado, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
