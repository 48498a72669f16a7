// Code generated by ent, DO NOT EDIT.

package goal

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the goal type in the database.
	Label = "goal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVendedorID holds the string denoting the vendedor_id field in the database.
	FieldVendedorID = "vendedor_id"
	// FieldMes holds the string denoting the mes field in the database.
	FieldMes = "mes"
	// FieldMetaVentas holds the string denoting the meta_ventas field in the database.
	FieldMetaVentas = "meta_ventas"
	// FieldMetaLeads holds the string denoting the meta_leads field in the database.
	FieldMetaLeads = "meta_leads"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the goal in the database.
	Table = "goals"
)

// Columns holds all SQL columns for goal fields.
var Columns = []string{
	FieldID,
	FieldVendedorID,
	FieldMes,
	FieldMetaVentas,
	FieldMetaLeads,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// MesValidator is a validator for the "mes" field. It is called by the builders before save.
	MesValidator func(string) error
	// MetaVentasValidator is a validator for the "meta_ventas" field. It is called by the builders before save.
	MetaVentasValidator func(int) error
	// MetaLeadsValidator is a validator for the "meta_leads" field. It is called by the builders before save.
	MetaLeadsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Goal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVendedorID orders the results by the vendedor_id field.
func ByVendedorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendedorID, opts...).ToFunc()
}

// ByMes orders the results by the mes field.
func ByMes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMes, opts...).ToFunc()
}

// ByMetaVentas orders the results by the meta_ventas field.
func ByMetaVentas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaVentas, opts...).ToFunc()
}

// ByMetaLeads orders the results by the meta_leads field.
func ByMetaLeads(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetaLeads, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
