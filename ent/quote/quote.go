// Code generated by ent, DO NOT EDIT.

package quote

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quote type in the database.
	Label = "quote"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldVehiculo holds the string denoting the vehiculo field in the database.
	FieldVehiculo = "vehiculo"
	// FieldPrecioContado holds the string denoting the precio_contado field in the database.
	FieldPrecioContado = "precio_contado"
	// FieldPlanes holds the string denoting the planes field in the database.
	FieldPlanes = "planes"
	// FieldObservaciones holds the string denoting the observaciones field in the database.
	FieldObservaciones = "observaciones"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the quote in the database.
	Table = "quotes"
)

// Columns holds all SQL columns for quote fields.
var Columns = []string{
	FieldID,
	FieldLeadID,
	FieldVehiculo,
	FieldPrecioContado,
	FieldPlanes,
	FieldObservaciones,
	FieldCreatedBy,
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
	// VehiculoValidator is a validator for the "vehiculo" field. It is called by the builders before save.
	VehiculoValidator func(string) error
	// PrecioContadoValidator is a validator for the "precio_contado" field. It is called by the builders before save.
	PrecioContadoValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Quote queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByVehiculo orders the results by the vehiculo field.
func ByVehiculo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVehiculo, opts...).ToFunc()
}

// ByPrecioContado orders the results by the precio_contado field.
func ByPrecioContado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrecioContado, opts...).ToFunc()
}

// ByObservaciones orders the results by the observaciones field.
func ByObservaciones(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservaciones, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
