// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the lead type in the database.
	Label = "lead"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNombre holds the string denoting the nombre field in the database.
	FieldNombre = "nombre"
	// FieldTelefono holds the string denoting the telefono field in the database.
	FieldTelefono = "telefono"
	// FieldModelo holds the string denoting the modelo field in the database.
	FieldModelo = "modelo"
	// FieldFormaPago holds the string denoting the forma_pago field in the database.
	FieldFormaPago = "forma_pago"
	// FieldInfoUsado holds the string denoting the info_usado field in the database.
	FieldInfoUsado = "info_usado"
	// FieldEntrega holds the string denoting the entrega field in the database.
	FieldEntrega = "entrega"
	// FieldNotas holds the string denoting the notas field in the database.
	FieldNotas = "notas"
	// FieldEstado holds the string denoting the estado field in the database.
	FieldEstado = "estado"
	// FieldFuente holds the string denoting the fuente field in the database.
	FieldFuente = "fuente"
	// FieldFecha holds the string denoting the fecha field in the database.
	FieldFecha = "fecha"
	// FieldEquipo holds the string denoting the equipo field in the database.
	FieldEquipo = "equipo"
	// FieldAssignedTo holds the string denoting the assigned_to field in the database.
	FieldAssignedTo = "assigned_to"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldHistorial holds the string denoting the historial field in the database.
	FieldHistorial = "historial"
	// FieldLastStatusChange holds the string denoting the last_status_change field in the database.
	FieldLastStatusChange = "last_status_change"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the lead in the database.
	Table = "leads"
)

// Columns holds all SQL columns for lead fields.
var Columns = []string{
	FieldID,
	FieldNombre,
	FieldTelefono,
	FieldModelo,
	FieldFormaPago,
	FieldInfoUsado,
	FieldEntrega,
	FieldNotas,
	FieldEstado,
	FieldFuente,
	FieldFecha,
	FieldEquipo,
	FieldAssignedTo,
	FieldCreatedBy,
	FieldHistorial,
	FieldLastStatusChange,
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
	// NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	NombreValidator func(string) error
	// TelefonoValidator is a validator for the "telefono" field. It is called by the builders before save.
	TelefonoValidator func(string) error
	// ModeloValidator is a validator for the "modelo" field. It is called by the builders before save.
	ModeloValidator func(string) error
	// DefaultFormaPago holds the default value on creation for the "forma_pago" field.
	DefaultFormaPago string
	// DefaultEntrega holds the default value on creation for the "entrega" field.
	DefaultEntrega bool
	// DefaultNotas holds the default value on creation for the "notas" field.
	DefaultNotas string
	// DefaultEstado holds the default value on creation for the "estado" field.
	DefaultEstado string
	// DefaultFuente holds the default value on creation for the "fuente" field.
	DefaultFuente string
	// DefaultEquipo holds the default value on creation for the "equipo" field.
	DefaultEquipo string
	// DefaultHistorial holds the default value on creation for the "historial" field.
	DefaultHistorial string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Lead queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNombre orders the results by the nombre field.
func ByNombre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombre, opts...).ToFunc()
}

// ByTelefono orders the results by the telefono field.
func ByTelefono(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefono, opts...).ToFunc()
}

// ByModelo orders the results by the modelo field.
func ByModelo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelo, opts...).ToFunc()
}

// ByFormaPago orders the results by the forma_pago field.
func ByFormaPago(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFormaPago, opts...).ToFunc()
}

// ByInfoUsado orders the results by the info_usado field.
func ByInfoUsado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInfoUsado, opts...).ToFunc()
}

// ByEntrega orders the results by the entrega field.
func ByEntrega(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntrega, opts...).ToFunc()
}

// ByNotas orders the results by the notas field.
func ByNotas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotas, opts...).ToFunc()
}

// ByEstado orders the results by the estado field.
func ByEstado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstado, opts...).ToFunc()
}

// ByFuente orders the results by the fuente field.
func ByFuente(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFuente, opts...).ToFunc()
}

// ByFecha orders the results by the fecha field.
func ByFecha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFecha, opts...).ToFunc()
}

// ByEquipo orders the results by the equipo field.
func ByEquipo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEquipo, opts...).ToFunc()
}

// ByAssignedTo orders the results by the assigned_to field.
func ByAssignedTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignedTo, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByHistorial orders the results by the historial field.
func ByHistorial(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHistorial, opts...).ToFunc()
}

// ByLastStatusChange orders the results by the last_status_change field.
func ByLastStatusChange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastStatusChange, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
