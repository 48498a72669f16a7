// Code generated by ent, DO NOT EDIT.

package presupuesto

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the presupuesto type in the database.
	Label = "presupuesto"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldModelo holds the string denoting the modelo field in the database.
	FieldModelo = "modelo"
	// FieldMarca holds the string denoting the marca field in the database.
	FieldMarca = "marca"
	// FieldImagenURL holds the string denoting the imagen_url field in the database.
	FieldImagenURL = "imagen_url"
	// FieldPrecioContado holds the string denoting the precio_contado field in the database.
	FieldPrecioContado = "precio_contado"
	// FieldEspecificacionesTecnicas holds the string denoting the especificaciones_tecnicas field in the database.
	FieldEspecificacionesTecnicas = "especificaciones_tecnicas"
	// FieldPlanesCuotas holds the string denoting the planes_cuotas field in the database.
	FieldPlanesCuotas = "planes_cuotas"
	// FieldBonificaciones holds the string denoting the bonificaciones field in the database.
	FieldBonificaciones = "bonificaciones"
	// FieldAnticipo holds the string denoting the anticipo field in the database.
	FieldAnticipo = "anticipo"
	// FieldActivo holds the string denoting the activo field in the database.
	FieldActivo = "activo"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the presupuesto in the database.
	Table = "presupuestos"
)

// Columns holds all SQL columns for presupuesto fields.
var Columns = []string{
	FieldID,
	FieldModelo,
	FieldMarca,
	FieldImagenURL,
	FieldPrecioContado,
	FieldEspecificacionesTecnicas,
	FieldPlanesCuotas,
	FieldBonificaciones,
	FieldAnticipo,
	FieldActivo,
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
	// ModeloValidator is a validator for the "modelo" field. It is called by the builders before save.
	ModeloValidator func(string) error
	// MarcaValidator is a validator for the "marca" field. It is called by the builders before save.
	MarcaValidator func(string) error
	// DefaultActivo holds the default value on creation for the "activo" field.
	DefaultActivo bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Presupuesto queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByModelo orders the results by the modelo field.
func ByModelo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelo, opts...).ToFunc()
}

// ByMarca orders the results by the marca field.
func ByMarca(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarca, opts...).ToFunc()
}

// ByImagenURL orders the results by the imagen_url field.
func ByImagenURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImagenURL, opts...).ToFunc()
}

// ByPrecioContado orders the results by the precio_contado field.
func ByPrecioContado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrecioContado, opts...).ToFunc()
}

// ByEspecificacionesTecnicas orders the results by the especificaciones_tecnicas field.
func ByEspecificacionesTecnicas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEspecificacionesTecnicas, opts...).ToFunc()
}

// ByBonificaciones orders the results by the bonificaciones field.
func ByBonificaciones(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBonificaciones, opts...).ToFunc()
}

// ByAnticipo orders the results by the anticipo field.
func ByAnticipo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnticipo, opts...).ToFunc()
}

// ByActivo orders the results by the activo field.
func ByActivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivo, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
