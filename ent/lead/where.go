// Code generated by ent, DO NOT EDIT.

package lead

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldID, id))
}

// Nombre applies equality check predicate on the "nombre" field. It's identical to NombreEQ.
func Nombre(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNombre, v))
}

// Telefono applies equality check predicate on the "telefono" field. It's identical to TelefonoEQ.
func Telefono(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldTelefono, v))
}

// Modelo applies equality check predicate on the "modelo" field. It's identical to ModeloEQ.
func Modelo(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldModelo, v))
}

// FormaPago applies equality check predicate on the "forma_pago" field. It's identical to FormaPagoEQ.
func FormaPago(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFormaPago, v))
}

// InfoUsado applies equality check predicate on the "info_usado" field. It's identical to InfoUsadoEQ.
func InfoUsado(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldInfoUsado, v))
}

// Entrega applies equality check predicate on the "entrega" field. It's identical to EntregaEQ.
func Entrega(v bool) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEntrega, v))
}

// Notas applies equality check predicate on the "notas" field. It's identical to NotasEQ.
func Notas(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNotas, v))
}

// Estado applies equality check predicate on the "estado" field. It's identical to EstadoEQ.
func Estado(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEstado, v))
}

// Fuente applies equality check predicate on the "fuente" field. It's identical to FuenteEQ.
func Fuente(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFuente, v))
}

// Fecha applies equality check predicate on the "fecha" field. It's identical to FechaEQ.
func Fecha(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFecha, v))
}

// Equipo applies equality check predicate on the "equipo" field. It's identical to EquipoEQ.
func Equipo(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEquipo, v))
}

// AssignedTo applies equality check predicate on the "assigned_to" field. It's identical to AssignedToEQ.
func AssignedTo(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAssignedTo, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedBy, v))
}

// Historial applies equality check predicate on the "historial" field. It's identical to HistorialEQ.
func Historial(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldHistorial, v))
}

// LastStatusChange applies equality check predicate on the "last_status_change" field. It's identical to LastStatusChangeEQ.
func LastStatusChange(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastStatusChange, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// NombreEQ applies the EQ predicate on the "nombre" field.
func NombreEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNombre, v))
}

// NombreNEQ applies the NEQ predicate on the "nombre" field.
func NombreNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldNombre, v))
}

// NombreIn applies the In predicate on the "nombre" field.
func NombreIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldNombre, vs...))
}

// NombreNotIn applies the NotIn predicate on the "nombre" field.
func NombreNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldNombre, vs...))
}

// NombreGT applies the GT predicate on the "nombre" field.
func NombreGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldNombre, v))
}

// NombreGTE applies the GTE predicate on the "nombre" field.
func NombreGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldNombre, v))
}

// NombreLT applies the LT predicate on the "nombre" field.
func NombreLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldNombre, v))
}

// NombreLTE applies the LTE predicate on the "nombre" field.
func NombreLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldNombre, v))
}

// NombreContains applies the Contains predicate on the "nombre" field.
func NombreContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldNombre, v))
}

// NombreHasPrefix applies the HasPrefix predicate on the "nombre" field.
func NombreHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldNombre, v))
}

// NombreHasSuffix applies the HasSuffix predicate on the "nombre" field.
func NombreHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldNombre, v))
}

// NombreEqualFold applies the EqualFold predicate on the "nombre" field.
func NombreEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldNombre, v))
}

// NombreContainsFold applies the ContainsFold predicate on the "nombre" field.
func NombreContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldNombre, v))
}

// TelefonoEQ applies the EQ predicate on the "telefono" field.
func TelefonoEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldTelefono, v))
}

// TelefonoNEQ applies the NEQ predicate on the "telefono" field.
func TelefonoNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldTelefono, v))
}

// TelefonoIn applies the In predicate on the "telefono" field.
func TelefonoIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldTelefono, vs...))
}

// TelefonoNotIn applies the NotIn predicate on the "telefono" field.
func TelefonoNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldTelefono, vs...))
}

// TelefonoGT applies the GT predicate on the "telefono" field.
func TelefonoGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldTelefono, v))
}

// TelefonoGTE applies the GTE predicate on the "telefono" field.
func TelefonoGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldTelefono, v))
}

// TelefonoLT applies the LT predicate on the "telefono" field.
func TelefonoLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldTelefono, v))
}

// TelefonoLTE applies the LTE predicate on the "telefono" field.
func TelefonoLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldTelefono, v))
}

// TelefonoContains applies the Contains predicate on the "telefono" field.
func TelefonoContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldTelefono, v))
}

// TelefonoHasPrefix applies the HasPrefix predicate on the "telefono" field.
func TelefonoHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldTelefono, v))
}

// TelefonoHasSuffix applies the HasSuffix predicate on the "telefono" field.
func TelefonoHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldTelefono, v))
}

// TelefonoEqualFold applies the EqualFold predicate on the "telefono" field.
func TelefonoEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldTelefono, v))
}

// TelefonoContainsFold applies the ContainsFold predicate on the "telefono" field.
func TelefonoContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldTelefono, v))
}

// ModeloEQ applies the EQ predicate on the "modelo" field.
func ModeloEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldModelo, v))
}

// ModeloNEQ applies the NEQ predicate on the "modelo" field.
func ModeloNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldModelo, v))
}

// ModeloIn applies the In predicate on the "modelo" field.
func ModeloIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldModelo, vs...))
}

// ModeloNotIn applies the NotIn predicate on the "modelo" field.
func ModeloNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldModelo, vs...))
}

// ModeloGT applies the GT predicate on the "modelo" field.
func ModeloGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldModelo, v))
}

// ModeloGTE applies the GTE predicate on the "modelo" field.
func ModeloGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldModelo, v))
}

// ModeloLT applies the LT predicate on the "modelo" field.
func ModeloLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldModelo, v))
}

// ModeloLTE applies the LTE predicate on the "modelo" field.
func ModeloLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldModelo, v))
}

// ModeloContains applies the Contains predicate on the "modelo" field.
func ModeloContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldModelo, v))
}

// ModeloHasPrefix applies the HasPrefix predicate on the "modelo" field.
func ModeloHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldModelo, v))
}

// ModeloHasSuffix applies the HasSuffix predicate on the "modelo" field.
func ModeloHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldModelo, v))
}

// ModeloEqualFold applies the EqualFold predicate on the "modelo" field.
func ModeloEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldModelo, v))
}

// ModeloContainsFold applies the ContainsFold predicate on the "modelo" field.
func ModeloContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldModelo, v))
}

// FormaPagoEQ applies the EQ predicate on the "forma_pago" field.
func FormaPagoEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFormaPago, v))
}

// FormaPagoNEQ applies the NEQ predicate on the "forma_pago" field.
func FormaPagoNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldFormaPago, v))
}

// FormaPagoIn applies the In predicate on the "forma_pago" field.
func FormaPagoIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldFormaPago, vs...))
}

// FormaPagoNotIn applies the NotIn predicate on the "forma_pago" field.
func FormaPagoNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldFormaPago, vs...))
}

// FormaPagoGT applies the GT predicate on the "forma_pago" field.
func FormaPagoGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldFormaPago, v))
}

// FormaPagoGTE applies the GTE predicate on the "forma_pago" field.
func FormaPagoGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldFormaPago, v))
}

// FormaPagoLT applies the LT predicate on the "forma_pago" field.
func FormaPagoLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldFormaPago, v))
}

// FormaPagoLTE applies the LTE predicate on the "forma_pago" field.
func FormaPagoLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldFormaPago, v))
}

// FormaPagoContains applies the Contains predicate on the "forma_pago" field.
func FormaPagoContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldFormaPago, v))
}

// FormaPagoHasPrefix applies the HasPrefix predicate on the "forma_pago" field.
func FormaPagoHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldFormaPago, v))
}

// FormaPagoHasSuffix applies the HasSuffix predicate on the "forma_pago" field.
func FormaPagoHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldFormaPago, v))
}

// FormaPagoEqualFold applies the EqualFold predicate on the "forma_pago" field.
func FormaPagoEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldFormaPago, v))
}

// FormaPagoContainsFold applies the ContainsFold predicate on the "forma_pago" field.
func FormaPagoContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldFormaPago, v))
}

// InfoUsadoEQ applies the EQ predicate on the "info_usado" field.
func InfoUsadoEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldInfoUsado, v))
}

// InfoUsadoNEQ applies the NEQ predicate on the "info_usado" field.
func InfoUsadoNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldInfoUsado, v))
}

// InfoUsadoIn applies the In predicate on the "info_usado" field.
func InfoUsadoIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldInfoUsado, vs...))
}

// InfoUsadoNotIn applies the NotIn predicate on the "info_usado" field.
func InfoUsadoNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldInfoUsado, vs...))
}

// InfoUsadoGT applies the GT predicate on the "info_usado" field.
func InfoUsadoGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldInfoUsado, v))
}

// InfoUsadoGTE applies the GTE predicate on the "info_usado" field.
func InfoUsadoGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldInfoUsado, v))
}

// InfoUsadoLT applies the LT predicate on the "info_usado" field.
func InfoUsadoLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldInfoUsado, v))
}

// InfoUsadoLTE applies the LTE predicate on the "info_usado" field.
func InfoUsadoLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldInfoUsado, v))
}

// InfoUsadoContains applies the Contains predicate on the "info_usado" field.
func InfoUsadoContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldInfoUsado, v))
}

// InfoUsadoHasPrefix applies the HasPrefix predicate on the "info_usado" field.
func InfoUsadoHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldInfoUsado, v))
}

// InfoUsadoHasSuffix applies the HasSuffix predicate on the "info_usado" field.
func InfoUsadoHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldInfoUsado, v))
}

// InfoUsadoIsNil applies the IsNil predicate on the "info_usado" field.
func InfoUsadoIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldInfoUsado))
}

// InfoUsadoNotNil applies the NotNil predicate on the "info_usado" field.
func InfoUsadoNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldInfoUsado))
}

// InfoUsadoEqualFold applies the EqualFold predicate on the "info_usado" field.
func InfoUsadoEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldInfoUsado, v))
}

// InfoUsadoContainsFold applies the ContainsFold predicate on the "info_usado" field.
func InfoUsadoContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldInfoUsado, v))
}

// EntregaEQ applies the EQ predicate on the "entrega" field.
func EntregaEQ(v bool) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEntrega, v))
}

// EntregaNEQ applies the NEQ predicate on the "entrega" field.
func EntregaNEQ(v bool) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEntrega, v))
}

// NotasEQ applies the EQ predicate on the "notas" field.
func NotasEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldNotas, v))
}

// NotasNEQ applies the NEQ predicate on the "notas" field.
func NotasNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldNotas, v))
}

// NotasIn applies the In predicate on the "notas" field.
func NotasIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldNotas, vs...))
}

// NotasNotIn applies the NotIn predicate on the "notas" field.
func NotasNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldNotas, vs...))
}

// NotasGT applies the GT predicate on the "notas" field.
func NotasGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldNotas, v))
}

// NotasGTE applies the GTE predicate on the "notas" field.
func NotasGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldNotas, v))
}

// NotasLT applies the LT predicate on the "notas" field.
func NotasLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldNotas, v))
}

// NotasLTE applies the LTE predicate on the "notas" field.
func NotasLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldNotas, v))
}

// NotasContains applies the Contains predicate on the "notas" field.
func NotasContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldNotas, v))
}

// NotasHasPrefix applies the HasPrefix predicate on the "notas" field.
func NotasHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldNotas, v))
}

// NotasHasSuffix applies the HasSuffix predicate on the "notas" field.
func NotasHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldNotas, v))
}

// NotasEqualFold applies the EqualFold predicate on the "notas" field.
func NotasEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldNotas, v))
}

// NotasContainsFold applies the ContainsFold predicate on the "notas" field.
func NotasContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldNotas, v))
}

// EstadoEQ applies the EQ predicate on the "estado" field.
func EstadoEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEstado, v))
}

// EstadoNEQ applies the NEQ predicate on the "estado" field.
func EstadoNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEstado, v))
}

// EstadoIn applies the In predicate on the "estado" field.
func EstadoIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEstado, vs...))
}

// EstadoNotIn applies the NotIn predicate on the "estado" field.
func EstadoNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEstado, vs...))
}

// EstadoGT applies the GT predicate on the "estado" field.
func EstadoGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEstado, v))
}

// EstadoGTE applies the GTE predicate on the "estado" field.
func EstadoGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEstado, v))
}

// EstadoLT applies the LT predicate on the "estado" field.
func EstadoLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEstado, v))
}

// EstadoLTE applies the LTE predicate on the "estado" field.
func EstadoLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEstado, v))
}

// EstadoContains applies the Contains predicate on the "estado" field.
func EstadoContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEstado, v))
}

// EstadoHasPrefix applies the HasPrefix predicate on the "estado" field.
func EstadoHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEstado, v))
}

// EstadoHasSuffix applies the HasSuffix predicate on the "estado" field.
func EstadoHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEstado, v))
}

// EstadoEqualFold applies the EqualFold predicate on the "estado" field.
func EstadoEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEstado, v))
}

// EstadoContainsFold applies the ContainsFold predicate on the "estado" field.
func EstadoContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEstado, v))
}

// FuenteEQ applies the EQ predicate on the "fuente" field.
func FuenteEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFuente, v))
}

// FuenteNEQ applies the NEQ predicate on the "fuente" field.
func FuenteNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldFuente, v))
}

// FuenteIn applies the In predicate on the "fuente" field.
func FuenteIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldFuente, vs...))
}

// FuenteNotIn applies the NotIn predicate on the "fuente" field.
func FuenteNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldFuente, vs...))
}

// FuenteGT applies the GT predicate on the "fuente" field.
func FuenteGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldFuente, v))
}

// FuenteGTE applies the GTE predicate on the "fuente" field.
func FuenteGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldFuente, v))
}

// FuenteLT applies the LT predicate on the "fuente" field.
func FuenteLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldFuente, v))
}

// FuenteLTE applies the LTE predicate on the "fuente" field.
func FuenteLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldFuente, v))
}

// FuenteContains applies the Contains predicate on the "fuente" field.
func FuenteContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldFuente, v))
}

// FuenteHasPrefix applies the HasPrefix predicate on the "fuente" field.
func FuenteHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldFuente, v))
}

// FuenteHasSuffix applies the HasSuffix predicate on the "fuente" field.
func FuenteHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldFuente, v))
}

// FuenteEqualFold applies the EqualFold predicate on the "fuente" field.
func FuenteEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldFuente, v))
}

// FuenteContainsFold applies the ContainsFold predicate on the "fuente" field.
func FuenteContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldFuente, v))
}

// FechaEQ applies the EQ predicate on the "fecha" field.
func FechaEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldFecha, v))
}

// FechaNEQ applies the NEQ predicate on the "fecha" field.
func FechaNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldFecha, v))
}

// FechaIn applies the In predicate on the "fecha" field.
func FechaIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldFecha, vs...))
}

// FechaNotIn applies the NotIn predicate on the "fecha" field.
func FechaNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldFecha, vs...))
}

// FechaGT applies the GT predicate on the "fecha" field.
func FechaGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldFecha, v))
}

// FechaGTE applies the GTE predicate on the "fecha" field.
func FechaGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldFecha, v))
}

// FechaLT applies the LT predicate on the "fecha" field.
func FechaLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldFecha, v))
}

// FechaLTE applies the LTE predicate on the "fecha" field.
func FechaLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldFecha, v))
}

// FechaContains applies the Contains predicate on the "fecha" field.
func FechaContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldFecha, v))
}

// FechaHasPrefix applies the HasPrefix predicate on the "fecha" field.
func FechaHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldFecha, v))
}

// FechaHasSuffix applies the HasSuffix predicate on the "fecha" field.
func FechaHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldFecha, v))
}

// FechaEqualFold applies the EqualFold predicate on the "fecha" field.
func FechaEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldFecha, v))
}

// FechaContainsFold applies the ContainsFold predicate on the "fecha" field.
func FechaContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldFecha, v))
}

// EquipoEQ applies the EQ predicate on the "equipo" field.
func EquipoEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldEquipo, v))
}

// EquipoNEQ applies the NEQ predicate on the "equipo" field.
func EquipoNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldEquipo, v))
}

// EquipoIn applies the In predicate on the "equipo" field.
func EquipoIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldEquipo, vs...))
}

// EquipoNotIn applies the NotIn predicate on the "equipo" field.
func EquipoNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldEquipo, vs...))
}

// EquipoGT applies the GT predicate on the "equipo" field.
func EquipoGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldEquipo, v))
}

// EquipoGTE applies the GTE predicate on the "equipo" field.
func EquipoGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldEquipo, v))
}

// EquipoLT applies the LT predicate on the "equipo" field.
func EquipoLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldEquipo, v))
}

// EquipoLTE applies the LTE predicate on the "equipo" field.
func EquipoLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldEquipo, v))
}

// EquipoContains applies the Contains predicate on the "equipo" field.
func EquipoContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldEquipo, v))
}

// EquipoHasPrefix applies the HasPrefix predicate on the "equipo" field.
func EquipoHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldEquipo, v))
}

// EquipoHasSuffix applies the HasSuffix predicate on the "equipo" field.
func EquipoHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldEquipo, v))
}

// EquipoEqualFold applies the EqualFold predicate on the "equipo" field.
func EquipoEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldEquipo, v))
}

// EquipoContainsFold applies the ContainsFold predicate on the "equipo" field.
func EquipoContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldEquipo, v))
}

// AssignedToEQ applies the EQ predicate on the "assigned_to" field.
func AssignedToEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldAssignedTo, v))
}

// AssignedToNEQ applies the NEQ predicate on the "assigned_to" field.
func AssignedToNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldAssignedTo, v))
}

// AssignedToIn applies the In predicate on the "assigned_to" field.
func AssignedToIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldAssignedTo, vs...))
}

// AssignedToNotIn applies the NotIn predicate on the "assigned_to" field.
func AssignedToNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldAssignedTo, vs...))
}

// AssignedToGT applies the GT predicate on the "assigned_to" field.
func AssignedToGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldAssignedTo, v))
}

// AssignedToGTE applies the GTE predicate on the "assigned_to" field.
func AssignedToGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldAssignedTo, v))
}

// AssignedToLT applies the LT predicate on the "assigned_to" field.
func AssignedToLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldAssignedTo, v))
}

// AssignedToLTE applies the LTE predicate on the "assigned_to" field.
func AssignedToLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldAssignedTo, v))
}

// AssignedToIsNil applies the IsNil predicate on the "assigned_to" field.
func AssignedToIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldAssignedTo))
}

// AssignedToNotNil applies the NotNil predicate on the "assigned_to" field.
func AssignedToNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldAssignedTo))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v int) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...int) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v int) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldCreatedBy))
}

// HistorialEQ applies the EQ predicate on the "historial" field.
func HistorialEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldHistorial, v))
}

// HistorialNEQ applies the NEQ predicate on the "historial" field.
func HistorialNEQ(v string) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldHistorial, v))
}

// HistorialIn applies the In predicate on the "historial" field.
func HistorialIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldHistorial, vs...))
}

// HistorialNotIn applies the NotIn predicate on the "historial" field.
func HistorialNotIn(vs ...string) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldHistorial, vs...))
}

// HistorialGT applies the GT predicate on the "historial" field.
func HistorialGT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldHistorial, v))
}

// HistorialGTE applies the GTE predicate on the "historial" field.
func HistorialGTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldHistorial, v))
}

// HistorialLT applies the LT predicate on the "historial" field.
func HistorialLT(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldHistorial, v))
}

// HistorialLTE applies the LTE predicate on the "historial" field.
func HistorialLTE(v string) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldHistorial, v))
}

// HistorialContains applies the Contains predicate on the "historial" field.
func HistorialContains(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContains(FieldHistorial, v))
}

// HistorialHasPrefix applies the HasPrefix predicate on the "historial" field.
func HistorialHasPrefix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasPrefix(FieldHistorial, v))
}

// HistorialHasSuffix applies the HasSuffix predicate on the "historial" field.
func HistorialHasSuffix(v string) predicate.Lead {
	return predicate.Lead(sql.FieldHasSuffix(FieldHistorial, v))
}

// HistorialEqualFold applies the EqualFold predicate on the "historial" field.
func HistorialEqualFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldEqualFold(FieldHistorial, v))
}

// HistorialContainsFold applies the ContainsFold predicate on the "historial" field.
func HistorialContainsFold(v string) predicate.Lead {
	return predicate.Lead(sql.FieldContainsFold(FieldHistorial, v))
}

// LastStatusChangeEQ applies the EQ predicate on the "last_status_change" field.
func LastStatusChangeEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldLastStatusChange, v))
}

// LastStatusChangeNEQ applies the NEQ predicate on the "last_status_change" field.
func LastStatusChangeNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldLastStatusChange, v))
}

// LastStatusChangeIn applies the In predicate on the "last_status_change" field.
func LastStatusChangeIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldLastStatusChange, vs...))
}

// LastStatusChangeNotIn applies the NotIn predicate on the "last_status_change" field.
func LastStatusChangeNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldLastStatusChange, vs...))
}

// LastStatusChangeGT applies the GT predicate on the "last_status_change" field.
func LastStatusChangeGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldLastStatusChange, v))
}

// LastStatusChangeGTE applies the GTE predicate on the "last_status_change" field.
func LastStatusChangeGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldLastStatusChange, v))
}

// LastStatusChangeLT applies the LT predicate on the "last_status_change" field.
func LastStatusChangeLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldLastStatusChange, v))
}

// LastStatusChangeLTE applies the LTE predicate on the "last_status_change" field.
func LastStatusChangeLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldLastStatusChange, v))
}

// LastStatusChangeIsNil applies the IsNil predicate on the "last_status_change" field.
func LastStatusChangeIsNil() predicate.Lead {
	return predicate.Lead(sql.FieldIsNull(FieldLastStatusChange))
}

// LastStatusChangeNotNil applies the NotNil predicate on the "last_status_change" field.
func LastStatusChangeNotNil() predicate.Lead {
	return predicate.Lead(sql.FieldNotNull(FieldLastStatusChange))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Lead {
	return predicate.Lead(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Lead) predicate.Lead {
	return predicate.Lead(sql.NotPredicates(p))
}
