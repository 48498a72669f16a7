// Code generated by ent, DO NOT EDIT.

package reminder

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldLeadID, v))
}

// Fecha applies equality check predicate on the "fecha" field. It's identical to FechaEQ.
func Fecha(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldFecha, v))
}

// Hora applies equality check predicate on the "hora" field. It's identical to HoraEQ.
func Hora(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldHora, v))
}

// Descripcion applies equality check predicate on the "descripcion" field. It's identical to DescripcionEQ.
func Descripcion(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldDescripcion, v))
}

// Completado applies equality check predicate on the "completado" field. It's identical to CompletadoEQ.
func Completado(v bool) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCompletado, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCreatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v int) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v int) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v int) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v int) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldLeadID, v))
}

// FechaEQ applies the EQ predicate on the "fecha" field.
func FechaEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldFecha, v))
}

// FechaNEQ applies the NEQ predicate on the "fecha" field.
func FechaNEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldFecha, v))
}

// FechaIn applies the In predicate on the "fecha" field.
func FechaIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldFecha, vs...))
}

// FechaNotIn applies the NotIn predicate on the "fecha" field.
func FechaNotIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldFecha, vs...))
}

// FechaGT applies the GT predicate on the "fecha" field.
func FechaGT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldFecha, v))
}

// FechaGTE applies the GTE predicate on the "fecha" field.
func FechaGTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldFecha, v))
}

// FechaLT applies the LT predicate on the "fecha" field.
func FechaLT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldFecha, v))
}

// FechaLTE applies the LTE predicate on the "fecha" field.
func FechaLTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldFecha, v))
}

// FechaContains applies the Contains predicate on the "fecha" field.
func FechaContains(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContains(FieldFecha, v))
}

// FechaHasPrefix applies the HasPrefix predicate on the "fecha" field.
func FechaHasPrefix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasPrefix(FieldFecha, v))
}

// FechaHasSuffix applies the HasSuffix predicate on the "fecha" field.
func FechaHasSuffix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasSuffix(FieldFecha, v))
}

// FechaEqualFold applies the EqualFold predicate on the "fecha" field.
func FechaEqualFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEqualFold(FieldFecha, v))
}

// FechaContainsFold applies the ContainsFold predicate on the "fecha" field.
func FechaContainsFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContainsFold(FieldFecha, v))
}

// HoraEQ applies the EQ predicate on the "hora" field.
func HoraEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldHora, v))
}

// HoraNEQ applies the NEQ predicate on the "hora" field.
func HoraNEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldHora, v))
}

// HoraIn applies the In predicate on the "hora" field.
func HoraIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldHora, vs...))
}

// HoraNotIn applies the NotIn predicate on the "hora" field.
func HoraNotIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldHora, vs...))
}

// HoraGT applies the GT predicate on the "hora" field.
func HoraGT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldHora, v))
}

// HoraGTE applies the GTE predicate on the "hora" field.
func HoraGTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldHora, v))
}

// HoraLT applies the LT predicate on the "hora" field.
func HoraLT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldHora, v))
}

// HoraLTE applies the LTE predicate on the "hora" field.
func HoraLTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldHora, v))
}

// HoraContains applies the Contains predicate on the "hora" field.
func HoraContains(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContains(FieldHora, v))
}

// HoraHasPrefix applies the HasPrefix predicate on the "hora" field.
func HoraHasPrefix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasPrefix(FieldHora, v))
}

// HoraHasSuffix applies the HasSuffix predicate on the "hora" field.
func HoraHasSuffix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasSuffix(FieldHora, v))
}

// HoraEqualFold applies the EqualFold predicate on the "hora" field.
func HoraEqualFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEqualFold(FieldHora, v))
}

// HoraContainsFold applies the ContainsFold predicate on the "hora" field.
func HoraContainsFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContainsFold(FieldHora, v))
}

// DescripcionEQ applies the EQ predicate on the "descripcion" field.
func DescripcionEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldDescripcion, v))
}

// DescripcionNEQ applies the NEQ predicate on the "descripcion" field.
func DescripcionNEQ(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldDescripcion, v))
}

// DescripcionIn applies the In predicate on the "descripcion" field.
func DescripcionIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldDescripcion, vs...))
}

// DescripcionNotIn applies the NotIn predicate on the "descripcion" field.
func DescripcionNotIn(vs ...string) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldDescripcion, vs...))
}

// DescripcionGT applies the GT predicate on the "descripcion" field.
func DescripcionGT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldDescripcion, v))
}

// DescripcionGTE applies the GTE predicate on the "descripcion" field.
func DescripcionGTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldDescripcion, v))
}

// DescripcionLT applies the LT predicate on the "descripcion" field.
func DescripcionLT(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldDescripcion, v))
}

// DescripcionLTE applies the LTE predicate on the "descripcion" field.
func DescripcionLTE(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldDescripcion, v))
}

// DescripcionContains applies the Contains predicate on the "descripcion" field.
func DescripcionContains(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContains(FieldDescripcion, v))
}

// DescripcionHasPrefix applies the HasPrefix predicate on the "descripcion" field.
func DescripcionHasPrefix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasPrefix(FieldDescripcion, v))
}

// DescripcionHasSuffix applies the HasSuffix predicate on the "descripcion" field.
func DescripcionHasSuffix(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldHasSuffix(FieldDescripcion, v))
}

// DescripcionEqualFold applies the EqualFold predicate on the "descripcion" field.
func DescripcionEqualFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldEqualFold(FieldDescripcion, v))
}

// DescripcionContainsFold applies the ContainsFold predicate on the "descripcion" field.
func DescripcionContainsFold(v string) predicate.Reminder {
	return predicate.Reminder(sql.FieldContainsFold(FieldDescripcion, v))
}

// CompletadoEQ applies the EQ predicate on the "completado" field.
func CompletadoEQ(v bool) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCompletado, v))
}

// CompletadoNEQ applies the NEQ predicate on the "completado" field.
func CompletadoNEQ(v bool) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldCompletado, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Reminder {
	return predicate.Reminder(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Reminder) predicate.Reminder {
	return predicate.Reminder(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Reminder) predicate.Reminder {
	return predicate.Reminder(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Reminder) predicate.Reminder {
	return predicate.Reminder(sql.NotPredicates(p))
}
