// Code generated by ent, DO NOT EDIT.

package quote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldLeadID, v))
}

// Vehiculo applies equality check predicate on the "vehiculo" field. It's identical to VehiculoEQ.
func Vehiculo(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldVehiculo, v))
}

// PrecioContado applies equality check predicate on the "precio_contado" field. It's identical to PrecioContadoEQ.
func PrecioContado(v float64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldPrecioContado, v))
}

// Observaciones applies equality check predicate on the "observaciones" field. It's identical to ObservacionesEQ.
func Observaciones(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldObservaciones, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldLeadID, v))
}

// VehiculoEQ applies the EQ predicate on the "vehiculo" field.
func VehiculoEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldVehiculo, v))
}

// VehiculoNEQ applies the NEQ predicate on the "vehiculo" field.
func VehiculoNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldVehiculo, v))
}

// VehiculoIn applies the In predicate on the "vehiculo" field.
func VehiculoIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldVehiculo, vs...))
}

// VehiculoNotIn applies the NotIn predicate on the "vehiculo" field.
func VehiculoNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldVehiculo, vs...))
}

// VehiculoGT applies the GT predicate on the "vehiculo" field.
func VehiculoGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldVehiculo, v))
}

// VehiculoGTE applies the GTE predicate on the "vehiculo" field.
func VehiculoGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldVehiculo, v))
}

// VehiculoLT applies the LT predicate on the "vehiculo" field.
func VehiculoLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldVehiculo, v))
}

// VehiculoLTE applies the LTE predicate on the "vehiculo" field.
func VehiculoLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldVehiculo, v))
}

// VehiculoContains applies the Contains predicate on the "vehiculo" field.
func VehiculoContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldVehiculo, v))
}

// VehiculoHasPrefix applies the HasPrefix predicate on the "vehiculo" field.
func VehiculoHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldVehiculo, v))
}

// VehiculoHasSuffix applies the HasSuffix predicate on the "vehiculo" field.
func VehiculoHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldVehiculo, v))
}

// VehiculoEqualFold applies the EqualFold predicate on the "vehiculo" field.
func VehiculoEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldVehiculo, v))
}

// VehiculoContainsFold applies the ContainsFold predicate on the "vehiculo" field.
func VehiculoContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldVehiculo, v))
}

// PrecioContadoEQ applies the EQ predicate on the "precio_contado" field.
func PrecioContadoEQ(v float64) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldPrecioContado, v))
}

// PrecioContadoNEQ applies the NEQ predicate on the "precio_contado" field.
func PrecioContadoNEQ(v float64) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldPrecioContado, v))
}

// PrecioContadoIn applies the In predicate on the "precio_contado" field.
func PrecioContadoIn(vs ...float64) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldPrecioContado, vs...))
}

// PrecioContadoNotIn applies the NotIn predicate on the "precio_contado" field.
func PrecioContadoNotIn(vs ...float64) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldPrecioContado, vs...))
}

// PrecioContadoGT applies the GT predicate on the "precio_contado" field.
func PrecioContadoGT(v float64) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldPrecioContado, v))
}

// PrecioContadoGTE applies the GTE predicate on the "precio_contado" field.
func PrecioContadoGTE(v float64) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldPrecioContado, v))
}

// PrecioContadoLT applies the LT predicate on the "precio_contado" field.
func PrecioContadoLT(v float64) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldPrecioContado, v))
}

// PrecioContadoLTE applies the LTE predicate on the "precio_contado" field.
func PrecioContadoLTE(v float64) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldPrecioContado, v))
}

// ObservacionesEQ applies the EQ predicate on the "observaciones" field.
func ObservacionesEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldObservaciones, v))
}

// ObservacionesNEQ applies the NEQ predicate on the "observaciones" field.
func ObservacionesNEQ(v string) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldObservaciones, v))
}

// ObservacionesIn applies the In predicate on the "observaciones" field.
func ObservacionesIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldObservaciones, vs...))
}

// ObservacionesNotIn applies the NotIn predicate on the "observaciones" field.
func ObservacionesNotIn(vs ...string) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldObservaciones, vs...))
}

// ObservacionesGT applies the GT predicate on the "observaciones" field.
func ObservacionesGT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldObservaciones, v))
}

// ObservacionesGTE applies the GTE predicate on the "observaciones" field.
func ObservacionesGTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldObservaciones, v))
}

// ObservacionesLT applies the LT predicate on the "observaciones" field.
func ObservacionesLT(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldObservaciones, v))
}

// ObservacionesLTE applies the LTE predicate on the "observaciones" field.
func ObservacionesLTE(v string) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldObservaciones, v))
}

// ObservacionesContains applies the Contains predicate on the "observaciones" field.
func ObservacionesContains(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContains(FieldObservaciones, v))
}

// ObservacionesHasPrefix applies the HasPrefix predicate on the "observaciones" field.
func ObservacionesHasPrefix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasPrefix(FieldObservaciones, v))
}

// ObservacionesHasSuffix applies the HasSuffix predicate on the "observaciones" field.
func ObservacionesHasSuffix(v string) predicate.Quote {
	return predicate.Quote(sql.FieldHasSuffix(FieldObservaciones, v))
}

// ObservacionesIsNil applies the IsNil predicate on the "observaciones" field.
func ObservacionesIsNil() predicate.Quote {
	return predicate.Quote(sql.FieldIsNull(FieldObservaciones))
}

// ObservacionesNotNil applies the NotNil predicate on the "observaciones" field.
func ObservacionesNotNil() predicate.Quote {
	return predicate.Quote(sql.FieldNotNull(FieldObservaciones))
}

// ObservacionesEqualFold applies the EqualFold predicate on the "observaciones" field.
func ObservacionesEqualFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldEqualFold(FieldObservaciones, v))
}

// ObservacionesContainsFold applies the ContainsFold predicate on the "observaciones" field.
func ObservacionesContainsFold(v string) predicate.Quote {
	return predicate.Quote(sql.FieldContainsFold(FieldObservaciones, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v int) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...int) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v int) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Quote {
	return predicate.Quote(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Quote) predicate.Quote {
	return predicate.Quote(sql.NotPredicates(p))
}
