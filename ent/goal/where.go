// Code generated by ent, DO NOT EDIT.

package goal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldID, id))
}

// VendedorID applies equality check predicate on the "vendedor_id" field. It's identical to VendedorIDEQ.
func VendedorID(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldVendedorID, v))
}

// Mes applies equality check predicate on the "mes" field. It's identical to MesEQ.
func Mes(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMes, v))
}

// MetaVentas applies equality check predicate on the "meta_ventas" field. It's identical to MetaVentasEQ.
func MetaVentas(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMetaVentas, v))
}

// MetaLeads applies equality check predicate on the "meta_leads" field. It's identical to MetaLeadsEQ.
func MetaLeads(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMetaLeads, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldUpdatedAt, v))
}

// VendedorIDEQ applies the EQ predicate on the "vendedor_id" field.
func VendedorIDEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldVendedorID, v))
}

// VendedorIDNEQ applies the NEQ predicate on the "vendedor_id" field.
func VendedorIDNEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldVendedorID, v))
}

// VendedorIDIn applies the In predicate on the "vendedor_id" field.
func VendedorIDIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldVendedorID, vs...))
}

// VendedorIDNotIn applies the NotIn predicate on the "vendedor_id" field.
func VendedorIDNotIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldVendedorID, vs...))
}

// VendedorIDGT applies the GT predicate on the "vendedor_id" field.
func VendedorIDGT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldVendedorID, v))
}

// VendedorIDGTE applies the GTE predicate on the "vendedor_id" field.
func VendedorIDGTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldVendedorID, v))
}

// VendedorIDLT applies the LT predicate on the "vendedor_id" field.
func VendedorIDLT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldVendedorID, v))
}

// VendedorIDLTE applies the LTE predicate on the "vendedor_id" field.
func VendedorIDLTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldVendedorID, v))
}

// MesEQ applies the EQ predicate on the "mes" field.
func MesEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMes, v))
}

// MesNEQ applies the NEQ predicate on the "mes" field.
func MesNEQ(v string) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldMes, v))
}

// MesIn applies the In predicate on the "mes" field.
func MesIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldMes, vs...))
}

// MesNotIn applies the NotIn predicate on the "mes" field.
func MesNotIn(vs ...string) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldMes, vs...))
}

// MesGT applies the GT predicate on the "mes" field.
func MesGT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldMes, v))
}

// MesGTE applies the GTE predicate on the "mes" field.
func MesGTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldMes, v))
}

// MesLT applies the LT predicate on the "mes" field.
func MesLT(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldMes, v))
}

// MesLTE applies the LTE predicate on the "mes" field.
func MesLTE(v string) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldMes, v))
}

// MesContains applies the Contains predicate on the "mes" field.
func MesContains(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContains(FieldMes, v))
}

// MesHasPrefix applies the HasPrefix predicate on the "mes" field.
func MesHasPrefix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasPrefix(FieldMes, v))
}

// MesHasSuffix applies the HasSuffix predicate on the "mes" field.
func MesHasSuffix(v string) predicate.Goal {
	return predicate.Goal(sql.FieldHasSuffix(FieldMes, v))
}

// MesEqualFold applies the EqualFold predicate on the "mes" field.
func MesEqualFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldEqualFold(FieldMes, v))
}

// MesContainsFold applies the ContainsFold predicate on the "mes" field.
func MesContainsFold(v string) predicate.Goal {
	return predicate.Goal(sql.FieldContainsFold(FieldMes, v))
}

// MetaVentasEQ applies the EQ predicate on the "meta_ventas" field.
func MetaVentasEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMetaVentas, v))
}

// MetaVentasNEQ applies the NEQ predicate on the "meta_ventas" field.
func MetaVentasNEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldMetaVentas, v))
}

// MetaVentasIn applies the In predicate on the "meta_ventas" field.
func MetaVentasIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldMetaVentas, vs...))
}

// MetaVentasNotIn applies the NotIn predicate on the "meta_ventas" field.
func MetaVentasNotIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldMetaVentas, vs...))
}

// MetaVentasGT applies the GT predicate on the "meta_ventas" field.
func MetaVentasGT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldMetaVentas, v))
}

// MetaVentasGTE applies the GTE predicate on the "meta_ventas" field.
func MetaVentasGTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldMetaVentas, v))
}

// MetaVentasLT applies the LT predicate on the "meta_ventas" field.
func MetaVentasLT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldMetaVentas, v))
}

// MetaVentasLTE applies the LTE predicate on the "meta_ventas" field.
func MetaVentasLTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldMetaVentas, v))
}

// MetaLeadsEQ applies the EQ predicate on the "meta_leads" field.
func MetaLeadsEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldMetaLeads, v))
}

// MetaLeadsNEQ applies the NEQ predicate on the "meta_leads" field.
func MetaLeadsNEQ(v int) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldMetaLeads, v))
}

// MetaLeadsIn applies the In predicate on the "meta_leads" field.
func MetaLeadsIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldMetaLeads, vs...))
}

// MetaLeadsNotIn applies the NotIn predicate on the "meta_leads" field.
func MetaLeadsNotIn(vs ...int) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldMetaLeads, vs...))
}

// MetaLeadsGT applies the GT predicate on the "meta_leads" field.
func MetaLeadsGT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldMetaLeads, v))
}

// MetaLeadsGTE applies the GTE predicate on the "meta_leads" field.
func MetaLeadsGTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldMetaLeads, v))
}

// MetaLeadsLT applies the LT predicate on the "meta_leads" field.
func MetaLeadsLT(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldMetaLeads, v))
}

// MetaLeadsLTE applies the LTE predicate on the "meta_leads" field.
func MetaLeadsLTE(v int) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldMetaLeads, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Goal {
	return predicate.Goal(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Goal) predicate.Goal {
	return predicate.Goal(sql.NotPredicates(p))
}
