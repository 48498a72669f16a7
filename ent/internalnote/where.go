// Code generated by ent, DO NOT EDIT.

package internalnote

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLTE(FieldID, id))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldLeadID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldUserID, v))
}

// Texto applies equality check predicate on the "texto" field. It's identical to TextoEQ.
func Texto(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldTexto, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldCreatedAt, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLTE(FieldLeadID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLTE(FieldUserID, v))
}

// TextoEQ applies the EQ predicate on the "texto" field.
func TextoEQ(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldTexto, v))
}

// TextoNEQ applies the NEQ predicate on the "texto" field.
func TextoNEQ(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNEQ(FieldTexto, v))
}

// TextoIn applies the In predicate on the "texto" field.
func TextoIn(vs ...string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldIn(FieldTexto, vs...))
}

// TextoNotIn applies the NotIn predicate on the "texto" field.
func TextoNotIn(vs ...string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNotIn(FieldTexto, vs...))
}

// TextoGT applies the GT predicate on the "texto" field.
func TextoGT(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGT(FieldTexto, v))
}

// TextoGTE applies the GTE predicate on the "texto" field.
func TextoGTE(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGTE(FieldTexto, v))
}

// TextoLT applies the LT predicate on the "texto" field.
func TextoLT(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLT(FieldTexto, v))
}

// TextoLTE applies the LTE predicate on the "texto" field.
func TextoLTE(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLTE(FieldTexto, v))
}

// TextoContains applies the Contains predicate on the "texto" field.
func TextoContains(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldContains(FieldTexto, v))
}

// TextoHasPrefix applies the HasPrefix predicate on the "texto" field.
func TextoHasPrefix(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldHasPrefix(FieldTexto, v))
}

// TextoHasSuffix applies the HasSuffix predicate on the "texto" field.
func TextoHasSuffix(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldHasSuffix(FieldTexto, v))
}

// TextoEqualFold applies the EqualFold predicate on the "texto" field.
func TextoEqualFold(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEqualFold(FieldTexto, v))
}

// TextoContainsFold applies the ContainsFold predicate on the "texto" field.
func TextoContainsFold(v string) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldContainsFold(FieldTexto, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.InternalNote {
	return predicate.InternalNote(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.InternalNote) predicate.InternalNote {
	return predicate.InternalNote(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.InternalNote) predicate.InternalNote {
	return predicate.InternalNote(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.InternalNote) predicate.InternalNote {
	return predicate.InternalNote(sql.NotPredicates(p))
}
