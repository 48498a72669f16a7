// Code generated by ent, DO NOT EDIT.

package pushtoken

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PushToken {
	return predicate.PushToken(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PushToken {
	return predicate.PushToken(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PushToken {
	return predicate.PushToken(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PushToken {
	return predicate.PushToken(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PushToken {
	return predicate.PushToken(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PushToken {
	return predicate.PushToken(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PushToken {
	return predicate.PushToken(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v int) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldUserID, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldEndpoint, v))
}

// P256dh applies equality check predicate on the "p256dh" field. It's identical to P256dhEQ.
func P256dh(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldP256dh, v))
}

// Auth applies equality check predicate on the "auth" field. It's identical to AuthEQ.
func Auth(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldAuth, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v int) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v int) predicate.PushToken {
	return predicate.PushToken(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...int) predicate.PushToken {
	return predicate.PushToken(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...int) predicate.PushToken {
	return predicate.PushToken(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v int) predicate.PushToken {
	return predicate.PushToken(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v int) predicate.PushToken {
	return predicate.PushToken(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v int) predicate.PushToken {
	return predicate.PushToken(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v int) predicate.PushToken {
	return predicate.PushToken(sql.FieldLTE(FieldUserID, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.PushToken {
	return predicate.PushToken(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.PushToken {
	return predicate.PushToken(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldContainsFold(FieldEndpoint, v))
}

// P256dhEQ applies the EQ predicate on the "p256dh" field.
func P256dhEQ(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldP256dh, v))
}

// P256dhNEQ applies the NEQ predicate on the "p256dh" field.
func P256dhNEQ(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldNEQ(FieldP256dh, v))
}

// P256dhIn applies the In predicate on the "p256dh" field.
func P256dhIn(vs ...string) predicate.PushToken {
	return predicate.PushToken(sql.FieldIn(FieldP256dh, vs...))
}

// P256dhNotIn applies the NotIn predicate on the "p256dh" field.
func P256dhNotIn(vs ...string) predicate.PushToken {
	return predicate.PushToken(sql.FieldNotIn(FieldP256dh, vs...))
}

// P256dhGT applies the GT predicate on the "p256dh" field.
func P256dhGT(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldGT(FieldP256dh, v))
}

// P256dhGTE applies the GTE predicate on the "p256dh" field.
func P256dhGTE(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldGTE(FieldP256dh, v))
}

// P256dhLT applies the LT predicate on the "p256dh" field.
func P256dhLT(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldLT(FieldP256dh, v))
}

// P256dhLTE applies the LTE predicate on the "p256dh" field.
func P256dhLTE(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldLTE(FieldP256dh, v))
}

// P256dhContains applies the Contains predicate on the "p256dh" field.
func P256dhContains(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldContains(FieldP256dh, v))
}

// P256dhHasPrefix applies the HasPrefix predicate on the "p256dh" field.
func P256dhHasPrefix(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldHasPrefix(FieldP256dh, v))
}

// P256dhHasSuffix applies the HasSuffix predicate on the "p256dh" field.
func P256dhHasSuffix(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldHasSuffix(FieldP256dh, v))
}

// P256dhEqualFold applies the EqualFold predicate on the "p256dh" field.
func P256dhEqualFold(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEqualFold(FieldP256dh, v))
}

// P256dhContainsFold applies the ContainsFold predicate on the "p256dh" field.
func P256dhContainsFold(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldContainsFold(FieldP256dh, v))
}

// AuthEQ applies the EQ predicate on the "auth" field.
func AuthEQ(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldAuth, v))
}

// AuthNEQ applies the NEQ predicate on the "auth" field.
func AuthNEQ(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldNEQ(FieldAuth, v))
}

// AuthIn applies the In predicate on the "auth" field.
func AuthIn(vs ...string) predicate.PushToken {
	return predicate.PushToken(sql.FieldIn(FieldAuth, vs...))
}

// AuthNotIn applies the NotIn predicate on the "auth" field.
func AuthNotIn(vs ...string) predicate.PushToken {
	return predicate.PushToken(sql.FieldNotIn(FieldAuth, vs...))
}

// AuthGT applies the GT predicate on the "auth" field.
func AuthGT(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldGT(FieldAuth, v))
}

// AuthGTE applies the GTE predicate on the "auth" field.
func AuthGTE(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldGTE(FieldAuth, v))
}

// AuthLT applies the LT predicate on the "auth" field.
func AuthLT(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldLT(FieldAuth, v))
}

// AuthLTE applies the LTE predicate on the "auth" field.
func AuthLTE(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldLTE(FieldAuth, v))
}

// AuthContains applies the Contains predicate on the "auth" field.
func AuthContains(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldContains(FieldAuth, v))
}

// AuthHasPrefix applies the HasPrefix predicate on the "auth" field.
func AuthHasPrefix(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldHasPrefix(FieldAuth, v))
}

// AuthHasSuffix applies the HasSuffix predicate on the "auth" field.
func AuthHasSuffix(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldHasSuffix(FieldAuth, v))
}

// AuthEqualFold applies the EqualFold predicate on the "auth" field.
func AuthEqualFold(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldEqualFold(FieldAuth, v))
}

// AuthContainsFold applies the ContainsFold predicate on the "auth" field.
func AuthContainsFold(v string) predicate.PushToken {
	return predicate.PushToken(sql.FieldContainsFold(FieldAuth, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PushToken {
	return predicate.PushToken(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PushToken) predicate.PushToken {
	return predicate.PushToken(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PushToken) predicate.PushToken {
	return predicate.PushToken(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PushToken) predicate.PushToken {
	return predicate.PushToken(sql.NotPredicates(p))
}
