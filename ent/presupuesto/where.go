// Code generated by ent, DO NOT EDIT.

package presupuesto

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/alluma/crm-backend/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldID, id))
}

// Modelo applies equality check predicate on the "modelo" field. It's identical to ModeloEQ.
func Modelo(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldModelo, v))
}

// Marca applies equality check predicate on the "marca" field. It's identical to MarcaEQ.
func Marca(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldMarca, v))
}

// ImagenURL applies equality check predicate on the "imagen_url" field. It's identical to ImagenURLEQ.
func ImagenURL(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldImagenURL, v))
}

// PrecioContado applies equality check predicate on the "precio_contado" field. It's identical to PrecioContadoEQ.
func PrecioContado(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldPrecioContado, v))
}

// EspecificacionesTecnicas applies equality check predicate on the "especificaciones_tecnicas" field. It's identical to EspecificacionesTecnicasEQ.
func EspecificacionesTecnicas(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldEspecificacionesTecnicas, v))
}

// Bonificaciones applies equality check predicate on the "bonificaciones" field. It's identical to BonificacionesEQ.
func Bonificaciones(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldBonificaciones, v))
}

// Anticipo applies equality check predicate on the "anticipo" field. It's identical to AnticipoEQ.
func Anticipo(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldAnticipo, v))
}

// Activo applies equality check predicate on the "activo" field. It's identical to ActivoEQ.
func Activo(v bool) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldActivo, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldCreatedAt, v))
}

// ModeloEQ applies the EQ predicate on the "modelo" field.
func ModeloEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldModelo, v))
}

// ModeloNEQ applies the NEQ predicate on the "modelo" field.
func ModeloNEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldModelo, v))
}

// ModeloIn applies the In predicate on the "modelo" field.
func ModeloIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldModelo, vs...))
}

// ModeloNotIn applies the NotIn predicate on the "modelo" field.
func ModeloNotIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldModelo, vs...))
}

// ModeloGT applies the GT predicate on the "modelo" field.
func ModeloGT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldModelo, v))
}

// ModeloGTE applies the GTE predicate on the "modelo" field.
func ModeloGTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldModelo, v))
}

// ModeloLT applies the LT predicate on the "modelo" field.
func ModeloLT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldModelo, v))
}

// ModeloLTE applies the LTE predicate on the "modelo" field.
func ModeloLTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldModelo, v))
}

// ModeloContains applies the Contains predicate on the "modelo" field.
func ModeloContains(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContains(FieldModelo, v))
}

// ModeloHasPrefix applies the HasPrefix predicate on the "modelo" field.
func ModeloHasPrefix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasPrefix(FieldModelo, v))
}

// ModeloHasSuffix applies the HasSuffix predicate on the "modelo" field.
func ModeloHasSuffix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasSuffix(FieldModelo, v))
}

// ModeloEqualFold applies the EqualFold predicate on the "modelo" field.
func ModeloEqualFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEqualFold(FieldModelo, v))
}

// ModeloContainsFold applies the ContainsFold predicate on the "modelo" field.
func ModeloContainsFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContainsFold(FieldModelo, v))
}

// MarcaEQ applies the EQ predicate on the "marca" field.
func MarcaEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldMarca, v))
}

// MarcaNEQ applies the NEQ predicate on the "marca" field.
func MarcaNEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldMarca, v))
}

// MarcaIn applies the In predicate on the "marca" field.
func MarcaIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldMarca, vs...))
}

// MarcaNotIn applies the NotIn predicate on the "marca" field.
func MarcaNotIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldMarca, vs...))
}

// MarcaGT applies the GT predicate on the "marca" field.
func MarcaGT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldMarca, v))
}

// MarcaGTE applies the GTE predicate on the "marca" field.
func MarcaGTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldMarca, v))
}

// MarcaLT applies the LT predicate on the "marca" field.
func MarcaLT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldMarca, v))
}

// MarcaLTE applies the LTE predicate on the "marca" field.
func MarcaLTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldMarca, v))
}

// MarcaContains applies the Contains predicate on the "marca" field.
func MarcaContains(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContains(FieldMarca, v))
}

// MarcaHasPrefix applies the HasPrefix predicate on the "marca" field.
func MarcaHasPrefix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasPrefix(FieldMarca, v))
}

// MarcaHasSuffix applies the HasSuffix predicate on the "marca" field.
func MarcaHasSuffix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasSuffix(FieldMarca, v))
}

// MarcaEqualFold applies the EqualFold predicate on the "marca" field.
func MarcaEqualFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEqualFold(FieldMarca, v))
}

// MarcaContainsFold applies the ContainsFold predicate on the "marca" field.
func MarcaContainsFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContainsFold(FieldMarca, v))
}

// ImagenURLEQ applies the EQ predicate on the "imagen_url" field.
func ImagenURLEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldImagenURL, v))
}

// ImagenURLNEQ applies the NEQ predicate on the "imagen_url" field.
func ImagenURLNEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldImagenURL, v))
}

// ImagenURLIn applies the In predicate on the "imagen_url" field.
func ImagenURLIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldImagenURL, vs...))
}

// ImagenURLNotIn applies the NotIn predicate on the "imagen_url" field.
func ImagenURLNotIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldImagenURL, vs...))
}

// ImagenURLGT applies the GT predicate on the "imagen_url" field.
func ImagenURLGT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldImagenURL, v))
}

// ImagenURLGTE applies the GTE predicate on the "imagen_url" field.
func ImagenURLGTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldImagenURL, v))
}

// ImagenURLLT applies the LT predicate on the "imagen_url" field.
func ImagenURLLT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldImagenURL, v))
}

// ImagenURLLTE applies the LTE predicate on the "imagen_url" field.
func ImagenURLLTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldImagenURL, v))
}

// ImagenURLContains applies the Contains predicate on the "imagen_url" field.
func ImagenURLContains(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContains(FieldImagenURL, v))
}

// ImagenURLHasPrefix applies the HasPrefix predicate on the "imagen_url" field.
func ImagenURLHasPrefix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasPrefix(FieldImagenURL, v))
}

// ImagenURLHasSuffix applies the HasSuffix predicate on the "imagen_url" field.
func ImagenURLHasSuffix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasSuffix(FieldImagenURL, v))
}

// ImagenURLIsNil applies the IsNil predicate on the "imagen_url" field.
func ImagenURLIsNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIsNull(FieldImagenURL))
}

// ImagenURLNotNil applies the NotNil predicate on the "imagen_url" field.
func ImagenURLNotNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotNull(FieldImagenURL))
}

// ImagenURLEqualFold applies the EqualFold predicate on the "imagen_url" field.
func ImagenURLEqualFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEqualFold(FieldImagenURL, v))
}

// ImagenURLContainsFold applies the ContainsFold predicate on the "imagen_url" field.
func ImagenURLContainsFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContainsFold(FieldImagenURL, v))
}

// PrecioContadoEQ applies the EQ predicate on the "precio_contado" field.
func PrecioContadoEQ(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldPrecioContado, v))
}

// PrecioContadoNEQ applies the NEQ predicate on the "precio_contado" field.
func PrecioContadoNEQ(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldPrecioContado, v))
}

// PrecioContadoIn applies the In predicate on the "precio_contado" field.
func PrecioContadoIn(vs ...float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldPrecioContado, vs...))
}

// PrecioContadoNotIn applies the NotIn predicate on the "precio_contado" field.
func PrecioContadoNotIn(vs ...float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldPrecioContado, vs...))
}

// PrecioContadoGT applies the GT predicate on the "precio_contado" field.
func PrecioContadoGT(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldPrecioContado, v))
}

// PrecioContadoGTE applies the GTE predicate on the "precio_contado" field.
func PrecioContadoGTE(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldPrecioContado, v))
}

// PrecioContadoLT applies the LT predicate on the "precio_contado" field.
func PrecioContadoLT(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldPrecioContado, v))
}

// PrecioContadoLTE applies the LTE predicate on the "precio_contado" field.
func PrecioContadoLTE(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldPrecioContado, v))
}

// PrecioContadoIsNil applies the IsNil predicate on the "precio_contado" field.
func PrecioContadoIsNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIsNull(FieldPrecioContado))
}

// PrecioContadoNotNil applies the NotNil predicate on the "precio_contado" field.
func PrecioContadoNotNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotNull(FieldPrecioContado))
}

// EspecificacionesTecnicasEQ applies the EQ predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasNEQ applies the NEQ predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasNEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasIn applies the In predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldEspecificacionesTecnicas, vs...))
}

// EspecificacionesTecnicasNotIn applies the NotIn predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasNotIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldEspecificacionesTecnicas, vs...))
}

// EspecificacionesTecnicasGT applies the GT predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasGT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasGTE applies the GTE predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasGTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasLT applies the LT predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasLT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasLTE applies the LTE predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasLTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasContains applies the Contains predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasContains(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContains(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasHasPrefix applies the HasPrefix predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasHasPrefix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasPrefix(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasHasSuffix applies the HasSuffix predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasHasSuffix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasSuffix(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasIsNil applies the IsNil predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasIsNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIsNull(FieldEspecificacionesTecnicas))
}

// EspecificacionesTecnicasNotNil applies the NotNil predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasNotNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotNull(FieldEspecificacionesTecnicas))
}

// EspecificacionesTecnicasEqualFold applies the EqualFold predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasEqualFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEqualFold(FieldEspecificacionesTecnicas, v))
}

// EspecificacionesTecnicasContainsFold applies the ContainsFold predicate on the "especificaciones_tecnicas" field.
func EspecificacionesTecnicasContainsFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContainsFold(FieldEspecificacionesTecnicas, v))
}

// PlanesCuotasIsNil applies the IsNil predicate on the "planes_cuotas" field.
func PlanesCuotasIsNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIsNull(FieldPlanesCuotas))
}

// PlanesCuotasNotNil applies the NotNil predicate on the "planes_cuotas" field.
func PlanesCuotasNotNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotNull(FieldPlanesCuotas))
}

// BonificacionesEQ applies the EQ predicate on the "bonificaciones" field.
func BonificacionesEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldBonificaciones, v))
}

// BonificacionesNEQ applies the NEQ predicate on the "bonificaciones" field.
func BonificacionesNEQ(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldBonificaciones, v))
}

// BonificacionesIn applies the In predicate on the "bonificaciones" field.
func BonificacionesIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldBonificaciones, vs...))
}

// BonificacionesNotIn applies the NotIn predicate on the "bonificaciones" field.
func BonificacionesNotIn(vs ...string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldBonificaciones, vs...))
}

// BonificacionesGT applies the GT predicate on the "bonificaciones" field.
func BonificacionesGT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldBonificaciones, v))
}

// BonificacionesGTE applies the GTE predicate on the "bonificaciones" field.
func BonificacionesGTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldBonificaciones, v))
}

// BonificacionesLT applies the LT predicate on the "bonificaciones" field.
func BonificacionesLT(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldBonificaciones, v))
}

// BonificacionesLTE applies the LTE predicate on the "bonificaciones" field.
func BonificacionesLTE(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldBonificaciones, v))
}

// BonificacionesContains applies the Contains predicate on the "bonificaciones" field.
func BonificacionesContains(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContains(FieldBonificaciones, v))
}

// BonificacionesHasPrefix applies the HasPrefix predicate on the "bonificaciones" field.
func BonificacionesHasPrefix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasPrefix(FieldBonificaciones, v))
}

// BonificacionesHasSuffix applies the HasSuffix predicate on the "bonificaciones" field.
func BonificacionesHasSuffix(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldHasSuffix(FieldBonificaciones, v))
}

// BonificacionesIsNil applies the IsNil predicate on the "bonificaciones" field.
func BonificacionesIsNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIsNull(FieldBonificaciones))
}

// BonificacionesNotNil applies the NotNil predicate on the "bonificaciones" field.
func BonificacionesNotNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotNull(FieldBonificaciones))
}

// BonificacionesEqualFold applies the EqualFold predicate on the "bonificaciones" field.
func BonificacionesEqualFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEqualFold(FieldBonificaciones, v))
}

// BonificacionesContainsFold applies the ContainsFold predicate on the "bonificaciones" field.
func BonificacionesContainsFold(v string) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldContainsFold(FieldBonificaciones, v))
}

// AnticipoEQ applies the EQ predicate on the "anticipo" field.
func AnticipoEQ(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldAnticipo, v))
}

// AnticipoNEQ applies the NEQ predicate on the "anticipo" field.
func AnticipoNEQ(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldAnticipo, v))
}

// AnticipoIn applies the In predicate on the "anticipo" field.
func AnticipoIn(vs ...float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldAnticipo, vs...))
}

// AnticipoNotIn applies the NotIn predicate on the "anticipo" field.
func AnticipoNotIn(vs ...float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldAnticipo, vs...))
}

// AnticipoGT applies the GT predicate on the "anticipo" field.
func AnticipoGT(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldAnticipo, v))
}

// AnticipoGTE applies the GTE predicate on the "anticipo" field.
func AnticipoGTE(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldAnticipo, v))
}

// AnticipoLT applies the LT predicate on the "anticipo" field.
func AnticipoLT(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldAnticipo, v))
}

// AnticipoLTE applies the LTE predicate on the "anticipo" field.
func AnticipoLTE(v float64) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldAnticipo, v))
}

// AnticipoIsNil applies the IsNil predicate on the "anticipo" field.
func AnticipoIsNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIsNull(FieldAnticipo))
}

// AnticipoNotNil applies the NotNil predicate on the "anticipo" field.
func AnticipoNotNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotNull(FieldAnticipo))
}

// ActivoEQ applies the EQ predicate on the "activo" field.
func ActivoEQ(v bool) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldActivo, v))
}

// ActivoNEQ applies the NEQ predicate on the "activo" field.
func ActivoNEQ(v bool) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldActivo, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v int) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByIsNil applies the IsNil predicate on the "created_by" field.
func CreatedByIsNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIsNull(FieldCreatedBy))
}

// CreatedByNotNil applies the NotNil predicate on the "created_by" field.
func CreatedByNotNil() predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotNull(FieldCreatedBy))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Presupuesto {
	return predicate.Presupuesto(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Presupuesto) predicate.Presupuesto {
	return predicate.Presupuesto(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Presupuesto) predicate.Presupuesto {
	return predicate.Presupuesto(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Presupuesto) predicate.Presupuesto {
	return predicate.Presupuesto(sql.NotPredicates(p))
}
