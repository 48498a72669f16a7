// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/alluma/crm-backend/ent/goal"
	"github.com/alluma/crm-backend/ent/internalnote"
	"github.com/alluma/crm-backend/ent/lead"
	"github.com/alluma/crm-backend/ent/presupuesto"
	"github.com/alluma/crm-backend/ent/pushtoken"
	"github.com/alluma/crm-backend/ent/quote"
	"github.com/alluma/crm-backend/ent/reminder"
	"github.com/alluma/crm-backend/ent/schema"
	"github.com/alluma/crm-backend/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	goalFields := schema.Goal{}.Fields()
	_ = goalFields
	// goalDescMes is the schema descriptor for mes field.
	goalDescMes := goalFields[1].Descriptor()
	// goal.MesValidator is a validator for the "mes" field. It is called by the builders before save.
	goal.MesValidator = goalDescMes.Validators[0].(func(string) error)
	// goalDescMetaVentas is the schema descriptor for meta_ventas field.
	goalDescMetaVentas := goalFields[2].Descriptor()
	// goal.MetaVentasValidator is a validator for the "meta_ventas" field. It is called by the builders before save.
	goal.MetaVentasValidator = goalDescMetaVentas.Validators[0].(func(int) error)
	// goalDescMetaLeads is the schema descriptor for meta_leads field.
	goalDescMetaLeads := goalFields[3].Descriptor()
	// goal.MetaLeadsValidator is a validator for the "meta_leads" field. It is called by the builders before save.
	goal.MetaLeadsValidator = goalDescMetaLeads.Validators[0].(func(int) error)
	// goalDescCreatedAt is the schema descriptor for created_at field.
	goalDescCreatedAt := goalFields[4].Descriptor()
	// goal.DefaultCreatedAt holds the default value on creation for the created_at field.
	goal.DefaultCreatedAt = goalDescCreatedAt.Default.(func() time.Time)
	// goalDescUpdatedAt is the schema descriptor for updated_at field.
	goalDescUpdatedAt := goalFields[5].Descriptor()
	// goal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	goal.DefaultUpdatedAt = goalDescUpdatedAt.Default.(func() time.Time)
	// goal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	goal.UpdateDefaultUpdatedAt = goalDescUpdatedAt.UpdateDefault.(func() time.Time)
	internalnoteFields := schema.InternalNote{}.Fields()
	_ = internalnoteFields
	// internalnoteDescTexto is the schema descriptor for texto field.
	internalnoteDescTexto := internalnoteFields[2].Descriptor()
	// internalnote.TextoValidator is a validator for the "texto" field. It is called by the builders before save.
	internalnote.TextoValidator = internalnoteDescTexto.Validators[0].(func(string) error)
	// internalnoteDescCreatedAt is the schema descriptor for created_at field.
	internalnoteDescCreatedAt := internalnoteFields[3].Descriptor()
	// internalnote.DefaultCreatedAt holds the default value on creation for the created_at field.
	internalnote.DefaultCreatedAt = internalnoteDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescNombre is the schema descriptor for nombre field.
	leadDescNombre := leadFields[0].Descriptor()
	// lead.NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	lead.NombreValidator = leadDescNombre.Validators[0].(func(string) error)
	// leadDescTelefono is the schema descriptor for telefono field.
	leadDescTelefono := leadFields[1].Descriptor()
	// lead.TelefonoValidator is a validator for the "telefono" field. It is called by the builders before save.
	lead.TelefonoValidator = leadDescTelefono.Validators[0].(func(string) error)
	// leadDescModelo is the schema descriptor for modelo field.
	leadDescModelo := leadFields[2].Descriptor()
	// lead.ModeloValidator is a validator for the "modelo" field. It is called by the builders before save.
	lead.ModeloValidator = leadDescModelo.Validators[0].(func(string) error)
	// leadDescFormaPago is the schema descriptor for forma_pago field.
	leadDescFormaPago := leadFields[3].Descriptor()
	// lead.DefaultFormaPago holds the default value on creation for the forma_pago field.
	lead.DefaultFormaPago = leadDescFormaPago.Default.(string)
	// leadDescEntrega is the schema descriptor for entrega field.
	leadDescEntrega := leadFields[5].Descriptor()
	// lead.DefaultEntrega holds the default value on creation for the entrega field.
	lead.DefaultEntrega = leadDescEntrega.Default.(bool)
	// leadDescNotas is the schema descriptor for notas field.
	leadDescNotas := leadFields[6].Descriptor()
	// lead.DefaultNotas holds the default value on creation for the notas field.
	lead.DefaultNotas = leadDescNotas.Default.(string)
	// leadDescEstado is the schema descriptor for estado field.
	leadDescEstado := leadFields[7].Descriptor()
	// lead.DefaultEstado holds the default value on creation for the estado field.
	lead.DefaultEstado = leadDescEstado.Default.(string)
	// leadDescFuente is the schema descriptor for fuente field.
	leadDescFuente := leadFields[8].Descriptor()
	// lead.DefaultFuente holds the default value on creation for the fuente field.
	lead.DefaultFuente = leadDescFuente.Default.(string)
	// leadDescEquipo is the schema descriptor for equipo field.
	leadDescEquipo := leadFields[10].Descriptor()
	// lead.DefaultEquipo holds the default value on creation for the equipo field.
	lead.DefaultEquipo = leadDescEquipo.Default.(string)
	// leadDescHistorial is the schema descriptor for historial field.
	leadDescHistorial := leadFields[13].Descriptor()
	// lead.DefaultHistorial holds the default value on creation for the historial field.
	lead.DefaultHistorial = leadDescHistorial.Default.(string)
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[15].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	// leadDescUpdatedAt is the schema descriptor for updated_at field.
	leadDescUpdatedAt := leadFields[16].Descriptor()
	// lead.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lead.DefaultUpdatedAt = leadDescUpdatedAt.Default.(func() time.Time)
	// lead.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lead.UpdateDefaultUpdatedAt = leadDescUpdatedAt.UpdateDefault.(func() time.Time)
	presupuestoFields := schema.Presupuesto{}.Fields()
	_ = presupuestoFields
	// presupuestoDescModelo is the schema descriptor for modelo field.
	presupuestoDescModelo := presupuestoFields[0].Descriptor()
	// presupuesto.ModeloValidator is a validator for the "modelo" field. It is called by the builders before save.
	presupuesto.ModeloValidator = presupuestoDescModelo.Validators[0].(func(string) error)
	// presupuestoDescMarca is the schema descriptor for marca field.
	presupuestoDescMarca := presupuestoFields[1].Descriptor()
	// presupuesto.MarcaValidator is a validator for the "marca" field. It is called by the builders before save.
	presupuesto.MarcaValidator = presupuestoDescMarca.Validators[0].(func(string) error)
	// presupuestoDescActivo is the schema descriptor for activo field.
	presupuestoDescActivo := presupuestoFields[8].Descriptor()
	// presupuesto.DefaultActivo holds the default value on creation for the activo field.
	presupuesto.DefaultActivo = presupuestoDescActivo.Default.(bool)
	// presupuestoDescCreatedAt is the schema descriptor for created_at field.
	presupuestoDescCreatedAt := presupuestoFields[10].Descriptor()
	// presupuesto.DefaultCreatedAt holds the default value on creation for the created_at field.
	presupuesto.DefaultCreatedAt = presupuestoDescCreatedAt.Default.(func() time.Time)
	pushtokenFields := schema.PushToken{}.Fields()
	_ = pushtokenFields
	// pushtokenDescEndpoint is the schema descriptor for endpoint field.
	pushtokenDescEndpoint := pushtokenFields[1].Descriptor()
	// pushtoken.EndpointValidator is a validator for the "endpoint" field. It is called by the builders before save.
	pushtoken.EndpointValidator = pushtokenDescEndpoint.Validators[0].(func(string) error)
	// pushtokenDescP256dh is the schema descriptor for p256dh field.
	pushtokenDescP256dh := pushtokenFields[2].Descriptor()
	// pushtoken.P256dhValidator is a validator for the "p256dh" field. It is called by the builders before save.
	pushtoken.P256dhValidator = pushtokenDescP256dh.Validators[0].(func(string) error)
	// pushtokenDescAuth is the schema descriptor for auth field.
	pushtokenDescAuth := pushtokenFields[3].Descriptor()
	// pushtoken.AuthValidator is a validator for the "auth" field. It is called by the builders before save.
	pushtoken.AuthValidator = pushtokenDescAuth.Validators[0].(func(string) error)
	// pushtokenDescCreatedAt is the schema descriptor for created_at field.
	pushtokenDescCreatedAt := pushtokenFields[4].Descriptor()
	// pushtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	pushtoken.DefaultCreatedAt = pushtokenDescCreatedAt.Default.(func() time.Time)
	quoteFields := schema.Quote{}.Fields()
	_ = quoteFields
	// quoteDescVehiculo is the schema descriptor for vehiculo field.
	quoteDescVehiculo := quoteFields[1].Descriptor()
	// quote.VehiculoValidator is a validator for the "vehiculo" field. It is called by the builders before save.
	quote.VehiculoValidator = quoteDescVehiculo.Validators[0].(func(string) error)
	// quoteDescPrecioContado is the schema descriptor for precio_contado field.
	quoteDescPrecioContado := quoteFields[2].Descriptor()
	// quote.PrecioContadoValidator is a validator for the "precio_contado" field. It is called by the builders before save.
	quote.PrecioContadoValidator = quoteDescPrecioContado.Validators[0].(func(float64) error)
	// quoteDescCreatedAt is the schema descriptor for created_at field.
	quoteDescCreatedAt := quoteFields[6].Descriptor()
	// quote.DefaultCreatedAt holds the default value on creation for the created_at field.
	quote.DefaultCreatedAt = quoteDescCreatedAt.Default.(func() time.Time)
	reminderFields := schema.Reminder{}.Fields()
	_ = reminderFields
	// reminderDescFecha is the schema descriptor for fecha field.
	reminderDescFecha := reminderFields[1].Descriptor()
	// reminder.FechaValidator is a validator for the "fecha" field. It is called by the builders before save.
	reminder.FechaValidator = reminderDescFecha.Validators[0].(func(string) error)
	// reminderDescHora is the schema descriptor for hora field.
	reminderDescHora := reminderFields[2].Descriptor()
	// reminder.HoraValidator is a validator for the "hora" field. It is called by the builders before save.
	reminder.HoraValidator = reminderDescHora.Validators[0].(func(string) error)
	// reminderDescDescripcion is the schema descriptor for descripcion field.
	reminderDescDescripcion := reminderFields[3].Descriptor()
	// reminder.DescripcionValidator is a validator for the "descripcion" field. It is called by the builders before save.
	reminder.DescripcionValidator = reminderDescDescripcion.Validators[0].(func(string) error)
	// reminderDescCompletado is the schema descriptor for completado field.
	reminderDescCompletado := reminderFields[4].Descriptor()
	// reminder.DefaultCompletado holds the default value on creation for the completado field.
	reminder.DefaultCompletado = reminderDescCompletado.Default.(bool)
	// reminderDescCreatedAt is the schema descriptor for created_at field.
	reminderDescCreatedAt := reminderFields[5].Descriptor()
	// reminder.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminder.DefaultCreatedAt = reminderDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[2].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescActive is the schema descriptor for active field.
	userDescActive := userFields[4].Descriptor()
	// user.DefaultActive holds the default value on creation for the active field.
	user.DefaultActive = userDescActive.Default.(bool)
	// userDescEquipo is the schema descriptor for equipo field.
	userDescEquipo := userFields[6].Descriptor()
	// user.DefaultEquipo holds the default value on creation for the equipo field.
	user.DefaultEquipo = userDescEquipo.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[7].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[8].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
