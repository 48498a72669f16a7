package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PushToken holds the schema definition for the PushToken entity
// (web-push subscriptions). Delivery itself is handled by an external
// notifier; this service only stores and lists subscriptions.
type PushToken struct {
	ent.Schema
}

// Fields of the PushToken.
func (PushToken) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Subscription owner"),
		field.String("endpoint").
			NotEmpty().
			Comment("Push service endpoint URL"),
		field.String("p256dh").
			NotEmpty().
			Comment("Client public key"),
		field.String("auth").
			Sensitive().
			NotEmpty().
			Comment("Client auth secret"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Indexes of the PushToken.
func (PushToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("endpoint").Unique(),
	}
}
