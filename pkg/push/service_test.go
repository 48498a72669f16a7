package push

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService(t *testing.T) *Service {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client)
}

func TestSubscribe(t *testing.T) {
	t.Run("Missing keys rejected", func(t *testing.T) {
		svc := newTestService(t)

		_, err := svc.Subscribe(context.Background(), 7, SubscribeRequest{
			Endpoint: "https://push.example/abc",
		})

		require.Error(t, err)
		assert.Equal(t, "missing required fields: p256dh, auth", err.Error())
	})

	t.Run("Re-subscribing replaces keys", func(t *testing.T) {
		svc := newTestService(t)
		ctx := context.Background()

		first, err := svc.Subscribe(ctx, 7, SubscribeRequest{
			Endpoint: "https://push.example/abc",
			P256dh:   "clave-vieja",
			Auth:     "auth-vieja",
		})
		require.NoError(t, err)

		second, err := svc.Subscribe(ctx, 7, SubscribeRequest{
			Endpoint: "https://push.example/abc",
			P256dh:   "clave-nueva",
			Auth:     "auth-nueva",
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		listed, err := svc.ListByUser(ctx, 7)
		require.NoError(t, err)
		require.Len(t, listed, 1)
	})
}

func TestUnsubscribe(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, 7, SubscribeRequest{
		Endpoint: "https://push.example/abc",
		P256dh:   "clave",
		Auth:     "auth",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, 7, "https://push.example/abc"))

	err = svc.Unsubscribe(ctx, 7, "https://push.example/abc")
	require.Error(t, err)
	assert.Equal(t, "subscription not found", err.Error())
}
