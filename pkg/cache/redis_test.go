package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	srv := miniredis.RunT(t)

	client, err := NewClient("redis://" + srv.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestSetGet(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "clave", "valor", time.Minute))

	got, err := client.Get(ctx, "clave")
	require.NoError(t, err)
	assert.Equal(t, "valor", got)
}

func TestGetMissing(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Get(context.Background(), "no-existe")

	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "clave", "valor", time.Minute))
	require.NoError(t, client.Delete(ctx, "clave"))

	_, err := client.Get(ctx, "clave")
	assert.Error(t, err)
}

func TestDeletePattern(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "leads:a", "1", time.Minute))
	require.NoError(t, client.Set(ctx, "leads:b", "2", time.Minute))
	require.NoError(t, client.Set(ctx, "users:a", "3", time.Minute))

	require.NoError(t, client.DeletePattern(ctx, "leads:*"))

	_, err := client.Get(ctx, "leads:a")
	assert.Error(t, err)
	_, err = client.Get(ctx, "leads:b")
	assert.Error(t, err)

	kept, err := client.Get(ctx, "users:a")
	require.NoError(t, err)
	assert.Equal(t, "3", kept)
}
