package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alluma/crm-backend/ent"
	"github.com/alluma/crm-backend/ent/enttest"
	"github.com/alluma/crm-backend/pkg/auth"

	_ "github.com/mattn/go-sqlite3"
)

func newTestService(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

func createVendedor(t *testing.T, svc *Service, name string) *UserResponse {
	u, err := svc.Create(context.Background(), CreateUserRequest{
		Name:     name,
		Email:    name + "@alluma.test",
		Password: "secreto123",
		Role:     "vendedor",
	})
	require.NoError(t, err)
	return u
}

func TestCreate(t *testing.T) {
	t.Run("Password is stored hashed", func(t *testing.T) {
		svc, client := newTestService(t)

		created := createVendedor(t, svc, "ana")

		stored, err := client.User.Get(context.Background(), created.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "secreto123", stored.PasswordHash)
		assert.True(t, auth.CheckPassword(stored.PasswordHash, "secreto123"))
		assert.False(t, auth.CheckPassword(stored.PasswordHash, "otra-clave"))
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		createVendedor(t, svc, "ana")
		_, err := svc.Create(context.Background(), CreateUserRequest{
			Name:     "Otra Ana",
			Email:    "ana@alluma.test",
			Password: "secreto123",
			Role:     "vendedor",
		})

		require.Error(t, err)
		assert.Equal(t, "email already registered", err.Error())
	})

	t.Run("Invalid role rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.Create(context.Background(), CreateUserRequest{
			Name:     "Ana",
			Email:    "ana@alluma.test",
			Password: "secreto123",
			Role:     "superadmin",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role")
	})
}

func TestDeleteGuards(t *testing.T) {
	t.Run("Owner cannot be deleted", func(t *testing.T) {
		svc, _ := newTestService(t)

		owner, err := svc.Create(context.Background(), CreateUserRequest{
			Name:     "Dueño",
			Email:    "owner@alluma.test",
			Password: "secreto123",
			Role:     "owner",
		})
		require.NoError(t, err)

		err = svc.Delete(context.Background(), owner.ID)
		require.Error(t, err)
		assert.Equal(t, "owner account cannot be deleted", err.Error())
	})

	t.Run("User with direct reports cannot be deleted", func(t *testing.T) {
		svc, _ := newTestService(t)
		ctx := context.Background()

		gerente, err := svc.Create(ctx, CreateUserRequest{
			Name:     "Gerencia",
			Email:    "gerencia@alluma.test",
			Password: "secreto123",
			Role:     "gerente",
		})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateUserRequest{
			Name:      "Ana",
			Email:     "ana@alluma.test",
			Password:  "secreto123",
			Role:      "vendedor",
			ReportsTo: &gerente.ID,
		})
		require.NoError(t, err)

		err = svc.Delete(ctx, gerente.ID)
		require.Error(t, err)
		assert.Equal(t, "user still has direct reports", err.Error())
	})

	t.Run("User with assigned leads cannot be deleted", func(t *testing.T) {
		svc, client := newTestService(t)
		ctx := context.Background()

		vendedor := createVendedor(t, svc, "ana")

		_, err := client.Lead.
			Create().
			SetNombre("Cliente").
			SetTelefono("+5491155550001").
			SetModelo("Cronos").
			SetFecha("2026-08-31").
			SetAssignedTo(vendedor.ID).
			Save(ctx)
		require.NoError(t, err)

		err = svc.Delete(ctx, vendedor.ID)
		require.Error(t, err)
		assert.Equal(t, "user still has assigned leads", err.Error())
	})

	t.Run("Unencumbered user deletes cleanly", func(t *testing.T) {
		svc, _ := newTestService(t)

		vendedor := createVendedor(t, svc, "ana")

		require.NoError(t, svc.Delete(context.Background(), vendedor.ID))
		_, err := svc.Get(context.Background(), vendedor.ID)
		assert.Equal(t, "user not found", err.Error())
	})
}
