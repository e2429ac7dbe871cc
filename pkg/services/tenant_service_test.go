package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTenant_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tenants.CreateTenant(context.Background(), CreateTenantRequest{Slug: "x-1"})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	_, err = env.tenants.CreateTenant(context.Background(), CreateTenantRequest{
		Name: "Bad Slug", Slug: "Bad Slug!",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCreateTenant_DuplicateSlug(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tenants.CreateTenant(context.Background(), CreateTenantRequest{
		Name: "Copy", Slug: "test-tenant",
	})
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestGetTenantBySlug(t *testing.T) {
	env := newTestEnv(t)

	found, err := env.tenants.GetTenantBySlug(context.Background(), "test-tenant")
	require.NoError(t, err)
	assert.Equal(t, env.tenant.ID, found.ID)

	_, err = env.tenants.GetTenantBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnsureSessionQuota_InactiveTenant(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.tenants.UpdateTenantLimits(context.Background(), env.tenant.ID, 10, 1000000, false)
	require.NoError(t, err)

	_, err = env.tenants.EnsureSessionQuota(context.Background(), env.tenant.ID)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestUpdateTenantLimits(t *testing.T) {
	env := newTestEnv(t)

	updated, err := env.tenants.UpdateTenantLimits(context.Background(), env.tenant.ID, 7, 42, true)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.MaxConcurrentSessions)
	assert.Equal(t, int64(42), updated.MaxTokensPerMonth)

	_, err = env.tenants.UpdateTenantLimits(context.Background(), env.tenant.ID, 0, 42, true)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
