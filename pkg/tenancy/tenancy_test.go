package tenancy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TenantID(ctx))

	ctx = WithTenant(ctx, "t1")
	assert.Equal(t, "t1", TenantID(ctx))

	id, err := RequireTenant(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", id)
}

func TestRequireTenantAbsent(t *testing.T) {
	_, err := RequireTenant(context.Background())
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestParseTenantID(t *testing.T) {
	id, err := ParseTenantID("c6f2a3ce-7a38-4f1c-9d2b-0f5e8a1b2c3d")
	require.NoError(t, err)
	assert.Equal(t, "c6f2a3ce-7a38-4f1c-9d2b-0f5e8a1b2c3d", id)

	_, err = ParseTenantID("not-a-uuid")
	assert.ErrorIs(t, err, ErrMalformedTenant)
}
