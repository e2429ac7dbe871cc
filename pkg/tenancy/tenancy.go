// Package tenancy carries the request-scoped tenant identity. There is no
// process-wide current tenant: callers put the tenant id on the
// context.Context at the boundary and every service call reads it from
// there.
package tenancy

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNoTenant indicates a write-path operation ran without a tenant id on
// its context.
var ErrNoTenant = errors.New("no tenant id in context")

// ErrMalformedTenant indicates the supplied tenant id is not a UUID.
var ErrMalformedTenant = errors.New("malformed tenant id")

type ctxKey struct{}

// WithTenant returns a context carrying the tenant id.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

// TenantID returns the tenant id on the context, or "" when absent.
func TenantID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// RequireTenant returns the tenant id on the context, failing with
// ErrNoTenant when absent. Write operations call this before touching
// storage.
func RequireTenant(ctx context.Context) (string, error) {
	id := TenantID(ctx)
	if id == "" {
		return "", ErrNoTenant
	}
	return id, nil
}

// ParseTenantID validates the wire form of a tenant id.
func ParseTenantID(raw string) (string, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", ErrMalformedTenant
	}
	return id.String(), nil
}
