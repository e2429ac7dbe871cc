package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/session"
	"github.com/maestro-hq/maestro/ent/tenant"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// TenantService manages tenants and enforces their quotas.
type TenantService struct {
	client *ent.Client
}

// NewTenantService creates a new TenantService.
func NewTenantService(client *ent.Client) *TenantService {
	return &TenantService{client: client}
}

// CreateTenantRequest carries the fields for tenant creation.
type CreateTenantRequest struct {
	Name                  string
	Slug                  string
	MaxConcurrentSessions int
	MaxTokensPerMonth     int64
}

// CreateTenant creates a tenant. Zero limits fall back to schema defaults.
func (s *TenantService) CreateTenant(ctx context.Context, req CreateTenantRequest) (*ent.Tenant, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.Slug == "" {
		return nil, NewValidationError("slug", "required")
	}
	if !slugPattern.MatchString(req.Slug) {
		return nil, NewValidationError("slug", "must be lowercase alphanumeric with hyphens")
	}

	builder := s.client.Tenant.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetSlug(req.Slug)

	if req.MaxConcurrentSessions > 0 {
		builder.SetMaxConcurrentSessions(req.MaxConcurrentSessions)
	}
	if req.MaxTokensPerMonth > 0 {
		builder.SetMaxTokensPerMonth(req.MaxTokensPerMonth)
	}

	t, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return t, nil
}

// GetTenant retrieves a tenant by id.
func (s *TenantService) GetTenant(ctx context.Context, id string) (*ent.Tenant, error) {
	t, err := s.client.Tenant.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}
	return t, nil
}

// GetTenantBySlug retrieves a tenant by its unique slug.
func (s *TenantService) GetTenantBySlug(ctx context.Context, slug string) (*ent.Tenant, error) {
	t, err := s.client.Tenant.Query().Where(tenant.SlugEQ(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant by slug: %w", err)
	}
	return t, nil
}

// ListTenants returns all tenants, active first.
func (s *TenantService) ListTenants(ctx context.Context) ([]*ent.Tenant, error) {
	tenants, err := s.client.Tenant.Query().
		Order(ent.Desc(tenant.FieldActive), ent.Asc(tenant.FieldSlug)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// UpdateTenantLimits adjusts a tenant's quotas and active flag.
func (s *TenantService) UpdateTenantLimits(ctx context.Context, id string, maxConcurrent int, maxTokens int64, active bool) (*ent.Tenant, error) {
	if maxConcurrent < 1 {
		return nil, NewValidationError("max_concurrent_sessions", "must be at least 1")
	}
	if maxTokens < 1 {
		return nil, NewValidationError("max_tokens_per_month", "must be at least 1")
	}
	t, err := s.client.Tenant.UpdateOneID(id).
		SetMaxConcurrentSessions(maxConcurrent).
		SetMaxTokensPerMonth(maxTokens).
		SetActive(active).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return t, nil
}

// activeStatuses are the session states counted toward the concurrency quota.
// Must agree with domain.SessionStatus.IsActive plus pending (admitted but
// not yet claimed).
var activeStatuses = []session.Status{
	session.StatusPending,
	session.StatusQueued,
	session.StatusRunning,
	session.StatusPaused,
	session.StatusDegraded,
}

// EnsureSessionQuota verifies the tenant exists, is active, and has headroom
// for one more session. Returns QuotaError when the concurrent-session limit
// is reached.
func (s *TenantService) EnsureSessionQuota(ctx context.Context, tenantID string) (*ent.Tenant, error) {
	t, err := s.GetTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, NewValidationError("tenant_id", "tenant is not active")
	}

	active, err := s.client.Session.Query().
		Where(
			session.TenantIDEQ(tenantID),
			session.StatusIn(activeStatuses...),
			session.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}
	if active >= t.MaxConcurrentSessions {
		return nil, &QuotaError{Resource: "concurrent_sessions", Limit: t.MaxConcurrentSessions}
	}
	return t, nil
}
