package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/ent/executioncontext"
	"github.com/maestro-hq/maestro/pkg/contextstore"
	"github.com/maestro-hq/maestro/pkg/tenancy"
)

// ContextService persists stored execution contexts. The document semantics
// (dot paths, history, scope rules, merging) live in pkg/contextstore; this
// layer adds durability with compare-and-swap on the version column.
type ContextService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewContextService creates a new ContextService.
func NewContextService(client *ent.Client) *ContextService {
	return &ContextService{
		client: client,
		logger: slog.With("component", "context_service"),
	}
}

// CreateContextRequest carries the fields for context creation.
type CreateContextRequest struct {
	Scope     contextstore.Scope
	SessionID string
	AgentID   string
	Data      map[string]any
	CreatedBy string
	TTL       time.Duration
}

// CreateContext creates a stored context for the tenant in ctx.
func (s *ContextService) CreateContext(ctx context.Context, req CreateContextRequest) (*contextstore.ExecutionContext, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}

	ec := contextstore.New(tenantID, req.Scope)
	ec.SessionID = req.SessionID
	ec.AgentID = req.AgentID
	ec.CreatedBy = req.CreatedBy
	if req.Data != nil {
		ec.FromMap(req.Data)
	}
	if req.Scope == contextstore.ScopeTemporary && req.TTL > 0 {
		ec.ExpiresAt = time.Now().Add(req.TTL)
	}
	if err := ec.Validate(); err != nil {
		var ve *contextstore.ValidationError
		if errors.As(err, &ve) {
			return nil, NewValidationError(ve.Field, ve.Message)
		}
		return nil, err
	}

	builder := s.client.ExecutionContext.Create().
		SetID(ec.ID).
		SetTenantID(ec.TenantID).
		SetScope(executioncontext.Scope(ec.Scope)).
		SetData(ec.Data).
		SetVersion(ec.Version)
	if ec.SessionID != "" {
		builder.SetSessionID(ec.SessionID)
	}
	if ec.AgentID != "" {
		builder.SetAgentID(ec.AgentID)
	}
	if ec.CreatedBy != "" {
		builder.SetCreatedBy(ec.CreatedBy)
	}
	if !ec.ExpiresAt.IsZero() {
		builder.SetExpiresAt(ec.ExpiresAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	return ec, nil
}

// GetContext loads a context, tenant-scoped. Expired temporary contexts are
// reported as missing.
func (s *ContextService) GetContext(ctx context.Context, id string) (*contextstore.ExecutionContext, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}
	row, err := s.client.ExecutionContext.Query().
		Where(
			executioncontext.IDEQ(id),
			executioncontext.TenantIDEQ(tenantID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get context: %w", err)
	}
	ec := rowToContext(row)
	if ec.Expired(time.Now()) {
		return nil, ErrNotFound
	}
	return ec, nil
}

// ListContexts returns the tenant's contexts, optionally filtered by scope
// or session. Expired temporary contexts are skipped.
func (s *ContextService) ListContexts(ctx context.Context, scope contextstore.Scope, sessionID string) ([]*contextstore.ExecutionContext, error) {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return nil, NewValidationError("tenant_id", "required")
	}

	query := s.client.ExecutionContext.Query().
		Where(executioncontext.TenantIDEQ(tenantID))
	if scope != "" {
		query = query.Where(executioncontext.ScopeEQ(executioncontext.Scope(scope)))
	}
	if sessionID != "" {
		query = query.Where(executioncontext.SessionIDEQ(sessionID))
	}
	rows, err := query.Order(ent.Desc(executioncontext.FieldUpdatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contexts: %w", err)
	}

	now := time.Now()
	out := make([]*contextstore.ExecutionContext, 0, len(rows))
	for _, row := range rows {
		ec := rowToContext(row)
		if ec.Expired(now) {
			continue
		}
		out = append(out, ec)
	}
	return out, nil
}

// SetValue writes value at a dot path. The save asserts the version read,
// so racing writers get a ConflictError instead of silently clobbering.
func (s *ContextService) SetValue(ctx context.Context, id, path string, value any) (*contextstore.ExecutionContext, error) {
	return s.mutate(ctx, id, func(ec *contextstore.ExecutionContext) error {
		if err := ec.Set(path, value); err != nil {
			return mapContextError(err)
		}
		return nil
	})
}

// DeleteValue removes the value at a dot path.
func (s *ContextService) DeleteValue(ctx context.Context, id, path string) (*contextstore.ExecutionContext, error) {
	return s.mutate(ctx, id, func(ec *contextstore.ExecutionContext) error {
		if err := ec.Delete(path); err != nil {
			return mapContextError(err)
		}
		return nil
	})
}

func (s *ContextService) mutate(ctx context.Context, id string, fn func(*contextstore.ExecutionContext) error) (*contextstore.ExecutionContext, error) {
	ec, err := s.GetContext(ctx, id)
	if err != nil {
		return nil, err
	}
	expected := ec.Version
	if err := fn(ec); err != nil {
		return nil, err
	}

	n, err := s.client.ExecutionContext.Update().
		Where(
			executioncontext.IDEQ(id),
			executioncontext.VersionEQ(expected),
		).
		SetData(ec.Data).
		SetVersion(ec.Version).
		SetHistory(historyToMaps(ec.History)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save context: %w", err)
	}
	if n == 0 {
		actual := -1
		if row, err := s.client.ExecutionContext.Get(ctx, id); err == nil {
			actual = row.Version
		}
		return nil, &ConflictError{
			Entity:          "execution_context",
			ID:              id,
			ExpectedVersion: expected,
			ActualVersion:   actual,
		}
	}
	return ec, nil
}

// MergeContexts merges source into target with the given strategy and
// persists the result as a new context. The inputs are left untouched.
func (s *ContextService) MergeContexts(ctx context.Context, targetID, sourceID string, strategy contextstore.MergeStrategy) (*contextstore.MergeResult, error) {
	target, err := s.GetContext(ctx, targetID)
	if err != nil {
		return nil, err
	}
	source, err := s.GetContext(ctx, sourceID)
	if err != nil {
		return nil, err
	}

	result, err := contextstore.Merge(target, source, strategy)
	if err != nil {
		return nil, mapContextError(err)
	}
	merged := result.Context

	builder := s.client.ExecutionContext.Create().
		SetID(merged.ID).
		SetTenantID(merged.TenantID).
		SetScope(executioncontext.Scope(merged.Scope)).
		SetData(merged.Data).
		SetVersion(merged.Version)
	if merged.SessionID != "" {
		builder.SetSessionID(merged.SessionID)
	}
	if merged.AgentID != "" {
		builder.SetAgentID(merged.AgentID)
	}
	if merged.CreatedBy != "" {
		builder.SetCreatedBy(merged.CreatedBy)
	}
	if !merged.ExpiresAt.IsZero() {
		builder.SetExpiresAt(merged.ExpiresAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist merged context: %w", err)
	}
	return result, nil
}

// DeleteContext removes a stored context.
func (s *ContextService) DeleteContext(ctx context.Context, id string) error {
	tenantID, err := tenancy.RequireTenant(ctx)
	if err != nil {
		return NewValidationError("tenant_id", "required")
	}
	n, err := s.client.ExecutionContext.Delete().
		Where(
			executioncontext.IDEQ(id),
			executioncontext.TenantIDEQ(tenantID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SweepExpired deletes temporary contexts past their TTL. Used by the
// cleanup loop.
func (s *ContextService) SweepExpired(ctx context.Context) (int, error) {
	n, err := s.client.ExecutionContext.Delete().
		Where(
			executioncontext.ScopeEQ(executioncontext.ScopeTemporary),
			executioncontext.ExpiresAtNotNil(),
			executioncontext.ExpiresAtLT(time.Now()),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired contexts: %w", err)
	}
	if n > 0 {
		s.logger.Info("Swept expired contexts", "count", n)
	}
	return n, nil
}

// mapContextError translates contextstore errors to the service vocabulary.
func mapContextError(err error) error {
	var ve *contextstore.ValidationError
	switch {
	case errors.As(err, &ve):
		return NewValidationError(ve.Field, ve.Message)
	case errors.Is(err, contextstore.ErrPathNotFound):
		return NewValidationError("path", err.Error())
	case errors.Is(err, contextstore.ErrPathNotTraversable):
		return NewValidationError("path", err.Error())
	case errors.Is(err, contextstore.ErrCrossTenantMerge):
		return NewValidationError("source_id", err.Error())
	}
	return err
}

func rowToContext(row *ent.ExecutionContext) *contextstore.ExecutionContext {
	ec := &contextstore.ExecutionContext{
		ID:        row.ID,
		TenantID:  row.TenantID,
		Scope:     contextstore.Scope(row.Scope),
		Version:   row.Version,
		CreatedBy: row.CreatedBy,
		Metadata:  row.Metadata,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.SessionID != nil {
		ec.SessionID = *row.SessionID
	}
	if row.AgentID != nil {
		ec.AgentID = *row.AgentID
	}
	if row.ExpiresAt != nil {
		ec.ExpiresAt = *row.ExpiresAt
	}
	ec.FromMap(row.Data)
	ec.History = historyFromMaps(row.History)
	return ec
}

func historyToMaps(history []contextstore.Change) []map[string]any {
	out := make([]map[string]any, 0, len(history))
	for _, change := range history {
		raw, _ := json.Marshal(change)
		m := map[string]any{}
		_ = json.Unmarshal(raw, &m)
		out = append(out, m)
	}
	return out
}

func historyFromMaps(history []map[string]any) []contextstore.Change {
	out := make([]contextstore.Change, 0, len(history))
	for _, m := range history {
		raw, _ := json.Marshal(m)
		var change contextstore.Change
		_ = json.Unmarshal(raw, &change)
		out = append(out, change)
	}
	return out
}
