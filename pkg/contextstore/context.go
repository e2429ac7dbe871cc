// Package contextstore implements the stored execution-context entity: a
// versioned nested key-value document with dot-path access, a bounded change
// history, scope rules, and tenant-safe merging. This is distinct from the
// request-scoped tenant context in pkg/tenancy.
package contextstore

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Scope controls visibility of a stored context, narrowest to widest.
type Scope string

// Context scopes. temporary contexts carry a TTL.
const (
	ScopeTemporary Scope = "temporary"
	ScopeSession   Scope = "session"
	ScopeAgent     Scope = "agent"
	ScopeGlobal    Scope = "global"
)

// DefaultTemporaryTTL is the lifetime of a temporary context when the
// caller sets none.
const DefaultTemporaryTTL = time.Hour

// maxHistory bounds the per-context change log.
const maxHistory = 50

// ScopeRank orders scopes by permissiveness; merging promotes to the wider.
func ScopeRank(s Scope) int {
	switch s {
	case ScopeTemporary:
		return 0
	case ScopeSession:
		return 1
	case ScopeAgent:
		return 2
	case ScopeGlobal:
		return 3
	default:
		return -1
	}
}

// ValidScope reports whether s is a known scope.
func ValidScope(s Scope) bool { return ScopeRank(s) >= 0 }

var (
	// ErrPathNotFound indicates a get or delete addressed a missing path.
	ErrPathNotFound = errors.New("path not found")

	// ErrPathNotTraversable indicates an intermediate path segment holds a
	// non-map value.
	ErrPathNotTraversable = errors.New("path segment is not a map")

	// ErrCrossTenantMerge indicates a merge of contexts from different
	// tenants.
	ErrCrossTenantMerge = errors.New("cannot merge contexts across tenants")
)

// ValidationError reports an invalid field on a context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// Change is one entry in a context's history.
type Change struct {
	Op        string    `json:"op"` // set | delete
	Path      string    `json:"path"`
	OldValue  any       `json:"old_value,omitempty"`
	NewValue  any       `json:"new_value,omitempty"`
	Version   int       `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ExecutionContext is the stored entity. Version increments by exactly 1 per
// successful Set or Delete.
type ExecutionContext struct {
	ID        string         `json:"id"`
	TenantID  string         `json:"tenant_id"`
	SessionID string         `json:"session_id,omitempty"`
	AgentID   string         `json:"agent_id,omitempty"`
	Scope     Scope          `json:"scope"`
	Data      map[string]any `json:"data"`
	Version   int            `json:"version"`
	CreatedBy string         `json:"created_by,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	History   []Change       `json:"history,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	ExpiresAt time.Time      `json:"expires_at,omitempty"`
}

// New creates a context at version 1. Temporary contexts get the default TTL.
func New(tenantID string, scope Scope) *ExecutionContext {
	now := time.Now()
	c := &ExecutionContext{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Scope:     scope,
		Data:      make(map[string]any),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if scope == ScopeTemporary {
		c.ExpiresAt = now.Add(DefaultTemporaryTTL)
	}
	return c
}

// Validate enforces scope rules: session scope needs a session id, agent
// scope an agent id, and every context a tenant.
func (c *ExecutionContext) Validate() error {
	if c.TenantID == "" {
		return &ValidationError{Field: "tenant_id", Message: "tenant id is required"}
	}
	if !ValidScope(c.Scope) {
		return &ValidationError{Field: "scope", Message: "unknown scope: " + string(c.Scope)}
	}
	if c.Scope == ScopeSession && c.SessionID == "" {
		return &ValidationError{Field: "session_id", Message: "session scope requires a session id"}
	}
	if c.Scope == ScopeAgent && c.AgentID == "" {
		return &ValidationError{Field: "agent_id", Message: "agent scope requires an agent id"}
	}
	return nil
}

// Expired reports whether a temporary context is past its TTL.
func (c *ExecutionContext) Expired(now time.Time) bool {
	return c.Scope == ScopeTemporary && !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Get resolves a dot path ("a.b.c") against the data map.
func (c *ExecutionContext) Get(path string) (any, bool) {
	node := any(c.Data)
	for _, seg := range strings.Split(path, ".") {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// Set writes value at a dot path, creating intermediate maps, and bumps the
// version. An intermediate segment holding a non-map value fails.
func (c *ExecutionContext) Set(path string, value any) error {
	if path == "" {
		return &ValidationError{Field: "path", Message: "path is required"}
	}
	segs := strings.Split(path, ".")
	if c.Data == nil {
		c.Data = make(map[string]any)
	}
	node := c.Data
	for _, seg := range segs[:len(segs)-1] {
		next, ok := node[seg]
		if !ok {
			m := make(map[string]any)
			node[seg] = m
			node = m
			continue
		}
		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathNotTraversable, seg)
		}
		node = m
	}
	leaf := segs[len(segs)-1]
	old := node[leaf]
	node[leaf] = value
	c.record(Change{Op: "set", Path: path, OldValue: old, NewValue: value})
	return nil
}

// Delete removes the value at a dot path and bumps the version. Deleting a
// missing path fails without a version change.
func (c *ExecutionContext) Delete(path string) error {
	segs := strings.Split(path, ".")
	node := c.Data
	for _, seg := range segs[:len(segs)-1] {
		next, ok := node[seg].(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		node = next
	}
	leaf := segs[len(segs)-1]
	old, ok := node[leaf]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	delete(node, leaf)
	c.record(Change{Op: "delete", Path: path, OldValue: old})
	return nil
}

func (c *ExecutionContext) record(change Change) {
	c.Version++
	c.UpdatedAt = time.Now()
	change.Version = c.Version
	change.Timestamp = c.UpdatedAt
	c.History = append(c.History, change)
	if len(c.History) > maxHistory {
		c.History = c.History[len(c.History)-maxHistory:]
	}
}

// ToMap returns a deep copy of the data for serialization.
func (c *ExecutionContext) ToMap() map[string]any {
	return deepCopyMap(c.Data)
}

// FromMap replaces the data wholesale without touching the version. Used
// when hydrating from storage.
func (c *ExecutionContext) FromMap(data map[string]any) {
	c.Data = deepCopyMap(data)
}

func deepCopyMap(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			out[k] = deepCopyMap(m)
		} else {
			out[k] = v
		}
	}
	return out
}
