package contextstore

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// MergeStrategy selects how conflicting keys resolve during Merge.
type MergeStrategy string

// Merge strategies.
const (
	LastWriteWins MergeStrategy = "last_write_wins"
	DeepMerge     MergeStrategy = "deep_merge"
	PreferSource  MergeStrategy = "prefer_source"
	PreferTarget  MergeStrategy = "prefer_target"
	Manual        MergeStrategy = "manual"
)

// MergeResult carries the merged context plus the keys both sides defined
// with different values. With the manual strategy the conflicts are the
// caller's to resolve; the merged value still uses the target's side.
type MergeResult struct {
	Context   *ExecutionContext
	Conflicts []string
}

// Merge combines target and source into a new context. Cross-tenant merges
// are rejected; the result's scope is the more permissive of the two.
func Merge(target, source *ExecutionContext, strategy MergeStrategy) (*MergeResult, error) {
	if target.TenantID != source.TenantID {
		return nil, fmt.Errorf("%w: %s vs %s", ErrCrossTenantMerge, target.TenantID, source.TenantID)
	}

	sourceWins, err := sourceWinsConflicts(target, source, strategy)
	if err != nil {
		return nil, err
	}

	conflicts := []string{}
	var data map[string]any
	if strategy == DeepMerge {
		data = deepMergeMaps(deepCopyMap(target.Data), source.Data, "", &conflicts)
	} else {
		data = deepCopyMap(target.Data)
		for k, sv := range source.Data {
			tv, exists := data[k]
			if exists && !equalValue(tv, sv) {
				conflicts = append(conflicts, k)
				if sourceWins {
					data[k] = copyValue(sv)
				}
			} else if !exists {
				data[k] = copyValue(sv)
			}
		}
	}
	sort.Strings(conflicts)

	scope := target.Scope
	if ScopeRank(source.Scope) > ScopeRank(scope) {
		scope = source.Scope
	}

	now := time.Now()
	merged := &ExecutionContext{
		ID:        uuid.New().String(),
		TenantID:  target.TenantID,
		SessionID: firstNonEmpty(target.SessionID, source.SessionID),
		AgentID:   firstNonEmpty(target.AgentID, source.AgentID),
		Scope:     scope,
		Data:      data,
		Version:   1,
		CreatedBy: target.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if scope == ScopeTemporary {
		merged.ExpiresAt = now.Add(DefaultTemporaryTTL)
	}
	return &MergeResult{Context: merged, Conflicts: conflicts}, nil
}

func sourceWinsConflicts(target, source *ExecutionContext, strategy MergeStrategy) (bool, error) {
	switch strategy {
	case PreferSource:
		return true, nil
	case PreferTarget, Manual:
		return false, nil
	case LastWriteWins:
		return source.UpdatedAt.After(target.UpdatedAt), nil
	case DeepMerge:
		return true, nil
	default:
		return false, &ValidationError{Field: "strategy", Message: "unknown merge strategy: " + string(strategy)}
	}
}

// deepMergeMaps merges src into dst recursively. Nested maps merge key by
// key; conflicting leaves take the source value and are recorded.
func deepMergeMaps(dst, src map[string]any, prefix string, conflicts *[]string) map[string]any {
	for k, sv := range src {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		dv, exists := dst[k]
		if !exists {
			dst[k] = copyValue(sv)
			continue
		}
		dm, dok := dv.(map[string]any)
		sm, sok := sv.(map[string]any)
		if dok && sok {
			dst[k] = deepMergeMaps(dm, sm, path, conflicts)
			continue
		}
		if !equalValue(dv, sv) {
			*conflicts = append(*conflicts, path)
			dst[k] = copyValue(sv)
		}
	}
	return dst
}

func copyValue(v any) any {
	if m, ok := v.(map[string]any); ok {
		return deepCopyMap(m)
	}
	return v
}

func equalValue(a, b any) bool {
	return fmt.Sprintf("%#v", a) == fmt.Sprintf("%#v", b)
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
