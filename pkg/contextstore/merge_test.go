package contextstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergePair(t *testing.T) (*ExecutionContext, *ExecutionContext) {
	t.Helper()
	target := New("t1", ScopeSession)
	target.SessionID = "s1"
	require.NoError(t, target.Set("shared", "target"))
	require.NoError(t, target.Set("only_target", 1))

	source := New("t1", ScopeAgent)
	source.AgentID = "a1"
	require.NoError(t, source.Set("shared", "source"))
	require.NoError(t, source.Set("only_source", 2))
	return target, source
}

func TestMergeCrossTenantRejected(t *testing.T) {
	target := New("t1", ScopeGlobal)
	source := New("t2", ScopeGlobal)
	_, err := Merge(target, source, PreferSource)
	assert.ErrorIs(t, err, ErrCrossTenantMerge)
}

func TestMergePreferStrategies(t *testing.T) {
	target, source := mergePair(t)

	res, err := Merge(target, source, PreferSource)
	require.NoError(t, err)
	v, _ := res.Context.Get("shared")
	assert.Equal(t, "source", v)
	assert.Equal(t, []string{"shared"}, res.Conflicts)

	res, err = Merge(target, source, PreferTarget)
	require.NoError(t, err)
	v, _ = res.Context.Get("shared")
	assert.Equal(t, "target", v)

	// non-conflicting keys always carry over
	v, _ = res.Context.Get("only_target")
	assert.Equal(t, 1, v)
	v, _ = res.Context.Get("only_source")
	assert.Equal(t, 2, v)
}

func TestMergeLastWriteWins(t *testing.T) {
	target, source := mergePair(t)

	source.UpdatedAt = time.Now().Add(time.Minute)
	res, err := Merge(target, source, LastWriteWins)
	require.NoError(t, err)
	v, _ := res.Context.Get("shared")
	assert.Equal(t, "source", v)

	source.UpdatedAt = target.UpdatedAt.Add(-time.Minute)
	res, err = Merge(target, source, LastWriteWins)
	require.NoError(t, err)
	v, _ = res.Context.Get("shared")
	assert.Equal(t, "target", v)
}

func TestMergeManualRecordsConflicts(t *testing.T) {
	target, source := mergePair(t)

	res, err := Merge(target, source, Manual)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, res.Conflicts)
	// manual still yields a merged value, holding the target's side
	v, _ := res.Context.Get("shared")
	assert.Equal(t, "target", v)
}

func TestMergeDeepMerge(t *testing.T) {
	target := New("t1", ScopeGlobal)
	require.NoError(t, target.Set("cfg.retries", 3))
	require.NoError(t, target.Set("cfg.backoff", "linear"))

	source := New("t1", ScopeGlobal)
	require.NoError(t, source.Set("cfg.backoff", "exponential"))
	require.NoError(t, source.Set("cfg.jitter", true))

	res, err := Merge(target, source, DeepMerge)
	require.NoError(t, err)

	v, _ := res.Context.Get("cfg.retries")
	assert.Equal(t, 3, v)
	v, _ = res.Context.Get("cfg.jitter")
	assert.Equal(t, true, v)
	v, _ = res.Context.Get("cfg.backoff")
	assert.Equal(t, "exponential", v)
	assert.Equal(t, []string{"cfg.backoff"}, res.Conflicts)
}

func TestMergeScopePromotion(t *testing.T) {
	tests := []struct {
		a, b, want Scope
	}{
		{ScopeTemporary, ScopeSession, ScopeSession},
		{ScopeSession, ScopeAgent, ScopeAgent},
		{ScopeAgent, ScopeGlobal, ScopeGlobal},
		{ScopeGlobal, ScopeTemporary, ScopeGlobal},
	}
	for _, tt := range tests {
		target := New("t1", tt.a)
		target.SessionID = "s1"
		target.AgentID = "a1"
		source := New("t1", tt.b)
		source.SessionID = "s1"
		source.AgentID = "a1"

		res, err := Merge(target, source, PreferTarget)
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Context.Scope)
	}
}

func TestMergeUnknownStrategy(t *testing.T) {
	target, source := mergePair(t)
	_, err := Merge(target, source, "coin_flip")
	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}
