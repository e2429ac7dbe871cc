package contextstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotPathAccess(t *testing.T) {
	c := New("t1", ScopeGlobal)

	require.NoError(t, c.Set("build.target.os", "linux"))
	require.NoError(t, c.Set("build.target.arch", "arm64"))
	require.NoError(t, c.Set("build.verbose", true))

	v, ok := c.Get("build.target.os")
	require.True(t, ok)
	assert.Equal(t, "linux", v)

	sub, ok := c.Get("build.target")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"os": "linux", "arch": "arm64"}, sub)

	_, ok = c.Get("build.missing")
	assert.False(t, ok)
	_, ok = c.Get("build.verbose.nested")
	assert.False(t, ok)
}

func TestSetThroughNonMapFails(t *testing.T) {
	c := New("t1", ScopeGlobal)
	require.NoError(t, c.Set("leaf", 42))

	err := c.Set("leaf.child", 1)
	assert.ErrorIs(t, err, ErrPathNotTraversable)
}

func TestVersionIncrementsPerMutation(t *testing.T) {
	c := New("t1", ScopeGlobal)
	assert.Equal(t, 1, c.Version)

	require.NoError(t, c.Set("a", 1))
	assert.Equal(t, 2, c.Version)
	require.NoError(t, c.Set("a", 2))
	assert.Equal(t, 3, c.Version)
	require.NoError(t, c.Delete("a"))
	assert.Equal(t, 4, c.Version)

	// failed delete leaves the version alone
	assert.Error(t, c.Delete("a"))
	assert.Equal(t, 4, c.Version)
}

func TestChangeHistory(t *testing.T) {
	c := New("t1", ScopeGlobal)
	require.NoError(t, c.Set("k", "v1"))
	require.NoError(t, c.Set("k", "v2"))
	require.NoError(t, c.Delete("k"))

	require.Len(t, c.History, 3)
	assert.Equal(t, "set", c.History[0].Op)
	assert.Equal(t, "v1", c.History[1].OldValue)
	assert.Equal(t, "v2", c.History[1].NewValue)
	assert.Equal(t, "delete", c.History[2].Op)
	assert.Equal(t, c.Version, c.History[2].Version)
}

func TestHistoryBounded(t *testing.T) {
	c := New("t1", ScopeGlobal)
	for i := 0; i < maxHistory+20; i++ {
		require.NoError(t, c.Set("k", i))
	}
	assert.Len(t, c.History, maxHistory)
	assert.Equal(t, c.Version, c.History[len(c.History)-1].Version)
}

func TestScopeValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExecutionContext)
		field  string
	}{
		{"missing tenant", func(c *ExecutionContext) { c.TenantID = "" }, "tenant_id"},
		{"unknown scope", func(c *ExecutionContext) { c.Scope = "universe" }, "scope"},
		{"session scope without session", func(c *ExecutionContext) { c.Scope = ScopeSession }, "session_id"},
		{"agent scope without agent", func(c *ExecutionContext) { c.Scope = ScopeAgent }, "agent_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("t1", ScopeGlobal)
			tt.mutate(c)
			err := c.Validate()
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	valid := New("t1", ScopeSession)
	valid.SessionID = "s1"
	assert.NoError(t, valid.Validate())
}

func TestTemporaryTTL(t *testing.T) {
	c := New("t1", ScopeTemporary)
	assert.False(t, c.Expired(time.Now()))
	assert.True(t, c.Expired(time.Now().Add(2*time.Hour)))

	global := New("t1", ScopeGlobal)
	assert.False(t, global.Expired(time.Now().Add(48*time.Hour)))
}

func TestToMapFromMapRoundTrip(t *testing.T) {
	c := New("t1", ScopeGlobal)
	require.NoError(t, c.Set("a.b", 1))
	require.NoError(t, c.Set("a.c", "x"))

	m := c.ToMap()
	other := New("t1", ScopeGlobal)
	other.FromMap(m)
	assert.Equal(t, m, other.ToMap())

	// the copy is detached from the original
	m["a"].(map[string]any)["b"] = 99
	v, _ := c.Get("a.b")
	assert.Equal(t, 1, v)
}
