package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantMiddleware(t *testing.T) {
	env := newAPIEnv(t)

	t.Run("missing header", func(t *testing.T) {
		rec := env.doWithHeaders(t, http.MethodGet, "/api/v1/sessions", nil, nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec)["error"], "X-Tenant-ID")
	})

	t.Run("malformed header", func(t *testing.T) {
		rec := env.doWithHeaders(t, http.MethodGet, "/api/v1/sessions", nil,
			map[string]string{TenantHeader: "not-a-uuid"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec)["error"], "UUID")
	})

	t.Run("valid header", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/sessions", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("health is unauthenticated", func(t *testing.T) {
		rec := env.doWithHeaders(t, http.MethodGet, "/health", nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSessionLifecycleViaAPI(t *testing.T) {
	env := newAPIEnv(t)

	id := env.createSessionViaAPI(t, "Ship the payments reconciler")

	rec := env.do(t, http.MethodGet, "/api/v1/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, env.tenant.ID, body["tenant_id"])

	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "queued", decode(t, rec)["status"])

	// queued cannot complete; the transition conflict maps to 409.
	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/complete",
		gin.H{"success_rate": 1.0, "confidence": 0.9})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cancelled", decode(t, rec)["status"])
}

func TestSessionValidationErrors(t *testing.T) {
	env := newAPIEnv(t)

	t.Run("missing required fields", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions", gin.H{"title": "No prompt"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("generic title rejected", func(t *testing.T) {
		rec := env.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
			"title":          "test",
			"initial_prompt": "A prompt long enough to pass shape validation",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "title", decode(t, rec)["field"])
	})

	t.Run("unknown session 404", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/sessions/does-not-exist", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCheckpointEndpoints(t *testing.T) {
	env := newAPIEnv(t)
	id := env.createSessionViaAPI(t, "Index the audit trail")

	rec := env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/checkpoints",
		gin.H{"name": "phase-1", "data": gin.H{"cursor": 42}})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/checkpoints",
		gin.H{"name": "phase-2"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/checkpoints", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, decode(t, rec)["count"])

	rec = env.do(t, http.MethodGet, "/api/v1/sessions/"+id+"/checkpoints?latest=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "phase-2", decode(t, rec)["name"])
}

func TestTaskEndpoints(t *testing.T) {
	env := newAPIEnv(t)
	sessionID := env.createSessionViaAPI(t, "Build the ingest pipeline")

	rec := env.do(t, http.MethodPost, "/api/v1/tasks", gin.H{
		"session_id":            sessionID,
		"title":                 "Implement the schema parser",
		"required_capabilities": []string{"code_generation"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	first := decode(t, rec)["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/tasks", gin.H{
		"session_id": sessionID,
		"title":      "Write parser integration tests",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	second := decode(t, rec)["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/tasks/"+second+"/dependencies",
		gin.H{"depends_on_id": first})
	require.Equal(t, http.StatusNoContent, rec.Code)

	// The reverse edge would close a cycle.
	rec = env.do(t, http.MethodPost, "/api/v1/tasks/"+first+"/dependencies",
		gin.H{"depends_on_id": second})
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID+"/tasks/ready", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ready := decode(t, rec)["tasks"].([]any)
	require.Len(t, ready, 1)
	assert.Equal(t, first, ready[0].(map[string]any)["id"])

	rec = env.do(t, http.MethodDelete, "/api/v1/tasks/"+second+"/dependencies/"+first, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID+"/tasks", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode(t, rec)["tasks"], 2)
}

func TestAgentEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/agents", gin.H{
		"name":                 "AGENT-codegen-1",
		"type":                 "implementer",
		"capabilities":         []string{"code_generation", "test_generation"},
		"max_concurrent_tasks": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	agentID := body["id"].(string)
	assert.Equal(t, env.tenant.ID, body["tenant_id"])

	rec = env.do(t, http.MethodGet, "/api/v1/agents", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, decode(t, rec)["count"])

	rec = env.do(t, http.MethodPost, "/api/v1/agents/"+agentID+"/heartbeat", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/v1/agents/route", gin.H{
		"required_capabilities": []string{"code_generation"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	routed := decode(t, rec)
	assert.Equal(t, agentID, routed["agent"].(map[string]any)["id"])

	rec = env.do(t, http.MethodPost, "/api/v1/agents/route", gin.H{
		"required_capabilities": []string{"security_audit"},
	})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/agents/"+agentID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/agents/"+agentID, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExternalAgentProtocol(t *testing.T) {
	env := newAPIEnv(t)

	// Registration needs no tenant header; the body names the tenant.
	rec := env.doWithHeaders(t, http.MethodPost, "/api/v1/agents/external/register", gin.H{
		"name":         "AGENT-external-review",
		"type":         "reviewer",
		"capabilities": []string{"code_review"},
		"endpoint_url": "https://agents.example.com/review",
		"tenant_id":    env.tenant.ID,
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	agentID := body["agent_id"].(string)
	token := body["auth_token"].(string)
	require.NotEmpty(t, token)

	t.Run("heartbeat with token", func(t *testing.T) {
		rec := env.doWithHeaders(t, http.MethodPost,
			"/api/v1/agents/external/"+agentID+"/heartbeat",
			gin.H{"status": "available", "current_load": 1},
			map[string]string{"X-Agent-Token": token})
		require.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("heartbeat with wrong token", func(t *testing.T) {
		rec := env.doWithHeaders(t, http.MethodPost,
			"/api/v1/agents/external/"+agentID+"/heartbeat",
			gin.H{"status": "available"},
			map[string]string{"X-Agent-Token": "wrong"})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token never echoed", func(t *testing.T) {
		rec := env.do(t, http.MethodGet, "/api/v1/agents/"+agentID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		meta := decode(t, rec)["metadata"].(map[string]any)
		assert.NotContains(t, meta, "auth_token")
		assert.Equal(t, "true", meta["is_external"])
	})
}

func TestContextEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.do(t, http.MethodPost, "/api/v1/contexts", gin.H{
		"scope": "global",
		"data":  gin.H{"style": gin.H{"language": "go"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode(t, rec)["id"].(string)

	rec = env.do(t, http.MethodPost, "/api/v1/contexts/"+id+"/values",
		gin.H{"path": "style.linter", "value": "golangci-lint"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/contexts/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/contexts/"+id, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/contexts/"+id, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTenantAdminEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	rec := env.doWithHeaders(t, http.MethodPost, "/admin/tenants", gin.H{
		"name": "Acme Robotics",
		"slug": "acme-robotics",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := decode(t, rec)["id"].(string)

	rec = env.doWithHeaders(t, http.MethodGet, "/admin/tenants/acme-robotics", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, id, decode(t, rec)["id"])

	rec = env.doWithHeaders(t, http.MethodPut, "/admin/tenants/"+id+"/limits", gin.H{
		"max_concurrent_sessions": 3,
		"max_tokens_per_month":    1000000,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	t.Run("duplicate slug conflicts", func(t *testing.T) {
		rec := env.doWithHeaders(t, http.MethodPost, "/admin/tenants", gin.H{
			"name": "Acme Again",
			"slug": "acme-robotics",
		}, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
	})
}
