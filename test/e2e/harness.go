// Package e2e spins up the full orchestrator stack — database, Redis locks,
// agent registry, worker pool, and the HTTP API — against an in-process
// execution port, and drives it through the public API only.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/api"
	"github.com/maestro-hq/maestro/pkg/config"
	"github.com/maestro-hq/maestro/pkg/executil"
	"github.com/maestro-hq/maestro/pkg/executor"
	"github.com/maestro-hq/maestro/pkg/lock"
	"github.com/maestro-hq/maestro/pkg/queue"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/router"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// scriptedPort is the in-process ExecutionPort. Execute consults the script
// function; a nil script completes immediately with a canned result.
type scriptedPort struct {
	script func(ctx context.Context, sessionID string) (*executil.Result, error)
}

func (p *scriptedPort) Execute(ctx context.Context, sessionID, prompt, model, additionalPrompt string) (*executil.Result, error) {
	if p.script != nil {
		return p.script(ctx, sessionID)
	}
	return &executil.Result{
		ExecutionID: "exec-" + sessionID,
		Changes: []executil.FileChange{{
			Path:       "main.go",
			ChangeType: "modified",
			Patch:      "diff --git a/main.go b/main.go",
		}},
		DurationMS:  150,
		TokensUsed:  900,
		CostUSD:     0.3,
	}, nil
}

func (p *scriptedPort) Close() error { return nil }

// harness is one fully wired orchestrator replica.
type harness struct {
	tenantID string
	engine   *gin.Engine
	pool     *queue.WorkerPool
	registry *registry.Registry
}

// newHarness boots the stack with fast polling so tests settle quickly.
func newHarness(t *testing.T, port *scriptedPort) *harness {
	t.Helper()
	ctx := context.Background()
	client, _ := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	locks := lock.NewManager(rdb, "pod-e2e")
	reg := registry.NewRegistry(rdb, nil)

	tenants := services.NewTenantService(client)
	tenant, err := tenants.CreateTenant(ctx, services.CreateTenantRequest{
		Name:                  "E2E Tenant",
		Slug:                  "e2e-tenant",
		MaxConcurrentSessions: 10,
	})
	require.NoError(t, err)

	sessions := services.NewSessionService(client, tenants, locks, nil)
	exec := executor.NewSessionExecutor(sessions, reg, nil, port, locks, nil)

	cfg := &config.Orchestration{
		PodID:                   "pod-e2e",
		WorkerCount:             2,
		MaxConcurrentSessions:   5,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      5 * time.Millisecond,
		HeartbeatInterval:       50 * time.Millisecond,
		GracefulShutdownTimeout: 5 * time.Second,
		OrphanDetectionInterval: time.Hour,
		OrphanThreshold:         time.Minute,
	}
	pool := queue.NewWorkerPool("pod-e2e", client, sessions, cfg, exec)
	require.NoError(t, pool.Start(ctx))
	t.Cleanup(pool.Stop)

	server := api.NewServer(api.Deps{
		Client:      client,
		Tenants:     tenants,
		Sessions:    sessions,
		Checkpoints: services.NewCheckpointService(client, nil),
		Tasks:       services.NewTaskService(client, nil),
		Contexts:    services.NewContextService(client),
		FineTuning:  services.NewFineTuningService(client, locks),
		Registry:    reg,
		Router:      router.NewRouter(reg, nil),
		Pool:        pool,
	})

	return &harness{
		tenantID: tenant.ID,
		engine:   server.Routes(),
		pool:     pool,
		registry: reg,
	}
}

// do runs one tenant-scoped request through the API.
func (h *harness) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Tenant-ID", h.tenantID)
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)
	return rec
}

func (h *harness) body(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// registerAgent registers an internal implementer through the API.
func (h *harness) registerAgent(t *testing.T, name string) string {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/v1/agents", gin.H{
		"name":                 name,
		"type":                 "implementer",
		"capabilities":         []string{"code_generation"},
		"max_concurrent_tasks": 4,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return h.body(t, rec)["id"].(string)
}

// createSession posts a session wired to the named agent and starts it.
func (h *harness) createSession(t *testing.T, title, agentName string) string {
	t.Helper()
	rec := h.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
		"title":          title,
		"initial_prompt": "Orchestrate the work described by " + title,
		"agent_config":   gin.H{"default_agent": agentName},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	id := h.body(t, rec)["id"].(string)

	rec = h.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/start", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return id
}

// waitForStatus polls the API until the session reaches the wanted status.
func (h *harness) waitForStatus(t *testing.T, sessionID, want string) {
	t.Helper()
	require.Eventually(t, func() bool {
		rec := h.do(t, http.MethodGet, "/api/v1/sessions/"+sessionID, nil)
		if rec.Code != http.StatusOK {
			return false
		}
		return h.body(t, rec)["status"] == want
	}, 10*time.Second, 25*time.Millisecond, "session %s never reached %s", sessionID, want)
}
