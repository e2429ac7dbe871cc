package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent"
	"github.com/maestro-hq/maestro/pkg/registry"
	"github.com/maestro-hq/maestro/pkg/router"
	"github.com/maestro-hq/maestro/pkg/services"
	"github.com/maestro-hq/maestro/test/util"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// apiEnv is a full HTTP stack over an isolated database schema and a
// miniredis-backed registry.
type apiEnv struct {
	client   *ent.Client
	tenant   *ent.Tenant
	registry *registry.Registry
	engine   *gin.Engine
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	reg := registry.NewRegistry(rdb, nil)

	tenants := services.NewTenantService(client)
	tenant, err := tenants.CreateTenant(context.Background(), services.CreateTenantRequest{
		Name:                  "API Tenant",
		Slug:                  "api-tenant",
		MaxConcurrentSessions: 50,
	})
	require.NoError(t, err)

	server := NewServer(Deps{
		Client:      client,
		Tenants:     tenants,
		Sessions:    services.NewSessionService(client, tenants, nil, nil),
		Checkpoints: services.NewCheckpointService(client, nil),
		Tasks:       services.NewTaskService(client, nil),
		Contexts:    services.NewContextService(client),
		FineTuning:  services.NewFineTuningService(client, nil),
		Registry:    reg,
		Router:      router.NewRouter(reg, nil),
	})

	return &apiEnv{
		client:   client,
		tenant:   tenant,
		registry: reg,
		engine:   server.Routes(),
	}
}

// do runs one request through the engine with the env tenant header set.
func (e *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return e.doWithHeaders(t, method, path, body, map[string]string{TenantHeader: e.tenant.ID})
}

// doWithHeaders runs one request with explicit headers only.
func (e *apiEnv) doWithHeaders(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.engine.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a JSON response body into a generic map.
func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

// createSessionViaAPI posts a minimal valid session and returns its id.
func (e *apiEnv) createSessionViaAPI(t *testing.T, title string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/api/v1/sessions", gin.H{
		"title":          title,
		"initial_prompt": "Orchestrate the work described by " + title,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode(t, rec)["id"].(string)
}
