package e2e

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/executil"
)

func TestSessionRunsToCompletion(t *testing.T) {
	h := newHarness(t, &scriptedPort{})
	agentName := "AGENT-e2e-impl"
	h.registerAgent(t, agentName)

	id := h.createSession(t, "Migrate the billing exporter", agentName)
	h.waitForStatus(t, id, "completed")

	rec := h.do(t, http.MethodGet, "/api/v1/sessions/"+id+"?include_metrics=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := h.body(t, rec)
	metrics, ok := body["metrics"].(map[string]any)
	require.True(t, ok, "metrics missing: %v", body)
	assert.EqualValues(t, 900, metrics["total_tokens"])

	// Agent accounting settled back to idle with one success on record.
	agent, err := h.registry.GetByName(agentName)
	require.NoError(t, err)
	assert.Equal(t, 0, agent.CurrentTasks)
	assert.Equal(t, 1, agent.Metrics.SuccessfulTasks)
}

func TestSessionWithoutAgentFails(t *testing.T) {
	h := newHarness(t, &scriptedPort{})

	id := h.createSession(t, "Session with no registered agent", "AGENT-missing")
	h.waitForStatus(t, id, "failed")
}

func TestCancelRunningSession(t *testing.T) {
	started := make(chan struct{}, 1)
	h := newHarness(t, &scriptedPort{
		script: func(ctx context.Context, sessionID string) (*executil.Result, error) {
			select {
			case started <- struct{}{}:
			default:
			}
			<-ctx.Done()
			return nil, ctx.Err()
		},
	})
	agentName := "AGENT-e2e-blocker"
	h.registerAgent(t, agentName)

	id := h.createSession(t, "Long-running refactor to interrupt", agentName)
	select {
	case <-started:
	case <-time.After(10 * time.Second):
		t.Fatal("execution never started")
	}

	rec := h.do(t, http.MethodPost, "/api/v1/sessions/"+id+"/cancel", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	h.waitForStatus(t, id, "stopped")
}

func TestPoolHealthThroughAPI(t *testing.T) {
	h := newHarness(t, &scriptedPort{})

	rec := h.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := h.body(t, rec)
	assert.Equal(t, "healthy", body["status"])

	pool, ok := body["pool"].(map[string]any)
	require.True(t, ok, "pool health missing: %v", body)
	assert.EqualValues(t, 2, pool["worker_count"])
}
