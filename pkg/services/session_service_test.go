package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/domain"
)

func TestCreateSession_Validation(t *testing.T) {
	env := newTestEnv(t)

	t.Run("requires tenant", func(t *testing.T) {
		_, err := env.sessions.CreateSession(context.Background(), CreateSessionRequest{
			Title:         "Deploy payment pipeline",
			InitialPrompt: "do it",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects generic title", func(t *testing.T) {
		_, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
			Title:         "test",
			InitialPrompt: "do it",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects missing prompt", func(t *testing.T) {
		_, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
			Title: "Deploy payment pipeline",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects out-of-range duration", func(t *testing.T) {
		_, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
			Title:              "Deploy payment pipeline",
			InitialPrompt:      "do it",
			MaxDurationSeconds: 30,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		_, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
			Title:         "Deploy payment pipeline",
			InitialPrompt: "do it",
			Priority:      "urgent",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCreateSession_Defaults(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate data migration")
	assert.Equal(t, "pending", string(sess.Status))
	assert.Equal(t, "execution", string(sess.SessionType))
	assert.Equal(t, "medium", string(sess.Priority))
	assert.Equal(t, 3600, sess.MaxDurationSeconds)
	assert.Equal(t, 1, sess.Version)
	require.NotNil(t, sess.MetricsID)

	metrics, err := env.client.SessionMetrics.Get(env.ctx, *sess.MetricsID)
	require.NoError(t, err)
	assert.Nil(t, metrics.StartedAt)
}

func TestCreateSession_QuotaEnforced(t *testing.T) {
	env := newTestEnv(t)

	small, err := env.tenants.CreateTenant(context.Background(), CreateTenantRequest{
		Name:                  "Small Tenant",
		Slug:                  "small",
		MaxConcurrentSessions: 1,
	})
	require.NoError(t, err)
	ctx := tenantCtx(small.ID)

	_, err = env.sessions.CreateSession(ctx, CreateSessionRequest{
		Title:         "Deploy first workload",
		InitialPrompt: "go",
	})
	require.NoError(t, err)

	_, err = env.sessions.CreateSession(ctx, CreateSessionRequest{
		Title:         "Deploy second workload",
		InitialPrompt: "go",
	})
	require.Error(t, err)
	var qe *QuotaError
	require.True(t, errors.As(err, &qe))
	assert.Equal(t, "concurrent_sessions", qe.Resource)
	assert.Equal(t, 1, qe.Limit)
}

func TestVersionTrigger_IncrementsOnEveryUpdate(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate index rebuild")
	require.Equal(t, 1, sess.Version)

	err := env.client.Session.UpdateOneID(sess.ID).SetDescription("first pass").Exec(env.ctx)
	require.NoError(t, err)

	reloaded, err := env.client.Session.Get(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Version)
}

func TestSessionLifecycle_ClaimRunComplete(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate report generation")

	claimed, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, claimed.ID)
	assert.Equal(t, "queued", string(claimed.Status))
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	running, err := env.sessions.ApplyTransition(env.ctx, sess.ID, domain.SessionRunning, "worker started")
	require.NoError(t, err)
	assert.Equal(t, "running", string(running.Status))

	metrics, err := env.client.SessionMetrics.Get(env.ctx, *running.MetricsID)
	require.NoError(t, err)
	require.NotNil(t, metrics.StartedAt)

	done, err := env.sessions.CompleteSession(env.ctx, sess.ID, CompletionResult{
		SuccessRate: 0.95,
		Confidence:  0.8,
		TotalTokens: 1200,
		CostUSD:     0.42,
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", string(done.Status))

	metrics, err = env.client.SessionMetrics.Get(env.ctx, *done.MetricsID)
	require.NoError(t, err)
	require.NotNil(t, metrics.CompletedAt)
	require.NotNil(t, metrics.SuccessRate)
	assert.InDelta(t, 0.95, *metrics.SuccessRate, 0.001)
	assert.Equal(t, 1200, metrics.TotalTokens)
}

func TestClaim_OrdersByPriorityThenAge(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
		Title:         "Deploy low priority batch",
		InitialPrompt: "go",
		Priority:      "low",
	})
	require.NoError(t, err)
	critical, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
		Title:         "Deploy critical hotfix",
		InitialPrompt: "go",
		Priority:      "critical",
	})
	require.NoError(t, err)

	claimed, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, critical.ID, claimed.ID)
}

func TestClaim_NothingPending(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClaim_TakesQueuedSessionWithoutOwner(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Rebuild the search index")
	_, err := env.sessions.TransitionStatus(env.ctx, sess.ID, domain.SessionQueued, "started via API")
	require.NoError(t, err)

	claimed, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-1")
	require.NoError(t, err)
	assert.Equal(t, sess.ID, claimed.ID)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "pod-1", *claimed.PodID)

	// Owned queued sessions belong to a live worker and are not reclaimed.
	_, err = env.sessions.ClaimNextPendingSession(env.ctx, "pod-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransitionStatus_RejectsIllegalTransition(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate schema migration")

	// pending must pass through queued before running
	_, err := env.sessions.ApplyTransition(env.ctx, sess.ID, domain.SessionRunning, "")
	require.Error(t, err)
	var te *TransitionError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, "pending", te.From)
	assert.Equal(t, "running", te.To)
}

func TestCancelSession(t *testing.T) {
	env := newTestEnv(t)

	t.Run("pending becomes cancelled", func(t *testing.T) {
		sess := env.createSession(t, "Deploy cancellable batch")
		out, err := env.sessions.CancelSession(env.ctx, sess.ID, "operator request")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", string(out.Status))
	})

	t.Run("running becomes stopped", func(t *testing.T) {
		sess := env.createSession(t, "Deploy stoppable batch")
		env.runSession(t, sess.ID)
		out, err := env.sessions.CancelSession(env.ctx, sess.ID, "operator request")
		require.NoError(t, err)
		assert.Equal(t, "stopped", string(out.Status))
	})

	t.Run("completed is not cancellable", func(t *testing.T) {
		sess := env.createSession(t, "Deploy finished batch")
		env.runSession(t, sess.ID)
		_, err := env.sessions.CompleteSession(env.ctx, sess.ID, CompletionResult{SuccessRate: 1, Confidence: 1})
		require.NoError(t, err)
		_, err = env.sessions.CancelSession(env.ctx, sess.ID, "too late")
		var te *TransitionError
		require.True(t, errors.As(err, &te))
	})
}

func TestFailSession_RecordsErrorAndCountsAttempt(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate failing work")
	env.runSession(t, sess.ID)

	out, err := env.sessions.FailSession(env.ctx, sess.ID, FailureInfo{
		Message:   "model timeout",
		Source:    "external_agent",
		AgentID:   "AGENT-ext-1",
		Retryable: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "failed", string(out.Status))

	// The spent attempt is counted at failure time, and an untyped failure
	// is classed as a RuntimeError.
	metrics, err := env.client.SessionMetrics.Get(env.ctx, *out.MetricsID)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.RetryCount)
	assert.Equal(t, "RuntimeError", metrics.Error["type"])
	assert.Equal(t, "model timeout", metrics.Error["message"])
	assert.Equal(t, "external_agent", metrics.Error["source"])
	assert.Equal(t, true, metrics.Error["retryable"])
	assert.Equal(t, 1, metrics.APICalls)
	assert.Equal(t, 1, metrics.APIErrors)

	// The lifecycle stamps cascade from each transition.
	assert.NotNil(t, metrics.QueuedAt)
	assert.NotNil(t, metrics.StartedAt)
	assert.NotNil(t, metrics.FailedAt)
	assert.NotNil(t, metrics.CompletedAt)
}

func TestRetrySession(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate retryable work")
	env.runSession(t, sess.ID)

	_, err := env.checkpoints.AddCheckpoint(env.ctx, sess.ID, "phase-1", map[string]any{"step": 1})
	require.NoError(t, err)

	_, err = env.sessions.FailSession(env.ctx, sess.ID, FailureInfo{
		Message:   "agent crashed",
		Source:    "executor",
		Retryable: true,
	})
	require.NoError(t, err)

	out, err := env.sessions.RetrySession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(out.Status))
	assert.Nil(t, out.PodID)
	assert.Nil(t, out.LastHeartbeatAt)

	// Retrying does not count a second attempt; FailSession already did.
	metrics, err := env.client.SessionMetrics.Get(env.ctx, *out.MetricsID)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.RetryCount)
}

func TestRetrySession_BudgetExhausted(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate flapping work")
	env.runSession(t, sess.ID)
	_, err := env.checkpoints.AddCheckpoint(env.ctx, sess.ID, "phase-1", map[string]any{"step": 1})
	require.NoError(t, err)

	for attempt := 1; attempt <= 2; attempt++ {
		_, err = env.sessions.FailSession(env.ctx, sess.ID, FailureInfo{Message: "flaky agent", Retryable: true})
		require.NoError(t, err)
		_, err = env.sessions.RetrySession(env.ctx, sess.ID)
		require.NoError(t, err)
		env.runSession(t, sess.ID)
	}

	// The third failure spends the last attempt of the budget.
	out, err := env.sessions.FailSession(env.ctx, sess.ID, FailureInfo{Message: "flaky agent", Retryable: true})
	require.NoError(t, err)
	metrics, err := env.client.SessionMetrics.Get(env.ctx, *out.MetricsID)
	require.NoError(t, err)
	assert.Equal(t, 3, metrics.RetryCount)

	_, err = env.sessions.RetrySession(env.ctx, sess.ID)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRetrySession_RequiresCheckpoint(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate unrecoverable work")
	env.runSession(t, sess.ID)
	_, err := env.sessions.FailSession(env.ctx, sess.ID, FailureInfo{Message: "boom"})
	require.NoError(t, err)

	_, err = env.sessions.RetrySession(env.ctx, sess.ID)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestParentChildSessions(t *testing.T) {
	env := newTestEnv(t)

	parent := env.createSession(t, "Orchestrate release train")
	child, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
		Title:         "Orchestrate release step one",
		InitialPrompt: "go",
		ParentID:      parent.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, parent.ID, *child.ParentID)

	// child_ids is maintained by the database trigger
	reloaded, err := env.client.Session.Get(env.ctx, parent.ID)
	require.NoError(t, err)
	assert.Contains(t, reloaded.ChildIds, child.ID)
}

func TestParentChildSessions_ReparentAndSoftDelete(t *testing.T) {
	env := newTestEnv(t)

	oldParent := env.createSession(t, "Orchestrate release train alpha")
	newParent := env.createSession(t, "Orchestrate release train beta")
	child, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
		Title:         "Orchestrate movable release step",
		InitialPrompt: "go",
		ParentID:      oldParent.ID,
	})
	require.NoError(t, err)

	// Re-parenting moves the id between the denormalized arrays.
	err = env.client.Session.UpdateOneID(child.ID).SetParentID(newParent.ID).Exec(env.ctx)
	require.NoError(t, err)

	was, err := env.client.Session.Get(env.ctx, oldParent.ID)
	require.NoError(t, err)
	assert.NotContains(t, was.ChildIds, child.ID)

	now, err := env.client.Session.Get(env.ctx, newParent.ID)
	require.NoError(t, err)
	assert.Contains(t, now.ChildIds, child.ID)

	// Soft deleting the child withdraws it from its parent.
	_, err = env.sessions.CancelSession(env.ctx, child.ID, "cleanup")
	require.NoError(t, err)
	require.NoError(t, env.sessions.DeleteSession(env.ctx, child.ID))

	now, err = env.client.Session.Get(env.ctx, newParent.ID)
	require.NoError(t, err)
	assert.NotContains(t, now.ChildIds, child.ID)
}

func TestParentChildSessions_DepthBound(t *testing.T) {
	env := newTestEnv(t)

	parentID := ""
	var lastErr error
	for i := 0; i < MaxTreeDepth+1; i++ {
		sess, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
			Title:         "Orchestrate nested level work",
			InitialPrompt: "go",
			ParentID:      parentID,
		})
		if err != nil {
			lastErr = err
			break
		}
		parentID = sess.ID
	}
	require.Error(t, lastErr)
	assert.True(t, IsValidationError(lastErr))
}

func TestParentChild_UnknownParent(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
		Title:         "Orchestrate orphan child",
		InitialPrompt: "go",
		ParentID:      "no-such-session",
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestSoftDeleteAndRestore(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate disposable work")
	env.runSession(t, sess.ID)
	_, err := env.sessions.CompleteSession(env.ctx, sess.ID, CompletionResult{SuccessRate: 1, Confidence: 1})
	require.NoError(t, err)

	require.NoError(t, env.sessions.DeleteSession(env.ctx, sess.ID))

	_, err = env.sessions.GetSession(env.ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.sessions.RestoreSession(env.ctx, sess.ID))
	restored, err := env.sessions.GetSession(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, restored.ID)
}

func TestDeleteSession_RejectsActive(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate protected work")
	err := env.sessions.DeleteSession(env.ctx, sess.ID)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestFindOrphanedSessions(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate doomed work")
	claimed, err := env.sessions.ClaimNextPendingSession(env.ctx, "pod-dead")
	require.NoError(t, err)
	require.Equal(t, sess.ID, claimed.ID)

	// Age the heartbeat past the threshold.
	err = env.client.Session.UpdateOneID(sess.ID).
		SetLastHeartbeatAt(time.Now().Add(-time.Hour)).
		Exec(env.ctx)
	require.NoError(t, err)

	orphans, err := env.sessions.FindOrphanedSessions(env.ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)

	require.NoError(t, env.sessions.MarkOrphaned(env.ctx, orphans[0]))
	reloaded, err := env.client.Session.Get(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "orphaned", string(reloaded.Status))
	assert.Nil(t, reloaded.PodID)
}

func TestListSessions_Filtering(t *testing.T) {
	env := newTestEnv(t)

	env.createSession(t, "Orchestrate list target one")
	env.createSession(t, "Orchestrate list target two")

	list, err := env.sessions.ListSessions(env.ctx, SessionFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.TotalCount)
	assert.Len(t, list.Sessions, 2)

	list, err = env.sessions.ListSessions(env.ctx, SessionFilters{Status: "running"})
	require.NoError(t, err)
	assert.Equal(t, 0, list.TotalCount)
}

func TestSearchSessions(t *testing.T) {
	env := newTestEnv(t)

	target := env.createSession(t, "Migrate billing ledger to postgres")
	env.createSession(t, "Deploy unrelated workload")

	found, err := env.sessions.SearchSessions(env.ctx, "billing ledger", 10)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, target.ID, found[0].ID)
}

func TestGetSessionTree(t *testing.T) {
	env := newTestEnv(t)

	root := env.createSession(t, "Orchestrate tree root")
	childA, err := env.sessions.CreateSession(env.ctx, CreateSessionRequest{
		Title: "Orchestrate tree child a", InitialPrompt: "go", ParentID: root.ID,
	})
	require.NoError(t, err)
	_, err = env.sessions.CreateSession(env.ctx, CreateSessionRequest{
		Title: "Orchestrate tree grandchild", InitialPrompt: "go", ParentID: childA.ID,
	})
	require.NoError(t, err)

	tree, err := env.sessions.GetSessionTree(env.ctx, root.ID)
	require.NoError(t, err)
	require.Len(t, tree.Children, 1)
	require.Len(t, tree.Children[0].Children, 1)
}

func TestHeartbeat(t *testing.T) {
	env := newTestEnv(t)

	sess := env.createSession(t, "Orchestrate heartbeat target")
	require.NoError(t, env.sessions.Heartbeat(env.ctx, sess.ID))

	reloaded, err := env.client.Session.Get(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.NotNil(t, reloaded.LastHeartbeatAt)

	assert.ErrorIs(t, env.sessions.Heartbeat(env.ctx, "missing"), ErrNotFound)
}
