package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/ent/checkpoint"
)

func TestAddCheckpoint_SequenceOrder(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate checkpointed work")
	env.runSession(t, sess.ID)

	first, err := env.checkpoints.AddCheckpoint(env.ctx, sess.ID, "init", map[string]any{"step": 0})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Sequence)

	second, err := env.checkpoints.AddCheckpoint(env.ctx, sess.ID, "halfway", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Sequence)

	list, err := env.checkpoints.ListCheckpoints(env.ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "init", list[0].Name)
	assert.Equal(t, "halfway", list[1].Name)

	latest, err := env.checkpoints.LatestCheckpoint(env.ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)
}

func TestListCheckpoints_CapsReadNotStorage(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate long-running work")
	env.runSession(t, sess.ID)

	total := MaxCheckpointsPerSession + 5
	for i := 1; i <= total; i++ {
		_, err := env.checkpoints.AddCheckpoint(env.ctx, sess.ID, fmt.Sprintf("step-%d", i), nil)
		require.NoError(t, err)
	}

	// Reads materialize only the most recent window.
	list, err := env.checkpoints.ListCheckpoints(env.ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, list, MaxCheckpointsPerSession)
	assert.Equal(t, 6, list[0].Sequence)
	assert.Equal(t, total, list[len(list)-1].Sequence)

	// Storage keeps the full history.
	count, err := env.client.Checkpoint.Query().
		Where(checkpoint.SessionIDEQ(sess.ID)).
		Count(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, total, count)

	metrics, err := env.client.SessionMetrics.Get(env.ctx, *sess.MetricsID)
	require.NoError(t, err)
	assert.Equal(t, total, metrics.CheckpointCount)
}

func TestAddCheckpoint_TerminalSessionRejected(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate finished work")
	env.runSession(t, sess.ID)
	_, err := env.sessions.CompleteSession(env.ctx, sess.ID, CompletionResult{SuccessRate: 1, Confidence: 1})
	require.NoError(t, err)

	_, err = env.checkpoints.AddCheckpoint(env.ctx, sess.ID, "too-late", nil)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestAddCheckpoint_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.checkpoints.AddCheckpoint(env.ctx, "missing", "x", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLatestCheckpoint_Empty(t *testing.T) {
	env := newTestEnv(t)
	sess := env.createSession(t, "Orchestrate unsaved work")
	_, err := env.checkpoints.LatestCheckpoint(env.ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
