package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maestro-hq/maestro/pkg/domain"
)

func TestFineTuningJob_Lifecycle(t *testing.T) {
	env := newTestEnv(t)

	job, err := env.finetuning.CreateJob(env.ctx, CreateFineTuningJobRequest{
		Name:      "tune-orders-agent",
		BaseModel: "base-2025",
		DatasetInfo: map[string]any{
			"rows": 5000,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", string(job.Status))

	for _, next := range []domain.FineTuningStatus{
		domain.FineTuningQueued,
		domain.FineTuningRunning,
		domain.FineTuningEvaluating,
	} {
		job, err = env.finetuning.TransitionJob(env.ctx, job.ID, next, "")
		require.NoError(t, err)
	}
	require.NotNil(t, job.StartedAt)

	job, err = env.finetuning.RecordEvaluation(env.ctx, job.ID, map[string]any{"accuracy": 0.91})
	require.NoError(t, err)

	job, err = env.finetuning.TransitionJob(env.ctx, job.ID, domain.FineTuningCompleted, "tuned-2025-orders")
	require.NoError(t, err)
	require.NotNil(t, job.TunedModel)
	assert.Equal(t, "tuned-2025-orders", *job.TunedModel)
	assert.NotNil(t, job.CompletedAt)
}

func TestFineTuningJob_InvalidTransition(t *testing.T) {
	env := newTestEnv(t)

	job, err := env.finetuning.CreateJob(env.ctx, CreateFineTuningJobRequest{
		Name: "tune-x", BaseModel: "base-2025",
	})
	require.NoError(t, err)

	_, err = env.finetuning.TransitionJob(env.ctx, job.ID, domain.FineTuningRunning, "")
	require.Error(t, err)
	var te *TransitionError
	require.True(t, errors.As(err, &te))
}

func TestFineTuningJob_Retry(t *testing.T) {
	env := newTestEnv(t)

	job, err := env.finetuning.CreateJob(env.ctx, CreateFineTuningJobRequest{
		Name: "tune-retry", BaseModel: "base-2025",
	})
	require.NoError(t, err)

	for _, next := range []domain.FineTuningStatus{
		domain.FineTuningQueued,
		domain.FineTuningRunning,
	} {
		_, err = env.finetuning.TransitionJob(env.ctx, job.ID, next, "")
		require.NoError(t, err)
	}
	failed, err := env.finetuning.TransitionJob(env.ctx, job.ID, domain.FineTuningFailed, "out of GPU")
	require.NoError(t, err)
	require.NotNil(t, failed.ErrorMessage)

	retried, err := env.finetuning.RetryJob(env.ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(retried.Status))
	assert.Equal(t, 1, retried.RetryCount)
	assert.Nil(t, retried.ErrorMessage)
	assert.Nil(t, retried.StartedAt)

	// a completed job cannot be retried
	for _, next := range []domain.FineTuningStatus{
		domain.FineTuningQueued,
		domain.FineTuningRunning,
		domain.FineTuningEvaluating,
		domain.FineTuningCompleted,
	} {
		_, err = env.finetuning.TransitionJob(env.ctx, job.ID, next, "")
		require.NoError(t, err)
	}
	_, err = env.finetuning.RetryJob(env.ctx, job.ID)
	require.Error(t, err)
}

func TestFineTuningJob_ListByStatus(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.finetuning.CreateJob(env.ctx, CreateFineTuningJobRequest{
		Name: "tune-a", BaseModel: "base-2025",
	})
	require.NoError(t, err)
	b, err := env.finetuning.CreateJob(env.ctx, CreateFineTuningJobRequest{
		Name: "tune-b", BaseModel: "base-2025",
	})
	require.NoError(t, err)
	_, err = env.finetuning.TransitionJob(env.ctx, b.ID, domain.FineTuningQueued, "")
	require.NoError(t, err)

	queued, err := env.finetuning.ListJobs(env.ctx, "queued")
	require.NoError(t, err)
	require.Len(t, queued, 1)
	assert.Equal(t, b.ID, queued[0].ID)

	all, err := env.finetuning.ListJobs(env.ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
