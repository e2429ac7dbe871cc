package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRedisFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadRedisFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost:6379", cfg.Addr)
		assert.Equal(t, 0, cfg.DB)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("REDIS_ADDR", "redis.internal:6380")
		t.Setenv("REDIS_PASSWORD", "s3cret")
		t.Setenv("REDIS_DB", "3")

		cfg, err := LoadRedisFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "redis.internal:6380", cfg.Addr)
		assert.Equal(t, "s3cret", cfg.Password)
		assert.Equal(t, 3, cfg.DB)
	})

	t.Run("invalid db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "not-a-number")
		_, err := LoadRedisFromEnv()
		assert.ErrorContains(t, err, "REDIS_DB")
	})
}

func TestLoadOrchestrationFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadOrchestrationFromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.ListenAddr)
		assert.NotEmpty(t, cfg.PodID)
		assert.Equal(t, 5, cfg.WorkerCount)
		assert.Equal(t, 1*time.Second, cfg.PollInterval)
		assert.Equal(t, 5*time.Minute, cfg.OrphanThreshold)
		assert.Equal(t, 90, cfg.SessionRetentionDays)
		assert.Equal(t, 24*time.Hour, cfg.EventTTL)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ORCH_LISTEN_ADDR", ":9090")
		t.Setenv("ORCH_POD_ID", "maestro-7")
		t.Setenv("ORCH_WORKER_COUNT", "12")
		t.Setenv("ORCH_POLL_INTERVAL", "250ms")
		t.Setenv("ORCH_ORPHAN_THRESHOLD", "2m")
		t.Setenv("ORCH_SESSION_RETENTION_DAYS", "30")

		cfg, err := LoadOrchestrationFromEnv()
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.ListenAddr)
		assert.Equal(t, "maestro-7", cfg.PodID)
		assert.Equal(t, 12, cfg.WorkerCount)
		assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
		assert.Equal(t, 2*time.Minute, cfg.OrphanThreshold)
		assert.Equal(t, 30, cfg.SessionRetentionDays)
	})

	t.Run("rejects malformed duration", func(t *testing.T) {
		t.Setenv("ORCH_POLL_INTERVAL", "soon")
		_, err := LoadOrchestrationFromEnv()
		assert.ErrorContains(t, err, "ORCH_POLL_INTERVAL")
	})

	t.Run("rejects zero workers", func(t *testing.T) {
		t.Setenv("ORCH_WORKER_COUNT", "0")
		_, err := LoadOrchestrationFromEnv()
		assert.ErrorContains(t, err, "ORCH_WORKER_COUNT")
	})
}
