// Package config loads environment-driven configuration for the
// orchestrator. Each infrastructure package keeps its own LoadConfigFromEnv
// (database, executil); this package covers the remaining prefixes
// (REDIS_, ORCH_) and bundles everything the entrypoint needs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config bundles everything cmd/maestro wires at startup.
type Config struct {
	Redis Redis
	Orch  Orchestration
}

// Load reads .env (if present) then resolves all config from the
// environment. Call once at startup, before any package-level
// LoadConfigFromEnv.
func Load() (Config, error) {
	// Missing .env is fine: production supplies real env vars.
	_ = godotenv.Load()

	redisCfg, err := LoadRedisFromEnv()
	if err != nil {
		return Config{}, err
	}
	orchCfg, err := LoadOrchestrationFromEnv()
	if err != nil {
		return Config{}, err
	}
	return Config{Redis: redisCfg, Orch: orchCfg}, nil
}

// Redis holds connection settings for the lock manager and agent registry.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// LoadRedisFromEnv loads Redis configuration from REDIS_* variables.
func LoadRedisFromEnv() (Redis, error) {
	db, err := strconv.Atoi(getEnvOrDefault("REDIS_DB", "0"))
	if err != nil {
		return Redis{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	return Redis{
		Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	}, nil
}

// Orchestration holds the ORCH_* tuning knobs for the worker pool,
// monitor, retention sweeps, and the HTTP server.
type Orchestration struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string

	// PodID identifies this replica in session claims and lock ownership.
	PodID string

	// WorkerCount is the number of worker goroutines per replica.
	WorkerCount int

	// MaxConcurrentSessions caps concurrently executing sessions per replica.
	// Tenant-level caps come from the tenants table, not from here.
	MaxConcurrentSessions int

	// PollInterval is the base interval for checking pending sessions;
	// jitter spreads replicas so they do not poll in lockstep.
	PollInterval       time.Duration
	PollIntervalJitter time.Duration

	// HeartbeatInterval is how often workers stamp last_heartbeat_at
	// on their claimed sessions.
	HeartbeatInterval time.Duration

	// GracefulShutdownTimeout is the max time to wait for active sessions
	// to finish during shutdown.
	GracefulShutdownTimeout time.Duration

	// OrphanDetectionInterval is how often to scan for orphaned sessions;
	// OrphanThreshold is how stale a heartbeat must be to orphan a session.
	OrphanDetectionInterval time.Duration
	OrphanThreshold         time.Duration

	// MonitorInterval drives timeout and at-risk scans over running sessions.
	MonitorInterval time.Duration

	// SessionRetentionDays controls the soft-delete retention sweep;
	// EventTTL bounds persisted NOTIFY catch-up rows;
	// CleanupInterval is how often both sweeps run.
	SessionRetentionDays int
	EventTTL             time.Duration
	CleanupInterval      time.Duration
}

// LoadOrchestrationFromEnv loads orchestration configuration from ORCH_*
// variables, applying built-in defaults for anything unset.
func LoadOrchestrationFromEnv() (Orchestration, error) {
	cfg := Orchestration{
		ListenAddr:              getEnvOrDefault("ORCH_LISTEN_ADDR", ":8080"),
		PodID:                   getEnvOrDefault("ORCH_POD_ID", hostnameOrDefault()),
		WorkerCount:             5,
		MaxConcurrentSessions:   5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 15 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
		MonitorInterval:         30 * time.Second,
		SessionRetentionDays:    90,
		EventTTL:                24 * time.Hour,
		CleanupInterval:         1 * time.Hour,
	}

	var err error
	if cfg.WorkerCount, err = intEnv("ORCH_WORKER_COUNT", cfg.WorkerCount); err != nil {
		return Orchestration{}, err
	}
	if cfg.MaxConcurrentSessions, err = intEnv("ORCH_MAX_CONCURRENT_SESSIONS", cfg.MaxConcurrentSessions); err != nil {
		return Orchestration{}, err
	}
	if cfg.SessionRetentionDays, err = intEnv("ORCH_SESSION_RETENTION_DAYS", cfg.SessionRetentionDays); err != nil {
		return Orchestration{}, err
	}
	if cfg.PollInterval, err = durationEnv("ORCH_POLL_INTERVAL", cfg.PollInterval); err != nil {
		return Orchestration{}, err
	}
	if cfg.PollIntervalJitter, err = durationEnv("ORCH_POLL_INTERVAL_JITTER", cfg.PollIntervalJitter); err != nil {
		return Orchestration{}, err
	}
	if cfg.HeartbeatInterval, err = durationEnv("ORCH_HEARTBEAT_INTERVAL", cfg.HeartbeatInterval); err != nil {
		return Orchestration{}, err
	}
	if cfg.GracefulShutdownTimeout, err = durationEnv("ORCH_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout); err != nil {
		return Orchestration{}, err
	}
	if cfg.OrphanDetectionInterval, err = durationEnv("ORCH_ORPHAN_DETECTION_INTERVAL", cfg.OrphanDetectionInterval); err != nil {
		return Orchestration{}, err
	}
	if cfg.OrphanThreshold, err = durationEnv("ORCH_ORPHAN_THRESHOLD", cfg.OrphanThreshold); err != nil {
		return Orchestration{}, err
	}
	if cfg.MonitorInterval, err = durationEnv("ORCH_MONITOR_INTERVAL", cfg.MonitorInterval); err != nil {
		return Orchestration{}, err
	}
	if cfg.EventTTL, err = durationEnv("ORCH_EVENT_TTL", cfg.EventTTL); err != nil {
		return Orchestration{}, err
	}
	if cfg.CleanupInterval, err = durationEnv("ORCH_CLEANUP_INTERVAL", cfg.CleanupInterval); err != nil {
		return Orchestration{}, err
	}

	if cfg.WorkerCount < 1 {
		return Orchestration{}, fmt.Errorf("ORCH_WORKER_COUNT must be at least 1, got %d", cfg.WorkerCount)
	}
	if cfg.MaxConcurrentSessions < 1 {
		return Orchestration{}, fmt.Errorf("ORCH_MAX_CONCURRENT_SESSIONS must be at least 1, got %d", cfg.MaxConcurrentSessions)
	}
	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(key)
	if val == "" {
		return def, nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func hostnameOrDefault() string {
	if h, err := os.Hostname(); err == nil && h != "" {
		return h
	}
	return "maestro-0"
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
