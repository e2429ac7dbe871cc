// Package queue runs the per-replica worker pool: workers claim pending
// sessions, drive them through a Runner, and heartbeat while they execute.
// Orphan detection runs alongside so sessions owned by dead replicas do not
// stay running forever.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/maestro-hq/maestro/ent"
)

var (
	// ErrNoSessionsAvailable indicates no claimable sessions are in the queue.
	ErrNoSessionsAvailable = errors.New("no sessions available")

	// ErrAtCapacity indicates this replica's concurrent session limit has
	// been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Runner executes one claimed session to a terminal state. It owns status
// transitions, outcome metrics, and agent accounting; the worker only
// handles claiming, heartbeat, cancellation wiring, and the failure safety
// net when the runner errors out.
type Runner interface {
	Execute(ctx context.Context, session *ent.Session) error
}

// PoolHealth is the pool snapshot surfaced through /health.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	PodID            string         `json:"pod_id"`
	WorkerCount      int            `json:"worker_count"`
	BusyWorkers      int            `json:"busy_workers"`
	ActiveSessions   int            `json:"active_sessions"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	Workers          []WorkerHealth `json:"workers"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth is one worker's slice of the pool snapshot.
type WorkerHealth struct {
	ID                string    `json:"id"`
	Status            string    `json:"status"`
	CurrentSessionID  string    `json:"current_session_id,omitempty"`
	SessionsProcessed int       `json:"sessions_processed"`
	LastActivity      time.Time `json:"last_activity"`
}
