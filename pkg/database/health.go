package database

import (
	"context"
	"database/sql"
	"time"
)

// PoolStats is a snapshot of the sql.DB connection pool.
type PoolStats struct {
	Open         int   `json:"open_connections"`
	InUse        int   `json:"in_use"`
	Idle         int   `json:"idle"`
	MaxOpen      int   `json:"max_open_conns"`
	WaitCount    int64 `json:"wait_count"`
	WaitMillis   int64 `json:"wait_duration_ms"`
	MaxIdleTrims int64 `json:"max_idle_closed"`
}

// HealthStatus reports reachability plus pool pressure. Status is
// "unhealthy" when the ping fails.
type HealthStatus struct {
	Status     string    `json:"status"`
	PingMillis int64     `json:"response_time_ms"`
	Pool       PoolStats `json:"pool"`
	Saturation float64   `json:"saturation"`
}

// Health pings the database and snapshots pool statistics. The error is
// returned alongside the status so callers can surface both.
func Health(ctx context.Context, db *sql.DB) (*HealthStatus, error) {
	start := time.Now()
	if err := db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:     "unhealthy",
			PingMillis: time.Since(start).Milliseconds(),
		}, err
	}

	s := db.Stats()
	h := &HealthStatus{
		Status:     "healthy",
		PingMillis: time.Since(start).Milliseconds(),
		Pool: PoolStats{
			Open:         s.OpenConnections,
			InUse:        s.InUse,
			Idle:         s.Idle,
			MaxOpen:      s.MaxOpenConnections,
			WaitCount:    s.WaitCount,
			WaitMillis:   s.WaitDuration.Milliseconds(),
			MaxIdleTrims: s.MaxIdleClosed,
		},
	}
	if s.MaxOpenConnections > 0 {
		h.Saturation = float64(s.InUse) / float64(s.MaxOpenConnections)
	}
	return h, nil
}
