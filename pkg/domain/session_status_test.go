package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from SessionStatus
		to   SessionStatus
		want bool
	}{
		{"pending to queued", SessionPending, SessionQueued, true},
		{"pending to cancelled", SessionPending, SessionCancelled, true},
		{"pending to running skips queue", SessionPending, SessionRunning, false},
		{"queued to running", SessionQueued, SessionRunning, true},
		{"running to completed", SessionRunning, SessionCompleted, true},
		{"running to partially completed", SessionRunning, SessionPartiallyCompleted, true},
		{"running to degraded", SessionRunning, SessionDegraded, true},
		{"paused to running", SessionPaused, SessionRunning, true},
		{"paused to completed", SessionPaused, SessionCompleted, false},
		{"degraded to running", SessionDegraded, SessionRunning, true},
		{"degraded to cancelled", SessionDegraded, SessionCancelled, false},
		{"partially completed retries", SessionPartiallyCompleted, SessionRunning, true},
		{"partially completed finishes", SessionPartiallyCompleted, SessionCompleted, true},
		{"completed is terminal", SessionCompleted, SessionRunning, false},
		{"failed is terminal", SessionFailed, SessionPending, false},
		{"orphaned is terminal", SessionOrphaned, SessionRunning, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestSessionStatusClassification(t *testing.T) {
	active := []SessionStatus{SessionQueued, SessionRunning, SessionPaused, SessionDegraded}
	for _, s := range active {
		assert.True(t, s.IsActive(), "%s should be active", s)
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}

	terminal := []SessionStatus{SessionCompleted, SessionFailed, SessionTimeout, SessionStopped, SessionCancelled, SessionOrphaned}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "%s should be terminal", s)
		assert.False(t, s.IsActive(), "%s should not be active", s)
	}

	// partially_completed is conditionally terminal: re-entrant to running.
	assert.False(t, SessionPartiallyCompleted.IsTerminal())
	assert.False(t, SessionPartiallyCompleted.IsActive())

	assert.True(t, SessionDegraded.IsErrorLike())
	assert.True(t, SessionTimeout.IsErrorLike())
	assert.False(t, SessionCompleted.IsErrorLike())
}

func TestIsRecoverable(t *testing.T) {
	tests := []struct {
		name        string
		status      SessionStatus
		checkpoints int
		retries     int
		want        bool
	}{
		{"failed with checkpoint", SessionFailed, 1, 0, true},
		{"timeout with checkpoint", SessionTimeout, 3, 2, true},
		{"stopped with checkpoint", SessionStopped, 1, 0, true},
		{"failed without checkpoint", SessionFailed, 0, 0, false},
		{"retry budget exhausted", SessionFailed, 5, 3, false},
		{"cancelled never recoverable", SessionCancelled, 5, 0, false},
		{"completed never recoverable", SessionCompleted, 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRecoverable(tt.status, tt.checkpoints, tt.retries))
		})
	}
}

func TestHealthScore(t *testing.T) {
	assert.Equal(t, 1.0, HealthScore(SessionCompleted, 0))
	assert.Equal(t, 0.0, HealthScore(SessionFailed, 0))
	assert.Equal(t, 0.9, HealthScore(SessionRunning, 0.5))
	assert.Equal(t, 0.7, HealthScore(SessionRunning, 0.8))
	assert.Equal(t, 0.3, HealthScore(SessionRunning, 0.95))
	assert.Equal(t, 0.8, HealthScore(SessionPaused, 0))
	assert.Equal(t, 0.8, HealthScore(SessionQueued, 0))
}
