// Package domain defines the closed vocabularies and pure domain logic the
// orchestration kernel is built on: session and task lifecycles, agent
// capabilities, performance tiers, load levels, and PERT estimation.
package domain

// SessionStatus is the lifecycle state of an orchestrated session.
type SessionStatus string

// Session lifecycle states.
const (
	SessionPending            SessionStatus = "pending"
	SessionQueued             SessionStatus = "queued"
	SessionRunning            SessionStatus = "running"
	SessionPaused             SessionStatus = "paused"
	SessionDegraded           SessionStatus = "degraded"
	SessionPartiallyCompleted SessionStatus = "partially_completed"
	SessionCompleted          SessionStatus = "completed"
	SessionFailed             SessionStatus = "failed"
	SessionTimeout            SessionStatus = "timeout"
	SessionStopped            SessionStatus = "stopped"
	SessionCancelled          SessionStatus = "cancelled"
	SessionOrphaned           SessionStatus = "orphaned"
)

// sessionTransitions is the permitted-transition table. Any pair not listed
// here is an invalid transition.
var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionPending:  {SessionQueued, SessionCancelled, SessionFailed},
	SessionQueued:   {SessionRunning, SessionCancelled, SessionFailed},
	SessionRunning:  {SessionCompleted, SessionPartiallyCompleted, SessionFailed, SessionTimeout, SessionPaused, SessionStopped, SessionDegraded},
	SessionPaused:   {SessionRunning, SessionStopped, SessionCancelled},
	SessionDegraded: {SessionRunning, SessionFailed, SessionCompleted, SessionStopped},
	// partially_completed may re-enter running to retry failed sub-tasks.
	SessionPartiallyCompleted: {SessionRunning, SessionCompleted},
}

// CanTransition reports whether from → to is a permitted session transition.
func CanTransition(from, to SessionStatus) bool {
	for _, next := range sessionTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NextStatuses returns the statuses reachable from the given status.
func NextStatuses(from SessionStatus) []SessionStatus {
	next := sessionTransitions[from]
	out := make([]SessionStatus, len(next))
	copy(out, next)
	return out
}

// IsActive reports whether the status counts toward a tenant's concurrent
// session quota.
func (s SessionStatus) IsActive() bool {
	switch s {
	case SessionQueued, SessionRunning, SessionPaused, SessionDegraded:
		return true
	}
	return false
}

// IsTerminal reports whether the status is terminal. partially_completed is
// only conditionally terminal (it may re-enter running) and is therefore not
// reported as terminal here.
func (s SessionStatus) IsTerminal() bool {
	switch s {
	case SessionCompleted, SessionFailed, SessionTimeout, SessionStopped, SessionCancelled, SessionOrphaned:
		return true
	}
	return false
}

// IsErrorLike reports whether the status represents a degraded or failed
// outcome.
func (s SessionStatus) IsErrorLike() bool {
	switch s {
	case SessionFailed, SessionTimeout, SessionStopped, SessionCancelled, SessionOrphaned, SessionDegraded:
		return true
	}
	return false
}

// IsCancellable reports whether a session in this status may be cancelled or
// stopped by a caller.
func (s SessionStatus) IsCancellable() bool {
	switch s {
	case SessionPending, SessionQueued, SessionPaused, SessionRunning:
		return true
	}
	return false
}

// MaxSessionRetries bounds how many times a recoverable session may be
// reset to pending.
const MaxSessionRetries = 3

// IsRecoverable reports whether a session can be retried: the status must be
// failed, timeout, or stopped, at least one checkpoint must exist, and the
// retry budget must not be exhausted.
func IsRecoverable(status SessionStatus, checkpointCount, retryCount int) bool {
	switch status {
	case SessionFailed, SessionTimeout, SessionStopped:
	default:
		return false
	}
	return checkpointCount > 0 && retryCount < MaxSessionRetries
}

// HealthScore maps a session's status and elapsed fraction of its duration
// budget to a [0,1] health value. elapsedFraction is elapsed time divided by
// max_duration_seconds and only consulted for running sessions.
func HealthScore(status SessionStatus, elapsedFraction float64) float64 {
	switch status {
	case SessionCompleted:
		return 1.0
	case SessionFailed:
		return 0.0
	case SessionRunning:
		switch {
		case elapsedFraction > 0.9:
			return 0.3
		case elapsedFraction > 0.7:
			return 0.7
		default:
			return 0.9
		}
	default:
		return 0.8
	}
}

// SessionType classifies what a session is orchestrating.
type SessionType string

// Session types.
const (
	SessionTypePlanning    SessionType = "planning"
	SessionTypeExecution   SessionType = "execution"
	SessionTypeReview      SessionType = "review"
	SessionTypeDebug       SessionType = "debug"
	SessionTypeIntegration SessionType = "integration"
)

// ValidSessionType reports whether t is a known session type.
func ValidSessionType(t SessionType) bool {
	switch t {
	case SessionTypePlanning, SessionTypeExecution, SessionTypeReview, SessionTypeDebug, SessionTypeIntegration:
		return true
	}
	return false
}

// Priority orders sessions and tasks for scheduling.
type Priority string

// Priorities from most to least urgent.
const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityDeferred Priority = "deferred"
)

// Weight returns a numeric ordering weight, higher is more urgent.
func (p Priority) Weight() int {
	switch p {
	case PriorityCritical:
		return 40
	case PriorityHigh:
		return 30
	case PriorityMedium:
		return 20
	case PriorityLow:
		return 10
	default:
		return 0
	}
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityDeferred:
		return true
	}
	return false
}
