package domain

// FineTuningStatus is the lifecycle state of a fine-tuning job. The job
// shares the kernel's tenancy and locking model but adds no scheduling
// logic of its own.
type FineTuningStatus string

// Fine-tuning job states.
const (
	FineTuningPending    FineTuningStatus = "pending"
	FineTuningQueued     FineTuningStatus = "queued"
	FineTuningRunning    FineTuningStatus = "running"
	FineTuningEvaluating FineTuningStatus = "evaluating"
	FineTuningCompleted  FineTuningStatus = "completed"
	FineTuningFailed     FineTuningStatus = "failed"
	FineTuningCancelled  FineTuningStatus = "cancelled"
)

var fineTuningTransitions = map[FineTuningStatus][]FineTuningStatus{
	FineTuningPending:    {FineTuningQueued, FineTuningCancelled},
	FineTuningQueued:     {FineTuningRunning, FineTuningCancelled},
	FineTuningRunning:    {FineTuningEvaluating, FineTuningFailed, FineTuningCancelled},
	FineTuningEvaluating: {FineTuningCompleted, FineTuningFailed},
	// Retry path: terminal failed/cancelled jobs may be reset to pending.
	FineTuningFailed:    {FineTuningPending},
	FineTuningCancelled: {FineTuningPending},
}

// CanTransitionFineTuning reports whether from → to is a permitted
// fine-tuning job transition.
func CanTransitionFineTuning(from, to FineTuningStatus) bool {
	for _, next := range fineTuningTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
