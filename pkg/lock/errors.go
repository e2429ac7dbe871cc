package lock

import (
	"errors"
	"fmt"
)

// Sentinel errors for lock operations.
var (
	// ErrLockTimeout indicates the caller waited past its timeout without
	// being granted the lock.
	ErrLockTimeout = errors.New("lock acquisition timed out")

	// ErrLockNotOwned indicates a release or renewal of a lock the caller
	// does not hold.
	ErrLockNotOwned = errors.New("lock not owned by caller")

	// ErrDeadlockDetected indicates the local wait-for graph contains a
	// cycle involving this acquisition.
	ErrDeadlockDetected = errors.New("deadlock detected")
)

// AcquisitionError wraps an infrastructure fault encountered while talking
// to the lock store. Distinct from ErrLockTimeout: the store itself failed.
type AcquisitionError struct {
	Resource string
	Err      error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("lock acquisition failed for %q: %v", e.Resource, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }
