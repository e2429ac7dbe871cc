// Package lock implements a fair distributed lock manager over Redis.
// Acquisition, renewal, and release are each a single round trip (Lua
// scripts), waiters queue in priority order with per-request expiry, and
// held locks are renewed automatically until released.
package lock

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Default timing parameters.
const (
	DefaultLeaseTTL        = 30 * time.Second
	DefaultRenewalInterval = 10 * time.Second
	DefaultAcquireTimeout  = 30 * time.Second

	// pollInterval is how often a blocked acquirer re-runs the acquire
	// script while waiting its turn.
	pollInterval = 50 * time.Millisecond
)

// AcquireOptions tune one acquisition.
type AcquireOptions struct {
	// Timeout bounds how long a blocking acquire waits. Zero uses
	// DefaultAcquireTimeout.
	Timeout time.Duration
	// Blocking selects between waiting and immediate-false behavior.
	Blocking bool
	// Priority orders waiters; higher goes first. Ties break by enrollment
	// time.
	Priority int
	// LeaseTTL is the granted lease duration. Zero uses DefaultLeaseTTL.
	LeaseTTL time.Duration
	// Owner labels the logical holder for local wait-for bookkeeping.
	// Empty uses the manager's default owner.
	Owner string
}

// Info describes a currently held lock.
type Info struct {
	Resource     string
	Owner        string
	AcquiredAt   time.Time
	ExpiresAt    time.Time
	RenewalCount int
}

// heldLock tracks a lock held through this manager, including its renewal
// goroutine.
type heldLock struct {
	token    string // redis lock value: managerID:uuid
	owner    string // local logical owner label
	leaseTTL time.Duration
	cancel   context.CancelFunc
	lost     chan struct{}
	lostOnce sync.Once
}

// Manager is the caller-facing distributed lock manager. It records which
// resources local owners hold so it can detect local wait-for cycles and
// warn about acquisition-order violations.
type Manager struct {
	client          *redis.Client
	id              string
	renewalInterval time.Duration
	logger          *slog.Logger

	mu      sync.Mutex
	held    map[string]*heldLock // resource → held state
	waiting map[string]string    // local owner → resource being waited on
}

// NewManager creates a lock manager. id identifies this process in lock
// ownership tokens; empty generates one.
func NewManager(client *redis.Client, id string) *Manager {
	if id == "" {
		id = uuid.New().String()
	}
	return &Manager{
		client:          client,
		id:              id,
		renewalInterval: DefaultRenewalInterval,
		logger:          slog.Default(),
		held:            make(map[string]*heldLock),
		waiting:         make(map[string]string),
	}
}

// SetRenewalInterval overrides the automatic renewal cadence.
func (m *Manager) SetRenewalInterval(d time.Duration) { m.renewalInterval = d }

func lockKey(resource string) string  { return "lock:{" + resource + "}" }
func metaKey(resource string) string  { return "lock:{" + resource + "}:meta" }
func queueKey(resource string) string { return "lock:{" + resource + "}:waiters" }

// Acquire attempts to take exclusive ownership of resource. It returns true
// iff ownership was granted within the timeout; a non-blocking acquire
// returns false immediately when the lock is unavailable. A local wait-for
// cycle fails with ErrDeadlockDetected.
func (m *Manager) Acquire(ctx context.Context, resource string, opts AcquireOptions) (bool, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultAcquireTimeout
	}
	if opts.LeaseTTL <= 0 {
		opts.LeaseTTL = DefaultLeaseTTL
	}
	owner := opts.Owner
	if owner == "" {
		owner = "default"
	}

	if err := m.checkWaitForCycle(resource, owner); err != nil {
		return false, err
	}
	m.warnOnOrderViolation(resource, owner)

	token := m.id + ":" + uuid.New().String()
	deadline := time.Now().Add(opts.Timeout)
	member := fmt.Sprintf("%s|%d", token, deadline.UnixMilli())

	if opts.Blocking {
		// Enroll in the fairness queue. Score orders by priority then
		// enrollment time; the member itself carries the expiry.
		score := float64(-opts.Priority)*1e13 + float64(time.Now().UnixMilli())
		if err := m.client.ZAdd(ctx, queueKey(resource), redis.Z{Score: score, Member: member}).Err(); err != nil {
			return false, &AcquisitionError{Resource: resource, Err: err}
		}
		m.setWaiting(owner, resource)
		defer m.setWaiting(owner, "")
	}

	for {
		res, err := acquireScript.Run(ctx, m.client,
			[]string{lockKey(resource), metaKey(resource), queueKey(resource)},
			token, opts.LeaseTTL.Milliseconds(), time.Now().UnixMilli(), member,
		).Int()
		if err != nil {
			m.removeWaiter(resource, member)
			return false, &AcquisitionError{Resource: resource, Err: err}
		}

		if res == 0 {
			m.registerHeld(ctx, resource, token, owner, opts.LeaseTTL)
			return true, nil
		}

		if !opts.Blocking {
			return false, nil
		}
		if time.Now().After(deadline) {
			m.removeWaiter(resource, member)
			return false, nil
		}

		select {
		case <-ctx.Done():
			m.removeWaiter(resource, member)
			return false, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}

// Release gives up the lock if this manager holds it. Releasing a lock the
// manager does not hold is a no-op returning ErrLockNotOwned.
func (m *Manager) Release(ctx context.Context, resource string) error {
	m.mu.Lock()
	held, ok := m.held[resource]
	delete(m.held, resource)
	m.mu.Unlock()

	if !ok {
		return ErrLockNotOwned
	}
	held.cancel()

	res, err := releaseScript.Run(ctx, m.client,
		[]string{lockKey(resource), metaKey(resource)}, held.token).Int()
	if err != nil {
		return &AcquisitionError{Resource: resource, Err: err}
	}
	if res == 0 {
		return ErrLockNotOwned
	}
	return nil
}

// Renew manually extends the lease on a held lock.
func (m *Manager) Renew(ctx context.Context, resource string, additional time.Duration) error {
	m.mu.Lock()
	held, ok := m.held[resource]
	m.mu.Unlock()
	if !ok {
		return ErrLockNotOwned
	}
	if additional <= 0 {
		additional = held.leaseTTL
	}

	res, err := renewScript.Run(ctx, m.client,
		[]string{lockKey(resource), metaKey(resource)},
		held.token, additional.Milliseconds(), time.Now().UnixMilli()).Int()
	if err != nil {
		return &AcquisitionError{Resource: resource, Err: err}
	}
	if res == 0 {
		held.markLost()
		return ErrLockNotOwned
	}
	return nil
}

// IsLocked reports whether the resource is currently locked by anyone.
func (m *Manager) IsLocked(ctx context.Context, resource string) (bool, error) {
	n, err := m.client.Exists(ctx, lockKey(resource)).Result()
	if err != nil {
		return false, &AcquisitionError{Resource: resource, Err: err}
	}
	return n == 1, nil
}

// LockInfo returns metadata for the current holder, or nil when unlocked.
func (m *Manager) LockInfo(ctx context.Context, resource string) (*Info, error) {
	fields, err := m.client.HGetAll(ctx, metaKey(resource)).Result()
	if err != nil {
		return nil, &AcquisitionError{Resource: resource, Err: err}
	}
	if len(fields) == 0 {
		return nil, nil
	}
	info := &Info{Resource: resource, Owner: fields["owner"]}
	if ms := parseInt64(fields["acquired_at"]); ms > 0 {
		info.AcquiredAt = time.UnixMilli(ms)
	}
	if ms := parseInt64(fields["expires_at"]); ms > 0 {
		info.ExpiresAt = time.UnixMilli(ms)
	}
	info.RenewalCount = int(parseInt64(fields["renewal_count"]))
	return info, nil
}

// ForceRelease removes the lock regardless of owner. Admin override.
func (m *Manager) ForceRelease(ctx context.Context, resource string) error {
	m.mu.Lock()
	if held, ok := m.held[resource]; ok {
		held.cancel()
		held.markLost()
		delete(m.held, resource)
	}
	m.mu.Unlock()

	if err := m.client.Del(ctx, lockKey(resource), metaKey(resource)).Err(); err != nil {
		return &AcquisitionError{Resource: resource, Err: err}
	}
	return nil
}

// Lost returns a channel closed when a held lock's lease could not be
// renewed and ownership must be assumed gone. Returns nil if the resource
// is not held.
func (m *Manager) Lost(resource string) <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	if held, ok := m.held[resource]; ok {
		return held.lost
	}
	return nil
}

// WithLock runs fn while holding the resource lock, releasing on all exit
// paths including panics. Acquisition failures propagate unchanged; a
// timeout surfaces as ErrLockTimeout.
func (m *Manager) WithLock(ctx context.Context, resource string, opts AcquireOptions, fn func(ctx context.Context) error) error {
	opts.Blocking = true
	ok, err := m.Acquire(ctx, resource, opts)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrLockTimeout, resource)
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := m.Release(releaseCtx, resource); err != nil {
			m.logger.Warn("Failed to release lock", "resource", resource, "error", err)
		}
	}()
	return fn(ctx)
}

// --- internal bookkeeping ---

func (m *Manager) registerHeld(ctx context.Context, resource, token, owner string, leaseTTL time.Duration) {
	renewCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	held := &heldLock{
		token:    token,
		owner:    owner,
		leaseTTL: leaseTTL,
		cancel:   cancel,
		lost:     make(chan struct{}),
	}
	m.mu.Lock()
	m.held[resource] = held
	m.mu.Unlock()

	go m.renewLoop(renewCtx, resource, held)
}

// renewLoop extends the lease at renewalInterval until released. Any
// renewal failure marks the lock lost and stops the loop.
func (m *Manager) renewLoop(ctx context.Context, resource string, held *heldLock) {
	ticker := time.NewTicker(m.renewalInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			res, err := renewScript.Run(ctx, m.client,
				[]string{lockKey(resource), metaKey(resource)},
				held.token, held.leaseTTL.Milliseconds(), time.Now().UnixMilli()).Int()
			if err != nil || res == 0 {
				m.logger.Warn("Lock renewal failed, marking lock lost",
					"resource", resource, "error", err)
				held.markLost()
				m.mu.Lock()
				if m.held[resource] == held {
					delete(m.held, resource)
				}
				m.mu.Unlock()
				return
			}
		}
	}
}

func (h *heldLock) markLost() {
	h.lostOnce.Do(func() { close(h.lost) })
}

func (m *Manager) setWaiting(owner, resource string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if resource == "" {
		delete(m.waiting, owner)
	} else {
		m.waiting[owner] = resource
	}
}

func (m *Manager) removeWaiter(resource, member string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = m.client.ZRem(ctx, queueKey(resource), member).Err()
}

// checkWaitForCycle walks the local held/waiting maps: if the holder of the
// requested resource is a local owner that transitively waits on a resource
// held by the acquiring owner, granting the wait would deadlock.
func (m *Manager) checkWaitForCycle(resource, owner string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	holderOf := func(res string) (string, bool) {
		if h, ok := m.held[res]; ok {
			return h.owner, true
		}
		return "", false
	}

	holder, ok := holderOf(resource)
	if !ok {
		return nil
	}

	// Follow the chain holder → waited-resource → its holder. The chain
	// closing back on the acquiring owner means granting this wait would
	// deadlock. Direct contention (holder == owner at the first hop) is
	// ordinary waiting, not a cycle.
	seen := map[string]bool{}
	for !seen[holder] {
		seen[holder] = true
		next, waiting := m.waiting[holder]
		if !waiting {
			return nil
		}
		nextHolder, ok := holderOf(next)
		if !ok {
			return nil
		}
		if nextHolder == owner {
			return fmt.Errorf("%w: %q waiting on %q completes a local wait cycle", ErrDeadlockDetected, owner, resource)
		}
		holder = nextHolder
	}
	return nil
}

// warnOnOrderViolation logs when an owner acquires resources out of lexical
// order, which risks deadlock across processes. Advisory only.
func (m *Manager) warnOnOrderViolation(resource, owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for res, h := range m.held {
		if h.owner == owner && res > resource {
			m.logger.Warn("Lock acquisition order violates lexical policy",
				"owner", owner, "holding", res, "acquiring", resource)
			return
		}
	}
}

func parseInt64(s string) int64 {
	var n int64
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int64(c-'0')
	}
	return n
}
