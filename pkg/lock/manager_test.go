package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewManager(client, "test-pod"), mr
}

func TestAcquireRelease(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	ok, err := m.Acquire(ctx, "res-a", AcquireOptions{Blocking: true, Timeout: time.Second})
	require.NoError(t, err)
	require.True(t, ok)

	locked, err := m.IsLocked(ctx, "res-a")
	require.NoError(t, err)
	assert.True(t, locked)

	info, err := m.LockInfo(ctx, "res-a")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Contains(t, info.Owner, "test-pod:")

	require.NoError(t, m.Release(ctx, "res-a"))

	locked, err = m.IsLocked(ctx, "res-a")
	require.NoError(t, err)
	assert.False(t, locked)

	// acquire ; release leaves the store equivalent to its pre-state
	info, err = m.LockInfo(ctx, "res-a")
	require.NoError(t, err)
	assert.Nil(t, info)
}

func TestNonBlockingAcquire(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	ok, err := m.Acquire(ctx, "res-b", AcquireOptions{Blocking: true, Timeout: time.Second})
	require.NoError(t, err)
	require.True(t, ok)

	other := NewManager(m.client, "other-pod")
	ok, err = other.Acquire(ctx, "res-b", AcquireOptions{Blocking: false})
	require.NoError(t, err)
	assert.False(t, ok, "non-blocking acquire of a held lock returns immediately")
}

func TestBlockingAcquireTimesOut(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	ok, err := m.Acquire(ctx, "res-c", AcquireOptions{Blocking: true, Timeout: time.Second})
	require.NoError(t, err)
	require.True(t, ok)

	other := NewManager(m.client, "other-pod")
	start := time.Now()
	ok, err = other.Acquire(ctx, "res-c", AcquireOptions{Blocking: true, Timeout: 300 * time.Millisecond})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)
}

func TestReleaseNotOwned(t *testing.T) {
	m, _ := newTestManager(t)
	assert.ErrorIs(t, m.Release(context.Background(), "never-held"), ErrLockNotOwned)
}

func TestRenewExtendsLease(t *testing.T) {
	m, mr := newTestManager(t)
	ctx := context.Background()

	ok, err := m.Acquire(ctx, "res-d", AcquireOptions{Blocking: true, Timeout: time.Second, LeaseTTL: time.Second})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.Renew(ctx, "res-d", 5*time.Second))

	info, err := m.LockInfo(ctx, "res-d")
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, 1, info.RenewalCount)

	// lease survives past the original TTL
	mr.FastForward(2 * time.Second)
	locked, err := m.IsLocked(ctx, "res-d")
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestRenewalFailureMarksLockLost(t *testing.T) {
	m, mr := newTestManager(t)
	m.SetRenewalInterval(20 * time.Millisecond)
	ctx := context.Background()

	ok, err := m.Acquire(ctx, "res-e", AcquireOptions{Blocking: true, Timeout: time.Second, LeaseTTL: 30 * time.Second})
	require.NoError(t, err)
	require.True(t, ok)

	lost := m.Lost("res-e")
	require.NotNil(t, lost)

	// Simulate the lock being stolen out from under us.
	mr.Del("lock:{res-e}")

	select {
	case <-lost:
	case <-time.After(2 * time.Second):
		t.Fatal("expected lost channel to close after renewal failure")
	}
}

func TestForceRelease(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	ok, err := m.Acquire(ctx, "res-f", AcquireOptions{Blocking: true, Timeout: time.Second})
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, m.ForceRelease(ctx, "res-f"))

	locked, err := m.IsLocked(ctx, "res-f")
	require.NoError(t, err)
	assert.False(t, locked)
}

func TestQueueFairness(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	// Holder keeps the lock while three waiters enroll with different
	// priorities, then releases. Grant order must be high, medium, low.
	ok, err := m.Acquire(ctx, "res-g", AcquireOptions{Blocking: true, Timeout: time.Second})
	require.NoError(t, err)
	require.True(t, ok)

	var mu sync.Mutex
	var order []string
	var wg sync.WaitGroup

	acquireAndRecord := func(name string, priority int, delay time.Duration) {
		defer wg.Done()
		time.Sleep(delay) // stagger enrollment so queue membership is stable
		waiter := NewManager(m.client, name)
		got, err := waiter.Acquire(ctx, "res-g", AcquireOptions{
			Blocking: true,
			Timeout:  10 * time.Second,
			Priority: priority,
		})
		require.NoError(t, err)
		require.True(t, got, "%s should acquire within timeout", name)
		mu.Lock()
		order = append(order, name)
		mu.Unlock()
		time.Sleep(100 * time.Millisecond) // hold briefly so ordering is observable
		require.NoError(t, waiter.Release(ctx, "res-g"))
	}

	wg.Add(3)
	go acquireAndRecord("low", 0, 0)
	go acquireAndRecord("high", 10, 20*time.Millisecond)
	go acquireAndRecord("medium", 5, 40*time.Millisecond)

	// Give all three time to enroll, then release.
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, m.Release(ctx, "res-g"))

	wg.Wait()
	assert.Equal(t, []string{"high", "medium", "low"}, order)
}

func TestWithLockReleasesOnPanic(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = m.WithLock(ctx, "res-h", AcquireOptions{Timeout: time.Second}, func(ctx context.Context) error {
			panic("boom")
		})
	})

	locked, err := m.IsLocked(ctx, "res-h")
	require.NoError(t, err)
	assert.False(t, locked, "lock must be released even when fn panics")
}

func TestDeadlockDetection(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	// owner-1 holds A; owner-2 holds B and blocks waiting for A;
	// owner-1 then requesting B closes the cycle.
	ok, err := m.Acquire(ctx, "dl-a", AcquireOptions{Blocking: true, Timeout: time.Second, Owner: "owner-1"})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Acquire(ctx, "dl-b", AcquireOptions{Blocking: true, Timeout: time.Second, Owner: "owner-2"})
	require.NoError(t, err)
	require.True(t, ok)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = m.Acquire(ctx, "dl-a", AcquireOptions{Blocking: true, Timeout: 3 * time.Second, Owner: "owner-2"})
	}()

	// Wait until owner-2 is enrolled as waiting.
	require.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.waiting["owner-2"] == "dl-a"
	}, time.Second, 10*time.Millisecond)

	_, err = m.Acquire(ctx, "dl-b", AcquireOptions{Blocking: true, Timeout: time.Second, Owner: "owner-1"})
	assert.ErrorIs(t, err, ErrDeadlockDetected)

	require.NoError(t, m.Release(ctx, "dl-a"))
	<-done
	require.NoError(t, m.Release(ctx, "dl-a")) // owner-2 acquired it after release
	require.NoError(t, m.Release(ctx, "dl-b"))
}
