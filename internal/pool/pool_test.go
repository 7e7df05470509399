package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ourchat/ourchat/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeResource struct {
	id      int
	healthy atomic.Bool
	closed  atomic.Bool
}

func (f *fakeResource) Ping(context.Context) error {
	if !f.healthy.Load() {
		return errors.New("connection lost")
	}
	return nil
}

func (f *fakeResource) Close() error {
	f.closed.Store(true)
	return nil
}

type fakeFactory struct {
	mu      sync.Mutex
	created []*fakeResource
	calls   int
	failOn  map[int]bool
}

func (f *fakeFactory) connect(context.Context) (*fakeResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failOn[f.calls] {
		return nil, errors.New("connection refused")
	}
	r := &fakeResource{id: len(f.created) + 1}
	r.healthy.Store(true)
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeFactory) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

func (f *fakeFactory) get(i int) *fakeResource {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created[i]
}

func newTestPool(t *testing.T, cfg Config, f *fakeFactory) *Pool[*fakeResource] {
	t.Helper()
	if cfg.SweepInterval == 0 {
		cfg.SweepInterval = time.Hour
	}
	p, err := New(context.Background(), cfg, f.connect, nopLogger{})
	require.NoError(t, err)
	t.Cleanup(p.Close)
	return p
}

func TestNew_OpensConfiguredSize(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Name: "db", Size: 3}, f)

	assert.Equal(t, 3, p.Size())
	assert.Equal(t, 3, p.Idle())
	assert.Equal(t, 0, p.Active())
	assert.Equal(t, 3, f.count())
}

func TestNew_ConnectFailuresShrinkPool(t *testing.T) {
	f := &fakeFactory{failOn: map[int]bool{2: true}}
	p := newTestPool(t, Config{Size: 3}, f)

	assert.Equal(t, 2, p.Size())
	assert.Equal(t, 3, p.Stats().Capacity)
}

func TestNew_InvalidConfig(t *testing.T) {
	f := &fakeFactory{}

	_, err := New(context.Background(), Config{Size: 0}, f.connect, nopLogger{})
	require.Error(t, err)

	_, err = New[*fakeResource](context.Background(), Config{Size: 1}, nil, nopLogger{})
	require.Error(t, err)
}

func TestAcquireRelease_ReusesResource(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1}, f)

	lease, err := p.Acquire(context.Background())
	require.NoError(t, err)
	first := lease.Value()
	assert.Equal(t, 1, p.Active())
	assert.Equal(t, 0, p.Idle())

	lease.Release()
	assert.Equal(t, 0, p.Active())
	assert.Equal(t, 1, p.Idle())

	lease, err = p.Acquire(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, lease.Value())
	lease.Release()
}

func TestRelease_Idempotent(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 2}, f)

	lease, err := p.Acquire(context.Background())
	require.NoError(t, err)

	lease.Release()
	lease.Release()

	assert.Equal(t, 0, p.Active())
	assert.Equal(t, 2, p.Idle())
}

func TestRelease_DiscardsUnhealthyResource(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1}, f)

	lease, err := p.Acquire(context.Background())
	require.NoError(t, err)
	res := lease.Value()
	res.healthy.Store(false)

	lease.Release()

	assert.True(t, res.closed.Load())
	assert.Equal(t, 0, p.Size())
	assert.Equal(t, 0, p.Active())
}

func TestAcquire_NeverExceedsCapacity(t *testing.T) {
	const capacity = 3
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: capacity}, f)

	var current, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lease, err := p.Acquire(context.Background())
			if !assert.NoError(t, err) {
				return
			}
			defer lease.Release()

			n := current.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			current.Add(-1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int32(capacity))
	assert.Equal(t, 0, p.Active())
	assert.Equal(t, capacity, p.Idle())
}

func TestAcquire_WaiterReceivesReleasedResource(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1}, f)

	held, err := p.Acquire(context.Background())
	require.NoError(t, err)

	got := make(chan *fakeResource, 1)
	go func() {
		lease, err := p.Acquire(context.Background())
		if err != nil {
			close(got)
			return
		}
		got <- lease.Value()
		lease.Release()
	}()

	require.Eventually(t, func() bool { return p.counterSet().acquireWaits.Load() == 1 }, time.Second, time.Millisecond)
	held.Release()

	select {
	case res, ok := <-got:
		require.True(t, ok, "waiter failed to acquire")
		assert.Same(t, held.Value(), res)
	case <-time.After(2 * time.Second):
		t.Fatal("waiter was not woken by release")
	}
}

func TestAcquire_TimeoutWhenExhausted(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1, AcquireTimeout: 20 * time.Millisecond}, f)

	held, err := p.Acquire(context.Background())
	require.NoError(t, err)
	defer held.Release()

	_, err = p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrAcquireTimeout)
}

func TestAcquire_ContextCanceled(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1}, f)

	held, err := p.Acquire(context.Background())
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = p.Acquire(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAcquire_CanceledContextWithIdleResource(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1}, f)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Acquire(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, p.Idle())
	assert.Equal(t, 0, p.Active())
}

func TestClose_WakesAllWaiters(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1}, f)

	held, err := p.Acquire(context.Background())
	require.NoError(t, err)

	const waiters = 5
	errs := make(chan error, waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			_, err := p.Acquire(context.Background())
			errs <- err
		}()
	}
	require.Eventually(t, func() bool { return p.counterSet().acquireWaits.Load() == waiters }, time.Second, time.Millisecond)

	p.Close()

	for i := 0; i < waiters; i++ {
		select {
		case err := <-errs:
			assert.ErrorIs(t, err, ErrClosed)
		case <-time.After(2 * time.Second):
			t.Fatal("waiter still blocked after Close")
		}
	}

	held.Release()
	assert.True(t, held.Value().closed.Load(), "resource released after close must be closed")
}

func TestClose_ClosesIdleAndRejectsAcquire(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 2}, f)

	p.Close()
	p.Close()

	assert.True(t, f.get(0).closed.Load())
	assert.True(t, f.get(1).closed.Load())
	assert.Equal(t, 0, p.Size())

	_, err := p.Acquire(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSweep_ReplacesDeadIdleResource(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1, SweepInterval: 10 * time.Millisecond}, f)

	dead := f.get(0)
	dead.healthy.Store(false)

	require.Eventually(t, func() bool { return f.count() == 2 && p.Idle() == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, dead.closed.Load())

	lease, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, dead, lease.Value())
	lease.Release()
}

func TestSweep_RefillsEmptySlots(t *testing.T) {
	f := &fakeFactory{failOn: map[int]bool{1: true}}
	p := newTestPool(t, Config{Size: 2, SweepInterval: 10 * time.Millisecond}, f)

	require.Eventually(t, func() bool { return p.Size() == 2 }, 2*time.Second, 5*time.Millisecond)
}

func TestDo_ReleasesAfterCallback(t *testing.T) {
	f := &fakeFactory{}
	p := newTestPool(t, Config{Size: 1}, f)

	boom := errors.New("boom")
	err := p.Do(context.Background(), func(r *fakeResource) error {
		assert.Equal(t, 1, p.Active())
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, p.Active())
	assert.Equal(t, 1, p.Idle())
}

func TestSweep_HealthyIdleServedWhileReconnecting(t *testing.T) {
	f := &fakeFactory{}
	gate := make(chan struct{})
	reconnecting := make(chan struct{}, 1)
	var opened atomic.Int32

	connect := func(ctx context.Context) (*fakeResource, error) {
		if opened.Add(1) > 2 {
			select {
			case reconnecting <- struct{}{}:
			default:
			}
			select {
			case <-gate:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		return f.connect(ctx)
	}

	p, err := New(context.Background(), Config{Size: 2, SweepInterval: 10 * time.Millisecond}, connect, nopLogger{})
	require.NoError(t, err)
	t.Cleanup(p.Close)

	f.get(0).healthy.Store(false)

	select {
	case <-reconnecting:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep never tried to reconnect")
	}

	assert.Equal(t, 1, p.Idle(), "slot being reconnected is not idle")
	assert.Equal(t, 1, p.Size())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	lease, err := p.Acquire(ctx)
	require.NoError(t, err, "healthy idle resource must not wait for the reconnect")
	assert.Same(t, f.get(1), lease.Value())
	lease.Release()

	close(gate)
	require.Eventually(t, func() bool { return p.Size() == 2 && p.Idle() == 2 }, 2*time.Second, 5*time.Millisecond)
}
