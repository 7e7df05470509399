// Package pool implements a bounded, health-checked pool of long-lived
// client handles (database connections, cache clients).
//
// A Pool owns a fixed number of slots. Each slot holds at most one live
// resource and is either idle, checked out by exactly one Lease, being
// probed by the background sweep, or empty after its resource was evicted.
// Callers borrow a resource with Acquire and give it back with
// Lease.Release, normally via defer:
//
//	lease, err := p.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	defer lease.Release()
//	conn := lease.Value()
package pool

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ourchat/ourchat/internal/logging"
)

var (
	// ErrClosed is returned by Acquire once the pool has been closed.
	ErrClosed = errors.New("pool closed")

	// ErrAcquireTimeout is returned when Config.AcquireTimeout elapses
	// before a resource becomes available.
	ErrAcquireTimeout = errors.New("pool acquire timeout")
)

const (
	DefaultSweepInterval = 30 * time.Second
	DefaultProbeTimeout  = 2 * time.Second
)

// Resource is a pooled client handle.
type Resource interface {
	// Ping reports whether the handle is still usable.
	Ping(ctx context.Context) error
	// Close releases the underlying connection.
	Close() error
}

// Connector opens a new resource.
type Connector[T Resource] func(ctx context.Context) (T, error)

// Config controls pool sizing and health checking.
//
// AcquireTimeout of zero means Acquire waits until a resource is released,
// the caller's context ends, or the pool is closed.
type Config struct {
	Name           string
	Size           int
	SweepInterval  time.Duration
	ProbeTimeout   time.Duration
	AcquireTimeout time.Duration
}

type slotState int

const (
	slotEvicted slotState = iota
	slotIdle
	slotCheckedOut
	slotSweeping
	slotReconnecting
)

type slot[T Resource] struct {
	res   T
	state slotState
}

// Pool is a fixed-capacity pool of resources of type T.
type Pool[T Resource] struct {
	cfg     Config
	connect Connector[T]
	logger  logging.Logger

	mu       sync.Mutex
	slots    []slot[T]
	free     []int
	waiters  []chan int
	active   int
	sweeping int
	running  bool

	done   chan struct{}
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stats counters
}

type counters struct {
	evictions       atomic.Uint64
	reconnects      atomic.Uint64
	connectFailures atomic.Uint64
	acquireWaits    atomic.Uint64
}

// Stats is a point-in-time view of the pool.
type Stats struct {
	Capacity int
	Size     int
	Idle     int
	Active   int
}

// New builds a pool and synchronously opens cfg.Size resources. Resources
// that fail to connect are logged and left out, so the pool may start
// smaller than requested; the sweep keeps trying to fill empty slots.
func New[T Resource](ctx context.Context, cfg Config, connect Connector[T], l logging.Logger) (*Pool[T], error) {
	if cfg.Size <= 0 {
		return nil, errors.New("pool size must be positive")
	}
	if connect == nil {
		return nil, errors.New("pool connector is required")
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = DefaultProbeTimeout
	}

	sweepCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	p := &Pool[T]{
		cfg:     cfg,
		connect: connect,
		logger:  l.With("module", "pool", "pool", cfg.Name),
		slots:   make([]slot[T], cfg.Size),
		free:    make([]int, 0, cfg.Size),
		running: true,
		done:    make(chan struct{}),
		cancel:  cancel,
	}

	for i := range p.slots {
		res, err := connect(ctx)
		if err != nil {
			p.stats.connectFailures.Add(1)
			p.logger.Error(ctx, "failed to open pooled resource", "slot", i, "error", err)
			continue
		}
		p.slots[i] = slot[T]{res: res, state: slotIdle}
		p.free = append(p.free, i)
	}

	p.logger.Info(ctx, "pool initialized", "capacity", cfg.Size, "size", len(p.free))

	p.wg.Add(1)
	go p.sweepLoop(sweepCtx)

	return p, nil
}

// Acquire borrows an idle resource, blocking while none is available.
func (p *Pool[T]) Acquire(ctx context.Context) (*Lease[T], error) {
	if p.cfg.AcquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, p.cfg.AcquireTimeout, ErrAcquireTimeout)
		defer cancel()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil, ErrClosed
	}
	if n := len(p.free); n > 0 {
		idx := p.free[n-1]
		p.free = p.free[:n-1]
		p.slots[idx].state = slotCheckedOut
		p.active++
		res := p.slots[idx].res
		p.mu.Unlock()
		return newLease(p, idx, res), nil
	}

	ch := make(chan int, 1)
	p.waiters = append(p.waiters, ch)
	p.mu.Unlock()
	p.stats.acquireWaits.Add(1)

	select {
	case idx := <-ch:
		return newLease(p, idx, p.resource(idx)), nil
	case <-p.done:
		p.abandon(ch)
		return nil, ErrClosed
	case <-ctx.Done():
		p.abandon(ch)
		if errors.Is(context.Cause(ctx), ErrAcquireTimeout) {
			return nil, ErrAcquireTimeout
		}
		return nil, ctx.Err()
	}
}

// Do acquires a resource, runs fn with it and releases it afterwards.
func (p *Pool[T]) Do(ctx context.Context, fn func(T) error) error {
	lease, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer lease.Release()
	return fn(lease.Value())
}

// Close stops the sweep, wakes every waiting Acquire and closes all idle
// resources. Resources still checked out are closed when released.
// Close is idempotent.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.waiters = nil
	close(p.done)
	p.mu.Unlock()

	p.cancel()
	p.wg.Wait()

	p.mu.Lock()
	var idle []T
	for _, idx := range p.free {
		idle = append(idle, p.slots[idx].res)
		p.clearSlot(idx)
	}
	p.free = nil
	p.mu.Unlock()

	for _, res := range idle {
		p.discard(res)
	}
	p.logger.Info(context.Background(), "pool closed", "closed_idle", len(idle))
}

// Size reports the number of live resources, idle or checked out.
func (p *Pool[T]) Size() int {
	s := p.Stats()
	return s.Size
}

// Active reports the number of checked-out resources.
func (p *Pool[T]) Active() int {
	s := p.Stats()
	return s.Active
}

// Idle reports the number of resources available for Acquire.
func (p *Pool[T]) Idle() int {
	s := p.Stats()
	return s.Idle
}

func (p *Pool[T]) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	idle := len(p.free) + p.sweeping
	return Stats{
		Capacity: len(p.slots),
		Size:     idle + p.active,
		Idle:     idle,
		Active:   p.active,
	}
}

func (p *Pool[T]) Name() string {
	return p.cfg.Name
}

func (p *Pool[T]) resource(idx int) T {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.slots[idx].res
}

// abandon removes ch from the waiter queue. A slot handed over after the
// caller stopped waiting is passed on or, if the pool closed, discarded.
func (p *Pool[T]) abandon(ch chan int) {
	p.mu.Lock()
	for i, w := range p.waiters {
		if w == ch {
			p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
			break
		}
	}
	p.mu.Unlock()

	select {
	case idx := <-ch:
		p.giveBack(idx, true)
	default:
	}
}

// release is called once per lease.
func (p *Pool[T]) release(idx int, res T) {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()

	healthy := running && p.probe(res)
	p.giveBack(idx, healthy)
}

func (p *Pool[T]) giveBack(idx int, healthy bool) {
	p.mu.Lock()
	p.active--
	if healthy && p.running {
		p.makeIdle(idx)
		p.mu.Unlock()
		return
	}
	res := p.slots[idx].res
	p.clearSlot(idx)
	running := p.running
	p.mu.Unlock()

	if running {
		p.stats.evictions.Add(1)
		p.logger.Warn(context.Background(), "discarding unhealthy resource", "slot", idx)
	}
	p.discard(res)
}

// makeIdle hands slot idx to one waiter or puts it on the free list.
// Must be called with p.mu held.
func (p *Pool[T]) makeIdle(idx int) {
	if len(p.waiters) > 0 {
		ch := p.waiters[0]
		p.waiters = p.waiters[1:]
		p.slots[idx].state = slotCheckedOut
		p.active++
		ch <- idx
		return
	}
	p.slots[idx].state = slotIdle
	p.free = append(p.free, idx)
}

// Must be called with p.mu held.
func (p *Pool[T]) clearSlot(idx int) {
	var zero T
	p.slots[idx] = slot[T]{res: zero, state: slotEvicted}
}

func (p *Pool[T]) probe(res T) bool {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.ProbeTimeout)
	defer cancel()
	return res.Ping(ctx) == nil
}

func (p *Pool[T]) discard(res T) {
	if err := res.Close(); err != nil {
		p.logger.Warn(context.Background(), "error closing pooled resource", "error", err)
	}
}
