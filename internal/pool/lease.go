package pool

import "sync"

// Lease is exclusive ownership of one pooled resource. It must be released
// exactly once; extra Release calls are no-ops.
type Lease[T Resource] struct {
	pool *Pool[T]
	idx  int
	res  T
	once sync.Once
}

func newLease[T Resource](p *Pool[T], idx int, res T) *Lease[T] {
	return &Lease[T]{pool: p, idx: idx, res: res}
}

// Value returns the leased resource. It must not be used after Release.
func (l *Lease[T]) Value() T {
	return l.res
}

// Release probes the resource and returns it to the pool, or discards it
// when the probe fails or the pool has been closed.
func (l *Lease[T]) Release() {
	l.once.Do(func() {
		l.pool.release(l.idx, l.res)
	})
}
