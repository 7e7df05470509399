package pool

import (
	"context"
	"time"
)

func (p *Pool[T]) sweepLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.sweep(ctx)
		}
	}
}

// sweep probes every idle resource and reopens dead or evicted slots.
// Each slot is handed back as soon as its own probe or reconnect finishes.
// Probing and reconnecting happen without holding p.mu.
func (p *Pool[T]) sweep(ctx context.Context) {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	idle := make([]int, 0, len(p.free))
	held := make([]T, 0, len(p.free))
	for _, idx := range p.free {
		p.slots[idx].state = slotSweeping
		idle = append(idle, idx)
		held = append(held, p.slots[idx].res)
	}
	p.free = p.free[:0]
	p.sweeping = len(idle)

	var reopen []int
	for i := range p.slots {
		if p.slots[i].state == slotEvicted {
			p.slots[i].state = slotReconnecting
			reopen = append(reopen, i)
		}
	}
	p.mu.Unlock()

	for i, idx := range idle {
		res := held[i]
		if p.probe(res) {
			p.install(idx, res, true)
			continue
		}

		p.mu.Lock()
		p.sweeping--
		p.slots[idx] = slot[T]{state: slotReconnecting}
		p.mu.Unlock()

		p.stats.evictions.Add(1)
		p.logger.Warn(ctx, "idle resource failed health check, reconnecting", "slot", idx)
		p.discard(res)
		reopen = append(reopen, idx)
	}

	for _, idx := range reopen {
		p.reopen(ctx, idx)
	}
}

// install puts res into slot idx. probed marks a resource that was
// counted in p.sweeping.
func (p *Pool[T]) install(idx int, res T, probed bool) {
	p.mu.Lock()
	if probed {
		p.sweeping--
	}
	if !p.running {
		p.clearSlot(idx)
		p.mu.Unlock()
		p.discard(res)
		return
	}
	p.slots[idx].res = res
	p.makeIdle(idx)
	p.mu.Unlock()
}

// reopen connects a fresh resource for slot idx and makes it available
// right away. On failure the slot stays empty until the next sweep.
func (p *Pool[T]) reopen(ctx context.Context, idx int) {
	res, err := p.connect(ctx)
	if err != nil {
		p.stats.connectFailures.Add(1)
		p.logger.Error(ctx, "failed to reconnect pooled resource", "slot", idx, "error", err)
		p.mu.Lock()
		p.clearSlot(idx)
		p.mu.Unlock()
		return
	}
	p.stats.reconnects.Add(1)
	p.install(idx, res, false)
}
