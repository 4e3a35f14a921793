package racer

import (
	"context"
	"sync"
)

// Coordinator is the one-shot completion latch shared by every worker in a
// race. Workers probe it with Solved under a read lock; the unique winner
// flips it with Win under the write lock. The flag transitions false to true
// exactly once per race, and the done channel closes exactly once, which is
// how the supervisor is woken without any spurious-wake loop.
type Coordinator struct {
	mu     sync.RWMutex
	solved bool

	once sync.Once
	done chan struct{}
}

func NewCoordinator() *Coordinator {
	return &Coordinator{done: make(chan struct{})}
}

// Solved is the workers' cooperative cancellation probe. The read lock is
// released on every path.
func (c *Coordinator) Solved() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.solved
}

// Win attempts the latch transition. It returns true for exactly one caller
// over the lifetime of the coordinator; that caller owns the result report.
func (c *Coordinator) Win() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.solved {
		return false
	}
	c.solved = true
	return true
}

// Signal wakes anyone blocked in Wait. Safe to call more than once; only the
// first call has any effect.
func (c *Coordinator) Signal() {
	c.once.Do(func() { close(c.done) })
}

// Wait blocks until Signal or until ctx ends.
func (c *Coordinator) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
