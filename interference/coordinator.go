// File: interference/coordinator.go
// Author: momentics <momentics@gmail.com>
//
// Round lifecycle: spawn pinned workers, hold the steady-state barrier,
// signal shutdown and reap.

package interference

import (
	"runtime"
	"sync"

	"github.com/momentics/linelat/affinity"
	"github.com/momentics/linelat/api"
	"github.com/momentics/linelat/control"
	"github.com/momentics/linelat/kernel"
)

// PoolSize is the default number of interference workers per round.
const PoolSize = 3

// WorkerFunc is a worker body. The default is Coordinator.runWorker; tests
// substitute an instrumented fake.
type WorkerFunc func(d Descriptor, st *State)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithBaseCore sets the measurement core; workers occupy the pool-size
// cores directly above it.
func WithBaseCore(core int) Option {
	return func(c *Coordinator) { c.baseCore = core }
}

// WithPoolSize overrides the number of workers per round.
func WithPoolSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.pool = n
		}
	}
}

// WithPinner replaces the thread pinner.
func WithPinner(pin api.Pinner) Option {
	return func(c *Coordinator) {
		if pin != nil {
			c.pin = pin
		}
	}
}

// WithMetrics attaches a metrics registry for spawn/join counters.
func WithMetrics(m *control.MetricsRegistry) Option {
	return func(c *Coordinator) { c.metrics = m }
}

// WithWorker replaces the worker body. Test seam.
func WithWorker(fn WorkerFunc) Option {
	return func(c *Coordinator) {
		if fn != nil {
			c.worker = fn
		}
	}
}

// Coordinator owns the run-state flags and the worker pool for the round
// that is currently live. Exactly one round may be live at a time; Activate
// and Deactivate must alternate, from a single driver goroutine.
type Coordinator struct {
	scratch  *uint64
	baseCore int
	pool     int
	pin      api.Pinner
	worker   WorkerFunc
	metrics  *control.MetricsRegistry

	st State
	wg sync.WaitGroup
}

// New creates a Coordinator attacking the given scratch cell.
func New(scratch *uint64, opts ...Option) *Coordinator {
	c := &Coordinator{
		scratch: scratch,
		pool:    PoolSize,
		pin:     affinity.SetAffinity,
	}
	c.worker = c.runWorker
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State exposes the round's coordination block; fake workers use it to
// observe the exit flag and report steady-state.
func (c *Coordinator) State() *State {
	return &c.st
}

// Activate starts one worker per pool slot, on cores baseCore+1 through
// baseCore+pool, and blocks until every worker has completed at least one
// full interference iteration. No measurement may begin earlier; the
// barrier is what guarantees the caches are already in the coherence state
// the mode describes.
//
// The wait is a deliberate spin with a yield, the benchmark's equivalent of
// sleep(0). Heavier blocking primitives could reshape the coherence state
// the workers just established.
func (c *Coordinator) Activate(m Mode) {
	c.st.resetRunning()
	c.st.clearExit()

	for i := 0; i < c.pool; i++ {
		d := Descriptor{CoreID: c.baseCore + 1 + i, Mode: m}
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.worker(d, &c.st)
		}()
		c.metrics.Add("interference.workers_spawned", 1)
	}

	for c.st.NumRunning() < int32(c.pool) {
		kernel.Pause()
		runtime.Gosched()
	}
}

// Deactivate requests shutdown, joins every worker and clears the exit flag
// so the next round starts clean. It must not return before the last worker
// has exited: the scratch cell and the flags are reused by the next round.
func (c *Coordinator) Deactivate() {
	c.st.requestExit()
	c.wg.Wait()
	c.metrics.Add("interference.workers_joined", int64(c.pool))
	c.st.clearExit()
}
