// File: interference/state.go
// Author: momentics <momentics@gmail.com>
//
// Cross-thread coordination block for one benchmark round.

package interference

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// State carries the two coordination words shared by a round's workers: the
// exit request and the steady-state counter. Each word sits on its own cache
// line; a worker polling the exit flag must never pull the scratch line or
// the counter line into its cache as a side effect.
//
// Accesses are plain atomic loads and stores plus one add per worker per
// round. None of the locked kernels under measurement are used here.
type State struct {
	_       cpu.CacheLinePad
	exit    uint32
	_       cpu.CacheLinePad
	running int32
	_       cpu.CacheLinePad
}

// ExitRequested reports whether the coordinator asked workers to drain.
// Re-read on every loop iteration; never cache the result.
func (s *State) ExitRequested() bool {
	return atomic.LoadUint32(&s.exit) != 0
}

// MarkRunning counts one worker as steady-state. Each worker calls this
// exactly once, after finishing its first full interference iteration.
func (s *State) MarkRunning() {
	atomic.AddInt32(&s.running, 1)
}

// NumRunning returns how many workers have reached steady-state.
func (s *State) NumRunning() int32 {
	return atomic.LoadInt32(&s.running)
}

func (s *State) requestExit() {
	atomic.StoreUint32(&s.exit, 1)
}

func (s *State) clearExit() {
	atomic.StoreUint32(&s.exit, 0)
}

func (s *State) resetRunning() {
	atomic.StoreInt32(&s.running, 0)
}
