// File: interference/worker.go
// Author: momentics <momentics@gmail.com>
//
// Interference worker: a pinned tight loop issuing one read or write per
// iteration against its resolved target.

package interference

import (
	"log"

	"github.com/momentics/linelat/kernel"
)

// fatalf aborts the process on unrecoverable placement errors. Benchmark
// validity depends on exact core placement, so there is no degraded mode.
// Replaced in tests.
var fatalf = log.Fatalf

// Descriptor fixes a worker's core placement and round mode before spawn.
// Consumed once by the worker, never mutated afterwards.
type Descriptor struct {
	CoreID int
	Mode   Mode
}

// runWorker is the production worker body. It pins itself, resolves its
// target once, then loops until the exit flag is observed. After the first
// full iteration it counts itself as running, exactly once, so the
// coordinator's barrier only opens when the caches already carry the
// coherence traffic the mode calls for.
func (c *Coordinator) runWorker(d Descriptor, st *State) {
	if err := c.pin(d.CoreID); err != nil {
		fatalf("interference: worker on core %d: %v", d.CoreID, err)
		return
	}

	// Same shape as the scratch area, so a private-cell worker exercises
	// the identical access pattern against untouched memory.
	var privateMem [8]uint64
	target := &privateMem[0]
	shared, write := TargetFor(d.Mode, d.CoreID)
	if shared {
		target = c.scratch
	}

	justStarted := true
	for !st.ExitRequested() {
		if write {
			kernel.Write(target)
		} else {
			kernel.Read(target)
		}
		if justStarted {
			justStarted = false
			st.MarkRunning()
		}
	}
}
