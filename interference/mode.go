// File: interference/mode.go
// Author: momentics <momentics@gmail.com>
//
// Interference mode enumeration and the per-worker target mapping.

package interference

// Mode names which logical cores touch the shared line during a measurement
// round, and whether they read or write it. Immutable once a round starts.
type Mode int

const (
	None Mode = iota
	HyperthreadReadLine
	HyperthreadWriteLine
	OtherCoreReadLine
	OtherCoreWriteLine
	ThreeCoresReadLine
	ThreeCoresWriteLine
	modeCount
)

var modeNames = [...]string{
	"none",
	"hyperthread_read_line",
	"hyperthread_write_line",
	"other_core_read_line",
	"other_core_write_line",
	"three_cores_read_line",
	"three_cores_write_line",
}

// String returns the mode's report name.
func (m Mode) String() string {
	if m < 0 || m >= modeCount {
		return "unknown"
	}
	return modeNames[m]
}

// Modes returns all interference modes in benchmark order.
func Modes() []Mode {
	out := make([]Mode, 0, modeCount)
	for m := None; m < modeCount; m++ {
		out = append(out, m)
	}
	return out
}

// TargetFor decides whether the worker pinned to coreID attacks the shared
// line in this mode, and with which access. The core ids are fixed for the
// assumed layout: core 1 is the SMT sibling of measurement core 0; cores
// 2, 4, 6 are separate physical cores. The mapping is not topology-scaled.
// Workers outside the mapped set run against a private cell, so only
// scheduling pressure, not coherence traffic, remains.
func TargetFor(m Mode, coreID int) (shared, write bool) {
	switch m {
	case HyperthreadReadLine:
		shared = coreID == 1
	case HyperthreadWriteLine:
		shared = coreID == 1
		write = shared
	case OtherCoreReadLine:
		shared = coreID == 2
	case OtherCoreWriteLine:
		shared = coreID == 2
		write = shared
	case ThreeCoresReadLine:
		shared = coreID == 2 || coreID == 4 || coreID == 6
	case ThreeCoresWriteLine:
		shared = coreID == 2 || coreID == 4 || coreID == 6
		write = shared
	}
	return shared, write
}
