// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations
// are located in separate files (affinity_linux.go, affinity_stub.go)
// guarded by build tags.

package affinity

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrBadCore reports a logical core id outside the online topology.
var ErrBadCore = errors.New("affinity: logical core id out of range")

// SetAffinity pins the current OS thread to a given logical CPU/core on
// supported platforms. The id must address an online logical processor.
// Callers that need exact core placement for correctness must treat any
// error as fatal; there is no retry here.
func SetAffinity(cpuID int) error {
	if n := runtime.NumCPU(); cpuID < 0 || cpuID >= n {
		return fmt.Errorf("%w: %d (online: %d)", ErrBadCore, cpuID, n)
	}
	return setAffinityPlatform(cpuID)
}
