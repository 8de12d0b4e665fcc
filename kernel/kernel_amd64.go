//go:build amd64
// +build amd64

// File: kernel/kernel_amd64.go
// Author: momentics <momentics@gmail.com>
//
// Declarations for the assembly kernels in kernel_amd64.s.

package kernel

// Supported reports whether timed kernels exist for this architecture.
func Supported() bool { return true }

// Registry returns every timed kernel in fixed registration order.
func Registry() []Kernel {
	return []Kernel{
		{"add", runAdd},
		{"add_mfence", runAddMfence},
		{"lockadd", runLockAdd},
		{"xadd", runXadd},
		{"swap", runSwap},
		{"cmpxchg", runCmpxchg},
		{"lockadd_unalign", runLockAddUnalign},
	}
}

//go:noescape
func runAdd(mem *uint64) int64

//go:noescape
func runAddMfence(mem *uint64) int64

//go:noescape
func runLockAdd(mem *uint64) int64

//go:noescape
func runXadd(mem *uint64) int64

//go:noescape
func runSwap(mem *uint64) int64

//go:noescape
func runCmpxchg(mem *uint64) int64

//go:noescape
func runLockAddUnalign(mem *uint64) int64

// Read performs one plain load of the cell.
//
//go:noescape
func Read(mem *uint64)

// Write performs one plain store of zero to the cell.
//
//go:noescape
func Write(mem *uint64)

// Pause issues the PAUSE spin-wait hint. When executing a spin-wait loop,
// the processor suffers a severe penalty on exit because it detects a
// possible memory order violation; PAUSE hints that the sequence is a
// spin-wait loop and avoids that in most situations.
func Pause()
