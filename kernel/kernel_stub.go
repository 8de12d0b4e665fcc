//go:build !amd64
// +build !amd64

// File: kernel/kernel_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub for architectures without assembly kernels. The interference
// primitives stay functional so the coordination layer remains testable;
// the timed-kernel registry is empty and the driver refuses to run.

package kernel

import "sync/atomic"

// Supported reports whether timed kernels exist for this architecture.
func Supported() bool { return false }

// Registry returns nil: there are no timed kernels off amd64.
func Registry() []Kernel { return nil }

// Read performs one plain load of the cell.
func Read(mem *uint64) {
	atomic.LoadUint64(mem)
}

// Write performs one plain store of zero to the cell.
func Write(mem *uint64) {
	atomic.StoreUint64(mem, 0)
}

// Pause is a no-op spin-wait hint off amd64.
func Pause() {}
