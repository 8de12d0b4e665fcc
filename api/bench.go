// Package api
// Author: momentics <momentics@gmail.com>
//
// Shared contracts between the benchmark driver, the sampler, the
// interference layer and the timed kernels.

package api

// Kernel is one opaque timed operation. Run performs a fixed block of
// operations against the memory cell and returns the elapsed cycle count
// for the whole block.
type Kernel interface {
	Name() string
	Run(mem *uint64) int64
}

// Pinner binds the calling OS thread to one logical CPU. The production
// pinner lives in the affinity package; components take it as a dependency
// so tests can substitute a recorder.
type Pinner func(cpuID int) error

// Reporter consumes benchmark results, one round per interference mode.
// Implementations may buffer; rows must come out in submission order.
type Reporter interface {
	BeginMode(name string)
	Report(kernel string, cyclesPerOp float64)
	Flush() error
}
