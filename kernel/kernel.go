// Package kernel
// Author: momentics <momentics@gmail.com>
//
// Opaque timed kernels and interference primitives. A timed kernel executes
// OpsPerRun operations of one flavor (plain add, fenced add, locked add,
// exchange, compare-and-swap, line-straddling locked add) against a single
// memory cell and reports the elapsed TSC cycles for the whole block. The
// interference primitives perform exactly one plain load or store per call.
//
// Implementations are amd64 assembly (kernel_amd64.s); other architectures
// get a stub registry and pure-Go primitives so dependent packages still
// build there.
package kernel

// OpsPerRun is the number of operations a single kernel invocation performs
// between its two timestamp reads. Per-operation cost is the returned cycle
// count divided by this.
const OpsPerRun = 40000

// UnalignedOffset is the byte offset the line-straddling kernel adds to the
// cell address. With a line-aligned cell the 8-byte access covers bytes
// 60..67, crossing the line boundary at 64.
const UnalignedOffset = 60

// Kernel is a named timed operation.
type Kernel struct {
	name string
	run  func(mem *uint64) int64
}

// Name returns the kernel's registry name.
func (k Kernel) Name() string { return k.name }

// Run times one block of OpsPerRun operations against the cell.
func (k Kernel) Run(mem *uint64) int64 { return k.run(mem) }
