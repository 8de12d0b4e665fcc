// File: internal/cacheline/cacheline.go
// Author: momentics <momentics@gmail.com>
//
// Cache-line-aligned scratch allocation. Go has no alignment attribute, so
// the aligned cell is carved out of an oversized backing array and rounded
// up to the next line boundary.

package cacheline

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Size is the coherence-unit size the scratch cell is aligned to.
const Size = unsafe.Sizeof(cpu.CacheLinePad{})

// Block backs one aligned scratch cell. The aligned region spans two full
// lines: the first line is the contended cell, the second exists so a
// line-straddling access stays inside the allocation.
type Block struct {
	buf [3 * Size]byte
}

// New allocates a Block on the heap. Heap objects do not move, so the
// alignment computed by Cell stays valid for the process lifetime; a
// stack-resident Block would lose it when the stack is copied.
func New() *Block {
	return &Block{}
}

// Cell returns the line-aligned base of the block.
func (b *Block) Cell() *uint64 {
	base := unsafe.Pointer(&b.buf[0])
	var off uintptr
	if r := uintptr(base) % Size; r != 0 {
		off = Size - r
	}
	return (*uint64)(unsafe.Add(base, off))
}
