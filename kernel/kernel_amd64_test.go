//go:build amd64
// +build amd64

package kernel_test

import (
	"testing"

	"github.com/momentics/linelat/internal/cacheline"
	"github.com/momentics/linelat/kernel"
)

func TestRegistryOrder(t *testing.T) {
	want := []string{
		"add", "add_mfence", "lockadd", "xadd", "swap", "cmpxchg", "lockadd_unalign",
	}
	reg := kernel.Registry()
	if len(reg) != len(want) {
		t.Fatalf("registry has %d kernels, want %d", len(reg), len(want))
	}
	for i, k := range reg {
		if k.Name() != want[i] {
			t.Errorf("kernel %d = %q, want %q", i, k.Name(), want[i])
		}
	}
}

func TestKernelsReturnNonNegativeCycles(t *testing.T) {
	cell := cacheline.New().Cell()
	for _, k := range kernel.Registry() {
		if got := k.Run(cell); got < 0 {
			t.Errorf("%s returned %d cycles", k.Name(), got)
		}
	}
}

// The additive kernels each apply +1 per operation, so an uncontended run
// moves the cell by exactly OpsPerRun.
func TestAdditiveKernelsMutateCell(t *testing.T) {
	additive := map[string]bool{
		"add": true, "add_mfence": true, "lockadd": true, "xadd": true, "cmpxchg": true,
	}
	for _, k := range kernel.Registry() {
		if !additive[k.Name()] {
			continue
		}
		cell := cacheline.New().Cell()
		k.Run(cell)
		if *cell != kernel.OpsPerRun {
			t.Errorf("%s: cell = %d, want %d", k.Name(), *cell, kernel.OpsPerRun)
		}
	}
}

func TestUnalignedKernelLeavesBaseWordIntact(t *testing.T) {
	cell := cacheline.New().Cell()
	*cell = 0
	for _, k := range kernel.Registry() {
		if k.Name() != "lockadd_unalign" {
			continue
		}
		k.Run(cell)
		if *cell != 0 {
			t.Errorf("base word mutated by straddling kernel: %d", *cell)
		}
	}
}

func TestInterferencePrimitives(t *testing.T) {
	cell := cacheline.New().Cell()
	*cell = 7
	kernel.Read(cell)
	if *cell != 7 {
		t.Fatalf("Read mutated the cell: %d", *cell)
	}
	kernel.Write(cell)
	if *cell == 7 {
		t.Fatal("Write left the cell untouched")
	}
}

func TestPauseReturns(t *testing.T) {
	kernel.Pause()
}
