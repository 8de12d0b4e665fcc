package measure_test

import (
	"testing"

	"github.com/momentics/linelat/kernel"
	"github.com/momentics/linelat/measure"
)

// constKernel reports a fixed cycle count and records its invocations.
type constKernel struct {
	cycles int64
	calls  int
}

func (k *constKernel) Name() string { return "const" }

func (k *constKernel) Run(mem *uint64) int64 {
	k.calls++
	return k.cycles
}

func TestMedianOddCount(t *testing.T) {
	if got := measure.Median([]int64{5, 1, 9, 3, 7}); got != 5 {
		t.Fatalf("Median = %d, want 5", got)
	}
}

func TestMedianEvenCountTakesIndexHalf(t *testing.T) {
	// Sorted: 1 2 3 4; index 4/2 = 2 selects 3, no interpolation.
	if got := measure.Median([]int64{4, 1, 3, 2}); got != 3 {
		t.Fatalf("Median = %d, want 3", got)
	}
}

func TestMedianTies(t *testing.T) {
	if got := measure.Median([]int64{7, 7, 1, 7}); got != 7 {
		t.Fatalf("Median = %d, want 7", got)
	}
	if got := measure.Median([]int64{2, 2, 2, 2, 2}); got != 2 {
		t.Fatalf("Median = %d, want 2", got)
	}
}

func TestMedianSingleSample(t *testing.T) {
	if got := measure.Median([]int64{42}); got != 42 {
		t.Fatalf("Median = %d, want 42", got)
	}
}

func TestMeasureConstantKernel(t *testing.T) {
	k := &constKernel{cycles: 1234}
	s := measure.NewSampler(25)
	var cell uint64
	if got := s.Measure(k, &cell); got != 1234 {
		t.Fatalf("Measure = %d, want 1234", got)
	}
	if k.calls != 25 {
		t.Fatalf("kernel invoked %d times, want 25", k.calls)
	}
}

func TestNewSamplerDefaultsRuns(t *testing.T) {
	if got := measure.NewSampler(0).Runs(); got != measure.DefaultRuns {
		t.Fatalf("Runs = %d, want %d", got, measure.DefaultRuns)
	}
	if got := measure.NewSampler(-3).Runs(); got != measure.DefaultRuns {
		t.Fatalf("Runs = %d, want %d", got, measure.DefaultRuns)
	}
}

func TestCyclesPerOpNormalization(t *testing.T) {
	if got := measure.CyclesPerOp(int64(kernel.OpsPerRun) * 3); got != 3.0 {
		t.Fatalf("CyclesPerOp = %v, want 3.0", got)
	}
	if got := measure.CyclesPerOp(0); got != 0.0 {
		t.Fatalf("CyclesPerOp(0) = %v, want 0", got)
	}
}
