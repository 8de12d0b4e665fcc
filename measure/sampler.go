// File: measure/sampler.go
// Author: momentics <momentics@gmail.com>
//
// Median-of-N sampling. Repeated sampling is the tool's only noise
// mitigation: the median throws away the occasional preemption or
// interrupt outlier without trimming or confidence intervals.

package measure

import (
	"sort"

	"github.com/momentics/linelat/api"
	"github.com/momentics/linelat/kernel"
)

// DefaultRuns is the sample-set size per (mode, kernel) pair.
const DefaultRuns = 100

// Sampler reduces repeated kernel timings to one representative value.
type Sampler struct {
	runs int
}

// NewSampler creates a sampler taking runs samples per measurement.
// Non-positive runs falls back to DefaultRuns.
func NewSampler(runs int) *Sampler {
	if runs <= 0 {
		runs = DefaultRuns
	}
	return &Sampler{runs: runs}
}

// Runs returns the configured sample-set size.
func (s *Sampler) Runs() int { return s.runs }

// Measure runs the kernel against the cell s.runs times and returns the
// sample median.
func (s *Sampler) Measure(k api.Kernel, mem *uint64) int64 {
	samples := make([]int64, s.runs)
	for i := range samples {
		samples[i] = k.Run(mem)
	}
	return Median(samples)
}

// Median returns the element at index len/2 of the sorted samples (for even
// counts that is the upper of the two middle elements; ties collapse, and
// no interpolation happens). Sorts in place. Samples must be non-empty.
func Median(samples []int64) int64 {
	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })
	return samples[len(samples)/2]
}

// CyclesPerOp converts a whole-block cycle count to per-operation cost.
func CyclesPerOp(cycles int64) float64 {
	return float64(cycles) / float64(kernel.OpsPerRun)
}
