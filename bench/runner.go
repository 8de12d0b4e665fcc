// File: bench/runner.go
// Author: momentics <momentics@gmail.com>
//
// Top-level benchmark driver. Pins the measurement thread once, then for
// every interference mode: brings the interference pool to steady-state,
// samples every registered kernel against the shared cell, reports the
// per-operation medians and tears the pool down before the next mode.

package bench

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/momentics/linelat/affinity"
	"github.com/momentics/linelat/api"
	"github.com/momentics/linelat/control"
	"github.com/momentics/linelat/interference"
	"github.com/momentics/linelat/internal/cacheline"
	"github.com/momentics/linelat/kernel"
	"github.com/momentics/linelat/measure"
	"github.com/momentics/linelat/report"
)

// Config carries driver settings. Zero values select defaults.
type Config struct {
	// BaseCore is the logical core reserved for measurement; interference
	// workers occupy the cores directly above it.
	BaseCore int
	// Runs is the sample-set size per (mode, kernel) pair.
	Runs int
	// Workers is the interference pool size per round.
	Workers int
	// Output receives the report. Defaults to os.Stdout.
	Output io.Writer
	// Kernels overrides the timed-kernel list. Defaults to the assembly
	// registry for this architecture.
	Kernels []api.Kernel
	// Pin overrides the thread pinner. Defaults to affinity.SetAffinity.
	Pin api.Pinner
	// Worker overrides the interference worker body. Test seam.
	Worker interference.WorkerFunc
	// Metrics is an optional counter registry.
	Metrics *control.MetricsRegistry
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BaseCore: 0,
		Runs:     measure.DefaultRuns,
		Workers:  interference.PoolSize,
	}
}

// Runner executes the full benchmark: every kernel under every mode.
type Runner struct {
	cfg      Config
	block    *cacheline.Block
	scratch  *uint64
	coord    *interference.Coordinator
	sampler  *measure.Sampler
	reporter api.Reporter
}

// New validates the configuration and wires the benchmark components
// around one process-wide scratch cell.
func New(cfg Config) (*Runner, error) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Pin == nil {
		cfg.Pin = affinity.SetAffinity
	}
	if len(cfg.Kernels) == 0 {
		for _, k := range kernel.Registry() {
			cfg.Kernels = append(cfg.Kernels, k)
		}
	}
	if len(cfg.Kernels) == 0 {
		return nil, errors.New("bench: no timed kernels for this architecture")
	}

	block := cacheline.New()
	scratch := block.Cell()
	coord := interference.New(scratch,
		interference.WithBaseCore(cfg.BaseCore),
		interference.WithPoolSize(cfg.Workers),
		interference.WithPinner(cfg.Pin),
		interference.WithWorker(cfg.Worker),
		interference.WithMetrics(cfg.Metrics),
	)
	return &Runner{
		cfg:      cfg,
		block:    block,
		scratch:  scratch,
		coord:    coord,
		sampler:  measure.NewSampler(cfg.Runs),
		reporter: report.NewConsole(cfg.Output),
	}, nil
}

// Run executes all interference modes in order. Any pinning error is
// unrecoverable: without exact core placement no result is valid, so the
// error propagates and the caller terminates the process.
func (r *Runner) Run() error {
	if err := r.cfg.Pin(r.cfg.BaseCore); err != nil {
		return fmt.Errorf("bench: pin measurement core: %w", err)
	}

	for _, m := range interference.Modes() {
		r.coord.Activate(m)
		r.reporter.BeginMode(m.String())
		for _, k := range r.cfg.Kernels {
			median := r.sampler.Measure(k, r.scratch)
			r.reporter.Report(k.Name(), measure.CyclesPerOp(median))
			r.cfg.Metrics.Add("bench.samples", int64(r.sampler.Runs()))
		}
		r.coord.Deactivate()
		if err := r.reporter.Flush(); err != nil {
			return err
		}
		r.cfg.Metrics.Add("bench.rounds", 1)
	}
	return nil
}
