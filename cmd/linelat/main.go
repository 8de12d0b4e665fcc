// File: cmd/linelat/main.go
// Author: momentics <momentics@gmail.com>
//
// linelat measures the per-operation cycle cost of atomic memory kernels on
// a shared cache line while pinned sibling cores generate controlled
// read/write interference on that line.

package main

import (
	"flag"
	"log"
	"os"
	"sort"

	"github.com/momentics/linelat/bench"
	"github.com/momentics/linelat/control"
	"github.com/momentics/linelat/interference"
	"github.com/momentics/linelat/kernel"
	"github.com/momentics/linelat/measure"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("linelat: ")

	var (
		runs     = flag.Int("runs", measure.DefaultRuns, "samples per kernel per interference mode")
		baseCore = flag.Int("base-core", 0, "logical core reserved for measurement")
		workers  = flag.Int("workers", interference.PoolSize, "interference workers per round")
		debug    = flag.Bool("debug", false, "dump the metrics registry after the run")
	)
	flag.Parse()

	if !kernel.Supported() {
		log.Print("no timed kernels for this architecture (amd64 only)")
		os.Exit(1)
	}

	metrics := control.NewMetricsRegistry()
	cfg := bench.DefaultConfig()
	cfg.Runs = *runs
	cfg.BaseCore = *baseCore
	cfg.Workers = *workers
	cfg.Metrics = metrics

	runner, err := bench.New(cfg)
	if err != nil {
		log.Print(err)
		os.Exit(1)
	}
	if err := runner.Run(); err != nil {
		log.Print(err)
		os.Exit(1)
	}

	if *debug {
		snap := metrics.Snapshot()
		keys := make([]string, 0, len(snap))
		for k := range snap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			log.Printf("%s=%d", k, snap[k])
		}
	}
}
