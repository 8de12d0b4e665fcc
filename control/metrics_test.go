package control_test

import (
	"sync"
	"testing"

	"github.com/momentics/linelat/control"
)

func TestMetricsAddAndGet(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Add("rounds", 1)
	mr.Add("rounds", 2)
	if got := mr.Get("rounds"); got != 3 {
		t.Fatalf("Get(rounds) = %d, want 3", got)
	}
	if got := mr.Get("missing"); got != 0 {
		t.Fatalf("Get(missing) = %d, want 0", got)
	}
}

func TestMetricsSnapshotIsCopy(t *testing.T) {
	mr := control.NewMetricsRegistry()
	mr.Add("samples", 100)
	snap := mr.Snapshot()
	snap["samples"] = 0
	if got := mr.Get("samples"); got != 100 {
		t.Fatalf("registry mutated through snapshot: %d", got)
	}
}

func TestMetricsNilRegistry(t *testing.T) {
	var mr *control.MetricsRegistry
	mr.Add("x", 1) // must not panic
	if mr.Get("x") != 0 || mr.Snapshot() != nil {
		t.Fatal("nil registry must drop updates")
	}
}

func TestMetricsConcurrentAdds(t *testing.T) {
	mr := control.NewMetricsRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				mr.Add("hits", 1)
			}
		}()
	}
	wg.Wait()
	if got := mr.Get("hits"); got != 8000 {
		t.Fatalf("Get(hits) = %d, want 8000", got)
	}
}
