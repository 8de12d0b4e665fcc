// File: report/console.go
// Author: momentics <momentics@gmail.com>
//
// Console reporter. Rows are queued while a round is live and written in
// FIFO order on Flush, after the round's workers have been reaped, so
// console I/O never lands inside an active interference window.

package report

import (
	"fmt"
	"io"

	"github.com/eapache/queue"
)

// ConsoleReporter formats one header line per interference mode followed by
// one row per kernel.
type ConsoleReporter struct {
	w    io.Writer
	rows *queue.Queue
}

// NewConsole creates a reporter writing to w.
func NewConsole(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{
		w:    w,
		rows: queue.New(),
	}
}

// BeginMode queues the round header.
func (r *ConsoleReporter) BeginMode(name string) {
	r.rows.Add(fmt.Sprintf("interference type: %s\n", name))
}

// Report queues one kernel result row.
func (r *ConsoleReporter) Report(kernel string, cyclesPerOp float64) {
	r.rows.Add(fmt.Sprintf("%16s: %8.2f cycles/op\n", kernel, cyclesPerOp))
}

// Flush drains the queue to the writer. Safe to call with an empty queue.
func (r *ConsoleReporter) Flush() error {
	for r.rows.Length() > 0 {
		line := r.rows.Remove().(string)
		if _, err := io.WriteString(r.w, line); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}
	return nil
}
