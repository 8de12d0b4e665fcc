// Package control
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics for the benchmark harness: worker spawn/join counts,
// rounds completed, samples taken. Counters are registered dynamically and
// read concurrently; nothing here sits on a measured path.
package control
