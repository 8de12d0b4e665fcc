// Package interference
// Author: momentics <momentics@gmail.com>
//
// Cross-core interference generation for the cache-line latency benchmark.
// A Coordinator runs one round per interference mode: it spawns a fixed pool
// of workers pinned to logical cores above the measurement core, holds the
// caller at a steady-state barrier until every worker has completed at least
// one interference iteration, and later signals shutdown and joins the pool.
//
// The only cross-thread state is the shared scratch cell (the thing under
// measurement) and the two coordination words in State. The coordination
// words use plain atomic loads, stores and a single one-shot add per worker,
// never the locked read-modify-write kernels being benchmarked, and they sit
// on their own cache lines so barrier traffic cannot collide with the
// scratch line.
package interference
