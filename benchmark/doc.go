// SPDX-License-Identifier: MIT

// Package benchmark measures solver throughput on a fixed puzzle,
// single- and multi-threaded.
//
// What:
//
//   - Run: warm-up solves followed by timed runs of one solver,
//     aggregated into min/max/mean and Bessel-corrected sample
//     standard deviation, with summed search counters.
//   - RunMultithreaded: a fixed single-solve baseline (10 warm-up +
//     100 timed solves, independent of Config.Runs), then NumWorkers
//     goroutines each running Config.Runs solves on the shared
//     read-only board with a private solver instance.
//   - Compare / CompareMultithreaded over the fixed algorithm order
//     {Dancing Links, Backtracking}, and plain-text report generation.
//
// Measurement model:
//
//	Wall time brackets worker launch and join; per-worker time is
//	summed into TotalCPUTimeMS, so TotalCPUTimeMS ≤ NumWorkers·wall in
//	general. Speedup anchors on the baseline:
//	  Speedup    = baseline · TotalRuns / WallTimeMS
//	  Efficiency = Speedup / NumWorkers
//	Speedup may exceed NumWorkers when the baseline's cache state
//	differs from the workers'; the raw value is reported, not clamped.
//
// Concurrency:
//
//	The board is shared read-only for the duration of a run; every
//	other resource (solver, matrices, candidate tables) is owned by
//	exactly one worker. No locks are needed beyond the join barrier.
//
// Errors:
//
//   - ErrBadConfig: Runs < 1, WarmupRuns < 0, or NumWorkers < 1.
package benchmark
