// SPDX-License-Identifier: MIT

package benchmark_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sudoku/benchmark"
	"github.com/katalvlaran/sudoku/solver"
)

// TestRunMultithreaded_Aggregation covers the parallel-run laws:
// worker and run accounting, throughput and efficiency identities, and
// the cpu-vs-wall bound.
func TestRunMultithreaded_Aggregation(t *testing.T) {
	bm, err := benchmark.New(benchmark.Config{Runs: 10, NumWorkers: 4})
	require.NoError(t, err)

	result := bm.RunMultithreaded(quick4(t), solver.DancingLinks)

	assert.Equal(t, "Dancing Links (DLX)", result.Algorithm)
	assert.Equal(t, 4, result.NumWorkers)
	assert.Equal(t, 10, result.RunsPerWorker)
	assert.Equal(t, 40, result.TotalRuns)
	assert.True(t, result.AllSolved)
	require.Len(t, result.WorkerResults, 4)

	assert.Greater(t, result.WallTimeMS, 0.0)
	assert.Greater(t, result.TotalCPUTimeMS, 0.0)

	// Workers time their solves inside the wall bracket, so the summed
	// cpu time cannot exceed workers·wall (allow float round-off).
	assert.LessOrEqual(t, result.TotalCPUTimeMS,
		result.WallTimeMS*float64(result.NumWorkers)*1.001)

	// Aggregation identities.
	assert.InEpsilon(t, float64(result.TotalRuns)/result.WallTimeMS*1000.0,
		result.Throughput, 1e-9)
	assert.InEpsilon(t, result.Speedup/float64(result.NumWorkers),
		result.Efficiency, 1e-9)
	assert.InEpsilon(t, result.TotalCPUTimeMS/float64(result.TotalRuns),
		result.AvgTimePerSolveMS, 1e-9)

	assert.Greater(t, result.Speedup, 0.0)
	assert.Greater(t, result.Efficiency, 0.0)

	// Per-worker results carry full statistics.
	for _, wr := range result.WorkerResults {
		assert.Equal(t, 10, wr.Runs)
		assert.True(t, wr.AllSolved)
		assert.LessOrEqual(t, wr.MinTimeMS, wr.MaxTimeMS)
	}
}

// TestRunMultithreaded_SingleWorker degenerates cleanly to one worker.
func TestRunMultithreaded_SingleWorker(t *testing.T) {
	bm, err := benchmark.New(benchmark.Config{Runs: 3, NumWorkers: 1})
	require.NoError(t, err)

	result := bm.RunMultithreaded(quick4(t), solver.Backtracking)

	assert.Equal(t, 3, result.TotalRuns)
	assert.Equal(t, 1, result.NumWorkers)
	require.Len(t, result.WorkerResults, 1)
	assert.True(t, result.AllSolved)
}

// TestCompareMultithreaded runs both engines in the fixed order.
func TestCompareMultithreaded(t *testing.T) {
	bm, err := benchmark.New(benchmark.Config{Runs: 2, NumWorkers: 2})
	require.NoError(t, err)

	results := bm.CompareMultithreaded(quick4(t), nil)
	require.Len(t, results, 2)
	assert.Equal(t, "Dancing Links (DLX)", results[0].Algorithm)
	assert.Equal(t, "Backtracking", results[1].Algorithm)
	for _, r := range results {
		assert.Equal(t, 4, r.TotalRuns)
		assert.True(t, r.AllSolved)
	}
}
