// SPDX-License-Identifier: MIT

package benchmark

import (
	"fmt"
	"strings"
)

// Report renders one single-threaded Result as plain text with
// six-decimal timing columns.
func Report(result Result) string {
	var sb strings.Builder

	sb.WriteString("=== Benchmark Report ===\n")
	fmt.Fprintf(&sb, "Algorithm: %s\n", result.Algorithm)
	fmt.Fprintf(&sb, "Runs: %d\n", result.Runs)
	fmt.Fprintf(&sb, "All Solved: %s\n\n", yesNo(result.AllSolved))

	sb.WriteString("Timing (ms):\n")
	fmt.Fprintf(&sb, "  Min:     %12.6f\n", result.MinTimeMS)
	fmt.Fprintf(&sb, "  Max:     %12.6f\n", result.MaxTimeMS)
	fmt.Fprintf(&sb, "  Average: %12.6f\n", result.AvgTimeMS)
	fmt.Fprintf(&sb, "  Std Dev: %12.6f\n\n", result.StdDevTimeMS)

	runs := result.Runs
	if runs < 1 {
		runs = 1
	}
	sb.WriteString("Statistics:\n")
	fmt.Fprintf(&sb, "  Total Iterations: %d\n", result.TotalIterations)
	fmt.Fprintf(&sb, "  Total Backtracks: %d\n", result.TotalBacktracks)
	fmt.Fprintf(&sb, "  Avg Iterations:   %d\n", result.TotalIterations/runs)
	fmt.Fprintf(&sb, "  Avg Backtracks:   %d\n", result.TotalBacktracks/runs)

	return sb.String()
}

// ComparisonReport renders a fixed-width table over several Results,
// starring the row whose average time equals the computed optimum.
func ComparisonReport(results []Result) string {
	var sb strings.Builder

	sb.WriteString("=== Algorithm Comparison ===\n\n")

	nameWidth := len("Algorithm")
	for _, r := range results {
		if len(r.Algorithm) > nameWidth {
			nameWidth = len(r.Algorithm)
		}
	}
	nameWidth += 2

	const colWidth, solvedWidth = 12, 8
	totalWidth := nameWidth + colWidth*4 + solvedWidth + 2

	fmt.Fprintf(&sb, "%-*s%*s%*s%*s%*s%*s\n",
		nameWidth, "Algorithm",
		colWidth, "Min (ms)",
		colWidth, "Avg (ms)",
		colWidth, "Max (ms)",
		colWidth, "Std Dev",
		solvedWidth, "Solved")
	sb.WriteString(strings.Repeat("-", totalWidth))
	sb.WriteByte('\n')

	bestAvg := 0.0
	for i, r := range results {
		if i == 0 || r.AvgTimeMS < bestAvg {
			bestAvg = r.AvgTimeMS
		}
	}

	for _, r := range results {
		star := ""
		if r.AvgTimeMS == bestAvg {
			star = " *"
		}
		fmt.Fprintf(&sb, "%-*s%*.6f%*.6f%*.6f%*.6f%*s%s\n",
			nameWidth, r.Algorithm,
			colWidth, r.MinTimeMS,
			colWidth, r.AvgTimeMS,
			colWidth, r.MaxTimeMS,
			colWidth, r.StdDevTimeMS,
			solvedWidth, yesNo(r.AllSolved),
			star)
	}

	sb.WriteString("\n* = Best average time\n")

	return sb.String()
}

// MultithreadReport renders one MultithreadResult, including the
// per-worker statistics table.
func MultithreadReport(result MultithreadResult) string {
	var sb strings.Builder

	sb.WriteString("=== Multi-threaded Benchmark Report ===\n")
	fmt.Fprintf(&sb, "Algorithm: %s\n", result.Algorithm)
	fmt.Fprintf(&sb, "Workers: %d\n", result.NumWorkers)
	fmt.Fprintf(&sb, "Runs per worker: %d\n", result.RunsPerWorker)
	fmt.Fprintf(&sb, "Total runs: %d\n", result.TotalRuns)
	fmt.Fprintf(&sb, "All Solved: %s\n\n", yesNo(result.AllSolved))

	sb.WriteString("Performance:\n")
	fmt.Fprintf(&sb, "  Wall time:      %12.3f ms\n", result.WallTimeMS)
	fmt.Fprintf(&sb, "  Total CPU time: %12.3f ms\n", result.TotalCPUTimeMS)
	fmt.Fprintf(&sb, "  Throughput:     %12.3f solves/sec\n", result.Throughput)
	fmt.Fprintf(&sb, "  Speedup:        %12.3fx\n", result.Speedup)
	fmt.Fprintf(&sb, "  Efficiency:     %12.3f%%\n\n", result.Efficiency*100)

	sb.WriteString("Per-worker statistics:\n")
	fmt.Fprintf(&sb, "%-10s%12s%12s%12s\n", "Worker", "Avg (ms)", "Min (ms)", "Max (ms)")
	sb.WriteString(strings.Repeat("-", 46))
	sb.WriteByte('\n')
	for i, wr := range result.WorkerResults {
		fmt.Fprintf(&sb, "%-10s%12.3f%12.3f%12.3f\n",
			fmt.Sprintf("W%d", i), wr.AvgTimeMS, wr.MinTimeMS, wr.MaxTimeMS)
	}

	return sb.String()
}

// MultithreadComparisonReport renders a table over several parallel
// results, starring the row with the best throughput.
func MultithreadComparisonReport(results []MultithreadResult, cfg Config) string {
	var sb strings.Builder

	sb.WriteString("=== Multi-threaded Algorithm Comparison ===\n")
	fmt.Fprintf(&sb, "Workers: %d | Runs per worker: %d\n\n", cfg.NumWorkers, cfg.Runs)

	nameWidth := len("Algorithm")
	for _, r := range results {
		if len(r.Algorithm) > nameWidth {
			nameWidth = len(r.Algorithm)
		}
	}
	nameWidth += 2

	const colWidth = 14

	fmt.Fprintf(&sb, "%-*s%*s%*s%*s%*s\n",
		nameWidth, "Algorithm",
		colWidth, "Wall (ms)",
		colWidth, "Throughput",
		colWidth, "Speedup",
		colWidth, "Efficiency")
	sb.WriteString(strings.Repeat("-", nameWidth+colWidth*4))
	sb.WriteByte('\n')

	bestThroughput := 0.0
	for _, r := range results {
		if r.Throughput > bestThroughput {
			bestThroughput = r.Throughput
		}
	}

	for _, r := range results {
		star := ""
		if r.Throughput == bestThroughput {
			star = " *"
		}
		fmt.Fprintf(&sb, "%-*s%*.2f%*.2f/s%*.2fx%*.2f%%%s\n",
			nameWidth, r.Algorithm,
			colWidth, r.WallTimeMS,
			colWidth-2, r.Throughput,
			colWidth-1, r.Speedup,
			colWidth-1, r.Efficiency*100,
			star)
	}

	sb.WriteString("\n* = Best throughput\n")

	return sb.String()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
