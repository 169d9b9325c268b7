// Command sudoku solves generalized Sudoku puzzles and benchmarks the
// two engines. Exit code 0 on solved, 1 on invalid input or an
// unsolvable puzzle.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/sudoku/benchmark"
	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/puzzleio"
	"github.com/katalvlaran/sudoku/solver"
	"github.com/katalvlaran/sudoku/sysinfo"
)

var log = logrus.New()

// errFailed marks invalid-input / unsolvable outcomes that have already
// been reported; main converts it to exit code 1 without re-logging.
var errFailed = errors.New("sudoku: failed")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve and benchmark generalized Sudoku puzzles",
		Long:          "Solve generalized Sudoku puzzles (4x4 up to 25x25) with a constraint-propagating backtracker or Dancing Links, and benchmark both engines single- or multi-threaded.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := cmd.Flags()
	flags.String("input", "", "puzzle file (JSON, or image with an OCR processor)")
	flags.String("puzzle", "", "puzzle as a row-major string ('.' or '0' for empty)")
	flags.Int("size", 0, "built-in test puzzle size (9, 16, or 25)")
	flags.String("algorithm", "dlx", "algorithm: dlx, backtrack, or compare")
	flags.Int("benchmark", 0, "benchmark mode: timed runs per worker")
	flags.Int("workers", 1, "benchmark workers (0 = all logical cores)")
	flags.String("output", "", "write the solution document to this file")
	flags.Bool("unique", false, "check solution uniqueness")
	flags.Bool("verbose", false, "per-run logging")
	flags.Bool("quiet", false, "suppress banners and boards")
	flags.String("profile", "", "write a cpu or mem profile")

	viper.SetEnvPrefix("SUDOKU")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(flags)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	quiet := viper.GetBool("quiet")
	verbose := viper.GetBool("verbose")
	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	switch viper.GetString("profile") {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "":
	default:
		return fmt.Errorf("unknown profile mode %q", viper.GetString("profile"))
	}

	puzzle, err := loadPuzzle()
	if err != nil {
		log.Errorf("load puzzle: %v", err)
		return errFailed
	}
	if !puzzle.IsValid() {
		log.Error("puzzle is invalid: duplicate value in a row, column, or box")
		return errFailed
	}

	if runs := viper.GetInt("benchmark"); runs > 0 {
		return runBenchmark(puzzle, runs)
	}
	return runSolve(puzzle)
}

// loadPuzzle resolves the input source in priority order: --input,
// --puzzle, --size, then the built-in 9×9.
func loadPuzzle() (*board.Board, error) {
	if path := viper.GetString("input"); path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			return puzzleio.LoadFile(path)
		case ".png", ".jpg", ".jpeg", ".bmp":
			return nil, fmt.Errorf("image input requires an OCR processor, none is built in")
		default:
			return puzzleio.LoadFile(path)
		}
	}
	if s := viper.GetString("puzzle"); s != "" {
		return puzzleio.DecodeString(s)
	}
	if size := viper.GetInt("size"); size != 0 {
		return puzzleio.Builtin(size)
	}
	return puzzleio.Builtin(9)
}

func runSolve(puzzle *board.Board) error {
	quiet := viper.GetBool("quiet")
	if !quiet {
		fmt.Println("Puzzle:")
		fmt.Print(puzzle.String())
		log.Debugf("fill ratio %.2f, difficulty %d", puzzle.FillRatio(), puzzle.Difficulty())
	}

	algoName := viper.GetString("algorithm")
	if algoName == "compare" {
		return solveCompare(puzzle)
	}

	algo, err := solver.ParseAlgorithm(algoName)
	if err != nil {
		log.Errorf("%v: %q", err, algoName)
		return errFailed
	}
	s := solver.New(algo)

	result := s.Solve(puzzle)
	if viper.GetBool("unique") {
		result = solver.CheckUnique(s, puzzle, result)
	}
	reportSolve(puzzle, result)

	if path := viper.GetString("output"); path != "" {
		if err := puzzleio.SaveSolution(puzzle, result, path, true); err != nil {
			log.Errorf("write output: %v", err)
			return errFailed
		}
		log.Infof("solution written to %s", path)
	}

	if !result.Solved {
		return errFailed
	}
	return nil
}

// solveCompare runs both engines on the puzzle and reports each.
func solveCompare(puzzle *board.Board) error {
	solved := true
	for _, algo := range []solver.Algorithm{solver.DancingLinks, solver.Backtracking} {
		s := solver.New(algo)
		result := s.Solve(puzzle)
		reportSolve(puzzle, result)
		if !result.Solved {
			solved = false
		}
	}
	if !solved {
		return errFailed
	}
	return nil
}

func reportSolve(puzzle *board.Board, result solver.SolveResult) {
	if !result.Solved {
		log.Warnf("%s: %s (%.3f ms, %d iterations, %d backtracks)",
			result.Algorithm, result.ErrorMessage,
			result.TimeMS, result.Iterations, result.Backtracks)
		return
	}

	if !viper.GetBool("quiet") {
		solved, err := board.NewFromGridDim(result.Solution, puzzle.Dim())
		if err == nil {
			fmt.Printf("Solution (%s):\n", result.Algorithm)
			fmt.Print(solved.String())
		}
	}
	log.Infof("%s: solved in %.3f ms (%d iterations, %d backtracks)",
		result.Algorithm, result.TimeMS, result.Iterations, result.Backtracks)
	if viper.GetBool("unique") {
		log.Infof("unique solution: %v (found %d)", result.HasUniqueSolution, result.SolutionCount)
	}
}

func runBenchmark(puzzle *board.Board, runs int) error {
	workers := viper.GetInt("workers")
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	cfg := benchmark.Config{
		Runs:       runs,
		WarmupRuns: 3,
		NumWorkers: workers,
		Verbose:    viper.GetBool("verbose"),
	}
	bm, err := benchmark.New(cfg)
	if err != nil {
		log.Errorf("benchmark config: %v", err)
		return errFailed
	}
	bm.SetLogger(log)

	if !viper.GetBool("quiet") {
		fmt.Print(sysinfo.Report(sysinfo.Collect()))
		fmt.Println()
	}

	compare := viper.GetString("algorithm") == "compare"
	switch {
	case compare && workers > 1:
		results := bm.CompareMultithreaded(puzzle, nil)
		fmt.Print(benchmark.MultithreadComparisonReport(results, cfg))
		return allMultithreadSolved(results)
	case compare:
		results := bm.Compare(puzzle, nil)
		fmt.Print(benchmark.ComparisonReport(results))
		return allSolved(results)
	default:
		algo, err := solver.ParseAlgorithm(viper.GetString("algorithm"))
		if err != nil {
			log.Errorf("%v: %q", err, viper.GetString("algorithm"))
			return errFailed
		}
		if workers > 1 {
			result := bm.RunMultithreaded(puzzle, algo)
			fmt.Print(benchmark.MultithreadReport(result))
			return allMultithreadSolved([]benchmark.MultithreadResult{result})
		}
		result := bm.Run(puzzle, solver.New(algo))
		fmt.Print(benchmark.Report(result))
		return allSolved([]benchmark.Result{result})
	}
}

func allSolved(results []benchmark.Result) error {
	for _, r := range results {
		if !r.AllSolved {
			return errFailed
		}
	}
	return nil
}

func allMultithreadSolved(results []benchmark.MultithreadResult) error {
	for _, r := range results {
		if !r.AllSolved {
			return errFailed
		}
	}
	return nil
}
