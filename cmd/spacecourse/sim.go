package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/space-course/internal/autopilot"
	"github.com/vovakirdan/space-course/internal/config"
	"github.com/vovakirdan/space-course/internal/course"
	"github.com/vovakirdan/space-course/internal/platform/tui"
)

var (
	flagRuns     int
	flagFrames   int
	flagRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot flights",
	Long: `Flies the course with the autopilot and no terminal UI, printing how long
each run survived and a digest of its final frame.

Runs execute in parallel. Run i uses seed --seed+i, so the same flags always
produce the same table. By default frames are simulated as fast as possible
on a fixed 1/--fps step; --realtime paces them with a wall-clock ticker.

Examples:
  spacecourse sim
  spacecourse sim --runs 16 --seed 42
  spacecourse sim --frames 18000 --difficulty hard
  spacecourse sim --runs 1 --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 4, "Number of runs")
	simCmd.Flags().IntVar(&flagFrames, "frames", 36000, "Maximum frames per run")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames with a wall-clock ticker")
	addCourseFlags(simCmd)
}

// simResult summarizes one headless run.
type simResult struct {
	Seed    int64
	Elapsed float64
	Frames  int
	Spawned int
	Crashed bool
	Digest  uint64
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagRuns <= 0 || flagFrames <= 0 {
		return fmt.Errorf("--runs and --frames must be positive")
	}

	cfg, err := loadCourseConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	base := resolveSeed()
	results := make([]simResult, flagRuns)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < flagRuns; i++ {
		i := i
		seed := base + int64(i)
		g.Go(func() error {
			res, err := simulate(ctx, cfg, seed, logger.With("seed", seed))
			if err != nil {
				return fmt.Errorf("run %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printResults(cmd.OutOrStdout(), results)
	return nil
}

// simulate flies one session with the autopilot until game over or the frame limit.
func simulate(ctx context.Context, cfg config.CourseConfig, seed int64, logger *log.Logger) (simResult, error) {
	s := course.NewSession(cfg, course.WithSeed(seed), course.WithLogger(logger))
	pilot := autopilot.New(cfg)

	var last course.FrameResult
	if flagRealtime {
		s.Start()
		last = s.Snapshot()
		err := course.Loop(ctx, s, time.Second/time.Duration(flagFPS), func(r course.FrameResult) bool {
			last = r
			course.ApplyHeld(s, pilot.Steer(r))
			return r.State != course.StateGameOver && s.Stats().Frames < flagFrames
		})
		if err != nil {
			return simResult{}, err
		}
	} else {
		last = course.Replay(s, flagFrames, 1000.0/float64(flagFPS), pilot)
	}

	stats := s.Stats()
	return simResult{
		Seed:    seed,
		Elapsed: last.Elapsed,
		Frames:  stats.Frames,
		Spawned: stats.Spawned,
		Crashed: last.State == course.StateGameOver,
		Digest:  last.Digest(),
	}, nil
}

func printResults(out io.Writer, results []simResult) {
	fmt.Fprintf(out, "  %-4s  %-20s  %-8s  %-7s  %-7s  %-8s  %s\n", "RUN", "SEED", "SURVIVED", "FRAMES", "SPAWNED", "RESULT", "DIGEST")

	var total float64
	for i, r := range results {
		outcome := "crashed"
		if !r.Crashed {
			outcome = "survived"
		}
		fmt.Fprintf(out, "  %-4d  %-20d  %-8s  %-7d  %-7d  %-8s  %016x\n",
			i+1, r.Seed, tui.FormatClock(r.Elapsed), r.Frames, r.Spawned, outcome, r.Digest)
		total += r.Elapsed
	}

	fmt.Fprintf(out, "\n  mean survival %s over %d runs\n", tui.FormatClock(total/float64(len(results))), len(results))
}
