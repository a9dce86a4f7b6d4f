// spacecourse is a terminal obstacle course: steer a craft through a field
// of asteroids and planets that speeds up the longer you survive.
//
// Usage:
//
//	spacecourse play              - Fly the course
//	spacecourse sim               - Run headless autopilot flights
//	spacecourse views             - List available views
//	spacecourse config            - Print the course configuration
//
// Global flags:
//
//	--fps <rate>          - Frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible courses
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn, error (default: info)
//
// A .env file in the working directory may set SPACECOURSE_CONFIG,
// SPACECOURSE_LOG_LEVEL and SPACECOURSE_SEED.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	// Import views to register them
	_ "github.com/vovakirdan/space-course/internal/views/chase"
	_ "github.com/vovakirdan/space-course/internal/views/radar"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacecourse",
	Short: "Space Obstacle Course - dodge asteroids in your terminal",
	Long: `Space Obstacle Course is a terminal game. Steer your craft through a
stream of asteroids and planets; the course speeds up the longer you last.

Available commands:
  play     - Fly the course
  sim      - Run headless autopilot flights
  views    - List available views
  config   - Print the course configuration

Examples:
  spacecourse play
  spacecourse play --view radar --difficulty hard
  spacecourse sim --runs 8 --seed 42
  spacecourse config > ~/.spacecourse/configs/course.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadEnv,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(viewsCmd)
	rootCmd.AddCommand(configCmd)
}
