package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/space-course/internal/core"
	"github.com/vovakirdan/space-course/internal/course"
	"github.com/vovakirdan/space-course/internal/platform/tui"
	"github.com/vovakirdan/space-course/internal/registry"
)

var (
	flagView          string
	flagDemo          bool
	flagHoldMs        int
	flagRepeatDelayMs int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the course",
	Long: `Start the obstacle course in the terminal.

Controls:
  Arrows/WASD/8246  - Steer
  Space/Enter       - Start
  P/Esc             - Pause
  R                 - Restart (after game over)
  M                 - Back to menu (after game over)
  Tab               - Switch view
  T                 - Toggle autopilot
  Ctrl+S            - Screenshot to ~/.spacecourse/screenshots
  ?                 - Help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Speed doubles after 90 seconds
  normal - Speed doubles after 60 seconds
  hard   - Speed doubles after 40 seconds
  fixed  - No progression

Examples:
  spacecourse play
  spacecourse play --view radar
  spacecourse play --difficulty hard --seed 7
  spacecourse play --demo --log-file course.log
  spacecourse play --repeat-delay-ms 660   # X11 default key-repeat delay`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagView, "view", "chase", "View to start with (see 'spacecourse views')")
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Start with the autopilot flying")
	playCmd.Flags().IntVar(&flagHoldMs, "hold-ms", core.DefaultConfig().HoldMs, "How long a repeated key keeps steering (ms)")
	playCmd.Flags().IntVar(&flagRepeatDelayMs, "repeat-delay-ms", core.DefaultConfig().RepeatDelayMs, "How long the first key press keeps steering, match your terminal's repeat delay (ms)")
	addCourseFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagHoldMs <= 0 {
		return fmt.Errorf("--hold-ms must be positive, got %d", flagHoldMs)
	}
	if flagRepeatDelayMs < 0 {
		return fmt.Errorf("--repeat-delay-ms must not be negative, got %d", flagRepeatDelayMs)
	}

	view, err := registry.Create(flagView)
	if err != nil {
		return fmt.Errorf("%w (run 'spacecourse views')", err)
	}

	cfg, err := loadCourseConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs are discarded unless --log-file is set
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	seed := resolveSeed()
	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.TickRate = flagFPS
	rc.HoldMs = flagHoldMs
	rc.RepeatDelayMs = flagRepeatDelayMs

	session := course.NewSession(cfg, course.WithSeed(seed), course.WithLogger(logger))

	opts := []tui.Option{tui.WithLogger(logger)}
	if flagDemo {
		opts = append(opts, tui.WithDemo())
	}

	logger.Info("starting", "view", flagView, "seed", seed, "fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(session, view, rc, opts...); err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
