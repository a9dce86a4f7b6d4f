package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-course/internal/config"
)

// Environment overrides, read after an optional .env file.
const (
	envConfig   = "SPACECOURSE_CONFIG"
	envLogLevel = "SPACECOURSE_LOG_LEVEL"
	envSeed     = "SPACECOURSE_SEED"
)

var (
	flagConfig     string
	flagDifficulty string
)

// loadEnv applies .env and environment overrides to flags the user did not set.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envLogLevel); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv(envSeed); v != "" && !flags.Changed("seed") {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envSeed, err)
		}
		flagSeed = seed
	}
	if v := os.Getenv(envConfig); v != "" && flagConfig == "" {
		flagConfig = v
	}

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	return nil
}

// addCourseFlags registers --config and --difficulty on cmd.
func addCourseFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom course config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadCourseConfig loads the configuration and applies the difficulty preset.
func loadCourseConfig() (config.CourseConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.CourseConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.CourseConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openLogger builds the logger for a command. Output goes to --log-file when
// set, otherwise to fallback. The returned func closes the file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacecourse",
		Level:           level,
	})
	return logger, closer, nil
}

// resolveSeed returns flagSeed, or a time-based seed when it is zero.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
