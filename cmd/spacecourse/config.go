package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-course/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the course configuration",
	Long: `Prints the embedded default configuration, ready to be saved as
~/.spacecourse/configs/course.yaml or ./configs/course.yaml and edited.

With --resolved, prints the configuration 'play' would use after the
search path, --config and --difficulty are applied.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective configuration instead of the defaults")
	addCourseFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if !flagResolved {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadCourseConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = out.Write(data)
	return err
}
