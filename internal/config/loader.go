package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the search directories.
const ConfigFile = "course.yaml"

// Load loads the course configuration.
// Search order: customPath -> ~/.spacecourse/configs/course.yaml -> ./configs/course.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides what it names.
func Load(customPath string) (CourseConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CourseConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CourseConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCourseYAML)
	if err != nil {
		return DefaultCourseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultCourseConfig and validates the result.
func Parse(data []byte) (CourseConfig, error) {
	cfg := DefaultCourseConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CourseConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CourseConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spacecourse", "configs", filename)
}
