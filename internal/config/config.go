// Package config provides configuration for the sailfish CLI using Viper,
// loading from a .sailfish.yaml file, SAILFISH_* environment variables, and
// command-line flags in ascending precedence.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Bench  BenchConfig  `yaml:"bench"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RenderConfig struct {
	// Data is a YAML page-data file; empty renders the built-in demo page.
	Data string `yaml:"data"`
	// Output is the destination file; empty writes to stdout.
	Output string `yaml:"output"`
}

type BenchConfig struct {
	Iterations int `yaml:"iterations"`
	// Data is a YAML page-data file; empty benches the built-in demo page.
	Data string `yaml:"data"`
}

const defaultBenchIterations = 100000

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
	if config.Bench.Iterations == 0 {
		config.Bench.Iterations = defaultBenchIterations
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if err := validateLogConfig(&config.Log); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if err := validateRenderConfig(&config.Render); err != nil {
		return fmt.Errorf("render config: %w", err)
	}
	if err := validateBenchConfig(&config.Bench); err != nil {
		return fmt.Errorf("bench config: %w", err)
	}
	return nil
}

func validateLogConfig(config *LogConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level %q is not one of debug, info, warn, error", config.Level)
	}

	switch config.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format %q is not one of text, json", config.Format)
	}

	return nil
}

func validateRenderConfig(config *RenderConfig) error {
	if config.Data != "" {
		if err := validatePath(config.Data); err != nil {
			return fmt.Errorf("invalid data path %q: %w", config.Data, err)
		}
	}
	if config.Output != "" {
		if err := validatePath(config.Output); err != nil {
			return fmt.Errorf("invalid output path %q: %w", config.Output, err)
		}
	}
	return nil
}

func validateBenchConfig(config *BenchConfig) error {
	if config.Iterations < 1 || config.Iterations > 100_000_000 {
		return fmt.Errorf("iterations %d is not in valid range 1-100000000", config.Iterations)
	}
	if config.Data != "" {
		if err := validatePath(config.Data); err != nil {
			return fmt.Errorf("invalid data path %q: %w", config.Data, err)
		}
	}
	return nil
}

// validatePath rejects paths that escape the working tree or carry shell
// metacharacters.
func validatePath(path string) error {
	cleanPath := filepath.Clean(path)

	if !filepath.IsAbs(cleanPath) && strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	dangerousChars := []string{";", "&", "|", "$", "`", "(", ")", "<", ">", "\"", "'"}
	for _, char := range dangerousChars {
		if strings.Contains(cleanPath, char) {
			return fmt.Errorf("path contains dangerous character: %s", char)
		}
	}

	return nil
}
