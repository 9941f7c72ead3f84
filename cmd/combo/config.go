package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration accepted by --config. Every field may also
// be given as a flag of the check command, which takes precedence.
type Config struct {
	Pattern  string `yaml:"pattern"`
	Full     bool   `yaml:"full"`
	MaxDepth int    `yaml:"max_depth"`
	Color    string `yaml:"color"` // auto, always, never
}

// loadConfig reads the YAML file at path over base, so that keys missing from
// the file keep the values of base.
func loadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("unknown color mode: %s", cfg.Color)
	}

	if cfg.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative: %d", cfg.MaxDepth)
	}

	return nil
}

// resolveConfig combines the check flags with the --config file. Flags set on
// the command line win over the file.
func resolveConfig(cmd *cobra.Command) (Config, error) {
	flags := Config{
		Pattern:  checkPattern,
		Full:     checkFull,
		MaxDepth: checkMaxDepth,
		Color:    checkColor,
	}

	cfg := flags
	if configPath != "" {
		var err error
		cfg, err = loadConfig(configPath, flags)
		if err != nil {
			return cfg, err
		}

		changed := cmd.Flags().Changed
		if changed("pattern") {
			cfg.Pattern = flags.Pattern
		}
		if changed("full") {
			cfg.Full = flags.Full
		}
		if changed("max-depth") {
			cfg.MaxDepth = flags.MaxDepth
		}
		if changed("color") {
			cfg.Color = flags.Color
		}
	}

	return cfg, cfg.validate()
}
