package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"golox/internal/parser"
)

// Config holds driver settings read from an optional YAML file.
type Config struct {
	// MaxDepth bounds expression nesting in the parser.
	MaxDepth int `yaml:"max-depth"`
	// Color enables colored diagnostic output (the --no-color flag wins).
	Color bool `yaml:"color"`
}

func defaultConfig() Config {
	return Config{
		MaxDepth: parser.DefaultMaxDepth,
		Color:    true,
	}
}

// loadConfig reads the config file named by --config, or ~/.golox.yaml when
// present. A missing default file is not an error; a file that exists but
// does not parse is.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path := configPath
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, ".golox.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if noColor {
		cfg.Color = false
	}
	return cfg, nil
}
