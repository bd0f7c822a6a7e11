package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Command-line flags override any value read
// from the --config file.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Render   RenderConfig   `yaml:"render"`
	Generate GenerateConfig `yaml:"generate"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// RenderConfig holds preview defaults.
type RenderConfig struct {
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	Padding      float64 `yaml:"padding"`
	LineWidth    float64 `yaml:"line_width"`
	VertexRadius float64 `yaml:"vertex_radius"`
	Labels       bool    `yaml:"labels"`
	Thumbnail    int     `yaml:"thumbnail"` // longest side; 0 disables
}

// GenerateConfig holds builder defaults.
type GenerateConfig struct {
	Spacing float64 `yaml:"spacing"`
	Seed    int64   `yaml:"seed"`
	Jitter  float64 `yaml:"jitter"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Log:      LogConfig{Level: "info", Format: "text"},
		Render:   RenderConfig{Width: 800, Height: 800, Padding: 16, LineWidth: 2, VertexRadius: 3},
		Generate: GenerateConfig{Spacing: 10, Seed: 1},
	}
}

// loadConfig returns DefaultConfig overlaid with the YAML file at path.
// An empty path yields the defaults. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, nil
}
