// Package config loads textgraph settings from YAML and validates them.
//
// Every setting has a default, so a config file is optional; values present
// in the file override the defaults and command-line flags override both.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Membership policies for endpoint checks in bridge-word and path queries.
const (
	MembershipAll     = "all"     // sources and targets are vertices
	MembershipSources = "sources" // only words with outgoing edges count
)

// PageRank participation modes.
const (
	ParticipationAll     = "all"
	ParticipationSources = "sources"
)

// Config is the full textgraph configuration.
type Config struct {
	Log        LogConfig      `yaml:"log"`
	Membership string         `yaml:"membership" validate:"oneof=all sources"`
	Seed       int64          `yaml:"seed"` // 0 means seed from the clock
	PageRank   PageRankConfig `yaml:"pagerank"`
	Walk       WalkConfig     `yaml:"walk"`
	Render     RenderConfig   `yaml:"render"`
	Metrics    MetricsConfig  `yaml:"metrics"`
}

// DefaultLogLevel applies when neither the config nor the environment names
// a level.
const DefaultLogLevel = "warn"

// LogConfig configures the structured logger. An empty Level defers to the
// environment.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
}

// LevelName returns the configured level, else env, else DefaultLogLevel.
func (l LogConfig) LevelName(env string) string {
	switch {
	case l.Level != "":
		return l.Level
	case env != "":
		return env
	default:
		return DefaultLogLevel
	}
}

// PageRankConfig configures the PageRank iteration.
type PageRankConfig struct {
	DampingFactor float64 `yaml:"damping_factor" validate:"gt=0,lt=1"`
	Iterations    int     `yaml:"iterations" validate:"min=1,max=100000"`
	Participation string  `yaml:"participation" validate:"oneof=all sources"`
	Normalized    bool    `yaml:"normalized"`
}

// WalkConfig configures the random walk.
type WalkConfig struct {
	OutputFile            string `yaml:"output_file" validate:"required"`
	IncludeRepeatedTarget bool   `yaml:"include_repeated_target"`
}

// RenderConfig configures DOT output and the Graphviz rasterizer.
type RenderConfig struct {
	DotFile   string        `yaml:"dot_file" validate:"required"`
	ImageFile string        `yaml:"image_file" validate:"required"`
	Command   string        `yaml:"command" validate:"required"`
	Format    string        `yaml:"format" validate:"oneof=png svg pdf jpg gif"`
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
}

// MetricsConfig configures the optional Prometheus listener.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Membership: MembershipAll,
		PageRank: PageRankConfig{
			DampingFactor: 0.85,
			Iterations:    100,
			Participation: ParticipationAll,
		},
		Walk: WalkConfig{
			OutputFile: "random_walk.txt",
		},
		Render: RenderConfig{
			DotFile:   "graph.dot",
			ImageFile: "output_graph.png",
			Command:   "dot",
			Format:    "png",
			Timeout:   30 * time.Second,
		},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected so typos do not silently fall back to defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
