// Package config handles runtime configuration for the Lyre engine.
//
// Configuration lives in lyre.yaml and covers engine limits and execution
// tracing. Everything has a sensible default; a missing config file is not
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Trace color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default engine limits.
const (
	DefaultInitialStack = 256
	DefaultMaxFrames    = 4096
)

// Config represents the top-level lyre.yaml configuration.
type Config struct {
	// InitialStack is the starting capacity of the operand stack.
	InitialStack int `yaml:"initial_stack,omitempty"`

	// MaxFrames caps call-stack depth so runaway non-tail recursion is
	// reported as a runtime failure instead of exhausting memory.
	// Tail calls reuse the active frame and never count against it.
	MaxFrames int `yaml:"max_frames,omitempty"`

	// Trace enables per-instruction execution tracing.
	Trace bool `yaml:"trace,omitempty"`

	// TraceColor controls ANSI color in trace output: auto, always, never.
	// With auto, color is used only when the trace writer is a terminal.
	TraceColor string `yaml:"trace_color,omitempty"`
}

// Default returns a configuration with all defaults filled in.
func Default() *Config {
	return &Config{
		InitialStack: DefaultInitialStack,
		MaxFrames:    DefaultMaxFrames,
		TraceColor:   ColorAuto,
	}
}

// Load reads and parses a lyre.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses lyre.yaml content from bytes.
// The path argument is used only for error messages.
func Parse(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.setDefaults()
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find searches for lyre.yaml starting from dir and walking up to parent
// directories. Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "lyre.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		// Also check lyre.yml (common alternative)
		candidate = filepath.Join(dir, "lyre.yml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// setDefaults fills in default values for omitted fields.
func (c *Config) setDefaults() {
	if c.InitialStack == 0 {
		c.InitialStack = DefaultInitialStack
	}
	if c.MaxFrames == 0 {
		c.MaxFrames = DefaultMaxFrames
	}
	if c.TraceColor == "" {
		c.TraceColor = ColorAuto
	}
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.InitialStack < 0 {
		return fmt.Errorf("%s: initial_stack must not be negative, got %d", path, c.InitialStack)
	}
	if c.MaxFrames < 1 {
		return fmt.Errorf("%s: max_frames must be at least 1, got %d", path, c.MaxFrames)
	}
	switch c.TraceColor {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: trace_color must be one of auto, always, never; got %q", path, c.TraceColor)
	}
	return nil
}
