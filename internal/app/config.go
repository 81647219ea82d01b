package app

import (
	"errors"
	"fmt"
)

// Output formats accepted by Config.Output.
const (
	OutputCoords = "coords"
	OutputBoard  = "board"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // text or .hcl puzzle
	Output    string
	MaxJumps  int

	LogFormat   string
	LogLevel    string
	MetricsFile string // Prometheus textfile, empty to skip
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}
	switch cfg.Output {
	case "":
		cfg.Output = OutputCoords
	case OutputCoords, OutputBoard:
	default:
		return nil, fmt.Errorf("invalid output %q: must be %q or %q", cfg.Output, OutputCoords, OutputBoard)
	}
	if cfg.MaxJumps < 0 {
		return nil, fmt.Errorf("invalid max-jumps %d: must be zero (unbounded) or positive", cfg.MaxJumps)
	}

	return &cfg, nil
}
