// Package config provides YAML-based configuration loading and validation
// for the snake game.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is matched by every validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Error describes a single invalid configuration value.
type Error struct {
	Field  string
	Value  any
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("config: %s = %v: %s", e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *Error) Unwrap() error {
	return ErrInvalidConfig
}

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
}

// BoardConfig defines the playfield. Width and height are in board units
// (pixels); the grid has Width/UnitSize columns and Height/UnitSize rows.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	UnitSize int `yaml:"unit_size"`
}

// TimingConfig defines the simulation clock.
type TimingConfig struct {
	TickInterval Duration `yaml:"tick_interval"`
}

// GridWidth returns the number of grid columns.
func (c SnakeConfig) GridWidth() int {
	if c.Board.UnitSize <= 0 {
		return 0
	}
	return c.Board.Width / c.Board.UnitSize
}

// GridHeight returns the number of grid rows.
func (c SnakeConfig) GridHeight() int {
	if c.Board.UnitSize <= 0 {
		return 0
	}
	return c.Board.Height / c.Board.UnitSize
}

// Validate checks that the board can be divided into whole cells and the
// tick interval is usable. The first problem found is returned.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.UnitSize <= 0:
		return &Error{Field: "board.unit_size", Value: b.UnitSize, Reason: "must be positive"}
	case b.Width <= 0:
		return &Error{Field: "board.width", Value: b.Width, Reason: "must be positive"}
	case b.Height <= 0:
		return &Error{Field: "board.height", Value: b.Height, Reason: "must be positive"}
	case b.Width%b.UnitSize != 0:
		return &Error{Field: "board.width", Value: b.Width, Reason: fmt.Sprintf("must be a multiple of unit_size %d", b.UnitSize)}
	case b.Height%b.UnitSize != 0:
		return &Error{Field: "board.height", Value: b.Height, Reason: fmt.Sprintf("must be a multiple of unit_size %d", b.UnitSize)}
	case c.Timing.TickInterval <= 0:
		return &Error{Field: "timing.tick_interval", Value: c.Timing.TickInterval, Reason: "must be positive"}
	}
	return nil
}

// Duration is a time.Duration that reads from YAML either as a Go duration
// string ("105ms") or as a bare integer number of milliseconds.
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar, got %v", node.Tag)
	}
	if ms, err := strconv.ParseInt(node.Value, 10, 64); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}
