package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration:
// an 800x700 board of 10-unit cells (80x70 grid) ticking every 105ms.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    800,
			Height:   700,
			UnitSize: 10,
		},
		Timing: TimingConfig{
			TickInterval: Duration(105 * time.Millisecond),
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
