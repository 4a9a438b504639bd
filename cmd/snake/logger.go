package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger builds the command logger at the given level name.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	}), nil
}

// resolveSeed turns the --seed flag into a concrete seed. Zero means time based.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
