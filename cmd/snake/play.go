package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagTick    time.Duration
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start an interactive game.

Controls:
  W/Up, S/Down, A/Left, D/Right  - Steer (reversing is ignored)
  R                              - Restart (after game over)
  ?                              - Toggle full help
  Q/Ctrl+C                       - Quit

The screen is owned by the game while it runs, so logs go to --log-file
or are discarded.

Examples:
  snake play
  snake play --seed 42
  snake play --tick 80ms
  snake play --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command plays too.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick interval override (e.g. 80ms)")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	if flagTick < 0 {
		return fmt.Errorf("invalid tick interval %v: must be positive", flagTick)
	}
	if flagTick > 0 {
		cfg.Timing.TickInterval = config.Duration(flagTick)
	}

	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("failed to open log file %s: %w", flagLogFile, openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, flagLogLevel)
	if err != nil {
		return err
	}

	seed := resolveSeed(flagSeed)
	game, err := snake.NewSeeded(cfg, seed)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "seed", seed)

	// Warn early; the model shows a resize message until the board fits
	needW, needH := game.ScreenSize()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	if err := tui.Run(game, tui.Options{
		TickInterval: cfg.Timing.TickInterval.Std(),
		Logger:       logger,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
