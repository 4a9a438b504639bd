package main

import (
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	flagSimTicks  int
	flagSimScript string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless from a key script",
	Long: `Advance the game without a terminal UI and print the final board.

The script holds one key per tick: w, a, s or d steers before that tick
and '.' sends no input. Whitespace is ignored. Once the script runs out
the snake keeps its heading. The run stops early when the game ends.

Examples:
  snake sim --ticks 10
  snake sim --seed 7 --ticks 30 --script "ddds...a"`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 50, "Maximum number of ticks to run")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Keys to apply, one per tick")
}

// step is one scripted tick: an optional direction change.
type step struct {
	dir   core.Direction
	steer bool
}

// parseScript converts a key script into steps.
func parseScript(script string) ([]step, error) {
	var steps []step
	for i, r := range script {
		if unicode.IsSpace(r) {
			continue
		}
		if r == '.' {
			steps = append(steps, step{})
			continue
		}
		d, ok := core.DirectionForKey(string(r))
		if !ok {
			return nil, fmt.Errorf("script: unknown key %q at offset %d", r, i)
		}
		steps = append(steps, step{dir: d, steer: true})
	}
	return steps, nil
}

// simulate runs up to ticks ticks, applying steps in order.
// It returns the number of ticks actually advanced.
func simulate(game *snake.Game, steps []step, ticks int, logger *log.Logger) int {
	n := 0
	for n < ticks && game.Running() {
		if n < len(steps) && steps[n].steer {
			if !game.SetDirection(steps[n].dir) {
				logger.Debug("direction ignored", "tick", n+1, "direction", steps[n].dir)
			}
		}
		game.Tick()
		n++
	}
	return n
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimTicks < 0 {
		return fmt.Errorf("invalid tick count %d: must not be negative", flagSimTicks)
	}
	steps, err := parseScript(flagSimScript)
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	seed := resolveSeed(flagSeed)
	game, err := snake.NewSeeded(cfg, seed)
	if err != nil {
		return err
	}
	w, h := game.GridSize()
	logger.Info("game started", "source", source, "seed", seed, "grid", fmt.Sprintf("%dx%d", w, h))

	ran := simulate(game, steps, flagSimTicks, logger)

	snap := game.Snapshot()
	if !snap.Running {
		logger.Info("game over", "length", snap.Len(), "tick", snap.Tick)
	}
	logger.Info("simulation finished", "ticks", ran, "length", snap.Len())

	return printBoard(cmd.OutOrStdout(), game)
}

// printBoard writes the rendered board and a state summary as plain text.
func printBoard(w io.Writer, game *snake.Game) error {
	screen := core.NewScreen(game.ScreenSize())
	game.Render(screen)
	_, err := fmt.Fprintf(w, "%s\n%s\n", screen.String(), game.Snapshot())
	return err
}
