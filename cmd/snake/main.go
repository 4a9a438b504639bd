// snake is a terminal snake game.
//
// Usage:
//
//	snake                 - Play the game
//	snake play            - Play the game
//	snake sim             - Run the game headless from a key script
//	snake config          - Print the resolved configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--seed <value>        - RNG seed for reproducible food placement
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer a growing snake around the terminal",
	Long: `Snake is the classic arcade game played in your terminal.

Steer with WASD or the arrow keys. Eating food grows the snake by one
cell. The game ends when the head leaves the board or runs into the body.

Available commands:
  play     - Play interactively (default)
  sim      - Run headless from a key script
  config   - Print the resolved configuration

Examples:
  snake
  snake play --seed 42
  snake sim --ticks 20 --script "...s...d"
  snake config --validate --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
