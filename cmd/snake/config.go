package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagValidate bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Long: `Print the configuration the game would run with, as YAML.

Search order: --config path, ~/.snake/configs/snake.yaml,
./configs/snake.yaml, then the built-in default. Files only need the
fields they change.

Examples:
  snake config
  snake config --config ./my-snake.yaml
  snake config --validate --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only check the configuration")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagValidate {
		fmt.Fprintf(out, "%s: ok (%dx%d grid, tick %s)\n",
			source, cfg.GridWidth(), cfg.GridHeight(), cfg.Timing.TickInterval)
		return nil
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
