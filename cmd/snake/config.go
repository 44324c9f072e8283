package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the game configuration",
	Long: `Inspect the game configuration.

Config search order:
  --config <path>
  ~/.snake/configs/snake.yaml
  ./configs/snake.yaml
  built-in defaults`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would use, after applying --difficulty.

Examples:
  snake config dump > ~/.snake/configs/snake.yaml
  snake config dump --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file. Without a path, the file found through the
normal search order is checked.

Examples:
  snake config validate ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigValidate(_ *cobra.Command, args []string) {
	path := flagConfig
	if len(args) == 1 {
		path = args[0]
	}
	path = config.ResolvePath(path)

	if path == "" {
		fmt.Println("No config file found; built-in defaults are valid.")
		return
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: ok (board %dx%d, move every %d ticks at %d ticks/s)\n",
		path, cfg.Board.Width, cfg.Board.Height, cfg.Speed.MoveEveryTicks, cfg.Speed.TickRate)
}
