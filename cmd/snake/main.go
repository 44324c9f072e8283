// snake is the classic grid Snake game for the terminal.
//
// Usage:
//
//	snake play               - Title menu, then play
//	snake scores             - Show the best runs
//	snake config dump        - Print the effective configuration
//	snake config validate    - Validate a configuration file
//	snake snapshot           - Simulate headless and export the board as PNG
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: config tick_rate)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.snake/runs.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Log destination (default: ~/.snake/snake.log, "-" for stderr)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic arcade game played on a wrapping 32x24 board.

Eat apples (*) to grow, avoid the brick (#) and your own tail.
Rotten apples (%) shrink the snake.

Available commands:
  play      - Title menu and game
  scores    - View the best runs
  config    - Dump or validate configuration
  snapshot  - Headless simulation to PNG

Examples:
  snake play
  snake play --difficulty hard
  snake scores --limit 20
  snake snapshot --seed 7 --ticks 600 --out board.png`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", `Log file (default ~/.snake/snake.log, "-" for stderr)`)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(snapshotCmd)
}

// newLogger builds the process logger. The TUI owns the terminal while a
// game runs, so logs go to a file unless "-" is given.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	}

	if flagLogFile == "-" {
		return log.NewWithOptions(os.Stderr, opts), func() {}, nil
	}

	path := flagLogFile
	if path == "" {
		path = filepath.Join("~", ".snake", "snake.log")
	}
	path, err = expandHome(path)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	return log.NewWithOptions(f, opts), func() { f.Close() }, nil
}

// mustLogger is newLogger for commands that cannot continue without one.
func mustLogger() (*log.Logger, func()) {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeLog
}

// loadConfig reads the effective configuration and applies --difficulty.
// The preset is returned so live reloads can apply it again.
func loadConfig() (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, config.DifficultyNone, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, config.DifficultyNone, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, preset, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
