package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagWatchConfig bool
	flagNoMenu      bool
	flagPlayer      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Snake",
	Long: `Open the title menu and play.

The board wraps at the edges. Hitting the brick or your own body ends the
run; the snake restarts at the center and the run is saved.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc/Space       - Pause
  R                 - Restart run
  Ctrl+S            - Save PNG + text screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Slower start, speeds up as you score
  normal - Classic speed, speeds up as you score
  hard   - Fast start, speeds up as you score
  fixed  - No progression, classic constant speed

Examples:
  snake play
  snake play --difficulty hard
  snake play --no-menu --seed 42
  snake play --config ./my-snake.yaml --watch-config`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatchConfig, "watch-config", false, "Reload palette and speed when the config file changes")
	playCmd.Flags().BoolVar(&flagNoMenu, "no-menu", false, "Skip the title menu")
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name stored with each run")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog := mustLogger()
	defer closeLog()

	cfg, preset, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if rc.TickRate <= 0 {
		rc.TickRate = cfg.Speed.TickRate
	}

	opts := tui.Options{
		Store:       store,
		Logger:      logger,
		Player:      flagPlayer,
		ConfigPath:  flagConfig,
		WatchConfig: flagWatchConfig,
		Preset:      preset,
	}

	play := func() {
		game := snake.New(cfg)
		if err := tui.Run(game, rc, opts); err != nil {
			logger.Error("game failed", "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		// Fresh seed for the next session unless one was pinned
		if flagSeed == 0 {
			rc.Seed = time.Now().UnixNano()
		}
	}

	if flagNoMenu {
		play()
		return
	}

	for {
		result, err := tui.RunMenu(store, rc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		// Keep any size changes
		rc.ScreenW, rc.ScreenH = result.Config.ScreenW, result.Config.ScreenH

		switch result.Choice {
		case tui.ChoicePlay:
			play()

		case tui.ChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, rc.ScreenW, rc.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}

// openStore opens the run history. The game still works without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "db", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		return nil
	}
	return store
}
