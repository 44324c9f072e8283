package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultBoardIsClassic(t *testing.T) {
	cfg := Default()
	if cfg.Board.Width*cfg.Board.CellSize != 640 || cfg.Board.Height*cfg.Board.CellSize != 480 {
		t.Errorf("default board should be 640x480 pixels, got %dx%d",
			cfg.Board.Width*cfg.Board.CellSize, cfg.Board.Height*cfg.Board.CellSize)
	}
	// 60 ticks/s with a move every 3 ticks gives the classic 20 moves/s
	if cfg.Speed.TickRate/cfg.Speed.MoveEveryTicks != 20 {
		t.Errorf("default speed should be 20 moves per second")
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("board:\n  width: 40\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Board.Width != 40 {
		t.Errorf("Width = %d, expected 40", cfg.Board.Width)
	}
	if cfg.Board.Height != Default().Board.Height {
		t.Errorf("Height should keep its default, got %d", cfg.Board.Height)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errSub string
	}{
		{"valid", func(*Config) {}, ""},
		{"tiny board", func(c *Config) { c.Board.Width = 1 }, "board"},
		{"zero cell size", func(c *Config) { c.Board.CellSize = 0 }, "cell_size"},
		{"zero tick rate", func(c *Config) { c.Speed.TickRate = 0 }, "tick_rate"},
		{"zero move interval", func(c *Config) { c.Speed.MoveEveryTicks = 0 }, "move_every_ticks"},
		{"min above base", func(c *Config) { c.Speed.MinMoveEveryTicks = 9 }, "min_move_every_ticks"},
		{"bad progression", func(c *Config) { c.Difficulty.Progression.Type = "lunar" }, "progression"},
		{"bad color", func(c *Config) { c.Palette.Apple = "yellow" }, "palette.apple"},
		{"short hex ok", func(c *Config) { c.Palette.Brick = "#a52" }, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errSub == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.errSub) {
				t.Errorf("expected error containing %q, got %v", tc.errSub, err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  move_every_ticks: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Speed.MoveEveryTicks != 6 {
		t.Errorf("MoveEveryTicks = %d, expected 6", cfg.Speed.MoveEveryTicks)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail for malformed yaml")
	}
}

func TestMarshalRoundTripKeepsBoard(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "rotten_apple:") {
		t.Errorf("marshalled yaml should use snake_case keys:\n%s", data)
	}
}

func TestPaletteColorFor(t *testing.T) {
	p := Default().Palette
	if p.ColorFor(core.ColorApple) != p.Apple {
		t.Error("apple role should map to the apple color")
	}
	if p.ColorFor(core.ColorBrick) != p.Brick {
		t.Error("brick role should map to the brick color")
	}
	if p.ColorFor(core.ColorDefault) != "" {
		t.Error("default role should map to the terminal default")
	}
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("speed:\n  move_every_ticks: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, log.New(io.Discard), func(cfg Config) { changes <- cfg })
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()

	for {
		select {
		case cfg := <-changes:
			if cfg.Speed.MoveEveryTicks != 7 {
				t.Errorf("reloaded MoveEveryTicks = %d, expected 7", cfg.Speed.MoveEveryTicks)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() returned error: %v", err)
			}
			return
		case <-tick.C:
			// Keep rewriting until the watcher is registered and sees it
			if err := os.WriteFile(path, []byte("speed:\n  move_every_ticks: 7\n"), 0o600); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("timed out waiting for config reload")
		}
	}
}
