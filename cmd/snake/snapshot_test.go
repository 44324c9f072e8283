package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()

	g1, runs1 := simulate(cfg, 7, 900, 4)
	g2, runs2 := simulate(cfg, 7, 900, 4)

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("same seed should give the same board:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	if len(runs1) != len(runs2) {
		t.Errorf("run counts differ: %d vs %d", len(runs1), len(runs2))
	}
}

func TestSimulateStraightWraps(t *testing.T) {
	cfg := config.Default()
	g, _ := simulate(cfg, 1, 0, 0)
	start := g.Snapshot()

	// One full lap across the board in the starting direction
	lap := cfg.Board.Width
	if start.Dir.Delta().Y != 0 {
		lap = cfg.Board.Height
	}
	g, runs := simulate(cfg, 1, lap*cfg.Speed.MoveEveryTicks, 0)
	if len(runs) > 0 {
		t.Skip("run ended on a collectible during the lap")
	}
	if end := g.Snapshot(); end.HeadX != start.HeadX || end.HeadY != start.HeadY {
		t.Errorf("after a full lap head = (%d, %d), expected (%d, %d)", end.HeadX, end.HeadY, start.HeadX, start.HeadY)
	}
}

func TestSnapshotWritesPNG(t *testing.T) {
	cfg := config.Default()
	g, _ := simulate(cfg, 3, 120, 0)

	out := filepath.Join(t.TempDir(), "board.png")
	if err := g.ExportPNG(out, cfg.Palette); err != nil {
		t.Fatalf("ExportPNG() error = %v", err)
	}
	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in, want string
	}{
		{"~/.snake/snake.log", filepath.Join(home, ".snake", "snake.log")},
		{"/tmp/x.log", "/tmp/x.log"},
		{"relative.log", "relative.log"},
	}
	for _, tc := range tests {
		got, err := expandHome(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("expandHome(%q) = %q, %v; expected %q", tc.in, got, err, tc.want)
		}
	}
}
