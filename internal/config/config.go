// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Config contains all configuration for the snake game.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Speed      SpeedConfig      `yaml:"speed"`
	Palette    Palette          `yaml:"palette"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the fixed-size grid.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"` // Pixels per cell for image exports
}

// SpeedConfig defines tick timing.
type SpeedConfig struct {
	TickRate          int `yaml:"tick_rate"`
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
}

// Palette holds hex colors for every board element.
type Palette struct {
	Background  string `yaml:"background"`
	Border      string `yaml:"border"`
	Snake       string `yaml:"snake"`
	SnakeHead   string `yaml:"snake_head"`
	Apple       string `yaml:"apple"`
	RottenApple string `yaml:"rotten_apple"`
	Brick       string `yaml:"brick"`
	HUD         string `yaml:"hud"`
	Overlay     string `yaml:"overlay"`
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Move interval reduction at max difficulty
}

// ColorFor returns the hex color for a screen cell role.
// Unknown roles map to an empty string (terminal default).
func (p Palette) ColorFor(c core.Color) string {
	switch c {
	case core.ColorHUD:
		return p.HUD
	case core.ColorBorder:
		return p.Border
	case core.ColorSnakeHead:
		return p.SnakeHead
	case core.ColorSnakeBody:
		return p.Snake
	case core.ColorApple:
		return p.Apple
	case core.ColorRottenApple:
		return p.RottenApple
	case core.ColorBrick:
		return p.Brick
	case core.ColorOverlay:
		return p.Overlay
	default:
		return ""
	}
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	if c.Board.Width < 2 || c.Board.Height < 2 {
		return fmt.Errorf("config: board must be at least 2x2, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", c.Board.CellSize)
	}
	if c.Speed.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Speed.TickRate)
	}
	if c.Speed.MoveEveryTicks <= 0 {
		return fmt.Errorf("config: move_every_ticks must be positive, got %d", c.Speed.MoveEveryTicks)
	}
	if c.Speed.MinMoveEveryTicks <= 0 || c.Speed.MinMoveEveryTicks > c.Speed.MoveEveryTicks {
		return fmt.Errorf("config: min_move_every_ticks must be in [1, %d], got %d",
			c.Speed.MoveEveryTicks, c.Speed.MinMoveEveryTicks)
	}
	switch c.Difficulty.Progression.Type {
	case "score", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}

	colors := map[string]string{
		"background":   c.Palette.Background,
		"border":       c.Palette.Border,
		"snake":        c.Palette.Snake,
		"snake_head":   c.Palette.SnakeHead,
		"apple":        c.Palette.Apple,
		"rotten_apple": c.Palette.RottenApple,
		"brick":        c.Palette.Brick,
		"hud":          c.Palette.HUD,
		"overlay":      c.Palette.Overlay,
	}
	for name, hex := range colors {
		if !isHexColor(hex) {
			return fmt.Errorf("config: palette.%s: invalid hex color %q", name, hex)
		}
	}
	return nil
}

// isHexColor accepts #RGB and #RRGGBB.
func isHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return false
	}
	for _, ch := range s[1:] {
		switch {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f', ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}
