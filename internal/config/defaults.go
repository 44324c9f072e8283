package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration: a 32x24 board with
// 20px cells moving 20 cells per second, in the classic colors.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    32,
			Height:   24,
			CellSize: 20,
		},
		Speed: SpeedConfig{
			TickRate:          60,
			MoveEveryTicks:    3,
			MinMoveEveryTicks: 1,
		},
		Palette: Palette{
			Background:  "#000000",
			Border:      "#5DD8E4",
			Snake:       "#FF8000",
			SnakeHead:   "#FFA040",
			Apple:       "#FFFF00",
			RottenApple: "#FF00FF",
			Brick:       "#654321",
			HUD:         "#E0E0E0",
			Overlay:     "#FFFFAF",
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 2,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
