package config

import "testing"

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		interval int
		initial  float64
	}{
		{DifficultyNone, false, 3, 0.0},
		{DifficultyFixed, false, 3, 0.0},
		{DifficultyEasy, true, 5, 0.0},
		{DifficultyNormal, true, 3, 0.3},
		{DifficultyHard, true, 2, 0.7},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Speed.MoveEveryTicks != tc.interval {
				t.Errorf("MoveEveryTicks = %d, expected %d", cfg.Speed.MoveEveryTicks, tc.interval)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestMoveIntervalDisabled(t *testing.T) {
	d := NewDifficultyManager(Default().Difficulty)
	if got := d.MoveInterval(3, 1, 1000, 0); got != 3 {
		t.Errorf("disabled progression should keep base interval, got %d", got)
	}
}

func TestMoveIntervalProgression(t *testing.T) {
	cfg := Default().Difficulty
	cfg.Enabled = true
	cfg.Progression = ProgressionConfig{Type: "score", MaxAt: 10}
	cfg.Scaling.IntervalReduction = 4
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score, expected int
	}{
		{0, 6},
		{5, 4},
		{10, 2},
		{50, 2}, // progress clamps at max difficulty
	}
	for _, tc := range tests {
		if got := d.MoveInterval(6, 1, tc.score, 0); got != tc.expected {
			t.Errorf("MoveInterval(score=%d) = %d, expected %d", tc.score, got, tc.expected)
		}
	}

	// Never faster than the minimum
	if got := d.MoveInterval(3, 2, 10, 0); got != 2 {
		t.Errorf("MoveInterval should respect minimum, got %d", got)
	}
}

func TestLevelTimeProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.5 {
		t.Errorf("Level at start = %v, expected 0.5", got)
	}
	if got := d.Level(0, 100); got != 1.0 {
		t.Errorf("Level at max_at = %v, expected 1.0", got)
	}
}
