package config

import (
	"math"
	"testing"
)

func scoreDifficulty(enabled bool, initial float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      enabled,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{WidthReduction: 4},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		cfg      DifficultyConfig
		score    int
		expected float64
	}{
		{"start", scoreDifficulty(true, 0), 0, 0},
		{"halfway", scoreDifficulty(true, 0), 50, 0.5},
		{"capped", scoreDifficulty(true, 0), 1000, 1},
		{"initial level offsets", scoreDifficulty(true, 0.5), 50, 0.75},
		{"disabled stays at initial", scoreDifficulty(false, 0.3), 1000, 0.3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDifficultyManager(tc.cfg)
			if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := scoreDifficulty(true, 0)
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)

	if got := d.Level(1000, 25); got != 0.25 {
		t.Errorf("Level() = %v, expected 0.25", got)
	}
}

func TestDifficultyGapAndWidth(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(true, 0))

	if got := d.Gap(3, 6, 0, 0); got != 3 {
		t.Errorf("Gap() at start = %v, expected 3", got)
	}
	if got := d.Gap(3, 6, 100, 0); got != 6 {
		t.Errorf("Gap() at max = %v, expected 6", got)
	}
	if got := d.Gap(3, 1, 100, 0); got != 3 {
		t.Errorf("Gap() with max below base = %v, expected 3", got)
	}

	if got := d.PlatformWidth(8, 100, 0); got != 4 {
		t.Errorf("PlatformWidth() at max = %v, expected 4", got)
	}
	if got := d.PlatformWidth(3, 100, 0); got != 2 {
		t.Errorf("PlatformWidth() should floor at 2, got %v", got)
	}
}

func TestDifficultySetters(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(true, 0))
	d.SetInitialLevel(2)
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("Level() = %v, expected clamped 1", got)
	}
}
