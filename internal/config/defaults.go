package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Engine: EngineConfig{
			TargetFPS:      60,
			MaxDeltaFrames: 5,
			FaultIsolation: true,
		},
		Physics: JumperPhysics{
			Gravity:            0.032,
			Acceleration:       0.15,
			Friction:           0.85,
			MaxSpeed:           1.2,
			MaxFallSpeed:       0,
			JumpImpulse:        -0.72,
			LandingMargin:      0.4,
			PrecisionThreshold: 0.001,
		},
		Player: JumperPlayer{
			Width:  3,
			Height: 2,
			SpawnX: 1,
			SpawnY: -10,
			Color:  core.ColorBrightGreen,
		},
		Platforms: JumperPlatforms{
			Width:        8,
			Height:       1,
			BaseX:        5,
			BaseFromDown: 4,
			InitialCount: 10,
			Gap:          3,
			MaxGap:       6,
			Lookahead:    1.0,
			Color:        core.ColorOrange,
		},
		Camera: CameraConfig{
			Threshold: 0.25,
		},
		Wallpaper: WallpaperConfig{
			CellWidth:      10,
			CellHeight:     4,
			Parallax:       1.0,
			GridColor:      core.ColorGray,
			ThresholdColor: core.ColorBlue,
			ShowThreshold:  true,
		},
		Input: InputConfig{
			KeyHoldMS: 180,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				WidthReduction: 4,
			},
		},
	}
}
