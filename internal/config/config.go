// Package config provides YAML-based game configuration loading,
// difficulty management and hot reload for the jumper games.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// JumperConfig contains all configuration for the jumper game.
// Distances are in terminal cells, speeds in cells per logical frame.
type JumperConfig struct {
	Engine     EngineConfig     `yaml:"engine"`
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Platforms  JumperPlatforms  `yaml:"platforms"`
	Camera     CameraConfig     `yaml:"camera"`
	Wallpaper  WallpaperConfig  `yaml:"wallpaper"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// EngineConfig tunes the frame loop.
type EngineConfig struct {
	TargetFPS      float64 `yaml:"target_fps"`       // Logical frames per second physics is tuned for
	MaxDeltaFrames float64 `yaml:"max_delta_frames"` // Cap on frames advanced by one host frame
	FaultIsolation bool    `yaml:"fault_isolation"`  // Recover panicking entities instead of crashing
}

// JumperPhysics defines the player's movement model.
type JumperPhysics struct {
	Gravity            float64 `yaml:"gravity"`
	Acceleration       float64 `yaml:"acceleration"`
	Friction           float64 `yaml:"friction"` // Velocity multiplier per frame with no horizontal input
	MaxSpeed           float64 `yaml:"max_speed"`
	MaxFallSpeed       float64 `yaml:"max_fall_speed"` // 0 disables the cap
	JumpImpulse        float64 `yaml:"jump_impulse"`
	LandingMargin      float64 `yaml:"landing_margin"`
	PrecisionThreshold float64 `yaml:"precision_threshold"`
}

// JumperPlayer defines player size and spawn offset.
type JumperPlayer struct {
	Width  float64    `yaml:"width"`
	Height float64    `yaml:"height"`
	SpawnX float64    `yaml:"spawn_x"` // Relative to the base platform
	SpawnY float64    `yaml:"spawn_y"`
	Color  core.Color `yaml:"color"`
}

// JumperPlatforms defines platform layout.
type JumperPlatforms struct {
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	BaseX        float64    `yaml:"base_x"`
	BaseFromDown float64    `yaml:"base_from_bottom"` // Base platform distance above the bottom edge
	InitialCount int        `yaml:"initial_count"`
	Gap          float64    `yaml:"gap"`     // Vertical distance between rows at the lowest difficulty
	MaxGap       float64    `yaml:"max_gap"` // Vertical distance at the highest difficulty
	Lookahead    float64    `yaml:"lookahead"`
	Color        core.Color `yaml:"color"`
}

// CameraConfig defines when the camera scrolls.
type CameraConfig struct {
	Threshold float64 `yaml:"threshold"` // Fraction of screen height; the camera rises when the player is above it
}

// WallpaperConfig defines the background grid.
type WallpaperConfig struct {
	CellWidth      int        `yaml:"cell_width"`
	CellHeight     int        `yaml:"cell_height"`
	Parallax       float64    `yaml:"parallax"`
	GridColor      core.Color `yaml:"grid_color"`
	ThresholdColor core.Color `yaml:"threshold_color"`
	ShowThreshold  bool       `yaml:"show_threshold"`
}

// InputConfig defines terminal input emulation.
type InputConfig struct {
	KeyHoldMS int `yaml:"key_hold_ms"` // Key-up is synthesized after this long without a repeat
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	WidthReduction float64 `yaml:"width_reduction"` // Platform width lost at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string is accepted and
// means "keep the config file's setting".
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is returned for settings the game cannot run with.
var ErrInvalidConfig = errors.New("config: invalid jumper config")

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate rejects settings that would stall platform generation.
func (c JumperConfig) Validate() error {
	p := c.Platforms
	switch {
	case !finite(p.Height) || p.Height <= 0:
		return fmt.Errorf("%w: platforms.height must be positive, got %v", ErrInvalidConfig, p.Height)
	case !finite(p.Width) || p.Width <= 0:
		return fmt.Errorf("%w: platforms.width must be positive, got %v", ErrInvalidConfig, p.Width)
	case !finite(p.Gap):
		return fmt.Errorf("%w: platforms.gap must be finite, got %v", ErrInvalidConfig, p.Gap)
	case !finite(p.MaxGap):
		return fmt.Errorf("%w: platforms.max_gap must be finite, got %v", ErrInvalidConfig, p.MaxGap)
	case !finite(p.Lookahead) || p.Lookahead < 0:
		return fmt.Errorf("%w: platforms.lookahead must be finite and not negative, got %v", ErrInvalidConfig, p.Lookahead)
	}
	return nil
}
