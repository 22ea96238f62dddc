// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

// BreakoutConfig contains all configuration for the breakout game.
type BreakoutConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Field      FieldConfig      `yaml:"field"`
	Layout     LayoutConfig     `yaml:"layout"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Combo      ComboConfig      `yaml:"combo"`
	Transition TransitionConfig `yaml:"transition"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Levels     []LevelSpec      `yaml:"levels"`
}

// ArenaConfig is the logical canvas the ball and paddle live in.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FieldConfig defines the brick container inset from the arena.
type FieldConfig struct {
	MarginX      float64 `yaml:"margin_x"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
	HeightRatio  float64 `yaml:"height_ratio"` // Fraction of the inset height used for bricks
}

// LayoutConfig controls brick sizing.
type LayoutConfig struct {
	AspectRatio float64 `yaml:"aspect_ratio"` // Brick width:height
	MinPadding  float64 `yaml:"min_padding"`
}

// PaddleConfig defines paddle parameters.
type PaddleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from arena bottom to paddle top
	Speed        float64 `yaml:"speed"`         // Units per frame
}

// BallConfig defines ball parameters.
type BallConfig struct {
	Radius           float64 `yaml:"radius"`
	Speed            float64 `yaml:"speed"`              // Per-axis launch speed, units per frame
	RestGap          float64 `yaml:"rest_gap"`           // Resting ball center above paddle top
	MinVerticalRatio float64 `yaml:"min_vertical_ratio"` // Floor of |dy| as a fraction of speed
	MaxBounceAngle   float64 `yaml:"max_bounce_angle"`   // Degrees, paddle edge deflection
}

// ComboConfig defines combo scoring parameters.
type ComboConfig struct {
	WindowMS      int `yaml:"window_ms"`
	MaxMultiplier int `yaml:"max_multiplier"`
	BasePoints    int `yaml:"base_points"`
}

// TransitionConfig defines the level transition animation.
type TransitionConfig struct {
	DurationFrames int     `yaml:"duration_frames"`
	SwapAt         float64 `yaml:"swap_at"` // Progress fraction at which the next level is built
}

// GameplayConfig contains session-wide switches.
type GameplayConfig struct {
	FrameRate  int  `yaml:"frame_rate"`
	MultiBall  bool `yaml:"multi_ball"` // Launch spawns an extra ball each time
	StartLevel int  `yaml:"start_level"`
}

// LevelSpec describes a custom level as an ASCII mask.
// '#' marks a brick, any other character a gap.
type LevelSpec struct {
	Name string   `yaml:"name"`
	Rows []string `yaml:"rows"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
