package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the built-in breakout configuration.
// It mirrors defaults/breakout.yaml and is used when the embedded file
// cannot be parsed.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 600,
		},
		Field: FieldConfig{
			MarginX:      40,
			MarginTop:    80,
			MarginBottom: 100,
			HeightRatio:  0.75,
		},
		Layout: LayoutConfig{
			AspectRatio: 2.5,
			MinPadding:  4,
		},
		Paddle: PaddleConfig{
			Width:        100,
			Height:       20,
			BottomOffset: 50,
			Speed:        8,
		},
		Ball: BallConfig{
			Radius:           8,
			Speed:            4,
			RestGap:          20,
			MinVerticalRatio: 0.3,
			MaxBounceAngle:   60,
		},
		Combo: ComboConfig{
			WindowMS:      1000,
			MaxMultiplier: 8,
			BasePoints:    10,
		},
		Transition: TransitionConfig{
			DurationFrames: 300,
			SwapAt:         0.7,
		},
		Gameplay: GameplayConfig{
			FrameRate:  60,
			MultiBall:  false,
			StartLevel: 1,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBreakoutYAML
}
