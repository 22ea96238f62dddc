package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// LoadBreakout loads the breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Files are decoded over the defaults, so partial files only override what they name.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := ParseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBreakout decodes YAML over the defaults and validates the result.
func ParseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a simulation.
func (c BreakoutConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Arena.Width > 0 && c.Arena.Height > 0, "arena must be positive, got %vx%v", c.Arena.Width, c.Arena.Height)
	check(c.Field.MarginX >= 0 && c.Field.MarginTop >= 0 && c.Field.MarginBottom >= 0, "field margins must not be negative")
	check(c.Field.HeightRatio > 0 && c.Field.HeightRatio <= 1, "field height_ratio must be in (0, 1], got %v", c.Field.HeightRatio)
	check(c.Layout.AspectRatio > 0, "layout aspect_ratio must be positive, got %v", c.Layout.AspectRatio)
	check(c.Layout.MinPadding >= 0, "layout min_padding must not be negative, got %v", c.Layout.MinPadding)
	check(c.Paddle.Width > 0 && c.Paddle.Width <= c.Arena.Width, "paddle width must be in (0, arena width], got %v", c.Paddle.Width)
	check(c.Paddle.Height > 0, "paddle height must be positive, got %v", c.Paddle.Height)
	check(c.Paddle.BottomOffset > 0 && c.Paddle.BottomOffset < c.Arena.Height, "paddle bottom_offset out of range, got %v", c.Paddle.BottomOffset)
	check(c.Paddle.Speed >= 0, "paddle speed must not be negative, got %v", c.Paddle.Speed)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Speed > 0, "ball speed must be positive, got %v", c.Ball.Speed)
	check(c.Ball.MinVerticalRatio >= 0 && c.Ball.MinVerticalRatio < 1, "ball min_vertical_ratio must be in [0, 1), got %v", c.Ball.MinVerticalRatio)
	check(c.Ball.MaxBounceAngle > 0 && c.Ball.MaxBounceAngle < 90, "ball max_bounce_angle must be in (0, 90), got %v", c.Ball.MaxBounceAngle)
	check(c.Combo.WindowMS > 0, "combo window_ms must be positive, got %d", c.Combo.WindowMS)
	check(c.Combo.MaxMultiplier >= 1, "combo max_multiplier must be at least 1, got %d", c.Combo.MaxMultiplier)
	check(c.Combo.BasePoints >= 0, "combo base_points must not be negative, got %d", c.Combo.BasePoints)
	check(c.Transition.DurationFrames > 0, "transition duration_frames must be positive, got %d", c.Transition.DurationFrames)
	check(c.Transition.SwapAt > 0 && c.Transition.SwapAt < 1, "transition swap_at must be in (0, 1), got %v", c.Transition.SwapAt)
	check(c.Gameplay.FrameRate > 0, "gameplay frame_rate must be positive, got %d", c.Gameplay.FrameRate)
	check(c.Gameplay.StartLevel >= 1, "gameplay start_level must be at least 1, got %d", c.Gameplay.StartLevel)

	for i, lvl := range c.Levels {
		check(len(lvl.Rows) > 0, "level %d (%q) has no rows", i, lvl.Name)
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Presets only touch constants; speed never changes during play.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 130
		cfg.Ball.Speed = 3.5
		cfg.Combo.WindowMS = 1200
	case DifficultyHard:
		cfg.Paddle.Width = 80
		cfg.Ball.Speed = 5
		cfg.Combo.WindowMS = 800
	}
}
