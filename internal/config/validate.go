package config

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/motion/internal/errors"
)

// Limits enforced by Validate.
const (
	MinFPS     = 1
	MaxFPS     = 240
	MaxTapHold = 2 * time.Second
)

// Validate checks the config and returns a structured error describing the first problem.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but motion only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade motion or lower the version field")
	}

	if err := validateAnimation(cfg.Animation); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Animation settings are invalid",
			"Fix the animation section, or delete it to use defaults")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Output settings are invalid",
			"Fix the output section, or delete it to use defaults")
	}

	return nil
}

func validateAnimation(a AnimationConfig) error {
	if a.FPS < MinFPS || a.FPS > MaxFPS {
		return fmt.Errorf("animation.fps is %d - pick something between %d and %d", a.FPS, MinFPS, MaxFPS)
	}
	if a.PxPerColumn <= 0 {
		return fmt.Errorf("animation.px_per_column must be positive, got %g", a.PxPerColumn)
	}
	if a.PxPerRow <= 0 {
		return fmt.Errorf("animation.px_per_row must be positive, got %g", a.PxPerRow)
	}
	if a.TapHold < 0 {
		return fmt.Errorf("animation.tap_hold can't be negative")
	}
	if a.TapHold > MaxTapHold {
		return fmt.Errorf("animation.tap_hold (%v) is longer than %v - taps would feel stuck", a.TapHold, MaxTapHold)
	}
	return nil
}

func validateOutput(out OutputConfig) error {
	validColors := map[string]bool{"auto": true, "always": true, "never": true, "": true}
	if !validColors[out.Color] {
		return fmt.Errorf("output.color '%s' isn't valid - use 'auto', 'always', or 'never'", out.Color)
	}
	return nil
}
