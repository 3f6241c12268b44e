package demo

import (
	"math"
	"time"

	"github.com/rileyhilliard/motion/internal/config"
	"github.com/rileyhilliard/motion/internal/motion"
)

// Settings are the config values the view reads.
type Settings struct {
	FPS           int
	ReducedMotion bool
	PxPerColumn   float64
	PxPerRow      float64
	TapHold       time.Duration
}

// DefaultSettings mirrors config.DefaultConfig.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultConfig())
}

// SettingsFromConfig extracts view settings from a loaded config.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		FPS:           cfg.Animation.FPS,
		ReducedMotion: cfg.Animation.ReducedMotion,
		PxPerColumn:   cfg.Animation.PxPerColumn,
		PxPerRow:      cfg.Animation.PxPerRow,
		TapHold:       cfg.Animation.TapHold,
	}
}

// Clock returns the frame clock for these settings.
func (s Settings) Clock() motion.Clock {
	return motion.NewClock(s.FPS)
}

func (s Settings) columns(px float64) int {
	if s.PxPerColumn <= 0 {
		return int(math.Round(px / config.DefaultPxPerColumn))
	}
	return int(math.Round(px / s.PxPerColumn))
}

func (s Settings) rows(px float64) int {
	if s.PxPerRow <= 0 {
		return int(math.Round(px / config.DefaultPxPerRow))
	}
	return int(math.Round(px / s.PxPerRow))
}
