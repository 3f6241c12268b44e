package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .motion.yaml configuration file.
type Config struct {
	Version   int             `yaml:"version" mapstructure:"version"`
	Animation AnimationConfig `yaml:"animation" mapstructure:"animation"`
	Output    OutputConfig    `yaml:"output" mapstructure:"output"`
}

// AnimationConfig controls frame timing and how pixel offsets map onto cells.
type AnimationConfig struct {
	// FPS is the frame rate while anything is moving. Idle screens don't tick.
	FPS int `yaml:"fps" mapstructure:"fps"`

	// ReducedMotion jumps every animation straight to its target.
	ReducedMotion bool `yaml:"reduced_motion" mapstructure:"reduced_motion"`

	// PxPerColumn and PxPerRow convert x/y offsets (declared in px) to cells.
	PxPerColumn float64 `yaml:"px_per_column" mapstructure:"px_per_column"`
	PxPerRow    float64 `yaml:"px_per_row" mapstructure:"px_per_row"`

	// TapHold is how long a keyboard tap keeps a card pressed.
	// Terminals report key presses but never releases.
	TapHold time.Duration `yaml:"tap_hold" mapstructure:"tap_hold"`
}

// OutputConfig controls terminal behavior.
type OutputConfig struct {
	// Color is "auto", "always", or "never".
	Color string `yaml:"color" mapstructure:"color"`

	// AltScreen runs the demo in the alternate screen buffer.
	AltScreen bool `yaml:"alt_screen" mapstructure:"alt_screen"`

	// Mouse enables hover and click via mouse motion events.
	Mouse bool `yaml:"mouse" mapstructure:"mouse"`
}

// Defaults for a fresh config.
const (
	DefaultFPS         = 60
	DefaultPxPerColumn = 10.0
	DefaultPxPerRow    = 20.0
	DefaultTapHold     = 150 * time.Millisecond
)

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Animation: AnimationConfig{
			FPS:           DefaultFPS,
			ReducedMotion: false,
			PxPerColumn:   DefaultPxPerColumn,
			PxPerRow:      DefaultPxPerRow,
			TapHold:       DefaultTapHold,
		},
		Output: OutputConfig{
			Color:     "auto",
			AltScreen: true,
			Mouse:     true,
		},
	}
}
