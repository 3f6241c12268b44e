package config

import (
	"testing"
	"time"

	"github.com/rileyhilliard/motion/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "future version",
			mutate:  func(c *Config) { c.Version = CurrentConfigVersion + 1 },
			wantErr: "from the future",
		},
		{
			name:    "fps too low",
			mutate:  func(c *Config) { c.Animation.FPS = 0 },
			wantErr: "animation.fps is 0",
		},
		{
			name:    "fps too high",
			mutate:  func(c *Config) { c.Animation.FPS = MaxFPS + 1 },
			wantErr: "animation.fps",
		},
		{
			name:   "fps at limits",
			mutate: func(c *Config) { c.Animation.FPS = MaxFPS },
		},
		{
			name:    "zero px per column",
			mutate:  func(c *Config) { c.Animation.PxPerColumn = 0 },
			wantErr: "px_per_column",
		},
		{
			name:    "negative px per row",
			mutate:  func(c *Config) { c.Animation.PxPerRow = -1 },
			wantErr: "px_per_row",
		},
		{
			name:    "negative tap hold",
			mutate:  func(c *Config) { c.Animation.TapHold = -time.Millisecond },
			wantErr: "tap_hold can't be negative",
		},
		{
			name:    "tap hold too long",
			mutate:  func(c *Config) { c.Animation.TapHold = 3 * time.Second },
			wantErr: "taps would feel stuck",
		},
		{
			name:    "bad color",
			mutate:  func(c *Config) { c.Output.Color = "rainbow" },
			wantErr: "output.color 'rainbow'",
		},
		{
			name:   "empty color",
			mutate: func(c *Config) { c.Output.Color = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
