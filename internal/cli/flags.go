package cli

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/motion/internal/config"
	"github.com/rileyhilliard/motion/internal/errors"
	"github.com/spf13/cobra"
)

// DemoFlags holds the flags shared by run and snapshot.
type DemoFlags struct {
	ConfigPath    string
	FPS           int
	ReducedMotion bool
	NoColor       bool
}

// AddDemoFlags registers --config, --fps, --reduced-motion and --no-color as
// persistent flags so every subcommand sees them.
func AddDemoFlags(cmd *cobra.Command, flags *DemoFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "config file (default: ./"+config.ConfigFileName+", then ~/"+config.GlobalConfigDir+"/"+config.GlobalConfigFile+")")
	pf.IntVar(&flags.FPS, "fps", 0, fmt.Sprintf("frames per second while animating (%d-%d)", config.MinFPS, config.MaxFPS))
	pf.BoolVar(&flags.ReducedMotion, "reduced-motion", false, "jump straight to every animation's end state")
	pf.BoolVar(&flags.NoColor, "no-color", false, "render without colors")
}

// Apply overlays flags that were set on top of cfg.
// Zero values mean "not given" and leave the config alone.
func (f DemoFlags) Apply(cfg *config.Config) {
	if f.FPS != 0 {
		cfg.Animation.FPS = f.FPS
	}
	if f.ReducedMotion {
		cfg.Animation.ReducedMotion = true
	}
	if f.NoColor {
		cfg.Output.Color = "never"
	}
}

// loadConfig finds the config, applies flag overrides and validates the result.
func loadConfig(f DemoFlags) (*config.Config, error) {
	cfg, _, err := config.LoadOrDefault(f.ConfigPath)
	if err != nil {
		return nil, err
	}
	f.Apply(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseAt parses the --at flag. An empty flag means "after everything settles",
// reported as settle=true.
func ParseAt(flag string) (at time.Duration, settle bool, err error) {
	if flag == "" {
		return 0, true, nil
	}

	d, err := time.ParseDuration(flag)
	if err != nil {
		return 0, false, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' doesn't look like a valid time", flag),
			"Try something like 0s, 250ms, or 1.5s.")
	}
	if d < 0 {
		return 0, false, errors.New(errors.ErrConfig,
			fmt.Sprintf("--at can't be negative (got %s)", flag),
			"Use 0s for the first frame.")
	}
	return d, false, nil
}
