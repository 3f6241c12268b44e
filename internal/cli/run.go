package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/motion/internal/config"
	"github.com/rileyhilliard/motion/internal/demo"
	"github.com/rileyhilliard/motion/internal/errors"
	"github.com/rileyhilliard/motion/internal/logger"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// debugLogFile receives log output when MOTION_DEBUG is set.
const debugLogFile = "motion-debug.log"

var runNoMouse bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive demo",
	Long: `Start the interactive demo in the alternate screen.

Keys:
  t              toggle the animated box
  + / i          increment the counter
  tab / arrows   move focus; cards react to focus like a hover
  enter / space  press the focused button or card
  r              replay the entrance animations
  ?              show all keys
  q              quit

Examples:
  motion run
  motion run --fps 30
  motion run --reduced-motion --no-mouse`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(RunOptions{DemoFlags: globalFlags, NoMouse: runNoMouse})
	},
}

func init() {
	runCmd.Flags().BoolVar(&runNoMouse, "no-mouse", false, "disable mouse hover and click")
	rootCmd.AddCommand(runCmd)
}

// RunOptions holds options for the interactive demo.
type RunOptions struct {
	DemoFlags
	NoMouse bool
}

// Run starts the demo and blocks until the user quits.
func Run(opts RunOptions) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"The demo needs an interactive terminal",
			"Use 'motion snapshot' to render a single frame to a pipe or file.")
	}

	cfg, err := loadConfig(opts.DemoFlags)
	if err != nil {
		return err
	}
	if opts.NoMouse {
		cfg.Output.Mouse = false
	}
	applyColor(cfg.Output.Color)

	log, closeLog, err := setupDebugLog()
	if err != nil {
		return err
	}
	defer closeLog()

	log.Debug("starting: fps=%d reduced_motion=%t mouse=%t",
		cfg.Animation.FPS, cfg.Animation.ReducedMotion, cfg.Output.Mouse)

	model := demo.NewModel(demo.SettingsFromConfig(cfg), log)
	p := tea.NewProgram(model, programOptions(cfg)...)
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The demo stopped unexpectedly",
			"Check that the terminal is still attached, or try 'motion snapshot'")
	}
	return nil
}

// programOptions maps output settings onto Bubble Tea options.
func programOptions(cfg *config.Config) []tea.ProgramOption {
	var opts []tea.ProgramOption
	if cfg.Output.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Output.Mouse {
		// All-motion tracking reports the pointer without a button held,
		// which is what hover needs.
		opts = append(opts, tea.WithMouseAllMotion())
	}
	return opts
}

// setupDebugLog points the standard logger at debugLogFile when MOTION_DEBUG
// is set. Without it the demo gets a noop logger, since stdout and stderr
// both belong to the TUI.
func setupDebugLog() (logger.Logger, func(), error) {
	if !logger.DebugEnabled() {
		return logger.Noop(), func() {}, nil
	}

	f, err := tea.LogToFile(debugLogFile, "motion")
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.ErrTerminal,
			"Cannot open "+debugLogFile,
			"Check write permissions in the current directory, or unset "+logger.DebugEnv+".")
	}
	l := logger.NewEnvLogger("[demo]")
	logger.SetDefault(l)
	return l, func() { _ = f.Close() }, nil
}

// applyColor sets the lipgloss color profile for an output.color value.
func applyColor(mode string) {
	lipgloss.SetColorProfile(colorProfile(mode))
}

func colorProfile(mode string) termenv.Profile {
	switch mode {
	case "never":
		return termenv.Ascii
	case "always":
		return termenv.TrueColor
	default:
		// Honors NO_COLOR and CLICOLOR_FORCE on top of terminal detection.
		return termenv.EnvColorProfile()
	}
}
