package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/motion/internal/errors"
	"github.com/rileyhilliard/motion/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags shared by every command that renders the demo.
var globalFlags DemoFlags

var rootCmd = &cobra.Command{
	Use:   "motion",
	Short: "Springs, tweens and gestures in the terminal",
	Long: `motion is an animated terminal demo.

It shows a fade-in header, a spring-animated box you can toggle, cards that
react to hover and press, an animated counter, and a staggered list.

Run without a subcommand to start the interactive demo.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run(RunOptions{DemoFlags: globalFlags, NoMouse: runNoMouse})
	},
}

func init() {
	AddDemoFlags(rootCmd, &globalFlags)
	rootCmd.Flags().BoolVar(&runNoMouse, "no-mouse", false, "disable mouse hover and click")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if isUnknownCommandError(err) {
			err = unknownCommandError(err)
		}
		fmt.Fprintln(os.Stderr, strings.TrimRight(ui.RenderError(err), "\n"))
		os.Exit(1)
	}
}

// isUnknownCommandError reports whether cobra rejected the command line itself.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls "foo" out of `unknown command "foo" for "motion"`.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}

func unknownCommandError(err error) error {
	name := extractUnknownCommand(err)
	if name == "" {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't parse the command line",
			"Run 'motion --help' to see the available flags.")
	}
	return errors.WrapWithCode(err, errors.ErrConfig,
		fmt.Sprintf("'%s' isn't a motion command", name),
		"Run 'motion --help' to see what's available.")
}
