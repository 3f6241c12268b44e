package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/motion/internal/config"
	"github.com/rileyhilliard/motion/internal/errors"
	"github.com/rileyhilliard/motion/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	initForce  bool
	initGlobal bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a " + config.ConfigFileName + " with default settings",
	Long: `Write a config file with every setting at its default value.

The file goes in the current directory unless --global is given, in which
case it goes to ~/` + config.GlobalConfigDir + "/" + config.GlobalConfigFile + `.

Examples:
  motion init
  motion init --global
  motion init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(".", config.ConfigFileName)
		if initGlobal {
			path = config.GlobalPath()
			if path == "" {
				return errors.New(errors.ErrConfig,
					"Can't find your home directory",
					"Set $HOME, or run 'motion init' without --global.")
			}
		}
		return Init(InitOptions{
			Path:           path,
			Overwrite:      initForce,
			NonInteractive: !term.IsTerminal(int(os.Stdin.Fd())),
			Out:            cmd.OutOrStdout(),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config")
	initCmd.Flags().BoolVar(&initGlobal, "global", false, "write the global config instead")
	rootCmd.AddCommand(initCmd)
}

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string    // Where to write the config
	Overwrite      bool      // Overwrite existing config without asking
	NonInteractive bool      // Never prompt; fail if the file exists
	Out            io.Writer // Where to report the result; defaults to stdout

	// confirm asks whether to overwrite. Tests replace it; nil means a huh prompt.
	confirm func(path string) (bool, error)
}

// Init writes a default config to opts.Path.
func Init(opts InitOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	if config.Exists(opts.Path) && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", opts.Path),
				"Use --force to overwrite")
		}

		confirm := opts.confirm
		if confirm == nil {
			confirm = confirmOverwrite
		}
		overwrite, err := confirm(opts.Path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	if err := config.Write(opts.Path, config.DefaultConfig(), true); err != nil {
		return err
	}

	ui.Success(out, "Created "+opts.Path,
		"Edit it to change the frame rate, motion scale, or colors.")
	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", path)).
				Affirmative("Overwrite").
				Negative("Keep it").
				Value(&overwrite),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}
