// Package cli implements the motion command-line interface.
//
// Each Cobra command parses its flags into an options struct and hands it to
// a plain function (Run, Snapshot, Init) that does the work, so tests can call
// the functions without going through Cobra.
//
// # Command Structure
//
//	motion                 - Start the interactive demo (same as run)
//	motion run             - Start the interactive demo
//	motion snapshot        - Render one frame to stdout
//	motion init            - Write a default .motion.yaml
//	motion version         - Print build information
//	motion completion      - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --fps, --reduced-motion, --no-color) live on the
// root command and apply to every subcommand that renders. Values given on
// the command line win over the config file, which wins over the defaults.
// Environment variables (MOTION_ANIMATION_FPS and friends) are applied by
// the config loader, between the file and the flags.
package cli
