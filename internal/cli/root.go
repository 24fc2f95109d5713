// Package cli implements the cobra-based CLI commands for wmlaunch.
//
// Each subcommand (run, start, doctor, status) is defined in its own
// file within this package. This file defines the root command that
// serves as the parent for all subcommands and handles global flags.
//
// The root command itself is runnable: invoked with no arguments it
// launches the helper in the configured default mode, preserving the
// zero-argument contract of the original launcher scripts (which were
// started by double-click, not from a shell).
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, all output uses structured JSON format for machine
	// consumption. It also disables the interactive pause.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool

	// configPath overrides config discovery with an explicit file path.
	configPath string

	// scriptOverride overrides the helper script path from config.
	scriptOverride string
)

// pausePolicy is the effective pause policy, set once the configuration
// has been loaded. Until then the default (auto) applies, so failures
// during config loading itself still hold the window open.
var pausePolicy = model.PauseAuto

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wmlaunch",
		Short: "Launcher for the wm_helper image tool",
		Long: `wmlaunch locates a Python interpreter on this machine and starts the
wm_helper.py helper script that lives beside the launcher binary.

Invoked with no arguments it launches in the configured default mode
(background unless overridden in wmlaunch.jsonc/wmlaunch.yaml). Use the
run and start subcommands to force foreground or background mode, doctor
to diagnose why a launch would fail, and status to see running helpers.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// The original launchers take zero parameters; the bare command
		// keeps that contract and launches with the configured mode.
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaunch(cmd.Context(), nil)
		},
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a wmlaunch config file (default: discovered beside the binary)")
	rootCmd.PersistentFlags().StringVar(&scriptOverride, "script", "", "Path to the helper script (default: wm_helper.py beside the binary)")

	// Register subcommands. Each subcommand is defined in its own file
	// (run.go, start.go, etc.) and returns a *cobra.Command.
	rootCmd.AddCommand(NewRunCommand())
	rootCmd.AddCommand(NewStartCommand())
	rootCmd.AddCommand(NewDoctorCommand())
	rootCmd.AddCommand(NewStatusCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own exit
// codes (including a propagated helper exit code); other errors default
// to exit code 1. Every failure path goes through the pause so that a
// double-clicked launcher window stays open long enough to be read.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// CLIError types carry their own exit codes; for a propagated
		// helper failure that code is the helper's own.
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(cliErr.Message, cliErr.Err)
			maybePause()
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		maybePause()
		os.Exit(int(model.ExitLaunchError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	}
}

// maybePause blocks on a newline from stdin when the effective pause
// policy calls for it. The pause exists for the double-click case: the
// console window would otherwise close before the diagnostic can be read.
func maybePause() {
	if !shouldPause(pausePolicy, jsonOutput, stdinIsInteractive()) {
		return
	}
	fmt.Fprint(os.Stderr, "Press Enter to close...")
	_, _ = bufio.NewReader(os.Stdin).ReadString('\n')
}

// shouldPause decides whether to pause given the policy, JSON mode, and
// whether stdin is an interactive terminal. Split out as a pure function
// for testability.
func shouldPause(policy model.PausePolicy, jsonMode, interactive bool) bool {
	if jsonMode {
		// JSON output is for machine consumption; never block it.
		return false
	}
	switch policy {
	case model.PauseAlways:
		return true
	case model.PauseNever:
		return false
	default:
		return interactive
	}
}

// stdinIsInteractive reports whether stdin is attached to a terminal
// (character device) rather than a pipe or file.
func stdinIsInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
