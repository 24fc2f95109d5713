// Package cli — run.go implements the "wmlaunch run" command.
//
// The run command launches the helper in foreground mode: attached to
// the current console, blocking until the helper exits. The helper's
// exit code becomes the launcher's own exit code, verbatim. A non-zero
// code is displayed (and the pause applied) before exiting, so a
// double-clicked terminal launcher does not vanish on failure.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// NewRunCommand creates the "run" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the helper attached and propagate its exit code",
		Long: `Launch the helper script attached to this console and wait for it.

The helper inherits this console's stdin/stdout/stderr. When it exits,
wmlaunch exits with the same code: 0 passes through silently, a non-zero
code is displayed first.

Examples:
  wmlaunch run
  wmlaunch run --verbose
  wmlaunch run --json`,

		// The launch contract takes no positional parameters.
		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			mode := model.ModeForeground
			return runLaunch(cmd.Context(), &mode)
		},
	}
}
