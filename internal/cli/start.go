// Package cli — start.go implements the "wmlaunch start" command.
//
// The start command launches the helper in background mode: detached,
// with no console window surfaced, stdio on the null device. The
// launcher exits 0 as soon as the child has started — the helper's
// eventual outcome is deliberately never observed, matching the
// original windowless double-click launcher.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// NewStartCommand creates the "start" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Launch the helper detached, without a console window",
		Long: `Launch the helper script detached from this console.

The helper gets no console window and keeps running after wmlaunch
exits. wmlaunch exits 0 once the helper has started, regardless of what
the helper later does; use "wmlaunch status" to see whether it is still
running.

Examples:
  wmlaunch start
  wmlaunch start --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			mode := model.ModeBackground
			return runLaunch(cmd.Context(), &mode)
		},
	}
}
