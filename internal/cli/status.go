// Package cli — status.go implements the "wmlaunch status" command.
//
// The status command lists running helper processes. Background launches
// never report the helper's outcome, so this is the way to check whether
// a detached helper is (still) alive. Discovery scans the process table
// for command lines that invoke the helper script.
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wmlaunch/internal/model"
	"github.com/mmr-tortoise/wmlaunch/internal/procinfo"
)

// NewStatusCommand creates the "status" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List running helper processes",
		Long: `List helper processes currently running on this machine.

Each entry shows the process ID, the interpreter running it, and its
uptime. An empty list is not an error — it simply means no helper is
running.

Examples:
  wmlaunch status
  wmlaunch status --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context())
		},
	}
}

// runStatus is the main logic function for the status command.
func runStatus(ctx context.Context) error {
	l, _, err := buildLauncher()
	if err != nil {
		return err
	}

	VerboseLog("Scanning process table for %s", l.ScriptPath)
	helpers, err := procinfo.Find(ctx, l.ScriptPath)
	if err != nil {
		return model.WrapCLIError(model.ExitLaunchError,
			"failed to scan running processes", err)
	}

	printStatus(helpers)
	return nil
}

// printStatus outputs the running helper list in text or JSON format.
func printStatus(helpers []procinfo.HelperProcess) {
	if IsJSONOutput() {
		// Marshal an empty array rather than null when nothing is running.
		if helpers == nil {
			helpers = []procinfo.HelperProcess{}
		}
		data, _ := json.MarshalIndent(helpers, "", "  ")
		fmt.Println(string(data))
		return
	}

	if len(helpers) == 0 {
		fmt.Println("No running helper processes found.")
		return
	}

	fmt.Printf("%-8s %-12s %s\n", "PID", "INTERPRETER", "UPTIME")
	for _, h := range helpers {
		fmt.Printf("%-8d %-12s %s\n", h.PID, h.Interpreter, h.Uptime())
	}
}
