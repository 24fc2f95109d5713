// Package cli — doctor.go implements the "wmlaunch doctor" command.
//
// The doctor command dry-runs the launch preconditions and reports every
// finding instead of stopping at the first failure: helper script
// presence, each interpreter candidate's resolution status, and which
// candidate a real launch would select. It exits 0 when a launch would
// succeed and 1 when it would not, so it doubles as a scriptable check.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/wmlaunch/internal/interpreter"
	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// doctorReport is the JSON payload of the doctor command.
type doctorReport struct {
	// Script is the helper script path that was checked.
	Script string `json:"script"`

	// ScriptFound reports whether the helper script exists.
	ScriptFound bool `json:"scriptFound"`

	// DefaultMode is the mode a bare `wmlaunch` invocation would use.
	DefaultMode model.LaunchMode `json:"defaultMode"`

	// Interpreters holds the probe result for every candidate, in
	// priority order.
	Interpreters []interpreter.ProbeResult `json:"interpreters"`

	// Launchable is true when a launch would succeed: script present
	// and at least one interpreter resolved.
	Launchable bool `json:"launchable"`
}

// NewDoctorCommand creates the "doctor" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose why a launch would fail",
		Long: `Check every launch precondition and report the findings.

Unlike a real launch, doctor does not stop at the first problem: it
reports the helper script's presence and the resolution status of every
interpreter candidate, then marks which one a launch would select.

Exits 0 when a launch would succeed, 1 otherwise.

Examples:
  wmlaunch doctor
  wmlaunch doctor --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}
}

// runDoctor is the main logic function for the doctor command.
func runDoctor() error {
	l, cfg, err := buildLauncher()
	if err != nil {
		return err
	}

	report := doctorReport{
		Script:      l.ScriptPath,
		ScriptFound: l.CheckTarget() == nil,
		DefaultMode: cfg.LaunchMode(),
		// Probe every candidate rather than stopping at the first hit —
		// the point of doctor is the full picture.
		Interpreters: l.Prober.ProbeAll(l.Candidates),
	}
	report.Launchable = report.ScriptFound && anySelected(report.Interpreters)

	printDoctorReport(report)

	if !report.Launchable {
		return model.NewCLIError(model.ExitLaunchError, "a launch would fail (see findings above)")
	}
	return nil
}

// anySelected reports whether any probe result is marked as the
// candidate a launch would use.
func anySelected(results []interpreter.ProbeResult) bool {
	for _, r := range results {
		if r.Selected {
			return true
		}
	}
	return false
}

// printDoctorReport outputs the findings in text or JSON format.
func printDoctorReport(report doctorReport) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Helper script:  %s  %s\n", report.Script, foundMark(report.ScriptFound))
	fmt.Printf("Default mode:   %s\n", report.DefaultMode)
	fmt.Println("Interpreters (priority order):")
	for _, r := range report.Interpreters {
		line := fmt.Sprintf("  %-10s %s", r.Candidate.Name, foundMark(r.Found))
		if r.Found {
			line += "  " + r.Path
		}
		if r.Selected {
			line += "  (selected)"
		}
		fmt.Println(line)
	}

	if report.Launchable {
		fmt.Println("\nA launch would succeed.")
	} else {
		fmt.Println("\nA launch would FAIL.")
	}
}

// foundMark renders a presence check result for the text report.
func foundMark(found bool) string {
	if found {
		return "found"
	}
	return "MISSING"
}
