package model

import (
	"errors"
	"fmt"
	"strings"
)

// LaunchMode selects how the helper process is started.
// The two modes correspond to the two historical launcher scripts:
// a windowless double-click launcher (background) and a terminal
// launcher that reports the helper's outcome (foreground).
type LaunchMode string

const (
	// ModeForeground starts the helper attached to the current console,
	// waits for it to exit, and propagates its exit code verbatim.
	ModeForeground LaunchMode = "foreground"

	// ModeBackground starts the helper detached, with no console window
	// surfaced, and exits immediately without observing its outcome.
	ModeBackground LaunchMode = "background"
)

// String returns the string representation of LaunchMode.
// This method satisfies the fmt.Stringer interface, enabling
// human-readable output in CLI commands and diagnostics.
func (m LaunchMode) String() string {
	return string(m)
}

// IsValid checks whether the LaunchMode value is one of the
// predefined valid modes.
func (m LaunchMode) IsValid() bool {
	switch m {
	case ModeForeground, ModeBackground:
		return true
	default:
		return false
	}
}

// ParseLaunchMode converts a string to a LaunchMode.
// Returns an error if the string does not match any valid mode.
func ParseLaunchMode(s string) (LaunchMode, error) {
	mode := LaunchMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid launch mode: %q (valid: foreground, background)", s)
	}
	return mode, nil
}

// PausePolicy controls the interactive pause before the launcher exits
// after a failure. The pause exists so that a double-clicked launcher
// window does not close before the user can read the diagnostic.
type PausePolicy string

const (
	// PauseAuto pauses only when stdin is an interactive terminal.
	// This is the default: a double-clicked launcher pauses, a scripted
	// or piped invocation does not.
	PauseAuto PausePolicy = "auto"

	// PauseAlways pauses after every failure diagnostic.
	PauseAlways PausePolicy = "always"

	// PauseNever disables the pause entirely.
	PauseNever PausePolicy = "never"
)

// String returns the string representation of PausePolicy.
func (p PausePolicy) String() string {
	return string(p)
}

// IsValid checks whether the PausePolicy value is one of the
// predefined valid policies.
func (p PausePolicy) IsValid() bool {
	switch p {
	case PauseAuto, PauseAlways, PauseNever:
		return true
	default:
		return false
	}
}

// ParsePausePolicy converts a string to a PausePolicy.
// Returns an error if the string does not match any valid policy.
func ParsePausePolicy(s string) (PausePolicy, error) {
	policy := PausePolicy(strings.ToLower(s))
	if !policy.IsValid() {
		return "", fmt.Errorf("invalid pause policy: %q (valid: auto, always, never)", s)
	}
	return policy, nil
}

// Candidate is one interpreter the launcher may use to run the helper
// script. Candidates are tried strictly in priority order; the first one
// resolvable on PATH wins and no later candidate is ever consulted,
// even if the chosen one subsequently fails to start.
type Candidate struct {
	// Name is the command name probed on PATH (e.g., "pythonw", "python3").
	// It may also be an absolute path, in which case PATH is bypassed.
	Name string `json:"name"`

	// Windowless marks interpreter variants that never open a console
	// window of their own (pythonw on Windows). Such variants are listed
	// first so that background launches stay invisible even on platforms
	// where process creation flags alone are not enough.
	Windowless bool `json:"windowless"`
}

// String returns the candidate's command name.
func (c Candidate) String() string {
	return c.Name
}

// LaunchReport records the outcome of a single launch. It is the JSON
// payload printed by the run/start commands in --json mode.
type LaunchReport struct {
	// Script is the absolute path of the helper script that was launched.
	Script string `json:"script"`

	// Interpreter is the command name of the candidate that won the probe.
	Interpreter string `json:"interpreter"`

	// InterpreterPath is the resolved filesystem path of that interpreter.
	InterpreterPath string `json:"interpreterPath"`

	// Mode is the launch mode that was used.
	Mode LaunchMode `json:"mode"`

	// PID is the operating-system process ID of the started helper.
	PID int `json:"pid"`

	// ExitCode is the helper's exit code. It is only populated in
	// foreground mode; in background mode the helper's outcome is
	// never observed and the field stays nil.
	ExitCode *int `json:"exitCode,omitempty"`
}

// Sentinel errors for the launcher's two terminal failure kinds.
// They are wrapped inside CLIError values so that callers can use
// errors.Is to distinguish the failures while the CLI layer still
// gets a uniform exit code.
var (
	// ErrMissingTarget indicates the helper script was not found at its
	// expected location. No interpreter probing happens in this case.
	ErrMissingTarget = errors.New("helper script not found")

	// ErrNoInterpreter indicates none of the candidate interpreters
	// resolved on PATH.
	ErrNoInterpreter = errors.New("no suitable interpreter found")
)

// ExitCode defines the launcher's own exit codes. These are deliberately
// coarse: both terminal failure kinds map to 1, preserving the contract
// of the original launcher scripts. A foreground helper's own exit code
// is propagated verbatim and is not enumerated here.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully. In
	// background mode this only means the helper was started — its
	// eventual outcome is not observed.
	ExitSuccess ExitCode = 0

	// ExitLaunchError indicates the launch could not happen at all:
	// the helper script is missing, no interpreter resolved, or the
	// chosen interpreter failed to start.
	ExitLaunchError ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
