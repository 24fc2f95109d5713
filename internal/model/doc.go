// Package model defines the domain types and value objects for the
// wmlaunch CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (Candidate, LaunchReport, etc.) are transient — the launcher
// keeps no state beyond the lifetime of a single invocation, so nothing in
// this package is ever persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling,
// plus the two sentinel errors (ErrMissingTarget, ErrNoInterpreter) that
// distinguish the launcher's terminal failure kinds.
package model
