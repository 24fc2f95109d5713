// Package procinfo discovers running helper processes for the status
// command.
//
// It scans the process table via gopsutil and matches processes whose
// command line invokes the helper script. Matching is by script path
// (or, as a fallback, script file name) appearing as an interpreter
// argument, which catches helpers started by this launcher as well as
// ones started by hand.
package procinfo

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

// HelperProcess describes one running instance of the helper script.
type HelperProcess struct {
	// PID is the operating-system process ID.
	PID int32 `json:"pid"`

	// Interpreter is the command name of the interpreter running the
	// script (basename of argv[0]).
	Interpreter string `json:"interpreter"`

	// Started is the process creation time.
	Started time.Time `json:"started"`

	// Cmdline is the full command line, joined for display.
	Cmdline string `json:"cmdline"`
}

// Uptime returns how long the helper has been running, rounded to the
// second for display.
func (h HelperProcess) Uptime() time.Duration {
	return time.Since(h.Started).Round(time.Second)
}

// Find scans the process table and returns every process whose command
// line invokes the given helper script. Processes that disappear or
// deny access mid-scan are skipped silently — the scan is inherently
// racy and a partial answer is still useful.
func Find(ctx context.Context, scriptPath string) ([]HelperProcess, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}

	var found []HelperProcess
	for _, p := range procs {
		args, err := p.CmdlineSliceWithContext(ctx)
		if err != nil || !InvokesScript(args, scriptPath) {
			continue
		}

		h := HelperProcess{
			PID:         p.Pid,
			Interpreter: filepath.Base(args[0]),
			Cmdline:     strings.Join(args, " "),
		}
		// CreateTime reports milliseconds since the epoch.
		if ms, err := p.CreateTimeWithContext(ctx); err == nil {
			h.Started = time.UnixMilli(ms)
		}
		found = append(found, h)
	}
	return found, nil
}

// InvokesScript reports whether the command line args invoke the given
// script: some argument after the command itself must equal the script
// path, or share its file name. The name fallback keeps matching useful
// when the helper was started with a relative path from another
// directory.
//
// Kept as a pure exported function so the matching rules are testable
// without a live process table.
func InvokesScript(args []string, scriptPath string) bool {
	if len(args) < 2 {
		return false
	}
	scriptName := filepath.Base(scriptPath)
	for _, arg := range args[1:] {
		if pathEqual(arg, scriptPath) || pathEqual(filepath.Base(arg), scriptName) {
			return true
		}
	}
	return false
}

// pathEqual compares two paths after cleaning, case-insensitively on
// Windows where the filesystem is.
func pathEqual(a, b string) bool {
	a, b = filepath.Clean(a), filepath.Clean(b)
	if runtime.GOOS == "windows" {
		return strings.EqualFold(a, b)
	}
	return a == b
}
