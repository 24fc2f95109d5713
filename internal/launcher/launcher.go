package launcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/mmr-tortoise/wmlaunch/internal/interpreter"
	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// Launcher starts the helper script through the first available
// interpreter candidate. It is built once per invocation from the
// effective configuration and is not reused — the launcher process
// performs at most one launch and exits.
type Launcher struct {
	// ScriptPath is the absolute path of the helper script to start.
	ScriptPath string

	// Candidates is the interpreter priority list, highest first.
	Candidates []model.Candidate

	// Prober resolves candidates against PATH. Exposed as a field so
	// tests can substitute a fake lookup.
	Prober *interpreter.Prober
}

// New creates a Launcher for the given script and candidate list,
// backed by the real PATH prober.
func New(scriptPath string, candidates []model.Candidate) *Launcher {
	return &Launcher{
		ScriptPath: scriptPath,
		Candidates: candidates,
		Prober:     interpreter.NewProber(),
	}
}

// ScriptDir returns the directory containing the launcher binary itself.
// The helper script is expected to live beside the binary, mirroring the
// original launcher scripts which resolved their own directory before
// anything else.
//
// Symlinks are resolved so that a symlinked binary (e.g., installed into
// ~/bin pointing at a checkout) still finds the script next to the real
// executable.
func ScriptDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve launcher executable: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		// Fall back to the unresolved path; a dangling symlink for the
		// running binary itself is effectively impossible.
		resolved = exe
	}
	return filepath.Dir(resolved), nil
}

// CheckTarget verifies the helper script exists on disk. The check runs
// exactly once, before any interpreter probing — a missing target is
// reported immediately regardless of interpreter availability.
//
// A directory at the script path counts as missing: it cannot be handed
// to an interpreter as a script file.
func (l *Launcher) CheckTarget() error {
	info, err := os.Stat(l.ScriptPath)
	if err != nil || info.IsDir() {
		return model.WrapCLIError(model.ExitLaunchError,
			fmt.Sprintf("expected helper script at %s", l.ScriptPath),
			model.ErrMissingTarget)
	}
	return nil
}

// Launch performs the full launch sequence: target check, interpreter
// probe, and a single child-process start in the requested mode.
//
// Foreground mode blocks until the helper exits and records its exit
// code in the report for verbatim propagation — a non-zero helper exit
// is NOT an error from Launch, it is a captured outcome. Background
// mode returns as soon as the child has started; the report's ExitCode
// stays nil because the outcome is never observed.
//
// The returned error is always a *model.CLIError wrapping one of the
// sentinel failure kinds, or a start failure from the OS.
func (l *Launcher) Launch(ctx context.Context, mode model.LaunchMode) (*model.LaunchReport, error) {
	if err := l.CheckTarget(); err != nil {
		return nil, err
	}

	chosen, interpPath, err := l.Prober.Resolve(l.Candidates)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitLaunchError,
			"cannot launch helper", err)
	}

	report := &model.LaunchReport{
		Script:          l.ScriptPath,
		Interpreter:     chosen.Name,
		InterpreterPath: interpPath,
		Mode:            mode,
	}

	switch mode {
	case model.ModeBackground:
		pid, err := l.spawnDetached(interpPath)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitLaunchError,
				fmt.Sprintf("failed to start %s", chosen.Name), err)
		}
		report.PID = pid
		return report, nil

	case model.ModeForeground:
		code, pid, err := l.runAttached(ctx, interpPath)
		if err != nil {
			return nil, model.WrapCLIError(model.ExitLaunchError,
				fmt.Sprintf("failed to start %s", chosen.Name), err)
		}
		report.PID = pid
		report.ExitCode = &code
		return report, nil

	default:
		return nil, model.NewCLIError(model.ExitLaunchError,
			fmt.Sprintf("unsupported launch mode %q", mode))
	}
}

// runAttached starts the helper attached to the launcher's console and
// blocks until it exits. The helper's exit code is returned for verbatim
// propagation; only a failure to start at all is an error.
func (l *Launcher) runAttached(ctx context.Context, interpPath string) (code, pid int, err error) {
	// The script path is the interpreter's sole argument, matching the
	// original launcher contract. The working directory is the script's
	// own directory so relative resources next to the helper resolve.
	cmd := exec.CommandContext(ctx, interpPath, l.ScriptPath)
	cmd.Dir = filepath.Dir(l.ScriptPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	runErr := cmd.Run()

	// Process may be nil when the start itself failed.
	if cmd.Process != nil {
		pid = cmd.Process.Pid
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			// The helper ran and exited non-zero — capture, don't fail.
			return exitErr.ExitCode(), pid, nil
		}
		// The chosen interpreter could not be started. Per the probing
		// policy there is no fallback to a later candidate here.
		return 0, pid, runErr
	}
	return 0, pid, nil
}

// spawnDetached starts the helper detached from the launcher: no console
// window, stdio on the null device, its own session. The launcher does
// not wait for it and releases the process handle immediately.
func (l *Launcher) spawnDetached(interpPath string) (int, error) {
	// Deliberately not CommandContext: the helper must outlive the
	// launcher process, which exits as soon as the start succeeds.
	cmd := exec.Command(interpPath, l.ScriptPath)
	cmd.Dir = filepath.Dir(l.ScriptPath)
	// Stdin/Stdout/Stderr stay nil, which connects the child to the
	// null device rather than the launcher's console.
	cmd.SysProcAttr = detachedProcAttr()

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid
	// Release drops the handle without waiting. The child's outcome is
	// never observed in background mode.
	_ = cmd.Process.Release()
	return pid, nil
}
