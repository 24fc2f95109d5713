// Package cli — launch.go holds the launch plumbing shared by the bare
// root command and the run/start subcommands: configuration loading,
// launcher construction, and result output.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mmr-tortoise/wmlaunch/internal/config"
	"github.com/mmr-tortoise/wmlaunch/internal/launcher"
	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// buildLauncher resolves the effective configuration and constructs the
// launcher for it. The sequence mirrors the original scripts: resolve
// the launcher's own directory first, then everything else is relative
// to it.
//
// As a side effect the global pause policy is set from the loaded
// config, so failures later in the same invocation pause correctly.
func buildLauncher() (*launcher.Launcher, *config.Config, error) {
	baseDir, err := launcher.ScriptDir()
	if err != nil {
		return nil, nil, model.WrapCLIError(model.ExitLaunchError,
			"cannot resolve the launcher's own directory", err)
	}
	VerboseLog("Launcher directory: %s", baseDir)

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		var found string
		cfg, found, err = config.Discover(baseDir)
		if err == nil && found != "" {
			VerboseLog("Loaded config from %s", found)
		}
	}
	if err != nil {
		return nil, nil, err
	}
	pausePolicy = cfg.PausePolicy()

	script := cfg.ResolveScript(baseDir)
	if scriptOverride != "" {
		// An explicit --script is resolved against the current working
		// directory like any other CLI path argument.
		script, err = filepath.Abs(scriptOverride)
		if err != nil {
			return nil, nil, model.WrapCLIError(model.ExitLaunchError,
				fmt.Sprintf("cannot resolve script path %q", scriptOverride), err)
		}
	}
	VerboseLog("Helper script: %s", script)

	return launcher.New(script, cfg.Candidates()), cfg, nil
}

// runLaunch performs a launch in the given mode, or in the configured
// default mode when override is nil (the bare `wmlaunch` invocation).
//
// A foreground helper's non-zero exit is converted into a CLIError
// carrying that exact code, so Execute propagates it verbatim — after
// displaying the code and pausing, matching the original launcher.
func runLaunch(ctx context.Context, override *model.LaunchMode) error {
	l, cfg, err := buildLauncher()
	if err != nil {
		return err
	}

	mode := cfg.LaunchMode()
	if override != nil {
		mode = *override
	}
	VerboseLog("Launch mode: %s", mode)

	report, err := l.Launch(ctx, mode)
	if err != nil {
		return decorateLaunchError(err)
	}

	if report.ExitCode != nil && *report.ExitCode != 0 {
		// The helper ran and failed. Its code becomes the launcher's own
		// exit status, displayed first so the user sees what happened.
		return model.NewCLIError(model.ExitCode(*report.ExitCode),
			fmt.Sprintf("%s exited with code %d", filepath.Base(report.Script), *report.ExitCode))
	}

	printLaunchResult(report)
	return nil
}

// decorateLaunchError appends a remediation hint to the no-interpreter
// diagnostic. The missing-target diagnostic already names the expected
// location and needs nothing further.
func decorateLaunchError(err error) error {
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) && errors.Is(err, model.ErrNoInterpreter) {
		return model.WrapCLIError(cliErr.Code,
			cliErr.Message+" (install Python 3, or list an installed interpreter in wmlaunch.jsonc)",
			cliErr.Err)
	}
	return err
}

// printLaunchResult outputs a successful launch in text or JSON format.
// Foreground launches with a clean exit stay quiet in text mode, like
// the original terminal launcher; background launches confirm the start
// since nothing else ever will.
func printLaunchResult(report *model.LaunchReport) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(data))
		return
	}

	if report.Mode == model.ModeBackground {
		fmt.Printf("Started %s (pid %d) via %s\n",
			filepath.Base(report.Script), report.PID, report.Interpreter)
	}
}
