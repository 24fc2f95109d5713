// Package config loads the optional launcher configuration file.
//
// The launcher works with zero configuration: the built-in defaults
// reproduce the original hardcoded behavior (launch wm_helper.py from
// the launcher's own directory, windowless interpreter first, background
// mode). A config file beside the binary — wmlaunch.jsonc or
// wmlaunch.yaml — can override the script name, the interpreter
// candidate list, the default launch mode, and the pause policy.
//
// JSONC is supported (via github.com/tidwall/jsonc) because a launcher
// config is exactly the kind of small hand-edited file people comment;
// YAML (gopkg.in/yaml.v3) is accepted as an alternative for the same
// reason. The format is chosen by file extension.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/wmlaunch/internal/interpreter"
	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// DefaultScript is the fixed helper script name the launcher expects
// beside its own binary when no configuration overrides it.
const DefaultScript = "wm_helper.py"

// Config holds the effective launcher settings. All fields have working
// defaults; a config file only needs to name the fields it changes.
type Config struct {
	// Script is the helper script to launch. A relative path is resolved
	// against the launcher binary's own directory.
	Script string `json:"script" yaml:"script"`

	// Interpreters overrides the interpreter candidate command names,
	// in priority order. Empty means the platform default list.
	Interpreters []string `json:"interpreters" yaml:"interpreters"`

	// Mode is the launch mode used when wmlaunch is invoked without a
	// subcommand. Valid values: "foreground", "background".
	Mode string `json:"mode" yaml:"mode"`

	// Pause is the pause policy applied after failure diagnostics.
	// Valid values: "auto", "always", "never".
	Pause string `json:"pause" yaml:"pause"`
}

// Default returns the built-in configuration, matching the behavior of
// the original launcher scripts: wm_helper.py beside the binary,
// platform-default interpreters, background launch, automatic pause.
func Default() *Config {
	return &Config{
		Script: DefaultScript,
		Mode:   model.ModeBackground.String(),
		Pause:  model.PauseAuto.String(),
	}
}

// fileNames lists the config file names probed beside the binary,
// in preference order.
var fileNames = []string{"wmlaunch.jsonc", "wmlaunch.yaml"}

// Discover looks for a config file in the given directory (normally the
// launcher binary's own directory) and loads the first one found.
// When no file exists, the defaults are returned with an empty path —
// a missing config file is not an error.
func Discover(dir string) (*Config, string, error) {
	for _, name := range fileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := Load(path)
		if err != nil {
			return nil, path, err
		}
		return cfg, path, nil
	}
	return Default(), "", nil
}

// Load reads and parses a config file at an explicit path. The format
// is selected by extension: .jsonc/.json parse as comment-tolerant JSON,
// .yaml/.yml as YAML. Fields absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitLaunchError,
				fmt.Sprintf("config file not found: %s", path), err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonc", ".json":
		// Strip // and /* */ comments and trailing commas, then parse
		// with the standard library. Unknown fields are silently
		// ignored, so a config written for a newer launcher version
		// still loads.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (expected .jsonc, .json, .yaml or .yml)", filepath.Ext(path))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config at %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the launcher cannot act
// on. It normalizes nothing — parsing of mode and pause strings happens
// here once so later accessors cannot fail.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Script) == "" {
		return fmt.Errorf("script must not be empty")
	}
	if _, err := model.ParseLaunchMode(c.Mode); err != nil {
		return err
	}
	if _, err := model.ParsePausePolicy(c.Pause); err != nil {
		return err
	}
	for _, name := range c.Interpreters {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("interpreter candidate names must not be empty")
		}
	}
	return nil
}

// LaunchMode returns the configured default launch mode. Validate must
// have accepted the config first, so parsing cannot fail here.
func (c *Config) LaunchMode() model.LaunchMode {
	mode, _ := model.ParseLaunchMode(c.Mode)
	return mode
}

// PausePolicy returns the configured pause policy.
func (c *Config) PausePolicy() model.PausePolicy {
	policy, _ := model.ParsePausePolicy(c.Pause)
	return policy
}

// Candidates returns the effective interpreter candidate list: the
// configured override when present, otherwise the platform defaults.
// Overridden names are marked windowless by command name, so listing
// "pythonw" in a custom order keeps its no-console property.
func (c *Config) Candidates() []model.Candidate {
	if len(c.Interpreters) == 0 {
		return interpreter.DefaultCandidates()
	}
	cands := make([]model.Candidate, 0, len(c.Interpreters))
	for _, name := range c.Interpreters {
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		cands = append(cands, model.Candidate{
			Name:       name,
			Windowless: strings.EqualFold(base, "pythonw"),
		})
	}
	return cands
}

// ResolveScript returns the absolute path of the helper script: an
// absolute configured path is used as-is, a relative one is joined with
// the launcher binary's directory.
func (c *Config) ResolveScript(baseDir string) string {
	if filepath.IsAbs(c.Script) {
		return c.Script
	}
	return filepath.Join(baseDir, c.Script)
}
