package interpreter

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// DefaultCandidates returns the built-in interpreter priority list for the
// current platform.
//
// On Windows the windowless variant (pythonw) comes first so that a
// background launch never flashes a console window; the general-purpose
// python is the fallback. Elsewhere python3 comes first because "python"
// may be absent or point at a Python 2 on older systems; plain python is
// kept as the fallback for environments that only install that name.
//
// The order is total and deterministic: two runs on the same machine
// always select the same interpreter.
func DefaultCandidates() []model.Candidate {
	if runtime.GOOS == "windows" {
		return []model.Candidate{
			{Name: "pythonw", Windowless: true},
			{Name: "python"},
		}
	}
	return []model.Candidate{
		{Name: "python3"},
		{Name: "python"},
	}
}

// ProbeResult records the outcome of probing a single candidate.
// It is the per-row payload of the doctor command's interpreter table.
type ProbeResult struct {
	// Candidate is the interpreter that was probed.
	Candidate model.Candidate `json:"candidate"`

	// Path is the resolved filesystem path, empty when not found.
	Path string `json:"path,omitempty"`

	// Found reports whether the candidate resolved on PATH.
	Found bool `json:"found"`

	// Selected marks the candidate a launch would actually use: the
	// first found candidate in priority order. At most one result in
	// a ProbeAll slice has Selected set.
	Selected bool `json:"selected"`
}

// Prober resolves interpreter candidates against the execution search path.
//
// The zero value is not usable; construct with NewProber. LookPath is an
// exported field (defaulting to exec.LookPath) so tests can substitute a
// fake PATH without manipulating the real environment.
type Prober struct {
	// LookPath resolves a command name to a filesystem path, returning
	// an error when the command is not found. Defaults to exec.LookPath.
	LookPath func(name string) (string, error)
}

// NewProber creates a Prober backed by the real PATH lookup.
func NewProber() *Prober {
	return &Prober{LookPath: exec.LookPath}
}

// Resolve probes the candidates strictly in slice order and returns the
// first one that resolves, together with its filesystem path.
//
// When no candidate resolves, the returned error wraps
// model.ErrNoInterpreter and names every command that was tried, so the
// user-facing diagnostic can suggest what to install.
func (p *Prober) Resolve(candidates []model.Candidate) (model.Candidate, string, error) {
	for _, c := range candidates {
		path, err := p.LookPath(c.Name)
		if err != nil {
			continue
		}
		return c, path, nil
	}
	return model.Candidate{}, "", fmt.Errorf("%w (tried: %s)",
		model.ErrNoInterpreter, joinNames(candidates))
}

// ProbeAll probes every candidate and returns one result per candidate,
// in priority order. Unlike Resolve it does not stop at the first hit —
// the doctor command needs the full picture. The result that Resolve
// would pick is marked Selected.
func (p *Prober) ProbeAll(candidates []model.Candidate) []ProbeResult {
	results := make([]ProbeResult, 0, len(candidates))
	selected := false

	for _, c := range candidates {
		r := ProbeResult{Candidate: c}
		if path, err := p.LookPath(c.Name); err == nil {
			r.Path = path
			r.Found = true
			if !selected {
				r.Selected = true
				selected = true
			}
		}
		results = append(results, r)
	}
	return results
}

// joinNames renders candidate command names as a comma-separated list
// for diagnostics.
func joinNames(candidates []model.Candidate) string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}
