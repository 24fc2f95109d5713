package interpreter

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/wmlaunch/internal/model"
)

// fakeLookPath returns a LookPath function that resolves only the given
// command names, mapping each to a synthetic path. It also records the
// probe order so tests can assert strict priority.
func fakeLookPath(available []string, probed *[]string) func(string) (string, error) {
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	return func(name string) (string, error) {
		if probed != nil {
			*probed = append(*probed, name)
		}
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
	}
}

// candidates builds a three-entry priority list used by most tests below.
func candidates() []model.Candidate {
	return []model.Candidate{
		{Name: "pythonw", Windowless: true},
		{Name: "python"},
		{Name: "python3"},
	}
}

// TestResolve_FirstCandidateWins verifies that when every candidate is
// available, the highest-priority one is selected and no lower-priority
// candidate is even probed (first match stops the scan).
func TestResolve_FirstCandidateWins(t *testing.T) {
	var probed []string
	p := &Prober{LookPath: fakeLookPath([]string{"pythonw", "python", "python3"}, &probed)}

	c, path, err := p.Resolve(candidates())
	require.NoError(t, err)

	assert.Equal(t, "pythonw", c.Name)
	assert.True(t, c.Windowless)
	assert.Equal(t, "/usr/bin/pythonw", path)

	// The scan must stop at the first hit.
	assert.Equal(t, []string{"pythonw"}, probed)
}

// TestResolve_FallsThroughMissingCandidates verifies that unavailable
// candidates are skipped in order until one resolves.
func TestResolve_FallsThroughMissingCandidates(t *testing.T) {
	var probed []string
	p := &Prober{LookPath: fakeLookPath([]string{"python3"}, &probed)}

	c, path, err := p.Resolve(candidates())
	require.NoError(t, err)

	assert.Equal(t, "python3", c.Name)
	assert.Equal(t, "/usr/bin/python3", path)

	// Every higher-priority candidate must have been tried first, in order.
	assert.Equal(t, []string{"pythonw", "python", "python3"}, probed)
}

// TestResolve_NoneAvailable verifies the ErrNoInterpreter sentinel and
// that the error message names every command that was tried, which is
// what the user-facing remediation hint is built from.
func TestResolve_NoneAvailable(t *testing.T) {
	p := &Prober{LookPath: fakeLookPath(nil, nil)}

	_, _, err := p.Resolve(candidates())
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNoInterpreter))
	assert.Contains(t, err.Error(), "pythonw, python, python3")
}

// TestResolve_Deterministic verifies that two identical probes select the
// same candidate — priority order is total, so there is no tie-breaking
// ambiguity between equally-available candidates.
func TestResolve_Deterministic(t *testing.T) {
	p := &Prober{LookPath: fakeLookPath([]string{"python", "python3"}, nil)}

	first, _, err := p.Resolve(candidates())
	require.NoError(t, err)
	second, _, err := p.Resolve(candidates())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "python", first.Name)
}

// TestProbeAll verifies that every candidate is reported (found or not)
// and that exactly the one Resolve would pick is marked Selected.
func TestProbeAll(t *testing.T) {
	p := &Prober{LookPath: fakeLookPath([]string{"python", "python3"}, nil)}

	results := p.ProbeAll(candidates())
	require.Len(t, results, 3)

	assert.Equal(t, "pythonw", results[0].Candidate.Name)
	assert.False(t, results[0].Found)
	assert.False(t, results[0].Selected)
	assert.Empty(t, results[0].Path)

	assert.Equal(t, "python", results[1].Candidate.Name)
	assert.True(t, results[1].Found)
	assert.True(t, results[1].Selected, "first found candidate must be the selected one")
	assert.Equal(t, "/usr/bin/python", results[1].Path)

	// python3 is found but not selected — python outranks it.
	assert.True(t, results[2].Found)
	assert.False(t, results[2].Selected)
}

// TestProbeAll_NoneFound verifies that an all-miss probe still returns a
// result per candidate, with nothing selected.
func TestProbeAll_NoneFound(t *testing.T) {
	p := &Prober{LookPath: fakeLookPath(nil, nil)}

	results := p.ProbeAll(candidates())
	require.Len(t, results, 3)
	for _, r := range results {
		assert.False(t, r.Found)
		assert.False(t, r.Selected)
	}
}

// TestDefaultCandidates verifies the built-in priority list for the
// platform the tests are running on: the windowless variant leads on
// Windows, python3 leads elsewhere.
func TestDefaultCandidates(t *testing.T) {
	cands := DefaultCandidates()
	require.NotEmpty(t, cands)

	if runtime.GOOS == "windows" {
		assert.Equal(t, "pythonw", cands[0].Name)
		assert.True(t, cands[0].Windowless)
		assert.Equal(t, "python", cands[1].Name)
	} else {
		assert.Equal(t, "python3", cands[0].Name)
		assert.Equal(t, "python", cands[1].Name)
	}
}

// TestNewProber verifies the default prober is wired to a real lookup
// function rather than a nil field.
func TestNewProber(t *testing.T) {
	p := NewProber()
	require.NotNil(t, p.LookPath)
}
