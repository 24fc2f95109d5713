package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseLaunchMode verifies that valid mode strings parse (including
// mixed case) and invalid ones are rejected with a descriptive error.
func TestParseLaunchMode(t *testing.T) {
	tests := []struct {
		input   string
		want    LaunchMode
		wantErr bool
	}{
		{"foreground", ModeForeground, false},
		{"background", ModeBackground, false},
		{"Foreground", ModeForeground, false}, // case-insensitive
		{"BACKGROUND", ModeBackground, false},
		{"", "", true},
		{"detached", "", true},
		{"fg", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLaunchMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid launch mode")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestLaunchMode_IsValid verifies the validity check for both defined
// modes and a junk value.
func TestLaunchMode_IsValid(t *testing.T) {
	assert.True(t, ModeForeground.IsValid())
	assert.True(t, ModeBackground.IsValid())
	assert.False(t, LaunchMode("windowed").IsValid())
}

// TestParsePausePolicy verifies pause policy parsing, mirroring the
// launch mode tests.
func TestParsePausePolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    PausePolicy
		wantErr bool
	}{
		{"auto", PauseAuto, false},
		{"always", PauseAlways, false},
		{"never", PauseNever, false},
		{"Auto", PauseAuto, false},
		{"", "", true},
		{"sometimes", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePausePolicy(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestCLIError_ErrorFormat verifies the error message format with and
// without an underlying error.
func TestCLIError_ErrorFormat(t *testing.T) {
	plain := NewCLIError(ExitLaunchError, "something failed")
	assert.Equal(t, "something failed", plain.Error())

	wrapped := WrapCLIError(ExitLaunchError, "launch failed", ErrNoInterpreter)
	assert.Equal(t, "launch failed: no suitable interpreter found", wrapped.Error())
}

// TestCLIError_SentinelMatching verifies that errors.Is sees through
// CLIError wrapping to the sentinel failure kinds. The CLI layer relies
// on this to pick the right diagnostic while still exiting 1 for both.
func TestCLIError_SentinelMatching(t *testing.T) {
	missing := WrapCLIError(ExitLaunchError, "wm_helper.py not found", ErrMissingTarget)
	assert.True(t, errors.Is(missing, ErrMissingTarget))
	assert.False(t, errors.Is(missing, ErrNoInterpreter))

	// A sentinel wrapped twice (fmt.Errorf inside CLIError) must still match.
	inner := fmt.Errorf("%w: tried pythonw, python", ErrNoInterpreter)
	noInterp := WrapCLIError(ExitLaunchError, "probe failed", inner)
	assert.True(t, errors.Is(noInterp, ErrNoInterpreter))
}

// TestCLIError_Unwrap verifies the Unwrap chain used by errors.As.
func TestCLIError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := WrapCLIError(ExitLaunchError, "outer", underlying)

	var cliErr *CLIError
	require.True(t, errors.As(err, &cliErr))
	assert.Equal(t, ExitLaunchError, cliErr.Code)
	assert.Equal(t, underlying, cliErr.Unwrap())
}

// TestCandidate_String verifies the Stringer implementation used in
// diagnostics ("tried pythonw, python").
func TestCandidate_String(t *testing.T) {
	c := Candidate{Name: "pythonw", Windowless: true}
	assert.Equal(t, "pythonw", c.String())
}
