package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/inetgraph/internal/cli"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(t.Context(), strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(t.Context(), strings.NewReader(""), out, &bytes.Buffer{}, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.ExitUsage, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ExitCodes(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		args     []string
		stdin    string
		wantCode int // 0 means success
		wantOut  string
	}{
		{name: "renders stdin", stdin: "ROOT z\nERA z", args: []string{"--format", "dot"}, wantOut: "root_0 -> erase_1"},
		{name: "malformed node fails", stdin: "FOO x", wantCode: cli.ExitFailure},
		{name: "lenient issues pass", stdin: "DUP a b c", wantOut: "nodes (1)"},
		{name: "strict issues fail", stdin: "DUP a b c", args: []string{"--strict"}, wantCode: cli.ExitCheckFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out, errW := &bytes.Buffer{}, &bytes.Buffer{}

			// --- Act ---
			err := run(t.Context(), strings.NewReader(tc.stdin), out, errW, tc.args)

			// --- Assert ---
			assert.Contains(t, out.String(), tc.wantOut)
			if tc.wantCode == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			code := cli.ExitFailure
			var exitErr *cli.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.Code
			}
			assert.Equal(t, tc.wantCode, code)
		})
	}
}

func TestRun_FilesAndLogsAreSeparated(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	path := filepath.Join(dir, "pair.inet")
	require.NoError(t, os.WriteFile(path, []byte("ROOT z\nERA z"), 0600))
	out, errW := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(t.Context(), strings.NewReader(""), out, errW, []string{"--format", "json", "--log-level", "debug", path})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"kind": "Erase"`)
	assert.NotContains(t, out.String(), "level=DEBUG")
	assert.Contains(t, errW.String(), "level=DEBUG")
}
