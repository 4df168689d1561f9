package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	// --- Act ---
	cfg, shouldExit, err := Parse(t.Context(), nil, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, []string{"-"}, cfg.Paths)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 256, cfg.CacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Strict)
}

func TestParse_Flags(t *testing.T) {
	t.Parallel()

	cfg, _, err := Parse(t.Context(), []string{
		"--format", "DOT", "--show-labels", "--strict", "--log-level", "debug", "a.inet", "dir",
	}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "dot", cfg.Format)
	assert.True(t, cfg.ShowLabels)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"a.inet", "dir"}, cfg.Paths)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(t.Context(), []string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "*.inet")
	assert.Contains(t, out.String(), "-show-labels")
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--nope"}, wantMsg: "flag provided but not defined: -nope"},
		{name: "bad format", args: []string{"--format", "svg"}, wantMsg: `invalid format "svg"`},
		{name: "bad log level", args: []string{"--log-level", "loud"}, wantMsg: `invalid log-level "loud"`},
		{name: "paths with serve", args: []string{"--serve", "a.inet"}, wantMsg: "cannot be combined with serve mode"},
		{name: "missing settings file", args: []string{"--config", "/does/not/exist.hcl"}, wantMsg: "failed to read settings file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			_, _, err := Parse(t.Context(), tc.args, &bytes.Buffer{})

			// --- Assert ---
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected an ExitError, got %v", err)
			assert.Equal(t, ExitUsage, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_SettingsFile(t *testing.T) {
	t.Parallel()

	settings := writeSettings(t, `
log_level = "warn"

render {
  format      = "yaml"
  show_labels = true
  strict      = true
}

serve {
  port       = 9000
  cache_size = 8
}
`)

	testCases := []struct {
		name  string
		args  []string
		check func(t *testing.T, format string, port int, labels bool)
	}{
		{
			name: "file values apply",
			args: []string{"--config", settings},
			check: func(t *testing.T, format string, port int, labels bool) {
				assert.Equal(t, "yaml", format)
				assert.Equal(t, 9000, port)
				assert.True(t, labels)
			},
		},
		{
			name: "flags override the file",
			args: []string{"--config", settings, "--format", "json", "--port", "7000", "--show-labels=false"},
			check: func(t *testing.T, format string, port int, labels bool) {
				assert.Equal(t, "json", format)
				assert.Equal(t, 7000, port)
				assert.False(t, labels)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, _, err := Parse(t.Context(), tc.args, &bytes.Buffer{})

			require.NoError(t, err)
			assert.Equal(t, "warn", cfg.LogLevel)
			assert.Equal(t, 8, cfg.CacheSize)
			assert.True(t, cfg.Strict)
			tc.check(t, cfg.Format, cfg.Port, cfg.ShowLabels)
		})
	}
}

func TestParse_InvalidSettingsValue(t *testing.T) {
	t.Parallel()

	settings := writeSettings(t, "render {\n  format = \"png\"\n}\n")

	_, _, err := Parse(t.Context(), []string{"--config", settings}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, `invalid format "png"`)
}
