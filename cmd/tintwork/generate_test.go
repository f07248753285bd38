package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tintwork/tintwork/internal/export"
	"github.com/tintwork/tintwork/internal/logger"
	"github.com/tintwork/tintwork/internal/theme"
)

// runCommand executes the root command against a fresh registry and a
// discarded logger, capturing stdout and stderr.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	setAppState(log, export.DefaultRegistry())

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return buf.String(), err
}

func TestGenerateWritesPresetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "night.toml")

	_, err := runCommand(t, "generate",
		"--name", "Night",
		"--base", "268bd2",
		"--n", "8",
		"--accent", "4",
		"--extra", "CONSTANT=2",
		"--out", path,
	)
	require.NoError(t, err)

	th, err := theme.LoadPreset(path)
	require.NoError(t, err)
	require.Equal(t, "Night", th.Name())
	require.Equal(t, 8, th.Len())

	accent, ok := th.Color(4)
	require.True(t, ok)
	require.Equal(t, accent.Hex(), th.Accent().Hex())

	idx, ok := th.ExtraIndex("CONSTANT")
	require.True(t, ok)
	require.Equal(t, 2, idx)
}

func TestGenerateANSI16JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "term.json")

	_, err := runCommand(t, "generate", "--ansi16", "--format", "json", "--out", path)
	require.NoError(t, err)

	th, err := theme.LoadPreset(path)
	require.NoError(t, err)
	require.Equal(t, 16, th.Len())

	bg, _ := th.Color(0)
	fg, _ := th.Color(15)
	require.Equal(t, "000000", bg.Hex())
	require.Equal(t, "ffffff", fg.Hex())

	// Without --accent the 16-slot layout accents on bright yellow.
	yellow, _ := th.Color(11)
	require.Equal(t, yellow.Hex(), th.Accent().Hex())
	require.NotEqual(t, fg.Hex(), th.Accent().Hex())
}

func TestGenerateStdout(t *testing.T) {
	out, err := runCommand(t, "generate", "--name", "Dawn", "--n", "4")
	require.NoError(t, err)
	require.Contains(t, out, "Dawn")
	require.Contains(t, out, "palette")
}

func TestGenerateRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown space", args: []string{"generate", "--space", "cmyk"}},
		{name: "bad base hex", args: []string{"generate", "--base", "zzz"}},
		{name: "non-positive size", args: []string{"generate", "--n", "0"}},
		{name: "bad lightness range", args: []string{"generate", "--lightness", "dim"}},
		{name: "bad hue offsets", args: []string{"generate", "--hue-offsets", "0,north"}},
		{name: "accent out of range", args: []string{"generate", "--n", "4", "--accent", "9"}},
		{name: "malformed extra", args: []string{"generate", "--extra", "CONSTANT"}},
		{name: "duplicate extra", args: []string{"generate", "--extra", "A=0", "--extra", "A=1"}},
		{name: "extra out of range", args: []string{"generate", "--n", "4", "--extra", "A=7"}},
		{name: "bad anchor", args: []string{"generate", "--ansi16", "--bg", "0.1:0.2"}},
		{name: "unknown format", args: []string{"generate", "--format", "ini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCommand(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestGenerateANSI16CustomAnchors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "light.toml")

	// Inverted scheme: light background, dark foreground.
	_, err := runCommand(t, "generate", "--ansi16",
		"--bg", "1:0:0",
		"--fg", "0:0:0",
		"--out", path,
	)
	require.NoError(t, err)

	th, err := theme.LoadPreset(path)
	require.NoError(t, err)

	bg, _ := th.Color(0)
	fg, _ := th.Color(15)
	require.Equal(t, "ffffff", bg.Hex())
	require.Equal(t, "000000", fg.Hex())
}

func TestGenerateRefusesUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "nested", "out.toml")

	_, err := runCommand(t, "generate", "--out", path)
	require.ErrorIs(t, err, os.ErrNotExist)
}
