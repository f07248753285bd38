package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPresetTOML = `name = 'Night Shift'
palette = [
  '1a1b26', 'f7768e', '9ece6a', 'e0af68',
  '7aa2f7', 'bb9af7', '7dcfff', 'a9b1d6',
  '414868', 'ff899d', 'b2e682', 'f0c67e',
  '8fb5ff', 'cfaaff', '95e6ff', 'c0caf5',
]
accent = '7aa2f7'

[extras]
SELECTION = 8
`

func writeTestPreset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte(testPresetTOML), 0o644))
	return path
}

func TestExportBuiltinToStdout(t *testing.T) {
	preset := writeTestPreset(t)

	out, err := runCommand(t, "export", preset, "alacritty")
	require.NoError(t, err)
	require.Contains(t, out, "# Night Shift")
	require.Contains(t, out, "[colors.primary]")
	require.Contains(t, out, `background = "#1a1b26"`)
	require.Contains(t, out, `background = "#414868"`) // SELECTION extra
	require.Contains(t, out, `cursor = "#7aa2f7"`)
}

func TestExportToFile(t *testing.T) {
	preset := writeTestPreset(t)
	target := filepath.Join(t.TempDir(), "colors", "kitty.conf")

	_, err := runCommand(t, "export", preset, "kitty", "--out", target)
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(data), "color0 #1a1b26")
}

func TestExportUnknownExporter(t *testing.T) {
	preset := writeTestPreset(t)

	_, err := runCommand(t, "export", preset, "conky")
	require.Error(t, err)
	require.Contains(t, err.Error(), "conky")
}

func TestExportMissingPreset(t *testing.T) {
	_, err := runCommand(t, "export", filepath.Join(t.TempDir(), "nope.toml"), "kitty")
	require.Error(t, err)
}

func TestExportUserManifest(t *testing.T) {
	preset := writeTestPreset(t)

	manifest := `name: rofi
path: ~/.config/rofi/theme.rasi
formatter: |
  * {
      background: #{HEX0};
      foreground: #{HEX15};
      accent: #{ACCHEX};
  }
`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rofi.yaml"), []byte(manifest), 0o644))

	out, err := runCommand(t, "export", preset, "rofi", "--templates", dir)
	require.NoError(t, err)
	require.Contains(t, out, "background: #1a1b26;")
	require.Contains(t, out, "accent: #7aa2f7;")
}

func TestExportWriteAndOutConflict(t *testing.T) {
	preset := writeTestPreset(t)

	_, err := runCommand(t, "export", preset, "kitty", "--write", "--out", "x.conf")
	require.Error(t, err)
}

func TestExportersListsBuiltins(t *testing.T) {
	out, err := runCommand(t, "exporters")
	require.NoError(t, err)
	require.Contains(t, out, "alacritty")
	require.Contains(t, out, "kitty")
	require.Contains(t, out, "xresources")
	require.Contains(t, out, "foot")
	require.Contains(t, out, "~/.config/alacritty/colors.toml")
}
