package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tintwork/tintwork/internal/theme"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

const rofiManifest = `name: rofi
path: ~/.config/rofi/colors.rasi
extras:
  SELECTION: 3
formatter: |
  /* {NAME} */
  * {
      background: #{HEX0};
      foreground: #{HEX15};
      selected: #{SELECTIONHEX};
      accent: #{ACCHEX};
  }
`

func TestParseManifest(t *testing.T) {
	t.Parallel()

	tpl, err := ParseManifest([]byte(rofiManifest))
	require.NoError(t, err)
	require.Equal(t, "rofi", tpl.Name())
	require.Equal(t, "~/.config/rofi/colors.rasi", tpl.PathHint())
	require.Equal(t, []string{"SELECTION"}, tpl.Extras())

	th := themeWithSelection(t)
	out, err := tpl.Render(th)
	require.NoError(t, err)
	require.Contains(t, out, "background: #000000;")
	require.Contains(t, out, "selected: #112233;")
	require.Contains(t, out, "/* Test */")
	// The rasi block braces survive as literals.
	require.Contains(t, out, "* {")
}

func TestParseManifestErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{name: "malformed yaml", src: "name: [unclosed"},
		{name: "missing name", src: "formatter: \"{NAME}\"\n"},
		{name: "missing formatter", src: "name: rofi\n"},
		{name: "extras not a mapping", src: "name: rofi\nextras: [a, b]\nformatter: x\n"},
		{name: "unterminated placeholder", src: "name: rofi\nformatter: \"{HEX0\"\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseManifest([]byte(tc.src))
			var parseErr *tinterrors.TemplateParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestParseManifestDuplicateExtras(t *testing.T) {
	t.Parallel()

	src := `name: rofi
extras:
  SELECTION: 3
  SELECTION: 4
formatter: "{NAME}"
`

	_, err := ParseManifest([]byte(src))
	var dupErr *tinterrors.DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	require.Equal(t, "SELECTION", dupErr.Key)
}

func TestLoadManifestDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rofi.yaml"), []byte(rofiManifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0o644))

	r := NewRegistry()
	require.NoError(t, LoadManifestDir(r, dir))
	require.Equal(t, []string{"rofi"}, r.Names())
}

func themeWithSelection(t *testing.T) *theme.Theme {
	t.Helper()

	base := testTheme(t)
	th, err := theme.New(base.Name(), base.Palette(), base.Accent(), map[string]int{"SELECTION": 3})
	require.NoError(t, err)
	return th
}
