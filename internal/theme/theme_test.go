package theme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tintwork/tintwork/internal/colorspace"
	"github.com/tintwork/tintwork/internal/palette"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

func testPalette(t *testing.T, hexes ...string) palette.Palette {
	t.Helper()
	pal := make(palette.Palette, len(hexes))
	for i, h := range hexes {
		c, err := colorspace.ParseHex(h)
		require.NoError(t, err)
		pal[i] = c
	}
	return pal
}

func grayPalette(t *testing.T, n int) palette.Palette {
	t.Helper()
	pal := make(palette.Palette, n)
	for i := range pal {
		v := uint8(i * 255 / (n - 1))
		pal[i] = colorspace.ColorFromSRGB8(v, v, v)
	}
	return pal
}

func TestNewValidatesExtras(t *testing.T) {
	t.Parallel()

	pal := grayPalette(t, 16)
	accent := pal[3]

	cases := []struct {
		name   string
		extras map[string]int
		ok     bool
	}{
		{name: "valid", extras: map[string]int{"CONSTANT": 3, "CURSOR": 15}, ok: true},
		{name: "empty", extras: nil, ok: true},
		{name: "negative index", extras: map[string]int{"CONSTANT": -1}},
		{name: "index at length", extras: map[string]int{"CONSTANT": 16}},
		{name: "index past length", extras: map[string]int{"CONSTANT": 40}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			th, err := New("test", pal, accent, tc.extras)
			if tc.ok {
				require.NoError(t, err)
				require.NotNil(t, th)
				return
			}
			var extrasErr *tinterrors.InvalidExtrasError
			require.ErrorAs(t, err, &extrasErr)
			require.Equal(t, "CONSTANT", extrasErr.Key)
			require.Equal(t, 16, extrasErr.Length)
		})
	}
}

func TestFromPairsDetectsDuplicates(t *testing.T) {
	t.Parallel()

	pal := grayPalette(t, 4)
	_, err := FromPairs("test", pal, pal[0], []Extra{
		{Name: "CONSTANT", Index: 1},
		{Name: "CURSOR", Index: 2},
		{Name: "CONSTANT", Index: 3},
	})

	var dupErr *tinterrors.DuplicateKeyError
	require.ErrorAs(t, err, &dupErr)
	require.Equal(t, "CONSTANT", dupErr.Key)
}

func TestExtrasKeysAreCaseSensitive(t *testing.T) {
	t.Parallel()

	pal := grayPalette(t, 4)
	th, err := FromPairs("test", pal, pal[0], []Extra{
		{Name: "Constant", Index: 1},
		{Name: "CONSTANT", Index: 2},
	})
	require.NoError(t, err)

	idx, ok := th.ExtraIndex("CONSTANT")
	require.True(t, ok)
	require.Equal(t, 2, idx)

	_, ok = th.ExtraIndex("constant")
	require.False(t, ok)
}

func TestThemeImmutability(t *testing.T) {
	t.Parallel()

	pal := testPalette(t, "000000", "112233", "ffffff")
	th, err := New("test", pal, pal[1], map[string]int{"CONSTANT": 1})
	require.NoError(t, err)

	// Mutating the source inputs or accessor copies never changes the theme.
	pal[0] = pal[2]
	got := th.Palette()
	require.Equal(t, "000000", got[0].Hex())

	got[0] = got[2]
	again := th.Palette()
	require.Equal(t, "000000", again[0].Hex())

	extras := th.Extras()
	extras["CONSTANT"] = 99
	idx, ok := th.ExtraIndex("CONSTANT")
	require.True(t, ok)
	require.Equal(t, 1, idx)
}

func TestParsePresetTOMLRoundTrip(t *testing.T) {
	t.Parallel()

	src := `name = "Gruvbox Test"
palette = ["1d2021", "cc241d", "98971a", "d79921"]
accent = "#D79921"

[extras]
CONSTANT = 3
CURSOR = 1
`

	th, err := ParsePreset([]byte(src), FormatTOML)
	require.NoError(t, err)
	require.Equal(t, "Gruvbox Test", th.Name())
	require.Equal(t, 4, th.Len())
	require.Equal(t, "d79921", th.Accent().Hex())

	idx, ok := th.ExtraIndex("CONSTANT")
	require.True(t, ok)
	require.Equal(t, 3, idx)

	out, err := th.MarshalPreset(FormatTOML)
	require.NoError(t, err)

	back, err := ParsePreset(out, FormatTOML)
	require.NoError(t, err)
	require.Equal(t, th.Name(), back.Name())
	require.Equal(t, th.Palette().Hexes(), back.Palette().Hexes())
	require.Equal(t, th.Accent().Hex(), back.Accent().Hex())
	require.Equal(t, th.Extras(), back.Extras())

	// Re-marshaling the reparsed theme is byte-stable.
	out2, err := back.MarshalPreset(FormatTOML)
	require.NoError(t, err)
	require.Equal(t, string(out), string(out2))
}

func TestParsePresetJSONRoundTrip(t *testing.T) {
	t.Parallel()

	src := `{
  "name": "Mono",
  "palette": ["000000", "555555", "aaaaaa", "ffffff"],
  "accent": "aaaaaa",
  "extras": {"FOREGROUND": 3}
}`

	th, err := ParsePreset([]byte(src), FormatJSON)
	require.NoError(t, err)

	out, err := th.MarshalPreset(FormatJSON)
	require.NoError(t, err)

	back, err := ParsePreset(out, FormatJSON)
	require.NoError(t, err)
	require.Equal(t, th.Palette().Hexes(), back.Palette().Hexes())
	require.Equal(t, th.Extras(), back.Extras())
}

func TestParsePresetRejectsBadDocuments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{name: "malformed toml", src: `name = [`},
		{name: "missing name", src: "palette = [\"000000\"]\naccent = \"000000\"\n"},
		{name: "missing palette", src: "name = \"x\"\naccent = \"000000\"\n"},
		{name: "bad hex", src: "name = \"x\"\npalette = [\"zzz\"]\naccent = \"000000\"\n"},
		{name: "missing accent", src: "name = \"x\"\npalette = [\"000000\"]\n"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParsePreset([]byte(tc.src), FormatTOML)
			var invalidErr *tinterrors.InvalidParameterError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestParsePresetRejectsOutOfRangeExtras(t *testing.T) {
	t.Parallel()

	src := `name = "x"
palette = ["000000", "ffffff"]
accent = "ffffff"

[extras]
CONSTANT = 7
`

	_, err := ParsePreset([]byte(src), FormatTOML)
	var extrasErr *tinterrors.InvalidExtrasError
	require.ErrorAs(t, err, &extrasErr)
	require.Equal(t, 7, extrasErr.Index)
	require.Equal(t, 2, extrasErr.Length)
}

func TestLoadPresetUnknownExtension(t *testing.T) {
	t.Parallel()

	_, err := LoadPreset("theme.yaml")
	var invalidErr *tinterrors.InvalidParameterError
	require.ErrorAs(t, err, &invalidErr)
}
