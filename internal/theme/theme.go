// Package theme binds a generated palette to a name, an accent color and a
// set of named extras, and round-trips the result through the preset wire
// format. Themes are immutable after construction, so shared references
// never observe partial updates.
package theme

import (
	"github.com/tintwork/tintwork/internal/colorspace"
	"github.com/tintwork/tintwork/internal/palette"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// Theme is an immutable palette plus metadata. Extras map case-sensitive
// semantic names (for example "CONSTANT") to palette indices; every value
// is validated against the palette length at construction.
type Theme struct {
	name    string
	palette palette.Palette
	accent  colorspace.Color
	extras  map[string]int
}

// Extra is one extras entry from an ordered text source.
type Extra struct {
	Name  string
	Index int
}

// New builds a Theme, copying its inputs. Any extras index outside the
// palette returns an InvalidExtras error.
func New(name string, pal palette.Palette, accent colorspace.Color, extras map[string]int) (*Theme, error) {
	for key, idx := range extras {
		if idx < 0 || idx >= len(pal) {
			return nil, tinterrors.NewInvalidExtrasError(key, idx, len(pal))
		}
	}

	t := &Theme{
		name:    name,
		palette: append(palette.Palette(nil), pal...),
		accent:  accent,
		extras:  make(map[string]int, len(extras)),
	}
	for key, idx := range extras {
		t.extras[key] = idx
	}
	return t, nil
}

// FromPairs builds a Theme from an ordered extras list, as decoded from a
// text document where the same key may legally appear twice. Collisions
// return a DuplicateKey error.
func FromPairs(name string, pal palette.Palette, accent colorspace.Color, pairs []Extra) (*Theme, error) {
	extras := make(map[string]int, len(pairs))
	for _, p := range pairs {
		if _, exists := extras[p.Name]; exists {
			return nil, tinterrors.NewDuplicateKeyError(p.Name)
		}
		extras[p.Name] = p.Index
	}
	return New(name, pal, accent, extras)
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Len returns the palette length.
func (t *Theme) Len() int {
	return len(t.palette)
}

// Color returns the palette color at index i.
func (t *Theme) Color(i int) (colorspace.Color, bool) {
	if i < 0 || i >= len(t.palette) {
		return colorspace.Color{}, false
	}
	return t.palette[i], true
}

// Palette returns a copy of the palette.
func (t *Theme) Palette() palette.Palette {
	return append(palette.Palette(nil), t.palette...)
}

// Accent returns the accent color.
func (t *Theme) Accent() colorspace.Color {
	return t.accent
}

// ExtraIndex resolves an extras name to its palette index.
func (t *Theme) ExtraIndex(name string) (int, bool) {
	idx, ok := t.extras[name]
	return idx, ok
}

// Extras returns a copy of the extras mapping.
func (t *Theme) Extras() map[string]int {
	out := make(map[string]int, len(t.extras))
	for k, v := range t.extras {
		out[k] = v
	}
	return out
}
