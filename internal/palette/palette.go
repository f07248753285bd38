// Package palette generates fixed-length, perceptually spaced color
// palettes from a base color and a small parameter set. Equal numeric steps
// in the chosen uniform space give roughly equal perceived steps between
// adjacent slots, which raw RGB interpolation does not.
package palette

import (
	"fmt"

	"github.com/tintwork/tintwork/internal/colorspace"
	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// Palette is an ordered, fixed-length sequence of colors. Index 0 is
// conventionally the background and the highest index the foreground;
// consumers address colors strictly by position.
type Palette []colorspace.Color

// Hexes returns the palette as lowercase 6-digit hex strings.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// HuePolicy decides the hue offset applied to each slot. A nil Offsets
// spreads slots in equal angular steps around the hue circle; otherwise
// Offsets supplies an explicit per-slot offset in degrees.
type HuePolicy struct {
	Offsets []float64
}

func (h HuePolicy) offset(i, n int) float64 {
	if h.Offsets == nil {
		return 360 * float64(i) / float64(n)
	}
	return h.Offsets[i]
}

// ChromaPolicy decides per-slot chroma from the slot's normalized
// lightness. Base is a normalized chroma in [0,1] relative to the space's
// nominal full chroma. With Taper set, chroma is scaled by 4·l·(1−l) so
// slots near black or white fall toward gray instead of demanding
// unrenderable combinations.
type ChromaPolicy struct {
	Base  float64
	Taper bool
}

func (c ChromaPolicy) chroma(lightness float64) float64 {
	ch := c.Base
	if c.Taper {
		ch *= 4 * lightness * (1 - lightness)
	}
	if ch < 0 {
		return 0
	}
	return ch
}

// Params carries the inputs to Generate. Lightness holds N normalized
// targets in [0,1] mapped onto the space's representable lightness range.
type Params struct {
	Space     colorspace.Space
	N         int
	Base      colorspace.Color
	Lightness []float64
	Hue       HuePolicy
	Chroma    ChromaPolicy
}

// Generate produces a palette of exactly N colors. Slot i takes the i-th
// target lightness, the chroma policy's output for it, and the base color's
// hue plus the slot's hue offset, all in the chosen space. Slots are never
// reordered after computation and identical inputs yield identical output.
func Generate(p Params) (Palette, error) {
	if p.N <= 0 {
		return nil, tinterrors.NewInvalidParameterError("n", fmt.Sprintf("palette size must be positive, got %d", p.N), nil)
	}
	if len(p.Lightness) != p.N {
		return nil, tinterrors.NewInvalidParameterError("lightness", fmt.Sprintf("need %d lightness targets, got %d", p.N, len(p.Lightness)), nil)
	}
	if p.Hue.Offsets != nil && len(p.Hue.Offsets) != p.N {
		return nil, tinterrors.NewInvalidParameterError("hue", fmt.Sprintf("need %d hue offsets, got %d", p.N, len(p.Hue.Offsets)), nil)
	}

	_, lmax := colorspace.LightnessRange(p.Space)
	scale := colorspace.ChromaScale(p.Space)
	_, _, baseHue := colorspace.LCh(p.Space, p.Base.Coords(p.Space))

	out := make(Palette, p.N)
	for i := range out {
		l := p.Lightness[i] * lmax
		chroma := p.Chroma.chroma(p.Lightness[i]) * scale
		hue := baseHue + p.Hue.offset(i, p.N)
		out[i] = colorspace.NewColor(p.Space, colorspace.FromLCh(p.Space, l, chroma, hue))
	}
	return out, nil
}

// LinearLightness builds n normalized lightness targets stepping evenly
// from min to max inclusive.
func LinearLightness(n int, min, max float64) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = min
		return out
	}
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + step*float64(i)
	}
	return out
}
