// Package colorspace converts between device sRGB and a closed set of
// perceptually uniform color spaces, with gamut clamping that preserves hue
// and lightness. All functions are pure and safe for concurrent use.
package colorspace

import (
	"fmt"
	"math"

	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// Space identifies a supported uniform color space.
type Space int

const (
	// SpaceCIELab is CIE L*a*b* with a D65 white point.
	SpaceCIELab Space = iota
	// SpaceOklab is Björn Ottosson's Oklab.
	SpaceOklab
	// SpaceJzAzBz is the Safdar et al. JzAzBz space with its PQ nonlinearity.
	SpaceJzAzBz
	// SpaceHSV is hue/saturation/value, treated as a uniform-ish space.
	SpaceHSV
)

// Spaces returns every supported space, in declaration order.
func Spaces() []Space {
	return []Space{SpaceCIELab, SpaceOklab, SpaceJzAzBz, SpaceHSV}
}

func (s Space) String() string {
	switch s {
	case SpaceCIELab:
		return "cielab"
	case SpaceOklab:
		return "oklab"
	case SpaceJzAzBz:
		return "jzazbz"
	case SpaceHSV:
		return "hsv"
	default:
		return fmt.Sprintf("space(%d)", int(s))
	}
}

// ParseSpace resolves a space by its canonical name.
func ParseSpace(name string) (Space, error) {
	for _, s := range Spaces() {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, tinterrors.NewInvalidParameterError("space", fmt.Sprintf("unknown color space %q", name), nil)
}

// fromLinear converts linear RGB (nominally [0,1] per channel) to space
// coordinates. Total for any finite input.
func fromLinear(s Space, r, g, b float64) [3]float64 {
	switch s {
	case SpaceCIELab:
		return labFromLinear(r, g, b)
	case SpaceOklab:
		return oklabFromLinear(r, g, b)
	case SpaceJzAzBz:
		return jzazbzFromLinear(r, g, b)
	case SpaceHSV:
		return hsvFromLinear(r, g, b)
	default:
		panic(fmt.Sprintf("colorspace: unknown space %d", int(s)))
	}
}

// toLinear applies the space's inverse transform. The result may fall
// outside [0,1] when the coordinates are out of the sRGB gamut.
func toLinear(s Space, c [3]float64) (r, g, b float64) {
	switch s {
	case SpaceCIELab:
		return labToLinear(c)
	case SpaceOklab:
		return oklabToLinear(c)
	case SpaceJzAzBz:
		return jzazbzToLinear(c)
	case SpaceHSV:
		return hsvToLinear(c)
	default:
		panic(fmt.Sprintf("colorspace: unknown space %d", int(s)))
	}
}

const (
	// gamutSlack absorbs float noise so that in-gamut round trips never
	// trigger the chroma search. The published sRGB↔XYZ matrices are quoted
	// to seven digits and are not mutually inverse beyond ~1e-7 in linear
	// light, so the slack must sit above that and below half an 8-bit
	// quantization step (~1.5e-4 linear at the dark end).
	gamutSlack = 1e-6

	// clampIterations bounds the chroma bisection. 24 halvings resolve the
	// scale factor well below one 8-bit quantization step.
	clampIterations = 24
)

func inGamut(r, g, b float64) bool {
	return r >= -gamutSlack && r <= 1+gamutSlack &&
		g >= -gamutSlack && g <= 1+gamutSlack &&
		b >= -gamutSlack && b <= 1+gamutSlack
}

// scaleChroma moves the chroma-like component(s) toward neutral by factor
// k in [0,1], holding lightness and hue fixed.
func scaleChroma(s Space, c [3]float64, k float64) [3]float64 {
	if s == SpaceHSV {
		// coords are (h, s, v); saturation is the chroma-like axis.
		return [3]float64{c[0], c[1] * k, c[2]}
	}
	// Lab-like coords are (L, a, b); scaling (a, b) together keeps the hue
	// angle exactly constant.
	return [3]float64{c[0], c[1] * k, c[2] * k}
}

// ToSRGB8 converts space coordinates to an 8-bit sRGB triple. Out-of-gamut
// coordinates are brought inside by bisecting a single chroma scale factor
// at fixed lightness and hue; only after chroma reduction is exhausted (for
// example a lightness beyond the representable range) are raw channels
// clamped. Deterministic for any finite input.
func ToSRGB8(s Space, coords [3]float64) (r, g, b uint8) {
	lr, lg, lb := toLinear(s, coords)
	if !inGamut(lr, lg, lb) {
		lo, hi := 0.0, 1.0
		if nr, ng, nb := toLinear(s, scaleChroma(s, coords, 0)); inGamut(nr, ng, nb) {
			for i := 0; i < clampIterations; i++ {
				mid := (lo + hi) / 2
				mr, mg, mb := toLinear(s, scaleChroma(s, coords, mid))
				if inGamut(mr, mg, mb) {
					lo = mid
				} else {
					hi = mid
				}
			}
		} else {
			// Even the neutral axis is unrepresentable; drop chroma
			// entirely and let the channel clamp settle lightness.
			lo = 0
		}
		lr, lg, lb = toLinear(s, scaleChroma(s, coords, lo))
	}
	return quantize(lr), quantize(lg), quantize(lb)
}

// FromSRGB8 converts an 8-bit sRGB triple to space coordinates. Total.
func FromSRGB8(s Space, r, g, b uint8) [3]float64 {
	return fromLinear(s, srgbToLinear(float64(r)/255), srgbToLinear(float64(g)/255), srgbToLinear(float64(b)/255))
}

// LCh reports the cylindrical form of coords: lightness, chroma and hue in
// degrees within [0,360). For HSV the triple is (V, S, H).
func LCh(s Space, c [3]float64) (l, chroma, hue float64) {
	if s == SpaceHSV {
		return c[2], c[1], normHue(c[0])
	}
	return c[0], math.Hypot(c[1], c[2]), normHue(math.Atan2(c[2], c[1]) * 180 / math.Pi)
}

// FromLCh builds space coordinates from lightness, chroma and hue degrees.
func FromLCh(s Space, l, chroma, hue float64) [3]float64 {
	hue = normHue(hue)
	if s == SpaceHSV {
		return [3]float64{hue, chroma, l}
	}
	rad := hue * math.Pi / 180
	return [3]float64{l, chroma * math.Cos(rad), chroma * math.Sin(rad)}
}

func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

var (
	whiteLightness = [4]float64{
		FromSRGB8(SpaceCIELab, 255, 255, 255)[0],
		FromSRGB8(SpaceOklab, 255, 255, 255)[0],
		FromSRGB8(SpaceJzAzBz, 255, 255, 255)[0],
		1, // HSV value of white
	}
	redChroma = [4]float64{
		chromaOf(SpaceCIELab),
		chromaOf(SpaceOklab),
		chromaOf(SpaceJzAzBz),
		1, // HSV saturation of a pure primary
	}
)

func chromaOf(s Space) float64 {
	_, c, _ := LCh(s, FromSRGB8(s, 255, 0, 0))
	return c
}

// LightnessRange reports the lightness spanned by device black and white in
// the given space.
func LightnessRange(s Space) (min, max float64) {
	return 0, whiteLightness[int(s)]
}

// ChromaScale reports a nominal full-chroma magnitude for the space (the
// chroma of pure sRGB red), used to translate normalized chroma parameters.
func ChromaScale(s Space) float64 {
	return redChroma[int(s)]
}
