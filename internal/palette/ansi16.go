package palette

import (
	"github.com/tintwork/tintwork/internal/colorspace"
)

// Anchor is a normalized cylindrical color: lightness and chroma in [0,1]
// relative to the space's representable range, hue in degrees.
type Anchor struct {
	Lightness float64
	Chroma    float64
	Hue       float64
}

// Scheme holds the four anchors an ANSI-16 layout is computed from: the
// background and foreground endpoints and the two six-color spectra.
type Scheme struct {
	Space          colorspace.Space
	Background     Anchor
	Foreground     Anchor
	Spectrum       Anchor
	SpectrumBright Anchor
}

// DefaultScheme is a plain dark scheme: black background, white foreground,
// a muted normal spectrum and a brighter high-chroma one.
func DefaultScheme(space colorspace.Space) Scheme {
	return Scheme{
		Space:          space,
		Background:     Anchor{Lightness: 0, Chroma: 0, Hue: 0},
		Foreground:     Anchor{Lightness: 1, Chroma: 0, Hue: 0},
		Spectrum:       Anchor{Lightness: 0.35, Chroma: 0.35, Hue: 0},
		SpectrumBright: Anchor{Lightness: 0.65, Chroma: 0.65, Hue: 0},
	}
}

// ansiHueOrder maps spectrum rotation steps (60° apart, walking the hue
// circle red→yellow→green→cyan→blue→magenta) onto ANSI slot order
// (red, green, yellow, blue, magenta, cyan).
var ansiHueOrder = [6]float64{0, 120, 60, 240, 300, 180}

// ANSI16 computes the classic 16-slot terminal palette from a scheme:
// background at 0, foreground at 15, slot 8 a third of the way from
// background to foreground, slot 7 a third of the way back, slots 1–6 the
// normal spectrum and 9–14 the bright spectrum at 60° hue steps.
func ANSI16(s Scheme) Palette {
	bg := s.Background
	fg := s.Foreground

	anchors := [16]Anchor{}
	anchors[0] = bg
	anchors[8] = blend(bg, fg, 1.0/3.0)
	anchors[7] = blend(fg, bg, 1.0/3.0)
	anchors[15] = fg
	for i := 0; i < 6; i++ {
		anchors[1+i] = rotate(s.Spectrum, ansiHueOrder[i])
		anchors[9+i] = rotate(s.SpectrumBright, ansiHueOrder[i])
	}

	_, lmax := colorspace.LightnessRange(s.Space)
	scale := colorspace.ChromaScale(s.Space)

	out := make(Palette, 16)
	for i, a := range anchors {
		chroma := a.Chroma
		if chroma < 0 {
			chroma = 0
		}
		out[i] = colorspace.NewColor(s.Space, colorspace.FromLCh(s.Space, a.Lightness*lmax, chroma*scale, a.Hue))
	}
	return out
}

// blend moves anchor a toward anchor b by t, componentwise in cylindrical
// coordinates. Hue takes the shorter arc.
func blend(a, b Anchor, t float64) Anchor {
	dh := b.Hue - a.Hue
	for dh > 180 {
		dh -= 360
	}
	for dh < -180 {
		dh += 360
	}
	return Anchor{
		Lightness: a.Lightness + (b.Lightness-a.Lightness)*t,
		Chroma:    a.Chroma + (b.Chroma-a.Chroma)*t,
		Hue:       a.Hue + dh*t,
	}
}

func rotate(a Anchor, degrees float64) Anchor {
	a.Hue += degrees
	return a
}
