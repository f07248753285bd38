package colorspace

import "math"

// HSV over gamma-encoded sRGB. Coordinates are (hue degrees, saturation,
// value); the cylindrical adapters treat V as lightness and S as chroma.

func hsvFromLinear(r, g, b float64) [3]float64 {
	r, g, b = linearToSrgb(r), linearToSrgb(g), linearToSrgb(b)

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if max > 0 {
		s = delta / max
	}
	return [3]float64{h, s, max}
}

func hsvToLinear(c [3]float64) (r, g, b float64) {
	h := normHue(c[0]) / 60
	s, v := c[1], c[2]

	chroma := v * s
	x := chroma * (1 - math.Abs(math.Mod(h, 2)-1))
	m := v - chroma

	var rr, gg, bb float64
	switch int(h) {
	case 0:
		rr, gg, bb = chroma, x, 0
	case 1:
		rr, gg, bb = x, chroma, 0
	case 2:
		rr, gg, bb = 0, chroma, x
	case 3:
		rr, gg, bb = 0, x, chroma
	case 4:
		rr, gg, bb = x, 0, chroma
	default:
		rr, gg, bb = chroma, 0, x
	}
	return srgbToLinear(rr + m), srgbToLinear(gg + m), srgbToLinear(bb + m)
}
