package colorspace

import "math"

// Oklab (Ottosson 2020): linear sRGB through an LMS cone response with a
// cube-root nonlinearity.

func oklabFromLinear(r, g, b float64) [3]float64 {
	l := 0.4122214708*r + 0.5363325363*g + 0.0514459929*b
	m := 0.2119034982*r + 0.6806995451*g + 0.1073969566*b
	s := 0.0883024619*r + 0.2817188376*g + 0.6299787005*b

	lc := math.Cbrt(l)
	mc := math.Cbrt(m)
	sc := math.Cbrt(s)

	return [3]float64{
		0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc,
		1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc,
		0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc,
	}
}

func oklabToLinear(c [3]float64) (r, g, b float64) {
	lc := c[0] + 0.3963377774*c[1] + 0.2158037573*c[2]
	mc := c[0] - 0.1055613458*c[1] - 0.0638541728*c[2]
	sc := c[0] - 0.0894841775*c[1] - 1.2914855480*c[2]

	l := lc * lc * lc
	m := mc * mc * mc
	s := sc * sc * sc

	r = 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return r, g, b
}
