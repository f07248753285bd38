package colorspace

import "math"

// CIE L*a*b*, D65 white point, 2° observer.

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0

	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

func linearToXYZ(r, g, b float64) (x, y, z float64) {
	x = 0.4124564*r + 0.3575761*g + 0.1804375*b
	y = 0.2126729*r + 0.7151522*g + 0.0721750*b
	z = 0.0193339*r + 0.1191920*g + 0.9503041*b
	return x, y, z
}

func xyzToLinear(x, y, z float64) (r, g, b float64) {
	r = 3.2404542*x - 1.5371385*y - 0.4985314*z
	g = -0.9692660*x + 1.8760108*y + 0.0415560*z
	b = 0.0556434*x - 0.2040259*y + 1.0572252*z
	return r, g, b
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

func labFInv(t float64) float64 {
	if t3 := t * t * t; t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

func labFromLinear(r, g, b float64) [3]float64 {
	x, y, z := linearToXYZ(r, g, b)
	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)
	return [3]float64{116*fy - 16, 500 * (fx - fy), 200 * (fy - fz)}
}

func labToLinear(c [3]float64) (r, g, b float64) {
	fy := (c[0] + 16) / 116
	fx := fy + c[1]/500
	fz := fy - c[2]/200
	return xyzToLinear(labFInv(fx)*whiteX, labFInv(fy)*whiteY, labFInv(fz)*whiteZ)
}
