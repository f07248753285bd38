package colorspace

import "math"

// JzAzBz (Safdar et al. 2017): XYZ through sharpened LMS and the SMPTE PQ
// transfer. XYZ is taken relative (white Y = 1), which scales Jz uniformly
// and cancels out of every lightness ratio this package computes.

const (
	jzB  = 1.15
	jzG  = 0.66
	jzD  = -0.56
	jzD0 = 1.6295499532821566e-11

	pqC1 = 3424.0 / 4096.0
	pqC2 = 2413.0 / 128.0
	pqC3 = 2392.0 / 128.0
	pqN  = 2610.0 / 16384.0
	pqP  = 1.7 * 2523.0 / 32.0
)

func pqForward(v float64) float64 {
	if v < 0 {
		v = 0
	}
	vn := math.Pow(v/10000, pqN)
	return math.Pow((pqC1+pqC2*vn)/(1+pqC3*vn), pqP)
}

func pqInverse(e float64) float64 {
	if e < 0 {
		e = 0
	}
	t := math.Pow(e, 1/pqP)
	num := pqC1 - t
	den := pqC3*t - pqC2
	ratio := num / den
	if ratio < 0 {
		ratio = 0
	}
	return 10000 * math.Pow(ratio, 1/pqN)
}

func jzazbzFromLinear(r, g, b float64) [3]float64 {
	x, y, z := linearToXYZ(r, g, b)
	// Absolute-luminance convention: scale relative XYZ to a 100 cd/m²
	// reference so the PQ curve operates in its intended range.
	x, y, z = x*100, y*100, z*100

	xp := jzB*x - (jzB-1)*z
	yp := jzG*y - (jzG-1)*x

	l := pqForward(0.41478972*xp + 0.579999*yp + 0.0146480*z)
	m := pqForward(-0.2015100*xp + 1.120649*yp + 0.0531008*z)
	s := pqForward(-0.0166008*xp + 0.264800*yp + 0.6684799*z)

	iz := 0.5 * (l + m)
	return [3]float64{
		((1+jzD)*iz)/(1+jzD*iz) - jzD0,
		3.524000*l - 4.066708*m + 0.542708*s,
		0.199076*l + 1.096799*m - 1.295875*s,
	}
}

func jzazbzToLinear(c [3]float64) (r, g, b float64) {
	jz := c[0] + jzD0
	iz := jz / (1 + jzD - jzD*jz)

	l := pqInverse(iz + 0.1386050432715393*c[1] + 0.0580473161561189*c[2])
	m := pqInverse(iz - 0.1386050432715393*c[1] - 0.0580473161561189*c[2])
	s := pqInverse(iz - 0.0960192420263190*c[1] - 0.8118918960560390*c[2])

	xp := 1.9242264357876067*l - 1.0047923125953657*m + 0.0376514040306180*s
	yp := 0.3503167620949991*l + 0.7264811939316552*m - 0.0653844229480850*s
	zp := -0.0909828109828476*l - 0.3127282905230739*m + 1.5227665613052603*s

	x := (xp + (jzB-1)*zp) / jzB
	y := (yp + (jzG-1)*x) / jzG

	return xyzToLinear(x/100, y/100, zp/100)
}
