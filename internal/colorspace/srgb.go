package colorspace

import "math"

// srgbToLinear removes the sRGB transfer function from a [0,1] channel.
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSrgb applies the sRGB transfer function. Negative inputs map
// through zero so that clamping happens once, at quantization.
func linearToSrgb(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// quantize gamma-encodes a linear channel and rounds it to 8 bits, clamping
// residual float noise into [0,255].
func quantize(linear float64) uint8 {
	c := linearToSrgb(linear)
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(math.Round(c * 255))
}
