package colorspace

import (
	"fmt"
	"strconv"
	"strings"

	tinterrors "github.com/tintwork/tintwork/pkg/errors"
)

// Color is an opaque perceptual color value. It is stored canonically as
// Oklab coordinates of an in-gamut sRGB color: every constructor routes
// through the gamut clamp, so an externally visible Color always converts
// to valid 8-bit channels and its hex form is stable across round trips.
type Color struct {
	l, a, b float64
}

// NewColor builds a Color from coordinates in any supported space, clamping
// into the sRGB gamut along constant hue if necessary.
func NewColor(space Space, coords [3]float64) Color {
	r, g, b := ToSRGB8(space, coords)
	return ColorFromSRGB8(r, g, b)
}

// ColorFromSRGB8 builds a Color from an 8-bit sRGB triple.
func ColorFromSRGB8(r, g, b uint8) Color {
	c := FromSRGB8(SpaceOklab, r, g, b)
	return Color{l: c[0], a: c[1], b: c[2]}
}

// ParseHex builds a Color from a 6-hex-digit string, with or without a
// leading '#'.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, tinterrors.NewInvalidParameterError("color", fmt.Sprintf("hex color %q must have 6 hex digits", s), nil)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, tinterrors.NewInvalidParameterError("color", fmt.Sprintf("hex color %q is not hexadecimal", s), err)
	}
	return ColorFromSRGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// SRGB8 returns the color's 8-bit sRGB channels.
func (c Color) SRGB8() (r, g, b uint8) {
	return ToSRGB8(SpaceOklab, [3]float64{c.l, c.a, c.b})
}

// Hex returns the color as six lowercase hex digits without a leading '#'.
func (c Color) Hex() string {
	r, g, b := c.SRGB8()
	return fmt.Sprintf("%02x%02x%02x", r, g, b)
}

// Coords returns the color's coordinates in the requested space.
func (c Color) Coords(space Space) [3]float64 {
	if space == SpaceOklab {
		return [3]float64{c.l, c.a, c.b}
	}
	r, g, b := oklabToLinear([3]float64{c.l, c.a, c.b})
	return fromLinear(space, r, g, b)
}
