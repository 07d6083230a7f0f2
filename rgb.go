package munsell

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/brandquad/munsell/colorutils"
)

// RGB is a gamma-encoded sRGB color with channels in [0, 1]. Clamped is set
// when a channel fell outside the gamut and was clipped; Extrapolated is
// set when the source color sat beyond the table extent. Neither condition
// is an error: the channels always hold the nearest representable color.
type RGB struct {
	R, G, B      float64
	Clamped      bool
	Extrapolated bool
}

// encodeRGB converts an interpolated xyY estimate to gamma-encoded sRGB,
// clamping each channel to the displayable range.
func encodeRGB(e estimate) RGB {
	r, g, b := colorutils.Xyy2linear(e.x, e.y, e.luminance)

	col := colorful.LinearRgb(r, g, b)
	clamped := !col.IsValid()
	if clamped {
		col = col.Clamped()
	}

	return RGB{
		R:            col.R,
		G:            col.G,
		B:            col.B,
		Clamped:      clamped,
		Extrapolated: e.extrapolated,
	}
}

// Colorful returns the color as a colorful.Color value.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// RGB255 returns the channels as 8-bit values.
func (c RGB) RGB255() (uint8, uint8, uint8) {
	return c.Colorful().RGB255()
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}
