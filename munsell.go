// Package munsell converts colors from the Munsell system (hue, value,
// chroma) to sRGB. Conversions interpolate over an embedded renotation-style
// table measured under illuminant C; colors outside the table extent or the
// sRGB gamut degrade to the nearest representable color and are flagged
// instead of failing.
package munsell

import (
	"errors"
	"fmt"
	"strconv"
)

// Family is one of the ten canonical Munsell hue families.
type Family string

const (
	R  Family = "R"
	YR Family = "YR"
	Y  Family = "Y"
	GY Family = "GY"
	G  Family = "G"
	BG Family = "BG"
	B  Family = "B"
	PB Family = "PB"
	P  Family = "P"
	RP Family = "RP"
)

// families in ring order. R starts the circle, RP wraps back to R.
var families = []Family{R, YR, Y, GY, G, BG, B, PB, P, RP}

var (
	ErrInvalidHue = errors.New("munsell: invalid hue")
	ErrValueRange = errors.New("munsell: value out of range")
)

// Hue is a position within a family, e.g. {5, R} for "5R".
// Number must be in (0, 10]; 10R and numbers just above 0 in YR are adjacent.
type Hue struct {
	Number float64
	Family Family
}

func (h Hue) String() string {
	return formatNumber(h.Number) + string(h.Family)
}

// Color is a color in Munsell notation. Value runs from 0 (black) to 10
// (white). Chroma 0 means neutral gray; the hue is ignored in that case.
type Color struct {
	Hue    Hue
	Value  float64
	Chroma float64
}

// String renders the standard notation, e.g. "5R 4/14" or "N 9.5".
func (c Color) String() string {
	if c.Chroma == 0 {
		return "N " + formatNumber(c.Value)
	}
	return fmt.Sprintf("%s %s/%s", c.Hue, formatNumber(c.Value), formatNumber(c.Chroma))
}

// ToRGB converts the color to gamma-encoded sRGB. Structurally invalid
// input (unknown family, hue number or value out of range) fails; chroma
// beyond the table extent and out-of-gamut results never fail, they are
// flagged on the returned RGB instead. The conversion is a pure function of
// the embedded table: repeated calls return identical results and may run
// concurrently.
func (c Color) ToRGB() (RGB, error) {
	est, err := interpolate(c)
	if err != nil {
		return RGB{}, err
	}
	return encodeRGB(est), nil
}

// IsReal reports whether the color is displayable as-is: inside the table
// extent and inside the sRGB gamut.
func (c Color) IsReal() bool {
	rgb, err := c.ToRGB()
	return err == nil && !rgb.Clamped && !rgb.Extrapolated
}

// MaxChroma returns the highest chroma tabulated at the hue anchor and value
// row nearest to the arguments, or 0 when nothing chromatic is tabulated
// there.
func MaxChroma(h Hue, value float64) float64 {
	if !h.valid() || value < 0 || value > 10 {
		return 0
	}
	pos := nearestAnchor(h.position())
	row := int(value + 0.5)
	return maxRowChroma(pos, row)
}

func (c Color) validate() error {
	if c.Value < 0 || c.Value > 10 {
		return fmt.Errorf("%w: %v not in [0, 10]", ErrValueRange, c.Value)
	}
	if c.Chroma < 0 {
		return fmt.Errorf("%w: chroma %v is negative", ErrValueRange, c.Chroma)
	}
	if c.Chroma == 0 {
		return nil // neutral, hue is ignored
	}
	if !c.Hue.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidHue, c.Hue)
	}
	return nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
