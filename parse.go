package munsell

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	chromaticRe = regexp.MustCompile(`^([0-9]*\.?[0-9]+)([A-Z]+)\s+([0-9]*\.?[0-9]+)\s*/\s*([0-9]*\.?[0-9]+)$`)
	neutralRe   = regexp.MustCompile(`^N\s*([0-9]*\.?[0-9]+)$`)
)

// Parse reads a Munsell notation such as "5R 4/14", "2.5GY 6/8" or "N 9.5"
// and returns a validated Color. The returned color satisfies the same
// invariants ToRGB checks, so parsing is the only validation a caller needs.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if m := neutralRe.FindStringSubmatch(s); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrValueRange, s)
		}
		c := Color{Value: value}
		return c, c.validate()
	}

	m := chromaticRe.FindStringSubmatch(s)
	if m == nil {
		return Color{}, fmt.Errorf("%w: cannot parse notation %q", ErrInvalidHue, s)
	}

	nums := make([]float64, 3)
	for i, field := range []string{m[1], m[3], m[4]} {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: cannot parse notation %q", ErrInvalidHue, s)
		}
		nums[i] = v
	}

	c := Color{
		Hue:    Hue{Number: nums[0], Family: Family(m[2])},
		Value:  nums[1],
		Chroma: nums[2],
	}
	return c, c.validate()
}
