package munsell

import (
	"fmt"
	"math"
)

// The hue circle is 100 units around: 10 families of 10 steps each, in the
// order R, YR, Y, GY, G, BG, B, PB, P, RP, wrapping from 10RP back to R.
// The table carries anchors every 2.5 units (40 tabulated hues).
const (
	hueCircle = 100.0
	hueStep   = 2.5
)

func (h Hue) valid() bool {
	if h.Number <= 0 || h.Number > 10 {
		return false
	}
	return familyIndex(h.Family) >= 0
}

// position maps the hue onto the circle, in (0, 100]. 10RP sits at 100,
// which is the same point as 0 (the seam back to R).
func (h Hue) position() float64 {
	return float64(10*familyIndex(h.Family)) + h.Number
}

func familyIndex(f Family) int {
	for i, name := range families {
		if name == f {
			return i
		}
	}
	return -1
}

// hueAt is the inverse of position: the hue sitting at a point on the
// circle. Positions are normalized into (0, 100] first.
func hueAt(pos float64) Hue {
	pos = math.Mod(pos, hueCircle)
	if pos <= 0 {
		pos += hueCircle
	}
	idx := int(math.Ceil(pos/10)) - 1
	return Hue{Number: pos - float64(10*idx), Family: families[idx]}
}

// hueAnchors are the two tabulated hue positions bracketing a query
// position, with the linear fraction t in [0,1) between them. An exact hit
// on a tabulated hue collapses to a single anchor with t == 0.
type hueAnchors struct {
	lo, hi float64
	t      float64
}

func bracketHue(pos float64) hueAnchors {
	lo := math.Floor(pos/hueStep) * hueStep
	if lo == pos {
		return hueAnchors{lo: pos, hi: pos}
	}
	hi := lo + hueStep
	return hueAnchors{lo: lo, hi: hi, t: (pos - lo) / hueStep}
}

// nearestAnchor rounds a position to the closest tabulated hue.
func nearestAnchor(pos float64) float64 {
	a := math.Round(pos/hueStep) * hueStep
	a = math.Mod(a, hueCircle)
	if a <= 0 {
		a += hueCircle
	}
	return a
}

// anchorNotation renders a tabulated position as the table's hue key,
// e.g. 5 -> "5R", 97.5 -> "7.5RP", 100 (and 0) -> "10RP".
func anchorNotation(pos float64) string {
	h := hueAt(pos)
	return fmt.Sprintf("%g%s", h.Number, h.Family)
}
