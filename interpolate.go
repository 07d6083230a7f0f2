package munsell

import (
	"math"
	"sort"

	"github.com/brandquad/munsell/assets"
	"github.com/brandquad/munsell/colorutils"
)

// estimate is an interpolated tristimulus coordinate in xyY form, with
// luminance Y on a 0..100 scale. extrapolated is set when the requested
// chroma exceeded the table extent and the result was continued linearly
// from the two highest tabulated samples.
type estimate struct {
	x, y, luminance float64
	extrapolated    bool
}

// interpolate resolves a color against the renotation table. Neutral colors
// use the achromatic series directly. Chromatic colors resolve chroma within
// each bracketing value row, blend the rows, then blend the two bracketing
// hue planes. The result is exact at tabulated sample points.
func interpolate(c Color) (estimate, error) {
	if err := c.validate(); err != nil {
		return estimate{}, err
	}
	if c.Chroma == 0 {
		return neutralEstimate(c.Value), nil
	}

	anchors := bracketHue(c.Hue.position())
	lo := planeEstimate(anchors.lo, c.Value, c.Chroma)
	if anchors.lo == anchors.hi {
		return lo, nil
	}
	hi := planeEstimate(anchors.hi, c.Value, c.Chroma)
	return lerpEstimate(lo, hi, anchors.t), nil
}

// neutralEstimate interpolates the achromatic series by value alone. The
// caller has already bounds-checked the value against the series extent.
func neutralEstimate(value float64) estimate {
	series := assets.Neutral
	i := sort.Search(len(series), func(i int) bool {
		return series[i].Value >= value
	})
	if i == len(series) {
		i--
	}
	at := series[i]
	if at.Value == value || i == 0 {
		return estimate{x: at.X, y: at.Y, luminance: at.Luminance}
	}
	below := series[i-1]
	t := (value - below.Value) / (at.Value - below.Value)
	return estimate{
		x:         lerp(below.X, at.X, t),
		y:         lerp(below.Y, at.Y, t),
		luminance: lerp(below.Luminance, at.Luminance, t),
	}
}

// planeEstimate resolves value and chroma within the plane of one tabulated
// hue. Value rows are sampled at integer steps.
func planeEstimate(pos, value, chroma float64) estimate {
	v0 := math.Floor(value)
	e0 := rowEstimate(pos, int(v0), chroma)
	v1 := math.Ceil(value)
	if v0 == v1 {
		return e0
	}
	e1 := rowEstimate(pos, int(v1), chroma)
	return lerpEstimate(e0, e1, value-v0)
}

// rowEstimate resolves chroma within one hue/value row, reading the chroma
// samples actually tabulated there. Sampling is non-uniform and sparse:
// chroma below the first sample interpolates against a synthetic
// zero-chroma point at the illuminant white, chroma above the last sample
// extrapolates linearly and flags the result.
func rowEstimate(pos float64, value int, chroma float64) estimate {
	samples := assets.Row(anchorNotation(pos), value)
	if len(samples) == 0 {
		return neutralEstimate(float64(value))
	}

	gray := assets.Sample{
		X:         colorutils.WhiteX,
		Y:         colorutils.WhiteY,
		Luminance: samples[0].Luminance,
	}

	i := sort.Search(len(samples), func(i int) bool {
		return samples[i].Chroma >= chroma
	})
	switch {
	case i < len(samples) && samples[i].Chroma == chroma:
		s := samples[i]
		return estimate{x: s.X, y: s.Y, luminance: s.Luminance}
	case i == len(samples):
		// Beyond the table extent: continue the line through the two
		// highest samples.
		upper := samples[len(samples)-1]
		lower := gray
		if len(samples) > 1 {
			lower = samples[len(samples)-2]
		}
		e := lerpSamples(lower, upper, chroma)
		e.extrapolated = true
		return e
	case i == 0:
		return lerpSamples(gray, samples[0], chroma)
	default:
		return lerpSamples(samples[i-1], samples[i], chroma)
	}
}

// lerpSamples interpolates (or, for chroma outside [a.Chroma, b.Chroma],
// extrapolates) between two chroma samples of one row.
func lerpSamples(a, b assets.Sample, chroma float64) estimate {
	t := (chroma - a.Chroma) / (b.Chroma - a.Chroma)
	return estimate{
		x:         lerp(a.X, b.X, t),
		y:         lerp(a.Y, b.Y, t),
		luminance: lerp(a.Luminance, b.Luminance, t),
	}
}

func lerpEstimate(a, b estimate, t float64) estimate {
	return estimate{
		x:            lerp(a.x, b.x, t),
		y:            lerp(a.y, b.y, t),
		luminance:    lerp(a.luminance, b.luminance, t),
		extrapolated: a.extrapolated || b.extrapolated,
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func maxRowChroma(pos float64, value int) float64 {
	return assets.MaxChroma(anchorNotation(pos), value)
}
