package colorutils

import "math"

// Illuminant C white point chromaticity. The renotation table was measured
// under illuminant C with the 2-degree observer, so achromatic entries sit
// at this point.
const (
	WhiteX = 0.31006
	WhiteY = 0.31616
)

// Xyy2linear converts a xyY color value (Y on a 0..100 scale) to linear sRGB
// components. Components may fall outside [0,1] for out-of-gamut colors.
func Xyy2linear(x, y, bigY float64) (float64, float64, float64) {
	if math.Abs(y) < 1e-10 {
		return 0, 0, 0
	}
	bigY /= 100
	bigX := bigY * x / y
	bigZ := bigY * (1 - x - y) / y

	var r, g, b float64
	r = bigX*3.2406 + bigY*-1.5372 + bigZ*-0.4986
	g = bigX*-0.9689 + bigY*1.8758 + bigZ*0.0415
	b = bigX*0.0557 + bigY*-0.2040 + bigZ*1.0570
	return r, g, b
}

// Delinearize applies the sRGB gamma encoding curve to a linear component.
func Delinearize(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// Linearize is the inverse of Delinearize.
func Linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
