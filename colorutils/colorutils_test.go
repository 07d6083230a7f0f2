package colorutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXyy2linear(t *testing.T) {
	// 10GY 8/16 table entry
	r, g, b := Xyy2linear(0.2897, 0.4923, 57.6196)
	assert.InDelta(t, 0.08584239, r, 1e-6)
	assert.InDelta(t, 0.76289264, g, 1e-6)
	assert.InDelta(t, 0.17103657, b, 1e-6)

	// degenerate chromaticity guards against division by zero
	r, g, b = Xyy2linear(0.3, 0, 50)
	assert.Equal(t, 0.0, r)
	assert.Equal(t, 0.0, g)
	assert.Equal(t, 0.0, b)

	// the white point maps to near-equal channels
	r, g, b = Xyy2linear(WhiteX, WhiteY, 100)
	assert.InDelta(t, r, g, 0.1)
	assert.InDelta(t, g, b, 0.1)
}

func TestDelinearize(t *testing.T) {
	assert.Equal(t, 0.0, Delinearize(0))
	assert.InDelta(t, 0.04044994, Delinearize(0.0031308), 1e-8)
	assert.InDelta(t, 0.53709873, Delinearize(0.25), 1e-8)
	assert.InDelta(t, 0.73535698, Delinearize(0.5), 1e-8)
	assert.InDelta(t, 1.0, Delinearize(1), 1e-8)

	// linear segment passes negatives through scaled, not NaN
	assert.InDelta(t, -0.01292, Delinearize(-0.001), 1e-8)
}

func TestLinearizeRoundTrip(t *testing.T) {
	for _, c := range []float64{0, 0.001, 0.0031308, 0.01, 0.25, 0.5, 0.75, 1} {
		assert.InDelta(t, c, Linearize(Delinearize(c)), 1e-9)
	}
	assert.InDelta(t, 0.21404114, Linearize(0.5), 1e-8)
}
