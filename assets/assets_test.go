package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow(t *testing.T) {
	row := Row("5R", 4)
	require.NotEmpty(t, row)

	// samples sorted ascending by chroma, shared luminance per value row
	for i := 1; i < len(row); i++ {
		assert.Greater(t, row[i].Chroma, row[i-1].Chroma)
		assert.Equal(t, row[0].Luminance, row[i].Luminance)
	}

	assert.Nil(t, Row("5R", 42))
	assert.Nil(t, Row("5Q", 4))
}

func TestRowsAreSparse(t *testing.T) {
	// maximum chroma varies by hue and value; mid values carry more
	assert.Equal(t, 28.0, MaxChroma("5R", 4))
	assert.Equal(t, 2.0, MaxChroma("5Y", 1))
	assert.Equal(t, 16.0, MaxChroma("10GY", 8))
	assert.Equal(t, 0.0, MaxChroma("5R", 42))

	assert.Greater(t, MaxChroma("5R", 5), MaxChroma("5R", 1))
	assert.Greater(t, MaxChroma("5R", 5), MaxChroma("5R", 9))
}

func TestEveryAnchorRowPresent(t *testing.T) {
	families := []string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}
	numbers := []string{"2.5", "5", "7.5", "10"}
	for _, fam := range families {
		for _, num := range numbers {
			for value := 0; value <= 10; value++ {
				assert.NotEmpty(t, Row(num+fam, value), "%s%s value %d", num, fam, value)
			}
		}
	}
}

func TestChromaticCoordinates(t *testing.T) {
	for _, s := range Row("2.5PB", 5) {
		assert.Greater(t, s.X, 0.0)
		assert.Less(t, s.X, 1.0)
		assert.Greater(t, s.Y, 0.0)
		assert.Less(t, s.Y, 1.0)
		assert.GreaterOrEqual(t, s.Luminance, 0.0)
		assert.LessOrEqual(t, s.Luminance, 100.0)
	}
}

func TestNeutralSeries(t *testing.T) {
	require.NotEmpty(t, Neutral)
	assert.Equal(t, 0.0, Neutral[0].Value)
	assert.Equal(t, 10.0, Neutral[len(Neutral)-1].Value)
	assert.Equal(t, 0.0, Neutral[0].Luminance)
	assert.InDelta(t, 100.0, Neutral[len(Neutral)-1].Luminance, 1e-3)

	for i := 1; i < len(Neutral); i++ {
		assert.Greater(t, Neutral[i].Value, Neutral[i-1].Value)
		assert.Greater(t, Neutral[i].Luminance, Neutral[i-1].Luminance)
	}
}
