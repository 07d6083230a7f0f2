package munsell

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadPalette(t *testing.T) {
	input := strings.Join([]string{
		"# brand palette",
		"",
		"dark red;5R 3/6",
		"10GY 8/16",
		"gray;N 5",
	}, "\n")

	entries, err := ReadPalette(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "dark red", entries[0].Name)
	assert.Equal(t, Color{Hue: Hue{5, R}, Value: 3, Chroma: 6}, entries[0].Color)

	// bare notations name themselves
	assert.Equal(t, "10GY 8/16", entries[1].Name)

	assert.Equal(t, "gray", entries[2].Name)
	assert.Equal(t, Color{Value: 5}, entries[2].Color)
}

func TestReadPaletteLegacyEncoding(t *testing.T) {
	// "Красный" in Windows-1251
	name := []byte{0xca, 0xf0, 0xe0, 0xf1, 0xed, 0xfb, 0xe9}
	line := append(name, []byte(";5R 4/14\n")...)

	entries, err := ReadPalette(strings.NewReader(string(line)))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Красный", entries[0].Name)
}

func TestReadPaletteBadNotation(t *testing.T) {
	_, err := ReadPalette(strings.NewReader("ok;5R 4/14\nbad;5X 4/14\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidHue)
	assert.Contains(t, err.Error(), "line 2")
}

func TestConvertPalette(t *testing.T) {
	entries, err := ReadPalette(strings.NewReader(strings.Join([]string{
		"red;5R 4/14",
		"leaf;10GY 8/16",
		"gray;N 5",
		"impossible;5R 4/32",
	}, "\n")))
	require.NoError(t, err)

	manifest, err := ConvertPalette(entries, 4)
	require.NoError(t, err)

	assert.Equal(t, ManifestVersion, manifest.Version)
	assert.Equal(t, "C", manifest.Illuminant)
	_, err = uuid.Parse(manifest.ID)
	assert.NoError(t, err)

	require.Len(t, manifest.Swatches, 4)
	// swatch order matches entry order even with parallel conversion
	assert.Equal(t, "red", manifest.Swatches[0].Name)
	assert.Equal(t, "5R 4/14", manifest.Swatches[0].Notation)
	assert.True(t, manifest.Swatches[0].Clamped)
	assert.False(t, manifest.Swatches[0].Extrapolated)

	assert.False(t, manifest.Swatches[1].Clamped)
	assert.True(t, manifest.Swatches[3].Extrapolated)

	for _, s := range manifest.Swatches {
		assert.Len(t, s.Hex, 7)
		assert.True(t, strings.HasPrefix(s.Hex, "#"))
	}

	leaf := manifest.GetSwatchByName("leaf")
	require.NotNil(t, leaf)
	assert.Equal(t, "10GY 8/16", leaf.Notation)
	assert.Nil(t, manifest.GetSwatchByName("missing"))
}

func TestConvertPaletteInvalidEntry(t *testing.T) {
	entries := []PaletteEntry{
		{Name: "bad", Color: Color{Hue: Hue{5, Family("X")}, Value: 4, Chroma: 6}},
	}
	_, err := ConvertPalette(entries, 2)
	assert.Error(t, err)
}

func TestManifestScanValue(t *testing.T) {
	manifest, err := ConvertPalette([]PaletteEntry{
		{Name: "gray", Color: Color{Value: 5}},
	}, 1)
	require.NoError(t, err)

	raw, err := manifest.Value()
	require.NoError(t, err)

	var restored Manifest
	require.NoError(t, restored.Scan(raw))
	assert.Equal(t, manifest.ID, restored.ID)
	require.Len(t, restored.Swatches, 1)
	assert.Equal(t, manifest.Swatches[0].Hex, restored.Swatches[0].Hex)

	var empty Manifest
	require.NoError(t, empty.Scan(nil))
	require.NoError(t, empty.Scan([]byte("null")))
}
