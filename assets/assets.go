package assets

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
)

// Sample is one chromatic renotation entry: xyY coordinates measured for a
// tabulated (hue, value, chroma) key. Luminance is Y on a 0..100 scale.
type Sample struct {
	Chroma    float64
	X         float64
	Y         float64
	Luminance float64
}

// ValueSample is one entry of the neutral (achromatic) series.
type ValueSample struct {
	Value     float64
	X         float64
	Y         float64
	Luminance float64
}

//go:embed munsell.csv
var munsellData []byte

//go:embed neutral.csv
var neutralData []byte

// chromatic is keyed by "<hue> <value>", e.g. "2.5R 4". Each row holds the
// chroma samples actually present in the table, sorted ascending. Rows are
// sparse: maximum chroma varies per hue and value.
var chromatic map[string][]Sample

// Neutral is the achromatic series, sorted by value.
var Neutral []ValueSample

func init() {
	var err error
	if chromatic, err = parseChromatic(munsellData); err != nil {
		log.Fatal(err)
	}
	if Neutral, err = parseNeutral(neutralData); err != nil {
		log.Fatal(err)
	}
}

// Row returns the chroma samples tabulated for a hue notation ("2.5R") at an
// integer value row, sorted by chroma. Returns nil when nothing is tabulated.
func Row(hue string, value int) []Sample {
	return chromatic[rowKey(hue, value)]
}

// MaxChroma returns the highest chroma tabulated for a hue/value row, or 0
// when the row has no chromatic entries.
func MaxChroma(hue string, value int) float64 {
	row := chromatic[rowKey(hue, value)]
	if len(row) == 0 {
		return 0
	}
	return row[len(row)-1].Chroma
}

func rowKey(hue string, value int) string {
	return fmt.Sprintf("%s %d", hue, value)
}

func parseChromatic(data []byte) (map[string][]Sample, error) {
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, err
	}

	out := make(map[string][]Sample)
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) != 6 {
			return nil, fmt.Errorf("munsell.csv line %d: expected 6 fields, got %d", i+1, len(rec))
		}
		value, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("munsell.csv line %d: %w", i+1, err)
		}
		nums, err := parseFloats(rec[2:])
		if err != nil {
			return nil, fmt.Errorf("munsell.csv line %d: %w", i+1, err)
		}
		key := rowKey(rec[0], value)
		out[key] = append(out[key], Sample{
			Chroma:    nums[0],
			X:         nums[1],
			Y:         nums[2],
			Luminance: nums[3],
		})
	}

	for _, row := range out {
		sort.Slice(row, func(i, j int) bool {
			return row[i].Chroma < row[j].Chroma
		})
	}
	return out, nil
}

func parseNeutral(data []byte) ([]ValueSample, error) {
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		return nil, err
	}

	out := make([]ValueSample, 0, len(records))
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 4 {
			return nil, fmt.Errorf("neutral.csv line %d: expected 4 fields, got %d", i+1, len(rec))
		}
		nums, err := parseFloats(rec)
		if err != nil {
			return nil, fmt.Errorf("neutral.csv line %d: %w", i+1, err)
		}
		out = append(out, ValueSample{
			Value:     nums[0],
			X:         nums[1],
			Y:         nums[2],
			Luminance: nums[3],
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out, nil
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
