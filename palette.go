package munsell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alitto/pond"
	"golang.org/x/text/encoding/charmap"
)

// Palette files exported by legacy tooling carry Windows-1251 swatch names.
var defaultDecoder = charmap.Windows1251.NewDecoder()

// PaletteEntry is one named color read from a palette file.
type PaletteEntry struct {
	Name  string
	Color Color
}

// ReadPalette reads a palette file: one entry per line, either a bare
// notation ("5R 4/14") or "name;notation". Blank lines and lines starting
// with '#' are skipped. Names that are not valid UTF-8 are decoded as
// Windows-1251.
func ReadPalette(r io.Reader) ([]PaletteEntry, error) {
	var entries []PaletteEntry

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var name, notation string
		if idx := strings.LastIndex(line, ";"); idx >= 0 {
			name, notation = strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:])
		} else {
			notation = line
		}

		if !utf8.ValidString(name) {
			if decoded, err := defaultDecoder.Bytes([]byte(name)); err == nil {
				name = string(decoded)
			}
		}

		color, err := Parse(notation)
		if err != nil {
			return nil, fmt.Errorf("palette line %d: %w", lineNum, err)
		}
		if name == "" {
			name = color.String()
		}
		entries = append(entries, PaletteEntry{Name: name, Color: color})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ConvertPalette converts all entries on a worker pool and collects the
// results into a manifest. Entries are independent, so conversions run
// concurrently; each result lands in its own slot and swatch order matches
// entry order.
func ConvertPalette(entries []PaletteEntry, workers int) (*Manifest, error) {
	st := time.Now()
	log.Printf("[>] Convert palette, %d entries", len(entries))
	defer func() {
		log.Printf("[<] Convert palette, at %s", time.Since(st))
	}()

	if workers < 1 {
		workers = 1
	}

	panicHandler := func(p interface{}) {
		fmt.Printf("Task panicked: %v", p)
	}
	pool := pond.New(workers, 1000, pond.MinWorkers(workers), pond.PanicHandler(panicHandler))

	swatches := make([]*Swatch, len(entries))
	for i, entry := range entries {
		i, entry := i, entry
		pool.Submit(func() {
			rgb, err := entry.Color.ToRGB()
			if err != nil {
				panic(err)
			}
			swatches[i] = &Swatch{
				Name:         entry.Name,
				Notation:     entry.Color.String(),
				Hex:          rgb.Hex(),
				Clamped:      rgb.Clamped,
				Extrapolated: rgb.Extrapolated,
			}
		})
	}

	pool.StopAndWait()
	if pool.FailedTasks() > 0 {
		return nil, errors.New("error on palette conversion")
	}

	manifest := newManifest()
	manifest.Swatches = swatches
	return manifest, nil
}
