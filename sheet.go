package munsell

import (
	"log"
	"os"
	"time"

	"github.com/davidbyttow/govips/v2/vips"
	"github.com/lucasb-eyer/go-colorful"
)

const DefaultFilePerm = 0777

// createImage return empty vips image with a certain width, height and background color
func createImage(w, h int, c colorful.Color) (*vips.ImageRef, error) {
	var cR, cG, cB uint8 = c.RGB255()
	color := []float64{float64(cR), float64(cG), float64(cB)}

	imageRef, err := vips.Black(w, h)
	if err != nil {
		return nil, err
	}
	err = imageRef.ToColorSpace(vips.InterpretationSRGB)
	if err != nil {
		return nil, err
	}

	err = imageRef.Linear([]float64{0, 0, 0}, color)
	if err != nil {
		return nil, err
	}

	return imageRef, nil
}

// RenderSheet writes the palette as a single PNG strip, one square of
// swatchSize pixels per swatch, in manifest order.
func RenderSheet(m *Manifest, swatchSize int, outPath string) error {
	st := time.Now()
	log.Println("[>] Render sheet")
	defer func() {
		log.Println("[<] Render sheet, at", time.Since(st))
	}()

	target, err := createImage(1, 1, colorful.Color{})
	if err != nil {
		return err
	}
	defer target.Close()

	for i, swatch := range m.Swatches {
		col, err := colorful.Hex(swatch.Hex)
		if err != nil {
			return err
		}
		tile, err := createImage(swatchSize, swatchSize, col)
		if err != nil {
			return err
		}
		err = target.Insert(tile, i*swatchSize, 0, true, &vips.ColorRGBA{})
		tile.Close()
		if err != nil {
			return err
		}
	}

	buffer, _, err := target.ExportPng(vips.NewPngExportParams())
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, buffer, DefaultFilePerm)
}
