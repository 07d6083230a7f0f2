package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/brandquad/munsell"
	"github.com/davidbyttow/govips/v2/vips"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Workers      int    `envconfig:"MUNSELL_WORKERS" default:"4"`
	SwatchSize   int    `envconfig:"MUNSELL_SWATCH_SIZE" default:"64"`
	ManifestPath string `envconfig:"MUNSELL_MANIFEST" default:""`
	SheetPath    string `envconfig:"MUNSELL_SHEET" default:""`
	DebugMode    bool   `envconfig:"MUNSELL_DEBUG" default:"false"`
}

func main() {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		log.Fatalln(err)
	}
	_, c.DebugMode = os.LookupEnv("DEBUG")

	palettePath := flag.String("palette", "", "palette file, one notation per line")
	flag.Parse()

	var entries []munsell.PaletteEntry
	if *palettePath != "" {
		f, err := os.Open(*palettePath)
		if err != nil {
			log.Fatalln(err)
		}
		entries, err = munsell.ReadPalette(f)
		f.Close()
		if err != nil {
			log.Fatalln(err)
		}
	} else {
		if flag.NArg() == 0 {
			log.Fatalln("Munsell notations or a -palette file are required as arguments")
		}
		for _, arg := range flag.Args() {
			color, err := munsell.Parse(arg)
			if err != nil {
				log.Fatalln(err)
			}
			entries = append(entries, munsell.PaletteEntry{Name: color.String(), Color: color})
		}
	}

	manifest, err := munsell.ConvertPalette(entries, c.Workers)
	if err != nil {
		log.Fatalln(err)
	}

	for _, s := range manifest.Swatches {
		var marks []string
		if s.Clamped {
			marks = append(marks, "clamped")
		}
		if s.Extrapolated {
			marks = append(marks, "extrapolated")
		}
		suffix := ""
		if len(marks) > 0 {
			suffix = " (" + strings.Join(marks, ", ") + ")"
		}
		log.Printf("%s -> %s%s", s.Notation, s.Hex, suffix)
	}

	if c.ManifestPath != "" {
		buffer, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			log.Fatalln(err)
		}
		if err := os.WriteFile(c.ManifestPath, buffer, 0644); err != nil {
			log.Fatalln(err)
		}
	}

	if c.SheetPath != "" {
		vips.LoggingSettings(func(messageDomain string, verbosity vips.LogLevel, message string) {}, vips.LogLevelInfo)
		vips.Startup(&vips.Config{
			ConcurrencyLevel: c.Workers,
		})
		defer vips.Shutdown()

		if err := munsell.RenderSheet(manifest, c.SwatchSize, c.SheetPath); err != nil {
			log.Fatalln(err)
		}
	}

	if c.DebugMode {
		log.Println("manifest id:", manifest.ID)
	}
}
