package munsell

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const ManifestVersion = "1.0"

// Swatch is one converted palette entry.
type Swatch struct {
	Name         string `json:"name"`
	Notation     string `json:"notation"`
	Hex          string `json:"hex"`
	Clamped      bool   `json:"clamped"`
	Extrapolated bool   `json:"extrapolated"`
}

// Manifest is the result of a palette conversion, serializable as JSON.
type Manifest struct {
	Version    string    `json:"version"`
	ID         string    `json:"id"`
	Timestamp  string    `json:"timestamp"`
	Illuminant string    `json:"illuminant"`
	Swatches   []*Swatch `json:"swatches,omitempty"`
}

func newManifest() *Manifest {
	return &Manifest{
		Version:    ManifestVersion,
		ID:         uuid.New().String(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Illuminant: "C",
	}
}

func (m *Manifest) GetSwatchByName(name string) *Swatch {
	for _, s := range m.Swatches {
		if s.Name == name {
			return s
		}
	}
	return nil
}

func (m *Manifest) Scan(src interface{}) error {
	return JsonScan(src, m)
}

func (m Manifest) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func JsonScan[T any](src interface{}, b T) error {
	switch v := src.(type) {
	case []byte:
		if string(v) == "null" {
			v = []byte("{}")
		}
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot convert %T", src)
	}
}
