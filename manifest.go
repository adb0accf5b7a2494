package icongen

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// marketingIdiom is the App Store marketing slot. It carries no
// idiom/scale arithmetic: it is always rendered at a fixed 1024px.
const marketingIdiom = "ios-marketing"

const marketingSize = 1024

// ImageSlot is one icon slot of the asset catalog manifest: a device
// idiom, a logical point size, a display scale factor and, once generated,
// the output filename.
type ImageSlot struct {
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale,omitempty"`
	Size     string `json:"size,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// ManifestInfo mirrors the manifest's info block.
type ManifestInfo struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// Manifest models the appiconset Contents.json document. The driver reads
// pixel sizes from it and writes back newly assigned filenames; it never
// derives icon geometry from the manifest.
type Manifest struct {
	Images []ImageSlot  `json:"images"`
	Info   ManifestInfo `json:"info"`
}

// LoadManifest reads and parses the manifest at path. A missing or
// unparsable manifest is fatal for the whole batch: later steps depend on
// a consistent set of filenames.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading the icon manifest")
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "parsing the icon manifest %s", path)
	}
	return &m, nil
}

// Save writes the manifest back with two-space indentation, the layout the
// asset catalog tooling produces.
func (m *Manifest) Save(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding the icon manifest")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "writing the icon manifest")
	}
	return nil
}

// PixelSize resolves a slot's target pixel size. The point size is parsed
// as a float and multiplied by the scale factor, rounded to the nearest
// pixel, so fractional point sizes such as 83.5x83.5 at 2x resolve to 167.
// The marketing slot is special-cased to 1024.
func (s ImageSlot) PixelSize() (int, error) {
	if s.Idiom == marketingIdiom {
		return marketingSize, nil
	}
	base, _, found := strings.Cut(s.Size, "x")
	if !found {
		return 0, errors.Errorf("malformed slot size %q", s.Size)
	}
	pts, err := strconv.ParseFloat(base, 64)
	if err != nil {
		return 0, errors.Errorf("malformed slot size %q", s.Size)
	}
	scale, err := strconv.Atoi(strings.TrimSuffix(s.Scale, "x"))
	if err != nil || !strings.HasSuffix(s.Scale, "x") {
		return 0, errors.Errorf("malformed slot scale %q", s.Scale)
	}
	return int(math.Round(pts * float64(scale))), nil
}

// DefaultFilename builds the output filename for a slot that has none
// assigned yet. Pre-existing explicit filenames are never renamed; callers
// must check the slot first.
func (s ImageSlot) DefaultFilename(prefix string) string {
	if s.Idiom == marketingIdiom {
		return fmt.Sprintf("%s_1024.png", prefix)
	}
	scaleTag := ""
	if s.Scale != "1x" {
		scaleTag = "@" + s.Scale
	}
	name := fmt.Sprintf("%s_%s_%s%s.png", prefix, s.Idiom, s.Size, scaleTag)
	return strings.ReplaceAll(name, " ", "")
}
