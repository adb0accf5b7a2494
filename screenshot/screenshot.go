// Package screenshot prepares App Store screenshots: source captures are
// scaled to fit an exact device size and centered over a solid background.
// This is plain scale and letterbox, kept apart from the icon rasterizer.
package screenshot

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	// The stores accept bmp sources alongside png and jpeg.
	_ "golang.org/x/image/bmp"

	"github.com/aquaware/icongen/utils"
)

// Size is an exact screenshot size accepted by the store for one device
// class.
type Size struct {
	Name   string
	Width  int
	Height int
}

// DeviceSizes lists the portrait sizes currently accepted for iPhone 6.7",
// iPhone 6.5" and the two 13" iPad variants.
var DeviceSizes = []Size{
	{Name: "6p7", Width: 1284, Height: 2778},
	{Name: "6p5", Width: 1242, Height: 2688},
	{Name: "ipad13a", Width: 2064, Height: 2752},
	{Name: "ipad13b", Width: 2048, Height: 2732},
}

// validExtensions are the accepted source capture formats.
var validExtensions = []string{".png", ".jpg", ".jpeg", ".bmp"}

// ScaleAndPad fits the source image inside the target size preserving its
// aspect ratio, resampling with a Lanczos filter, and centers the result
// over a solid background color.
func ScaleAndPad(img image.Image, target Size, bg color.NRGBA) *image.NRGBA {
	iw := img.Bounds().Dx()
	ih := img.Bounds().Dy()

	scale := utils.Min(
		float64(target.Width)/float64(iw),
		float64(target.Height)/float64(ih),
	)
	nw := int(float64(iw)*scale + 0.5)
	nh := int(float64(ih)*scale + 0.5)

	resized := imaging.Resize(img, nw, nh, imaging.Lanczos)
	canvas := imaging.New(target.Width, target.Height, bg)
	return imaging.PasteCenter(canvas, resized)
}

// Processor exports every capture found in the source directory at every
// configured device size.
type Processor struct {
	Source     string
	OutBase    string
	Background color.NRGBA
	Sizes      []Size
}

// Process walks the source directory and writes one export-<name>
// directory per device size. A capture that fails to decode or write is
// reported and skipped; the remaining captures still go through. It
// returns the number of captures processed.
func (p *Processor) Process() (int, error) {
	sizes := p.Sizes
	if len(sizes) == 0 {
		sizes = DeviceSizes
	}

	entries, err := os.ReadDir(p.Source)
	if err != nil {
		return 0, errors.Wrapf(err, "reading the source folder %s", p.Source)
	}

	for _, size := range sizes {
		dir := p.outDir(size)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, errors.Wrapf(err, "creating the export folder %s", dir)
		}
	}

	processed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isValidExtension(filepath.Ext(entry.Name())) {
			continue
		}
		if err := p.export(entry.Name(), sizes); err != nil {
			log.Printf("%s %v",
				utils.DecorateText(fmt.Sprintf("skipping %s:", entry.Name()), utils.ErrorMessage), err)
			continue
		}
		processed++
	}
	return processed, nil
}

// export scales one capture to every device size.
func (p *Processor) export(name string, sizes []Size) error {
	src, err := imaging.Open(filepath.Join(p.Source, name))
	if err != nil {
		return errors.Wrap(err, "decoding the capture")
	}
	for _, size := range sizes {
		out := ScaleAndPad(src, size, p.Background)
		if err := writePNG(filepath.Join(p.outDir(size), name), out); err != nil {
			return errors.Wrapf(err, "exporting the %s size", size.Name)
		}
	}
	return nil
}

func (p *Processor) outDir(size Size) string {
	return filepath.Join(p.OutBase, "export-"+size.Name)
}

// writePNG always encodes as PNG regardless of the source extension; the
// store only accepts png uploads.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return imaging.Encode(f, img, imaging.PNG)
}

func isValidExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range validExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ParseHexColor parses a #RRGGBB background color specification.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.NRGBA{}, errors.Errorf("invalid background color %q", s)
	}
	var rgb [3]uint8
	for i := range rgb {
		v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Errorf("invalid background color %q", s)
		}
		rgb[i] = uint8(v)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
}
