package icongen

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// MasterSource loads a finalized master icon (a 1024x1024 PNG tuned by
// hand) and returns a render function that resamples it to each slot size
// with a Lanczos filter, re-encoded through the same container encoder the
// procedural path uses.
func MasterSource(path string) (RenderFunc, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading the master icon %s", path)
	}
	return func(px int) ([]byte, error) {
		resized := imaging.Resize(src, px, px, imaging.Lanczos)
		c := canvasFromNRGBA(resized)
		data, err := EncodePNG(c.Width, c.Height, c.Scanlines())
		if err != nil {
			return nil, errors.Wrapf(err, "encoding the %dpx master resample", px)
		}
		return data, nil
	}, nil
}

// canvasFromNRGBA copies an NRGBA image into an owned RGB canvas. The icon
// model has no alpha channel, so the alpha byte is dropped, not composited.
func canvasFromNRGBA(img *image.NRGBA) *Canvas {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	c := NewCanvas(w, h)
	for y := 0; y < h; y++ {
		si := img.PixOffset(0, y)
		di := y * w * 3
		for x := 0; x < w; x++ {
			c.Pix[di] = img.Pix[si]
			c.Pix[di+1] = img.Pix[si+1]
			c.Pix[di+2] = img.Pix[si+2]
			si += 4
			di += 3
		}
	}
	return c
}
