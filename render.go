package icongen

import "github.com/pkg/errors"

// Render rasterizes an icon description at the given square pixel size and
// returns the encoded PNG bytes. It is a pure function of its arguments:
// calling it twice with the same description and size yields byte-identical
// output. A one-pixel render is valid and produces the gradient's top
// color.
func Render(desc *IconDescription, size int) ([]byte, error) {
	if desc == nil {
		return nil, errors.New("nil icon description")
	}
	if size < 1 {
		return nil, errors.Errorf("invalid icon size %d: must be at least 1px", size)
	}

	c := Draw(desc, size)
	png, err := EncodePNG(c.Width, c.Height, c.Scanlines())
	if err != nil {
		return nil, errors.Wrapf(err, "encoding the %dpx %s icon", size, desc.Name)
	}
	return png, nil
}
