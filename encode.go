package swcanvas

import (
	"fmt"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
)

// EncodePNG writes the surface to w in PNG format. Pixels are
// converted to straight alpha for encoding.
func (s *Surface) EncodePNG(w io.Writer) error {
	Logger().Debug("encode png", "width", s.Width(), "height", s.Height())
	return png.Encode(w, s.ToImage())
}

// SavePNG saves the surface to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return s.EncodePNG(f)
}

// EncodeBMP writes the surface to w in BMP format. Pixels are
// converted to straight alpha for encoding; fully opaque surfaces
// produce a 24-bit file.
func (s *Surface) EncodeBMP(w io.Writer) error {
	Logger().Debug("encode bmp", "width", s.Width(), "height", s.Height())
	return bmp.Encode(w, s.ToImage())
}

// SaveBMP saves the surface to a BMP file.
func (s *Surface) SaveBMP(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("save bmp: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return s.EncodeBMP(f)
}

// SavePNG saves the context's surface to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.surface.SavePNG(path)
}

// SaveBMP saves the context's surface to a BMP file.
func (c *Context) SaveBMP(path string) error {
	return c.surface.SaveBMP(path)
}

// EncodePNG writes the context's surface to w in PNG format.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.surface.EncodePNG(w)
}

// EncodeBMP writes the context's surface to w in BMP format.
func (c *Context) EncodeBMP(w io.Writer) error {
	return c.surface.EncodeBMP(w)
}
