package swcanvas

import (
	"encoding/binary"
	"image"
	"image/color"

	"honnef.co/go/safeish"
)

// Surface is a rectangular pixel buffer holding premultiplied RGBA,
// 4 bytes per pixel. All drawing ultimately lands here. A Surface is
// exclusively owned by the context rendering into it; nothing in it
// locks, so concurrent mutation must be serialized by the caller.
type Surface struct {
	width  int
	height int
	data   []uint8
}

// NewSurface creates a transparent surface with the given dimensions.
// Returns ErrInvalidDimensions if either dimension is not positive.
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the surface.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height of the surface.
func (s *Surface) Height() int {
	return s.height
}

// Data returns the raw pixel data, premultiplied RGBA order. Writes
// bypass the blending path; the caller is responsible for keeping the
// bytes premultiplied.
func (s *Surface) Data() []uint8 {
	return s.data
}

// SetPixel overwrites a single pixel, replacing whatever was there.
// Out of range coordinates are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.r
	s.data[i+1] = c.g
	s.data[i+2] = c.b
	s.data[i+3] = c.a
}

// GetPixel returns the color of a single pixel. Out of range
// coordinates read as transparent.
func (s *Surface) GetPixel(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{s.data[i+0], s.data[i+1], s.data[i+2], s.data[i+3]}
}

// BlendPixel composites c over the existing pixel with source-over.
// An opaque color skips the read-modify-write and a fully transparent
// one does nothing. Out of range coordinates are ignored.
func (s *Surface) BlendPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height || c.a == 0 {
		return
	}
	i := (y*s.width + x) * 4
	if c.a == 255 {
		s.data[i+0] = c.r
		s.data[i+1] = c.g
		s.data[i+2] = c.b
		s.data[i+3] = c.a
		return
	}
	bg := Color{s.data[i+0], s.data[i+1], s.data[i+2], s.data[i+3]}
	out := c.Over(bg)
	s.data[i+0] = out.r
	s.data[i+1] = out.g
	s.data[i+2] = out.b
	s.data[i+3] = out.a
}

// BlendPixelCoverage composites c attenuated by antialiased coverage.
// Coverage scales the premultiplied color directly before the blend.
func (s *Surface) BlendPixelCoverage(x, y int, c Color, coverage uint8) {
	if coverage == 0 {
		return
	}
	s.BlendPixel(x, y, c.modulate(coverage))
}

// Clear fills the entire surface with a color, replacing all pixels.
// The fill reinterprets the buffer as words so the common clear is one
// store per pixel instead of four.
func (s *Surface) Clear(c Color) {
	var px [4]byte
	px[0], px[1], px[2], px[3] = c.r, c.g, c.b, c.a
	word := binary.NativeEndian.Uint32(px[:])
	for i, words := 0, safeish.SliceCast[[]uint32](s.data); i < len(words); i++ {
		words[i] = word
	}
}

// ToImage converts the surface to an image.NRGBA, the straight-alpha
// form expected by most encoders. Each pixel goes through the straight
// view, so fully transparent pixels come out as zeros.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			i := (y*s.width + x) * 4
			c := Color{s.data[i+0], s.data[i+1], s.data[i+2], s.data[i+3]}
			o := y*img.Stride + x*4
			img.Pix[o+0] = c.Red()
			img.Pix[o+1] = c.Green()
			img.Pix[o+2] = c.Blue()
			img.Pix[o+3] = c.a
		}
	}
	return img
}

// FromImage creates a surface from an image, premultiplying as needed.
func FromImage(img image.Image) *Surface {
	bounds := img.Bounds()
	s := &Surface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		data:   make([]uint8, bounds.Dx()*bounds.Dy()*4),
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*s.width + x) * 4
			s.data[i+0] = uint8(r >> 8)
			s.data[i+1] = uint8(g >> 8)
			s.data[i+2] = uint8(b >> 8)
			s.data[i+3] = uint8(a >> 8)
		}
	}
	return s
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}
