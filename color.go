package swcanvas

import (
	"image/color"
	"math"
)

// Color is an immutable RGBA value stored in premultiplied form: the
// red, green and blue channels are pre-scaled by alpha/255 at
// construction. Premultiplied storage makes source-over blending a
// single multiply-add per channel with no division on the hot path.
//
// The zero value is fully transparent. Color is comparable; == tests
// exact premultiplied equality, same as Equal.
type Color struct {
	r, g, b, a uint8
}

// Transparent is the fully transparent color, Color's zero value.
var Transparent Color

// NewColor builds a Color from straight (non-premultiplied) components.
// Each component must be in [0, 255] or NewColor returns
// ErrInvalidComponent. The channels are premultiplied with
// round-to-nearest, so converting back through the straight accessors
// reproduces the inputs only up to rounding.
func NewColor(r, g, b, a int) (Color, error) {
	if !validComponent(r) || !validComponent(g) || !validComponent(b) || !validComponent(a) {
		return Color{}, ErrInvalidComponent
	}
	return Color{
		r: uint8(mulDiv255(r, a)),
		g: uint8(mulDiv255(g, a)),
		b: uint8(mulDiv255(b, a)),
		a: uint8(a),
	}, nil
}

// NewPremultipliedColor builds a Color from components that are already
// premultiplied, storing them untouched. Each component must be in
// [0, 255] or it returns ErrInvalidComponent. No cross-channel check is
// performed: callers passing a channel larger than alpha get a
// degenerate color whose straight view clamps at 255.
func NewPremultipliedColor(r, g, b, a int) (Color, error) {
	if !validComponent(r) || !validComponent(g) || !validComponent(b) || !validComponent(a) {
		return Color{}, ErrInvalidComponent
	}
	return Color{r: uint8(r), g: uint8(g), b: uint8(b), a: uint8(a)}, nil
}

func validComponent(v int) bool {
	return v >= 0 && v <= 255
}

// mulDiv255 multiplies two components and divides by 255 with
// round-to-nearest. The +127 bias makes integer division match
// round(a*b/255) exactly; a*b/255 never lands on a half, so there are
// no ties to break.
func mulDiv255(a, b int) int {
	return (a*b + 127) / 255
}

// unmulDiv multiplies p by 255 and divides by a with round-to-nearest,
// the inverse of premultiplication. Ties round up. a must be nonzero.
func unmulDiv(p, a int) int {
	return (p*255 + a/2) / a
}

// straight recovers one straight channel from its premultiplied value.
// Zero alpha yields zero: the original channel is unrecoverable once
// multiplied away. Full alpha is exact. Degenerate inputs with p > a
// clamp at 255.
func straight(p, a uint8) uint8 {
	switch a {
	case 0:
		return 0
	case 255:
		return p
	}
	return uint8(min(unmulDiv(int(p), int(a)), 255))
}

// Red returns the straight (non-premultiplied) red component.
func (c Color) Red() uint8 { return straight(c.r, c.a) }

// Green returns the straight green component.
func (c Color) Green() uint8 { return straight(c.g, c.a) }

// Blue returns the straight blue component.
func (c Color) Blue() uint8 { return straight(c.b, c.a) }

// Alpha returns the alpha component. Alpha is never premultiplied.
func (c Color) Alpha() uint8 { return c.a }

// StraightRGBA returns all four components with the color channels
// converted back to straight form, in r, g, b, a order.
func (c Color) StraightRGBA() (r, g, b, a uint8) {
	return c.Red(), c.Green(), c.Blue(), c.a
}

// PremultipliedRGBA returns the four stored components as-is, in
// r, g, b, a order.
func (c Color) PremultipliedRGBA() (r, g, b, a uint8) {
	return c.r, c.g, c.b, c.a
}

// WithGlobalAlpha returns the color scaled by a global alpha factor in
// [0, 1], or ErrInvalidFactor outside that range.
//
// The new color is rebuilt from the straight view: the straight alpha
// is scaled and rounded, then the straight RGB channels are
// re-premultiplied against it. Scaling the premultiplied channels
// directly would round differently; the round trip through straight
// values is the contract, and its small rounding loss at partial alpha
// is deliberate.
func (c Color) WithGlobalAlpha(factor float64) (Color, error) {
	if math.IsNaN(factor) || factor < 0 || factor > 1 {
		return Color{}, ErrInvalidFactor
	}
	a := int(math.Round(float64(c.a) * factor))
	return Color{
		r: uint8(mulDiv255(int(c.Red()), a)),
		g: uint8(mulDiv255(int(c.Green()), a)),
		b: uint8(mulDiv255(int(c.Blue()), a)),
		a: uint8(a),
	}, nil
}

// Over composites the color onto bg with Porter-Duff source-over,
// treating the receiver as the source. An opaque source occludes the
// background entirely and a fully transparent source leaves it
// untouched; both return without arithmetic. Otherwise each channel,
// alpha included, is src + bg*(1 - srcAlpha/255) with round-to-nearest.
func (c Color) Over(bg Color) Color {
	switch c.a {
	case 255:
		return c
	case 0:
		return bg
	}
	inv := 255 - int(c.a)
	return Color{
		r: uint8(min(int(c.r)+mulDiv255(int(bg.r), inv), 255)),
		g: uint8(min(int(c.g)+mulDiv255(int(bg.g), inv), 255)),
		b: uint8(min(int(c.b)+mulDiv255(int(bg.b), inv), 255)),
		a: uint8(int(c.a) + mulDiv255(int(bg.a), inv)),
	}
}

// modulate scales all four premultiplied components by coverage/255
// with round-to-nearest. This is how antialiased coverage attenuates a
// source color before blending: a direct premultiplied scale, unlike
// WithGlobalAlpha's straight-value round trip.
func (c Color) modulate(coverage uint8) Color {
	switch coverage {
	case 255:
		return c
	case 0:
		return Color{}
	}
	cov := int(coverage)
	return Color{
		r: uint8(mulDiv255(int(c.r), cov)),
		g: uint8(mulDiv255(int(c.g), cov)),
		b: uint8(mulDiv255(int(c.b), cov)),
		a: uint8(mulDiv255(int(c.a), cov)),
	}
}

// Equal reports exact equality of the four premultiplied components.
func (c Color) Equal(other Color) bool {
	return c == other
}

// RGBA implements image/color.Color. Go's convention is
// alpha-premultiplied 16-bit channels, which matches the internal
// representation directly; each component is widened by c*0x101.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.r) * 0x101, uint32(c.g) * 0x101, uint32(c.b) * 0x101, uint32(c.a) * 0x101
}
