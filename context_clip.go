package swcanvas

import (
	"math"

	"github.com/davidedc/swcanvas/internal/raster"
)

// Clip intersects the clip region with the current path and clears
// the path. Subsequent drawing operations only touch pixels that are
// visible in the resulting region. Clipping only ever shrinks the
// region; use Push/Pop to restore an earlier one, or ResetClip to
// remove clipping entirely.
func (c *Context) Clip() {
	c.clipPath(c.path)
	c.path.Clear()
}

// ClipPreserve intersects the clip region with the current path but
// keeps the path, so the same outline can then be filled or stroked.
func (c *Context) ClipPreserve() {
	c.clipPath(c.path)
}

// clipPath rasterizes a device-space path into a fresh mask and
// intersects it with the current clip region. A pixel stays visible
// when the path covers more than half of it.
func (c *Context) clipPath(p *Path) {
	if p.IsEmpty() {
		return
	}
	Logger().Debug("clip", "elements", len(p.Elements()))

	mask, err := NewClipMask(c.width, c.height)
	if err != nil {
		return
	}
	mask.ClipAll()
	write := mask.CoverageWriter()
	raster.FillCoverage(p.PathElements(strokeTolerance), c.width, c.height, rasterRule(c.fillRule), func(x, y int, coverage uint8) {
		write(x, y, float64(coverage)/255)
	})
	_ = c.clip.Intersect(mask)
}

// ClipRect intersects the clip region with an axis-aligned rectangle.
// Under a pure translation the mask is computed directly; any other
// transform routes the rectangle through the regular rasterizing
// path.
func (c *Context) ClipRect(x, y, w, h float64) {
	if !c.matrix.IsTranslation() {
		rect := NewPath()
		rect.Rectangle(x, y, w, h)
		c.clipPath(rect.Transform(c.matrix))
		return
	}
	if w <= 0 || h <= 0 {
		c.clip.ClipAll()
		return
	}

	p := c.matrix.TransformPoint(Pt(x, y))

	// A pixel stays visible when its center lies inside the rectangle,
	// matching the majority-coverage threshold of the rasterizing path.
	x0 := int(math.Floor(p.X + 0.5))
	y0 := int(math.Floor(p.Y + 0.5))
	x1 := int(math.Floor(p.X + w + 0.5))
	y1 := int(math.Floor(p.Y + h + 0.5))

	mask, err := NewClipMask(c.width, c.height)
	if err != nil {
		return
	}
	mask.ClipAll()
	bits := mask.Bitmap()
	for py := max(y0, 0); py < min(y1, c.height); py++ {
		for px := max(x0, 0); px < min(x1, c.width); px++ {
			bits.Set(px, py, true)
		}
	}
	_ = c.clip.Intersect(mask)
}

// ResetClip removes all clipping, making every pixel visible again.
func (c *Context) ResetClip() {
	c.clip.Reset()
}

// HasClipping reports whether any pixel is currently clipped.
func (c *Context) HasClipping() bool {
	return c.clip.HasClipping()
}
