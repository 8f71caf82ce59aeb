package swcanvas

import (
	"image"
	"math"
	"slices"

	"honnef.co/go/curve"

	"github.com/davidedc/swcanvas/internal/raster"
)

// strokeTolerance is the curve flattening tolerance, in device pixels,
// used when expanding stroked outlines.
const strokeTolerance = 0.01

// Context is the main drawing context. It maintains a surface, the
// current path, paint state, a clip region, and a transformation
// matrix, with a save/restore stack covering all of them.
//
// A Context is owned by a single goroutine; none of its methods are
// safe for concurrent use.
type Context struct {
	width   int
	height  int
	surface *Surface

	// Current state
	path        *Path // device-space: points are transformed as they are appended
	matrix      Matrix
	fillColor   Color
	strokeColor Color
	globalAlpha float64
	stroke      Stroke
	fillRule    FillRule
	clip        *ClipMask

	stack []contextState
}

// contextState is one saved frame of the Push/Pop stack.
type contextState struct {
	matrix      Matrix
	fillColor   Color
	strokeColor Color
	globalAlpha float64
	stroke      Stroke
	fillRule    FillRule
	clip        *ClipMask
}

// NewContext creates a new drawing context with the given dimensions.
// The surface starts fully transparent. Optional ContextOption
// arguments customize the context:
//
//	// Default context
//	dc, err := swcanvas.NewContext(800, 600)
//
//	// Even-odd fills by default
//	dc, err := swcanvas.NewContext(800, 600, swcanvas.WithFillRule(swcanvas.FillRuleEvenOdd))
//
// Returns ErrInvalidDimensions if width or height is not positive and
// no surface is supplied via WithSurface.
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	surface := options.surface
	if surface == nil {
		var err error
		surface, err = NewSurface(width, height)
		if err != nil {
			return nil, err
		}
	}
	width = surface.Width()
	height = surface.Height()

	clip, err := NewClipMask(width, height)
	if err != nil {
		return nil, err
	}

	return &Context{
		width:       width,
		height:      height,
		surface:     surface,
		path:        NewPath(),
		matrix:      Identity(),
		fillColor:   Black,
		strokeColor: Black,
		globalAlpha: 1,
		stroke:      options.stroke,
		fillRule:    options.fillRule,
		clip:        clip,
		stack:       make([]contextState, 0, 8),
	}, nil
}

// NewContextForImage creates a context whose surface is initialized
// from an existing image.
func NewContextForImage(img image.Image, opts ...ContextOption) (*Context, error) {
	surface := FromImage(img)
	return NewContext(0, 0, append(slices.Clone(opts), WithSurface(surface))...)
}

// Width returns the width of the context in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context in pixels.
func (c *Context) Height() int {
	return c.height
}

// Surface returns the surface the context draws onto.
func (c *Context) Surface() *Surface {
	return c.surface
}

// Image returns the context's pixels as a straight-alpha image.
func (c *Context) Image() image.Image {
	return c.surface.ToImage()
}

// SetFillColor sets the color used by Fill.
func (c *Context) SetFillColor(col Color) {
	c.fillColor = col
}

// SetStrokeColor sets the color used by Stroke.
func (c *Context) SetStrokeColor(col Color) {
	c.strokeColor = col
}

// SetColor sets both the fill and stroke colors.
func (c *Context) SetColor(col Color) {
	c.fillColor = col
	c.strokeColor = col
}

// SetFillColorString sets the fill color from a CSS color string.
// Unparseable strings select opaque black, like ParseColor.
func (c *Context) SetFillColorString(s string) {
	c.fillColor = ParseColor(s)
}

// SetStrokeColorString sets the stroke color from a CSS color string.
func (c *Context) SetStrokeColorString(s string) {
	c.strokeColor = ParseColor(s)
}

// SetColorString sets both the fill and stroke colors from a CSS
// color string.
func (c *Context) SetColorString(s string) {
	c.SetColor(ParseColor(s))
}

// FillColor returns the current fill color.
func (c *Context) FillColor() Color {
	return c.fillColor
}

// StrokeColor returns the current stroke color.
func (c *Context) StrokeColor() Color {
	return c.strokeColor
}

// SetGlobalAlpha sets the alpha applied on top of the paint color for
// all drawing operations. Values outside [0, 1] and NaN are ignored,
// leaving the current value in place.
func (c *Context) SetGlobalAlpha(alpha float64) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return
	}
	c.globalAlpha = alpha
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 {
	return c.globalAlpha
}

// SetFillRule sets the fill rule used by Fill and Clip.
func (c *Context) SetFillRule(rule FillRule) {
	c.fillRule = rule
}

// FillRule returns the current fill rule.
func (c *Context) FillRule() FillRule {
	return c.fillRule
}

// SetLineWidth sets the line width for stroking.
func (c *Context) SetLineWidth(width float64) {
	c.stroke.Width = width
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.stroke.Cap = lineCap
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.stroke.Join = join
}

// SetMiterLimit sets the miter limit for line joins.
func (c *Context) SetMiterLimit(limit float64) {
	c.stroke.MiterLimit = limit
}

// SetStroke sets the complete stroke style.
//
// Example:
//
//	dc.SetStroke(swcanvas.DefaultStroke().WithWidth(2).WithCap(swcanvas.LineCapRound))
func (c *Context) SetStroke(stroke Stroke) {
	c.stroke = stroke
}

// GetStroke returns the current stroke style.
func (c *Context) GetStroke() Stroke {
	return c.stroke
}

// SetDash sets the dash pattern for stroking as alternating dash and
// gap lengths. An odd number of lengths is repeated to make an even
// pattern, so SetDash(5) dashes like SetDash(5, 5). Passing no
// arguments, or a pattern that only contains zeros, clears the dash
// pattern. Patterns with negative or non-finite lengths are ignored.
//
// Example:
//
//	dc.SetDash(5, 3)        // 5 units dash, 3 units gap
//	dc.SetDash(10, 5, 2, 5) // complex pattern
//	dc.SetDash()            // clear dash (solid line)
func (c *Context) SetDash(lengths ...float64) {
	if len(lengths) == 0 {
		c.stroke.Dash = nil
		return
	}
	total := 0.0
	for _, l := range lengths {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return
		}
		total += l
	}
	if total == 0 {
		c.stroke.Dash = nil
		return
	}
	pattern := slices.Clone(lengths)
	if len(pattern)%2 == 1 {
		pattern = append(pattern, pattern...)
	}
	c.stroke.Dash = pattern
}

// SetDashOffset sets the starting offset into the dash pattern.
func (c *Context) SetDashOffset(offset float64) {
	c.stroke.DashOffset = offset
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	cp := c.matrix.TransformPoint(Pt(cx, cy))
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := c.matrix.TransformPoint(Pt(c1x, c1y))
	cp2 := c.matrix.TransformPoint(Pt(c2x, c2y))
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// GetCurrentPoint returns the current point of the path, in device
// coordinates. Returns (0, 0, false) if there is no current point.
func (c *Context) GetCurrentPoint() (x, y float64, ok bool) {
	if !c.path.HasCurrentPoint() {
		return 0, 0, false
	}
	pt := c.path.CurrentPoint()
	return pt.X, pt.Y, true
}

// Fill fills the current path with the fill color and clears the path.
func (c *Context) Fill() {
	c.fillPath(c.path, c.fillColor, c.fillRule)
	c.path.Clear()
}

// FillPreserve fills the current path without clearing it.
func (c *Context) FillPreserve() {
	c.fillPath(c.path, c.fillColor, c.fillRule)
}

// Stroke strokes the current path with the stroke color and clears
// the path.
func (c *Context) Stroke() {
	c.strokePath(c.path)
	c.path.Clear()
}

// StrokePreserve strokes the current path without clearing it.
func (c *Context) StrokePreserve() {
	c.strokePath(c.path)
}

// fillPath rasterizes a device-space path and blends it onto the
// surface with the given color, honoring global alpha and the clip
// region.
func (c *Context) fillPath(p *Path, col Color, rule FillRule) {
	if p.IsEmpty() {
		return
	}
	col = c.effectiveColor(col)
	if col.Alpha() == 0 {
		return
	}
	Logger().Debug("fill", "elements", len(p.Elements()), "evenOdd", rule == FillRuleEvenOdd)

	clip := c.clip
	clipped := clip.HasClipping()
	raster.FillCoverage(p.PathElements(strokeTolerance), c.width, c.height, rasterRule(rule), func(x, y int, coverage uint8) {
		if clipped && clip.Clipped(x, y) {
			return
		}
		c.surface.BlendPixelCoverage(x, y, col, coverage)
	})
}

// strokePath expands the device-space path to its stroked outline and
// fills that outline with the stroke color. The line width applies in
// device space.
func (c *Context) strokePath(p *Path) {
	if p.IsEmpty() || c.stroke.Width <= 0 {
		return
	}
	Logger().Debug("stroke", "elements", len(p.Elements()), "width", c.stroke.Width)

	elements := p.PathElements(strokeTolerance)
	if len(c.stroke.Dash) > 0 {
		dashed := slices.Collect(curve.Dash(elements, c.stroke.DashOffset, c.stroke.Dash))
		elements = slices.Values(dashed)
	}
	outline := curve.StrokePath(elements, c.strokeStyle(), curve.StrokeOpts{}, strokeTolerance)

	stroked := NewPath()
	stroked.appendCurveElements(outline.PathElements(strokeTolerance))
	c.fillPath(stroked, c.strokeColor, FillRuleNonZero)
}

// strokeStyle translates the context's stroke state to the style
// representation used by honnef.co/go/curve. Dashing is applied
// separately, before stroke expansion.
func (c *Context) strokeStyle() curve.Stroke {
	style := curve.Stroke{
		Width:      c.stroke.Width,
		MiterLimit: c.stroke.MiterLimit,
	}
	switch c.stroke.Cap {
	case LineCapButt:
		style.StartCap, style.EndCap = curve.ButtCap, curve.ButtCap
	case LineCapRound:
		style.StartCap, style.EndCap = curve.RoundCap, curve.RoundCap
	case LineCapSquare:
		style.StartCap, style.EndCap = curve.SquareCap, curve.SquareCap
	}
	switch c.stroke.Join {
	case LineJoinMiter:
		style.Join = curve.MiterJoin
	case LineJoinRound:
		style.Join = curve.RoundJoin
	case LineJoinBevel:
		style.Join = curve.BevelJoin
	}
	return style
}

// effectiveColor applies the global alpha to a paint color.
func (c *Context) effectiveColor(col Color) Color {
	if c.globalAlpha >= 1 {
		return col
	}
	faded, err := col.WithGlobalAlpha(c.globalAlpha)
	if err != nil {
		return col
	}
	return faded
}

// rasterRule maps the public fill rule onto the rasterizer's.
func rasterRule(rule FillRule) raster.FillRule {
	if rule == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// Push saves the current state: transform, colors, global alpha,
// stroke style, fill rule, and a snapshot of the clip region.
func (c *Context) Push() {
	c.stack = append(c.stack, contextState{
		matrix:      c.matrix,
		fillColor:   c.fillColor,
		strokeColor: c.strokeColor,
		globalAlpha: c.globalAlpha,
		stroke:      c.stroke,
		fillRule:    c.fillRule,
		clip:        c.clip.Clone(),
	})
}

// Pop restores the last saved state. Popping with no saved state is a
// no-op.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	state := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	c.matrix = state.matrix
	c.fillColor = state.fillColor
	c.strokeColor = state.strokeColor
	c.globalAlpha = state.globalAlpha
	c.stroke = state.stroke
	c.fillRule = state.fillRule
	c.clip = state.clip
}

// Identity resets the transformation matrix to identity.
func (c *Context) Identity() {
	c.matrix = Identity()
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around a specific point.
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Shear applies a shear transformation.
func (c *Context) Shear(x, y float64) {
	c.matrix = c.matrix.Multiply(Shear(x, y))
}

// Transform multiplies the current transformation matrix by the given
// matrix.
func (c *Context) Transform(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// SetTransform replaces the current transformation matrix.
func (c *Context) SetTransform(m Matrix) {
	c.matrix = m
}

// GetTransform returns a copy of the current transformation matrix.
func (c *Context) GetTransform() Matrix {
	return c.matrix
}

// TransformPoint transforms a point by the current matrix.
func (c *Context) TransformPoint(x, y float64) (float64, float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// InvertY inverts the Y axis so the origin sits at the bottom-left.
func (c *Context) InvertY() {
	c.Translate(0, float64(c.height))
	c.Scale(1, -1)
}

// Clear fills the entire surface with transparent pixels, ignoring
// the clip region and transform.
func (c *Context) Clear() {
	c.surface.Clear(Transparent)
}

// ClearWithColor fills the entire surface with a specific color,
// ignoring the clip region and transform.
func (c *Context) ClearWithColor(col Color) {
	c.surface.Clear(col)
}

// ClearRect erases a rectangle to transparent. The rectangle is
// transformed by the current matrix and limited by the clip region;
// partially covered boundary pixels are faded rather than fully
// erased.
func (c *Context) ClearRect(x, y, w, h float64) {
	rect := NewPath()
	rect.Rectangle(x, y, w, h)
	dev := rect.Transform(c.matrix)

	clip := c.clip
	clipped := clip.HasClipping()
	raster.FillCoverage(dev.PathElements(strokeTolerance), c.width, c.height, raster.FillRuleNonZero, func(px, py int, coverage uint8) {
		if clipped && clip.Clipped(px, py) {
			return
		}
		if coverage == 255 {
			c.surface.SetPixel(px, py, Transparent)
			return
		}
		c.surface.SetPixel(px, py, c.surface.GetPixel(px, py).modulate(255-coverage))
	})
}

// SetPixel sets a single pixel directly, bypassing the transform,
// clip region, and global alpha.
func (c *Context) SetPixel(x, y int, col Color) {
	c.surface.SetPixel(x, y, col)
}

// GetPixel returns the pixel at the given device coordinates.
func (c *Context) GetPixel(x, y int) Color {
	return c.surface.GetPixel(x, y)
}
