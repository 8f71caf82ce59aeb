package swcanvas

import "math"

// bezierCircle is the control point offset factor that makes a cubic
// Bezier segment approximate a quarter circle.
const bezierCircle = 0.5522847498307936

// DrawLine adds a line between two points to the current path.
func (c *Context) DrawLine(x1, y1, x2, y2 float64) {
	c.MoveTo(x1, y1)
	c.LineTo(x2, y2)
}

// DrawRectangle adds a rectangle to the current path.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawRoundedRectangle adds a rectangle with rounded corners to the
// current path. The corner radius is clamped to half the shorter
// side.
func (c *Context) DrawRoundedRectangle(x, y, w, h, r float64) {
	if r <= 0 {
		c.DrawRectangle(x, y, w, h)
		return
	}
	if limit := math.Min(w, h) / 2; r > limit {
		r = limit
	}
	k := r * bezierCircle

	c.MoveTo(x+r, y)
	c.LineTo(x+w-r, y)
	c.CubicTo(x+w-r+k, y, x+w, y+r-k, x+w, y+r)
	c.LineTo(x+w, y+h-r)
	c.CubicTo(x+w, y+h-r+k, x+w-r+k, y+h, x+w-r, y+h)
	c.LineTo(x+r, y+h)
	c.CubicTo(x+r-k, y+h, x, y+h-r+k, x, y+h-r)
	c.LineTo(x, y+r)
	c.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	c.ClosePath()
}

// DrawCircle adds a circle to the current path.
func (c *Context) DrawCircle(x, y, r float64) {
	offset := r * bezierCircle

	c.MoveTo(x+r, y)
	c.CubicTo(x+r, y+offset, x+offset, y+r, x, y+r)
	c.CubicTo(x-offset, y+r, x-r, y+offset, x-r, y)
	c.CubicTo(x-r, y-offset, x-offset, y-r, x, y-r)
	c.CubicTo(x+offset, y-r, x+r, y-offset, x+r, y)
	c.ClosePath()
}

// DrawEllipse adds an axis-aligned ellipse to the current path.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	ox := rx * bezierCircle
	oy := ry * bezierCircle

	c.MoveTo(x+rx, y)
	c.CubicTo(x+rx, y+oy, x+ox, y+ry, x, y+ry)
	c.CubicTo(x-ox, y+ry, x-rx, y+oy, x-rx, y)
	c.CubicTo(x-rx, y-oy, x-ox, y-ry, x, y-ry)
	c.CubicTo(x+ox, y-ry, x+rx, y-oy, x+rx, y)
	c.ClosePath()
}

// DrawPoint draws a point as a small filled circle of radius r.
func (c *Context) DrawPoint(x, y, r float64) {
	c.DrawCircle(x, y, r)
}

// DrawArc adds a circular arc to the current path, drawn from angle1
// to angle2 (in radians) around (x, y). If the path already has a
// current point, a line connects it to the arc's start point.
func (c *Context) DrawArc(x, y, r, angle1, angle2 float64) {
	arc := NewPath()
	arc.Arc(x, y, r, angle1, angle2)

	for _, elem := range arc.Transform(c.matrix).Elements() {
		switch e := elem.(type) {
		case MoveTo:
			if c.path.HasCurrentPoint() {
				c.path.LineTo(e.Point.X, e.Point.Y)
			} else {
				c.path.MoveTo(e.Point.X, e.Point.Y)
			}
		case CubicTo:
			c.path.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		}
	}
}

// DrawRegularPolygon adds a regular polygon with n sides to the
// current path. The first vertex sits at the given rotation (in
// radians) from the center.
func (c *Context) DrawRegularPolygon(n int, x, y, r, rotation float64) {
	if n < 3 {
		return
	}
	angle := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		px := x + r*math.Cos(a)
		py := y + r*math.Sin(a)
		if i == 0 {
			c.MoveTo(px, py)
		} else {
			c.LineTo(px, py)
		}
	}
	c.ClosePath()
}
