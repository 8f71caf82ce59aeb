package swcanvas

import (
	"iter"
	"math"

	"honnef.co/go/curve"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
// A path has a current point after MoveTo, LineTo, or any curve operation.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Transform returns a copy of the path with all points mapped through m.
// Control points transform affinely, so the image of a Bezier is the
// Bezier of the transformed control points.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			result.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			result.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Arc adds a circular arc to the path, drawn from angle1 to angle2
// (in radians) around center (cx, cy). If the path is empty the arc
// begins with a MoveTo to its start point; otherwise it connects with
// a line from the current point.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// Split into cubic segments of at most 90 degrees each.
	const maxAngle = math.Pi / 2
	numSegments := int(math.Ceil((angle2 - angle1) / maxAngle))
	if numSegments == 0 {
		numSegments = 1
	}
	angleStep := (angle2 - angle1) / float64(numSegments)

	for i := 0; i < numSegments; i++ {
		a1 := angle1 + float64(i)*angleStep
		p.arcSegment(cx, cy, r, a1, a1+angleStep, i == 0)
	}
}

// arcSegment adds a single cubic approximating an arc of at most 90
// degrees. Only the first segment of an arc connects to the existing
// path; continuations pick up from the current point.
func (p *Path) arcSegment(cx, cy, r, a1, a2 float64, connect bool) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	c1x := x1 - alpha*r*sin1
	c1y := y1 + alpha*r*cos1
	c2x := x2 + alpha*r*sin2
	c2y := y2 - alpha*r*cos2

	if connect {
		if len(p.elements) == 0 {
			p.MoveTo(x1, y1)
		} else {
			p.LineTo(x1, y1)
		}
	}
	p.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// PathElements implements curve.Shape. The elements are emitted as-is;
// tolerance is unused because the path is already lines and Beziers.
func (p *Path) PathElements(tolerance float64) iter.Seq[curve.PathElement] {
	_ = tolerance
	return func(yield func(curve.PathElement) bool) {
		for _, elem := range p.elements {
			var el curve.PathElement
			switch e := elem.(type) {
			case MoveTo:
				el = curve.PathElement{
					Kind: curve.MoveToKind,
					P0:   curve.Point{X: e.Point.X, Y: e.Point.Y},
				}
			case LineTo:
				el = curve.PathElement{
					Kind: curve.LineToKind,
					P0:   curve.Point{X: e.Point.X, Y: e.Point.Y},
				}
			case QuadTo:
				el = curve.PathElement{
					Kind: curve.QuadToKind,
					P0:   curve.Point{X: e.Control.X, Y: e.Control.Y},
					P1:   curve.Point{X: e.Point.X, Y: e.Point.Y},
				}
			case CubicTo:
				el = curve.PathElement{
					Kind: curve.CubicToKind,
					P0:   curve.Point{X: e.Control1.X, Y: e.Control1.Y},
					P1:   curve.Point{X: e.Control2.X, Y: e.Control2.Y},
					P2:   curve.Point{X: e.Point.X, Y: e.Point.Y},
				}
			case Close:
				el = curve.PathElement{Kind: curve.ClosePathKind}
			}
			if !yield(el) {
				return
			}
		}
	}
}

// appendCurveElements appends a curve element sequence to the path,
// translating from the element representation used by honnef.co/go/curve.
func (p *Path) appendCurveElements(seq iter.Seq[curve.PathElement]) {
	for el := range seq {
		switch el.Kind {
		case curve.MoveToKind:
			p.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			p.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			p.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			p.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			p.Close()
		}
	}
}
