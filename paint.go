package swcanvas

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Stroke describes how path outlines are drawn.
type Stroke struct {
	// Width is the line width in pixels.
	Width float64

	// Cap is the shape of line endpoints.
	Cap LineCap

	// Join is the shape of line joins.
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels.
	MiterLimit float64

	// Dash is the dash pattern as alternating dash and gap lengths.
	// nil means a solid line.
	Dash []float64

	// DashOffset is the starting offset into the dash pattern.
	DashOffset float64
}

// DefaultStroke returns a Stroke with default settings: a solid
// 1-pixel line with butt caps and miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// WithWidth returns a copy of the Stroke with the given line width.
func (s Stroke) WithWidth(width float64) Stroke {
	s.Width = width
	return s
}

// WithCap returns a copy of the Stroke with the given line cap.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern
// and offset.
func (s Stroke) WithDash(offset float64, lengths ...float64) Stroke {
	s.Dash = lengths
	s.DashOffset = offset
	return s
}
