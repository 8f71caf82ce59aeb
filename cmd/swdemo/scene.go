package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/davidedc/swcanvas"
)

// scene describes a TOML-driven drawing. Colors are CSS color strings
// ("tomato", "#ff6347", "rgba(255, 99, 71, 0.5)").
type scene struct {
	Width      int
	Height     int
	Background string
	Shape      []shape
}

// shape is one drawing step. Kind selects the geometry; a shape is
// filled when Fill is set and stroked when Stroke is set.
type shape struct {
	Kind   string
	Fill   string
	Stroke string

	LineWidth  float64 `toml:"line_width"`
	Dash       []float64
	DashOffset float64 `toml:"dash_offset"`

	X, Y     float64
	X2, Y2   float64 // line endpoint
	W, H     float64
	R        float64
	Rx, Ry   float64 // ellipse radii
	Sides    int
	Rotation float64
	Alpha    float64 // global alpha, 0 means unset
	EvenOdd  bool    `toml:"even_odd"`
	Clip     bool    // intersect the clip region instead of painting
}

func loadScene(path string) (*scene, error) {
	var sc scene
	if _, err := toml.DecodeFile(path, &sc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &sc, nil
}

// renderScene draws sc onto a fresh context. Scene dimensions, when
// present, take precedence over the fallback dimensions.
func renderScene(sc *scene, width, height int) (*swcanvas.Context, error) {
	if sc.Width > 0 {
		width = sc.Width
	}
	if sc.Height > 0 {
		height = sc.Height
	}

	dc, err := swcanvas.NewContext(width, height)
	if err != nil {
		return nil, err
	}

	if sc.Background != "" {
		dc.ClearWithColor(swcanvas.ParseColor(sc.Background))
	}

	for i, s := range sc.Shape {
		if err := drawShape(dc, s); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}
	return dc, nil
}

func drawShape(dc *swcanvas.Context, s shape) error {
	if s.Clip {
		// Pop restores the clip saved at Push, so build the path
		// inside the frame but apply the clip after it.
		dc.Push()
		if s.Rotation != 0 {
			dc.RotateAbout(s.Rotation, s.X, s.Y)
		}
		err := buildShapePath(dc, s)
		dc.Pop()
		if err != nil {
			return err
		}
		dc.Clip()
		return nil
	}

	dc.Push()
	defer dc.Pop()

	if s.Rotation != 0 {
		dc.RotateAbout(s.Rotation, s.X, s.Y)
	}
	if err := buildShapePath(dc, s); err != nil {
		return err
	}

	if s.EvenOdd {
		dc.SetFillRule(swcanvas.FillRuleEvenOdd)
	}
	if s.Alpha > 0 {
		dc.SetGlobalAlpha(s.Alpha)
	}

	if s.Fill != "" {
		dc.SetFillColorString(s.Fill)
		dc.FillPreserve()
	}
	if s.Stroke != "" {
		dc.SetStrokeColorString(s.Stroke)
		if s.LineWidth > 0 {
			dc.SetLineWidth(s.LineWidth)
		}
		if len(s.Dash) > 0 {
			dc.SetDash(s.Dash...)
			dc.SetDashOffset(s.DashOffset)
		}
		dc.StrokePreserve()
	}
	dc.ClearPath()
	return nil
}

func buildShapePath(dc *swcanvas.Context, s shape) error {
	switch s.Kind {
	case "circle":
		dc.DrawCircle(s.X, s.Y, s.R)
	case "ellipse":
		dc.DrawEllipse(s.X, s.Y, s.Rx, s.Ry)
	case "rect":
		dc.DrawRectangle(s.X, s.Y, s.W, s.H)
	case "rounded":
		dc.DrawRoundedRectangle(s.X, s.Y, s.W, s.H, s.R)
	case "polygon":
		dc.DrawRegularPolygon(s.Sides, s.X, s.Y, s.R, 0)
	case "line":
		dc.DrawLine(s.X, s.Y, s.X2, s.Y2)
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}
	return nil
}
