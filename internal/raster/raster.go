// Package raster converts vector path outlines into per-pixel coverage.
//
// Two fill rules are supported. The non-zero winding rule rides on
// golang.org/x/image/vector, which handles curves natively and produces
// antialiased coverage. The even-odd rule uses a scanline rasterizer
// over flattened outlines, sampling at pixel centers with fractional
// coverage at span ends.
//
// Coverage is reported through a callback instead of a buffer so
// callers can blend, threshold, or accumulate without an intermediate
// allocation per fill.
package raster

import (
	"image"
	"image/draw"
	"iter"
	"slices"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"
)

// FillRule specifies how to determine which areas are inside a path.
type FillRule uint8

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// CoverageFunc receives antialiased coverage for one pixel. Coverage is
// 0 (outside) to 255 (fully inside); pixels with zero coverage are not
// reported.
type CoverageFunc func(x, y int, coverage uint8)

// FillCoverage rasterizes a path onto a width x height pixel grid and
// reports coverage per touched pixel. Subpaths are implicitly closed,
// matching fill semantics. Geometry outside the grid is clipped.
func FillCoverage(path iter.Seq[curve.PathElement], width, height int, rule FillRule, fn CoverageFunc) {
	if width <= 0 || height <= 0 {
		return
	}
	if rule == FillRuleEvenOdd {
		fillEvenOdd(path, width, height, fn)
		return
	}
	fillNonZero(path, width, height, fn)
}

func fillNonZero(path iter.Seq[curve.PathElement], width, height int, fn CoverageFunc) {
	var r vector.Rasterizer
	r.Reset(width, height)
	r.DrawOp = draw.Src

	open := false
	for el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				r.ClosePath()
			}
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			open = true
		case curve.LineToKind:
			r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.QuadToKind:
			r.QuadTo(float32(el.P0.X), float32(el.P0.Y), float32(el.P1.X), float32(el.P1.Y))
		case curve.CubicToKind:
			r.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case curve.ClosePathKind:
			if open {
				r.ClosePath()
			}
			open = false
		}
	}
	if open {
		r.ClosePath()
	}

	alpha := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	for y := 0; y < height; y++ {
		row := alpha.Pix[y*alpha.Stride : y*alpha.Stride+width]
		for x, v := range row {
			if v > 0 {
				fn(x, y, v)
			}
		}
	}
}

type point struct {
	x, y float64
}

// edge is a non-horizontal segment normalized so y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
}

func fillEvenOdd(path iter.Seq[curve.PathElement], width, height int, fn CoverageFunc) {
	edges := buildEdges(flatten(path))
	if len(edges) == 0 {
		return
	}

	row := make([]uint8, width)
	crossings := make([]float64, 0, 8)
	for y := 0; y < height; y++ {
		scanY := float64(y) + 0.5

		crossings = crossings[:0]
		for _, e := range edges {
			if e.y0 <= scanY && scanY < e.y1 {
				t := (scanY - e.y0) / (e.y1 - e.y0)
				crossings = append(crossings, e.x0+t*(e.x1-e.x0))
			}
		}
		if len(crossings) < 2 {
			continue
		}
		slices.Sort(crossings)

		clear(row)
		for i := 0; i+1 < len(crossings); i += 2 {
			addSpan(row, crossings[i], crossings[i+1])
		}
		for x, v := range row {
			if v > 0 {
				fn(x, y, v)
			}
		}
	}
}

// addSpan accumulates coverage for the horizontal interval [xa, xb)
// into a scanline row, clamped to the row bounds. Interior pixels are
// full; the two end pixels carry their covered fraction.
func addSpan(row []uint8, xa, xb float64) {
	if xa < 0 {
		xa = 0
	}
	if xb > float64(len(row)) {
		xb = float64(len(row))
	}
	if xb <= xa {
		return
	}

	px0 := int(xa)
	px1 := int(xb)
	if px1 >= len(row) {
		px1 = len(row) - 1
	}

	if px0 == px1 {
		addCoverage(row, px0, (xb-xa)*255)
		return
	}
	addCoverage(row, px0, (float64(px0+1)-xa)*255)
	for x := px0 + 1; x < px1; x++ {
		row[x] = 255
	}
	addCoverage(row, px1, (xb-float64(px1))*255)
}

func addCoverage(row []uint8, x int, amount float64) {
	v := int(row[x]) + int(amount+0.5)
	if v > 255 {
		v = 255
	}
	row[x] = uint8(v)
}

// flatten converts the path into closed polylines, one per subpath.
// Curves are approximated with fixed-step parametric sampling.
func flatten(path iter.Seq[curve.PathElement]) [][]point {
	var subpaths [][]point
	var cur []point
	var current point

	closeCurrent := func() {
		if len(cur) >= 3 {
			subpaths = append(subpaths, cur)
		}
		cur = nil
	}

	for el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			closeCurrent()
			current = point{el.P0.X, el.P0.Y}
			cur = append(cur, current)
		case curve.LineToKind:
			current = point{el.P0.X, el.P0.Y}
			cur = append(cur, current)
		case curve.QuadToKind:
			const steps = 10
			p0 := current
			c := point{el.P0.X, el.P0.Y}
			p2 := point{el.P1.X, el.P1.Y}
			for i := 1; i <= steps; i++ {
				t := float64(i) / steps
				cur = append(cur, evalQuadratic(p0, c, p2, t))
			}
			current = p2
		case curve.CubicToKind:
			const steps = 16
			p0 := current
			c1 := point{el.P0.X, el.P0.Y}
			c2 := point{el.P1.X, el.P1.Y}
			p3 := point{el.P2.X, el.P2.Y}
			for i := 1; i <= steps; i++ {
				t := float64(i) / steps
				cur = append(cur, evalCubic(p0, c1, c2, p3, t))
			}
			current = p3
		case curve.ClosePathKind:
			if len(cur) > 0 {
				current = cur[0]
			}
			closeCurrent()
		}
	}
	closeCurrent()
	return subpaths
}

// buildEdges turns closed polylines into normalized edges, adding the
// implicit closing segment for each subpath and dropping horizontals.
func buildEdges(subpaths [][]point) []edge {
	var edges []edge
	for _, pts := range subpaths {
		for i := range pts {
			p0 := pts[i]
			p1 := pts[(i+1)%len(pts)]
			if p0.y == p1.y {
				continue
			}
			if p0.y > p1.y {
				p0, p1 = p1, p0
			}
			edges = append(edges, edge{x0: p0.x, y0: p0.y, x1: p1.x, y1: p1.y})
		}
	}
	return edges
}

func evalQuadratic(p0, p1, p2 point, t float64) point {
	s := 1 - t
	return point{
		x: s*s*p0.x + 2*s*t*p1.x + t*t*p2.x,
		y: s*s*p0.y + 2*s*t*p1.y + t*t*p2.y,
	}
}

func evalCubic(p0, p1, p2, p3 point, t float64) point {
	s := 1 - t
	s2 := s * s
	s3 := s2 * s
	t2 := t * t
	t3 := t2 * t
	return point{
		x: s3*p0.x + 3*s2*t*p1.x + 3*s*t2*p2.x + t3*p3.x,
		y: s3*p0.y + 3*s2*t*p1.y + 3*s*t2*p2.y + t3*p3.y,
	}
}
