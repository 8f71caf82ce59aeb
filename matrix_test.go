package swcanvas

import (
	"errors"
	"math"
	"testing"
)

func pointsClose(a, b Point) bool {
	const epsilon = 1e-9
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("expected Identity() to be the identity")
	}
	p := m.TransformPoint(Pt(3, -7))
	if !pointsClose(p, Pt(3, -7)) {
		t.Errorf("expected identity to leave points unchanged, got %+v", p)
	}
}

func TestMatrixTranslate(t *testing.T) {
	m := Translate(10, 20)
	if !m.IsTranslation() {
		t.Error("expected Translate to be translation-only")
	}
	p := m.TransformPoint(Pt(1, 2))
	if !pointsClose(p, Pt(11, 22)) {
		t.Errorf("expected (11,22), got %+v", p)
	}
	// Vectors ignore translation.
	v := m.TransformVector(Pt(1, 2))
	if !pointsClose(v, Pt(1, 2)) {
		t.Errorf("expected vector unchanged, got %+v", v)
	}
}

func TestMatrixScale(t *testing.T) {
	m := Scale(2, 3)
	p := m.TransformPoint(Pt(4, 5))
	if !pointsClose(p, Pt(8, 15)) {
		t.Errorf("expected (8,15), got %+v", p)
	}
}

func TestMatrixRotate(t *testing.T) {
	m := Rotate(math.Pi / 2)
	p := m.TransformPoint(Pt(1, 0))
	if !pointsClose(p, Pt(0, 1)) {
		t.Errorf("expected 90 degree rotation to map (1,0) to (0,1), got %+v", p)
	}
}

func TestMatrixShear(t *testing.T) {
	m := Shear(1, 0)
	p := m.TransformPoint(Pt(0, 2))
	if !pointsClose(p, Pt(2, 2)) {
		t.Errorf("expected x shear to map (0,2) to (2,2), got %+v", p)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// m.Multiply(other) applies other first.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	p := m.TransformPoint(Pt(1, 1))
	if !pointsClose(p, Pt(12, 2)) {
		t.Errorf("expected scale-then-translate to give (12,2), got %+v", p)
	}

	reversed := Scale(2, 2).Multiply(Translate(10, 0))
	p = reversed.TransformPoint(Pt(1, 1))
	if !pointsClose(p, Pt(22, 2)) {
		t.Errorf("expected translate-then-scale to give (22,2), got %+v", p)
	}
}

func TestMatrixDeterminant(t *testing.T) {
	if got := Identity().Determinant(); math.Abs(got-1) > 1e-10 {
		t.Errorf("expected determinant 1, got %v", got)
	}
	if got := Scale(2, 3).Determinant(); math.Abs(got-6) > 1e-10 {
		t.Errorf("expected determinant 6, got %v", got)
	}
	if got := Scale(0, 5).Determinant(); got != 0 {
		t.Errorf("expected determinant 0, got %v", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 4))
	inv, err := m.Invert()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := Pt(13, 42)
	back := inv.TransformPoint(m.TransformPoint(p))
	if !pointsClose(back, p) {
		t.Errorf("expected inverse round trip to return %+v, got %+v", p, back)
	}
}

func TestMatrixInvertDegenerate(t *testing.T) {
	for _, m := range []Matrix{
		Scale(0, 1),
		Scale(1, 0),
		{},
		{A: 2, B: 4, D: 1, E: 2}, // rows linearly dependent
	} {
		if _, err := m.Invert(); !errors.Is(err, ErrNotInvertible) {
			t.Errorf("Matrix%+v.Invert(): expected ErrNotInvertible, got %v", m, err)
		}
	}
}

func TestPointHelpers(t *testing.T) {
	if got := Pt(1, 2).Add(Pt(3, 4)); !pointsClose(got, Pt(4, 6)) {
		t.Errorf("Add: expected (4,6), got %+v", got)
	}
	if got := Pt(3, 4).Sub(Pt(1, 2)); !pointsClose(got, Pt(2, 2)) {
		t.Errorf("Sub: expected (2,2), got %+v", got)
	}
	if got := Pt(1, 2).Mul(3); !pointsClose(got, Pt(3, 6)) {
		t.Errorf("Mul: expected (3,6), got %+v", got)
	}
	if got := Pt(3, 4).Length(); math.Abs(got-5) > 1e-10 {
		t.Errorf("Length: expected 5, got %v", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); math.Abs(got-5) > 1e-10 {
		t.Errorf("Distance: expected 5, got %v", got)
	}
	if got := Pt(0, 0).Lerp(Pt(10, 20), 0.5); !pointsClose(got, Pt(5, 10)) {
		t.Errorf("Lerp: expected (5,10), got %+v", got)
	}
}
