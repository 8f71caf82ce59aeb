package swcanvas

import (
	"errors"
	"testing"
)

func TestNewClipMask(t *testing.T) {
	m, err := NewClipMask(100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Width() != 100 || m.Height() != 100 {
		t.Errorf("expected 100x100, got %dx%d", m.Width(), m.Height())
	}
	if !m.Visible(50, 50) {
		t.Error("expected fresh mask to be fully visible")
	}
	if m.HasClipping() {
		t.Error("expected fresh mask to report no clipping")
	}
}

func TestNewClipMaskInvalidDimensions(t *testing.T) {
	if _, err := NewClipMask(0, 10); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
	if _, err := NewClipMask(10, -1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestClipMaskSetVisible(t *testing.T) {
	m, _ := NewClipMask(10, 10)

	m.SetVisible(3, 4, false)
	if m.Visible(3, 4) {
		t.Error("expected (3,4) to be clipped")
	}
	if !m.Clipped(3, 4) {
		t.Error("expected Clipped to mirror Visible")
	}
	if !m.HasClipping() {
		t.Error("expected HasClipping after clipping a pixel")
	}

	m.SetVisible(3, 4, true)
	if !m.Visible(3, 4) {
		t.Error("expected (3,4) to be visible again")
	}
	if m.HasClipping() {
		t.Error("expected no clipping after restoring the pixel")
	}
}

func TestClipMaskBounds(t *testing.T) {
	m, _ := NewClipMask(10, 10)

	// Out of range reads as clipped, writes are ignored.
	if m.Visible(-1, 5) || m.Visible(10, 5) || m.Visible(5, -1) || m.Visible(5, 10) {
		t.Error("expected out of range coordinates to be invisible")
	}
	if !m.Clipped(-1, -1) {
		t.Error("expected out of range coordinates to be clipped")
	}
	m.SetVisible(-1, 5, false)
	m.SetVisible(10, 5, false)
	if m.HasClipping() {
		t.Error("out of range writes should not modify the mask")
	}
}

func TestClipMaskResetClipAll(t *testing.T) {
	m, _ := NewClipMask(10, 10)

	m.ClipAll()
	if m.Visible(5, 5) {
		t.Error("expected everything clipped after ClipAll")
	}
	if !m.HasClipping() {
		t.Error("expected HasClipping after ClipAll")
	}

	m.Reset()
	if !m.Visible(5, 5) {
		t.Error("expected everything visible after Reset")
	}
	if m.HasClipping() {
		t.Error("expected no clipping after Reset")
	}
}

func TestClipMaskIntersect(t *testing.T) {
	left, _ := NewClipMask(10, 10)
	for y := 0; y < 10; y++ {
		for x := 5; x < 10; x++ {
			left.SetVisible(x, y, false)
		}
	}
	top, _ := NewClipMask(10, 10)
	for y := 5; y < 10; y++ {
		for x := 0; x < 10; x++ {
			top.SetVisible(x, y, false)
		}
	}

	if err := left.Intersect(top); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !left.Visible(2, 2) {
		t.Error("expected the overlapping quadrant to stay visible")
	}
	if left.Visible(7, 2) || left.Visible(2, 7) || left.Visible(7, 7) {
		t.Error("expected pixels clipped by either mask to be clipped")
	}

	// The operand is read-only.
	if !top.Visible(7, 2) {
		t.Error("expected Intersect to leave the operand untouched")
	}
}

func TestClipMaskIntersectMismatch(t *testing.T) {
	a, _ := NewClipMask(10, 10)
	b, _ := NewClipMask(11, 10)
	if err := a.Intersect(b); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestClipMaskIntersectOnlyShrinks(t *testing.T) {
	m, _ := NewClipMask(10, 10)
	m.SetVisible(4, 4, false)

	full, _ := NewClipMask(10, 10)
	if err := m.Intersect(full); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Visible(4, 4) {
		t.Error("intersecting with a fully visible mask must not restore pixels")
	}
}

func TestClipMaskIntersectIdempotent(t *testing.T) {
	a, _ := NewClipMask(4, 4)
	b, _ := NewClipMask(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x != 0 || y != 0 {
				b.SetVisible(x, y, false)
			}
		}
	}

	if err := a.Intersect(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Visible(0, 0) || a.Visible(1, 1) {
		t.Error("expected only (0,0) to survive the intersection")
	}

	snapshot := a.Clone()
	if err := a.Intersect(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.Equal(snapshot) {
		t.Error("expected repeated intersection with the same mask to change nothing")
	}
}

func TestClipMaskClone(t *testing.T) {
	m, _ := NewClipMask(10, 10)
	m.SetVisible(2, 2, false)

	clone := m.Clone()
	if !clone.Equal(m) {
		t.Error("expected clone to equal the original")
	}

	m.SetVisible(5, 5, false)
	if clone.Clipped(5, 5) {
		t.Error("clone should not be affected by later changes")
	}
	clone.SetVisible(2, 2, true)
	if m.Visible(2, 2) {
		t.Error("original should not be affected by clone changes")
	}
}

func TestClipMaskCoverageWriter(t *testing.T) {
	m, _ := NewClipMask(10, 10)
	m.ClipAll()
	write := m.CoverageWriter()

	write(1, 1, 1.0)
	write(2, 1, 0.75)
	write(3, 1, 0.5)
	write(4, 1, 0.25)
	write(5, 1, 0.0)

	if !m.Visible(1, 1) || !m.Visible(2, 1) {
		t.Error("expected coverage above 0.5 to make pixels visible")
	}
	if m.Visible(3, 1) {
		t.Error("expected coverage of exactly 0.5 to stay clipped")
	}
	if m.Visible(4, 1) || m.Visible(5, 1) {
		t.Error("expected coverage below 0.5 to stay clipped")
	}

	// Writers clip as well as reveal.
	write(1, 1, 0.1)
	if m.Visible(1, 1) {
		t.Error("expected low coverage to clip a previously visible pixel")
	}

	// Out of range coverage is dropped.
	write(-1, 0, 1.0)
	write(10, 0, 1.0)
}

func TestClipMaskHasClippingFastPath(t *testing.T) {
	m, _ := NewClipMask(33, 7)
	if m.HasClipping() {
		t.Error("expected no clipping on a fresh mask")
	}
	m.SetVisible(32, 6, false)
	if !m.HasClipping() {
		t.Error("expected HasClipping to notice the last pixel")
	}
}

func TestClipMaskBitmap(t *testing.T) {
	m, _ := NewClipMask(8, 1)
	m.SetVisible(0, 0, false)

	raw := m.Bitmap()
	if raw.Get(0, 0) {
		t.Error("expected storage bit to mirror visibility")
	}
	raw.Set(0, 0, true)
	if !m.Visible(0, 0) {
		t.Error("expected mask to observe direct storage writes")
	}
}
