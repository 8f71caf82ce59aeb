package swcanvas

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestNewColorOpaque(t *testing.T) {
	c, err := NewColor(100, 150, 200, 255)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// At full alpha premultiplied and straight forms coincide.
	pr, pg, pb, pa := c.PremultipliedRGBA()
	if pr != 100 || pg != 150 || pb != 200 || pa != 255 {
		t.Errorf("expected premultiplied (100,150,200,255), got (%d,%d,%d,%d)", pr, pg, pb, pa)
	}
	sr, sg, sb, sa := c.StraightRGBA()
	if sr != 100 || sg != 150 || sb != 200 || sa != 255 {
		t.Errorf("expected straight (100,150,200,255), got (%d,%d,%d,%d)", sr, sg, sb, sa)
	}
}

func TestNewColorPremultiplies(t *testing.T) {
	c, err := NewColor(255, 0, 100, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pr, _, pb, pa := c.PremultipliedRGBA()
	if pr != 128 {
		t.Errorf("expected premultiplied red 128, got %d", pr)
	}
	// round(100*128/255) = round(50.19) = 50
	if pb != 50 {
		t.Errorf("expected premultiplied blue 50, got %d", pb)
	}
	if pa != 128 {
		t.Errorf("expected alpha 128, got %d", pa)
	}
}

func TestNewColorInvalidComponent(t *testing.T) {
	for _, tc := range []struct{ r, g, b, a int }{
		{-1, 0, 0, 255},
		{0, 256, 0, 255},
		{0, 0, 300, 255},
		{0, 0, 0, -5},
	} {
		if _, err := NewColor(tc.r, tc.g, tc.b, tc.a); !errors.Is(err, ErrInvalidComponent) {
			t.Errorf("NewColor(%d,%d,%d,%d): expected ErrInvalidComponent, got %v", tc.r, tc.g, tc.b, tc.a, err)
		}
		if _, err := NewPremultipliedColor(tc.r, tc.g, tc.b, tc.a); !errors.Is(err, ErrInvalidComponent) {
			t.Errorf("NewPremultipliedColor(%d,%d,%d,%d): expected ErrInvalidComponent, got %v", tc.r, tc.g, tc.b, tc.a, err)
		}
	}
}

func TestNewPremultipliedColor(t *testing.T) {
	c, err := NewPremultipliedColor(64, 32, 16, 128)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pr, pg, pb, pa := c.PremultipliedRGBA()
	if pr != 64 || pg != 32 || pb != 16 || pa != 128 {
		t.Errorf("expected components stored untouched, got (%d,%d,%d,%d)", pr, pg, pb, pa)
	}
}

func TestTransparentZeroValue(t *testing.T) {
	if Transparent != (Color{}) {
		t.Error("expected Transparent to be the zero value")
	}
	if Transparent.Alpha() != 0 {
		t.Errorf("expected zero alpha, got %d", Transparent.Alpha())
	}
}

func TestStraightRoundTrip(t *testing.T) {
	// Partial alpha loses at most one step per channel.
	c, _ := NewColor(200, 100, 50, 128)
	sr, sg, sb, sa := c.StraightRGBA()
	if sa != 128 {
		t.Errorf("expected alpha 128, got %d", sa)
	}
	for _, tc := range []struct {
		name string
		got  uint8
		want int
	}{
		{"red", sr, 200},
		{"green", sg, 100},
		{"blue", sb, 50},
	} {
		d := int(tc.got) - tc.want
		if d < -1 || d > 1 {
			t.Errorf("expected straight %s within 1 of %d, got %d", tc.name, tc.want, tc.got)
		}
	}
}

func TestStraightZeroAlpha(t *testing.T) {
	c, _ := NewColor(200, 100, 50, 0)
	sr, sg, sb, sa := c.StraightRGBA()
	if sr != 0 || sg != 0 || sb != 0 || sa != 0 {
		t.Errorf("expected straight view of zero-alpha color to be zeros, got (%d,%d,%d,%d)", sr, sg, sb, sa)
	}
}

func TestStraightDegenerateClamps(t *testing.T) {
	// Premultiplied channel above alpha cannot happen through NewColor,
	// but NewPremultipliedColor allows it; the straight view saturates.
	c, _ := NewPremultipliedColor(200, 0, 0, 100)
	if c.Red() != 255 {
		t.Errorf("expected degenerate straight red to clamp at 255, got %d", c.Red())
	}
}

func TestWithGlobalAlpha(t *testing.T) {
	c, _ := NewColor(100, 150, 200, 255)
	half, err := c.WithGlobalAlpha(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if half.Alpha() != 128 {
		t.Errorf("expected alpha round(255*0.5) = 128, got %d", half.Alpha())
	}
	// The straight round trip keeps channels within one step.
	sr, sg, sb, _ := half.StraightRGBA()
	if sr != 100 || sg != 149 || sb != 199 {
		t.Errorf("expected straight (100,149,199) after round trip, got (%d,%d,%d)", sr, sg, sb)
	}
}

func TestWithGlobalAlphaRoundTripLoss(t *testing.T) {
	// The straight-value round trip is the contract: premultiplied
	// channels are rebuilt from the recovered straight values, not
	// scaled in place.
	c, _ := NewColor(150, 0, 0, 128) // premultiplied red 75
	scaled, err := c.WithGlobalAlpha(0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if scaled.Alpha() != 64 {
		t.Errorf("expected alpha 64, got %d", scaled.Alpha())
	}
	pr, _, _, _ := scaled.PremultipliedRGBA()
	// Straight red recovers as round(75*255/128) = 149, then
	// re-premultiplies to round(149*64/255) = 37. A direct premultiplied
	// scale round(75*64/255) would give 19.
	if pr != 37 {
		t.Errorf("expected premultiplied red 37 via the straight round trip, got %d", pr)
	}
}

func TestWithGlobalAlphaIdentityAndZero(t *testing.T) {
	c, _ := NewColor(10, 20, 30, 200)

	same, err := c.WithGlobalAlpha(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if same.Alpha() != 200 {
		t.Errorf("expected alpha preserved at factor 1, got %d", same.Alpha())
	}

	gone, err := c.WithGlobalAlpha(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gone != Transparent {
		t.Errorf("expected factor 0 to yield the transparent color, got %+v", gone)
	}
}

func TestWithGlobalAlphaInvalidFactor(t *testing.T) {
	c, _ := NewColor(10, 20, 30, 255)
	for _, factor := range []float64{-0.01, 1.01, 2, -5} {
		if _, err := c.WithGlobalAlpha(factor); !errors.Is(err, ErrInvalidFactor) {
			t.Errorf("WithGlobalAlpha(%v): expected ErrInvalidFactor, got %v", factor, err)
		}
	}
}

func TestOverOpaqueShortCircuit(t *testing.T) {
	src, _ := NewColor(255, 0, 0, 255)
	bg, _ := NewColor(0, 255, 0, 255)
	if got := src.Over(bg); got != src {
		t.Errorf("expected opaque source to occlude the background, got %+v", got)
	}
}

func TestOverTransparentShortCircuit(t *testing.T) {
	bg, _ := NewColor(12, 34, 56, 200)
	if got := Transparent.Over(bg); got != bg {
		t.Errorf("expected transparent source to keep the background, got %+v", got)
	}
}

func TestOverPartial(t *testing.T) {
	src, _ := NewColor(255, 0, 0, 128) // premultiplied (128,0,0,128)
	bg, _ := NewColor(0, 0, 255, 255)

	got := src.Over(bg)
	pr, pg, pb, pa := got.PremultipliedRGBA()
	// r = 128 + round(0*127/255)   = 128
	// b = 0   + round(255*127/255) = 127
	// a = 128 + round(255*127/255) = 255
	if pr != 128 || pg != 0 || pb != 127 || pa != 255 {
		t.Errorf("expected (128,0,127,255), got (%d,%d,%d,%d)", pr, pg, pb, pa)
	}
}

func TestOverAccumulatesAlpha(t *testing.T) {
	layer, _ := NewColor(0, 0, 0, 128)
	got := layer.Over(layer)
	// 128 + round(128*127/255) = 128 + 64 = 192
	if got.Alpha() != 192 {
		t.Errorf("expected alpha 192 after stacking two half layers, got %d", got.Alpha())
	}
}

func TestOverOntoTransparent(t *testing.T) {
	src, _ := NewColor(100, 150, 200, 128)
	if got := src.Over(Transparent); got != src {
		t.Errorf("expected blending onto transparent to keep the source, got %+v", got)
	}
}

func TestModulate(t *testing.T) {
	c, _ := NewColor(255, 0, 0, 255)

	if got := c.modulate(255); got != c {
		t.Errorf("expected full coverage to keep the color, got %+v", got)
	}
	if got := c.modulate(0); got != Transparent {
		t.Errorf("expected zero coverage to yield transparent, got %+v", got)
	}

	half := c.modulate(128)
	pr, _, _, pa := half.PremultipliedRGBA()
	// Direct premultiplied scale: round(255*128/255) = 128.
	if pr != 128 || pa != 128 {
		t.Errorf("expected premultiplied (128,_,_,128), got (%d,_,_,%d)", pr, pa)
	}
}

func TestColorEqual(t *testing.T) {
	a, _ := NewColor(10, 20, 30, 255)
	b, _ := NewColor(10, 20, 30, 255)
	if !a.Equal(b) {
		t.Error("expected identical colors to be equal")
	}
	c, _ := NewColor(10, 20, 31, 255)
	if a.Equal(c) {
		t.Error("expected different colors to be unequal")
	}

	// Distinct straight inputs can premultiply to the same stored value.
	d, _ := NewColor(255, 0, 0, 1)
	e, _ := NewColor(254, 0, 0, 1)
	if !d.Equal(e) {
		t.Error("expected equality to compare the premultiplied form")
	}
}

func TestColorRGBAInterface(t *testing.T) {
	c, _ := NewColor(255, 0, 0, 128)
	r, g, b, a := c.RGBA()
	// Premultiplied components widened to 16 bit.
	if r != 128*0x101 || g != 0 || b != 0 || a != 128*0x101 {
		t.Errorf("expected (%d,0,0,%d), got (%d,%d,%d,%d)", 128*0x101, 128*0x101, r, g, b, a)
	}
}
