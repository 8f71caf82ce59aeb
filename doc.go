// Package swcanvas provides a CPU-only 2D canvas for Go.
//
// # Overview
//
// swcanvas renders antialiased vector graphics into a premultiplied
// RGBA pixel buffer with no GPU, display, or cgo dependency. It
// provides an immediate-mode drawing API similar to HTML Canvas:
// paths, fills with non-zero or even-odd winding, stroked and dashed
// outlines, affine transforms, stacked clipping, and alpha
// compositing with exact source-over arithmetic.
//
// # Quick Start
//
//	import "github.com/davidedc/swcanvas"
//
//	// Create a drawing context (dc = drawing context convention)
//	dc, err := swcanvas.NewContext(512, 512)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Draw shapes
//	dc.SetColorString("#ff0000")
//	dc.DrawCircle(256, 256, 100)
//	dc.Fill()
//
//	// Save to PNG
//	dc.SavePNG("output.png")
//
// # Pixels
//
// The Surface stores colors with premultiplied alpha, which makes
// source-over compositing a single multiply-add per channel. Color
// values convert between premultiplied and straight alpha with
// round-to-nearest arithmetic, so an opaque color survives a
// premultiply/unpremultiply round trip within one step per channel.
// PNG and BMP output converts to straight alpha.
//
// # Clipping
//
// The clip region is a 1-bit mask: a pixel is either visible or not.
// Clip converts the current path's antialiased coverage to bits by
// keeping pixels that are more than half covered. Successive clips
// intersect, so the region only ever shrinks; Push and Pop snapshot
// and restore it along with the rest of the context state.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward positive Y
//
// # Concurrency
//
// Context, Surface, Path, Bitmap, and ClipMask are single-owner
// types: no internal locking, one goroutine at a time. Color, Matrix,
// and Point are immutable values and safe to share. Distinct contexts
// are fully independent and may run in parallel.
package swcanvas

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
