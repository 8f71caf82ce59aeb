package swcanvas

// ClipMask tracks per-pixel visibility for a drawing surface. A set bit
// means the pixel is visible; a fresh mask has every pixel visible.
// Clip regions only ever shrink: composing two masks is a bitwise
// intersection, and restoring a wider region means restoring a saved
// copy, not growing the current one.
type ClipMask struct {
	storage *Bitmap
}

// NewClipMask returns a fully visible mask covering a width x height
// pixel grid. Returns ErrInvalidDimensions if either dimension is not
// positive.
func NewClipMask(width, height int) (*ClipMask, error) {
	storage, err := NewBitmap(width, height, true)
	if err != nil {
		return nil, err
	}
	return &ClipMask{storage: storage}, nil
}

// Width returns the mask width in pixels.
func (m *ClipMask) Width() int { return m.storage.Width() }

// Height returns the mask height in pixels.
func (m *ClipMask) Height() int { return m.storage.Height() }

// Visible reports whether the pixel at (x, y) is visible. Out of range
// coordinates are never visible.
func (m *ClipMask) Visible(x, y int) bool {
	return m.storage.Get(x, y)
}

// Clipped reports whether the pixel at (x, y) is clipped out. It is the
// negation of Visible, so out of range coordinates read as clipped.
func (m *ClipMask) Clipped(x, y int) bool {
	return !m.storage.Get(x, y)
}

// SetVisible marks the pixel at (x, y) visible or clipped. Out of range
// coordinates are ignored.
func (m *ClipMask) SetVisible(x, y int, visible bool) {
	m.storage.Set(x, y, visible)
}

// Reset makes every pixel visible again, discarding all clipping.
func (m *ClipMask) Reset() {
	m.storage.Fill()
}

// ClipAll marks every pixel clipped. Rasterizing a path into a mask
// starts from this state: the rasterizer only visits covered pixels, so
// everything it never touches must already read as clipped.
func (m *ClipMask) ClipAll() {
	m.storage.Clear()
}

// Intersect narrows this mask to the pixels visible in both masks.
// Returns ErrDimensionMismatch if the masks differ in size. The other
// mask is not modified.
func (m *ClipMask) Intersect(other *ClipMask) error {
	return m.storage.And(other.storage)
}

// Clone returns an independent copy of the mask. Mutating either copy
// afterwards leaves the other untouched; saved context states hold
// clones so a later Clip cannot leak into them.
func (m *ClipMask) Clone() *ClipMask {
	return &ClipMask{storage: m.storage.Clone()}
}

// CoverageWriter returns a pixel callback that folds antialiased
// coverage into the mask. Coverage is in [0, 1]; a pixel becomes
// visible when more than half covered and clipped otherwise. This
// threshold is the single point where smooth coverage collapses to the
// mask's one bit per pixel. Out of range coordinates are ignored.
func (m *ClipMask) CoverageWriter() func(x, y int, coverage float64) {
	return func(x, y int, coverage float64) {
		m.storage.Set(x, y, coverage > 0.5)
	}
}

// HasClipping reports whether any pixel is clipped. Renderers use it to
// skip the per-pixel mask test on the common fully visible path.
func (m *ClipMask) HasClipping() bool {
	return !m.storage.IsFull()
}

// Equal reports whether both masks have the same dimensions and the
// same visibility at every pixel.
func (m *ClipMask) Equal(other *ClipMask) bool {
	return m.storage.Equal(other.storage)
}

// Bitmap returns the underlying bit storage. Callers that mutate it
// directly are responsible for keeping the trailing-pad invariant
// intact; the high-level ClipMask methods always do.
func (m *ClipMask) Bitmap() *Bitmap {
	return m.storage
}
