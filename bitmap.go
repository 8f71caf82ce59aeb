package swcanvas

import "bytes"

// Bitmap is a packed 1-bit-per-pixel buffer.
// Eight horizontally consecutive pixels share one byte of storage, so a
// Bitmap uses roughly an eighth of the memory of a byte-per-pixel mask.
//
// Coordinates outside the buffer are never errors: reads return false
// and writes are ignored. This keeps per-pixel loops branch-cheap when
// a rasterizer probes near the edges.
type Bitmap struct {
	width  int
	height int
	bits   []byte
	def    bool // value every pixel is restored to by Reset
}

// NewBitmap creates a bitmap with the given dimensions and sets every
// pixel to value. Returns ErrInvalidDimensions unless both dimensions
// are positive.
func NewBitmap(width, height int, value bool) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	b := &Bitmap{
		width:  width,
		height: height,
		bits:   make([]byte, (width*height+7)/8),
		def:    value,
	}
	if value {
		b.Fill()
	}
	return b, nil
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Get returns the bit at (x, y).
// Returns false for coordinates outside the bitmap.
func (b *Bitmap) Get(x, y int) bool {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return false
	}
	idx := y*b.width + x
	return b.bits[idx>>3]&(1<<(idx&7)) != 0
}

// Set sets the bit at (x, y).
// Coordinates outside the bitmap are ignored.
func (b *Bitmap) Set(x, y int, v bool) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	idx := y*b.width + x
	if v {
		b.bits[idx>>3] |= 1 << (idx & 7)
	} else {
		b.bits[idx>>3] &^= 1 << (idx & 7)
	}
}

// Clear sets every pixel to 0.
func (b *Bitmap) Clear() {
	clear(b.bits)
}

// Fill sets every pixel to 1.
// Unused bits in the final byte stay 0, so IsFull and Equal never see
// phantom pixels past width*height.
func (b *Bitmap) Fill() {
	for i := range b.bits {
		b.bits[i] = 0xFF
	}
	b.clearPadding()
}

// Reset restores every pixel to the value the bitmap was created with.
func (b *Bitmap) Reset() {
	if b.def {
		b.Fill()
	} else {
		b.Clear()
	}
}

// clearPadding zeroes the trailing bits of the final byte that fall
// past width*height. Every bulk operation that can set bits must end
// with the padding clear.
func (b *Bitmap) clearPadding() {
	if rem := (b.width * b.height) & 7; rem != 0 {
		b.bits[len(b.bits)-1] &= 1<<rem - 1
	}
}

// And replaces the bitmap with the bitwise AND of itself and other.
// Returns ErrDimensionMismatch unless the dimensions agree. The other
// bitmap is only read.
func (b *Bitmap) And(other *Bitmap) error {
	if b.width != other.width || b.height != other.height {
		return ErrDimensionMismatch
	}
	for i, v := range other.bits {
		b.bits[i] &= v
	}
	return nil
}

// CopyFrom replaces the bitmap contents with a byte-for-byte copy of
// other. Returns ErrDimensionMismatch unless the dimensions agree.
func (b *Bitmap) CopyFrom(other *Bitmap) error {
	if b.width != other.width || b.height != other.height {
		return ErrDimensionMismatch
	}
	copy(b.bits, other.bits)
	return nil
}

// Clone returns an independent copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	dup := &Bitmap{
		width:  b.width,
		height: b.height,
		def:    b.def,
		bits:   make([]byte, len(b.bits)),
	}
	copy(dup.bits, b.bits)
	return dup
}

// IsFull reports whether every pixel is 1. Padding bits are excluded:
// a filled bitmap is full regardless of whether width*height is a
// multiple of eight.
func (b *Bitmap) IsFull() bool {
	n := b.width * b.height
	for i := 0; i < n>>3; i++ {
		if b.bits[i] != 0xFF {
			return false
		}
	}
	if rem := n & 7; rem != 0 {
		return b.bits[len(b.bits)-1] == 1<<rem-1
	}
	return true
}

// IsEmpty reports whether every pixel is 0.
func (b *Bitmap) IsEmpty() bool {
	for _, v := range b.bits {
		if v != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether the two bitmaps have the same dimensions and
// identical contents.
func (b *Bitmap) Equal(other *Bitmap) bool {
	return b.width == other.width &&
		b.height == other.height &&
		bytes.Equal(b.bits, other.bits)
}

// Data returns the underlying packed bytes. Bit i of byte i/8 holds
// pixel y*width+x with i = y*width+x (least significant bit first).
//
// Writes through this slice bypass bounds checks and the padding
// invariant; the caller is responsible for keeping bits past
// width*height clear.
func (b *Bitmap) Data() []byte {
	return b.bits
}
