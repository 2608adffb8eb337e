package buffer

import "math"

// Pixel constrains buffer elements to fixed-size value types whose zero
// value is the all-zero bit pattern, so that bulk clears and byte-for-byte
// clones are well defined.
type Pixel interface {
	~uint8 | ~uint16 | ~uint32 | ~int32 | ~float32 | ~float64 |
		[3]uint8 | [3]float32
}

// Buffer is a dense, row-major rectangle of pixels. The element at (x, y)
// lives at Pix()[x + y*Stride()]; rows may carry padding when the stride
// exceeds the width. A Buffer either owns its storage or is a view over
// memory owned elsewhere; see New and Wrap.
//
// Width, height, and stride are fixed for the life of an instance.
// Construct a new Buffer to change dimensions.
type Buffer[T Pixel] struct {
	width  int
	height int
	stride int
	pix    []T
	owns   bool
}

// New returns an owning buffer of the given extent with stride equal to
// width. Pixel values start at the zero value of T.
func New[T Pixel](width, height int) (*Buffer[T], error) {
	return NewWithStride[T](width, height, width)
}

// NewWithStride returns an owning buffer with an explicit row stride,
// allocating stride*height elements. The stride must be at least the width;
// columns beyond the width are padding.
func NewWithStride[T Pixel](width, height, stride int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	return &Buffer[T]{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]T, stride*height),
		owns:   true,
	}, nil
}

// Wrap returns a view over pix with stride equal to width. No copy is made:
// mutations through the view are visible in pix and vice versa. The caller
// must keep pix at least stride*height long for the view's lifetime; this
// is not verified.
func Wrap[T Pixel](width, height int, pix []T) (*Buffer[T], error) {
	return WrapWithStride(width, height, pix, width)
}

// WrapWithStride returns a view over pix with an explicit row stride.
func WrapWithStride[T Pixel](width, height int, pix []T, stride int) (*Buffer[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if stride < width {
		return nil, ErrInvalidStride
	}
	return &Buffer[T]{
		width:  width,
		height: height,
		stride: stride,
		pix:    pix,
		owns:   false,
	}, nil
}

// Width returns the logical width in pixels.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the logical height in pixels.
func (b *Buffer[T]) Height() int { return b.height }

// Stride returns the number of elements between the starts of consecutive
// rows. Always at least Width().
func (b *Buffer[T]) Stride() int { return b.stride }

// Owns reports whether the buffer owns its backing storage.
func (b *Buffer[T]) Owns() bool { return b.owns }

// Empty reports whether the buffer has no storage, as after Move or Release.
// An empty buffer must not be accessed; it may only be discarded.
func (b *Buffer[T]) Empty() bool { return b.pix == nil }

// Pix returns the underlying storage. Its layout is stride*height elements,
// row y starting at y*Stride().
func (b *Buffer[T]) Pix() []T { return b.pix }

// Index returns the flat storage index of (x, y).
func (b *Buffer[T]) Index(x, y int) int { return x + y*b.stride }

// At returns the pixel at (x, y). Coordinates are not checked against the
// logical rectangle: the caller must ensure 0 <= x < Width() and
// 0 <= y < Height(), or accept reading padding or adjacent rows.
func (b *Buffer[T]) At(x, y int) T { return b.pix[x+y*b.stride] }

// Set writes the pixel at (x, y). Unchecked like At.
func (b *Buffer[T]) Set(x, y int, v T) { b.pix[x+y*b.stride] = v }

// AtIndex returns the element at flat storage index i, ignoring the stride.
func (b *Buffer[T]) AtIndex(i int) T { return b.pix[i] }

// SetIndex writes the element at flat storage index i, ignoring the stride.
func (b *Buffer[T]) SetIndex(i int, v T) { b.pix[i] = v }

// InBounds reports whether (x, y) lies inside the logical rectangle.
func (b *Buffer[T]) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// AtChecked returns the pixel at (x, y) and true, or the zero value and
// false when the coordinate is outside the logical rectangle.
func (b *Buffer[T]) AtChecked(x, y int) (T, bool) {
	if !b.InBounds(x, y) {
		var zero T
		return zero, false
	}
	return b.At(x, y), true
}

// SetChecked writes the pixel at (x, y) and reports whether it did.
// Out-of-bounds coordinates write nothing.
func (b *Buffer[T]) SetChecked(x, y int, v T) bool {
	if !b.InBounds(x, y) {
		return false
	}
	b.Set(x, y, v)
	return true
}

// Copy duplicates the buffer according to its ownership. An owning source
// yields an independent owning copy of all stride*height elements; a view
// yields another view aliasing the same storage.
func (b *Buffer[T]) Copy() *Buffer[T] {
	c := &Buffer[T]{
		width:  b.width,
		height: b.height,
		stride: b.stride,
		pix:    b.pix,
		owns:   false,
	}
	if b.owns {
		c.pix = make([]T, b.stride*b.height)
		copy(c.pix, b.pix)
		c.owns = true
	}
	return c
}

// Move transfers the storage and ownership to a returned buffer in constant
// time. The receiver keeps its dimensions but becomes an empty, non-owning
// shell that must not be accessed again.
func (b *Buffer[T]) Move() *Buffer[T] {
	moved := &Buffer[T]{
		width:  b.width,
		height: b.height,
		stride: b.stride,
		pix:    b.pix,
		owns:   b.owns,
	}
	b.pix = nil
	b.owns = false
	return moved
}

// Clone returns an owning deep duplicate with the same width, height, and
// stride, copying all stride*height elements including padding. Unlike
// Copy, Clone allocates even when the source is a view.
func (b *Buffer[T]) Clone() *Buffer[T] {
	n := b.stride * b.height
	c := &Buffer[T]{
		width:  b.width,
		height: b.height,
		stride: b.stride,
		pix:    make([]T, n),
		owns:   true,
	}
	copy(c.pix, b.pix[:n])
	return c
}

// Release drops the buffer's reference to its storage, leaving it empty and
// non-owning. Safe to call more than once and safe after Move. Views simply
// detach; the external owner's memory is untouched.
func (b *Buffer[T]) Release() {
	b.pix = nil
	b.owns = false
}

// SetZero clears every one of the stride*height underlying elements,
// padding included, to the zero value of T.
func (b *Buffer[T]) SetZero() {
	clear(b.pix[:b.stride*b.height])
}

// SetConstant sets every logical pixel to v, row-major. Padding columns
// beyond the width keep their previous values.
func (b *Buffer[T]) SetConstant(v T) {
	for y := 0; y < b.height; y++ {
		row := b.pix[y*b.stride : y*b.stride+b.width]
		for x := range row {
			row[x] = v
		}
	}
}

// SetPixel1 writes val at the integer coordinate nearest to (u, v),
// rounding half up on both axes. Unchecked.
func (b *Buffer[T]) SetPixel1(u, v float64, val T) {
	b.Set(int(math.Floor(u+0.5)), int(math.Floor(v+0.5)), val)
}

// SetPixel4 writes val into the 2x2 block whose top-left pixel is
// (floor(u), floor(v)). Unchecked.
func (b *Buffer[T]) SetPixel4(u, v float64, val T) {
	iu := int(math.Floor(u))
	iv := int(math.Floor(v))
	b.Set(iu, iv, val)
	b.Set(iu+1, iv, val)
	b.Set(iu, iv+1, val)
	b.Set(iu+1, iv+1, val)
}

// SetPixel9 writes val into the 3x3 neighborhood centered at (x, y).
// Unchecked.
func (b *Buffer[T]) SetPixel9(x, y int, val T) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			b.Set(x+dx, y+dy, val)
		}
	}
}

// SetPixelDiamond traces a diamond-shaped outline of radius 3 around
// (x, y), an approximate circle used for debug overlays. The point set is
// fixed; consumers rely on the exact pixels drawn. Unchecked, so the full
// radius must fit inside the backing storage.
func (b *Buffer[T]) SetPixelDiamond(x, y int, val T) {
	for i := -3; i <= 3; i++ {
		b.Set(x+3, y+i, val)
		b.Set(x-3, y+i, val)
		b.Set(x+2, y+i, val)
		b.Set(x-2, y+i, val)

		b.Set(x+i, y-3, val)
		b.Set(x+i, y+3, val)
		b.Set(x+i, y-2, val)
		b.Set(x+i, y+2, val)
	}
}
