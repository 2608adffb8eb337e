package ops

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"

	"github.com/gfodor/dm-vio/img/buffer"
)

var (
	ErrShapeMismatch = errors.New("ops: buffers must have identical width and height")
	ErrEmptyBuffer   = errors.New("ops: buffer has no storage")
)

// row returns the logical pixels of row y, excluding padding.
func row(b *buffer.GrayF64, y int) []float64 {
	i := y * b.Stride()
	return b.Pix()[i : i+b.Width()]
}

func sameShape(bufs ...*buffer.GrayF64) error {
	ref := bufs[0]
	for _, b := range bufs {
		if b.Empty() {
			return ErrEmptyBuffer
		}
		if b.Width() != ref.Width() || b.Height() != ref.Height() {
			return ErrShapeMismatch
		}
	}
	return nil
}

// Scale computes dst = src * s per pixel.
func Scale(dst, src *buffer.GrayF64, s float64) error {
	if err := sameShape(dst, src); err != nil {
		return err
	}
	for y := 0; y < dst.Height(); y++ {
		vecmath.ScaleBlock(row(dst, y), row(src, y), s)
	}
	return nil
}

// AddInPlace computes dst += src per pixel.
func AddInPlace(dst, src *buffer.GrayF64) error {
	if err := sameShape(dst, src); err != nil {
		return err
	}
	for y := 0; y < dst.Height(); y++ {
		vecmath.AddBlockInPlace(row(dst, y), row(src, y))
	}
	return nil
}

// Mul computes dst = a * b per pixel.
func Mul(dst, a, b *buffer.GrayF64) error {
	if err := sameShape(dst, a, b); err != nil {
		return err
	}
	for y := 0; y < dst.Height(); y++ {
		vecmath.MulBlock(row(dst, y), row(a, y), row(b, y))
	}
	return nil
}

// MulInPlace computes dst *= src per pixel.
func MulInPlace(dst, src *buffer.GrayF64) error {
	if err := sameShape(dst, src); err != nil {
		return err
	}
	for y := 0; y < dst.Height(); y++ {
		vecmath.MulBlockInPlace(row(dst, y), row(src, y))
	}
	return nil
}

// Magnitude computes dst = sqrt(a*a + b*b) per pixel, the Euclidean norm of
// two component planes such as horizontal and vertical gradients.
func Magnitude(dst, a, b *buffer.GrayF64) error {
	if err := sameShape(dst, a, b); err != nil {
		return err
	}
	for y := 0; y < dst.Height(); y++ {
		vecmath.Magnitude(row(dst, y), row(a, y), row(b, y))
	}
	return nil
}

// Power computes dst = a*a + b*b per pixel, the squared norm of two
// component planes.
func Power(dst, a, b *buffer.GrayF64) error {
	if err := sameShape(dst, a, b); err != nil {
		return err
	}
	for y := 0; y < dst.Height(); y++ {
		vecmath.Power(row(dst, y), row(a, y), row(b, y))
	}
	return nil
}
