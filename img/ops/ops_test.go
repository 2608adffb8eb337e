package ops

import (
	"errors"
	"math"
	"testing"

	"github.com/gfodor/dm-vio/img/buffer"
)

func newFilled(t *testing.T, w, h, stride int, v float64) *buffer.GrayF64 {
	t.Helper()
	b, err := buffer.NewWithStride[float64](w, h, stride)
	if err != nil {
		t.Fatalf("NewWithStride(%d, %d, %d): %v", w, h, stride, err)
	}
	b.SetConstant(v)
	return b
}

func TestScale(t *testing.T) {
	src := newFilled(t, 3, 2, 3, 2)
	dst := newFilled(t, 3, 2, 3, 0)
	if err := Scale(dst, src, 2.5); err != nil {
		t.Fatalf("Scale returned error: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if dst.At(x, y) != 5 {
				t.Fatalf("At(%d, %d) = %v, want 5", x, y, dst.At(x, y))
			}
		}
	}
}

func TestScaleSkipsPadding(t *testing.T) {
	src := newFilled(t, 2, 2, 4, 1)
	dst := newFilled(t, 2, 2, 4, 0)
	dst.SetIndex(2, 42) // padding column
	if err := Scale(dst, src, 3); err != nil {
		t.Fatalf("Scale returned error: %v", err)
	}
	if dst.AtIndex(2) != 42 {
		t.Fatalf("padding element = %v after Scale, want 42", dst.AtIndex(2))
	}
	if dst.At(1, 1) != 3 {
		t.Fatalf("At(1, 1) = %v, want 3", dst.At(1, 1))
	}
}

func TestAddInPlace(t *testing.T) {
	dst := newFilled(t, 4, 3, 4, 1.5)
	src := newFilled(t, 4, 3, 6, 2.5) // different stride, same shape
	if err := AddInPlace(dst, src); err != nil {
		t.Fatalf("AddInPlace returned error: %v", err)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if dst.At(x, y) != 4 {
				t.Fatalf("At(%d, %d) = %v, want 4", x, y, dst.At(x, y))
			}
		}
	}
}

func TestMul(t *testing.T) {
	a := newFilled(t, 3, 3, 3, 3)
	b := newFilled(t, 3, 3, 3, 4)
	dst := newFilled(t, 3, 3, 3, 0)
	if err := Mul(dst, a, b); err != nil {
		t.Fatalf("Mul returned error: %v", err)
	}
	if dst.At(2, 2) != 12 {
		t.Fatalf("At(2, 2) = %v, want 12", dst.At(2, 2))
	}
}

func TestMulInPlace(t *testing.T) {
	dst := newFilled(t, 2, 2, 2, 6)
	src := newFilled(t, 2, 2, 2, 0.5)
	if err := MulInPlace(dst, src); err != nil {
		t.Fatalf("MulInPlace returned error: %v", err)
	}
	if dst.At(1, 1) != 3 {
		t.Fatalf("At(1, 1) = %v, want 3", dst.At(1, 1))
	}
}

func TestMagnitude(t *testing.T) {
	a := newFilled(t, 2, 2, 2, 3)
	b := newFilled(t, 2, 2, 2, 4)
	dst := newFilled(t, 2, 2, 2, 0)
	if err := Magnitude(dst, a, b); err != nil {
		t.Fatalf("Magnitude returned error: %v", err)
	}
	if math.Abs(dst.At(0, 0)-5) > 1e-12 {
		t.Fatalf("At(0, 0) = %v, want 5", dst.At(0, 0))
	}
}

func TestPower(t *testing.T) {
	a := newFilled(t, 2, 1, 2, 3)
	b := newFilled(t, 2, 1, 2, 4)
	dst := newFilled(t, 2, 1, 2, 0)
	if err := Power(dst, a, b); err != nil {
		t.Fatalf("Power returned error: %v", err)
	}
	if dst.At(1, 0) != 25 {
		t.Fatalf("At(1, 0) = %v, want 25", dst.At(1, 0))
	}
}

func TestShapeMismatch(t *testing.T) {
	a := newFilled(t, 3, 2, 3, 1)
	b := newFilled(t, 2, 3, 2, 1)
	if err := AddInPlace(a, b); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("AddInPlace error = %v, want ErrShapeMismatch", err)
	}
}

func TestEmptyBuffer(t *testing.T) {
	a := newFilled(t, 2, 2, 2, 1)
	b := newFilled(t, 2, 2, 2, 1)
	b.Release()
	if err := Scale(a, b, 2); !errors.Is(err, ErrEmptyBuffer) {
		t.Fatalf("Scale error = %v, want ErrEmptyBuffer", err)
	}
}
