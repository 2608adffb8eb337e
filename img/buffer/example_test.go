package buffer_test

import (
	"fmt"

	"github.com/gfodor/dm-vio/img/buffer"
)

func ExampleBuffer() {
	b, _ := buffer.New[uint8](6, 3)
	b.SetConstant(1)
	b.SetPixel1(3.6, 1.2, 8)

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			fmt.Print(b.At(x, y))
		}
		fmt.Println()
	}

	// Output:
	// 111111
	// 111181
	// 111111
}

func ExampleBuffer_Copy() {
	owned, _ := buffer.New[uint8](2, 1)
	owned.SetConstant(5)
	deep := owned.Copy()
	deep.Set(0, 0, 9)

	pix := []uint8{1, 2}
	view, _ := buffer.Wrap(2, 1, pix)
	alias := view.Copy()
	alias.Set(0, 0, 9)

	fmt.Println(owned.At(0, 0), deep.At(0, 0))
	fmt.Println(view.At(0, 0), pix[0])

	// Output:
	// 5 9
	// 9 9
}
