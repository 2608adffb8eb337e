// Command stampview renders the pixel-stamping primitives on an ASCII grid.
//
// Usage:
//
//	stampview [flags]
//
// Examples:
//
//	stampview -stamp diamond
//	stampview -w 24 -h 16 -u 11.6 -v 7.4 -stamp 1
//	stampview -stamp 4 -u 5.0 -v 5.0
//	stampview -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gfodor/dm-vio/img/buffer"
)

type stampEntry struct {
	name   string
	margin int // pixels the stamp may reach beyond its anchor
	apply  func(b *buffer.Gray, u, v float64)
}

var registry = []stampEntry{
	{"1", 1, func(b *buffer.Gray, u, v float64) { b.SetPixel1(u, v, 1) }},
	{"4", 2, func(b *buffer.Gray, u, v float64) { b.SetPixel4(u, v, 1) }},
	{"9", 1, func(b *buffer.Gray, u, v float64) { b.SetPixel9(int(u), int(v), 1) }},
	{"diamond", 3, func(b *buffer.Gray, u, v float64) { b.SetPixelDiamond(int(u), int(v), 1) }},
}

func lookup(name string) *stampEntry {
	for i := range registry {
		if registry[i].name == name {
			return &registry[i]
		}
	}
	return nil
}

func render(b *buffer.Gray) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func main() {
	width := flag.Int("w", 16, "grid width in pixels")
	height := flag.Int("h", 12, "grid height in pixels")
	u := flag.Float64("u", 8, "horizontal stamp coordinate")
	v := flag.Float64("v", 6, "vertical stamp coordinate")
	stamp := flag.String("stamp", "diamond", "stamp to draw: 1, 4, 9, or diamond")
	list := flag.Bool("list", false, "list available stamps and exit")
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	entry := lookup(*stamp)
	if entry == nil {
		fmt.Fprintf(os.Stderr, "stampview: unknown stamp %q\n", *stamp)
		os.Exit(1)
	}

	b, err := buffer.New[uint8](*width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stampview: %v\n", err)
		os.Exit(1)
	}

	// The stamps are unchecked, so keep the anchor far enough from the
	// edges that the whole pattern lands inside the grid.
	m := float64(entry.margin)
	x := math.Round(*u)
	y := math.Round(*v)
	if x < m || y < m || x >= float64(*width)-m || y >= float64(*height)-m {
		fmt.Fprintf(os.Stderr, "stampview: stamp %s at (%g, %g) does not fit a %dx%d grid\n",
			entry.name, *u, *v, *width, *height)
		os.Exit(1)
	}

	entry.apply(b, *u, *v)
	fmt.Print(render(b))
}
