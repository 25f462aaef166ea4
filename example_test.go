package hexgrid_test

import (
	"fmt"

	"github.com/Travis-Britz/hexgrid"
)

func ExampleLine() {
	fmt.Println(hexgrid.Line(hexgrid.NewHex(0, 0, 0), hexgrid.NewHex(3, -3, 0)))
	// Output: [(0, 0, 0) (1, -1, 0) (2, -2, 0) (3, -3, 0)]
}

func ExampleRing() {
	fmt.Println(hexgrid.Ring(hexgrid.NewHex(0, 0, 0), 1))
	// Output: [(-1, 1, 0) (-1, 0, 1) (0, -1, 1) (1, -1, 0) (1, 0, -1) (0, 1, -1)]
}

func ExampleLayout_PixelToHex() {
	layout := hexgrid.NewLayout(hexgrid.Pointy(), hexgrid.Point{X: 10, Y: 10}, hexgrid.Point{})
	p := layout.HexToPixel(hexgrid.NewHex(2, -1, -1))
	fmt.Printf("%.2f %.2f\n", p.X, p.Y)
	fmt.Println(layout.PixelToHex(hexgrid.Point{X: 27, Y: -13}).Round())
	// Output:
	// 25.98 -15.00
	// (2, -1, -1)
}

func ExampleHex_Offset() {
	h := hexgrid.NewHex(-3, 0, 3)
	fmt.Println(h.Offset(), h.Offset().Hex())
	// Output: [-3, -2] (-3, 0, 3)
}
