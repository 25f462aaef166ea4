package hexgrid

import (
	"fmt"
	"math"
)

var sqrt3 = math.Sqrt(3)

// Orientation holds the 2x2 forward matrix (F), its inverse (B),
// and the corner angle offset in sixths of a turn for one hex orientation.
type Orientation struct {
	F0, F1, F2, F3 float64
	B0, B1, B2, B3 float64
	StartAngle     float64
}

var (
	pointy = Orientation{
		F0: sqrt3, F1: sqrt3 / 2, F2: 0, F3: 3.0 / 2,
		B0: sqrt3 / 3, B1: -1.0 / 3, B2: 0, B3: 2.0 / 3,
		StartAngle: 0.5,
	}
	flat = Orientation{
		F0: 3.0 / 2, F1: 0, F2: sqrt3 / 2, F3: sqrt3,
		B0: 2.0 / 3, B1: 0, B2: -1.0 / 3, B3: sqrt3 / 3,
		StartAngle: 0,
	}
)

// Pointy is the orientation with a corner at the top of each hex.
func Pointy() Orientation { return pointy }

// Flat is the orientation with an edge at the top of each hex.
func Flat() Orientation { return flat }

func (o Orientation) String() string {
	switch o {
	case pointy:
		return "pointy"
	case flat:
		return "flat"
	default:
		return fmt.Sprintf("orientation(%v)", o.StartAngle)
	}
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Vec3 is a pixel position with a z value carried along for layered renderers.
type Vec3 struct {
	X, Y, Z float64
}

// Layout places hexes in pixel space.
// Size scales each axis (use a negative Y to flip the grid) and Origin is the pixel
// position of Hex{0,0,0}.
type Layout struct {
	Orientation Orientation
	Size        Point
	Origin      Point
}

// NewLayout returns a Layout.
func NewLayout(o Orientation, size, origin Point) Layout {
	return Layout{Orientation: o, Size: size, Origin: origin}
}

// HexToPixel returns the pixel center of h.
func (l Layout) HexToPixel(h Hex) Point {
	return l.FractionalToPixel(h.Fractional())
}

// FractionalToPixel returns the pixel position of f.
func (l Layout) FractionalToPixel(f FractionalHex) Point {
	m := l.Orientation
	x := (m.F0*f.Q + m.F1*f.R) * l.Size.X
	y := (m.F2*f.Q + m.F3*f.R) * l.Size.Y
	return Point{x + l.Origin.X, y + l.Origin.Y}
}

// ScreenPos is HexToPixel with z passed through unchanged.
func (l Layout) ScreenPos(h Hex, z float64) Vec3 {
	p := l.HexToPixel(h)
	return Vec3{p.X, p.Y, z}
}

// PixelToHex is the inverse of FractionalToPixel.
// Round the result to find the hex containing p.
func (l Layout) PixelToHex(p Point) FractionalHex {
	m := l.Orientation
	x := (p.X - l.Origin.X) / l.Size.X
	y := (p.Y - l.Origin.Y) / l.Size.Y
	q := m.B0*x + m.B1*y
	r := m.B2*x + m.B3*y
	return FractionalHex{q, r, -q - r}
}

// CornerOffset returns the offset of a corner from its hex center.
// Corners are numbered from the orientation's start angle in steps of 60 degrees.
func (l Layout) CornerOffset(corner int) Point {
	angle := 2 * math.Pi * (l.Orientation.StartAngle + float64(corner)) / 6
	return Point{l.Size.X * math.Cos(angle), l.Size.Y * math.Sin(angle)}
}

// Corners returns the pixel positions of the six corners of h.
func (l Layout) Corners(h Hex) [6]Point {
	var corners [6]Point
	center := l.HexToPixel(h)
	for i := range corners {
		offset := l.CornerOffset(i)
		corners[i] = Point{center.X + offset.X, center.Y + offset.Y}
	}
	return corners
}
