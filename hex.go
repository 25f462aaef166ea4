// Package hexgrid is a coordinate kernel for hexagonal grids.
//
// Hex is the canonical cube coordinate (q, r, s) with q+r+s == 0.
// FractionalHex, Offset, and pixel Points are alternate representations
// that convert to and from it.
// Everything in this package is a plain value computation:
// no I/O, no shared state, and every type is safe to copy between goroutines.
//
// Arithmetic on the underlying int type wraps on overflow like any other Go int.
// Values built as struct literals that break the zero-sum rule are not rejected;
// their geometry is simply meaningless.
//
// The pointy/flat layouts and the rounding and line algorithms follow
// https://www.redblobgames.com/grids/hexagons/
package hexgrid

import "fmt"

// Hex is an integer cube coordinate.
type Hex struct {
	Q, R, S int
}

// NewHex returns the cube coordinate (q, r, s).
// The caller is responsible for q+r+s == 0.
func NewHex(q, r, s int) Hex {
	return Hex{Q: q, R: r, S: s}
}

// Add returns a+b.
func (a Hex) Add(b Hex) Hex {
	return Hex{a.Q + b.Q, a.R + b.R, a.S + b.S}
}

// Subtract returns a-b.
func (a Hex) Subtract(b Hex) Hex {
	return Hex{a.Q - b.Q, a.R - b.R, a.S - b.S}
}

// Scale multiplies every component by k.
func (a Hex) Scale(k int) Hex {
	return Hex{a.Q * k, a.R * k, a.S * k}
}

// Divide divides every component by k, truncating toward zero.
// It only undoes Scale(k) when k divides all three components.
func (a Hex) Divide(k int) Hex {
	return Hex{a.Q / k, a.R / k, a.S / k}
}

// Negate returns -a.
func (a Hex) Negate() Hex {
	return Hex{-a.Q, -a.R, -a.S}
}

// Length is the number of steps from the origin to a.
func (a Hex) Length() int {
	return (abs(a.Q) + abs(a.R) + abs(a.S)) / 2
}

// DistanceTo returns the number of steps between a and b.
func (a Hex) DistanceTo(b Hex) int {
	return a.Subtract(b).Length()
}

// RotateLeft rotates a by 60 degrees around the origin.
func (a Hex) RotateLeft() Hex {
	return Hex{-a.S, -a.Q, -a.R}
}

// RotateRight rotates a by 60 degrees around the origin, opposite to RotateLeft.
func (a Hex) RotateRight() Hex {
	return Hex{-a.R, -a.S, -a.Q}
}

// Neighbor returns the adjacent hex in direction d.
func (a Hex) Neighbor(d Direction) Hex {
	return a.Add(d.Hex())
}

// Neighbors returns the six adjacent hexes in direction order.
func (a Hex) Neighbors() [6]Hex {
	var result [6]Hex
	for i, dir := range directions {
		result[i] = a.Add(dir)
	}
	return result
}

// InRange returns every hex within n steps of a, including a itself.
// n must not be negative.
func (a Hex) InRange(n int) []Hex {
	result := make([]Hex, 0, 1+3*n*(n+1))
	for q := -n; q <= n; q++ {
		for r := max(-n, -q-n); r <= min(n, -q+n); r++ {
			result = append(result, a.Add(Hex{q, r, -q - r}))
		}
	}
	return result
}

// Fractional widens a to a FractionalHex.
func (a Hex) Fractional() FractionalHex {
	return FractionalHex{float64(a.Q), float64(a.R), float64(a.S)}
}

// Nudge widens a and shifts it by a tiny asymmetric epsilon.
// Interpolating between nudged endpoints keeps samples off exact rounding ties,
// so a line between two hexes does not depend on which end it was drawn from.
func (a Hex) Nudge() FractionalHex {
	return FractionalHex{
		Q: float64(a.Q) + 1e-6,
		R: float64(a.R) + 1e-6,
		S: float64(a.S) - 2e-6,
	}
}

func (a Hex) String() string {
	return fmt.Sprintf("(%d, %d, %d)", a.Q, a.R, a.S)
}

// Key packs a into a single integer: uint32(q) in the low half and uint32(r) in the high half.
// S is not stored. Keys are unique while q and r fit in an int32;
// beyond that range the halves wrap and distinct hexes can share a key.
func (a Hex) Key() uint64 {
	return uint64(uint32(a.R))<<32 | uint64(uint32(a.Q))
}

// HexFromKey reverses Key.
func HexFromKey(k uint64) Hex {
	q := int(int32(uint32(k)))
	r := int(int32(uint32(k >> 32)))
	return Hex{q, r, -q - r}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
