package hexgrid_test

import (
	"testing"

	"github.com/Travis-Britz/hexgrid"
)

// sample covers a patch of valid coordinates around the origin.
func sample() []hexgrid.Hex {
	return hexgrid.NewHex(0, 0, 0).InRange(6)
}

func TestHexArithmetic(t *testing.T) {
	a := hexgrid.NewHex(1, -3, 2)
	b := hexgrid.NewHex(3, -7, 4)

	tt := map[string]struct {
		Got      hexgrid.Hex
		Expected hexgrid.Hex
	}{
		"add":              {a.Add(b), hexgrid.NewHex(4, -10, 6)},
		"subtract":         {a.Subtract(b), hexgrid.NewHex(-2, 4, -2)},
		"scale":            {a.Scale(2), hexgrid.NewHex(2, -6, 4)},
		"divide exact":     {b.Scale(3).Divide(3), b},
		"divide truncates": {hexgrid.NewHex(3, -7, 4).Divide(2), hexgrid.NewHex(1, -3, 2)},
		"negate":           {a.Negate(), hexgrid.NewHex(-1, 3, -2)},
		"rotate left":      {a.RotateLeft(), hexgrid.NewHex(-2, -1, 3)},
		"rotate right":     {a.RotateRight(), hexgrid.NewHex(3, -2, -1)},
	}
	for name, tc := range tt {
		if tc.Got != tc.Expected {
			t.Errorf("%s: expected %v; got %v", name, tc.Expected, tc.Got)
		}
	}
}

func TestHexLaws(t *testing.T) {
	zero := hexgrid.Hex{}
	for _, h := range sample() {
		if got := h.Add(h.Negate()); got != zero {
			t.Errorf("%v + -%v: expected origin; got %v", h, h, got)
		}
		if d := h.Add(h); d.Q+d.R+d.S != 0 {
			t.Errorf("%v + %v: components do not sum to zero: %v", h, h, d)
		}
		if got := h.RotateLeft().RotateRight(); got != h {
			t.Errorf("rotate left then right: expected %v; got %v", h, got)
		}
		r := h
		for range 6 {
			r = r.RotateLeft()
		}
		if r != h {
			t.Errorf("six left rotations: expected %v; got %v", h, r)
		}
		if h.RotateLeft().Length() != h.Length() {
			t.Errorf("rotation changed the length of %v", h)
		}
	}
}

func TestHexDistance(t *testing.T) {
	tt := map[string]struct {
		A, B     hexgrid.Hex
		Expected int
	}{
		"same":     {hexgrid.NewHex(2, -1, -1), hexgrid.NewHex(2, -1, -1), 0},
		"adjacent": {hexgrid.NewHex(0, 0, 0), hexgrid.NewHex(1, -1, 0), 1},
		"far":      {hexgrid.NewHex(3, -7, 4), hexgrid.NewHex(0, 0, 0), 7},
		"mixed":    {hexgrid.NewHex(-2, 5, -3), hexgrid.NewHex(3, -1, -2), 6},
	}
	for name, tc := range tt {
		if got := tc.A.DistanceTo(tc.B); got != tc.Expected {
			t.Errorf("%s: expected %d; got %d", name, tc.Expected, got)
		}
		if got := tc.B.DistanceTo(tc.A); got != tc.Expected {
			t.Errorf("%s (reversed): expected %d; got %d", name, tc.Expected, got)
		}
	}
}

func TestNeighbors(t *testing.T) {
	for _, h := range sample() {
		for _, d := range hexgrid.Directions() {
			if dist := h.Neighbor(d).DistanceTo(h); dist != 1 {
				t.Errorf("%v neighbor %d: expected distance 1; got %d", h, d, dist)
			}
		}
	}

	h := hexgrid.NewHex(1, -2, 1)
	seen := hexgrid.NewSet()
	for i, n := range h.Neighbors() {
		if n != h.Neighbor(hexgrid.Direction(i)) {
			t.Errorf("Neighbors()[%d] = %v; Neighbor(%d) = %v", i, n, i, h.Neighbor(hexgrid.Direction(i)))
		}
		seen.Add(n)
	}
	if seen.Len() != 6 {
		t.Errorf("expected 6 distinct neighbors; got %d", seen.Len())
	}
}

func TestInRange(t *testing.T) {
	center := hexgrid.NewHex(2, -3, 1)
	for n := 0; n <= 4; n++ {
		hexes := center.InRange(n)
		if expected := 1 + 3*n*(n+1); len(hexes) != expected {
			t.Errorf("InRange(%d): expected %d hexes; got %d", n, expected, len(hexes))
		}
		unique := hexgrid.NewSet(hexes...)
		if unique.Len() != len(hexes) {
			t.Errorf("InRange(%d): returned duplicates", n)
		}
		for _, h := range hexes {
			if h.Q+h.R+h.S != 0 {
				t.Errorf("InRange(%d): %v does not sum to zero", n, h)
			}
			if d := h.DistanceTo(center); d > n {
				t.Errorf("InRange(%d): %v is %d steps away", n, h, d)
			}
		}
	}
}

func TestKey(t *testing.T) {
	seen := map[uint64]hexgrid.Hex{}
	for _, h := range sample() {
		k := h.Key()
		if other, dup := seen[k]; dup {
			t.Errorf("%v and %v share key %d", h, other, k)
		}
		seen[k] = h
		if got := hexgrid.HexFromKey(k); got != h {
			t.Errorf("HexFromKey(%v.Key()): got %v", h, got)
		}
	}
	big := hexgrid.NewHex(1<<30, -(1 << 29), -(1<<30 - 1<<29))
	if got := hexgrid.HexFromKey(big.Key()); got != big {
		t.Errorf("expected %v; got %v", big, got)
	}
}

func TestHexString(t *testing.T) {
	if s := hexgrid.NewHex(1, -3, 2).String(); s != "(1, -3, 2)" {
		t.Errorf("expected (1, -3, 2); got %s", s)
	}
}
