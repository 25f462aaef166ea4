package hexgrid

import (
	"cmp"
	"slices"
)

// Set is an unordered collection of hexes.
type Set map[Hex]struct{}

// NewSet returns a Set holding hexes.
func NewSet(hexes ...Hex) Set {
	s := make(Set, len(hexes))
	for _, h := range hexes {
		s.Add(h)
	}
	return s
}

// Add inserts h.
func (s Set) Add(h Hex) {
	s[h] = struct{}{}
}

// Contains reports whether h is in s.
func (s Set) Contains(h Hex) bool {
	_, ok := s[h]
	return ok
}

// Len returns the number of hexes in s.
func (s Set) Len() int {
	return len(s)
}

// Slice returns the hexes ordered by q, then r.
func (s Set) Slice() []Hex {
	hexes := make([]Hex, 0, len(s))
	for h := range s {
		hexes = append(hexes, h)
	}
	SortHexes(hexes)
	return hexes
}

// SortHexes orders hexes by q, then r.
func SortHexes(hexes []Hex) {
	slices.SortFunc(hexes, func(a, b Hex) int {
		if c := cmp.Compare(a.Q, b.Q); c != 0 {
			return c
		}
		return cmp.Compare(a.R, b.R)
	})
}

// The shape generators below expect non-negative dimensions.
// Negative values produce empty or nonsensical sets rather than an error.

// Parallelogram returns width*height hexes with q in [0,width) and r in [0,height).
func Parallelogram(width, height int) Set {
	s := make(Set, max(width*height, 0))
	for q := 0; q < width; q++ {
		for r := 0; r < height; r++ {
			s.Add(Hex{q, r, -q - r})
		}
	}
	return s
}

// Triangle returns a triangle with size+1 hexes along each side.
func Triangle(size int) Set {
	s := make(Set)
	for q := 0; q <= size; q++ {
		for r := size - q; r <= size; r++ {
			s.Add(Hex{q, r, -q - r})
		}
	}
	return s
}

// Hexagon returns every hex within radius steps of the origin.
func Hexagon(radius int) Set {
	s := make(Set)
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			s.Add(Hex{q, r, -q - r})
		}
	}
	return s
}

// Rectangle returns the hexes at columns [0,width] and rows [0,height] of the offset grid.
// Both bounds are inclusive.
func Rectangle(width, height int) Set {
	s := make(Set)
	for col := 0; col <= width; col++ {
		for row := 0; row <= height; row++ {
			s.Add(Offset{Col: col, Row: row}.Hex())
		}
	}
	return s
}

// Ring returns the hexes exactly radius steps from center, walking once around.
// A radius of 0 returns only center.
func Ring(center Hex, radius int) []Hex {
	if radius <= 0 {
		return []Hex{center}
	}
	result := make([]Hex, 0, 6*radius)
	// start on the corner reached by walking out along direction 4,
	// then walk each of the six sides
	cur := center.Add(directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			result = append(result, cur)
			cur = cur.Add(directions[side])
		}
	}
	return result
}
