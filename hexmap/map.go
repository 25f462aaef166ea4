// Package hexmap assembles hexgrid coordinates into maps and renders them.
package hexmap

import (
	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/structures/stack"
)

// Map holds one value per hex coordinate.
type Map[T any] map[hexgrid.Hex]T

// New builds a Map with one entry for every hex in hexes.
// factory is called once per coordinate to create its value.
func New[T any](hexes hexgrid.Set, factory func(hexgrid.Hex) T) Map[T] {
	m := make(Map[T], hexes.Len())
	for h := range hexes {
		m[h] = factory(h)
	}
	return m
}

// Coords returns the coordinates of m ordered by q, then r.
func (m Map[T]) Coords() []hexgrid.Hex {
	hexes := make([]hexgrid.Hex, 0, len(m))
	for h := range m {
		hexes = append(hexes, h)
	}
	hexgrid.SortHexes(hexes)
	return hexes
}

// Set returns the coordinates of m as a Set.
func (m Map[T]) Set() hexgrid.Set {
	s := make(hexgrid.Set, len(m))
	for h := range m {
		s.Add(h)
	}
	return s
}

// Reachable returns every hex in hexes that can be reached from start
// by stepping between neighbors without leaving hexes.
// The result is empty when start is not in hexes.
func Reachable(hexes hexgrid.Set, start hexgrid.Hex) hexgrid.Set {
	visited := hexgrid.Set{}
	if !hexes.Contains(start) {
		return visited
	}

	frontier := &stack.Stack[hexgrid.Hex]{}
	visited.Add(start)
	for current, more := start, true; more; current, more = frontier.Pop() {
		for _, next := range current.Neighbors() {
			if visited.Contains(next) || !hexes.Contains(next) {
				continue
			}
			frontier.Push(next)
			visited.Add(next)
		}
	}
	return visited
}

// Components splits hexes into connected regions.
// Regions are ordered by their smallest hex (q, then r).
func Components(hexes hexgrid.Set) []hexgrid.Set {
	var regions []hexgrid.Set
	seen := hexgrid.Set{}
	for _, h := range hexes.Slice() {
		if seen.Contains(h) {
			continue
		}
		region := Reachable(hexes, h)
		for r := range region {
			seen.Add(r)
		}
		regions = append(regions, region)
	}
	return regions
}
