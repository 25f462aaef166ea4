package hexmap

import (
	"math"

	"github.com/Travis-Britz/hexgrid"
)

// Outline generates a list of pixel coordinates that define a polygon shaped like the outside of a region.
//
// The walk starts on the leftmost hex, on the edge that faces furthest left,
// so it is guaranteed to begin on the outer boundary.
// Only the region connected to that hex is traced and holes are ignored.
// The final point does not return to the start.
// The <polygon> SVG element is self-closing, and so is a draw2d path after Close.
func Outline(hexes []hexgrid.Hex, layout hexgrid.Layout) []hexgrid.Point {
	if len(hexes) == 0 {
		return nil
	}
	region := hexgrid.NewSet(hexes...)

	leftmost := hexes[0]
	minX := layout.HexToPixel(leftmost).X
	for _, h := range hexes[1:] {
		if x := layout.HexToPixel(h).X; x < minX {
			minX = x
			leftmost = h
		}
	}

	// the neighbor across an edge sits at twice the edge midpoint,
	// so the edge with the smallest midpoint x faces a hex left of every region hex
	startCorner := 0
	minEdge := math.Inf(1)
	for c := range 6 {
		if x := edgeMidpoint(layout, c).X; x < minEdge {
			minEdge = x
			startCorner = c
		}
	}

	w := walker{region: region, facing: edgeFacing(layout)}
	start := edge{hex: leftmost, corner: startCorner}
	var path []hexgrid.Point
	for current := start; ; {
		path = append(path, layout.Corners(current.hex)[current.corner])
		current = w.next(current)
		if current == start {
			break
		}
	}
	return path
}

// edge is a boundary edge of a region hex, running from corner to corner+1.
// The neighbor across it is outside the region.
type edge struct {
	hex    hexgrid.Hex
	corner int
}

type walker struct {
	region hexgrid.Set
	facing int
}

// neighbor returns the hex across edge c of h.
func (w walker) neighbor(h hexgrid.Hex, c int) hexgrid.Hex {
	return h.Neighbor(hexgrid.NewDirection(c + w.facing))
}

// next moves to the following boundary edge.
//
// Three hexes meet at the far corner of e: e.hex, the outside hex across e,
// and the hex across the next edge of e.hex.
// If that third hex is in the region the boundary turns onto it,
// along its edge shared with the outside hex.
// Otherwise the boundary continues on e.hex.
func (w walker) next(e edge) edge {
	turn := w.neighbor(e.hex, e.corner+1)
	if w.region.Contains(turn) {
		return edge{hex: turn, corner: wrapCorner(e.corner - 1)}
	}
	return edge{hex: e.hex, corner: wrapCorner(e.corner + 1)}
}

// edgeFacing returns k such that edge c of any hex faces direction c+k.
// Corners and directions both advance 60 degrees at a time in the same rotational sense,
// so k is the same for every edge.
func edgeFacing(layout hexgrid.Layout) int {
	mid := edgeMidpoint(layout, 0)
	origin := layout.HexToPixel(hexgrid.Hex{})
	best, bestDist := 0, math.Inf(1)
	for _, d := range hexgrid.Directions() {
		p := layout.HexToPixel(d.Hex())
		dx := p.X - origin.X - 2*mid.X
		dy := p.Y - origin.Y - 2*mid.Y
		if dist := dx*dx + dy*dy; dist < bestDist {
			best, bestDist = int(d), dist
		}
	}
	return best
}

// edgeMidpoint returns the offset of the middle of edge c from the hex center.
func edgeMidpoint(layout hexgrid.Layout, c int) hexgrid.Point {
	a := layout.CornerOffset(c)
	b := layout.CornerOffset(c + 1)
	return hexgrid.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func wrapCorner(c int) int {
	c %= 6
	if c < 0 {
		c += 6
	}
	return c
}
