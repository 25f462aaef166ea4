package hexgrid

// Line returns the hexes on the straight segment from a to b, both included.
// The result has a.DistanceTo(b)+1 entries and each consecutive pair is adjacent.
//
// Both endpoints are nudged before interpolation so that samples landing
// exactly between two hexes round the same way every time.
func Line(a, b Hex) []Hex {
	n := a.DistanceTo(b)
	step := 1 / float64(max(n, 1))

	start, end := a.Nudge(), b.Nudge()
	results := make([]Hex, 0, n+1)
	for i := 0; i <= n; i++ {
		results = append(results, start.Lerp(end, step*float64(i)).Round())
	}
	return results
}
