package hexgrid

// Direction indexes one of the six neighbor directions.
// Valid values are 0 through 5; use NewDirection to normalise any int.
type Direction int

// directions is ordered by 60 degree rotation starting from (0,-1,1).
// It must never be modified.
var directions = [6]Hex{
	{0, -1, 1},
	{1, -1, 0},
	{1, 0, -1},
	{0, 1, -1},
	{-1, 1, 0},
	{-1, 0, 1},
}

// NewDirection reduces d modulo 6 into [0,6), including for negative d.
func NewDirection(d int) Direction {
	d %= 6
	if d < 0 {
		d += 6
	}
	return Direction(d)
}

// Directions lists all six directions in order.
func Directions() [6]Direction {
	return [6]Direction{0, 1, 2, 3, 4, 5}
}

// Add composes two rotations: the raw indices are summed modulo 6.
// This is not vector addition.
func (d Direction) Add(o Direction) Direction {
	return NewDirection(int(d) + int(o))
}

// Opposite points the other way.
func (d Direction) Opposite() Direction {
	return d.Add(3)
}

// Hex returns the unit vector for d.
func (d Direction) Hex() Hex {
	return directions[NewDirection(int(d))]
}
