package hexgrid

import "fmt"

// Offset is a column/row grid position.
// Odd columns are shoved so the grid lines up as a rectangle.
type Offset struct {
	Col, Row int
}

// Offset converts a to column/row form.
//
// Both directions use Go's truncating / and %, which is what keeps
// the conversion a bijection for negative columns.
func (a Hex) Offset() Offset {
	return Offset{
		Col: a.Q,
		Row: a.R + (a.Q+a.Q%2)/2,
	}
}

// Hex converts o back to cube form.
func (o Offset) Hex() Hex {
	q := o.Col
	r := o.Row - (o.Col+o.Col%2)/2
	return Hex{q, r, -q - r}
}

// Add sums the columns and rows.
// This is grid arithmetic only: a.Add(b).Hex() is generally not a.Hex().Add(b.Hex()).
func (o Offset) Add(b Offset) Offset {
	return Offset{o.Col + b.Col, o.Row + b.Row}
}

func (o Offset) String() string {
	return fmt.Sprintf("[%d, %d]", o.Col, o.Row)
}
