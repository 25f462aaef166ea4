package hexgrid

import "math"

// FractionalHex is a real valued cube coordinate.
// It shows up as the result of pixel conversion and interpolation.
// Components only approximately sum to zero; use Round to get back to a Hex.
type FractionalHex struct {
	Q, R, S float64
}

// Add returns a+b.
func (a FractionalHex) Add(b FractionalHex) FractionalHex {
	return FractionalHex{a.Q + b.Q, a.R + b.R, a.S + b.S}
}

// Subtract returns a-b.
func (a FractionalHex) Subtract(b FractionalHex) FractionalHex {
	return FractionalHex{a.Q - b.Q, a.R - b.R, a.S - b.S}
}

// AddHex returns a+h.
func (a FractionalHex) AddHex(h Hex) FractionalHex {
	return a.Add(h.Fractional())
}

// SubtractHex returns a-h.
func (a FractionalHex) SubtractHex(h Hex) FractionalHex {
	return a.Subtract(h.Fractional())
}

// Scale multiplies every component by f.
func (a FractionalHex) Scale(f float64) FractionalHex {
	return FractionalHex{a.Q * f, a.R * f, a.S * f}
}

// Divide divides every component by f.
func (a FractionalHex) Divide(f float64) FractionalHex {
	return FractionalHex{a.Q / f, a.R / f, a.S / f}
}

// Negate returns -a.
func (a FractionalHex) Negate() FractionalHex {
	return FractionalHex{-a.Q, -a.R, -a.S}
}

// Lerp interpolates componentwise between a (t=0) and b (t=1).
func (a FractionalHex) Lerp(b FractionalHex, t float64) FractionalHex {
	return FractionalHex{
		Q: lerp(a.Q, b.Q, t),
		R: lerp(a.R, b.R, t),
		S: lerp(a.S, b.S, t),
	}
}

// Round returns the Hex containing a.
//
// Each component is rounded on its own, then the component that moved the most
// is rebuilt from the other two so the result sums to zero.
// Ties are settled in q, r, s order: q is only rebuilt when its change is strictly
// larger than both others, and r only when strictly larger than s.
// Otherwise s is rebuilt.
func (a FractionalHex) Round() Hex {
	q := math.Round(a.Q)
	r := math.Round(a.R)
	s := math.Round(a.S)

	dq := math.Abs(q - a.Q)
	dr := math.Abs(r - a.R)
	ds := math.Abs(s - a.S)

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		s = -q - r
	}
	return Hex{int(q), int(r), int(s)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
