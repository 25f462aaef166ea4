package hexgrid_test

import (
	"testing"

	"github.com/Travis-Britz/hexgrid"
)

func TestNewDirection(t *testing.T) {
	tt := []struct {
		in       int
		expected hexgrid.Direction
	}{
		{0, 0},
		{5, 5},
		{6, 0},
		{13, 1},
		{-1, 5},
		{-6, 0},
		{-7, 5},
	}
	for _, tc := range tt {
		if got := hexgrid.NewDirection(tc.in); got != tc.expected {
			t.Errorf("NewDirection(%d): expected %d; got %d", tc.in, tc.expected, got)
		}
	}
}

func TestDirectionAdd(t *testing.T) {
	tt := []struct {
		a, b, expected hexgrid.Direction
	}{
		{0, 0, 0},
		{1, 2, 3},
		{4, 5, 3},
		{5, 1, 0},
	}
	for _, tc := range tt {
		if got := tc.a.Add(tc.b); got != tc.expected {
			t.Errorf("%d.Add(%d): expected %d; got %d", tc.a, tc.b, tc.expected, got)
		}
	}
}

func TestDirectionTable(t *testing.T) {
	expected := [6]hexgrid.Hex{
		hexgrid.NewHex(0, -1, 1),
		hexgrid.NewHex(1, -1, 0),
		hexgrid.NewHex(1, 0, -1),
		hexgrid.NewHex(0, 1, -1),
		hexgrid.NewHex(-1, 1, 0),
		hexgrid.NewHex(-1, 0, 1),
	}
	for i, d := range hexgrid.Directions() {
		if d.Hex() != expected[i] {
			t.Errorf("direction %d: expected %v; got %v", i, expected[i], d.Hex())
		}
		if d.Hex().Length() != 1 {
			t.Errorf("direction %d is not a unit vector", i)
		}
		if got := d.Opposite().Hex(); got != d.Hex().Negate() {
			t.Errorf("direction %d opposite: expected %v; got %v", i, d.Hex().Negate(), got)
		}
		// consecutive directions are one 60 degree rotation apart
		if next := d.Add(1).Hex(); next != d.Hex().RotateLeft() && next != d.Hex().RotateRight() {
			t.Errorf("direction %d+1 = %v is not a rotation of %v", i, next, d.Hex())
		}
	}
	if got := hexgrid.Direction(8).Hex(); got != expected[2] {
		t.Errorf("out of range direction: expected %v; got %v", expected[2], got)
	}
}
