package hexmap

import (
	"errors"
	"fmt"
	"os"

	"github.com/Travis-Britz/hexgrid"
	"gopkg.in/yaml.v3"
)

// Shapes accepted by a Definition.
const (
	ShapeParallelogram = "parallelogram"
	ShapeTriangle      = "triangle"
	ShapeHexagon       = "hexagon"
	ShapeRectangle     = "rectangle"
)

// Orientations accepted by a Definition.
const (
	OrientationPointy = "pointy"
	OrientationFlat   = "flat"
)

var ErrInvalidDefinition = errors.New("hexmap: invalid definition")

// DefinitionError reports the field of a Definition that failed validation.
type DefinitionError struct {
	Field  string
	Reason string
}

func (e *DefinitionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidDefinition, e.Field, e.Reason)
}

func (e *DefinitionError) Unwrap() error {
	return ErrInvalidDefinition
}

// Definition describes a map: its shape, how it is laid out in pixels,
// and the seed used to generate terrain.
//
//	shape: hexagon
//	size: 3
//	orientation: pointy
//	hex_size: {x: 24, y: 24}
//	seed: 42
type Definition struct {
	Shape string `yaml:"shape"`

	// Width and Height size parallelograms and rectangles.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Size is the triangle size or hexagon radius.
	Size int `yaml:"size"`

	Orientation string        `yaml:"orientation"`
	HexSize     hexgrid.Point `yaml:"hex_size"`
	Origin      hexgrid.Point `yaml:"origin"`
	Seed        int64         `yaml:"seed"`
}

// ParseDefinition decodes a YAML definition, fills in defaults, and validates it.
func ParseDefinition(data []byte) (Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("hexmap: parse definition: %w", err)
	}

	if d.Orientation == "" {
		d.Orientation = OrientationPointy
	}
	if d.HexSize == (hexgrid.Point{}) {
		d.HexSize = hexgrid.Point{X: 24, Y: 24}
	}

	if err := d.Validate(); err != nil {
		return Definition{}, err
	}
	return d, nil
}

// LoadDefinition reads and parses the definition file at path.
func LoadDefinition(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("hexmap: load definition: %w", err)
	}
	d, err := ParseDefinition(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Validate returns a *DefinitionError for the first problem found.
func (d Definition) Validate() error {
	invalid := func(field, format string, args ...any) error {
		return &DefinitionError{Field: field, Reason: fmt.Sprintf(format, args...)}
	}

	switch d.Shape {
	case ShapeParallelogram, ShapeRectangle:
		if d.Width < 0 {
			return invalid("width", "must not be negative; got %d", d.Width)
		}
		if d.Height < 0 {
			return invalid("height", "must not be negative; got %d", d.Height)
		}
	case ShapeTriangle, ShapeHexagon:
		if d.Size < 0 {
			return invalid("size", "must not be negative; got %d", d.Size)
		}
	case "":
		return invalid("shape", "is required")
	default:
		return invalid("shape", "unknown shape %q", d.Shape)
	}

	switch d.Orientation {
	case OrientationPointy, OrientationFlat:
	default:
		return invalid("orientation", "unknown orientation %q", d.Orientation)
	}

	if d.HexSize.X == 0 || d.HexSize.Y == 0 {
		return invalid("hex_size", "x and y must be non-zero; got %v", d.HexSize)
	}
	return nil
}

// Layout returns the pixel layout described by d.
func (d Definition) Layout() hexgrid.Layout {
	o := hexgrid.Pointy()
	if d.Orientation == OrientationFlat {
		o = hexgrid.Flat()
	}
	return hexgrid.NewLayout(o, d.HexSize, d.Origin)
}

// Hexes generates the coordinates of the map shape.
// An invalid shape yields an empty set; call Validate first.
func (d Definition) Hexes() hexgrid.Set {
	switch d.Shape {
	case ShapeParallelogram:
		return hexgrid.Parallelogram(d.Width, d.Height)
	case ShapeTriangle:
		return hexgrid.Triangle(d.Size)
	case ShapeHexagon:
		return hexgrid.Hexagon(d.Size)
	case ShapeRectangle:
		return hexgrid.Rectangle(d.Width, d.Height)
	default:
		return hexgrid.Set{}
	}
}
