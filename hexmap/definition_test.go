package hexmap_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/hexgrid/hexmap"
)

const islandYAML = `
shape: hexagon
size: 3
orientation: flat
hex_size: {x: 16, y: 12}
origin: {x: 100, y: 80}
seed: 42
`

func TestParseDefinition(t *testing.T) {
	d, err := hexmap.ParseDefinition([]byte(islandYAML))
	if err != nil {
		t.Fatal(err)
	}
	expected := hexmap.Definition{
		Shape:       hexmap.ShapeHexagon,
		Size:        3,
		Orientation: hexmap.OrientationFlat,
		HexSize:     hexgrid.Point{X: 16, Y: 12},
		Origin:      hexgrid.Point{X: 100, Y: 80},
		Seed:        42,
	}
	if d != expected {
		t.Errorf("expected %+v; got %+v", expected, d)
	}

	l := d.Layout()
	if l.Orientation != hexgrid.Flat() || l.Size != d.HexSize || l.Origin != d.Origin {
		t.Errorf("unexpected layout %+v", l)
	}
	if got := d.Hexes().Len(); got != 37 {
		t.Errorf("expected 37 hexes; got %d", got)
	}
}

func TestParseDefinitionDefaults(t *testing.T) {
	d, err := hexmap.ParseDefinition([]byte("shape: rectangle\nwidth: 4\nheight: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Orientation != hexmap.OrientationPointy {
		t.Errorf("expected pointy orientation by default; got %q", d.Orientation)
	}
	if d.HexSize != (hexgrid.Point{X: 24, Y: 24}) {
		t.Errorf("expected default hex size; got %v", d.HexSize)
	}
	if got := d.Hexes().Len(); got != 15 {
		t.Errorf("expected 15 hexes; got %d", got)
	}
}

func TestDefinitionValidate(t *testing.T) {
	valid := hexmap.Definition{
		Shape:       hexmap.ShapeParallelogram,
		Width:       3,
		Height:      3,
		Orientation: hexmap.OrientationPointy,
		HexSize:     hexgrid.Point{X: 10, Y: -10},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid definition; got %s", err)
	}

	tt := map[string]struct {
		Modify func(*hexmap.Definition)
		Field  string
	}{
		"missing shape":       {func(d *hexmap.Definition) { d.Shape = "" }, "shape"},
		"unknown shape":       {func(d *hexmap.Definition) { d.Shape = "circle" }, "shape"},
		"negative width":      {func(d *hexmap.Definition) { d.Width = -1 }, "width"},
		"negative height":     {func(d *hexmap.Definition) { d.Height = -2 }, "height"},
		"negative size":       {func(d *hexmap.Definition) { d.Shape = hexmap.ShapeTriangle; d.Size = -1 }, "size"},
		"unknown orientation": {func(d *hexmap.Definition) { d.Orientation = "sideways" }, "orientation"},
		"zero hex size":       {func(d *hexmap.Definition) { d.HexSize.X = 0 }, "hex_size"},
	}
	for name, tc := range tt {
		d := valid
		tc.Modify(&d)
		err := d.Validate()
		if !errors.Is(err, hexmap.ErrInvalidDefinition) {
			t.Errorf("%s: expected ErrInvalidDefinition; got %v", name, err)
			continue
		}
		var derr *hexmap.DefinitionError
		if !errors.As(err, &derr) {
			t.Errorf("%s: expected *DefinitionError; got %T", name, err)
			continue
		}
		if derr.Field != tc.Field {
			t.Errorf("%s: expected field %q; got %q", name, tc.Field, derr.Field)
		}
	}
}

func TestParseDefinitionErrors(t *testing.T) {
	if _, err := hexmap.ParseDefinition([]byte("shape: [unclosed")); err == nil {
		t.Errorf("expected a yaml error")
	} else if errors.Is(err, hexmap.ErrInvalidDefinition) {
		t.Errorf("expected a parse error rather than a validation error; got %s", err)
	}

	if _, err := hexmap.ParseDefinition([]byte("shape: hexagon\nsize: -3\n")); !errors.Is(err, hexmap.ErrInvalidDefinition) {
		t.Errorf("expected ErrInvalidDefinition; got %v", err)
	}
}

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "island.yaml")
	if err := os.WriteFile(path, []byte(islandYAML), 0600); err != nil {
		t.Fatal(err)
	}
	d, err := hexmap.LoadDefinition(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Seed != 42 {
		t.Errorf("expected seed 42; got %d", d.Seed)
	}

	if _, err := hexmap.LoadDefinition(filepath.Join(dir, "missing.yaml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist; got %v", err)
	}
}
