package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/Travis-Britz/hexgrid"
	"github.com/Travis-Britz/hexgrid/hexmap"
)

// margin is the number of pixels left around a fitted map.
const margin = 4

// tiledMap is a definition turned into terrain tiles,
// along with the layout and canvas every renderer shares.
type tiledMap struct {
	def    hexmap.Definition
	layout hexgrid.Layout
	canvas image.Rectangle
	tiles  hexmap.Map[hexmap.Tile]
}

func loadTiledMap(path string) (*tiledMap, error) {
	def, err := hexmap.LoadDefinition(path)
	if err != nil {
		return nil, err
	}
	return newTiledMap(def)
}

// newTiledMap keeps the definition's origin when the whole map lands at non-negative pixels.
// Otherwise the origin is moved so the map fits the canvas.
func newTiledMap(def hexmap.Definition) (*tiledMap, error) {
	layout := def.Layout()
	hexes := def.Hexes()
	coords := hexes.Slice()

	bounds, err := hexmap.Bounds(layout, coords)
	if err != nil {
		return nil, fmt.Errorf("definition has no hexes: %w", err)
	}
	canvas := image.Rect(0, 0, bounds.Max.X+margin, bounds.Max.Y+margin)
	if bounds.Min.X < 0 || bounds.Min.Y < 0 {
		slog.Debug("moving origin to fit the map", "bounds", bounds, "origin", layout.Origin)
		layout, canvas, err = hexmap.Fit(layout, coords, margin)
		if err != nil {
			return nil, err
		}
	}

	m := &tiledMap{
		def:    def,
		layout: layout,
		canvas: canvas,
		tiles:  hexmap.New(hexes, hexmap.TerrainFactory(layout, def.Seed)),
	}
	slog.Debug("built map",
		"shape", def.Shape,
		"hexes", len(m.tiles),
		"orientation", layout.Orientation,
		"canvas", canvas,
		"regions", len(hexmap.Components(hexes)),
	)
	return m, nil
}

type pickResult struct {
	Q      int    `json:"q"`
	R      int    `json:"r"`
	S      int    `json:"s"`
	Inside bool   `json:"inside"`
	Kind   string `json:"kind,omitempty"`
}

// pick finds the hex under pixel x,y of the rendered map.
func (m *tiledMap) pick(x, y float64) pickResult {
	h := m.layout.PixelToHex(hexgrid.Point{X: x, Y: y}).Round()
	res := pickResult{Q: h.Q, R: h.R, S: h.S}
	if tile, ok := m.tiles[h]; ok {
		res.Inside = true
		res.Kind = tile.Kind.String()
	}
	return res
}
