package hexmap

import (
	"fmt"
	"image/color"

	"github.com/Travis-Britz/hexgrid"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	Water TerrainKind = iota
	Sand
	Grass
	Forest
	Hills
	Mountain
	Snow
)

// TerrainKind is the surface type of a tile, ordered by rising elevation.
type TerrainKind uint8

// terrainColors are indexed by TerrainKind.
var terrainColors = [...]color.RGBA{
	{0x2b, 0x65, 0xa8, 0xff}, // Water
	{0xe0, 0xd3, 0x8c, 0xff}, // Sand
	{0x6a, 0xa8, 0x4f, 0xff}, // Grass
	{0x2f, 0x6b, 0x34, 0xff}, // Forest
	{0x8c, 0x7a, 0x5b, 0xff}, // Hills
	{0x6e, 0x6e, 0x6e, 0xff}, // Mountain
	{0xf2, 0xf2, 0xf2, 0xff}, // Snow
}

// elevation upper bounds for each kind below Snow
var terrainLevels = [...]float64{0.35, 0.40, 0.55, 0.65, 0.75, 0.85}

func (k TerrainKind) String() string {
	switch k {
	case Water:
		return "water"
	case Sand:
		return "sand"
	case Grass:
		return "grass"
	case Forest:
		return "forest"
	case Hills:
		return "hills"
	case Mountain:
		return "mountain"
	case Snow:
		return "snow"
	default:
		return fmt.Sprintf("invalid_terrain(%d)", k)
	}
}

// Color returns the fill color used when drawing k.
func (k TerrainKind) Color() color.RGBA {
	if int(k) < len(terrainColors) {
		return terrainColors[k]
	}
	return color.RGBA{}
}

func (k TerrainKind) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", k.String())), nil
}

// Tile is the generated content of one hex.
type Tile struct {
	Hex       hexgrid.Hex `json:"hex"`
	Elevation float64     `json:"elevation"`
	Kind      TerrainKind `json:"kind"`
}

// Style paints a tile with its terrain color and a thin dark border.
func (t Tile) Style() Style {
	return Style{Fill: t.Kind.Color(), Stroke: color.RGBA{0x20, 0x20, 0x20, 0xff}, Width: 1}
}

// TerrainFactory returns a factory for [New] that assigns each hex an elevation
// from multi-octave simplex noise.
//
// Noise is sampled at hex centers in a unit-sized copy of layout, so the same seed and
// orientation give the same terrain regardless of pixel size or origin.
func TerrainFactory(layout hexgrid.Layout, seed int64) func(hexgrid.Hex) Tile {
	noise := opensimplex.NewNormalized(seed)
	unit := hexgrid.NewLayout(layout.Orientation, hexgrid.Point{X: 1, Y: 1}, hexgrid.Point{})
	return func(h hexgrid.Hex) Tile {
		p := unit.HexToPixel(h)
		elev := octaveNoise(noise, p.X, p.Y, 4, 0.08, 0.5)
		return Tile{Hex: h, Elevation: elev, Kind: terrainKind(elev)}
	}
}

func terrainKind(elev float64) TerrainKind {
	for i, level := range terrainLevels {
		if elev < level {
			return TerrainKind(i)
		}
	}
	return Snow
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
