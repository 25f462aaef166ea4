package hexmap

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Travis-Britz/hexgrid"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
)

var (
	ErrNoHexes          = errors.New("hexmap: no hexes given")
	ErrEmptyImage       = errors.New("hexmap: image cannot be empty")
	ErrImageNotAnchored = errors.New("hexmap: image bounds must start at 0,0")
)

// Style describes how a single hex is painted.
// A nil Fill skips filling; a nil Stroke or a Width of zero skips the border.
type Style struct {
	Fill   color.Color
	Stroke color.Color
	Width  float64
}

// Draw paints every hex of m onto img, placed by layout.
// style is called once per hex with its value.
//
// Layout coordinates are pixel coordinates of img.
// Use [Fit] to find a layout and image size that hold the whole map.
func Draw[T any](img draw.Image, layout hexgrid.Layout, m Map[T], style func(T) Style) error {
	if err := checkCanvas(img); err != nil {
		return err
	}

	gc := draw2dimg.NewGraphicContext(img)
	for _, h := range m.Coords() {
		corners := layout.Corners(h)
		paint(gc, corners[:], style(m[h]))
	}
	return nil
}

// DrawOutline strokes the outer boundary of the region formed by hexes.
func DrawOutline(img draw.Image, layout hexgrid.Layout, hexes []hexgrid.Hex, stroke color.Color, width float64) error {
	if err := checkCanvas(img); err != nil {
		return err
	}
	if len(hexes) == 0 {
		return ErrNoHexes
	}

	gc := draw2dimg.NewGraphicContext(img)
	paint(gc, Outline(hexes, layout), Style{Stroke: stroke, Width: width})
	return nil
}

func checkCanvas(img draw.Image) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	if (img.Bounds().Min != image.Point{}) {
		// draw2dimg behaves in unexpected ways when img does not start at 0,0.
		return ErrImageNotAnchored
	}
	return nil
}

func paint(gc draw2d.GraphicContext, polygon []hexgrid.Point, s Style) {
	fill := s.Fill != nil
	stroke := s.Stroke != nil && s.Width > 0
	if len(polygon) == 0 || !fill && !stroke {
		return
	}

	gc.BeginPath()
	for i, p := range polygon {
		if i == 0 {
			gc.MoveTo(p.X, p.Y)
		} else {
			gc.LineTo(p.X, p.Y)
		}
	}
	gc.Close()

	if fill {
		gc.SetFillColor(s.Fill)
	}
	if stroke {
		gc.SetStrokeColor(s.Stroke)
		gc.SetLineWidth(s.Width)
	}
	switch {
	case fill && stroke:
		gc.FillStroke()
	case fill:
		gc.Fill()
	default:
		gc.Stroke()
	}
}

// Bounds returns the smallest integer rectangle holding every corner of hexes.
func Bounds(layout hexgrid.Layout, hexes []hexgrid.Hex) (image.Rectangle, error) {
	if len(hexes) == 0 {
		return image.Rectangle{}, ErrNoHexes
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, h := range hexes {
		for _, p := range layout.Corners(h) {
			minX = min(minX, p.X)
			minY = min(minY, p.Y)
			maxX = max(maxX, p.X)
			maxY = max(maxY, p.Y)
		}
	}

	return image.Rect(
		int(math.Floor(minX)),
		int(math.Floor(minY)),
		int(math.Ceil(maxX)),
		int(math.Ceil(maxY)),
	), nil
}

// Fit moves the origin of layout so that hexes land inside an image anchored at 0,0
// with margin pixels to spare on every side.
// It returns the shifted layout and the image rectangle to draw into.
func Fit(layout hexgrid.Layout, hexes []hexgrid.Hex, margin int) (hexgrid.Layout, image.Rectangle, error) {
	bounds, err := Bounds(layout, hexes)
	if err != nil {
		return layout, image.Rectangle{}, err
	}
	shift := image.Pt(margin, margin).Sub(bounds.Min)
	layout.Origin.X += float64(shift.X)
	layout.Origin.Y += float64(shift.Y)
	return layout, image.Rect(0, 0, bounds.Dx()+2*margin, bounds.Dy()+2*margin), nil
}
