package hexmap

import (
	"fmt"
	"io"
	"text/template"

	"github.com/Travis-Britz/hexgrid"
)

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="{{.ViewBox}}">
<style>
polygon {
	stroke: #ffffff;
	stroke-width: 1px;
}
polygon:hover {
	filter: brightness(1.5);
}
</style>
{{range .Hexes}}<polygon points="{{range .Corners}}{{printf "%.2f" .X}},{{printf "%.2f" .Y}} {{end}}" class="{{.Class}}" data-q="{{.Hex.Q}}" data-r="{{.Hex.R}}" data-s="{{.Hex.S}}"/>
{{end}}</svg>
`

var svgTmpl = template.Must(template.New("hexsvg").Parse(svgTemplate))

// SVG returns an SVG document with one polygon per hex of m, in coordinate order.
// class names the CSS class of each polygon; callers own the stylesheet for those classes.
func SVG[T any](layout hexgrid.Layout, m Map[T], class func(T) string) io.WriterTo {
	svg := svgMap{}
	coords := m.Coords()
	if bounds, err := Bounds(layout, coords); err == nil {
		svg.ViewBox = fmt.Sprintf("%d %d %d %d", bounds.Min.X, bounds.Min.Y, bounds.Dx(), bounds.Dy())
	} else {
		svg.ViewBox = "0 0 0 0"
	}
	for _, h := range coords {
		svg.Hexes = append(svg.Hexes, svgHex{
			Hex:     h,
			Class:   class(m[h]),
			Corners: layout.Corners(h),
		})
	}
	return svg
}

type svgHex struct {
	Hex     hexgrid.Hex
	Class   string
	Corners [6]hexgrid.Point
}

type svgMap struct {
	ViewBox string
	Hexes   []svgHex
}

func (svg svgMap) WriteTo(w io.Writer) (int64, error) {
	counter := &counter{w: w}
	err := svgTmpl.Execute(counter, svg)
	return int64(counter.n), err
}

type counter struct {
	n int
	w io.Writer
}

func (c *counter) Write(p []byte) (n int, err error) {
	n, err = c.w.Write(p)
	c.n += n
	return
}
