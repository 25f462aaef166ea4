package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/Travis-Britz/hexgrid/hexmap"
	"github.com/anthonynsimon/bild/transform"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	flagOutput     string
	flagFormat     string
	flagThumbnail  int
	flagBackground string
)

var renderCmd = &cobra.Command{
	Use:   "render <definition.yaml>",
	Short: "Render a map to png, svg, or json",
	Long: `Render builds the map described by a definition file, assigns terrain to every hex,
and writes it in the chosen format.

Formats:
  png   - filled hexes drawn onto a transparent or background image
  svg   - one polygon per hex, classed by terrain
  json  - the list of tiles

Examples:
  hexmapgen render island.yaml -o island.png
  hexmapgen render island.yaml --thumbnail 128 -o thumb.png
  hexmapgen render island.yaml --background parchment.webp -o island.png
  hexmapgen render island.yaml --format json -o -`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file, or - for stdout")
	renderCmd.Flags().StringVar(&flagFormat, "format", "png", "Output format (png, svg, json)")
	renderCmd.Flags().IntVar(&flagThumbnail, "thumbnail", 0, "Scale png output to this width in pixels")
	renderCmd.Flags().StringVar(&flagBackground, "background", "", "Image (png or webp) to draw the map over, stretched to the map size")
}

func runRender(cmd *cobra.Command, args []string) error {
	format, found := formats[flagFormat]
	if !found {
		return fmt.Errorf("invalid output format %q: valid options for --format are %s", flagFormat, formatNames())
	}
	output := flagOutput
	if output == "" {
		output = defaultOutput(args[0], format)
	}

	m, err := loadTiledMap(args[0])
	if err != nil {
		return err
	}

	opts := pngOptions{thumbnail: flagThumbnail}
	if flagBackground != "" {
		opts.background, err = loadImage(flagBackground)
		if err != nil {
			return err
		}
	}

	slog.Info("rendering", "definition", args[0], "format", flagFormat, "output", output, "hexes", len(m.tiles))
	rc := format.fn(m, opts)
	defer rc.Close()
	return writeToOutput(rc, output, cmd.OutOrStdout())
}

// defaultOutput names the output file after the definition file.
func defaultOutput(definition string, format renderable) string {
	return strings.TrimSuffix(definition, filepath.Ext(definition)) + format.extension
}

type pngOptions struct {
	background image.Image
	thumbnail  int
}

type renderingFn func(*tiledMap, pngOptions) io.ReadCloser

type renderable struct {
	fn        renderingFn
	extension string
	mimetype  string
}

var formats = map[string]renderable{
	"png": {
		RenderPNG,
		".png",
		"image/png",
	},
	"svg": {
		RenderSVG,
		".svg",
		"image/svg+xml",
	},
	"json": {
		RenderJSON,
		".json",
		"application/json",
	},
}

func formatNames() string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, fmt.Sprintf("%q", name))
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}

// drawMap paints the terrain tiles onto a new image the size of the map canvas.
func drawMap(m *tiledMap, background image.Image) (*image.RGBA, error) {
	img := image.NewRGBA(m.canvas)
	if background != nil {
		if background.Bounds().Size() != m.canvas.Size() {
			background = transform.Resize(background, m.canvas.Dx(), m.canvas.Dy(), transform.Linear)
		}
		draw.Draw(img, img.Bounds(), background, background.Bounds().Min, draw.Src)
	}
	if err := hexmap.Draw(img, m.layout, m.tiles, hexmap.Tile.Style); err != nil {
		return nil, fmt.Errorf("unable to draw map: %w", err)
	}
	for _, region := range hexmap.Components(m.tiles.Set()) {
		if err := hexmap.DrawOutline(img, m.layout, region.Slice(), color.White, 2); err != nil {
			return nil, fmt.Errorf("unable to draw outline: %w", err)
		}
	}
	return img, nil
}

func RenderPNG(m *tiledMap, opts pngOptions) io.ReadCloser {
	r, w := io.Pipe()
	img, err := drawMap(m, opts.background)
	if err != nil {
		w.CloseWithError(err)
		return r
	}

	var out image.Image = img
	if opts.thumbnail > 0 {
		height := max(1, opts.thumbnail*img.Bounds().Dy()/img.Bounds().Dx())
		out = transform.Resize(img, opts.thumbnail, height, transform.Linear)
	}
	go func() {
		encoder := png.Encoder{
			CompressionLevel: png.BestCompression,
		}
		w.CloseWithError(encoder.Encode(w, out))
	}()
	return r
}

func RenderSVG(m *tiledMap, _ pngOptions) io.ReadCloser {
	r, w := io.Pipe()
	svg := hexmap.SVG(m.layout, m.tiles, func(t hexmap.Tile) string { return t.Kind.String() })
	go func() {
		_, err := svg.WriteTo(w)
		w.CloseWithError(err)
	}()
	return r
}

func RenderJSON(m *tiledMap, _ pngOptions) io.ReadCloser {
	r, w := io.Pipe()
	tiles := make([]hexmap.Tile, 0, len(m.tiles))
	for _, h := range m.tiles.Coords() {
		tiles = append(tiles, m.tiles[h])
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	go func() {
		w.CloseWithError(encoder.Encode(tiles))
	}()
	return r
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("background %q: %w", path, err)
	}
	slog.Debug("loaded background", "file", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}

func writeToOutput(r io.Reader, output string, stdout io.Writer) error {
	if output == "" {
		return fmt.Errorf("no output destination given")
	}

	// encode to a buffer first so that a rendering error does not truncate an existing file
	buf := bytes.Buffer{}
	if _, err := io.Copy(&buf, r); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	w, closeOutput := stdout, func() error { return nil }
	if output == "-" {
		slog.Debug("writing to stdout")
	} else {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		slog.Debug("writing to file", "filename", f.Name())
		w, closeOutput = f, f.Close
	}
	n, err := io.Copy(w, &buf)
	if cerr := closeOutput(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write output: %w (%s written)", err, humanize.Bytes(uint64(n)))
	}
	slog.Info("finished", "output", output, "size", humanize.Bytes(uint64(n)))
	return nil
}
