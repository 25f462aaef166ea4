// hexmapgen builds hex maps from YAML definitions and renders them.
//
// Usage:
//
//	hexmapgen render <definition.yaml> -o map.png   - Render a map to png, svg, or json
//	hexmapgen line <q,r,s> <q,r,s>                  - Print the hexes on a line
//	hexmapgen pick <definition.yaml> <x> <y>        - Print the hex under a pixel
//	hexmapgen serve <definition.yaml>               - Serve the map over HTTP
//
// Negative arguments must follow "--" so they are not read as flags:
//
//	hexmapgen line -- 0,0,0 -3,1,2
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "hexmapgen",
	Short: "Generate, render, and query hex grid maps",
	Long: `hexmapgen builds hexagonal maps from YAML definition files.

A definition names a shape, a pixel layout, and a terrain seed:

  shape: hexagon
  size: 6
  orientation: pointy
  hex_size: {x: 24, y: 24}
  seed: 42

Examples:
  hexmapgen render island.yaml -o island.png
  hexmapgen render island.yaml --format svg -o -
  hexmapgen line 0,0,0 3,-3,0
  hexmapgen pick island.yaml 120 80
  hexmapgen serve island.yaml --bind localhost:8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		setupLogging(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable writing verbose logging information to stderr.")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(serveCmd)
}

func main() {
	setupLogging(false)

	ctx, shutdown := context.WithCancelCause(context.Background())
	go func() {
		defer slog.Debug("received interrupt")
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt)
		<-stop
		shutdown(errGracefulShutdown)
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			err = context.Cause(ctx)
		}
		if errors.Is(err, errGracefulShutdown) {
			return
		}
		slog.Error(err.Error())
		os.Exit(1)
	}
}

var errGracefulShutdown = errors.New("received shutdown signal")

func setupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	handler := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "hexmapgen",
	})
	slog.SetDefault(slog.New(&contextHandler{handler}))
}

type contextHandler struct {
	slog.Handler
}

var correlationID = contextKey("correlation_id")

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if uuid, ok := ctx.Value(correlationID).(uuid.UUID); ok {
		r.AddAttrs(slog.String(string(correlationID), uuid.String()))
	}
	return h.Handler.Handle(ctx, r)
}

type contextKey string

func injectCorrelationID(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = context.WithValue(ctx, correlationID, uuid.New())
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
