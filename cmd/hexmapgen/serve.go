package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var flagBind string

var serveCmd = &cobra.Command{
	Use:   "serve <definition.yaml>",
	Short: "Serve a map over HTTP",
	Long: `Serve renders a map once and serves it over HTTP.

Routes:
  GET /map.png   - the rendered map
  GET /map.svg   - the map as svg
  GET /map.json  - the map tiles
  GET /pick      - websocket; send {"x":120,"y":80} to receive {"q":..,"r":..,"s":..,"inside":true,"kind":"grass"}

Examples:
  hexmapgen serve island.yaml --bind localhost:8080`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadTiledMap(args[0])
		if err != nil {
			return err
		}
		return runHTTPServer(cmd.Context(), flagBind, m)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagBind, "bind", "localhost:8080", "Network interface to listen on")
}

func runHTTPServer(ctx context.Context, bind string, m *tiledMap) error {
	ctx, shutdown := context.WithCancelCause(ctx)
	defer shutdown(nil)

	router, err := newRouter(m)
	if err != nil {
		return err
	}
	srv := http.Server{
		Addr:    bind,
		Handler: router,
	}

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		slog.Info("starting http service", "bind", bind)
		defer slog.Info("stopped http service")
		shutdown(srv.ListenAndServe())
	}()

	wg.Add(1)
	go func() {
		// wait for a cancelled context and then try to gracefully shut down the http server
		defer wg.Done()
		<-ctx.Done()
		wait := 5 * time.Second
		waitctx, cancel := context.WithTimeout(context.Background(), wait)
		defer cancel()
		if err := srv.Shutdown(waitctx); err != nil {
			slog.Info("error while stopping http server", "error", err, "wait", wait)
		}
	}()
	wg.Wait()
	<-ctx.Done()
	return context.Cause(ctx)
}

func newRouter(m *tiledMap) (http.Handler, error) {
	logRequest := func(next http.Handler) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			slog.InfoContext(r.Context(), "incoming http request",
				"request", fmt.Sprintf("%s %s %s", r.Method, r.RequestURI, r.Proto),
			)
			next.ServeHTTP(w, r)
		}
	}

	router := http.NewServeMux()
	for _, name := range []string{"png", "svg", "json"} {
		page, err := prerender(m, formats[name])
		if err != nil {
			return nil, err
		}
		router.Handle("GET /map"+formats[name].extension, page)
	}
	router.Handle("GET /pick", servePick(m))

	var h http.Handler = router
	h = logRequest(h)
	h = injectCorrelationID(h)
	return h, nil
}

type renderedMap struct {
	body     []byte
	mimetype string
}

// prerender renders m once so that every request is served from the same bytes.
func prerender(m *tiledMap, format renderable) (renderedMap, error) {
	rc := format.fn(m, pngOptions{})
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		return renderedMap{}, fmt.Errorf("unable to render %s: %w", format.extension, err)
	}
	slog.Debug("rendered map", "format", format.extension, "size", humanize.Bytes(uint64(len(body))))
	return renderedMap{body: body, mimetype: format.mimetype}, nil
}

func (page renderedMap) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", page.mimetype)
	w.Header().Set("Content-Length", strconv.Itoa(len(page.body)))
	if _, err := w.Write(page.body); err != nil {
		slog.InfoContext(r.Context(), "error writing map", "error", err)
	}
}

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
}

type pickRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// servePick answers every {"x","y"} message on the socket with the hex under that pixel.
func servePick(m *tiledMap) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade has already replied with an http error
			slog.InfoContext(r.Context(), "websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()
		slog.DebugContext(r.Context(), "pick session started", "remote", conn.RemoteAddr())

		for {
			var req pickRequest
			if err := conn.ReadJSON(&req); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					slog.InfoContext(r.Context(), "pick session ended", "error", err)
				}
				return
			}
			res := m.pick(req.X, req.Y)
			slog.DebugContext(r.Context(), "pick", "x", req.X, "y", req.Y, "q", res.Q, "r", res.R, "s", res.S, "inside", res.Inside)
			if err := conn.WriteJSON(res); err != nil {
				slog.InfoContext(r.Context(), "pick write failed", "error", err)
				return
			}
		}
	}
}
