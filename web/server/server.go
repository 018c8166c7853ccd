// Package server implements the web interface for the phong raytracer.
// It serves a static client page and a JSON/SSE API that renders scenes
// on demand and streams progress back to the browser.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Server hosts the static client and the render API.
type Server struct {
	scenesDir  string
	httpServer *http.Server
}

// New creates a web server listening on the given port. Scene files are
// discovered in scenesDir alongside the built-in scenes.
func New(port int, scenesDir string) *Server {
	s := &Server{scenesDir: scenesDir}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(staticDir())))
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/render", s.handleRender)

	s.httpServer = &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: mux,
	}
	return s
}

// ListenAndServe blocks serving HTTP until Shutdown is called or the
// listener fails.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight renders
// to finish streaming.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the root handler, used by tests to drive the API
// without a listener.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// staticDir locates the client assets relative to the working directory,
// which differs between `go run ./web` and running from within web/.
func staticDir() string {
	for _, dir := range []string{"web/static", "static"} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return "web/static"
}

// ScenesResponse lists the scenes available for rendering.
type ScenesResponse struct {
	Scenes []scene.SceneInfo `json:"scenes"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	infos, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}
	json.NewEncoder(w).Encode(ScenesResponse{Scenes: infos})
}

// parseIntParam reads an integer query parameter, applying a default when
// absent and enforcing an inclusive range.
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	if v < min || v > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got %d", key, min, max, v)
	}
	return v, nil
}
