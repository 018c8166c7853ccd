package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	return New(0, t.TempDir())
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

// parseSSEEvents splits an SSE response body into typed events.
func parseSSEEvents(t *testing.T, body string) []SSEEvent {
	t.Helper()
	var events []SSEEvent
	for _, block := range strings.Split(body, "\n\n") {
		var event SSEEvent
		for _, line := range strings.Split(block, "\n") {
			if strings.HasPrefix(line, "event: ") {
				event.Type = strings.TrimPrefix(line, "event: ")
			} else if strings.HasPrefix(line, "data: ") {
				event.Data = strings.TrimPrefix(line, "data: ")
			}
		}
		if event.Type != "" {
			events = append(events, event)
		}
	}
	return events
}

func TestServer_HandleHealth(t *testing.T) {
	w := doRequest(t, testServer(t), "/api/health")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestServer_HandleScenes(t *testing.T) {
	w := doRequest(t, testServer(t), "/api/scenes")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body ScenesResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	ids := make(map[string]bool)
	for _, info := range body.Scenes {
		ids[info.ID] = true
	}
	for _, id := range []string{"three-spheres", "showcase"} {
		if !ids[id] {
			t.Errorf("expected built-in scene %q in %v", id, ids)
		}
	}
}

func TestServer_HandleRender_StreamsToCompletion(t *testing.T) {
	w := doRequest(t, testServer(t), "/api/render?scene=three-spheres&width=16&height=16")

	events := parseSSEEvents(t, w.Body.String())
	if len(events) == 0 {
		t.Fatal("expected SSE events")
	}

	var sawProgress, sawConsole bool
	for _, event := range events {
		switch event.Type {
		case "progress":
			sawProgress = true
		case "console":
			sawConsole = true
		case "error":
			t.Fatalf("unexpected error event: %s", event.Data)
		}
	}
	if !sawProgress {
		t.Error("expected at least one progress event")
	}
	if !sawConsole {
		t.Error("expected at least one console event")
	}

	last := events[len(events)-1]
	if last.Type != "complete" {
		t.Fatalf("expected the final event to be complete, got %s", last.Type)
	}

	var update CompleteUpdate
	if err := json.Unmarshal([]byte(last.Data), &update); err != nil {
		t.Fatalf("failed to decode complete event: %v", err)
	}
	if update.Width != 16 || update.Height != 16 {
		t.Errorf("expected 16x16, got %dx%d", update.Width, update.Height)
	}
	if update.Stats.TotalPixels != 256 {
		t.Errorf("expected 256 total pixels, got %d", update.Stats.TotalPixels)
	}

	raw, err := base64.StdEncoding.DecodeString(update.ImageData)
	if err != nil {
		t.Fatalf("image data is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("image data is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 16 {
		t.Errorf("expected a 16x16 PNG, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestServer_HandleRender_UpscalesToRequestedSize(t *testing.T) {
	w := doRequest(t, testServer(t), "/api/render?scene=showcase&width=32&height=32&scale=4")

	events := parseSSEEvents(t, w.Body.String())
	last := events[len(events)-1]
	if last.Type != "complete" {
		t.Fatalf("expected a complete event, got %s: %s", last.Type, last.Data)
	}

	var update CompleteUpdate
	if err := json.Unmarshal([]byte(last.Data), &update); err != nil {
		t.Fatalf("failed to decode complete event: %v", err)
	}
	// Rendered at 8x8, upscaled back to the requested size.
	if update.Stats.TotalPixels != 64 {
		t.Errorf("expected 64 rendered pixels at scale 4, got %d", update.Stats.TotalPixels)
	}

	raw, err := base64.StdEncoding.DecodeString(update.ImageData)
	if err != nil {
		t.Fatalf("image data is not valid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("image data is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("expected a 32x32 PNG, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestServer_HandleRender_Errors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{"invalid width", "width=abc", "invalid width"},
		{"width out of range", "width=9999", "width must be between"},
		{"unsupported scale", "scale=3", "scale must be 1, 2 or 4"},
		{"unknown scene", "scene=no-such-scene&width=16&height=16", "unknown scene"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, testServer(t), "/api/render?"+tt.query)

			events := parseSSEEvents(t, w.Body.String())
			if len(events) != 1 {
				t.Fatalf("expected a single error event, got %d events", len(events))
			}
			if events[0].Type != "error" {
				t.Fatalf("expected an error event, got %s", events[0].Type)
			}
			if !strings.Contains(events[0].Data, tt.wantErr) {
				t.Errorf("expected error containing %q, got %q", tt.wantErr, events[0].Data)
			}
		})
	}
}

func TestParseRenderRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  RenderRequest
	}{
		{"defaults", "", RenderRequest{Scene: "three-spheres", Width: 600, Height: 600, Scale: 1}},
		{"explicit values", "scene=showcase&width=800&height=400&scale=2",
			RenderRequest{Scene: "showcase", Width: 800, Height: 400, Scale: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatalf("bad query: %v", err)
			}
			got, err := parseRenderRequest(values)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}
