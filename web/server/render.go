package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/url"

	xdraw "golang.org/x/image/draw"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// SSEEvent is a server-sent event with a type and data payload.
type SSEEvent struct {
	Type string // event type: "progress", "console", "complete", "error"
	Data string // event data (JSON or plain text)
}

// RenderRequest holds the parsed parameters for a render request.
type RenderRequest struct {
	Scene  string // scene ID or JSON scene path
	Width  int    // output image width
	Height int    // output image height
	Scale  int    // downscale factor: render at size/scale, upscale the result
}

// ProgressUpdate reports scanline completion to the client.
type ProgressUpdate struct {
	Line    int     `json:"line"`
	Height  int     `json:"height"`
	Percent float64 `json:"percent"`
}

// RenderStats summarizes a finished render for the client.
type RenderStats struct {
	TotalPixels     int     `json:"totalPixels"`
	HitPixels       int     `json:"hitPixels"`
	MissPixels      int     `json:"missPixels"`
	HitRate         float64 `json:"hitRate"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

// CompleteUpdate carries the final image and stats to the client.
type CompleteUpdate struct {
	ImageData string      `json:"imageData"` // base64-encoded PNG
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Scale     int         `json:"scale"`
	ElapsedMs int64       `json:"elapsedMs"`
	Stats     RenderStats `json:"stats"`
}

// handleRender renders a scene and streams progress, console output and
// the finished image over SSE. All writes to the response go through a
// single writer goroutine fed by the events channel.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	events := make(chan SSEEvent, 100)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		s.writeSSEEvents(ctx, w, events)
	}()
	finish := func() {
		close(events)
		<-writerDone
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		s.sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		finish()
		return
	}

	// Render at the reduced size; the result is upscaled to the
	// requested dimensions before encoding.
	sceneObj, err := scene.BuildScene(req.Scene, s.scenesDir, geometry.CameraConfig{
		Width:  req.Width / req.Scale,
		Height: req.Height / req.Scale,
	})
	if err != nil {
		s.sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("Failed to load scene: %v", err)})
		finish()
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		s.streamConsoleMessages(ctx, consoleChan, events)
	}()

	rend := renderer.NewRenderer(sceneObj, NewWebLogger(consoleChan))
	frame, stats, renderErr := rend.Render(ctx, renderer.RenderOptions{
		OnScanline: func(line, height int) {
			s.sendProgress(ctx, events, line, height)
		},
	})

	// Stop the console forwarder before the final event so nothing
	// else writes to the events channel after it closes.
	close(consoleChan)
	<-consoleDone

	if renderErr != nil {
		s.sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("Render failed: %v", renderErr)})
		finish()
		return
	}

	var img image.Image = frame.Image()
	if req.Scale > 1 {
		img = upscale(img, req.Width, req.Height)
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		s.sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("Failed to encode image: %v", err)})
		finish()
		return
	}

	update := CompleteUpdate{
		ImageData: imageData,
		Width:     req.Width,
		Height:    req.Height,
		Scale:     req.Scale,
		ElapsedMs: stats.Duration.Milliseconds(),
		Stats: RenderStats{
			TotalPixels:     stats.TotalPixels,
			HitPixels:       stats.HitPixels,
			MissPixels:      stats.MissPixels,
			HitRate:         stats.HitRate(),
			PixelsPerSecond: stats.PixelsPerSecond,
		},
	}
	data, err := json.Marshal(update)
	if err != nil {
		s.sendEvent(ctx, events, SSEEvent{Type: "error", Data: fmt.Sprintf("Failed to encode result: %v", err)})
		finish()
		return
	}
	s.sendEvent(ctx, events, SSEEvent{Type: "complete", Data: string(data)})
	finish()
}

// parseRenderRequest validates the render query parameters.
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "three-spheres"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 600, 16, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 600, 16, 2000); err != nil {
		return nil, err
	}
	if req.Scale, err = parseIntParam(values, "scale", 1, 1, 4); err != nil {
		return nil, err
	}
	if req.Scale == 3 {
		return nil, fmt.Errorf("scale must be 1, 2 or 4, got 3")
	}
	return req, nil
}

func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// writeSSEEvents is the single goroutine that writes to the response.
// It drains the channel until closed so the final event is delivered;
// once the client disconnects remaining events are discarded.
func (s *Server) writeSSEEvents(ctx context.Context, w http.ResponseWriter, events <-chan SSEEvent) {
	flusher, canFlush := w.(http.Flusher)

	for event := range events {
		select {
		case <-ctx.Done():
			continue
		default:
		}

		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
			continue
		}
		if canFlush {
			flusher.Flush()
		}
	}
}

// streamConsoleMessages forwards render log lines to the SSE stream
// until the console channel closes.
func (s *Server) streamConsoleMessages(ctx context.Context, consoleChan <-chan ConsoleMessage, events chan<- SSEEvent) {
	for msg := range consoleChan {
		data, err := json.Marshal(msg)
		if err != nil {
			continue
		}
		select {
		case events <- SSEEvent{Type: "console", Data: string(data)}:
		case <-ctx.Done():
		default:
			// Events channel full, drop the console line
		}
	}
}

// sendEvent queues an event for the writer, giving up if the client is gone.
func (s *Server) sendEvent(ctx context.Context, events chan<- SSEEvent, event SSEEvent) {
	select {
	case events <- event:
	case <-ctx.Done():
	}
}

// sendProgress queues a scanline progress event. Progress is lossy: when
// the channel is full the update is dropped rather than stalling the render.
func (s *Server) sendProgress(ctx context.Context, events chan<- SSEEvent, line, height int) {
	update := ProgressUpdate{
		Line:    line,
		Height:  height,
		Percent: float64(line) / float64(height) * 100,
	}
	data, err := json.Marshal(update)
	if err != nil {
		return
	}
	select {
	case events <- SSEEvent{Type: "progress", Data: string(data)}:
	case <-ctx.Done():
	default:
	}
}

// upscale stretches img to width x height with nearest-neighbor sampling,
// preserving the blocky look of a reduced-resolution render.
func upscale(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// imageToBase64PNG encodes an image as a base64 PNG string for embedding
// in a JSON payload.
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
