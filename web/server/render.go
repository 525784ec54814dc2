package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/export"
	"github.com/df07/go-pathtracer/pkg/noise"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// RenderRequest represents a render request from the client.
// Zero values (and -1 for Depth) keep the scene's defaults.
type RenderRequest struct {
	Scene   string        // Scene name (e.g., "default")
	Width   int           // Image width
	Samples int           // Samples per pixel
	Depth   int           // Maximum bounce depth
	Workers int           // Render goroutines, 0 for one per CPU
	Seed    int           // Jitter and bounce seed
	Gamma   float64       // Output gamma
	Noise   string        // Random source name
	Format  export.Format // Response encoding
}

// parseRenderRequest parses request parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, minWidth, maxWidth); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(values, "samples", 0, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(values, "depth", -1, 0, maxDepth); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(values, "workers", 0, 0, maxWorkers); err != nil {
		return nil, err
	}
	if req.Seed, err = parseIntParam(values, "seed", 0, 0, 1<<30); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(values, "gamma", 0, 0.1, 10); err != nil {
		return nil, err
	}

	req.Noise = values.Get("noise")
	if _, err := noise.NewSource(req.Noise); err != nil {
		return nil, err
	}

	format := values.Get("format")
	if format == "" {
		format = string(export.FormatPNG)
	}
	if req.Format, err = export.ParseFormat(format); err != nil {
		return nil, err
	}

	return req, nil
}

// apply configures a scene with the request's overrides
func (req *RenderRequest) apply(sceneObj *scene.Scene) {
	sceneObj.Configure(renderer.SamplingConfig{
		Width:           req.Width,
		SamplesPerPixel: req.Samples,
		Seed:            req.Seed,
		Gamma:           req.Gamma,
	})
	sceneObj.SamplingConfig.NumWorkers = req.Workers
	if req.Depth >= 0 {
		sceneObj.SamplingConfig.MaxDepth = req.Depth
	}
}

// handleRender renders a scene synchronously and returns the encoded image.
// A client that disconnects cancels the render and receives no body.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, status, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}
	req.apply(sceneObj)

	source, _ := noise.NewSource(req.Noise)
	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	logger := NewWebLogger(renderID, s.console)

	engine, err := sceneObj.NewEngine(source, logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	stats, err := engine.SimulateContext(ctx)
	if err != nil {
		logger.Printf("[WARN] Render abandoned: %v\n", err)
		return
	}

	var buf bytes.Buffer
	if err := export.Encode(&buf, engine.Image, req.Format); err != nil {
		logger.Printf("[ERROR] Encoding failed: %v\n", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", req.Format.ContentType())
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Id", renderID)
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Elapsed-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func isUnknownScene(err error) bool {
	return errors.Is(err, scene.ErrUnknownScene)
}
