package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// Parameter limits shared by /api/render, /api/inspect and /api/scene-config
const (
	minWidth   = 1
	maxWidth   = 2000
	maxSamples = 10000
	maxDepth   = 200
	maxWorkers = 256
)

// Server handles web requests for the path tracer
type Server struct {
	port      int
	scenesDir string
	console   *ConsoleLog
	renders   atomic.Uint64
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{
		port:      port,
		scenesDir: scene.FindScenesDir(),
		console:   NewConsoleLog(500),
	}
}

// Handler returns the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/console", s.handleConsole)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError writes {"error": message}
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and JSON scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scenes})
}

// handleConsole returns recent render log messages
func (s *Server) handleConsole(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": s.console.Messages()})
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}

	sceneObj, status, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, status, err.Error())
		return
	}

	config := sceneObj.SamplingConfig
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene":   sceneName,
		"shading": sceneObj.Shading,
		"defaults": map[string]interface{}{
			"width":           config.Width,
			"height":          config.Height(),
			"aspectRatio":     config.AspectRatio,
			"samplesPerPixel": config.SamplesPerPixel,
			"maxDepth":        config.MaxDepth,
			"gamma":           config.Gamma,
		},
		"limits": map[string]interface{}{
			"width":   map[string]int{"min": minWidth, "max": maxWidth},
			"samples": map[string]int{"min": 1, "max": maxSamples},
			"depth":   map[string]int{"min": 0, "max": maxDepth},
			"workers": map[string]int{"min": 0, "max": maxWorkers},
		},
	})
}

// createScene resolves a scene and maps failures to an HTTP status.
// Only built-in names and files in the scenes directory resolve; paths do not.
func (s *Server) createScene(name string) (*scene.Scene, int, error) {
	if strings.ContainsAny(name, `/\`) || strings.HasSuffix(strings.ToLower(name), ".json") {
		return nil, http.StatusNotFound, fmt.Errorf("%w: %q", scene.ErrUnknownScene, name)
	}

	sceneObj, err := scene.Create(name, s.scenesDir)
	if err != nil {
		if isUnknownScene(err) {
			return nil, http.StatusNotFound, err
		}
		return nil, http.StatusBadRequest, err
	}
	return sceneObj, http.StatusOK, nil
}

// configureScene applies size overrides from the query to a scene
func configureScene(sceneObj *scene.Scene, values url.Values) error {
	width, err := parseIntParam(values, "width", sceneObj.SamplingConfig.Width, minWidth, maxWidth)
	if err != nil {
		return err
	}
	sceneObj.Configure(renderer.SamplingConfig{Width: width})
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
