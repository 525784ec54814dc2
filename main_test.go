package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/export"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"sphere scene", "sphere", false},
		{"empty scene", "empty", false},
		{"spheregrid scene", "spheregrid", false},
		{"noise scene", "noise", false},

		// JSON scenes (by name)
		{"three-spheres JSON", "three-spheres", false},
		{"normals-preview JSON", "normals-preview", false},

		// JSON scenes (by path)
		{"direct JSON path", "scenes/three-spheres.json", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"invalid JSON path", "scenes/nonexistent.json", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := createScene(tt.sceneType)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if scene != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if scene.SamplingConfig.Width <= 0 {
				t.Errorf("Scene sampling width should be positive, got %d", scene.SamplingConfig.Width)
			}
			if scene.SamplingConfig.Height() <= 0 {
				t.Errorf("Scene sampling height should be positive, got %d", scene.SamplingConfig.Height())
			}
		})
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		format, output string
		expected       export.Format
		expectError    bool
	}{
		{"", "", export.FormatPPM, false},
		{"", "-", export.FormatPPM, false},
		{"", "out.png", export.FormatPNG, false},
		{"ppm-ascii", "out.ppm", export.FormatPPMASCII, false},
		{"png", "-", export.FormatPNG, false},
		{"", "out.bmp", "", true},
		{"tiff", "", "", true},
	}

	for _, tt := range tests {
		opts := &options{Format: tt.format, Output: tt.output}
		got, err := opts.resolveFormat()
		if (err != nil) != tt.expectError || got != tt.expected {
			t.Errorf("resolveFormat(%q, %q) = %q, %v", tt.format, tt.output, got, err)
		}
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	got := outputPath("sphere", export.FormatPPM, now)
	expected := filepath.Join("output", "sphere", "render_20240305_140709.ppm")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	if got := outputPath("default", export.FormatPNG, now); !strings.HasSuffix(got, ".png") {
		t.Errorf("Expected .png extension, got %s", got)
	}
}

func TestRun_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.ppm")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-scene", "sphere", "-width", "32", "-o", path}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	header := "P6\n32 18\n255\n"
	if expected := len(header) + 3*32*18; len(data) != expected {
		t.Errorf("Expected %d bytes, got %d", expected, len(data))
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %d bytes", stdout.Len())
	}

	log := stderr.String()
	for _, msg := range []string{"[INFO] Simulation started", "[INFO] Simulation completed", "Render to " + path + " completed."} {
		if !strings.Contains(log, msg) {
			t.Errorf("Expected log to contain %q, got:\n%s", msg, log)
		}
	}
}

func TestRun_Stdout(t *testing.T) {
	var stdout, stderr bytes.Buffer

	args := []string{"-scene", "default", "-width", "20", "-samples", "2", "-depth", "3", "-workers", "2", "-format", "png", "-o", "-"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v\n%s", err, stderr.String())
	}

	if !bytes.HasPrefix(stdout.Bytes(), []byte("\x89PNG")) {
		t.Error("Expected PNG data on stdout")
	}
}

func TestRun_Deterministic(t *testing.T) {
	render := func(workers string) []byte {
		var stdout, stderr bytes.Buffer
		args := []string{"-scene", "default", "-width", "24", "-samples", "3", "-depth", "4", "-seed", "5", "-workers", workers, "-o", "-"}
		if err := run(args, &stdout, &stderr); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return stdout.Bytes()
	}

	if !bytes.Equal(render("1"), render("3")) {
		t.Error("Expected identical output for different worker counts")
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nope", "-o", "-"}},
		{"unknown noise", []string{"-scene", "empty", "-noise", "perlin", "-o", "-"}},
		{"bad format", []string{"-scene", "empty", "-format", "gif", "-o", "-"}},
		{"negative width", []string{"-scene", "empty", "-width", "-4", "-o", "-"}},
		{"negative workers", []string{"-scene", "empty", "-workers", "-1", "-o", "-"}},
		{"unknown flag", []string{"-frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); err == nil {
				t.Error("Expected error")
			}
			if stdout.Len() != 0 {
				t.Errorf("Expected no image output on error, got %d bytes", stdout.Len())
			}
		})
	}
}

func TestRun_Help(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-help"}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	out := stdout.String()
	for _, want := range []string{"Usage:", "-scene", "spheregrid", "three-spheres"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected help to mention %q", want)
		}
	}
}
