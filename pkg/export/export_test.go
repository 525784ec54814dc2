package export

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

func testImage() *renderer.Image {
	img := renderer.NewImage(3, 2)
	img.Set(0, 0, renderer.RGB{255, 0, 0})
	img.Set(1, 0, renderer.RGB{0, 255, 0})
	img.Set(2, 0, renderer.RGB{0, 0, 255})
	img.Set(0, 1, renderer.RGB{10, 20, 30})
	img.Set(2, 1, renderer.RGB{255, 255, 255})
	return img
}

func TestWritePPM_BinarySize(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {3, 2}, {256, 144}}

	for _, s := range sizes {
		var buf bytes.Buffer
		if err := WritePPM(&buf, renderer.NewImage(s.w, s.h), true); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}
		header := PPMHeader(s.w, s.h, true)
		if expected := len(header) + 3*s.w*s.h; buf.Len() != expected {
			t.Errorf("%dx%d: expected %d bytes, got %d", s.w, s.h, expected, buf.Len())
		}
		if !strings.HasPrefix(buf.String(), header) {
			t.Errorf("Expected header %q", header)
		}
	}
}

func TestWritePPM_BinaryLayout(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage(), true); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	data := buf.Bytes()
	header := "P6\n3 2\n255\n"
	if string(data[:len(header)]) != header {
		t.Fatalf("Expected header %q, got %q", header, data[:len(header)])
	}
	pixels := data[len(header):]
	// Row 1, column 0 starts at (0 + 1*3) * 3
	if pixels[9] != 10 || pixels[10] != 20 || pixels[11] != 30 {
		t.Errorf("Expected row-major pixel {10 20 30}, got %v", pixels[9:12])
	}
}

func TestWritePPM_ASCII(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePPM(&buf, testImage(), false); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n3 2\n255\n" +
		"255 0 0 0 255 0 0 0 255\n" +
		"10 20 30 0 0 0 255 255 255\n"
	if buf.String() != expected {
		t.Errorf("Expected\n%q\ngot\n%q", expected, buf.String())
	}
}

func TestReadPPM_RoundTrip(t *testing.T) {
	for _, binary := range []bool{true, false} {
		var buf bytes.Buffer
		if err := WritePPM(&buf, testImage(), binary); err != nil {
			t.Fatalf("WritePPM failed: %v", err)
		}
		img, err := ReadPPM(&buf)
		if err != nil {
			t.Fatalf("ReadPPM(binary=%v) failed: %v", binary, err)
		}
		if !bytes.Equal(img.Bytes(), testImage().Bytes()) {
			t.Errorf("binary=%v: pixels differ after round trip", binary)
		}
	}
}

func TestReadPPM_Comments(t *testing.T) {
	input := "P3\n# made by hand\n2 1\n255\n1 2 3 4 5 6\n"
	img, err := ReadPPM(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadPPM failed: %v", err)
	}
	if img.At(1, 0) != (renderer.RGB{4, 5, 6}) {
		t.Errorf("Expected {4 5 6}, got %v", img.At(1, 0))
	}
}

func TestReadPPM_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bad magic", "P5\n1 1\n255\n\x00"},
		{"bad width", "P6\nx 1\n255\n"},
		{"max value", "P6\n1 1\n65535\n\x00\x00"},
		{"truncated pixels", "P6\n2 2\n255\n\x00\x00\x00"},
		{"sample out of range", "P3\n1 1\n255\n1 2 300\n"},
		{"huge dimensions", "P6\n4000000000 4000000000\n255\n"},
		{"too many pixels", "P6\n16384 8192\n255\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadPPM(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testImage()); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if !bytes.Equal(FromImage(decoded).Bytes(), testImage().Bytes()) {
		t.Error("PNG pixels differ from source image")
	}
}

func TestFormats(t *testing.T) {
	pathTests := []struct {
		path     string
		expected Format
		wantErr  bool
	}{
		{"out/render.ppm", FormatPPM, false},
		{"render.PNM", FormatPPM, false},
		{"render.png", FormatPNG, false},
		{"render.jpg", "", true},
		{"render", "", true},
	}
	for _, tt := range pathTests {
		got, err := FormatFromPath(tt.path)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("FormatFromPath(%q) = %q, %v", tt.path, got, err)
		}
	}

	if f, err := ParseFormat("PNG"); err != nil || f != FormatPNG {
		t.Errorf("ParseFormat(PNG) = %q, %v", f, err)
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Error("Expected error for unknown format")
	}
	if FormatPPMASCII.Extension() != ".ppm" || FormatPNG.ContentType() != "image/png" {
		t.Error("Unexpected format metadata")
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	for _, format := range []Format{FormatPPM, FormatPNG} {
		path := filepath.Join(tmpDir, "nested", "render"+format.Extension())
		if err := Save(path, testImage(), format); err != nil {
			t.Fatalf("Save(%s) failed: %v", format, err)
		}

		img, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s) failed: %v", format, err)
		}
		if !bytes.Equal(img.Bytes(), testImage().Bytes()) {
			t.Errorf("%s: loaded pixels differ", format)
		}
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, "nested"))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("Expected only the two renders, found %d entries", len(entries))
	}
}

func TestSave_FailureLeavesNoFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "render.ppm")

	if err := Save(path, testImage(), Format("bogus")); err == nil {
		t.Fatal("Expected error for unknown format")
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no files after failed save, found %v", entries)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected %s not to exist, got %v", path, err)
	}
}
