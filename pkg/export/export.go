// Package export writes rendered images to disk or streams.
package export

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Format names an output encoding
type Format string

const (
	FormatPPM      Format = "ppm"       // binary P6
	FormatPPMASCII Format = "ppm-ascii" // plain-text P3
	FormatPNG      Format = "png"
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPPM, FormatPPMASCII, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (available: %s, %s, %s)", name, FormatPPM, FormatPPMASCII, FormatPNG)
	}
}

// FormatFromPath picks a format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppm", ".pnm":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("cannot infer image format from %q", path)
	}
}

// Extension returns the file extension for a format
func (f Format) Extension() string {
	if f == FormatPNG {
		return ".png"
	}
	return ".ppm"
}

// ContentType returns the MIME type for a format
func (f Format) ContentType() string {
	if f == FormatPNG {
		return "image/png"
	}
	return "image/x-portable-pixmap"
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img *renderer.Image, format Format) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, img, true)
	case FormatPPMASCII:
		return WritePPM(w, img, false)
	case FormatPNG:
		return WritePNG(w, img)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Save encodes img to path, creating parent directories as needed. The image
// is written to a temporary file next to path and renamed into place, so a
// failed write leaves no partial file behind.
func Save(path string, img *renderer.Image, format Format) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, img, format); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move render into place: %w", err)
	}
	return nil
}

// Load reads a PPM or PNG/JPEG file back into an Image
func Load(path string) (*renderer.Image, error) {
	if format, err := FormatFromPath(path); err == nil && format == FormatPPM {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open image file: %w", err)
		}
		defer file.Close()
		return ReadPPM(file)
	}

	// gg decodes anything registered with the image package (PNG, JPEG)
	decoded, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(decoded), nil
}

// FromImage converts any image.Image to an 8-bit Image, dropping alpha
func FromImage(src image.Image) *renderer.Image {
	bounds := src.Bounds()
	img := renderer.NewImage(bounds.Dx(), bounds.Dy())

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			// RGBA returns uint32 in [0, 65535]
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			img.Set(x, y, renderer.RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)})
		}
	}
	return img
}
