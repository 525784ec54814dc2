package renderer

import (
	"image"
	"image/color"
)

// RGB is one 8-bit-per-channel pixel
type RGB [3]uint8

// Image is a row-major RGB raster. Row 0 is the top of the picture.
type Image struct {
	Width  int
	Height int
	Pixels []RGB
}

// NewImage allocates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]RGB, width*height),
	}
}

// Index returns the position of pixel (x, y) in Pixels
func (img *Image) Index(x, y int) int {
	return x + y*img.Width
}

// At returns pixel (x, y)
func (img *Image) At(x, y int) RGB {
	return img.Pixels[img.Index(x, y)]
}

// Set stores pixel (x, y)
func (img *Image) Set(x, y int, c RGB) {
	img.Pixels[img.Index(x, y)] = c
}

// Bytes returns a copy of the raster as packed RGB triples, 3*Width*Height bytes
func (img *Image) Bytes() []byte {
	buf := make([]byte, 0, len(img.Pixels)*3)
	for _, p := range img.Pixels {
		buf = append(buf, p[0], p[1], p[2])
	}
	return buf
}

// ToRGBA converts the raster to an opaque image.RGBA
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		}
	}
	return out
}
