package export

import (
	"fmt"
	"io"

	"github.com/fogleman/gg"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// WritePNG encodes img as PNG
func WritePNG(w io.Writer, img *renderer.Image) error {
	ctx := gg.NewContextForRGBA(img.ToRGBA())
	if err := ctx.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
