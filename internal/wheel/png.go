package wheel

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// EncodePNG writes the canvas as a PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
