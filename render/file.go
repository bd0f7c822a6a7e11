package render

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/llgcode/draw2d/draw2dimg"
)

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	if err := draw2dimg.SaveToPngFile(path, img); err != nil {
		return fmt.Errorf("render.SavePNG: %w", err)
	}
	return nil
}

// Thumbnail scales img so that its longer side is maxSide pixels, keeping
// the aspect ratio. Images already within maxSide are returned resampled
// at their own size. Returns ErrEmptyImage if maxSide <= 0 or img is empty.
func Thumbnail(img image.Image, maxSide int) (*image.RGBA, error) {
	if maxSide <= 0 || img.Bounds().Empty() {
		return nil, fmt.Errorf("render.Thumbnail: %v, maxSide=%d: %w", img.Bounds(), maxSide, ErrEmptyImage)
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w > maxSide || h > maxSide {
		if w >= h {
			w, h = maxSide, max(1, h*maxSide/w)
		} else {
			w, h = max(1, w*maxSide/h), maxSide
		}
	}
	return transform.Resize(img, w, h, transform.Linear), nil
}
