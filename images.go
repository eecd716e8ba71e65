package joywaves

import (
	"image"
)

// VpCenter inspects the canvas and image geometry, and determines where the
// origin of the image should be painted into the canvas.
// If the image is bigger than the canvas, this is always (0, 0).
// If the image is the same size, then it is also (0, 0).
// If a dimension of the image is smaller than the canvas, then:
// x = (canvas_width - image_width) / 2 and
// y = (canvas_height - image_height) / 2
func VpCenter(ximg image.Image, canWidth, canHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < canWidth {
		xmargin = (canWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < canHeight {
		ymargin = (canHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}

// FitSize returns the largest size with the aspect ratio of src that fits in
// a canWidth x canHeight window.
func FitSize(src image.Point, canWidth, canHeight int) image.Point {
	if src.X <= 0 || src.Y <= 0 || canWidth <= 0 || canHeight <= 0 {
		return image.Point{}
	}
	w, h := canWidth, src.Y*canWidth/src.X
	if h > canHeight {
		w, h = src.X*canHeight/src.Y, canHeight
	}
	return image.Point{w, h}
}
