package joywaves

import (
	"image"
	"testing"
)

func TestVpCenter(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	tests := []struct {
		w, h int
		want image.Point
	}{
		{100, 50, image.Point{0, 0}},
		{200, 150, image.Point{50, 50}},
		{50, 20, image.Point{0, 0}},
	}
	for _, tt := range tests {
		if got := VpCenter(img, tt.w, tt.h); got != tt.want {
			t.Errorf("VpCenter(%dx%d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		src  image.Point
		w, h int
		want image.Point
	}{
		{image.Point{400, 400}, 800, 600, image.Point{600, 600}},
		{image.Point{400, 200}, 800, 600, image.Point{800, 400}},
		{image.Point{0, 200}, 800, 600, image.Point{}},
	}
	for _, tt := range tests {
		if got := FitSize(tt.src, tt.w, tt.h); got != tt.want {
			t.Errorf("FitSize(%v, %d, %d) = %v, want %v", tt.src, tt.w, tt.h, got, tt.want)
		}
	}
}
