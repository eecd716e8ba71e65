// Package render draws a waves.Drawing onto the vector canvas, into a raster
// preview image, or as a layered SVG for pen plotters.
package render

import (
	"image/color"

	"github.com/scottkirkwood/joywaves/waves"
)

// Style is how curves are stroked.
type Style struct {
	Background  color.Color // nil leaves the background transparent
	Stroke      color.Color
	MoireStroke color.Color // nil uses Stroke
	StrokeWidth float64     // in drawing units
}

// DefaultStyle is black ink on nothing, the way a plotter sees it.
func DefaultStyle() Style {
	return Style{
		Stroke:      color.Black,
		StrokeWidth: 0.3,
	}
}

// strokeFor returns the stroke color of a layer.
func (s Style) strokeFor(l waves.Layer) color.Color {
	if l.Name == waves.LayerMoire && s.MoireStroke != nil {
		return s.MoireStroke
	}
	if s.Stroke == nil {
		return color.Black
	}
	return s.Stroke
}
