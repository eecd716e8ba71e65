package render

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/scottkirkwood/joywaves/waves"
)

// ggPather adapts gg's CubicTo to the pather interface.
type ggPather struct {
	*gg.Context
}

func (p ggPather) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	p.Context.CubicTo(cpx1, cpy1, cpx2, cpy2, x, y)
}

// Raster draws d into an image scale pixels per drawing unit. A nil
// background becomes white so the preview is readable.
func Raster(d *waves.Drawing, style Style, scale float64) image.Image {
	w := int(math.Ceil(d.View.Width * scale))
	h := int(math.Ceil(d.View.Height * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	ctx := gg.NewContext(w, h)
	bg := style.Background
	if bg == nil {
		bg = color.White
	}
	ctx.SetColor(bg)
	ctx.Clear()

	ctx.Scale(scale, scale)
	ctx.SetLineWidth(math.Max(1, style.StrokeWidth*scale))
	p := ggPather{ctx}
	for _, l := range d.Layers {
		ctx.SetColor(style.strokeFor(l))
		for _, c := range l.Curves {
			trace(p, c)
		}
	}
	return ctx.Image()
}
