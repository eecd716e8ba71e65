package render

import (
	"github.com/scottkirkwood/joywaves"
	"github.com/scottkirkwood/joywaves/waves"
)

// NewContext returns a canvas context the size of the drawing's view.
func NewContext(d *waves.Drawing) *joywaves.Context {
	return joywaves.NewContext(d.View.Width, d.View.Height)
}

// Vector clears ctx and strokes every curve of d onto it, layer by layer.
func Vector(ctx *joywaves.Context, d *waves.Drawing, style Style) {
	ctx.Reset()
	if style.Background != nil {
		w, h := ctx.Size()
		ctx.SetFillColor(style.Background)
		ctx.FillRect(0, 0, w, h)
	}
	ctx.SetStrokeWidth(style.StrokeWidth)
	for _, l := range d.Layers {
		ctx.SetStrokeColor(style.strokeFor(l))
		for _, c := range l.Curves {
			trace(ctx, c)
		}
	}
}
