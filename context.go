package joywaves

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// pngResolution is dots per millimeter for PNG export.
const pngResolution = 3.2

// Context is my abstraction for Canvas.
// Unlike canvas, the origin is the top left corner and y grows downward,
// which is how the wave generators lay out their rows.
type Context struct {
	c             *canvas.Canvas
	ctx           *canvas.Context
	width, height float64
}

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c:      canvas.New(width, height),
		width:  width,
		height: height,
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// Size returns the width and height given to NewContext
func (ctx *Context) Size() (width, height float64) {
	return ctx.width, ctx.height
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(pngResolution))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

// Reset empties the canvas.
func (ctx *Context) Reset() {
	ctx.c.Reset()
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

func (ctx *Context) SetStrokeWidth(width float64) {
	ctx.ctx.SetStrokeWidth(width)
}

// MoveTo moves the path to x,y without connecting the path. It starts a new independent subpath.
func (ctx *Context) MoveTo(x, y float64) {
	ctx.ctx.MoveTo(x, ctx.flip(y))
}

// LineTo adds a linear path to x,y.
func (ctx *Context) LineTo(x, y float64) {
	ctx.ctx.LineTo(x, ctx.flip(y))
}

// CubeTo adds a cubic Bézier path with control points cpx1,cpy1 and cpx2,cpy2 and end point x,y.
func (ctx *Context) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) {
	ctx.ctx.CubeTo(cpx1, ctx.flip(cpy1), cpx2, ctx.flip(cpy2), x, ctx.flip(y))
}

// FillRect draws a rectangle whose top left corner is x,y
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, ctx.flip(y)-h, canvas.Rectangle(w, h))
}

// Stroke strokes the current path and resets it.
func (ctx *Context) Stroke() {
	ctx.ctx.Stroke()
}

func (ctx *Context) flip(y float64) float64 {
	return ctx.height - y
}
