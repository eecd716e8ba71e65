package render

import (
	"fmt"

	"github.com/tdewolff/canvas"

	"github.com/scottkirkwood/joywaves/waves"
)

// curvePath builds c as a canvas path in drawing coordinates. Smooth curves
// pass through every vertex with continuous curvature.
func curvePath(c waves.Curve) *canvas.Path {
	pts := c.Points
	n := len(pts)
	switch n {
	case 0:
		return &canvas.Path{}
	case 1:
		return (&canvas.Path{}).MoveTo(pts[0].X, pts[0].Y)
	}
	// A polyline whose ends meet is closed by canvas, a row never is.
	last := n
	if n > 2 && pts[0] == pts[n-1] {
		last = n - 1
	}
	poly := &canvas.Polyline{}
	for _, pt := range pts[:last] {
		poly.Add(pt.X, pt.Y)
	}
	var p *canvas.Path
	if c.Smooth {
		p = poly.Smoothen()
	} else {
		p = poly.ToPath()
	}
	if last < n {
		p.LineTo(pts[n-1].X, pts[n-1].Y)
	}
	return p
}

// pather is the subset of a 2D path API the curves are traced with.
type pather interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64)
	Stroke()
}

// trace replays c onto p as one subpath and strokes it. A single point is
// drawn as a zero length line so it still shows up.
func trace(p pather, c waves.Curve) {
	if len(c.Points) == 0 {
		return
	}
	if len(c.Points) == 1 {
		pt := c.Points[0]
		p.MoveTo(pt.X, pt.Y)
		p.LineTo(pt.X, pt.Y)
		p.Stroke()
		return
	}
	curvePath(c).Iterate(
		func(_, end canvas.Point) { p.MoveTo(end.X, end.Y) },
		func(_, end canvas.Point) { p.LineTo(end.X, end.Y) },
		func(start, cp, end canvas.Point) {
			// raise to a cubic
			cp1 := start.Add(cp.Sub(start).Mul(2.0 / 3.0))
			cp2 := end.Add(cp.Sub(end).Mul(2.0 / 3.0))
			p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
		},
		func(_, cp1, cp2, end canvas.Point) { p.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y) },
		func(_ canvas.Point, _, _, _ float64, _, _ bool, end canvas.Point) { p.LineTo(end.X, end.Y) },
		func(_, end canvas.Point) { p.LineTo(end.X, end.Y) },
	)
	p.Stroke()
}

// svgPath is the SVG path data of c. A single point gets a zero length
// segment so plotters still put the pen down.
func svgPath(c waves.Curve) string {
	if len(c.Points) == 1 {
		pt := c.Points[0]
		return fmt.Sprintf("M%s %sh0", num(pt.X), num(pt.Y))
	}
	return curvePath(c).ToSVG()
}
