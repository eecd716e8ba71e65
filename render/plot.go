package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/scottkirkwood/joywaves/waves"
)

// PlotSVG writes d as an SVG sized in millimeters with one group per layer,
// so a plotter can change pens between the waves and the moiré pass.
// Curves keep their order and direction.
func PlotSVG(w io.Writer, d *waves.Drawing, style Style) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	width, height := d.View.Width, d.View.Height
	canvas.Startraw(
		fmt.Sprintf(`width="%smm"`, num(width)),
		fmt.Sprintf(`height="%smm"`, num(height)),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, num(width), num(height)))
	canvas.Title("joywaves")
	if style.Background != nil {
		canvas.Rect(0, 0, int(math.Ceil(width)), int(math.Ceil(height)), "fill="+quote(hexColor(style.Background)))
	}
	for _, l := range d.Layers {
		canvas.Gid(l.Name)
		attrs := fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round"`,
			hexColor(style.strokeFor(l)), num(style.StrokeWidth))
		for _, c := range l.Curves {
			if len(c.Points) == 0 {
				continue
			}
			canvas.Path(svgPath(c), attrs)
		}
		canvas.Gend()
	}
	canvas.End()
	return ew.err
}

// num formats a coordinate with a thousandth of a unit precision.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func quote(s string) string {
	return `"` + s + `"`
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// errWriter remembers the first write error; svgo ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
