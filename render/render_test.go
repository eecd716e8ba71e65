package render

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/canvas"

	"github.com/scottkirkwood/joywaves/waves"
)

func lineDrawing() *waves.Drawing {
	return &waves.Drawing{
		View: waves.Size{Width: 100, Height: 50},
		Layers: []waves.Layer{{
			Name: waves.LayerWaves,
			Curves: []waves.Curve{{
				Row:    1,
				Points: waves.Line{{X: 10, Y: 25}, {X: 50, Y: 25}, {X: 90, Y: 25}},
				Smooth: true,
			}},
		}},
	}
}

func generated(t *testing.T, moire bool) *waves.Drawing {
	t.Helper()
	cfg := waves.DefaultConfig(nil)
	cfg.Lines, cfg.Vertices = 20, 30
	cfg.Moire = moire
	noise, err := waves.NewNoise(waves.NoiseOpenSimplex, 1)
	require.NoError(t, err)
	d, err := waves.Generate(cfg, waves.Size{Width: 210, Height: 297}, noise)
	require.NoError(t, err)
	return d
}

func TestPlotSVG(t *testing.T) {
	d := generated(t, true)
	var buf bytes.Buffer
	require.NoError(t, PlotSVG(&buf, d, DefaultStyle()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"), "%.40q", out)
	assert.Contains(t, out, `viewBox="0 0 210 297"`)
	assert.Contains(t, out, `<g id="waves">`)
	assert.Contains(t, out, `<g id="moire">`)
	assert.Equal(t, 2*19, strings.Count(out, "<path "))
	assert.Contains(t, out, `stroke="#000000"`)
}

func TestPlotSVGMoireColor(t *testing.T) {
	d := generated(t, true)
	style := DefaultStyle()
	style.MoireStroke = color.RGBA{R: 0xff, A: 0xff}
	style.Background = color.White
	var buf bytes.Buffer
	require.NoError(t, PlotSVG(&buf, d, style))
	assert.Equal(t, 19, strings.Count(buf.String(), `stroke="#ff0000"`))
	assert.Contains(t, buf.String(), `fill="#ffffff"`)
}

func TestSVGPath(t *testing.T) {
	line := waves.Curve{Points: waves.Line{{X: 0, Y: 0}, {X: 6, Y: 0}}, Smooth: true}
	assert.Equal(t, "M0 0H6", svgPath(line))

	dot := waves.Curve{Points: waves.Line{{X: 1.5, Y: 2.25}}}
	assert.Equal(t, "M1.5 2.25h0", svgPath(dot))

	wave := waves.Curve{Points: waves.Line{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: 0}}, Smooth: true}
	d := svgPath(wave)
	assert.True(t, strings.HasPrefix(d, "M0 0C"), d)
	assert.Equal(t, 2, strings.Count(d, "C"), d)
}

func TestNum(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		10:        "10",
		100:       "100",
		1.25:      "1.25",
		-3.14159:  "-3.142",
		-0.0001:   "0",
		123.45678: "123.457",
	}
	for v, want := range tests {
		assert.Equal(t, want, num(v), "num(%v)", v)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPlotSVGWriteError(t *testing.T) {
	err := PlotSVG(failWriter{}, lineDrawing(), DefaultStyle())
	assert.EqualError(t, err, "disk full")
}

func TestRaster(t *testing.T) {
	style := DefaultStyle()
	style.StrokeWidth = 2
	img := Raster(lineDrawing(), style, 2)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	r, _, _, _ := img.At(100, 50).RGBA()
	assert.Less(t, r, uint32(0x8000), "curve pixel is dark")
	r, _, _, _ = img.At(100, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r, "background is white")
}

func TestRasterEmpty(t *testing.T) {
	img := Raster(&waves.Drawing{}, DefaultStyle(), 1)
	assert.Equal(t, 1, img.Bounds().Dx())
}

func TestVector(t *testing.T) {
	d := generated(t, false)
	ctx := NewContext(d)
	style := DefaultStyle()
	style.Background = color.White
	Vector(ctx, d, style)

	fname := filepath.Join(t.TempDir(), "waves.svg")
	require.NoError(t, ctx.WriteSVG(fname))
	got, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.Contains(t, string(got), "<svg")
	assert.Contains(t, string(got), "<path")
}

func wave() waves.Curve {
	return waves.Curve{
		Points: waves.Line{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: -3}, {X: 30, Y: 8}, {X: 40, Y: 0}},
		Smooth: true,
	}
}

func TestCurvePathInterpolates(t *testing.T) {
	c := wave()
	p := curvePath(c)
	coords := p.Coords()
	require.Len(t, coords, len(c.Points))
	for i, pt := range c.Points {
		assert.InDelta(t, pt.X, coords[i].X, 1e-9, "vertex %d", i)
		assert.InDelta(t, pt.Y, coords[i].Y, 1e-9, "vertex %d", i)
	}
	assert.False(t, p.Closed())
}

func TestCurvePathTangents(t *testing.T) {
	type cube struct{ start, cp1, cp2, end canvas.Point }
	var cubes []cube
	noop := func(_, _ canvas.Point) {}
	curvePath(wave()).Iterate(noop, noop,
		func(_, _, _ canvas.Point) { t.Error("unexpected quadratic") },
		func(start, cp1, cp2, end canvas.Point) { cubes = append(cubes, cube{start, cp1, cp2, end}) },
		func(_ canvas.Point, _, _, _ float64, _, _ bool, _ canvas.Point) { t.Error("unexpected arc") },
		noop)
	require.Len(t, cubes, 4)
	for i := 1; i < len(cubes); i++ {
		in := cubes[i-1].end.Sub(cubes[i-1].cp2)
		out := cubes[i].cp1.Sub(cubes[i].start)
		assert.InDelta(t, in.X, out.X, 1e-9, "join %d", i)
		assert.InDelta(t, in.Y, out.Y, 1e-9, "join %d", i)
	}
}

func TestCurvePathNotSmooth(t *testing.T) {
	c := waves.Curve{Points: waves.Line{{X: 0, Y: 0}, {X: 4, Y: 2}, {X: 8, Y: 0}}}
	assert.Equal(t, "M0 0L4 2L8 0", curvePath(c).ToSVG())
}

func TestCurvePathEndsMeet(t *testing.T) {
	c := waves.Curve{
		Points: waves.Line{{X: 0, Y: 0}, {X: 10, Y: 5}, {X: 20, Y: -5}, {X: 0, Y: 0}},
		Smooth: true,
	}
	p := curvePath(c)
	assert.False(t, p.Closed(), "rows are never closed")
	assert.Len(t, p.Coords(), len(c.Points))
}

func TestCurvePathShort(t *testing.T) {
	assert.True(t, curvePath(waves.Curve{Smooth: true}).Empty())
	assert.True(t, curvePath(waves.Curve{Points: waves.Line{{X: 1, Y: 1}}, Smooth: true}).Empty())
}

type recorder struct {
	moves, lines, cubes, strokes int
}

func (r *recorder) MoveTo(x, y float64)                         { r.moves++ }
func (r *recorder) LineTo(x, y float64)                         { r.lines++ }
func (r *recorder) CubeTo(cpx1, cpy1, cpx2, cpy2, x, y float64) { r.cubes++ }
func (r *recorder) Stroke()                                     { r.strokes++ }

func TestTrace(t *testing.T) {
	var r recorder
	trace(&r, waves.Curve{Points: waves.Line{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}, Smooth: true})
	assert.Equal(t, recorder{moves: 1, cubes: 2, strokes: 1}, r)

	r = recorder{}
	trace(&r, waves.Curve{Points: waves.Line{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}}})
	assert.Equal(t, recorder{moves: 1, lines: 2, strokes: 1}, r)

	r = recorder{}
	trace(&r, waves.Curve{Points: waves.Line{{X: 3, Y: 3}}})
	assert.Equal(t, recorder{moves: 1, lines: 1, strokes: 1}, r)

	r = recorder{}
	trace(&r, waves.Curve{})
	assert.Equal(t, recorder{}, r)
}

func TestPlotSVGFractionalSize(t *testing.T) {
	d := lineDrawing()
	d.View = waves.Size{Width: 210.5, Height: 297.25}
	var buf bytes.Buffer
	require.NoError(t, PlotSVG(&buf, d, DefaultStyle()))
	out := buf.String()
	assert.Contains(t, out, `width="210.5mm"`)
	assert.Contains(t, out, `height="297.25mm"`)
	assert.Contains(t, out, `viewBox="0 0 210.5 297.25"`)
}
