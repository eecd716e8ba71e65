package waves

import (
	"fmt"

	"github.com/scottkirkwood/joywaves"
)

// textureJitter is the horizontal displacement scale in texture mode.
const textureJitter = 10

// Generate builds every curve for cfg inside a view of the given size.
//
// A degenerate configuration (no lines or no vertices) gives an empty
// Drawing. Parameters that would produce NaN geometry give an error
// wrapping ErrInvalidConfig.
func Generate(cfg Config, view Size, noise Noise) (*Drawing, error) {
	d := &Drawing{View: view}
	if cfg.Degenerate() {
		return d, nil
	}
	g, err := newGenerator(cfg, view, noise)
	if err != nil {
		return nil, err
	}

	d.Layers = append(d.Layers, g.layer(LayerWaves, Point{}))
	if cfg.Moire {
		d.Layers = append(d.Layers, g.layer(LayerMoire, Point{cfg.MoireX, cfg.MoireY}))
	}
	return d, nil
}

// generator holds everything derived from one Config for one pass.
type generator struct {
	cfg    Config
	bounds Bounds
	noise  Noise
	env    Envelope
	params EnvelopeParams
}

func newGenerator(cfg Config, view Size, noise Noise) (*generator, error) {
	if noise == nil {
		return nil, fmt.Errorf("%w: no noise field", ErrInvalidConfig)
	}
	if !(view.Width > 0 && view.Height > 0) {
		return nil, fmt.Errorf("%w: view size %vx%v", ErrInvalidConfig, view.Width, view.Height)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	env, err := EnvelopeByName(cfg.Envelope)
	if err != nil {
		return nil, err
	}
	b := ComputeBounds(view, cfg.PaperFormat)
	return &generator{
		cfg:    cfg,
		bounds: b,
		noise:  noise,
		env:    env,
		params: EnvelopeParams{
			Center:     view.Center(),
			Width:      b.Width,
			Height:     b.Height,
			PeakWidth:  cfg.PeakWidth,
			PeakHeight: cfg.PeakHeight,
		},
	}, nil
}

// layer runs one full pass with every vertex moved by offset.
func (g *generator) layer(name string, offset Point) Layer {
	var (
		field Field
		first int
	)
	if g.cfg.StraightEdges {
		field, first = g.straight(offset)
	} else {
		field = segment(joyTexture(g.cfg.Lines, g.cfg.Vertices), func(rx, ry float64) Point {
			return g.positionTexture(rx, ry).Add(offset)
		})
	}
	return Layer{
		Name:   name,
		Offset: offset,
		Curves: assemble(field, first, g.cfg.OptimizeForPlot),
	}
}

// straight lays vertices on a regular grid and pushes them up or down by
// noise. Row 0 is the undisplaced reference row and is never drawn, so the
// returned field starts at row index 1.
func (g *generator) straight(offset Point) (Field, int) {
	const first = 1
	n, m := g.cfg.Lines, g.cfg.Vertices
	b := g.bounds
	xStep := b.Width / float64(m)
	yStep := b.Height / float64(n)

	field := make(Field, 0, n-first)
	for i := first; i < n; i++ {
		yBase := float64(i)*yStep + b.Height/float64(n)/2 + b.YMargin
		line := make(Line, 0, m)
		for j := 0; j < m; j++ {
			x := float64(j)*xStep + b.Width/float64(m)/2 + b.XMargin
			p := Point{x, yBase - g.straightDisplacement(Point{x, yBase})}
			line = append(line, p.Add(offset))
		}
		field = append(field, line)
	}
	return field, first
}

// straightDisplacement amplifies the envelope nonlinearly: the envelope is
// mapped from [0, PeakWidth] to [0, 4] and cubed.
func (g *generator) straightDisplacement(p Point) float64 {
	e := g.env.Sample(p, g.params)
	dist := cube(joywaves.Remap(e, 0, g.cfg.PeakWidth, 0, 4))
	if !(dist > 0) {
		dist = 0
	}
	return dist * g.sample(p)
}

// positionTexture maps grid fractions into the drawable rectangle and
// displaces the result both ways.
func (g *generator) positionTexture(rx, ry float64) Point {
	b := g.bounds
	p := Point{rx*b.Width + b.XMargin, ry*b.Height + b.YMargin}
	n := g.sample(p)
	yOffset := g.env.Sample(p, g.params) * n
	xOffset := textureJitter * n
	return Point{p.X - xOffset, p.Y - yOffset*g.cfg.PeakHeight}
}

func (g *generator) sample(p Point) float64 {
	s := g.cfg.Smoothing
	return g.noise.Eval3(p.X/s, p.Y/s, g.cfg.Seed)
}

func cube(v float64) float64 {
	return v * v * v
}

// texel is one cell of the normalized texture grid. A texel with rowBreak set
// carries no coordinates and ends the current row.
type texel struct {
	rx, ry   float64
	rowBreak bool
}

// joyTexture lists the grid fractions row by row: lines+1 rows of
// vertices+1 columns, both running from 0 to exactly 1.
func joyTexture(lines, vertices int) []texel {
	coords := make([]texel, 0, (lines+1)*(vertices+2))
	for i := 0; i <= lines; i++ {
		ry := float64(i) / float64(lines)
		for j := 0; j <= vertices; j++ {
			coords = append(coords, texel{rx: float64(j) / float64(vertices), ry: ry})
		}
		coords = append(coords, texel{rowBreak: true})
	}
	return coords
}

// segment splits a texel stream on row breaks, positioning each cell.
// Cells after the last break are dropped.
func segment(coords []texel, position func(rx, ry float64) Point) Field {
	var (
		field Field
		line  Line
	)
	for _, c := range coords {
		if c.rowBreak {
			field = append(field, line)
			line = nil
			continue
		}
		line = append(line, position(c.rx, c.ry))
	}
	return field
}
