package waves

// Layer names used by Generate.
const (
	LayerWaves = "waves"
	LayerMoire = "moire"
)

// Drawing is everything one generation pass hands to a renderer.
type Drawing struct {
	View   Size
	Layers []Layer
}

// Layer is one full set of rows. The moiré layer repeats the waves layer
// moved by Offset.
type Layer struct {
	Name   string
	Offset Point
	Curves []Curve
}

// Curve is one row ready to be stroked.
type Curve struct {
	Row      int  // generation index of the row, 0 is the top
	Points   Line // in drawing order
	Smooth   bool // interpolate through the points instead of straight lines
	Reversed bool // Points run right to left
}

// field returns the points of every curve in the layer.
func (l Layer) field() Field {
	f := make(Field, len(l.Curves))
	for i, c := range l.Curves {
		f[i] = c.Points
	}
	return f
}

// assemble turns rows into smooth curves. first is the generation index of
// field[0]. With optimize, rows with an odd index run backwards so a plotter
// can zigzag down the page instead of returning to the left edge.
func assemble(field Field, first int, optimize bool) []Curve {
	curves := make([]Curve, 0, len(field))
	for k, line := range field {
		c := Curve{Row: first + k, Points: line, Smooth: true}
		if optimize && c.Row%2 == 1 {
			c.Points = reversed(line)
			c.Reversed = true
		}
		curves = append(curves, c)
	}
	return curves
}

func reversed(line Line) Line {
	out := make(Line, len(line))
	for i, p := range line {
		out[len(line)-1-i] = p
	}
	return out
}
