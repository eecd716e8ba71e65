// Package waves generates joy plot style fields of horizontal, noise
// displaced curves.
//
// Generate is a pure function of a Config, a view size and a Noise field;
// everything it returns is freshly allocated and owned by the caller.
package waves

import "math"

// Point is a position in view coordinates, y grows downward.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Distance is the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Line is one row of the field, left to right.
type Line []Point

// Field is every row of one generation pass, top to bottom.
type Field []Line
