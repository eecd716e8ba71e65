package waves

import (
	"fmt"
	"math"

	"github.com/scottkirkwood/joywaves"
)

// Envelope names accepted by EnvelopeByName and Config.Envelope.
const (
	EnvelopeRadial  = "radial"
	EnvelopeUniform = "uniform"
)

// EnvelopeParams are the inputs shared by every envelope.
type EnvelopeParams struct {
	Center     Point
	Width      float64 // distance at which the radial falloff reaches zero
	Height     float64
	PeakWidth  float64
	PeakHeight float64
}

// Envelope scales noise displacement at a point. Samples are never negative.
type Envelope interface {
	Sample(p Point, e EnvelopeParams) float64
}

// RadialEnvelope falls off with distance from the center: distance 0 maps to
// PeakWidth and distance Width maps to 0, then the value is raised to
// PeakHeight. Past Width the remapped value goes negative, which odd or
// fractional exponents floor to 0 and even exponents turn into a ring.
type RadialEnvelope struct{}

// Sample implements Envelope.
func (RadialEnvelope) Sample(p Point, e EnvelopeParams) float64 {
	d := p.Distance(e.Center)
	v := joywaves.Remap(d, 0, e.Width, e.PeakWidth, 0)
	return floorPow(v, e.PeakHeight)
}

// UniformEnvelope applies the same amplitude everywhere.
type UniformEnvelope struct{}

// Sample implements Envelope.
func (UniformEnvelope) Sample(_ Point, e EnvelopeParams) float64 {
	return floorPow(e.PeakWidth, e.PeakHeight)
}

// floorPow is v^exp floored at 0. A negative v with a fractional exponent
// is NaN, which is floored too.
func floorPow(v, exp float64) float64 {
	r := math.Pow(v, exp)
	if !(r > 0) {
		return 0
	}
	return r
}

// EnvelopeByName returns the envelope registered under name. The empty
// name is the radial envelope.
func EnvelopeByName(name string) (Envelope, error) {
	switch name {
	case "", EnvelopeRadial:
		return RadialEnvelope{}, nil
	case EnvelopeUniform:
		return UniformEnvelope{}, nil
	}
	return nil, fmt.Errorf("%w: unknown envelope %q", ErrInvalidConfig, name)
}
