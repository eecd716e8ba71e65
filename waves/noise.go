package waves

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"github.com/scottkirkwood/joywaves"
)

// Noise kinds accepted by NewNoise.
const (
	NoiseOpenSimplex = "opensimplex"
	NoisePerlin      = "perlin"
)

// Perlin parameters: smoothness, frequency scaling and octaves.
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 3
)

// Noise is smooth coherent noise in [-1, 1], deterministic for a given
// construction seed.
type Noise interface {
	Eval3(x, y, z float64) float64
}

// NoiseFunc adapts a plain function to Noise.
type NoiseFunc func(x, y, z float64) float64

// Eval3 implements Noise.
func (f NoiseFunc) Eval3(x, y, z float64) float64 {
	return f(x, y, z)
}

// NewNoise builds the session noise field of the given kind. The empty kind
// is OpenSimplex.
func NewNoise(kind string, seed int64) (Noise, error) {
	switch kind {
	case "", NoiseOpenSimplex:
		return opensimplex.New(seed), nil
	case NoisePerlin:
		return perlinNoise{perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}, nil
	}
	return nil, fmt.Errorf("%w: unknown noise %q", ErrInvalidConfig, kind)
}

type perlinNoise struct {
	p *perlin.Perlin
}

// Eval3 clamps because summed octaves can leave [-1, 1].
func (n perlinNoise) Eval3(x, y, z float64) float64 {
	return joywaves.Clamp(n.p.Noise3D(x, y, z), -1, 1)
}
