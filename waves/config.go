package waves

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/scottkirkwood/joywaves"
)

// ErrInvalidConfig is wrapped by every error caused by unusable parameters.
var ErrInvalidConfig = errors.New("invalid configuration")

// maxSeed is the upper bound of the noise z seed.
const maxSeed = 2000

// Config is the parameter set of one generation pass.
type Config struct {
	Lines           int     `toml:"n_lines"`
	Vertices        int     `toml:"n_vertices"`
	Smoothing       float64 `toml:"smoothing"`   // divides coordinates before sampling noise
	PeakHeight      float64 `toml:"peak_height"` // envelope exponent
	PeakWidth       float64 `toml:"peak_width"`  // envelope amplitude at the reference distance
	PaperFormat     bool    `toml:"paper_format"`
	Moire           bool    `toml:"moire"`
	MoireX          float64 `toml:"moire_x"`
	MoireY          float64 `toml:"moire_y"`
	StraightEdges   bool    `toml:"straight_edges"`
	OptimizeForPlot bool    `toml:"optimize4plot"`
	Seed            float64 `toml:"seed"` // noise z coordinate
	Envelope        string  `toml:"envelope"`
	// Noise is only read when the session noise field is built.
	Noise string `toml:"noise"`
}

// DefaultConfig returns the stock parameters. The noise z seed is drawn from
// r, or left at 0 when r is nil.
func DefaultConfig(r *rand.Rand) Config {
	cfg := Config{
		Lines:         260,
		Vertices:      200,
		Smoothing:     50,
		PeakHeight:    1,
		PeakWidth:     8,
		PaperFormat:   true,
		StraightEdges: true,
		MoireX:        3,
		MoireY:        3,
		Envelope:      EnvelopeRadial,
		Noise:         NoiseOpenSimplex,
	}
	if r != nil {
		cfg.Seed = r.Float64() * maxSeed
	}
	return cfg
}

// Randomize rerolls the shape of the waves: smoothing, peak height and peak width.
func (c *Config) Randomize(r *rand.Rand) {
	c.Smoothing = joywaves.Lerp(50, 100, r.Float64())
	c.PeakHeight = joywaves.Lerp(1, 1.1, r.Float64())
	c.PeakWidth = joywaves.Lerp(8, 10, r.Float64())
}

// Clamp forces every parameter into the range the controls allow.
// Generate does not call it.
func (c *Config) Clamp() {
	c.Lines = joywaves.ClampInt(c.Lines, 10, 500)
	c.Vertices = joywaves.ClampInt(c.Vertices, 1, 500)
	c.Smoothing = joywaves.Clamp(c.Smoothing, 0, 200)
	c.PeakHeight = joywaves.Clamp(c.PeakHeight, 0, 3)
	c.PeakWidth = joywaves.Clamp(c.PeakWidth, 0, 10000)
	c.Seed = joywaves.Clamp(c.Seed, 0, maxSeed)
	c.MoireX = joywaves.Clamp(c.MoireX, -5, 5)
	c.MoireY = joywaves.Clamp(c.MoireY, -5, 5)
}

// Degenerate is true when the configuration produces no geometry at all.
func (c Config) Degenerate() bool {
	return c.Lines <= 0 || c.Vertices <= 0
}

// Validate reports parameters that would turn into NaN geometry.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"smoothing", c.Smoothing},
		{"peak_height", c.PeakHeight},
		{"peak_width", c.PeakWidth},
		{"moire_x", c.MoireX},
		{"moire_y", c.MoireY},
		{"seed", c.Seed},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidConfig, f.name, f.v)
		}
	}
	if c.Smoothing == 0 {
		return fmt.Errorf("%w: smoothing must not be 0", ErrInvalidConfig)
	}
	if c.StraightEdges && c.PeakWidth == 0 {
		return fmt.Errorf("%w: peak_width must not be 0 with straight edges", ErrInvalidConfig)
	}
	if _, err := EnvelopeByName(c.Envelope); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads a TOML file over base. Keys missing from the file keep
// the value they have in base.
func LoadConfig(fname string, base Config) (Config, error) {
	f, err := os.Open(fname)
	if err != nil {
		return base, err
	}
	defer f.Close()
	cfg, err := DecodeConfig(f, base)
	if err != nil {
		return base, fmt.Errorf("reading %s: %w", fname, err)
	}
	return cfg, nil
}

// DecodeConfig is LoadConfig for an io.Reader.
func DecodeConfig(r io.Reader, base Config) (Config, error) {
	cfg := base
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Save writes c as TOML to fname.
func (c Config) Save(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
