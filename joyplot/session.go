package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/scottkirkwood/joywaves"
	"github.com/scottkirkwood/joywaves/render"
	"github.com/scottkirkwood/joywaves/waves"
)

// session is the state behind one run: the seed, the noise field built from
// it, and the current parameters. Generation always happens on the goroutine
// that owns the session.
type session struct {
	logger  *log.Logger
	seed    joywaves.Seed
	rng     *rand.Rand
	noise   waves.Noise
	noiseOf string // kind the noise field was built for
	base    waves.Config // defaults plus flags, before the config file
	cfg     waves.Config
	view    waves.Size
	style   render.Style
	prefix  string
	formats []string

	configFile string
	cmd        flagChanged
	flags      waves.Config
}

func newSession(cmd *cobra.Command, o *options) (*session, error) {
	logger := loggerFromContext(cmd.Context())
	seed, err := joywaves.Init(o.seedHex)
	if err != nil {
		return nil, err
	}
	formats, err := checkFormats(o.formats)
	if err != nil {
		return nil, err
	}
	if !(o.width > 0 && o.height > 0) {
		return nil, fmt.Errorf("view must be larger than 0x0, got %vx%v", o.width, o.height)
	}

	s := &session{
		logger:     logger,
		seed:       seed,
		rng:        seed.Rand(),
		view:       waves.Size{Width: o.width, Height: o.height},
		prefix:     o.prefix,
		formats:    formats,
		configFile: o.configFile,
		cmd:        cmd.Flags(),
		flags:      o.params,
	}
	s.style = render.DefaultStyle()
	s.style.StrokeWidth = o.strokeWidth

	s.base = waves.DefaultConfig(s.rng)
	if err := s.reload(); err != nil {
		return nil, err
	}
	if o.randomize {
		s.randomize()
	}

	if err := s.ensureNoise(); err != nil {
		return nil, err
	}
	logger.Debug("Session ready", "seed", seed.Hex(), "noise", s.cfg.Noise, "z", s.cfg.Seed)
	return s, nil
}

// reload rebuilds the parameters: defaults, then the config file, then flags.
func (s *session) reload() error {
	cfg := s.base
	if s.configFile != "" {
		var err error
		if cfg, err = waves.LoadConfig(s.configFile, cfg); err != nil {
			return err
		}
	}
	applyFlags(s.cmd, s.flags, &cfg)
	cfg.Clamp()
	s.cfg = cfg
	return nil
}

// ensureNoise builds the noise field, again only if the noise kind changed.
// The seed is always the session seed.
func (s *session) ensureNoise() error {
	if s.noise != nil && s.noiseOf == s.cfg.Noise {
		return nil
	}
	noise, err := waves.NewNoise(s.cfg.Noise, s.seed.GetSeed())
	if err != nil {
		return err
	}
	s.noise, s.noiseOf = noise, s.cfg.Noise
	return nil
}

func (s *session) randomize() {
	s.cfg.Randomize(s.rng)
	s.logger.Debug("Randomized", "smoothing", s.cfg.Smoothing,
		"peak_height", s.cfg.PeakHeight, "peak_width", s.cfg.PeakWidth)
}

// generate runs one full pass with the current parameters.
func (s *session) generate() (*waves.Drawing, error) {
	p := newProgress(s.logger)
	d, err := waves.Generate(s.cfg, s.view, s.noise)
	if err != nil {
		return nil, err
	}
	curves := 0
	for _, l := range d.Layers {
		curves += len(l.Curves)
	}
	p.done("Generated", "layers", len(d.Layers), "curves", curves)
	return d, nil
}

// export saves d in every requested format. All files share one base name.
func (s *session) export(d *waves.Drawing) error {
	var errs []error
	for _, f := range s.formats {
		if err := s.exportFormat(d, f); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f, err))
		}
	}
	return errors.Join(errs...)
}

func (s *session) exportFormat(d *waves.Drawing, format string) error {
	ext := formatExt[format]
	switch format {
	case formatSVG, formatPDF, formatPNG:
		ctx := render.NewContext(d)
		render.Vector(ctx, d, s.style)
		return s.seed.SafeWrite(ctx, s.prefix, ext)
	case formatPlot:
		return s.seed.SafeWriteFunc(s.prefix, ext, func(fname string) error {
			f, err := os.Create(fname)
			if err != nil {
				return err
			}
			if err := render.PlotSVG(f, d, s.style); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	case formatTOML:
		return s.seed.SafeWriteFunc(s.prefix, ext, s.cfg.Save)
	}
	return fmt.Errorf("unknown format %q", format)
}
