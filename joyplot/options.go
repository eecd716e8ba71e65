package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scottkirkwood/joywaves/waves"
)

// Output formats understood by --format.
const (
	formatSVG  = "svg"
	formatPDF  = "pdf"
	formatPNG  = "png"
	formatPlot = "plot" // layered SVG for pen plotters
	formatTOML = "toml" // the parameters used
)

var formatExt = map[string]string{
	formatSVG:  ".svg",
	formatPDF:  ".pdf",
	formatPNG:  ".png",
	formatPlot: ".plot.svg",
	formatTOML: ".toml",
}

// options are the flags shared by every command.
type options struct {
	seedHex     string
	configFile  string
	randomize   bool
	width       float64 // mm
	height      float64 // mm
	strokeWidth float64 // mm
	prefix      string
	formats     []string

	// params holds flag values. Only flags set on the command line
	// override the defaults and the config file.
	params waves.Config
}

func newOptions() *options {
	return &options{
		width:       210,
		height:      297,
		strokeWidth: 0.3,
		prefix:      "samples/waves-",
		formats:     []string{formatSVG, formatTOML},
		params:      waves.DefaultConfig(nil),
	}
}

func (o *options) bindFlags(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&o.seedHex, "seed", "", "Hex value for the seed to use")
	fs.StringVarP(&o.configFile, "config", "c", "", "TOML file with wave parameters")
	fs.BoolVar(&o.randomize, "randomize", false, "randomize smoothing, peak height and peak width")
	fs.Float64Var(&o.width, "width", o.width, "view width in mm")
	fs.Float64Var(&o.height, "height", o.height, "view height in mm")
	fs.Float64Var(&o.strokeWidth, "stroke-width", o.strokeWidth, "stroke width in mm")
	fs.StringVarP(&o.prefix, "out", "o", o.prefix, "output file prefix")
	fs.StringSliceVarP(&o.formats, "format", "f", o.formats, "output formats: svg, pdf, png, plot, toml")

	p := &o.params
	fs.IntVar(&p.Lines, "lines", p.Lines, "number of lines (10-500)")
	fs.IntVar(&p.Vertices, "vertices", p.Vertices, "vertices per line (1-500)")
	fs.Float64Var(&p.Smoothing, "smoothing", p.Smoothing, "noise scale divisor (0-200)")
	fs.Float64Var(&p.PeakHeight, "peak-height", p.PeakHeight, "envelope exponent (0-3)")
	fs.Float64Var(&p.PeakWidth, "peak-width", p.PeakWidth, "envelope amplitude (0-10000)")
	fs.BoolVar(&p.PaperFormat, "paper", p.PaperFormat, "use a portrait paper aspect ratio")
	fs.BoolVar(&p.Moire, "moire", p.Moire, "draw a second, offset pass")
	fs.Float64Var(&p.MoireX, "moire-x", p.MoireX, "moiré x offset (-5 to 5)")
	fs.Float64Var(&p.MoireY, "moire-y", p.MoireY, "moiré y offset (-5 to 5)")
	fs.BoolVar(&p.StraightEdges, "straight", p.StraightEdges, "straight grid instead of the texture layout")
	fs.BoolVar(&p.OptimizeForPlot, "optimize", p.OptimizeForPlot, "reverse every other line for plotting")
	fs.Float64Var(&p.Seed, "z", p.Seed, "noise z coordinate (0-2000), random when unset")
	fs.StringVar(&p.Envelope, "envelope", p.Envelope, "envelope: radial or uniform")
	fs.StringVar(&p.Noise, "noise", p.Noise, "noise: opensimplex or perlin")
}

// flagChanged reports whether a flag was given on the command line.
type flagChanged interface {
	Changed(name string) bool
}

// applyFlags copies every flag that was set from src into dst.
func applyFlags(fs flagChanged, src waves.Config, dst *waves.Config) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("lines", func() { dst.Lines = src.Lines })
	set("vertices", func() { dst.Vertices = src.Vertices })
	set("smoothing", func() { dst.Smoothing = src.Smoothing })
	set("peak-height", func() { dst.PeakHeight = src.PeakHeight })
	set("peak-width", func() { dst.PeakWidth = src.PeakWidth })
	set("paper", func() { dst.PaperFormat = src.PaperFormat })
	set("moire", func() { dst.Moire = src.Moire })
	set("moire-x", func() { dst.MoireX = src.MoireX })
	set("moire-y", func() { dst.MoireY = src.MoireY })
	set("straight", func() { dst.StraightEdges = src.StraightEdges })
	set("optimize", func() { dst.OptimizeForPlot = src.OptimizeForPlot })
	set("z", func() { dst.Seed = src.Seed })
	set("envelope", func() { dst.Envelope = src.Envelope })
	set("noise", func() { dst.Noise = src.Noise })
}

// checkFormats lowercases formats and rejects unknown ones.
func checkFormats(formats []string) ([]string, error) {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if _, ok := formatExt[f]; !ok {
			return nil, fmt.Errorf("unknown format %q", f)
		}
		out = append(out, f)
	}
	return out, nil
}
