package main

import (
	"image"
	"image/color"

	"github.com/spf13/cobra"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/scottkirkwood/joywaves"
	"github.com/scottkirkwood/joywaves/render"
	"github.com/scottkirkwood/joywaves/waves"
)

const (
	previewScale = 3.0 // pixels per mm of the rendered preview
	maxWinWidth  = 1000
	maxWinHeight = 900
	zStep        = 1  // noise z change per arrow press
	linesStep    = 10 // line count change per arrow press

	smoothingStep  = 5
	peakHeightStep = 0.05
	peakWidthStep  = 0.5
	verticesStep   = 10
	moireStep      = 0.25
)

func newPreviewCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Open a window to tune the waves live",
		Long: `Preview shows the waves in a window and redraws them on every key press:

  r        randomize smoothing, peak height and peak width
  s        save in the --format formats
  p m e o  toggle paper format, moiré, straight edges, plot optimization
  ← →      move the noise z coordinate
  ↑ ↓      more or fewer lines
  [ ]      less or more smoothing
  , .      lower or raise the peak height
  - =      narrower or wider peak
  9 0      fewer or more vertices per line
  h l      move the moiré pass left or right
  j k      move the moiré pass down or up
  q, Esc   quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, o)
			if err != nil {
				return err
			}
			return s.preview()
		},
	}
}

// keyAction is what the preview does after a key press.
type keyAction int

const (
	actionNone keyAction = iota
	actionRedraw
	actionSave
	actionQuit
)

// handleKey applies a key press to the session parameters.
func (s *session) handleKey(code key.Code) keyAction {
	cfg := &s.cfg
	switch code {
	case key.CodeEscape, key.CodeQ:
		return actionQuit
	case key.CodeS:
		return actionSave
	case key.CodeR:
		s.randomize()
	case key.CodeP:
		cfg.PaperFormat = !cfg.PaperFormat
	case key.CodeM:
		cfg.Moire = !cfg.Moire
	case key.CodeE:
		cfg.StraightEdges = !cfg.StraightEdges
	case key.CodeO:
		cfg.OptimizeForPlot = !cfg.OptimizeForPlot
	case key.CodeLeftArrow:
		cfg.Seed -= zStep
	case key.CodeRightArrow:
		cfg.Seed += zStep
	case key.CodeUpArrow:
		cfg.Lines += linesStep
	case key.CodeDownArrow:
		cfg.Lines -= linesStep
	case key.CodeLeftSquareBracket:
		cfg.Smoothing -= smoothingStep
	case key.CodeRightSquareBracket:
		cfg.Smoothing += smoothingStep
	case key.CodeComma:
		cfg.PeakHeight -= peakHeightStep
	case key.CodeFullStop:
		cfg.PeakHeight += peakHeightStep
	case key.CodeHyphenMinus:
		cfg.PeakWidth -= peakWidthStep
	case key.CodeEqualSign:
		cfg.PeakWidth += peakWidthStep
	case key.Code9:
		cfg.Vertices -= verticesStep
	case key.Code0:
		cfg.Vertices += verticesStep
	case key.CodeH:
		cfg.MoireX -= moireStep
	case key.CodeL:
		cfg.MoireX += moireStep
	case key.CodeJ:
		cfg.MoireY += moireStep
	case key.CodeK:
		cfg.MoireY -= moireStep
	default:
		return actionNone
	}
	cfg.Clamp()
	return actionRedraw
}

// preview runs the window event loop until the window closes. Every
// parameter change is a full regenerate; resizes only rescale the image.
func (s *session) preview() error {
	var loopErr error
	driver.Main(func(scr screen.Screen) {
		img, err := s.previewImage()
		if err != nil {
			loopErr = err
			return
		}

		winSize := joywaves.FitSize(img.Bounds().Size(), maxWinWidth, maxWinHeight)
		w, err := scr.NewWindow(&screen.NewWindowOptions{
			Width:  winSize.X,
			Height: winSize.Y,
		})
		if err != nil {
			loopErr = err
			return
		}
		defer w.Release()

		var (
			b  screen.Buffer
			sz size.Event
			d  *waves.Drawing
		)
		defer func() {
			if b != nil {
				b.Release()
			}
		}()

		for {
			switch e := w.NextEvent().(type) {
			case key.Event:
				if e.Direction != key.DirPress {
					continue
				}
				switch s.handleKey(e.Code) {
				case actionQuit:
					return
				case actionSave:
					if d == nil {
						if d, err = s.generate(); err != nil {
							s.logger.Error("Generate", "err", err)
							continue
						}
					}
					if err := s.export(d); err != nil {
						s.logger.Error("Export", "err", err)
					}
				case actionRedraw:
					d = nil
					img = s.redraw(img)
					w.Send(paint.Event{})
				}

			case paint.Event:
				if sz.WidthPx == 0 || sz.HeightPx == 0 {
					continue
				}
				if b == nil || b.Size() != sz.Size() {
					if b != nil {
						b.Release()
					}
					if b, err = scr.NewBuffer(sz.Size()); err != nil {
						loopErr = err
						return
					}
				}
				fitInto(b.RGBA(), img)
				w.Upload(image.Point{}, b, b.Bounds())
				w.Publish()

			case size.Event:
				sz = e

			case lifecycle.Event:
				if e.To == lifecycle.StageDead {
					return
				}

			case error:
				s.logger.Error("Screen", "err", e)
				return
			}
		}
	})
	return loopErr
}

// previewImage generates with the current parameters and rasterizes.
func (s *session) previewImage() (image.Image, error) {
	d, err := s.generate()
	if err != nil {
		return nil, err
	}
	return render.Raster(d, s.style, previewScale), nil
}

// redraw returns the image for the current parameters, or prev when they
// cannot be drawn.
func (s *session) redraw(prev image.Image) image.Image {
	img, err := s.previewImage()
	if err != nil {
		s.logger.Error("Generate", "err", err)
		return prev
	}
	return img
}

// fitInto scales src to fit dst, keeping its aspect ratio, centered on white.
// A nil src leaves dst blank.
func fitInto(dst *image.RGBA, src image.Image) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if src == nil {
		return
	}
	fit := joywaves.FitSize(src.Bounds().Size(), dst.Bounds().Dx(), dst.Bounds().Dy())
	if fit.X == 0 || fit.Y == 0 {
		return
	}
	scaled := image.NewRGBA(image.Rectangle{Max: fit})
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)
	dp := joywaves.VpCenter(scaled, dst.Bounds().Dx(), dst.Bounds().Dy())
	draw.Draw(dst, scaled.Bounds().Add(dp), scaled, image.Point{}, draw.Src)
}
