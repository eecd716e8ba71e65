// Joyplot draws fields of noise displaced horizontal lines, joy plot style,
// for pen plotters and screens.
//
//	joyplot --lines 120 --moire --format svg,plot,toml
//	joyplot watch --config waves.toml
//	joyplot preview
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error("joyplot failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := newOptions()
	var verbose bool

	root := &cobra.Command{
		Use:          "joyplot",
		Short:        "Draw joy plot style waves",
		Long:         `Joyplot generates rows of noise displaced lines and saves them as SVG, PDF or PNG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			log.SetDefault(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, o)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	o.bindFlags(root)

	root.AddCommand(newRenderCmd(o))
	root.AddCommand(newWatchCmd(o))
	root.AddCommand(newPreviewCmd(o))
	return root
}

func newRenderCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Generate once and save (the default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, o)
		},
	}
}

func runRender(cmd *cobra.Command, o *options) error {
	s, err := newSession(cmd, o)
	if err != nil {
		return err
	}
	d, err := s.generate()
	if err != nil {
		return err
	}
	return s.export(d)
}
