package main

import (
	"context"
	"errors"
	"fmt"
	"hash/crc64"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Regenerate and save every time the config file changes",
		Long: `Watch renders once, then monitors the --config file and renders again
whenever its contents change. Stop it with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.configFile == "" {
				return errors.New("watch needs --config")
			}
			s, err := newSession(cmd, o)
			if err != nil {
				return err
			}
			return s.watch(cmd.Context())
		},
	}
}

// watch renders, then renders again on every content change of the config
// file until ctx is done. Events are handled one at a time.
func (s *session) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(s.configFile)
	if err != nil {
		return err
	}
	// Editors often replace the file, so watch its folder
	folder := filepath.Dir(target)
	if err := watcher.Add(folder); err != nil {
		return fmt.Errorf("problem adding folder watcher: %w", err)
	}
	s.logger.Info("Monitoring", "file", target)

	changes := newChangeDetector()
	changes.changed(target)
	s.rerender()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !changes.changed(target) {
				s.logger.Debug("File unchanged", "file", target)
				continue
			}
			if err := s.reload(); err != nil {
				s.logger.Error("Keeping previous parameters", "err", err)
				continue
			}
			s.rerender()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("Watcher", "err", err)
		}
	}
}

// rerender logs failures instead of returning them so watching continues.
func (s *session) rerender() {
	if err := s.ensureNoise(); err != nil {
		s.logger.Error("Noise", "err", err)
		return
	}
	d, err := s.generate()
	if err != nil {
		s.logger.Error("Generate", "err", err)
		return
	}
	if err := s.export(d); err != nil {
		s.logger.Error("Export", "err", err)
	}
}

// changeDetector remembers file checksums to skip events that did not
// change the contents, such as a save without edits.
type changeDetector struct {
	table *crc64.Table
	crc   map[string]uint64
}

func newChangeDetector() *changeDetector {
	return &changeDetector{
		table: crc64.MakeTable(crc64.ECMA),
		crc:   make(map[string]uint64),
	}
}

// changed reports whether fname differs from the last time it was seen.
// Unreadable files count as unchanged.
func (c *changeDetector) changed(fname string) bool {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return false
	}
	sum := crc64.Checksum(bytes, c.table)
	if old, ok := c.crc[fname]; ok && old == sum {
		return false
	}
	c.crc[fname] = sum
	return true
}
