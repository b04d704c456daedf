package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/minefield/blast"
	"github.com/katalvlaran/minefield/core"
)

func newWatchCommand(ctx context.Context, input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Reprint the max-efficiency summary every time FILE changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, input)
			if err != nil {
				return err
			}
			defer s.finish()

			return s.watch(ctx, args[0])
		},
	}
}

// watch prints a summary of path, then reprints it on every write until ctx
// is done. The parent directory is watched so editors that replace the file
// are picked up too. Load failures after startup are logged, not returned.
func (s *session) watch(ctx context.Context, path string) error {
	path = filepath.Clean(path)
	if err := s.reload(path); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watcher")
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return errors.Wrapf(err, "watch %s", filepath.Dir(path))
	}
	s.log.WithField("path", path).Info("watching")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			if err := s.reload(path); err != nil {
				s.log.WithError(err).Warn("reload failed")
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.WithError(err).Warn("watcher error")
		}
	}
}

func (s *session) reload(path string) error {
	g, err := s.load(path)
	if err != nil {
		return err
	}

	return s.summarize(g)
}

// summarize prints "mines N, max mine I, efficiency E, area A".
func (s *session) summarize(g *core.Graph) error {
	defer s.rec.Track("summary")()

	if g.Len() == 0 {
		fmt.Fprintln(s.out, "mines 0")
		return nil
	}
	idx, eff, err := blast.MaxEfficiency(g)
	if err != nil {
		return err
	}
	area, err := blast.ChainArea(g, idx, s.cfg.Samples, s.cfg.EstimatorOptions()...)
	if err != nil {
		return err
	}
	s.rec.SetChainSize(eff)
	s.rec.AddSamples(s.cfg.Samples)
	fmt.Fprintf(s.out, "mines %d, max mine %d, efficiency %d, area %.4f\n", g.Len(), idx, eff, area)

	return nil
}
