package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/minefield/config"
	"github.com/katalvlaran/minefield/core"
	"github.com/katalvlaran/minefield/loader"
	"github.com/katalvlaran/minefield/metrics"
)

// Input contains the flag values of the root command.
type Input struct {
	configPath string
	verbose    bool
	jsonLogger bool
	seed       int64
	samples    int
	workers    int
	stats      bool
	index      int
}

// session is the resolved state shared by one command run.
type session struct {
	cfg *config.Config
	log *logrus.Entry
	rec *metrics.Recorder
	out io.Writer
}

// newSession loads the config, applies flag overrides and builds the logger.
func newSession(cmd *cobra.Command, input *Input) (*session, error) {
	cfg, used, err := config.Load(input.configPath)
	if err != nil {
		return nil, err
	}

	input.override(cfg, cmd.Flags())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := newLogger(cfg.Log, cmd.ErrOrStderr()).WithField("run", uuid.NewString())
	if used != "" {
		log.WithField("config", used).Debug("config loaded")
	}

	s := &session{cfg: cfg, log: log, out: cmd.OutOrStdout()}
	if input.stats {
		s.rec = metrics.New()
	}

	return s, nil
}

// override copies explicitly set flags over the file values.
func (i *Input) override(cfg *config.Config, flags *pflag.FlagSet) {
	if flags.Changed("seed") {
		cfg.Seed = i.seed
	}
	if flags.Changed("samples") {
		cfg.Samples = i.samples
	}
	if flags.Changed("workers") {
		cfg.Workers = i.workers
	}
	if i.verbose {
		cfg.Log.Level = logrus.DebugLevel.String()
	}
	if i.jsonLogger {
		cfg.Log.Format = config.FormatJSON
	}
}

func newLogger(lc config.LogConfig, w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	if level, err := logrus.ParseLevel(lc.Level); err == nil {
		l.SetLevel(level)
	}
	if lc.Format == config.FormatJSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		tty := isTerminal(w)
		l.SetFormatter(&logrus.TextFormatter{
			ForceColors:   tty,
			DisableColors: !tty,
			FullTimestamp: true,
		})
	}

	return l
}

func isTerminal(w io.Writer) bool {
	switch v := w.(type) {
	case *os.File:
		return isatty.IsTerminal(v.Fd()) || isatty.IsCygwinTerminal(v.Fd())
	default:
		return false
	}
}

func (s *session) load(path string) (*core.Graph, error) {
	g, err := loader.Load(path, loader.WithLogger(s.log))
	s.rec.LoadDone(err)

	return g, err
}

// finish logs the metrics snapshot when --stats is set.
func (s *session) finish() {
	if s.rec == nil {
		return
	}
	snap, err := s.rec.Snapshot()
	if err != nil {
		s.log.WithError(err).Warn("metrics snapshot failed")
		return
	}
	fields := make(logrus.Fields, len(snap))
	for k, v := range snap {
		fields[k] = v
	}
	s.log.WithFields(fields).Info("stats")
}
