package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/minefield/bfs"
	"github.com/katalvlaran/minefield/blast"
	"github.com/katalvlaran/minefield/core"
	"github.com/katalvlaran/minefield/montecarlo"
)

func newRootCommand(ctx context.Context, input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "minefield",
		Short:        "Chain-reaction queries over a field of circular mines.",
		Version:      version,
		SilenceUsage: true,
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&input.configPath, "config", "c", "", "path to config file")
	pf.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	pf.BoolVar(&input.jsonLogger, "json-log", false, "output logs in json format")
	pf.Int64Var(&input.seed, "seed", 0, "random seed for area estimates, 0 seeds from the clock")
	pf.IntVar(&input.samples, "samples", montecarlo.DefaultSamples, "Monte Carlo sample count")
	pf.IntVar(&input.workers, "workers", 1, "number of sampling goroutines")
	pf.BoolVar(&input.stats, "stats", false, "log query metrics when done")

	rootCmd.AddCommand(
		newEfficiencyCommand(input),
		newMaxCommand(input),
		newExplodeCommand(input),
		newAreaCommand(input),
		newMatrixCommand(input),
		newRoundsCommand(ctx, input),
		newWatchCommand(ctx, input),
	)

	return rootCmd
}

// withGraph wraps a query: it opens a session, loads args[0] and runs fn.
func withGraph(input *Input, fn func(s *session, g *core.Graph, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd, input)
		if err != nil {
			return err
		}
		defer s.finish()

		g, err := s.load(args[0])
		if err != nil {
			return err
		}

		return fn(s, g, args[1:])
	}
}

func newEfficiencyCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "efficiency FILE INDEX",
		Short: "Print how many mines detonate when mine INDEX explodes",
		Args:  cobra.ExactArgs(2),
		RunE: withGraph(input, func(s *session, g *core.Graph, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			defer s.rec.Track("efficiency")()

			e, err := blast.Efficiency(g, i)
			if err != nil {
				return err
			}
			s.rec.SetChainSize(e)
			fmt.Fprintln(s.out, e)

			return nil
		}),
	}
}

func newMaxCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "max FILE",
		Short: "Print the index and efficiency of the most efficient mine",
		Args:  cobra.ExactArgs(1),
		RunE: withGraph(input, func(s *session, g *core.Graph, _ []string) error {
			defer s.rec.Track("max")()

			idx, eff, err := blast.MaxEfficiency(g)
			if err != nil {
				return err
			}
			s.rec.SetChainSize(eff)
			fmt.Fprintf(s.out, "%d %d\n", idx, eff)

			return nil
		}),
	}
}

func newExplodeCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "explode FILE X Y R",
		Short: "Print the mines detonated by a rocket hitting circle (X, Y, R)",
		Args:  cobra.ExactArgs(4),
		RunE: withGraph(input, func(s *session, g *core.Graph, args []string) error {
			var v [3]float64
			for k, a := range args {
				f, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", a, err)
				}
				v[k] = f
			}
			defer s.rec.Track("explode")()

			chain, err := blast.Explode(g, v[0], v[1], v[2])
			if err != nil {
				return err
			}
			s.rec.SetChainSize(len(chain))
			fmt.Fprintln(s.out, joinInts(chain))

			return nil
		}),
	}
}

func newAreaCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "area FILE",
		Short: "Estimate the area covered by a chain reaction",
		Long: "Estimate, by Monte Carlo sampling, the area of the union of the circles detonated by one mine.\n" +
			"Without --index the most efficient mine is used.",
		Args: cobra.ExactArgs(1),
	}
	cmd.Flags().IntVarP(&input.index, "index", "i", 0, "mine starting the chain (default: most efficient)")
	cmd.RunE = withGraph(input, func(s *session, g *core.Graph, _ []string) error {
		defer s.rec.Track("area")()

		idx := input.index
		if !cmd.Flags().Changed("index") {
			var err error
			if idx, err = blast.MaxEfficiencyIndex(g); err != nil {
				return err
			}
		}
		area, err := blast.ChainArea(g, idx, s.cfg.Samples, s.cfg.EstimatorOptions()...)
		if err != nil {
			return err
		}
		s.rec.AddSamples(s.cfg.Samples)
		s.log.WithField("mine", idx).Debug("area estimated")
		fmt.Fprintf(s.out, "%.6f\n", area)

		return nil
	})

	return cmd
}

func newMatrixCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix FILE",
		Short: "Print the detonation adjacency matrix",
		Args:  cobra.ExactArgs(1),
		RunE: withGraph(input, func(s *session, g *core.Graph, _ []string) error {
			_, err := io.WriteString(s.out, g.String())

			return err
		}),
	}
}

func newRoundsCommand(ctx context.Context, input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "rounds FILE INDEX",
		Short: "Print the mines detonating in each round after mine INDEX explodes",
		Args:  cobra.ExactArgs(2),
		RunE: withGraph(input, func(s *session, g *core.Graph, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			defer s.rec.Track("rounds")()

			res, err := bfs.Rounds(g, []int{i}, bfs.WithContext(ctx))
			if err != nil {
				return err
			}
			s.rec.SetChainSize(len(res.Order))
			for k, layer := range res.Layers() {
				fmt.Fprintf(s.out, "%d: %s\n", k, joinInts(layer))
			}

			return nil
		}),
	}
}

func joinInts(xs []int) string {
	var sb strings.Builder
	for k, x := range xs {
		if k > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}
