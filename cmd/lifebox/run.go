package main

import (
	"fmt"
	"log/slog"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"lifebox/internal/config"
	"lifebox/internal/input"
	"lifebox/internal/sandbox"
	"lifebox/internal/telemetry"
)

type runOptions struct {
	generations int
	randomize   bool
	noise       bool
	plot        bool
}

func newRunCmd(cfg *config.Config) *cobra.Command {
	ro := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "step the grid headlessly and report population",
		RunE: func(cmd *cobra.Command, args []string) error {
			return headless(cmd, cfg, ro)
		},
	}
	cmd.Flags().IntVar(&ro.generations, "generations", 100, "number of generations to compute")
	cmd.Flags().BoolVar(&ro.randomize, "randomize", false, "seed the grid with uniform noise at the configured bias")
	cmd.Flags().BoolVar(&ro.noise, "noise", false, "seed the grid with perlin noise at the configured bias")
	cmd.Flags().BoolVar(&ro.plot, "plot", false, "print a population plot when done")
	return cmd
}

func headless(cmd *cobra.Command, cfg *config.Config, ro *runOptions) error {
	if ro.generations < 0 {
		return fmt.Errorf("--generations must not be negative, got %d", ro.generations)
	}
	opts := sandbox.OptionsFromConfig(cfg)
	opts.Logger = slog.Default()
	session := sandbox.New(opts)

	switch {
	case ro.noise:
		session.Apply(input.RandomizeNoise, input.Frame{})
	case ro.randomize:
		session.Apply(input.Randomize, input.Frame{})
	}

	rec, err := attachRecorder(session, cfg)
	if err != nil {
		return err
	}
	defer closeRecorder(rec)

	for i := 0; i < ro.generations; i++ {
		session.Apply(input.StepOnce, input.Frame{})
		if err := rec.Err(); err != nil {
			return err
		}
	}

	rec.LogSummary()
	if ro.plot {
		if data := rec.History(); len(data) > 1 {
			fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(data,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("population over %d generations", len(data))),
			))
		}
	}
	return nil
}

// attachRecorder records every generation of the session, writing CSV when an
// output directory is configured.
func attachRecorder(s *sandbox.Session, cfg *config.Config) (*telemetry.Recorder, error) {
	out, err := telemetry.NewOutput(cfg.Output.Dir)
	if err != nil {
		return nil, err
	}
	rec := telemetry.NewRecorder(telemetry.DefaultWindow, out, slog.Default())
	rec.Attach(s, s.Engine().Rows()*s.Engine().Cols())
	if path := out.Path(); path != "" {
		slog.Info("writing population csv", "path", path)
	}
	return rec, nil
}

func closeRecorder(rec *telemetry.Recorder) {
	if err := rec.Close(); err != nil {
		slog.Error("closing telemetry output", "err", err)
	}
}
