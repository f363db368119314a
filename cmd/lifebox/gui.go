//go:build ebiten

package main

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"lifebox/internal/app"
	"lifebox/internal/config"
	"lifebox/internal/input"
	"lifebox/internal/sandbox"
)

func runGUI(cmd *cobra.Command, cfg *config.Config) error {
	km, err := keymap(input.DefaultGUIKeymap(), cfg)
	if err != nil {
		return err
	}
	opts := sandbox.OptionsFromConfig(cfg)
	opts.Logger = slog.Default()
	session := sandbox.New(opts)

	rec, err := attachRecorder(session, cfg)
	if err != nil {
		return err
	}
	defer closeRecorder(rec)

	if err := app.Run(app.New(session, km)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	rec.LogSummary()
	return rec.Err()
}
