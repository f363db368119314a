package main

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lifebox/internal/config"
	"lifebox/internal/input"
	"lifebox/internal/sandbox"
	"lifebox/internal/tui"
)

// tuiCellSize draws each cell two characters wide and one line tall.
const tuiCellSize = 2

func newTUICmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "run the sandbox in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			km, err := keymap(input.DefaultTUIKeymap(), cfg)
			if err != nil {
				return err
			}
			opts := sandbox.OptionsFromConfig(cfg)
			opts.CellSize = tuiCellSize
			// One zoom key press changes the cell size by one pixel.
			opts.ZoomRate = float64(opts.FrameRate)
			opts.Logger = slog.Default()
			session := sandbox.New(opts)

			rec, err := attachRecorder(session, cfg)
			if err != nil {
				return err
			}
			defer closeRecorder(rec)

			m := tui.New(session, km, rec)
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithMouseAllMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return err
			}
			rec.LogSummary()
			return m.Err()
		},
	}
}
