//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lifebox/internal/config"
)

func runGUI(cmd *cobra.Command, _ *config.Config) error {
	fmt.Fprintln(cmd.ErrOrStderr(), "The lifebox window requires the ebiten build tag.")
	fmt.Fprintln(cmd.ErrOrStderr(), "Re-run with `go run -tags ebiten ./cmd/lifebox` or use `lifebox tui`.")
	os.Exit(2)
	return nil
}
