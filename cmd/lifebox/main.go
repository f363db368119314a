// Command lifebox is an interactive Game of Life sandbox with a window, a
// terminal frontend and a headless runner.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"lifebox/internal/config"
	"lifebox/internal/input"
)

type globalOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "lifebox",
		Short:        "Game of Life sandbox",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file path (yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	cfg.Bind(pf)

	root.AddCommand(
		&cobra.Command{
			Use:   "gui",
			Short: "open the sandbox window",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runGUI(cmd, cfg)
			},
		},
		newTUICmd(cfg),
		newRunCmd(cfg),
		newConfigCmd(cfg),
	)
	return root
}

// load reads the config file, re-applies explicit flags on top of it and
// installs the default logger.
func (o *globalOptions) load(cmd *cobra.Command, cfg *config.Config) error {
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		if err := loaded.ApplyFlags(cmd.Flags()); err != nil {
			return err
		}
		*cfg = *loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	w := cmd.ErrOrStderr()
	if o.logFile != "" {
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		w = f
	} else if cmd.Name() == "tui" {
		// The terminal frontend owns the screen.
		w = io.Discard
	}
	logger, err := newLogger(w, o.logLevel, o.logFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// keymap returns the default bindings with the configured overrides applied.
func keymap(base input.Keymap, cfg *config.Config) (input.Keymap, error) {
	if err := base.Merge(cfg.Controls.Keys); err != nil {
		return nil, fmt.Errorf("controls.keys: %w", err)
	}
	return base, nil
}

func newConfigCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return config.Save(args[0], cfg)
			}
			return config.Write(cmd.OutOrStdout(), cfg)
		},
	}
}
