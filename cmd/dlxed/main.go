// dlxed is an interactive editor for DLX assembly with syntax coloring,
// error markers and breakpoints, built for an educational emulator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dlxed/dlxed/internal/clipboard"
	"github.com/dlxed/dlxed/internal/config"
	"github.com/dlxed/dlxed/internal/dlx"
	"github.com/dlxed/dlxed/internal/editor"
	"github.com/dlxed/dlxed/internal/event"
	"github.com/dlxed/dlxed/internal/logger"
	"github.com/dlxed/dlxed/internal/theme"
	"github.com/dlxed/dlxed/internal/tui"
)

var (
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
	flagTabSize  int
	flagPalette  string
	flagReadOnly bool
	flagShowWS   bool
)

func main() {
	root := &cobra.Command{
		Use:   config.AppName + " [file]",
		Short: "DLX assembly editor",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,

		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.Flags().StringVar(&flagConfig, "config", "", "path to TOML configuration file")
	root.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	root.Flags().StringVar(&flagLogFile, "log-file", "", "log file path ('-' for stderr)")
	root.Flags().IntVar(&flagTabSize, "tab-size", 0, "tab size (1-32)")
	root.Flags().StringVar(&flagPalette, "palette", "", "palette name or TOML file")
	root.Flags().BoolVar(&flagReadOnly, "read-only", false, "open read-only")
	root.Flags().BoolVar(&flagShowWS, "show-whitespace", false, "visualize tabs and spaces")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Flag overrides on top of file config.
	if flagLogLevel != "" {
		cfg.Logger.LogLevel = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Logger.LogFilePath = flagLogFile
	}
	if flagTabSize > 0 {
		cfg.Editor.TabSize = flagTabSize
	}
	if flagPalette != "" {
		cfg.Editor.Palette = flagPalette
	}
	if flagReadOnly {
		cfg.Editor.ReadOnly = true
	}
	if flagShowWS {
		cfg.Editor.ShowWhitespaces = true
	}

	if err := logger.InitFromConfig(cfg.Logger); err != nil {
		return err
	}

	palette, err := theme.Resolve(cfg.Editor.Palette)
	if err != nil {
		return err
	}

	events := event.NewManager()

	ed := editor.New()
	ed.SetEventManager(events)
	ed.SetTokenizer(dlx.NewTokenizer())
	ed.SetClipboard(clipboard.New(cfg.Editor.SystemClipboard))
	ed.SetTabSize(cfg.Editor.TabSize)
	ed.SetShowWhitespaces(cfg.Editor.ShowWhitespaces)
	ed.SetColorizerEnabled(cfg.Editor.ColorizerEnabled)
	ed.SetMaxUndoSize(cfg.Editor.MaxUndoSize)

	filePath := ""
	if len(args) == 1 {
		filePath = args[0]
		data, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("opening %s: %w", filePath, err)
		}
		ed.SetText(string(data))
	}
	ed.SetReadOnly(cfg.Editor.ReadOnly)

	app, err := tui.New(ed, palette, events, filePath)
	if err != nil {
		return err
	}

	logger.Infof("%s starting (file=%q)", config.AppName, filePath)
	return app.Run()
}
