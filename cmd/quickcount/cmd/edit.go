package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/f3rmion/quickcount/internal/document"
	"github.com/f3rmion/quickcount/internal/logging"
	"github.com/f3rmion/quickcount/internal/tui"
)

var editCmd = &cobra.Command{
	Use:     "edit [file]",
	Aliases: []string{"i", "ui"},
	Short:   "Launch the interactive editor",
	Long: `Launch the terminal editor with live text statistics.

Features:
  - Statistics update as you type
  - Readability level, Flesch-Kincaid, Gunning Fog and SMOG scores
  - Open .txt, .md and .html files
  - Copy the statistics report to the clipboard

Controls:
  F1      Help
  Ctrl+Y  Copy report
  Ctrl+L  Clear text
  Esc     Menu (twice to quit)`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}

	// The alt screen owns the terminal, so logs go to a file or nowhere.
	logger, closer, err := logging.OpenFile(cfg.Log, cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	app := tui.NewApp(cfg, getConfigPath(), logger)
	if len(args) == 1 {
		text, err := document.Load(args[0], document.Options{
			StripMarkdown: cfg.Import.StripMarkdown,
			MaxSize:       cfg.Import.MaxFileSize,
		})
		if err != nil {
			return err
		}
		app = tui.NewAppWithDocument(cfg, getConfigPath(), logger, args[0], text)
	}

	logger.Info("starting editor", slog.Int("debounce_ms", cfg.Editor.DebounceMS))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
