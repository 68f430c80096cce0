package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/quickcount/internal/document"
	"github.com/f3rmion/quickcount/internal/report"
	"github.com/f3rmion/quickcount/internal/textstat"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Print statistics for files or stdin",
	Long: `Compute text statistics and readability scores without the editor.

Reads each file given, or stdin when no file (or "-") is given. The
document kind is guessed from the extension unless --kind is set.

Examples:
  quickcount stats essay.txt
  quickcount stats -f json README.md index.html
  pbpaste | quickcount stats`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("format", "f", "text", "output format: text, json or yaml")
	statsCmd.Flags().String("kind", "auto", "document kind: auto, plain, markdown or html")
	statsCmd.Flags().Bool("strip-markdown", true, "reduce Markdown to prose before counting")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cmd, cfg)

	formatName, _ := cmd.Flags().GetString("format")
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	kindName, _ := cmd.Flags().GetString("kind")
	kind, forced, err := document.ParseKind(kindName)
	if err != nil {
		return err
	}

	opts := document.Options{
		StripMarkdown: cfg.Import.StripMarkdown,
		MaxSize:       cfg.Import.MaxFileSize,
	}
	if cmd.Flags().Changed("strip-markdown") {
		opts.StripMarkdown, _ = cmd.Flags().GetBool("strip-markdown")
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	docs := make([]report.Document, 0, len(args))
	for _, src := range args {
		k := kind
		if !forced {
			k = document.KindFor(src)
		}

		text, err := readSource(cmd.InOrStdin(), src, k, opts)
		if err != nil {
			return err
		}

		stats := textstat.Compute(text)
		logger.Debug("computed statistics",
			slog.String("source", src),
			slog.String("kind", k.String()),
			slog.Int("words", stats.WordCount))

		doc := report.Document{Source: src, Statistics: stats}
		if src == "-" {
			doc.Source = ""
		}
		docs = append(docs, doc)
	}

	return report.Write(cmd.OutOrStdout(), docs, format)
}

// readSource reads src, where "-" is stdin.
func readSource(stdin io.Reader, src string, kind document.Kind, opts document.Options) (string, error) {
	if src == "-" {
		return document.Read(stdin, kind, "stdin", opts)
	}

	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	return document.Read(f, kind, src, opts)
}
