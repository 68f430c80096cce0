// Package report formats text statistics for display and export.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/f3rmion/quickcount/internal/textstat"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported format names.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects the output encoding for Write.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a user-supplied name into a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q (want text, json or yaml)", ErrUnknownFormat, name)
	}
}

// Row is a single labelled value as shown to the user.
type Row struct {
	Label string
	Value string
}

// Rows returns the display rows for s in presentation order.
// Floating point values are rendered with two decimals.
func Rows(s textstat.Statistics) []Row {
	return []Row{
		{"Words", fmt.Sprintf("%d", s.WordCount)},
		{"Characters (no spaces)", fmt.Sprintf("%d", s.LetterCount)},
		{"Characters (with spaces)", fmt.Sprintf("%d", s.CharacterCount)},
		{"Sentences", fmt.Sprintf("%d", s.SentenceCount)},
		{"Paragraphs", fmt.Sprintf("%d", s.ParagraphCount)},
		{"Avg word length", fmt.Sprintf("%.2f", s.AverageWordLength)},
		{"Avg sentence length", fmt.Sprintf("%.2f", s.AverageSentenceLength)},
		{"Longest word", s.LongestWord},
		{"Most common word", s.MostCommonWord},
		{"Unique words", fmt.Sprintf("%d", s.UniqueWordCount)},
		{"Readability Level", string(s.EnglishLevel)},
		{"Flesch-Kincaid", fmt.Sprintf("%.2f", s.FleschKincaidGrade)},
		{"Gunning Fog", fmt.Sprintf("%.2f - %s", s.GunningFogIndex, s.FogInterpretation)},
		{"SMOG Grade", fmt.Sprintf("%.2f - %s", s.SMOGGrade, s.SMOGInterpretation)},
	}
}

// Document pairs statistics with the source they were computed from.
type Document struct {
	Source     string              `json:"source" yaml:"source"`
	Statistics textstat.Statistics `json:"statistics" yaml:"statistics"`
}

// Write encodes docs to w in the given format.
func Write(w io.Writer, docs []Document, format Format) error {
	switch format {
	case FormatText, "":
		return writeText(w, docs)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encoding json report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(docs); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Text renders s as aligned "label: value" lines.
func Text(s textstat.Statistics) string {
	var sb strings.Builder
	for _, r := range Rows(s) {
		fmt.Fprintf(&sb, "%-26s %s\n", r.Label+":", r.Value)
	}
	return sb.String()
}

func writeText(w io.Writer, docs []Document) error {
	var sb strings.Builder
	for i, d := range docs {
		if i > 0 {
			sb.WriteString("\n")
		}
		if len(docs) > 1 || d.Source != "" {
			fmt.Fprintf(&sb, "== %s ==\n", d.Source)
		}
		sb.WriteString(Text(d.Statistics))
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing text report: %w", err)
	}
	return nil
}
