package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/f3rmion/quickcount/internal/textstat"
)

var syllablesCmd = &cobra.Command{
	Use:   "syllables <word>...",
	Short: "Show the syllable estimate for words",
	Long: `Show the heuristic syllable count used by the readability formulas.

Words with three or more syllables count as complex for Gunning Fog and
SMOG.

Examples:
  quickcount syllables readability beautiful queue`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSyllables,
}

func init() {
	rootCmd.AddCommand(syllablesCmd)
}

func runSyllables(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, word := range args {
		n := textstat.Syllables(word)
		marker := ""
		if textstat.IsComplex(word) {
			marker = "  (complex)"
		}
		fmt.Fprintf(out, "%-20s %d%s\n", word, n, marker)
	}
	return nil
}
