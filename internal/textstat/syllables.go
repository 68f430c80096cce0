package textstat

import (
	"regexp"
	"strings"
)

var (
	vowelRuns   = regexp.MustCompile(`[aeiouy]+`)
	diphthongs  = regexp.MustCompile(`[aeiou]{2}`)
	triphthongs = regexp.MustCompile(`[aeiou]{3}`)
	outerEdges  = regexp.MustCompile(`^[^aeiouy]+|[^aeiouy]+$`)
)

// ComplexSyllables is the syllable count from which a word is complex.
const ComplexSyllables = 3

// IsComplex reports whether word has at least ComplexSyllables syllables.
func IsComplex(word string) bool {
	return Syllables(word) >= ComplexSyllables
}

// Syllables estimates the syllable count of a single word.
//
// The heuristic trims non-vowels from both ends, collapses vowel triples and
// then pairs into a single vowel, and counts the remaining vowel groups
// (y counts as a vowel). Every word has at least one syllable, including
// words with no vowels at all. It is an approximation, not a dictionary
// lookup.
func Syllables(word string) int {
	w := strings.ToLower(word)
	w = outerEdges.ReplaceAllString(w, "")
	w = triphthongs.ReplaceAllString(w, "a")
	w = diphthongs.ReplaceAllString(w, "a")

	n := len(vowelRuns.FindAllStringIndex(w, -1))
	if n < 1 {
		return 1
	}
	return n
}
