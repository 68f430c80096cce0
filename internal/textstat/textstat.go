// Package textstat computes descriptive and readability statistics for text.
//
// Compute is a pure function: the same input always yields the same
// Statistics value and nothing is retained between calls.
package textstat

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Statistics is the snapshot produced by Compute.
type Statistics struct {
	WordCount             int     `json:"word_count" yaml:"word_count"`
	LetterCount           int     `json:"letter_count" yaml:"letter_count"`       // Non-whitespace characters, punctuation and digits included
	CharacterCount        int     `json:"character_count" yaml:"character_count"` // All characters, whitespace included
	SentenceCount         int     `json:"sentence_count" yaml:"sentence_count"`
	ParagraphCount        int     `json:"paragraph_count" yaml:"paragraph_count"`
	AverageWordLength     float64 `json:"average_word_length" yaml:"average_word_length"`
	AverageSentenceLength float64 `json:"average_sentence_length" yaml:"average_sentence_length"`
	LongestWord           string  `json:"longest_word" yaml:"longest_word"`
	MostCommonWord        string  `json:"most_common_word" yaml:"most_common_word"`
	UniqueWordCount       int     `json:"unique_word_count" yaml:"unique_word_count"`
	SyllableCount         int     `json:"syllable_count" yaml:"syllable_count"`
	ComplexWordCount      int     `json:"complex_word_count" yaml:"complex_word_count"` // Words with three or more syllables

	FleschKincaidGrade float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	GunningFogIndex    float64 `json:"gunning_fog_index" yaml:"gunning_fog_index"`
	SMOGGrade          float64 `json:"smog_grade" yaml:"smog_grade"`

	EnglishLevel       EnglishLevel   `json:"english_level" yaml:"english_level"`
	FogInterpretation  Interpretation `json:"fog_interpretation" yaml:"fog_interpretation"`
	SMOGInterpretation Interpretation `json:"smog_interpretation" yaml:"smog_interpretation"`
}

// Compute returns the statistics for text. It never fails: empty or
// whitespace-only input yields zero counts and empty strings.
//
// Readability indices whose denominator is zero are reported as 0.0:
// Flesch-Kincaid and Gunning Fog when there are no words, SMOG when there
// are no sentences.
func Compute(text string) Statistics {
	words := strings.Fields(text)

	s := Statistics{
		WordCount:      len(words),
		LetterCount:    countNonSpace(text),
		CharacterCount: utf8.RuneCountInString(text),
		SentenceCount:  countSentenceMarks(text),
		ParagraphCount: countParagraphs(text),
	}

	totalLength := 0
	longest := 0
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		totalLength += n
		if n > longest {
			longest = n
			s.LongestWord = w
		}
	}

	if s.WordCount > 0 {
		s.AverageWordLength = float64(totalLength) / float64(s.WordCount)
	}
	if s.SentenceCount > 0 {
		s.AverageSentenceLength = float64(s.WordCount) / float64(s.SentenceCount)
	}

	freq := countFrequencies(words)
	s.MostCommonWord = freq.mostCommon()
	s.UniqueWordCount = len(freq.counts)

	for _, w := range words {
		n := Syllables(w)
		s.SyllableCount += n
		if n >= ComplexSyllables {
			s.ComplexWordCount++
		}
	}

	s.FleschKincaidGrade = fleschKincaid(s)
	s.GunningFogIndex = gunningFog(s)
	s.SMOGGrade = smog(s)

	s.EnglishLevel = EnglishLevelFor(s.FleschKincaidGrade)
	s.FogInterpretation = InterpretFog(s.GunningFogIndex)
	s.SMOGInterpretation = InterpretSMOG(s.SMOGGrade)

	return s
}

func countNonSpace(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// countSentenceMarks counts every '.', '!' and '?', so "..." is three.
func countSentenceMarks(text string) int {
	n := 0
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			n++
		}
	}
	return n
}

func countParagraphs(text string) int {
	n := 0
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// frequencies keeps case-folded word counts plus first-seen order, which
// breaks ties for the most common word.
type frequencies struct {
	counts map[string]int
	order  []string
}

func countFrequencies(words []string) frequencies {
	f := frequencies{counts: make(map[string]int, len(words))}
	fold := cases.Lower(language.Und)
	for _, w := range words {
		key := fold.String(w)
		if _, seen := f.counts[key]; !seen {
			f.order = append(f.order, key)
		}
		f.counts[key]++
	}
	return f
}

func (f frequencies) mostCommon() string {
	best, bestCount := "", 0
	for _, key := range f.order {
		if c := f.counts[key]; c > bestCount {
			best, bestCount = key, c
		}
	}
	return best
}

func fleschKincaid(s Statistics) float64 {
	if s.WordCount == 0 {
		return 0
	}
	return 0.39*s.AverageSentenceLength +
		11.8*(float64(s.SyllableCount)/float64(s.WordCount)) -
		15.59
}

func gunningFog(s Statistics) float64 {
	if s.WordCount == 0 {
		return 0
	}
	return 0.4 * (s.AverageSentenceLength + 100*(float64(s.ComplexWordCount)/float64(s.WordCount)))
}

func smog(s Statistics) float64 {
	if s.SentenceCount == 0 {
		return 0
	}
	return 1.043*math.Sqrt(float64(s.ComplexWordCount)*(30/float64(s.SentenceCount))) + 3.1291
}
