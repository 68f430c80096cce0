package textstat

// EnglishLevel is the coarse reading level derived from the Flesch-Kincaid grade.
type EnglishLevel string

const (
	LevelBasic        EnglishLevel = "Basic"        // Grade 5 and below
	LevelIntermediate EnglishLevel = "Intermediate" // Up to grade 8
	LevelAdvanced     EnglishLevel = "Advanced"
)

// Interpretation labels a Gunning Fog index or SMOG grade.
// The two scales share some labels but not all of them.
type Interpretation string

const (
	InterpBasicEnglish        Interpretation = "Basic English"
	InterpIntermediateEnglish Interpretation = "Intermediate English" // SMOG only
	InterpIntermediate        Interpretation = "Intermediate"         // Fog only
	InterpUpperIntermediate   Interpretation = "Upper Intermediate"   // SMOG only
	InterpAdvanced            Interpretation = "Advanced"
	InterpVeryAdvanced        Interpretation = "Very Advanced"
)

type band[T any] struct {
	max   float64
	label T
}

var (
	englishLevels = []band[EnglishLevel]{
		{5.0, LevelBasic},
		{8.0, LevelIntermediate},
	}

	smogBands = []band[Interpretation]{
		{6.0, InterpBasicEnglish},
		{9.0, InterpIntermediateEnglish},
		{12.0, InterpUpperIntermediate},
		{16.0, InterpAdvanced},
	}

	fogBands = []band[Interpretation]{
		{8.0, InterpBasicEnglish},
		{12.0, InterpIntermediate},
		{16.0, InterpAdvanced},
	}
)

// classify returns the label of the first band whose upper bound (inclusive)
// is not below v, or fallback when v exceeds every band.
func classify[T any](v float64, bands []band[T], fallback T) T {
	for _, b := range bands {
		if v <= b.max {
			return b.label
		}
	}
	return fallback
}

// EnglishLevelFor classifies a Flesch-Kincaid grade.
func EnglishLevelFor(grade float64) EnglishLevel {
	return classify(grade, englishLevels, LevelAdvanced)
}

// InterpretSMOG classifies a SMOG grade on the five-step scale.
func InterpretSMOG(grade float64) Interpretation {
	return classify(grade, smogBands, InterpVeryAdvanced)
}

// InterpretFog classifies a Gunning Fog index on the four-step scale.
func InterpretFog(index float64) Interpretation {
	return classify(index, fogBands, InterpVeryAdvanced)
}
