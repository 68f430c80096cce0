package textstat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnglishLevelFor(t *testing.T) {
	tests := []struct {
		grade float64
		want  EnglishLevel
	}{
		{-3.79, LevelBasic},
		{0, LevelBasic},
		{5.0, LevelBasic},
		{5.01, LevelIntermediate},
		{8.0, LevelIntermediate},
		{8.01, LevelAdvanced},
		{24.32, LevelAdvanced},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EnglishLevelFor(tt.grade), "grade %v", tt.grade)
	}
}

func TestInterpretSMOG(t *testing.T) {
	tests := []struct {
		grade float64
		want  Interpretation
	}{
		{0, InterpBasicEnglish},
		{6.0, InterpBasicEnglish},
		{6.5, InterpIntermediateEnglish},
		{9.0, InterpIntermediateEnglish},
		{9.1, InterpUpperIntermediate},
		{12.0, InterpUpperIntermediate},
		{12.5, InterpAdvanced},
		{16.0, InterpAdvanced},
		{16.1, InterpVeryAdvanced},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InterpretSMOG(tt.grade), "grade %v", tt.grade)
	}
}

func TestInterpretFog(t *testing.T) {
	tests := []struct {
		index float64
		want  Interpretation
	}{
		{0, InterpBasicEnglish},
		{8.0, InterpBasicEnglish},
		{8.2, InterpIntermediate},
		{12.0, InterpIntermediate},
		{12.1, InterpAdvanced},
		{16.0, InterpAdvanced},
		{31.6, InterpVeryAdvanced},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InterpretFog(tt.index), "index %v", tt.index)
	}
}
