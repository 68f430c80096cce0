package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/f3rmion/quickcount/internal/textstat"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"JSON", FormatJSON},
		{" yaml ", FormatYAML},
		{"yml", FormatYAML},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestRows(t *testing.T) {
	rows := Rows(textstat.Compute("Hello world."))

	values := make(map[string]string, len(rows))
	for _, r := range rows {
		values[r.Label] = r.Value
	}

	assert.Equal(t, "Words", rows[0].Label)
	assert.Equal(t, "SMOG Grade", rows[len(rows)-1].Label)

	assert.Equal(t, "2", values["Words"])
	assert.Equal(t, "11", values["Characters (no spaces)"])
	assert.Equal(t, "12", values["Characters (with spaces)"])
	assert.Equal(t, "5.50", values["Avg word length"])
	assert.Equal(t, "2.00", values["Avg sentence length"])
	assert.Equal(t, "world.", values["Longest word"])
	assert.Equal(t, "Basic", values["Readability Level"])
	assert.Equal(t, "2.89", values["Flesch-Kincaid"])
	assert.Equal(t, "0.80 - Basic English", values["Gunning Fog"])
	assert.Equal(t, "3.13 - Basic English", values["SMOG Grade"])
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []Document{{Statistics: textstat.Compute("cat cat dog")}}, FormatText)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "==", "a single unnamed document has no header")
	assert.Contains(t, out, "Words:")
	assert.Regexp(t, `Most common word:\s+cat\n`, out)
}

func TestWrite_TextMultipleDocuments(t *testing.T) {
	docs := []Document{
		{Source: "a.txt", Statistics: textstat.Compute("one")},
		{Source: "b.txt", Statistics: textstat.Compute("one two")},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, docs, FormatText))

	out := buf.String()
	assert.Contains(t, out, "== a.txt ==")
	assert.Contains(t, out, "== b.txt ==")
	assert.Less(t, strings.Index(out, "a.txt"), strings.Index(out, "b.txt"))
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Source: "stdin", Statistics: textstat.Compute("Para one.\n\nPara two.")}
	require.NoError(t, Write(&buf, []Document{doc}, FormatJSON))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "stdin", got[0]["source"])

	stats, ok := got[0]["statistics"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, stats["paragraph_count"])
	assert.EqualValues(t, 2, stats["sentence_count"])
	assert.Equal(t, "Basic English", stats["fog_interpretation"])
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	doc := Document{Source: "notes.md", Statistics: textstat.Compute("cat cat dog")}
	require.NoError(t, Write(&buf, []Document{doc}, FormatYAML))

	var got []Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, doc, got[0])
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, nil, Format("csv"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
