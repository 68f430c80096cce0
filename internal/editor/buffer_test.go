package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/f3rmion/quickcount/internal/textstat"
)

func TestBuffer_NewEmpty(t *testing.T) {
	b := NewBuffer("")

	assert.Equal(t, "", b.Content())
	assert.Equal(t, uint64(0), b.Revision())
	assert.Equal(t, 0, b.Stats().WordCount)
}

func TestBuffer_SetBumpsRevision(t *testing.T) {
	b := NewBuffer("one")
	start := b.Revision()

	assert.True(t, b.Set("one two"))
	assert.Equal(t, start+1, b.Revision())

	assert.False(t, b.Set("one two"), "same content is not a change")
	assert.Equal(t, start+1, b.Revision())
}

func TestBuffer_Append(t *testing.T) {
	b := NewBuffer("Hello")
	b.Append(" world.")
	b.Append("")

	assert.Equal(t, "Hello world.", b.Content())
	assert.Equal(t, 2, b.Stats().WordCount)
}

func TestBuffer_Reset(t *testing.T) {
	b := NewBuffer("some text here")
	_ = b.Stats()

	b.Reset()

	assert.Equal(t, "", b.Content())
	assert.Equal(t, 0, b.Stats().WordCount)
}

func TestBuffer_StatsTrackEdits(t *testing.T) {
	b := NewBuffer("")
	edits := []func(){
		func() { b.Append("cat") },
		func() { b.Append(" cat dog.") },
		func() { b.Set("Para one.\n\nPara two.") },
		func() { b.Append("\n\nThird!") },
		func() { b.Reset() },
		func() { b.Set("...") },
	}

	for i, edit := range edits {
		edit()
		want := textstat.Compute(b.Content())
		if diff := cmp.Diff(want, b.Stats()); diff != "" {
			t.Errorf("edit %d: stats mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestBuffer_StatsCachedPerRevision(t *testing.T) {
	b := NewBuffer("alpha beta")
	first := b.Stats()
	second := b.Stats()

	assert.Equal(t, first, second)
	assert.Equal(t, 2, second.WordCount)
}
