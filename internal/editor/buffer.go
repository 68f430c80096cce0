// Package editor holds the editable text state owned by the shell.
package editor

import "github.com/f3rmion/quickcount/internal/textstat"

// Buffer is the text being edited plus the statistics of its latest revision.
// It is owned by a single caller (the TUI update loop) and is not safe for
// concurrent use.
type Buffer struct {
	content  string
	revision uint64

	stats         textstat.Statistics
	statsRevision uint64
	computed      bool
}

// NewBuffer creates a buffer holding content.
func NewBuffer(content string) *Buffer {
	b := &Buffer{content: content}
	if content != "" {
		b.revision = 1
	}
	return b
}

// Content returns the full current text.
func (b *Buffer) Content() string {
	return b.content
}

// Revision increases every time the content changes.
func (b *Buffer) Revision() uint64 {
	return b.revision
}

// Set replaces the content. It reports whether anything changed.
func (b *Buffer) Set(content string) bool {
	if content == b.content {
		return false
	}
	b.content = content
	b.revision++
	return true
}

// Append adds s to the end of the content.
func (b *Buffer) Append(s string) {
	if s == "" {
		return
	}
	b.Set(b.content + s)
}

// Reset clears the content.
func (b *Buffer) Reset() {
	b.Set("")
}

// Stats returns statistics for the current content, recomputing them from
// the full text only when the revision moved since the last call.
func (b *Buffer) Stats() textstat.Statistics {
	if !b.computed || b.statsRevision != b.revision {
		b.stats = textstat.Compute(b.content)
		b.statsRevision = b.revision
		b.computed = true
	}
	return b.stats
}
