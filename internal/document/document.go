// Package document reads files into plain text suitable for statistics.
//
// Plain text is passed through with its line endings normalized. Markdown can be reduced to its
// prose, and HTML is reduced to the readable article text.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// ErrTooLarge is returned when a document exceeds Options.MaxSize.
var ErrTooLarge = errors.New("document too large")

// Kind identifies how a document's bytes are interpreted.
type Kind int

const (
	KindPlain Kind = iota
	KindMarkdown
	KindHTML
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindMarkdown:
		return "markdown"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

// ParseKind converts a user-supplied kind name. "auto" and "" return ok=false
// so the caller can fall back to KindFor.
func ParseKind(name string) (kind Kind, ok bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return KindPlain, false, nil
	case "plain", "text", "txt":
		return KindPlain, true, nil
	case "markdown", "md":
		return KindMarkdown, true, nil
	case "html", "htm":
		return KindHTML, true, nil
	default:
		return KindPlain, false, fmt.Errorf("unknown document kind %q (want auto, plain, markdown or html)", name)
	}
}

var extensionKinds = map[string]Kind{
	".txt":      KindPlain,
	".text":     KindPlain,
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
	".html":     KindHTML,
	".htm":      KindHTML,
}

// KindFor guesses the kind from a file extension. Unknown extensions are
// treated as plain text.
func KindFor(path string) Kind {
	if k, ok := extensionKinds[strings.ToLower(filepath.Ext(path))]; ok {
		return k
	}
	return KindPlain
}

// Extensions lists the file extensions offered by the file picker.
func Extensions() []string {
	return []string{".txt", ".text", ".md", ".markdown", ".html", ".htm"}
}

// Options controls document conversion.
type Options struct {
	StripMarkdown bool  // Reduce Markdown to prose; otherwise keep the source
	MaxSize       int64 // Bytes, 0 means unlimited
}

// Load reads the file at path, choosing the kind from its extension.
func Load(path string, opts Options) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	return Read(f, KindFor(path), path, opts)
}

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// NormalizeNewlines turns CRLF and lone CR line endings into LF.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	return newlines.Replace(s)
}

// Read converts the document in r. source names the document in errors and
// serves as the base URL for HTML. Line endings are normalized to LF.
func Read(r io.Reader, kind Kind, source string, opts Options) (string, error) {
	data, err := readLimited(r, opts.MaxSize)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", source, err)
	}
	if bytes.IndexByte(data, '\r') >= 0 {
		data = []byte(newlines.Replace(string(data)))
	}

	switch kind {
	case KindMarkdown:
		if !opts.StripMarkdown {
			return string(data), nil
		}
		return markdownText(data), nil
	case KindHTML:
		return htmlText(data, sourceURL(source))
	default:
		return string(data), nil
	}
}

func readLimited(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		return io.ReadAll(r)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if n > max {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, max)
	}
	return buf.Bytes(), nil
}

// sourceURL builds a file:// URL for source; readability resolves relative
// links against it.
func sourceURL(source string) *url.URL {
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		return u
	}
	abs, err := filepath.Abs(source)
	if err != nil {
		abs = source
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
}
