package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/quickcount/internal/textstat"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestKindFor(t *testing.T) {
	tests := []struct {
		path string
		want Kind
	}{
		{"notes.txt", KindPlain},
		{"README.md", KindMarkdown},
		{"guide.MARKDOWN", KindMarkdown},
		{"page.html", KindHTML},
		{"page.HTM", KindHTML},
		{"data.csv", KindPlain},
		{"noext", KindPlain},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindFor(tt.path), tt.path)
	}
}

func TestParseKind(t *testing.T) {
	k, ok, err := ParseKind("auto")
	require.NoError(t, err)
	assert.False(t, ok)

	k, ok, err = ParseKind("Markdown")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, KindMarkdown, k)

	_, _, err = ParseKind("pdf")
	assert.Error(t, err)
}

func TestExtensionsMatchKinds(t *testing.T) {
	for _, ext := range Extensions() {
		_, ok := extensionKinds[ext]
		assert.True(t, ok, "extension %s has no kind", ext)
	}
}

func TestLoad_Plain(t *testing.T) {
	path := writeFile(t, "notes.txt", "Para one.\n\nPara two.")

	got, err := Load(path, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Para one.\n\nPara two.", got)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRead_TooLarge(t *testing.T) {
	_, err := Read(strings.NewReader("0123456789"), KindPlain, "stdin", Options{MaxSize: 5})
	assert.ErrorIs(t, err, ErrTooLarge)

	got, err := Read(strings.NewReader("01234"), KindPlain, "stdin", Options{MaxSize: 5})
	require.NoError(t, err)
	assert.Equal(t, "01234", got)
}

const sampleMarkdown = "# Title\n\n" +
	"Some *emphasised* text with a [link](https://example.com).\n" +
	"Second line of the paragraph.\n\n" +
	"```go\nfmt.Println(\"not prose\")\n```\n\n" +
	"- first item\n- second item\n\n" +
	"> A quoted `code` remark.\n"

func TestRead_MarkdownStripped(t *testing.T) {
	got, err := Read(strings.NewReader(sampleMarkdown), KindMarkdown, "notes.md", Options{StripMarkdown: true})
	require.NoError(t, err)

	assert.Equal(t,
		"Title\n\n"+
			"Some emphasised text with a link.\nSecond line of the paragraph.\n\n"+
			"first item\n\n"+
			"second item\n\n"+
			"A quoted code remark.",
		got)

	assert.NotContains(t, got, "Println")
	assert.NotContains(t, got, "*")
	assert.NotContains(t, got, "https://")
}

func TestRead_MarkdownKeptWhenNotStripping(t *testing.T) {
	got, err := Read(strings.NewReader(sampleMarkdown), KindMarkdown, "notes.md", Options{})
	require.NoError(t, err)
	assert.Equal(t, sampleMarkdown, got)
}

func TestRead_MarkdownParagraphsCount(t *testing.T) {
	got, err := Read(strings.NewReader("First para.\n\nSecond para.\n\n---\n\nThird para.\n"), KindMarkdown, "x.md", Options{StripMarkdown: true})
	require.NoError(t, err)

	s := textstat.Compute(got)
	assert.Equal(t, 3, s.ParagraphCount)
	assert.Equal(t, 3, s.SentenceCount)
}

const sampleHTML = `<!DOCTYPE html>
<html>
<head><title>Page title</title><style>p { color: red; }</style></head>
<body>
<article>
<h1>Heading</h1>
<p>First paragraph text here, long enough to look like real prose for the extractor.</p>
<p>Second paragraph follows with a few more words in it.</p>
</article>
<script>var tracking = 1;</script>
</body>
</html>`

func TestLoad_HTML(t *testing.T) {
	path := writeFile(t, "page.html", sampleHTML)

	got, err := Load(path, Options{})
	require.NoError(t, err)

	assert.Contains(t, got, "First paragraph text here")
	assert.Contains(t, got, "Second paragraph follows")
	assert.NotContains(t, got, "<p>")
	assert.NotContains(t, got, "tracking")
	assert.NotContains(t, got, "color: red")
}

func TestHTMLText_FallbackToBody(t *testing.T) {
	got, err := htmlText([]byte("<html><body>Just text.<script>x()</script></body></html>"), sourceURL("inline.html"))
	require.NoError(t, err)
	assert.Contains(t, got, "Just text.")
	assert.NotContains(t, got, "x()")
}

func TestSourceURL(t *testing.T) {
	u := sourceURL("https://example.com/post")
	assert.Equal(t, "https", u.Scheme)

	u = sourceURL("page.html")
	assert.Equal(t, "file", u.Scheme)
	assert.True(t, strings.HasSuffix(u.Path, "/page.html"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "markdown", KindMarkdown.String())
	assert.Equal(t, "html", KindHTML.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestRead_NormalizesLineEndings(t *testing.T) {
	crlf := "First line of para one.\r\nSecond line of para one.\r\n\r\nPara two.\r\n"
	want := "First line of para one.\nSecond line of para one.\n\nPara two.\n"

	for _, kind := range []Kind{KindPlain, KindMarkdown} {
		got, err := Read(strings.NewReader(crlf), kind, "dos.txt", Options{})
		require.NoError(t, err)
		assert.Equal(t, want, got, kind.String())
		assert.Equal(t, 2, textstat.Compute(got).ParagraphCount)
	}

	got, err := Read(strings.NewReader("one\rtwo\r\rthree"), KindPlain, "mac.txt", Options{})
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n\nthree", got)
}

func TestNormalizeNewlines(t *testing.T) {
	assert.Equal(t, "a\nb\n\nc\n", NormalizeNewlines("a\r\nb\r\rc\n"))
	assert.Equal(t, "no breaks", NormalizeNewlines("no breaks"))
}
