package views

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/quickcount/internal/clipboard"
	"github.com/f3rmion/quickcount/internal/config"
	"github.com/f3rmion/quickcount/internal/document"
	"github.com/f3rmion/quickcount/internal/editor"
	"github.com/f3rmion/quickcount/internal/report"
	"github.com/f3rmion/quickcount/internal/textstat"
	"github.com/f3rmion/quickcount/internal/tui/bigcount"
)

const (
	// AppName is shown as the editor title.
	AppName = "QuickCount"

	aboutText = "This application is a simple yet powerful text analysis tool. " +
		"It provides various statistics about your text including readability scores. " +
		"Contributions are welcome!"
	footerText = "Made with <3 by walker84837 - Feel free to contribute at https://github.com/walker84837/quickcount"

	statsLabelWidth = 26
	statsValueWidth = 22
	copiedFor       = 2 * time.Second
)

// Editor view styles
var (
	edTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	edSourceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)

	edPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	edLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(statsLabelWidth)

	edValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	edBigStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d"))

	edAboutStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true).
			MarginTop(1)

	edCopiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)

	edErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	edHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// ErrTruncated is shown when a document does not fit in the editor.
var ErrTruncated = errors.New("document truncated")

// statsTickMsg asks for a recompute of the given buffer revision once the
// debounce delay has passed.
type statsTickMsg struct {
	revision uint64
}

type copyResultMsg struct {
	err error
}

type clearCopiedMsg struct{}

// EditorModel is the text editor with its live statistics panel.
type EditorModel struct {
	textarea textarea.Model
	buffer   *editor.Buffer
	stats    textstat.Statistics

	cfg    *config.Config
	logger *slog.Logger

	// writeClipboard is swapped in tests.
	writeClipboard func(string) error
	canCopy        bool

	source string
	copied bool
	err    error

	width  int
	height int
}

// NewEditorModel creates the editor view. cfg and logger must not be nil.
func NewEditorModel(cfg *config.Config, logger *slog.Logger) EditorModel {
	ta := textarea.New()
	ta.Placeholder = cfg.Editor.Placeholder
	ta.ShowLineNumbers = cfg.Editor.ShowLineNumbers
	ta.CharLimit = cfg.Editor.CharLimit
	ta.MaxHeight = 0
	ta.SetWidth(cfg.Editor.Width)
	ta.SetHeight(cfg.Editor.Height)
	ta.Focus()

	buf := editor.NewBuffer("")

	return EditorModel{
		textarea:       ta,
		buffer:         buf,
		stats:          buf.Stats(),
		cfg:            cfg,
		logger:         logger,
		writeClipboard: clipboard.Write,
		canCopy:        clipboard.Available(),
	}
}

// SetSize updates the view dimensions.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	w := m.cfg.Editor.Width
	if m.sideBySide() {
		w = max(w, width-m.panelWidth()-2)
	} else {
		w = width
	}
	m.textarea.SetWidth(max(10, w))
}

// SetContent replaces the editor text, e.g. after opening a document.
func (m *EditorModel) SetContent(text, source string) {
	m.load(document.NormalizeNewlines(text), source)
	m.logger.Debug("content replaced",
		slog.String("source", source),
		slog.Int("words", m.stats.WordCount))
}

// AppendContent adds text after the current content, separated from it by a
// blank line.
func (m *EditorModel) AppendContent(text, source string) {
	text = document.NormalizeNewlines(text)
	if current := m.buffer.Content(); current != "" && text != "" {
		switch {
		case strings.HasSuffix(current, "\n\n"):
		case strings.HasSuffix(current, "\n"):
			text = "\n" + text
		default:
			text = "\n\n" + text
		}
	}
	m.buffer.Append(text)
	m.load(m.buffer.Content(), source)
	m.logger.Debug("content appended",
		slog.String("source", source),
		slog.Int("words", m.stats.WordCount))
}

// load puts text into the textarea and recomputes stats on what it kept.
func (m *EditorModel) load(text, source string) {
	m.textarea.SetValue(text)
	m.source = source
	m.err = nil

	// The textarea silently drops lines past its limit and runes past CharLimit.
	if want, got := strings.Count(text, "\n")+1, m.textarea.LineCount(); got < want {
		m.err = fmt.Errorf("%w to %d of %d lines", ErrTruncated, got, want)
	} else if limit := m.textarea.CharLimit; limit > 0 && utf8.RuneCountInString(text) > limit {
		m.err = fmt.Errorf("%w to %d characters", ErrTruncated, limit)
	}
	if m.err != nil {
		m.logger.Warn("document does not fit in the editor",
			slog.String("source", source),
			slog.Any("error", m.err))
	}

	m.buffer.Set(m.textarea.Value())
	m.stats = m.buffer.Stats()
}

// SetError shows err above the editor until the next edit.
func (m *EditorModel) SetError(err error) {
	m.err = err
}

// Content returns the current editor text.
func (m EditorModel) Content() string {
	return m.buffer.Content()
}

// Stats returns the statistics currently on screen.
func (m EditorModel) Stats() textstat.Statistics {
	return m.stats
}

// Init starts the cursor blinking.
func (m EditorModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+y":
			if !m.canCopy {
				m.err = clipboard.ErrUnavailable
				return m, nil
			}
			return m, m.copyReport()
		case "ctrl+l":
			m.textarea.Reset()
			m.buffer.Reset()
			m.stats = m.buffer.Stats()
			m.source = ""
			m.err = nil
			return m, nil
		}

		// Pasted CRLF would otherwise become two line breaks.
		if msg.Type == tea.KeyRunes {
			msg.Runes = []rune(document.NormalizeNewlines(string(msg.Runes)))
		}

		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		m.err = nil
		return m, tea.Batch(cmd, m.sync())

	case statsTickMsg:
		// A newer edit has its own tick queued.
		if msg.revision == m.buffer.Revision() {
			m.stats = m.buffer.Stats()
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			m.logger.Warn("copy to clipboard failed", slog.Any("error", msg.err))
			m.err = msg.err
			return m, nil
		}
		m.copied = true
		return m, tea.Tick(copiedFor, func(time.Time) tea.Msg {
			return clearCopiedMsg{}
		})

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// sync pushes the textarea value into the buffer and schedules a recompute.
func (m *EditorModel) sync() tea.Cmd {
	if !m.buffer.Set(m.textarea.Value()) {
		return nil
	}

	delay := time.Duration(m.cfg.Editor.DebounceMS) * time.Millisecond
	if delay <= 0 {
		m.stats = m.buffer.Stats()
		return nil
	}

	rev := m.buffer.Revision()
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return statsTickMsg{revision: rev}
	})
}

func (m EditorModel) copyReport() tea.Cmd {
	text := report.Text(m.buffer.Stats())
	write := m.writeClipboard
	return func() tea.Msg {
		return copyResultMsg{err: write(text)}
	}
}

func (m EditorModel) panelWidth() int {
	// label column, value column, border and padding
	return statsLabelWidth + statsValueWidth + 4
}

func (m EditorModel) sideBySide() bool {
	return m.width >= m.cfg.Editor.Width+m.panelWidth()+2
}

// View renders the editor and statistics.
func (m EditorModel) View() string {
	var b strings.Builder

	b.WriteString(edTitleStyle.Render(AppName))
	b.WriteString("\n")

	if m.source != "" {
		b.WriteString(edSourceStyle.Render(m.source))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(edErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	editorView := m.textarea.View()
	panel := m.renderPanel()

	if m.sideBySide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, editorView, "  ", panel))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, editorView, "", panel))
	}
	b.WriteString("\n")

	if m.cfg.Display.ShowAbout {
		width := m.panelWidth()
		if m.width > 0 {
			width = m.width
		}
		b.WriteString(edAboutStyle.Width(width).Render(aboutText + "\n" + footerText))
		b.WriteString("\n")
	}

	status := "ctrl+l: clear • f1: help"
	if m.canCopy {
		status = "ctrl+y: copy stats • " + status
	}
	if m.copied {
		status = edCopiedStyle.Render("Copied!") + "  " + status
	}
	b.WriteString(edHelpStyle.Render(status))

	return b.String()
}

// renderPanel renders the statistics rows with an optional big word count.
func (m EditorModel) renderPanel() string {
	var lines []string

	if m.cfg.Display.BigCount && bigcount.Available() {
		count := fmt.Sprintf("%d", m.stats.WordCount)
		lines = append(lines, edBigStyle.Render(bigcount.Cached(count, statsLabelWidth+statsValueWidth, 6)))
		lines = append(lines, "")
	}

	for _, row := range report.Rows(m.stats) {
		value := runewidth.Truncate(row.Value, statsValueWidth, "…")
		lines = append(lines, edLabelStyle.Render(row.Label+":")+edValueStyle.Render(value))
	}

	return edPanelStyle.Render(strings.Join(lines, "\n"))
}
