package views

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/quickcount/internal/document"
)

// FileSelectedMsg is sent when a document is chosen in the picker. Append
// asks for the document to be added after the current text.
type FileSelectedMsg struct {
	Path   string
	Append bool
}

var (
	fpTitleStyle = edTitleStyle
	fpPathStyle  = edSourceStyle.MarginBottom(1)
	fpRuleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3d5a80"))
	fpDirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4")).Bold(true)
	fpFileStyle  = edValueStyle
	fpCurStyle   = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Background(lipgloss.Color("#2d3436"))
	fpHelpStyle  = edHelpStyle
	fpErrorStyle = edErrorStyle
)

// FileEntry is one row of the picker.
type FileEntry struct {
	Name  string
	IsDir bool
	Path  string
}

// FilePickerModel lists directories and documents QuickCount can open.
type FilePickerModel struct {
	dir        string
	entries    []FileEntry
	cursor     int
	offset     int
	extensions []string
	showHidden bool
	err        error

	width  int
	height int
}

// NewFilePickerModel creates a file picker rooted at startDir, listing
// directories and files with one of the given extensions. An empty startDir
// starts in the working directory, falling back to the home directory.
func NewFilePickerModel(startDir string, extensions []string) FilePickerModel {
	for _, dir := range []func() (string, error){os.Getwd, os.UserHomeDir} {
		if startDir != "" {
			break
		}
		startDir, _ = dir()
	}
	if startDir == "" {
		startDir = string(filepath.Separator)
	}
	if abs, err := filepath.Abs(startDir); err == nil {
		startDir = abs
	}

	m := FilePickerModel{extensions: extensions}
	m.chdir(startDir)
	return m
}

// Dir returns the directory being listed.
func (m FilePickerModel) Dir() string {
	return m.dir
}

// Entries returns the listed entries, parent directory first.
func (m FilePickerModel) Entries() []FileEntry {
	return m.entries
}

// SetSize updates the view dimensions.
func (m *FilePickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// chdir lists dir: its parent, then subdirectories, then matching documents,
// each group sorted case-insensitively.
func (m *FilePickerModel) chdir(dir string) {
	m.dir = dir
	m.entries = nil
	m.cursor, m.offset = 0, 0

	listing, err := os.ReadDir(dir)
	m.err = err
	if err != nil {
		return
	}

	if parent := filepath.Dir(dir); parent != dir {
		m.entries = append(m.entries, FileEntry{Name: "..", IsDir: true, Path: parent})
	}

	var dirs, files []FileEntry
	for _, e := range listing {
		if !m.showHidden && strings.HasPrefix(e.Name(), ".") {
			continue
		}
		fe := FileEntry{Name: e.Name(), IsDir: e.IsDir(), Path: filepath.Join(dir, e.Name())}
		switch {
		case fe.IsDir:
			dirs = append(dirs, fe)
		case m.wanted(fe.Name):
			files = append(files, fe)
		}
	}

	byName := func(a, b FileEntry) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	slices.SortFunc(dirs, byName)
	slices.SortFunc(files, byName)
	m.entries = append(append(m.entries, dirs...), files...)
}

func (m FilePickerModel) wanted(name string) bool {
	if len(m.extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	return slices.ContainsFunc(m.extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// move shifts the cursor by delta, clamped to the list, and keeps it visible.
func (m *FilePickerModel) move(delta int) {
	m.cursor = max(0, min(m.cursor+delta, len(m.entries)-1))
	rows := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// listHeight leaves room for the title, path, rules and help.
func (m FilePickerModel) listHeight() int {
	return max(5, m.height-8)
}

// Update handles messages.
func (m FilePickerModel) Update(msg tea.Msg) (FilePickerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "ctrl+d":
		m.move(m.listHeight() / 2)
	case "ctrl+u":
		m.move(-m.listHeight() / 2)
	case "g":
		m.move(-len(m.entries))
	case "G":
		m.move(len(m.entries))
	case "enter", "l", "right", "a":
		if m.cursor >= len(m.entries) {
			break
		}
		entry := m.entries[m.cursor]
		if entry.IsDir {
			m.chdir(entry.Path)
			break
		}
		selected := FileSelectedMsg{Path: entry.Path, Append: key.String() == "a"}
		return m, func() tea.Msg { return selected }
	case "backspace", "h":
		if parent := filepath.Dir(m.dir); parent != m.dir {
			m.chdir(parent)
		}
	case "~":
		if home, err := os.UserHomeDir(); err == nil {
			m.chdir(home)
		}
	case ".":
		m.showHidden = !m.showHidden
		m.chdir(m.dir)
	case "r":
		m.chdir(m.dir)
	}
	return m, nil
}

// View renders the file picker.
func (m FilePickerModel) View() string {
	var b strings.Builder
	rule := fpRuleStyle.Render(strings.Repeat("─", max(0, min(m.width-4, 60))))

	b.WriteString(fpTitleStyle.Render("Open Document") + "\n")
	b.WriteString(fpPathStyle.Render(m.dir) + "\n")
	if m.err != nil {
		b.WriteString(fpErrorStyle.Render("Error: "+m.err.Error()) + "\n\n")
	}
	b.WriteString(rule + "\n")

	if len(m.entries) == 0 {
		b.WriteString(fpHelpStyle.UnsetMarginTop().Render("  (no documents found: "+strings.Join(m.extensions, " ")+")") + "\n")
	}

	end := min(m.offset+m.listHeight(), len(m.entries))
	for i := m.offset; i < end; i++ {
		entry := m.entries[i]
		tag, style := "[dir]", fpDirStyle
		if !entry.IsDir {
			tag, style = "["+kindTag(entry.Path)+"]", fpFileStyle
		}
		prefix := "  "
		if i == m.cursor {
			prefix, style = "> ", fpCurStyle
		}
		b.WriteString(prefix + style.Render(fmt.Sprintf("%-7s%s", tag, entry.Name)) + "\n")
	}

	if len(m.entries) > m.listHeight() {
		b.WriteString(fpHelpStyle.UnsetMarginTop().Render(fmt.Sprintf("  %d-%d of %d", m.offset+1, end, len(m.entries))) + "\n")
	}

	b.WriteString(rule + "\n")
	b.WriteString(fpHelpStyle.Render("enter: open • a: append • backspace: parent • ~: home • .: hidden • esc: sidebar"))
	return b.String()
}

func kindTag(path string) string {
	switch document.KindFor(path) {
	case document.KindMarkdown:
		return "md"
	case document.KindHTML:
		return "html"
	default:
		return "txt"
	}
}
