package tui

import (
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/quickcount/internal/config"
	"github.com/f3rmion/quickcount/internal/document"
	"github.com/f3rmion/quickcount/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewEditor ViewType = iota
	ViewFilePicker
	ViewSettings
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// DocumentLoadedMsg is sent when a document picked in the file picker has
// been read.
type DocumentLoadedMsg struct {
	Path   string
	Text   string
	Append bool
	Err    error
}

// AppModel is the main TUI model
type AppModel struct {
	config     *config.Config
	configPath string
	logger     *slog.Logger

	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	editorView     views.EditorModel
	filePickerView views.FilePickerModel
	settingsView   views.SettingsModel

	// Help overlay
	showHelp bool
}

// NewApp creates the TUI application. configPath is only displayed.
func NewApp(cfg *config.Config, configPath string, logger *slog.Logger) AppModel {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	menuItems := []MenuItem{
		{Label: "Editor", View: ViewEditor, Shortcut: "F2"},
		{Label: "Open File", View: ViewFilePicker, Shortcut: "F3"},
		{Label: "Settings", View: ViewSettings, Shortcut: "F4"},
	}

	return AppModel{
		config:       cfg,
		configPath:   configPath,
		logger:       logger,
		sidebarWidth: 20,
		currentView:  ViewEditor,
		menuItems:    menuItems,

		editorView:     views.NewEditorModel(cfg, logger),
		filePickerView: views.NewFilePickerModel("", document.Extensions()),
		settingsView:   views.NewSettingsModel(cfg, configPath),
	}
}

// NewAppWithDocument creates the app with text already loaded from path.
func NewAppWithDocument(cfg *config.Config, configPath string, logger *slog.Logger, path, text string) AppModel {
	app := NewApp(cfg, configPath, logger)
	app.editorView.SetContent(text, path)
	if dir := filepath.Dir(path); dir != "" {
		app.filePickerView = views.NewFilePickerModel(dir, document.Extensions())
	}
	return app
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return m.editorView.Init()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys. Printable keys are left to the views so they can be typed.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "f1":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "f2":
			return m.switchTo(ViewEditor), nil
		case "f3":
			return m.switchTo(ViewFilePicker), nil
		case "f4":
			return m.switchTo(ViewSettings), nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right", "tab":
				return m.switchTo(m.menuItems[m.selectedMenu].View), nil
			}
			return m, nil
		}

		var cmd tea.Cmd
		switch m.currentView {
		case ViewEditor:
			m.editorView, cmd = m.editorView.Update(msg)
		case ViewFilePicker:
			m.filePickerView, cmd = m.filePickerView.Update(msg)
		case ViewSettings:
			m.settingsView, cmd = m.settingsView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.editorView.SetSize(contentWidth, contentHeight)
		m.filePickerView.SetSize(contentWidth, contentHeight)
		m.settingsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case ViewSwitchMsg:
		return m.switchTo(msg.View), nil

	case views.FileSelectedMsg:
		m.logger.Info("opening document",
			slog.String("path", msg.Path),
			slog.Bool("append", msg.Append))
		return m, m.loadDocument(msg.Path, msg.Append)

	case DocumentLoadedMsg:
		if msg.Err != nil {
			m.logger.Warn("opening document failed",
				slog.String("path", msg.Path),
				slog.Any("error", msg.Err))
			m.editorView.SetError(msg.Err)
		} else if msg.Append {
			m.editorView.AppendContent(msg.Text, msg.Path)
		} else {
			m.editorView.SetContent(msg.Text, msg.Path)
		}
		return m.switchTo(ViewEditor), nil
	}

	// Ticks, blinks and clipboard results belong to the editor whichever view
	// is on screen.
	var cmd tea.Cmd
	m.editorView, cmd = m.editorView.Update(msg)
	return m, cmd
}

func (m AppModel) switchTo(view ViewType) AppModel {
	m.currentView = view
	for i, item := range m.menuItems {
		if item.View == view {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
	return m
}

// loadDocument reads a document asynchronously
func (m AppModel) loadDocument(path string, appendText bool) tea.Cmd {
	opts := document.Options{
		StripMarkdown: m.config.Import.StripMarkdown,
		MaxSize:       m.config.Import.MaxFileSize,
	}
	return func() tea.Msg {
		text, err := document.Load(path, opts)
		return DocumentLoadedMsg{Path: path, Text: text, Append: appendText, Err: err}
	}
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewEditor:
		content = m.editorView.View()
	case ViewFilePicker:
		content = m.filePickerView.View()
	case ViewSettings:
		content = m.settingsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" QuickCount "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + " " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	// Spacer
	usedHeight := len(items) + 4 // account for borders and help
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}

	help := "F1 Help  Esc Menu"
	if m.sidebarActive {
		help = "F1 Help  q Quit"
	}
	items = append(items, SidebarHelpStyle.Render(help))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

type helpEntry struct {
	key  string
	desc string
}

var helpSections = []struct {
	title   string
	entries []helpEntry
}{
	{"Global Keys", []helpEntry{
		{"F2-F4", "Switch views"},
		{"esc", "Focus sidebar (again to quit)"},
		{"F1", "Show this help"},
		{"ctrl+c", "Quit"},
	}},
	{"Sidebar", []helpEntry{
		{"j/k ↑/↓", "Move"},
		{"enter", "Open view"},
		{"q", "Quit"},
	}},
	{"Editor", []helpEntry{
		{"ctrl+y", "Copy statistics report"},
		{"ctrl+l", "Clear text"},
	}},
	{"Open File", []helpEntry{
		{"enter", "Open file/enter dir"},
		{"a", "Append file to the text"},
		{"backspace", "Go to parent dir"},
		{"~", "Go to home dir"},
		{".", "Show hidden files"},
	}},
	{"Settings", []helpEntry{
		{"tab/←→", "Switch tabs"},
	}},
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("QuickCount - Text Statistics") + "\n"

	for _, section := range helpSections {
		helpText += "\n" + HelpSectionStyle.Render(section.title) + "\n"
		for _, e := range section.entries {
			helpText += HelpKeyStyle.Render(e.key) + HelpDescStyle.Render(e.desc) + "\n"
		}
	}

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(helpText))
}
