package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/quickcount/internal/config"
)

// Settings view styles
var (
	settingsTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FF6B6B")).
				MarginBottom(1)

	settingsPathStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Italic(true).
				MarginBottom(1)

	settingsTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Padding(0, 2)

	settingsTabActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	settingsHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#a8dadc"))

	settingsRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f1faee"))

	settingsMutedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	settingsHelpStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				MarginTop(1)
)

// settingsTabs names the tabs in display order.
var settingsTabs = []string{"Editor", "Display", "Import & Log"}

// SettingsModel shows the effective configuration read-only.
type SettingsModel struct {
	config     *config.Config
	configPath string

	tab     int
	scrollY int

	width  int
	height int
}

// NewSettingsModel creates a new settings model. configPath is the file the
// configuration was read from, or where `quickcount init` would write it.
func NewSettingsModel(cfg *config.Config, configPath string) SettingsModel {
	return SettingsModel{
		config:     cfg,
		configPath: configPath,
	}
}

// SetSize updates the view dimensions.
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right", "l":
			m.tab = (m.tab + 1) % len(settingsTabs)
			m.scrollY = 0
			return m, nil
		case "shift+tab", "left", "h":
			m.tab--
			if m.tab < 0 {
				m.tab = len(settingsTabs) - 1
			}
			m.scrollY = 0
			return m, nil
		case "j", "down":
			if m.scrollY < len(m.rows())-1 {
				m.scrollY++
			}
			return m, nil
		case "k", "up":
			if m.scrollY > 0 {
				m.scrollY--
			}
			return m, nil
		case "g":
			m.scrollY = 0
			return m, nil
		}
	}
	return m, nil
}

// View renders the settings view.
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(settingsTitleStyle.Render("QuickCount Configuration"))
	b.WriteString("\n")

	b.WriteString(settingsPathStyle.Render("Config: " + m.configPath))
	b.WriteString("\n\n")

	var tabViews []string
	for i, t := range settingsTabs {
		style := settingsTabStyle
		if i == m.tab {
			style = settingsTabActiveStyle
		}
		tabViews = append(tabViews, style.Render(t))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabViews...))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#3d5a80")).Render(strings.Repeat("─", max(0, min(m.width-4, 60)))))
	b.WriteString("\n\n")

	if m.config == nil {
		b.WriteString(settingsMutedStyle.Render("No configuration loaded"))
		b.WriteString("\n")
		b.WriteString(settingsMutedStyle.Render("Run 'quickcount init' to create a config file"))
		return b.String()
	}

	rows := m.rows()
	b.WriteString(settingsHeaderStyle.Render(fmt.Sprintf("%s (%d settings)", settingsTabs[m.tab], len(rows))))
	b.WriteString("\n\n")

	visibleHeight := max(5, m.height-12)
	start := min(m.scrollY, len(rows))
	end := min(start+visibleHeight, len(rows))

	for _, r := range rows[start:end] {
		b.WriteString(settingsMutedStyle.Render(fmt.Sprintf("%-20s ", r.key)))
		b.WriteString(settingsRowStyle.Render(r.value))
		b.WriteString("\n")
	}

	if len(rows) > visibleHeight {
		b.WriteString("\n")
		b.WriteString(settingsMutedStyle.Render(fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(rows))))
	}

	b.WriteString("\n")
	b.WriteString(settingsHelpStyle.Render("tab/←→: switch tabs • j/k: scroll • edit " + config.FileName + " to change"))

	return b.String()
}

type settingsRow struct {
	key   string
	value string
}

// rows returns the settings shown on the current tab, keyed as in the file.
func (m SettingsModel) rows() []settingsRow {
	if m.config == nil {
		return nil
	}
	c := m.config

	switch m.tab {
	case 0:
		return []settingsRow{
			{"width", fmt.Sprintf("%d", c.Editor.Width)},
			{"height", fmt.Sprintf("%d", c.Editor.Height)},
			{"char_limit", limitString(int64(c.Editor.CharLimit), "characters")},
			{"show_line_numbers", fmt.Sprintf("%t", c.Editor.ShowLineNumbers)},
			{"debounce_ms", debounceString(c.Editor.DebounceMS)},
			{"placeholder", fmt.Sprintf("%q", c.Editor.Placeholder)},
		}
	case 1:
		return []settingsRow{
			{"big_count", fmt.Sprintf("%t", c.Display.BigCount)},
			{"show_about", fmt.Sprintf("%t", c.Display.ShowAbout)},
		}
	default:
		logFile := c.Log.File
		if logFile == "" {
			logFile = "(discarded)"
		}
		return []settingsRow{
			{"strip_markdown", fmt.Sprintf("%t", c.Import.StripMarkdown)},
			{"max_file_size", limitString(c.Import.MaxFileSize, "bytes")},
			{"log.level", c.Log.Level},
			{"log.format", c.Log.Format},
			{"log.file", logFile},
		}
	}
}

func limitString(n int64, unit string) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d %s", n, unit)
}

func debounceString(ms int) string {
	if ms == 0 {
		return "off (every keystroke)"
	}
	return fmt.Sprintf("%d ms", ms)
}
