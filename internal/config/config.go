// Package config handles loading and saving user configuration for QuickCount.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// ErrInvalid is wrapped by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all user configuration.
type Config struct {
	Editor  EditorConfig  `yaml:"editor"`
	Display DisplayConfig `yaml:"display"`
	Import  ImportConfig  `yaml:"import"`
	Log     LogConfig     `yaml:"log"`
}

// EditorConfig controls the text area.
type EditorConfig struct {
	Width           int    `yaml:"width"`             // Text area width in cells
	Height          int    `yaml:"height"`            // Text area height in lines
	CharLimit       int    `yaml:"char_limit"`        // 0 means unlimited
	ShowLineNumbers bool   `yaml:"show_line_numbers"` // Gutter with line numbers
	DebounceMS      int    `yaml:"debounce_ms"`       // 0 recomputes on every change
	Placeholder     string `yaml:"placeholder"`
}

// DisplayConfig controls the stats panel.
type DisplayConfig struct {
	BigCount  bool `yaml:"big_count"`  // Large word-count banner
	ShowAbout bool `yaml:"show_about"` // Description and footer under the stats
}

// ImportConfig controls how documents are read into the editor.
type ImportConfig struct {
	StripMarkdown bool  `yaml:"strip_markdown"`
	MaxFileSize   int64 `yaml:"max_file_size"` // Bytes, 0 means unlimited
}

// LogConfig controls the slog logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // TUI log file, empty discards TUI logs
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			Width:       60,
			Height:      12,
			Placeholder: "Start typing...",
		},
		Display: DisplayConfig{
			BigCount:  true,
			ShowAbout: true,
		},
		Import: ImportConfig{
			StripMarkdown: true,
			MaxFileSize:   10 << 20,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the config file at path. Keys missing from the file keep their
// default values. The returned error wraps os.ErrNotExist when the file is
// absent.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var problems []string

	if c.Editor.Width < 10 {
		problems = append(problems, fmt.Sprintf("editor.width must be at least 10, got %d", c.Editor.Width))
	}
	if c.Editor.Height < 1 {
		problems = append(problems, fmt.Sprintf("editor.height must be at least 1, got %d", c.Editor.Height))
	}
	if c.Editor.CharLimit < 0 {
		problems = append(problems, "editor.char_limit must not be negative")
	}
	if c.Editor.DebounceMS < 0 {
		problems = append(problems, "editor.debounce_ms must not be negative")
	}
	if c.Import.MaxFileSize < 0 {
		problems = append(problems, "import.max_file_size must not be negative")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not text or json", c.Log.Format))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// DefaultDir returns the default configuration directory.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "quickcount"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "quickcount"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return nil
}
