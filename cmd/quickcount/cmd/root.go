// Package cmd contains all CLI commands for QuickCount.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/quickcount/internal/config"
	"github.com/f3rmion/quickcount/internal/logging"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quickcount [file]",
	Short: "QuickCount - text statistics and readability scores",
	Long: `QuickCount is a simple yet powerful text analysis tool.

It counts words, characters, sentences and paragraphs, finds the longest
and most common words, and estimates readability with the Flesch-Kincaid,
Gunning Fog and SMOG formulas.

Running 'quickcount' without a subcommand launches the interactive editor,
optionally preloaded with a text, Markdown or HTML file.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runEdit,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/quickcount)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output (debug logging)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().Int("debounce", 0, "milliseconds to wait after typing before recomputing (0 = every keystroke)")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("debounce_ms", rootCmd.PersistentFlags().Lookup("debounce"))
}

// initConfig resolves the config directory and reads ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("QUICKCOUNT")
	viper.AutomaticEnv()

	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
		return
	}
	if dir := viper.GetString("config_dir"); dir != "" {
		// QUICKCOUNT_CONFIG_DIR
		return
	}

	dir, err := config.DefaultDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
		os.Exit(1)
	}
	viper.Set("config_dir", dir)
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// getConfigPath returns the path of the config file.
func getConfigPath() string {
	return filepath.Join(getConfigDir(), config.FileName)
}

// loadUserConfig reads the config file, falling back to the defaults when
// it does not exist, and applies flag and environment overrides.
func loadUserConfig() (*config.Config, error) {
	cfg, err := config.Load(getConfigPath())
	switch {
	case errors.Is(err, fs.ErrNotExist):
		cfg = config.Default()
	case err != nil:
		return nil, err
	}

	applyOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Config) {
	if level := viper.GetString("log_level"); level != "" {
		cfg.Log.Level = level
	}
	if viper.GetBool("verbose") {
		cfg.Log.Level = "debug"
	}
	if viper.IsSet("debounce_ms") {
		cfg.Editor.DebounceMS = viper.GetInt("debounce_ms")
	}
}

// newLogger returns the stderr logger used by non-interactive commands.
func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.Log, cmd.ErrOrStderr())
}
