package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/quickcount/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize QuickCount configuration",
	Long: `Write a config.yaml with the default settings to your config directory.

Edit the file afterwards to change the editor size, debounce delay,
displayed panels, import options and logging.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := getConfigPath()

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureDir(configDir); err != nil {
		return err
	}
	if err := config.Save(path, config.Default()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n\n", path)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. Edit the file to adjust the editor and display settings")
	fmt.Fprintln(out, "  2. Run 'quickcount' to open the editor")
	fmt.Fprintln(out, "  3. Run 'quickcount stats <file>' for a one-off report")

	return nil
}
