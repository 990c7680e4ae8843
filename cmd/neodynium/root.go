package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/neodynium/internal/config"
)

// NewRootCmd creates the root command for Neodynium.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "neodynium",
		Short: "Headless browser shell with bookmarks, history and extensions",
		Long: `Neodynium is a headless browser shell.

Address bar input is turned into a URL or a search query, passed through the
loaded extensions and rendered. Bookmarks and history are kept as JSON files
in the data directory, and every load is recorded in a SQLite visit journal.

Settings are read from settings.yaml in the config directory (create one with
"neodynium init") and can be overridden with NEODYNIUM_* environment variables.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Settings file (default "+config.DefaultSettingsPath()+")")
	cmd.PersistentFlags().String("data-dir", config.XDGDataDir(), "Directory for bookmarks, history and the visit journal")
	cmd.PersistentFlags().String("extensions-dir", "", "Directory scanned for extensions (overrides settings)")
	cmd.PersistentFlags().String("log-file", "", "Also write logs to this file, e.g. "+config.DefaultLogPath())

	cmd.AddCommand(NewOpenCmd())
	cmd.AddCommand(NewHomeCmd())
	cmd.AddCommand(NewBookmarkCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewExtensionsCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		errorColor.Fprintln(os.Stderr, err) //nolint:errcheck,gosec // nothing to do if stderr fails
		os.Exit(1)
	}
}

// getVerboseFlag returns the verbose flag from the command or the root.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getStringFlag returns a string flag from the command or the root.
func getStringFlag(cmd *cobra.Command, name string) string {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetString(name)
		if err != nil {
			return ""
		}
	}
	return value
}

// fprintf writes to the command output. Write errors on a terminal are
// not actionable, so they are dropped.
func fprintf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...) //nolint:errcheck,gosec // see above
}
