package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/nao1215/neodynium/internal/config"
)

//go:embed templates/settings.yaml
var settingsTemplate embed.FS

var initExample = dedent.Dedent(`
	# Create settings.yaml in the config directory
	neodynium init

	# Create the settings file at a specific path
	neodynium init -o settings.yaml

	# Force overwrite an existing file
	neodynium init -f`,
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a settings file",
		Long: `Init writes a commented settings.yaml with the default settings and creates
the extensions directory next to it in the data directory.

The generated file documents every key, the extension manifest format and
the available built-in extensions.`,
		Example: initExample,
		Args:    cobra.NoArgs,
		RunE:    runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultSettingsPath(),
		"Output file path for the settings")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing settings file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("settings file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := settingsTemplate.ReadFile("templates/settings.yaml")
	if err != nil {
		return fmt.Errorf("failed to read settings template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	printSuccess(cmd, "Created settings file: %s", outputPath)

	extDir := getStringFlag(cmd, "extensions-dir")
	if extDir == "" {
		extDir = resolveExtensionsDir(getStringFlag(cmd, "config"))
	}
	if err := os.MkdirAll(extDir, 0750); err != nil {
		return fmt.Errorf("failed to create extensions directory: %w", err)
	}
	fprintf(cmd, "Extensions directory: %s\n", extDir)
	fprintf(cmd, "\nEdit the settings file to change:\n")
	fprintf(cmd, "  - the homepage and search engine\n")
	fprintf(cmd, "  - which built-in extensions load\n")
	fprintf(cmd, "  - the proxy, user agent and load timeout\n")

	return nil
}

// resolveExtensionsDir returns the extensions directory from the settings
// at configPath, or the default when they cannot be loaded.
func resolveExtensionsDir(configPath string) string {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.NewSettings().ResolvedExtensionsDir()
	}
	return settings.ResolvedExtensionsDir()
}
