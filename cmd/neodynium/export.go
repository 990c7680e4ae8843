package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/nao1215/neodynium/internal/report"
)

var exportExample = dedent.Dedent(`
	# Print bookmarks and history as Markdown
	neodynium export

	# Save a JSON backup
	neodynium export --format json -o backup.json`,
)

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export bookmarks and history",
		Example: exportExample,
		Args:    cobra.NoArgs,
		RunE:    runExport,
	}

	cmd.Flags().StringP("format", "f", report.FormatMarkdown,
		"Output format ("+strings.Join(report.Formats(), ", ")+")")
	cmd.Flags().StringP("output", "o", "", "Output file (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) (err error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	if outputPath != "" {
		if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create directory: %w", err)
			}
		}
		var f *os.File
		f, err = os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // user-provided output path
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = bufio.NewWriter(f)
	}

	writer, err := report.NewWriter(format, out)
	if err != nil {
		return err
	}

	export := report.NewExport(a.engine.Bookmarks(), a.engine.History(), getVersion())
	if _, err := writer.Write(export); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	if outputPath != "" {
		printSuccess(cmd, "Exported %d bookmarks and %d history entries to %s",
			len(export.Bookmarks), len(export.History), outputPath)
	}
	return nil
}
