package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nao1215/neodynium/internal/browser"
)

// Printers for command output. color disables itself when stdout is not
// a terminal.
var (
	errorColor   = color.New(color.FgRed)
	titleColor   = color.New(color.FgCyan, color.Bold)
	urlColor     = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	noticeColor  = color.New(color.FgMagenta)
)

// printTabs lists the open tabs, marking the current one.
func printTabs(cmd *cobra.Command, tabs []browser.TabInfo) {
	out := cmd.OutOrStdout()
	for _, t := range tabs {
		marker := " "
		if t.Current {
			marker = "*"
		}
		fprintf(cmd, "%s [%d] ", marker, t.Index)
		titleColor.Fprint(out, t.Title) //nolint:errcheck,gosec // terminal output
		if t.URL != "" {
			fprintf(cmd, "  ")
			urlColor.Fprint(out, t.URL) //nolint:errcheck,gosec // terminal output
		}
		fprintf(cmd, "\n")
	}
}

func printSuccess(cmd *cobra.Command, format string, a ...any) {
	successColor.Fprintf(cmd.OutOrStdout(), format+"\n", a...) //nolint:errcheck,gosec // terminal output
}

func printNotice(cmd *cobra.Command, format string, a ...any) {
	noticeColor.Fprintf(cmd.OutOrStdout(), format+"\n", a...) //nolint:errcheck,gosec // terminal output
}
