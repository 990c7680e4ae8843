package main

import (
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/neodynium/internal/extension"
)

// NewExtensionsCmd creates the extensions command.
func NewExtensionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "extensions",
		Aliases: []string{"ext"},
		Short:   "Inspect extensions",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List loaded and available extensions",
		Long: `List shows the extensions loaded from the settings (builtin_extensions)
and from the extensions directory, in load order, followed by every
registered extension that a manifest can refer to.`,
		Args: cobra.NoArgs,
		RunE: runExtensionsList,
	})

	return cmd
}

func runExtensionsList(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()

	titleColor.Fprintln(out, "Loaded") //nolint:errcheck,gosec // terminal output
	loaded := a.dispatcher.Extensions()
	if len(loaded) == 0 {
		printNotice(cmd, "  none (extensions directory: %s)", a.settings.ResolvedExtensionsDir())
	}
	for i, ext := range loaded {
		fprintf(cmd, "%3d. %s (%s)", i+1, displayName(ext.ID()), ext.ID())
		if caps := extension.Capabilities(ext); len(caps) > 0 {
			fprintf(cmd, " [%s]", strings.Join(caps, ", "))
		}
		fprintf(cmd, "\n")
		if desc := extension.Description(ext); desc != "" {
			fprintf(cmd, "     %s\n", desc)
		}
	}

	fprintf(cmd, "\n")
	titleColor.Fprintln(out, "Available") //nolint:errcheck,gosec // terminal output
	for _, id := range a.registry.IDs() {
		fprintf(cmd, "  - %s\n", id)
	}
	return nil
}

// displayName turns an extension ID such as "https-upgrade" into
// "Https Upgrade".
func displayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}
