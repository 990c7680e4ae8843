package main

import (
	"time"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/nao1215/neodynium/internal/database"
)

// defaultVisitLimit is the number of journal rows shown by default.
const defaultVisitLimit = 20

var historyExample = dedent.Dedent(`
	# Show history, most recent first
	neodynium history list

	# Show the visit journal with timestamps and failed loads
	neodynium history list --journal

	# Find visits by URL, title or typed input
	neodynium history search golang

	# Forget everything
	neodynium history clear`,
)

// NewHistoryCmd creates the history command and its subcommands.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "history",
		Short:   "Show, search and clear browsing history",
		Example: historyExample,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistorySearchCmd())
	cmd.AddCommand(newHistoryClearCmd())

	return cmd
}

func newHistoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List visited URLs, most recent first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fromJournal, err := cmd.Flags().GetBool("journal")
			if err != nil {
				return err
			}
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if fromJournal {
				journal, err := a.requireJournal()
				if err != nil {
					return err
				}
				if limit <= 0 {
					limit = -1 // no LIMIT in SQLite
				}
				visits, err := journal.RecentVisits(cmd.Context(), limit)
				if err != nil {
					return err
				}
				printVisits(cmd, visits)
				return nil
			}

			history := a.engine.History()
			if len(history) == 0 {
				printNotice(cmd, "History is empty.")
				return nil
			}
			shown := 0
			for i := len(history) - 1; i >= 0; i-- {
				if limit > 0 && shown == limit {
					break
				}
				urlColor.Fprintln(cmd.OutOrStdout(), history[i]) //nolint:errcheck,gosec // terminal output
				shown++
			}
			return nil
		},
	}

	cmd.Flags().Bool("journal", false, "Read the visit journal instead of the history file")
	cmd.Flags().IntP("limit", "n", 0, "Maximum number of entries (0 means all)")

	return cmd
}

func newHistorySearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the visit journal",
		Long: `Search matches the term against the URL, title and typed input of every
journaled visit. Matching ignores ASCII case.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			journal, err := a.requireJournal()
			if err != nil {
				return err
			}
			visits, err := journal.SearchVisits(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if len(visits) == 0 {
				printNotice(cmd, "No visits match %q.", args[0])
				return nil
			}
			printVisits(cmd, visits)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", defaultVisitLimit, "Maximum number of visits")

	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the history file and the visit journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.engine.ClearHistory()
			if a.journal != nil {
				removed, err := a.journal.ClearVisits(cmd.Context())
				if err != nil {
					return err
				}
				a.logger.Debug("journal cleared", "visits", removed)
			}
			printSuccess(cmd, "History cleared.")
			return nil
		},
	}
}

func printVisits(cmd *cobra.Command, visits []database.Visit) {
	out := cmd.OutOrStdout()
	for _, v := range visits {
		fprintf(cmd, "%s  ", v.Timestamp.Local().Format(time.DateTime))
		if v.Event == database.EventError {
			errorColor.Fprintf(out, "%-5s ", v.Event) //nolint:errcheck,gosec // terminal output
		} else {
			successColor.Fprintf(out, "%-5s ", v.Event) //nolint:errcheck,gosec // terminal output
		}
		urlColor.Fprint(out, v.URL) //nolint:errcheck,gosec // terminal output
		if v.Title != "" {
			fprintf(cmd, "  %s", v.Title)
		}
		fprintf(cmd, "\n")
	}
}
