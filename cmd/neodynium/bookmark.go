package main

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var bookmarkExample = dedent.Dedent(`
	# Load a page and bookmark it with its title
	neodynium bookmark add go.dev

	# Bookmark without loading
	neodynium bookmark add https://go.dev --title "The Go Programming Language"

	# Remove by exact URL
	neodynium bookmark remove https://go.dev`,
)

// NewBookmarkCmd creates the bookmark command and its subcommands.
func NewBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bookmarks"},
		Short:   "Manage bookmarks",
		Example: bookmarkExample,
	}

	cmd.AddCommand(newBookmarkAddCmd())
	cmd.AddCommand(newBookmarkRemoveCmd())
	cmd.AddCommand(newBookmarkListCmd())

	return cmd
}

func newBookmarkAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Bookmark a page",
		Long: `Add loads the input like "open" does and bookmarks the resulting page.
With --title the input is only normalized and bookmarked, nothing is loaded.
A URL that is already bookmarked is left unchanged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, err := cmd.Flags().GetString("title")
			if err != nil {
				return err
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if title == "" {
				if err := a.window.NavigateFromBar(cmd.Context(), args[0]); err != nil {
					return err
				}
				return bookmarkCurrent(cmd, a)
			}

			url := a.engine.NormalizeURL(args[0])
			if a.engine.AddBookmark(url, title) {
				printSuccess(cmd, "Bookmarked %s", url)
			} else {
				printNotice(cmd, "Already bookmarked: %s", url)
			}
			return nil
		},
	}

	cmd.Flags().StringP("title", "t", "", "Bookmark title; skips loading the page")

	return cmd
}

func newBookmarkRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <url>",
		Aliases: []string{"rm"},
		Short:   "Remove the bookmark with exactly this URL",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.engine.RemoveBookmark(args[0]) {
				printSuccess(cmd, "Removed %s", args[0])
			} else {
				printNotice(cmd, "Not bookmarked: %s", args[0])
			}
			return nil
		},
	}
}

func newBookmarkListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List bookmarks in the order they were added",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			bookmarks := a.engine.Bookmarks()
			if len(bookmarks) == 0 {
				printNotice(cmd, "No bookmarks saved.")
				return nil
			}
			out := cmd.OutOrStdout()
			for i, b := range bookmarks {
				fprintf(cmd, "%3d. ", i+1)
				titleColor.Fprint(out, b.Title) //nolint:errcheck,gosec // terminal output
				fprintf(cmd, "\n     ")
				urlColor.Fprint(out, b.URL) //nolint:errcheck,gosec // terminal output
				fprintf(cmd, "\n")
			}
			return nil
		},
	}
}
