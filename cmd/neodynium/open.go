package main

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
)

var openExample = dedent.Dedent(`
	# Open a page
	neodynium open https://go.dev

	# host:port gets http://, bare domains get https://, anything else is searched
	neodynium open localhost:8080
	neodynium open "golang generics"

	# Open several tabs at once and bookmark the last one
	neodynium open go.dev pkg.go.dev --bookmark`,
)

// NewOpenCmd creates the open command.
func NewOpenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <text>...",
		Short: "Load address bar input in one or more tabs",
		Long: `Open treats each argument as address bar input. Input that looks like a URL,
a host:port or a domain is loaded directly; anything else becomes a search on
the configured search engine. Extensions may rewrite the address before it
is loaded.

With one argument the page is loaded in the current tab. With several, each
one opens in its own tab and the pages are fetched concurrently.`,
		Example: openExample,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runOpen,
	}

	cmd.Flags().BoolP("bookmark", "b", false, "Bookmark the current page after loading")

	return cmd
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	bookmark, err := cmd.Flags().GetBool("bookmark")
	if err != nil {
		return err
	}

	if len(args) == 1 {
		err = a.window.NavigateFromBar(cmd.Context(), args[0])
	} else {
		err = a.window.OpenTabs(cmd.Context(), args)
	}
	printTabs(cmd, a.window.Tabs())
	if err != nil {
		return err
	}

	if bookmark {
		return bookmarkCurrent(cmd, a)
	}
	return nil
}

// bookmarkCurrent bookmarks the window's current page and reports it.
func bookmarkCurrent(cmd *cobra.Command, a *app) error {
	b, added, err := a.window.AddBookmark()
	if err != nil {
		return err
	}
	if added {
		printSuccess(cmd, "Bookmarked %s", b.URL)
	} else {
		printNotice(cmd, "Already bookmarked: %s", b.URL)
	}
	return nil
}
