package main

import (
	"github.com/spf13/cobra"
)

// NewHomeCmd creates the home command.
func NewHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Load the configured homepage",
		Long: `Home loads the homepage from the settings. The homepage is loaded as is;
it is not normalized and extensions do not rewrite it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			err = a.window.NavigateHome(cmd.Context())
			printTabs(cmd, a.window.Tabs())
			return err
		},
	}
}
