package cli

import (
	"github.com/spf13/cobra"
)

func newExploreCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "explore",
		Short: "Interactive what-if explorer (TUI)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(app)
		},
	}
}
