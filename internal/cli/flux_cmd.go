package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cosmodose/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFluxCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "flux",
		Short: "Show the current solar proton flux reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			reading, warnings := app.Flux.CurrentReading(context.Background())
			fmt.Println(formatter.FormatFluxReading(reading, warnings))
			return nil
		},
	}
}
