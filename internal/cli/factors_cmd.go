package cli

import (
	"fmt"

	"github.com/alexanderramin/cosmodose/internal/cli/formatter"
	"github.com/alexanderramin/cosmodose/internal/dose"
	"github.com/spf13/cobra"
)

func newFactorsCmd(app *App) *cobra.Command {
	var sunspots bool

	cmd := &cobra.Command{
		Use:   "factors",
		Short: "Show the model's factor tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(formatter.FormatFactorTables())
			if sunspots {
				fmt.Println(formatter.Header("Historical Solar Cycle (Sunspot Number)"))
				fmt.Print(formatter.RenderSunspotChart(dose.SunspotHistory(), 24))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sunspots, "sunspots", false, "Include the historical sunspot chart")

	return cmd
}
