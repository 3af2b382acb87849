package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "cosmodose" command and registers all
// subcommands against the provided App. Running it bare on a terminal opens
// the interactive explorer.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "cosmodose",
		Short: "Cosmic radiation dose and cancer-risk estimator",
		Long: "Estimates cosmic ray dose and cancer risk for a hypothetical mission\n" +
			"from live (or fallback) proton flux, shielding, environment, solar\n" +
			"activity, and personal risk factors. Educational tool only — not for\n" +
			"medical or mission planning use.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runExplore(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newEstimateCmd(app),
		newWizardCmd(app),
		newExploreCmd(app),
		newFluxCmd(app),
		newFactorsCmd(app),
	)

	return root
}
