package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/cosmodose/internal/cli/formatter"
	"github.com/alexanderramin/cosmodose/internal/contract"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/alexanderramin/cosmodose/internal/facts"
	"github.com/spf13/cobra"
)

func newWizardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Interactive guided estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWizard(app)
		},
	}
}

// runWizard walks the user through mission and personal forms, then runs a
// single estimate and prints the full report.
func runWizard(app *App) error {
	req := contract.NewEstimateRequest()

	durationStr := strconv.Itoa(req.Mission.DurationDays)
	material := string(req.Mission.Shielding)
	thicknessStr := strconv.Itoa(defaultShieldedThicknessCM)
	location := string(req.Mission.Location)
	solarStr := strconv.Itoa(req.Mission.SolarCycleIndex)
	flare := req.Mission.FlareSimulated

	if err := wizardMissionForm(&durationStr, &material, &thicknessStr, &location, &solarStr, &flare).Run(); err != nil {
		return err
	}

	ageStr := strconv.Itoa(req.Personal.Age)
	sex := string(req.Personal.Sex)
	sensitive := req.Personal.GeneticSensitivity

	if err := wizardPersonalForm(&ageStr, &sex, &sensitive).Run(); err != nil {
		return err
	}

	req.Mission.DurationDays = parseIntOr(durationStr, req.Mission.DurationDays)
	req.Mission.Shielding = domain.ShieldingMaterial(material)
	req.Mission.SolarCycleIndex = parseIntOr(solarStr, req.Mission.SolarCycleIndex)
	req.Mission.FlareSimulated = flare
	if req.Mission.Shielding != domain.ShieldingNone {
		req.Mission.ThicknessCM = parseIntOr(thicknessStr, defaultShieldedThicknessCM)
	}
	req.Mission.Location = domain.Location(location)
	req.Personal.Age = parseIntOr(ageStr, req.Personal.Age)
	req.Personal.Sex = domain.Sex(sex)
	req.Personal.GeneticSensitivity = sensitive

	resp, err := app.Estimates.Estimate(context.Background(), req)
	if err != nil {
		return err
	}

	fact := ""
	if app.Rand != nil {
		fact = facts.Pick(app.Rand)
	}

	fmt.Println(formatter.FormatResult(req.Mission, req.Personal, resp, fact))
	return nil
}
