package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cosmodose/internal/cli/formatter"
	"github.com/alexanderramin/cosmodose/internal/contract"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/alexanderramin/cosmodose/internal/facts"
	"github.com/spf13/cobra"
)

func newEstimateCmd(app *App) *cobra.Command {
	var (
		days      int
		material  string
		thickness int
		location  string
		solar     int
		flare     bool
		age       int
		sex       string
		sensitive bool
		fluxValue float64
		noFact    bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Run one dose/risk estimate from flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewEstimateRequest()
			req.Mission.DurationDays = days
			req.Mission.ThicknessCM = thickness
			req.Mission.SolarCycleIndex = solar
			req.Mission.FlareSimulated = flare
			req.Personal.Age = age
			req.Personal.GeneticSensitivity = sensitive

			m, err := parseShieldingMaterial(material)
			if err != nil {
				return err
			}
			req.Mission.Shielding = m

			l, err := parseLocation(location)
			if err != nil {
				return err
			}
			req.Mission.Location = l

			s, err := parseSex(sex)
			if err != nil {
				return err
			}
			req.Personal.Sex = s

			if cmd.Flags().Changed("flux") {
				req.Flux = &domain.FluxReading{ProtonFlux: fluxValue, Source: domain.FluxLive}
			}

			resp, err := app.Estimates.Estimate(context.Background(), req)
			if err != nil {
				return err
			}

			fact := ""
			if !noFact && app.Rand != nil {
				fact = facts.Pick(app.Rand)
			}

			fmt.Println(formatter.FormatResult(req.Mission, req.Personal, resp, fact))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 180, "Mission duration in days (1-1000)")
	cmd.Flags().StringVar(&material, "material", "none", "Shielding material: none, aluminum, polyethylene")
	cmd.Flags().IntVar(&thickness, "thickness", 0, "Shielding thickness in cm (0-20)")
	cmd.Flags().StringVar(&location, "location", "sea-level", "Mission environment: sea-level, airplane, iss-orbit")
	cmd.Flags().IntVar(&solar, "solar", 50, "Solar activity index (0 = minimum, 100 = maximum)")
	cmd.Flags().BoolVar(&flare, "flare", false, "Simulate a solar flare event (10x flux for 2 days)")
	cmd.Flags().IntVar(&age, "age", 30, "Your age (18-80)")
	cmd.Flags().StringVar(&sex, "sex", "male", "Sex assigned at birth: male, female")
	cmd.Flags().BoolVar(&sensitive, "sensitive", false, "Known genetic sensitivity to radiation")
	cmd.Flags().Float64Var(&fluxValue, "flux", 0, "Override proton flux (skips the live fetch)")
	cmd.Flags().BoolVar(&noFact, "no-fact", false, "Skip the cosmic fun fact footer")

	return cmd
}

// parseShieldingMaterial accepts the flag spelling of a shielding material.
func parseShieldingMaterial(s string) (domain.ShieldingMaterial, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidShieldingMaterials[v] {
		return "", fmt.Errorf("unknown material %q (use none, aluminum, or polyethylene)", s)
	}
	return domain.ShieldingMaterial(v), nil
}

// parseLocation accepts the flag spelling of a mission environment, with
// dashes normalized to the canonical underscore form.
func parseLocation(s string) (domain.Location, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, "-", "_")
	if !domain.ValidLocations[v] {
		return "", fmt.Errorf("unknown location %q (use sea-level, airplane, or iss-orbit)", s)
	}
	return domain.Location(v), nil
}

// parseSex accepts the flag spelling of a sex.
func parseSex(s string) (domain.Sex, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidSexes[v] {
		return "", fmt.Errorf("unknown sex %q (use male or female)", s)
	}
	return domain.Sex(v), nil
}
