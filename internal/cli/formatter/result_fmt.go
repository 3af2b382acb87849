package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cosmodose/internal/contract"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/alexanderramin/cosmodose/internal/dose"
)

const sweepChartWidth = 24

// FormatResult formats an EstimateResponse into the styled report printed by
// the estimate and wizard commands. fact may be empty to omit the footer.
func FormatResult(params domain.MissionParameters, personal domain.PersonalFactors, resp *contract.EstimateResponse, fact string) string {
	var b strings.Builder

	// Inputs recap.
	b.WriteString(Dim("Mission   "))
	b.WriteString(fmt.Sprintf("%s for %s\n",
		LocationBadge(params.Location),
		Bold(fmt.Sprintf("%d days", params.DurationDays)),
	))
	b.WriteString(Dim("Shielding "))
	if params.Shielding == domain.ShieldingNone {
		b.WriteString(Dim("none") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("%s, %d cm\n", params.Shielding.Label(), params.ThicknessCM))
	}
	b.WriteString(Dim("Solar     "))
	b.WriteString(fmt.Sprintf("cycle index %d, %s\n", params.SolarCycleIndex,
		FlareBadge(resp.Result.FlareDays, resp.Result.NormalDays)))

	// Flux source line.
	b.WriteString(Dim("Flux      "))
	b.WriteString(fmt.Sprintf("%s %s\n\n", FormatFlux(resp.Flux.ProtonFlux), SourceBadge(resp.Flux.Source)))

	// Headline metrics.
	b.WriteString(fmt.Sprintf("%s  %s\n",
		Dim("Estimated Total Dose"),
		Bold(FormatDose(resp.Result.TotalDoseMSv)),
	))
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		Dim("Estimated Cancer Risk"),
		Bold(FormatRisk(resp.Result.RiskPercent)),
	))

	b.WriteString(RiskBanner(resp.RiskBand) + "\n")
	b.WriteString(Dim(FormatBackgroundYears(resp.Result.BackgroundYears)) + "\n\n")

	// Factor breakdown.
	b.WriteString(FormatFactorBreakdown(resp.Result, personal))

	// Dose growth chart.
	if len(resp.Sweep) > 0 {
		b.WriteString("\n" + Header("Dose vs Mission Duration") + "\n")
		b.WriteString(RenderDoseSweepChart(resp.Sweep, sweepChartWidth))
	}

	// Non-fatal warnings (e.g. fallback substitution).
	for _, w := range resp.Warnings {
		b.WriteString("\n" + StyleYellow.Render("WARNING: "+w) + "\n")
	}

	if fact != "" {
		b.WriteString("\n" + StylePurple.Render("✨ "+fact) + "\n")
	}

	return RenderBox("Cosmic Radiation Risk", b.String())
}

// FormatFactorBreakdown renders the multiplicative chain behind the daily dose
// plus the personal multipliers applied to the risk.
func FormatFactorBreakdown(result dose.DoseResult, personal domain.PersonalFactors) string {
	f := result.Factors

	rows := [][]string{
		{"base dose/day", fmt.Sprintf("%.6f mSv", f.BaseDosePerDay)},
		{"material", FormatFactor(f.MaterialFactor)},
		{"attenuation", FormatFactor(f.AttenuationFactor)},
		{"location", FormatFactor(f.LocationFactor)},
		{"solar cycle", FormatFactor(f.SolarFactor)},
		{"daily dose", Bold(fmt.Sprintf("%.6f mSv", result.DailyDoseMSv))},
	}

	var b strings.Builder
	b.WriteString(RenderTable([]string{"FACTOR", "VALUE"}, rows))

	var multipliers []string
	if personal.Age > dose.AgeMultiplierThreshold {
		multipliers = append(multipliers, fmt.Sprintf("age>50 ×%.1f", dose.AgeMultiplier))
	}
	if personal.Sex == domain.SexFemale {
		multipliers = append(multipliers, fmt.Sprintf("female ×%.1f", dose.FemaleMultiplier))
	}
	if personal.GeneticSensitivity {
		multipliers = append(multipliers, fmt.Sprintf("sensitivity ×%.1f", dose.SensitivityMultiplier))
	}
	if len(multipliers) > 0 {
		b.WriteString(Dim("Personal risk multipliers: ") + strings.Join(multipliers, ", ") + "\n")
	}

	return b.String()
}

// FormatFluxReading formats the flux subcommand output.
func FormatFluxReading(reading domain.FluxReading, warnings []string) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", Bold(FormatFlux(reading.ProtonFlux)), SourceBadge(reading.Source)))
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("WARNING: "+w) + "\n")
	}
	return RenderBox("Live Solar Proton Flux (≥10 MeV)", b.String())
}

// FormatFactorTables renders the factors subcommand output: the model's fixed
// lookup tables and interpolation endpoints.
func FormatFactorTables() string {
	var b strings.Builder

	b.WriteString(Header("Shielding Materials") + "\n")
	b.WriteString(RenderTable(
		[]string{"MATERIAL", "FACTOR"},
		[][]string{
			{domain.ShieldingNone.Label(), "1.0"},
			{domain.ShieldingAluminum.Label(), "0.7"},
			{domain.ShieldingPolyethylene.Label(), "0.5"},
		},
	))
	b.WriteString(Dim(fmt.Sprintf("Thickness attenuation: exp(-%.1f × cm), materials only\n", dose.AttenuationCoefficient)))

	b.WriteString("\n" + Header("Mission Environments") + "\n")
	b.WriteString(RenderTable(
		[]string{"ENVIRONMENT", "FACTOR"},
		[][]string{
			{domain.LocationSeaLevel.Label(), "1"},
			{domain.LocationAirplane.Label(), "30"},
			{domain.LocationISSOrbit.Label(), "250"},
		},
	))

	b.WriteString("\n" + Header("Solar Cycle") + "\n")
	b.WriteString(fmt.Sprintf("index 0 (minimum) → ×%.1f, index 100 (maximum) → ×%.1f, linear\n",
		dose.SolarFactorAtMinimum, dose.SolarFactorAtMaximum))

	b.WriteString("\n" + Header("Personal Multipliers") + "\n")
	b.WriteString(RenderTable(
		[]string{"CONDITION", "MULTIPLIER"},
		[][]string{
			{fmt.Sprintf("age > %d", dose.AgeMultiplierThreshold), fmt.Sprintf("×%.1f", dose.AgeMultiplier)},
			{"female", fmt.Sprintf("×%.1f", dose.FemaleMultiplier)},
			{"genetic sensitivity", fmt.Sprintf("×%.1f", dose.SensitivityMultiplier)},
		},
	))

	return b.String()
}
