package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/cosmodose/internal/cli/formatter"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// defaultShieldedThicknessCM matches the thickness the original slider
// offered once a material was chosen.
const defaultShieldedThicknessCM = 5

// cosmodoseHuhTheme returns a custom huh theme using the Gruvbox palette.
func cosmodoseHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateIntInRange accepts an integer within [lo, hi].
func validateIntInRange(lo, hi int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a number between %d and %d", lo, hi)
		}
		return nil
	}
}

// parseIntOr parses s, returning fallback on any failure. Used after huh form
// validation has already ensured the string is valid.
func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// wizardMissionForm builds the mission parameter form. Thickness is asked in
// a second group that only appears when a material is selected.
func wizardMissionForm(durationStr, material, thicknessStr, location, solarStr *string, flare *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mission Duration (days)").
				Placeholder("180").
				Value(durationStr).
				Validate(validateIntInRange(domain.MinDurationDays, domain.MaxDurationDays)),
			huh.NewSelect[string]().
				Title("Shielding Material").
				Options(
					huh.NewOption(domain.ShieldingNone.Label(), string(domain.ShieldingNone)),
					huh.NewOption(domain.ShieldingAluminum.Label(), string(domain.ShieldingAluminum)),
					huh.NewOption(domain.ShieldingPolyethylene.Label(), string(domain.ShieldingPolyethylene)),
				).
				Value(material),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Shielding Thickness (cm)").
				Placeholder(strconv.Itoa(defaultShieldedThicknessCM)).
				Value(thicknessStr).
				Validate(validateIntInRange(1, domain.MaxThicknessCM)),
		).WithHideFunc(func() bool {
			return *material == string(domain.ShieldingNone)
		}),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mission Environment").
				Options(
					huh.NewOption(domain.LocationSeaLevel.Label(), string(domain.LocationSeaLevel)),
					huh.NewOption(domain.LocationAirplane.Label(), string(domain.LocationAirplane)),
					huh.NewOption(domain.LocationISSOrbit.Label(), string(domain.LocationISSOrbit)),
				).
				Value(location),
			huh.NewInput().
				Title("Solar Activity (0 = Solar Minimum, 100 = Solar Maximum)").
				Placeholder("50").
				Value(solarStr).
				Validate(validateIntInRange(domain.MinSolarCycle, domain.MaxSolarCycle)),
			huh.NewConfirm().
				Title("Simulate Solar Flare Event? (10x flux for 2 days)").
				Affirmative("Yes").
				Negative("No").
				Value(flare),
		),
	).WithTheme(cosmodoseHuhTheme()).WithShowHelp(false)
}

// wizardPersonalForm builds the personal risk factor form.
func wizardPersonalForm(ageStr *string, sex *string, sensitive *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your Age").
				Placeholder("30").
				Value(ageStr).
				Validate(validateIntInRange(domain.MinAge, domain.MaxAge)),
			huh.NewSelect[string]().
				Title("Sex Assigned at Birth").
				Options(
					huh.NewOption(domain.SexMale.Label(), string(domain.SexMale)),
					huh.NewOption(domain.SexFemale.Label(), string(domain.SexFemale)),
				).
				Value(sex),
			huh.NewConfirm().
				Title("Known Genetic Sensitivity to Radiation?").
				Affirmative("Yes").
				Negative("No").
				Value(sensitive),
		),
	).WithTheme(cosmodoseHuhTheme()).WithShowHelp(false)
}
