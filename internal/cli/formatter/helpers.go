package formatter

import (
	"fmt"
	"math"

	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// FormatDose renders a dose in mSv with two decimals, switching to scientific
// notation for values too small to show at that precision.
func FormatDose(mSv float64) string {
	if mSv != 0 && math.Abs(mSv) < 0.01 {
		return fmt.Sprintf("%.2e mSv", mSv)
	}
	return fmt.Sprintf("%.2f mSv", mSv)
}

// FormatRisk renders a risk percentage with two decimals, switching to
// scientific notation below display precision.
func FormatRisk(pct float64) string {
	if pct != 0 && math.Abs(pct) < 0.01 {
		return fmt.Sprintf("%.2e %%", pct)
	}
	return fmt.Sprintf("%.2f %%", pct)
}

// FormatFlux renders a proton flux in the feed's scientific notation.
func FormatFlux(flux float64) string {
	return fmt.Sprintf("%.2e protons/cm²/s/sr", flux)
}

// FormatBackgroundYears renders the Earth-background equivalence line.
func FormatBackgroundYears(years float64) string {
	return fmt.Sprintf("Approx. %.1f years of average Earth background dose (~%.1f mSv/year).", years, 2.4)
}

// FormatFactor renders a multiplicative factor with enough precision to show
// attenuation values.
func FormatFactor(f float64) string {
	return fmt.Sprintf("×%.3f", f)
}

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(title)
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// FlareBadge describes the flare split for the report.
func FlareBadge(flareDays, normalDays int) string {
	if flareDays == 0 {
		return Dim("no flare simulated")
	}
	return StyleYellow.Render(fmt.Sprintf("☀ flare: %dd at 10× flux", flareDays)) +
		Dim(fmt.Sprintf(" + %dd normal", normalDays))
}

// LocationBadge returns a purple-styled environment label.
func LocationBadge(l domain.Location) string {
	return StylePurple.Render(l.Label())
}
