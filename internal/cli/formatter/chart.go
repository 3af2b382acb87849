package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cosmodose/internal/dose"
)

const (
	chartFilledBlock = "█"
	chartEmptyBlock  = "░"
)

// renderBar renders a horizontal bar scaled so the series maximum fills the
// full width. Zero-max series render empty bars.
func renderBar(value, maxValue float64, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if maxValue > 0 {
		filled = int(value / maxValue * float64(width))
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat(chartFilledBlock, filled) + strings.Repeat(chartEmptyBlock, width-filled)
}

// RenderSunspotChart renders the historical sunspot series as a labeled
// horizontal bar chart.
func RenderSunspotChart(history []dose.SunspotPoint, width int) string {
	var maxSunspots float64
	for _, p := range history {
		if float64(p.Sunspots) > maxSunspots {
			maxSunspots = float64(p.Sunspots)
		}
	}

	var b strings.Builder
	for _, p := range history {
		bar := renderBar(float64(p.Sunspots), maxSunspots, width)
		b.WriteString(fmt.Sprintf("%d %s %s\n",
			p.Year,
			StyleYellow.Render(bar),
			Dim(fmt.Sprintf("%d", p.Sunspots)),
		))
	}
	return b.String()
}

// RenderDoseSweepChart renders total dose vs mission duration as a labeled
// horizontal bar chart.
func RenderDoseSweepChart(sweep []dose.SweepPoint, width int) string {
	var maxDose float64
	for _, p := range sweep {
		if p.TotalDoseMSv > maxDose {
			maxDose = p.TotalDoseMSv
		}
	}

	var b strings.Builder
	for _, p := range sweep {
		bar := renderBar(p.TotalDoseMSv, maxDose, width)
		b.WriteString(fmt.Sprintf("%4dd %s %s\n",
			p.DurationDays,
			StyleBlue.Render(bar),
			Dim(FormatDose(p.TotalDoseMSv)),
		))
	}
	return b.String()
}
