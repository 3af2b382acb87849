package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/cosmodose/internal/cli/formatter"
	"github.com/alexanderramin/cosmodose/internal/contract"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ── fields ───────────────────────────────────────────────────────────────────

type exploreField int

const (
	fieldDuration exploreField = iota
	fieldMaterial
	fieldThickness
	fieldLocation
	fieldSolar
	fieldFlare
	fieldAge
	fieldSex
	fieldSensitivity

	exploreFieldCount
)

var exploreFieldLabels = [exploreFieldCount]string{
	"Duration (days)",
	"Shielding",
	"Thickness (cm)",
	"Environment",
	"Solar Activity",
	"Solar Flare",
	"Age",
	"Sex",
	"Genetic Sensitivity",
}

// Cycling order for the enum fields.
var (
	materialOrder = []domain.ShieldingMaterial{
		domain.ShieldingNone,
		domain.ShieldingAluminum,
		domain.ShieldingPolyethylene,
	}
	locationOrder = []domain.Location{
		domain.LocationSeaLevel,
		domain.LocationAirplane,
		domain.LocationISSOrbit,
	}
	sexOrder = []domain.Sex{domain.SexMale, domain.SexFemale}
)

// Adjustment step sizes for the numeric fields.
const (
	durationStep = 10
	solarStep    = 5
)

// ── messages ─────────────────────────────────────────────────────────────────

// fluxLoadedMsg signals that a proton flux reading has been resolved.
type fluxLoadedMsg struct {
	reading  domain.FluxReading
	warnings []string
}

// ── model ────────────────────────────────────────────────────────────────────

// exploreModel is a live what-if explorer: every parameter change re-runs the
// estimate against the cached flux reading, so only 'f' touches the network.
type exploreModel struct {
	app *App

	mission  domain.MissionParameters
	personal domain.PersonalFactors

	flux         *domain.FluxReading
	fluxWarnings []string
	fetching     bool

	resp        *contract.EstimateResponse
	estimateErr error

	cursor exploreField
	width  int
	height int
}

func newExploreModel(app *App) *exploreModel {
	req := contract.NewEstimateRequest()
	return &exploreModel{
		app:      app,
		mission:  req.Mission,
		personal: req.Personal,
		fetching: true,
	}
}

// runExplore starts the interactive explorer and blocks until it exits.
func runExplore(app *App) error {
	p := tea.NewProgram(newExploreModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *exploreModel) shortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "adjust")),
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "refresh flux")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return m.loadFlux()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (m *exploreModel) loadFlux() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		reading, warnings := app.Flux.CurrentReading(context.Background())
		return fluxLoadedMsg{reading: reading, warnings: warnings}
	}
}

// recompute re-runs the estimate against the cached flux reading. Until the
// first reading lands there is nothing to compute.
func (m *exploreModel) recompute() {
	if m.flux == nil {
		return
	}
	req := contract.NewEstimateRequest()
	req.Mission = m.mission
	req.Personal = m.personal
	req.Flux = m.flux

	resp, err := m.app.Estimates.Estimate(context.Background(), req)
	if err != nil {
		m.resp = nil
		m.estimateErr = err
		return
	}
	m.resp = resp
	m.estimateErr = nil
}

// ── update ───────────────────────────────────────────────────────────────────

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case fluxLoadedMsg:
		m.fetching = false
		m.flux = &msg.reading
		m.fluxWarnings = msg.warnings
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.cursor = m.prevField()
		case "down", "j":
			m.cursor = m.nextField()
		case "left", "h":
			m.adjust(-1)
			m.recompute()
		case "right", "l":
			m.adjust(+1)
			m.recompute()
		case "f":
			if !m.fetching {
				m.fetching = true
				return m, m.loadFlux()
			}
		}
	}

	return m, nil
}

// prevField and nextField skip the thickness row while it is inert
// (no shielding material selected).
func (m *exploreModel) prevField() exploreField {
	f := m.cursor
	for {
		if f == 0 {
			return m.cursor
		}
		f--
		if f != fieldThickness || m.mission.Shielding != domain.ShieldingNone {
			return f
		}
	}
}

func (m *exploreModel) nextField() exploreField {
	f := m.cursor
	for {
		if f == exploreFieldCount-1 {
			return m.cursor
		}
		f++
		if f != fieldThickness || m.mission.Shielding != domain.ShieldingNone {
			return f
		}
	}
}

// adjust applies one left/right step to the selected field, clamping numeric
// values to their valid ranges and wrapping the enum fields.
func (m *exploreModel) adjust(dir int) {
	switch m.cursor {
	case fieldDuration:
		m.mission.DurationDays = clampInt(m.mission.DurationDays+dir*durationStep, domain.MinDurationDays, domain.MaxDurationDays)
	case fieldMaterial:
		m.mission.Shielding = cycleEnum(materialOrder, m.mission.Shielding, dir)
		if m.mission.Shielding == domain.ShieldingNone {
			m.mission.ThicknessCM = 0
		} else if m.mission.ThicknessCM == 0 {
			m.mission.ThicknessCM = defaultShieldedThicknessCM
		}
	case fieldThickness:
		if m.mission.Shielding != domain.ShieldingNone {
			m.mission.ThicknessCM = clampInt(m.mission.ThicknessCM+dir, 1, domain.MaxThicknessCM)
		}
	case fieldLocation:
		m.mission.Location = cycleEnum(locationOrder, m.mission.Location, dir)
	case fieldSolar:
		m.mission.SolarCycleIndex = clampInt(m.mission.SolarCycleIndex+dir*solarStep, domain.MinSolarCycle, domain.MaxSolarCycle)
	case fieldFlare:
		m.mission.FlareSimulated = !m.mission.FlareSimulated
	case fieldAge:
		m.personal.Age = clampInt(m.personal.Age+dir, domain.MinAge, domain.MaxAge)
	case fieldSex:
		m.personal.Sex = cycleEnum(sexOrder, m.personal.Sex, dir)
	case fieldSensitivity:
		m.personal.GeneticSensitivity = !m.personal.GeneticSensitivity
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cycleEnum steps through order from the current value, wrapping both ways.
func cycleEnum[T comparable](order []T, current T, dir int) T {
	idx := 0
	for i, v := range order {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + dir + len(order)) % len(order)
	return order[idx]
}

// ── view rendering ───────────────────────────────────────────────────────────

const exploreLeftPaneWidth = 34

func (m *exploreModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + formatter.StyleHeader.Render("COSMIC RADIATION EXPLORER"))
	b.WriteString("\n\n")

	leftPane := m.renderParamsPane()
	rightPane := m.renderResultPane()

	useSplit := m.width >= 80
	if !useSplit {
		b.WriteString(leftPane)
		b.WriteString("\n")
		b.WriteString(rightPane)
	} else {
		rightWidth := m.width - exploreLeftPaneWidth - 3
		if rightWidth < 20 {
			rightWidth = 20
		}

		leftCol := lipgloss.NewStyle().Width(exploreLeftPaneWidth).Render(leftPane)
		divider := lipgloss.NewStyle().Foreground(formatter.ColorDim).Render("│")
		rightCol := lipgloss.NewStyle().Width(rightWidth).Render(rightPane)

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, leftCol, " "+divider+" ", rightCol))
	}

	b.WriteString("\n\n  " + m.renderFooter())
	return b.String()
}

func (m *exploreModel) fieldValue(f exploreField) string {
	switch f {
	case fieldDuration:
		return fmt.Sprintf("%d", m.mission.DurationDays)
	case fieldMaterial:
		return m.mission.Shielding.Label()
	case fieldThickness:
		if m.mission.Shielding == domain.ShieldingNone {
			return "—"
		}
		return fmt.Sprintf("%d", m.mission.ThicknessCM)
	case fieldLocation:
		return m.mission.Location.Label()
	case fieldSolar:
		return fmt.Sprintf("%d / 100", m.mission.SolarCycleIndex)
	case fieldFlare:
		return yesNo(m.mission.FlareSimulated)
	case fieldAge:
		return fmt.Sprintf("%d", m.personal.Age)
	case fieldSex:
		return m.personal.Sex.Label()
	case fieldSensitivity:
		return yesNo(m.personal.GeneticSensitivity)
	}
	return ""
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func (m *exploreModel) renderParamsPane() string {
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Parameters") + "\n")

	for f := exploreField(0); f < exploreFieldCount; f++ {
		inert := f == fieldThickness && m.mission.Shielding == domain.ShieldingNone

		cursor := "  "
		labelStyle := formatter.StyleFg
		valueStyle := formatter.StyleBold
		if f == m.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			labelStyle = formatter.StyleBold
		}
		if inert {
			labelStyle = formatter.StyleDim
			valueStyle = formatter.StyleDim
		}

		b.WriteString(fmt.Sprintf("  %s%s %s\n",
			cursor,
			labelStyle.Render(padRight(exploreFieldLabels[f], 20)),
			valueStyle.Render(m.fieldValue(f)),
		))
	}

	return b.String()
}

func (m *exploreModel) renderResultPane() string {
	var b strings.Builder
	b.WriteString("  " + formatter.Header("Estimate") + "\n")

	if m.fetching && m.flux == nil {
		b.WriteString("  " + formatter.Dim("Fetching solar proton flux...") + "\n")
		return b.String()
	}

	if m.flux != nil {
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			formatter.Dim("Flux"),
			formatter.Bold(formatter.FormatFlux(m.flux.ProtonFlux)),
			formatter.SourceBadge(m.flux.Source),
		))
		if m.fetching {
			b.WriteString("  " + formatter.Dim("Refreshing...") + "\n")
		}
		for _, w := range m.fluxWarnings {
			b.WriteString("  " + formatter.StyleYellow.Render(w) + "\n")
		}
		b.WriteString("\n")
	}

	if m.estimateErr != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+m.estimateErr.Error()) + "\n")
		return b.String()
	}
	if m.resp == nil {
		return b.String()
	}

	r := m.resp.Result
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Daily Dose "), formatter.Bold(formatter.FormatDose(r.DailyDoseMSv))))
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Total Dose "), formatter.Bold(formatter.FormatDose(r.TotalDoseMSv))))
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Cancer Risk"), formatter.Bold(formatter.FormatRisk(r.RiskPercent))))
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Background "), formatter.FormatBackgroundYears(r.BackgroundYears)))
	if r.FlareDays > 0 {
		b.WriteString("  " + formatter.FlareBadge(r.FlareDays, r.NormalDays) + "\n")
	}
	b.WriteString("\n  " + formatter.RiskBanner(m.resp.RiskBand) + "\n")

	if len(m.resp.Sweep) > 0 {
		b.WriteString("\n  " + formatter.StyleHeader.Render("DOSE VS DURATION") + "\n")
		chart := formatter.RenderDoseSweepChart(m.resp.Sweep, 20)
		for _, line := range strings.Split(strings.TrimRight(chart, "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}

	return b.String()
}

func (m *exploreModel) renderFooter() string {
	parts := make([]string, 0, 4)
	for _, binding := range m.shortHelp() {
		h := binding.Help()
		parts = append(parts, formatter.Bold(h.Key)+" "+formatter.Dim(h.Desc))
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}

// padRight pads s with spaces to width, truncating when longer.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
