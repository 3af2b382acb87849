package formatter

import (
	"testing"

	"github.com/alexanderramin/cosmodose/internal/contract"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/alexanderramin/cosmodose/internal/dose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResponse(t *testing.T) (domain.MissionParameters, domain.PersonalFactors, *contract.EstimateResponse) {
	t.Helper()

	m := domain.MissionParameters{
		DurationDays:    180,
		Shielding:       domain.ShieldingAluminum,
		ThicknessCM:     5,
		Location:        domain.LocationISSOrbit,
		SolarCycleIndex: 50,
	}
	p := domain.PersonalFactors{Age: 60, Sex: domain.SexFemale, GeneticSensitivity: true}
	reading := domain.FluxReading{ProtonFlux: 100, Source: domain.FluxLive}

	result, err := dose.Estimate(m, p, reading)
	require.NoError(t, err)

	sweep, err := dose.DurationSweep(m, p, reading, 6)
	require.NoError(t, err)

	return m, p, &contract.EstimateResponse{
		EstimateID: "est-1",
		Result:     result,
		Flux:       reading,
		RiskBand:   dose.RiskBandFor(result.RiskPercent),
		Sweep:      sweep,
	}
}

func TestFormatResult_ContainsHeadlineMetrics(t *testing.T) {
	m, p, resp := sampleResponse(t)

	out := FormatResult(m, p, resp, "")
	assert.Contains(t, out, "Estimated Total Dose")
	assert.Contains(t, out, "Estimated Cancer Risk")
	assert.Contains(t, out, "ISS Orbit (~400 km)")
	assert.Contains(t, out, "180 days")
	assert.Contains(t, out, "Aluminum, 5 cm")
	assert.Contains(t, out, "DOSE VS MISSION DURATION")
}

func TestFormatResult_ShowsPersonalMultipliers(t *testing.T) {
	m, p, resp := sampleResponse(t)

	out := FormatResult(m, p, resp, "")
	assert.Contains(t, out, "age>50 ×1.1")
	assert.Contains(t, out, "female ×1.2")
	assert.Contains(t, out, "sensitivity ×1.5")
}

func TestFormatResult_WarningsAndFact(t *testing.T) {
	m, p, resp := sampleResponse(t)
	resp.Warnings = []string{"Unable to fetch live data. Using fallback flux: 100 p/cm²/s/sr"}

	out := FormatResult(m, p, resp, "Mars has no magnetic shield → cosmic rays freely hit its surface.")
	assert.Contains(t, out, "WARNING: Unable to fetch live data")
	assert.Contains(t, out, "Mars has no magnetic shield")
}

func TestFormatFluxReading(t *testing.T) {
	out := FormatFluxReading(domain.FluxReading{ProtonFlux: 340.25, Source: domain.FluxLive}, nil)
	assert.Contains(t, out, "3.40e+02")
	assert.Contains(t, out, "LIVE")

	out = FormatFluxReading(domain.FallbackFluxReading(), []string{"Unable to fetch live data"})
	assert.Contains(t, out, "FALLBACK")
	assert.Contains(t, out, "WARNING")
}

func TestFormatFactorTables(t *testing.T) {
	out := FormatFactorTables()
	assert.Contains(t, out, "Polyethylene")
	assert.Contains(t, out, "0.5")
	assert.Contains(t, out, "250")
	assert.Contains(t, out, "×1.5")
	assert.Contains(t, out, "exp(-0.1")
}
