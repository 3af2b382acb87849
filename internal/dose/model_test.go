package dose

import (
	"testing"

	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-12

func baselineMission() domain.MissionParameters {
	return domain.MissionParameters{
		DurationDays:    180,
		Shielding:       domain.ShieldingNone,
		ThicknessCM:     0,
		Location:        domain.LocationSeaLevel,
		SolarCycleIndex: 50,
	}
}

func baselinePersonal() domain.PersonalFactors {
	return domain.PersonalFactors{Age: 30, Sex: domain.SexMale}
}

func liveFlux(v float64) domain.FluxReading {
	return domain.FluxReading{ProtonFlux: v, Source: domain.FluxLive}
}

func TestEstimate_BaselineScenario(t *testing.T) {
	// flux=100, 180 days, no shielding, sea level, solar cycle 50, no flare.
	result, err := Estimate(baselineMission(), baselinePersonal(), liveFlux(100))
	require.NoError(t, err)

	assert.InDelta(t, 0.005, result.DailyDoseMSv, epsilon)
	assert.InDelta(t, 0.9, result.TotalDoseMSv, epsilon)
	assert.InDelta(t, 0.0045, result.RiskPercent, epsilon)
	assert.InDelta(t, 0.9/2.4, result.BackgroundYears, epsilon)
	assert.Equal(t, 0, result.FlareDays)
	assert.Equal(t, 180, result.NormalDays)
}

func TestEstimate_ISSOrbitScenario(t *testing.T) {
	m := baselineMission()
	m.Location = domain.LocationISSOrbit

	result, err := Estimate(m, baselinePersonal(), liveFlux(100))
	require.NoError(t, err)

	assert.InDelta(t, 1.25, result.DailyDoseMSv, epsilon)
	assert.InDelta(t, 225, result.TotalDoseMSv, 1e-9)
	assert.InDelta(t, 1.125, result.RiskPercent, 1e-9)
}

func TestEstimate_FlareScenario(t *testing.T) {
	// 10 days with a flare: 2 flare days at 10x, 8 normal days.
	m := baselineMission()
	m.DurationDays = 10
	m.FlareSimulated = true

	result, err := Estimate(m, baselinePersonal(), liveFlux(100))
	require.NoError(t, err)

	assert.Equal(t, 2, result.FlareDays)
	assert.Equal(t, 8, result.NormalDays)
	assert.InDelta(t, 0.005, result.DailyDoseMSv, epsilon)
	assert.InDelta(t, 0.14, result.TotalDoseMSv, epsilon)
}

func TestEstimate_LinearInDurationWithoutFlare(t *testing.T) {
	m := baselineMission()
	m.DurationDays = 90
	single, err := Estimate(m, baselinePersonal(), liveFlux(250))
	require.NoError(t, err)

	m.DurationDays = 180
	double, err := Estimate(m, baselinePersonal(), liveFlux(250))
	require.NoError(t, err)

	assert.InDelta(t, 2*single.TotalDoseMSv, double.TotalDoseMSv, 1e-9)
}

func TestEstimate_RiskProportionalToDose(t *testing.T) {
	for _, flux := range []float64{1, 100, 5000} {
		result, err := Estimate(baselineMission(), baselinePersonal(), liveFlux(flux))
		require.NoError(t, err)
		assert.InDelta(t, result.TotalDoseMSv*0.005, result.BaseRiskPercent, 1e-9)
	}
}

func TestEstimate_PersonalMultipliersCompose(t *testing.T) {
	m := baselineMission()
	m.Location = domain.LocationISSOrbit

	base, err := Estimate(m, baselinePersonal(), liveFlux(100))
	require.NoError(t, err)

	adjusted, err := Estimate(m, domain.PersonalFactors{
		Age:                60,
		Sex:                domain.SexFemale,
		GeneticSensitivity: true,
	}, liveFlux(100))
	require.NoError(t, err)

	assert.InDelta(t, base.RiskPercent*1.1*1.2*1.5, adjusted.RiskPercent, 1e-9)
	assert.InDelta(t, base.RiskPercent, adjusted.BaseRiskPercent, 1e-12,
		"base risk unaffected by personal factors")
}

func TestEstimate_AgeThresholdIsExclusive(t *testing.T) {
	m := baselineMission()

	at50, err := Estimate(m, domain.PersonalFactors{Age: 50, Sex: domain.SexMale}, liveFlux(100))
	require.NoError(t, err)
	at51, err := Estimate(m, domain.PersonalFactors{Age: 51, Sex: domain.SexMale}, liveFlux(100))
	require.NoError(t, err)

	assert.InDelta(t, at50.BaseRiskPercent, at50.RiskPercent, epsilon)
	assert.InDelta(t, at51.BaseRiskPercent*1.1, at51.RiskPercent, epsilon)
}

func TestEstimate_UnknownMaterialFails(t *testing.T) {
	m := baselineMission()
	m.Shielding = "lead"

	_, err := Estimate(m, baselinePersonal(), liveFlux(100))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestEstimate_UnknownLocationFails(t *testing.T) {
	m := baselineMission()
	m.Location = "moon_base"

	_, err := Estimate(m, baselinePersonal(), liveFlux(100))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSolarFactor_Endpoints(t *testing.T) {
	assert.InDelta(t, 1.2, SolarFactor(0), epsilon)
	assert.InDelta(t, 1.0, SolarFactor(50), epsilon)
	assert.InDelta(t, 0.8, SolarFactor(100), epsilon)
}

func TestSolarFactor_StrictlyDecreasing(t *testing.T) {
	prev := SolarFactor(0)
	for i := 1; i <= 100; i++ {
		cur := SolarFactor(i)
		assert.Less(t, cur, prev, "solar factor must fall as activity rises (index %d)", i)
		prev = cur
	}
}

func TestAttenuationFactor_NoMaterialIsUnity(t *testing.T) {
	assert.Equal(t, 1.0, AttenuationFactor(domain.ShieldingNone, 0))
	// Thickness is irrelevant without a material; Normalize zeroes it upstream.
	assert.Equal(t, 1.0, AttenuationFactor(domain.ShieldingNone, 15))
}

func TestAttenuationFactor_ExponentialDecay(t *testing.T) {
	f5 := AttenuationFactor(domain.ShieldingAluminum, 5)
	f10 := AttenuationFactor(domain.ShieldingAluminum, 10)
	assert.InDelta(t, f5*f5, f10, 1e-12, "exp(-0.1*10) == exp(-0.1*5)^2")
	assert.Less(t, f10, f5)
}

func TestMaterialFactors(t *testing.T) {
	for material, want := range map[domain.ShieldingMaterial]float64{
		domain.ShieldingNone:         1.0,
		domain.ShieldingAluminum:     0.7,
		domain.ShieldingPolyethylene: 0.5,
	} {
		got, err := MaterialFactor(material)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRiskBandFor(t *testing.T) {
	assert.Equal(t, domain.RiskSafe, RiskBandFor(0))
	assert.Equal(t, domain.RiskSafe, RiskBandFor(3.0))
	assert.Equal(t, domain.RiskElevated, RiskBandFor(3.01))
}

func TestEstimate_FallbackReadingProceedsNormally(t *testing.T) {
	result, err := Estimate(baselineMission(), baselinePersonal(), domain.FallbackFluxReading())
	require.NoError(t, err)
	assert.InDelta(t, 0.9, result.TotalDoseMSv, epsilon)
}
