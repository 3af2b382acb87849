package dose

import (
	"testing"

	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSunspotHistory_CoversExpectedYears(t *testing.T) {
	history := SunspotHistory()
	require.Len(t, history, 12)
	assert.Equal(t, 2012, history[0].Year)
	assert.Equal(t, 95, history[0].Sunspots)
	assert.Equal(t, 2023, history[11].Year)
	assert.Equal(t, 120, history[11].Sunspots)
}

func TestSunspotHistory_ReturnsCopy(t *testing.T) {
	a := SunspotHistory()
	a[0].Sunspots = -1
	b := SunspotHistory()
	assert.Equal(t, 95, b[0].Sunspots)
}

func TestDurationSweep_MonotonicWithoutFlare(t *testing.T) {
	m := baselineMission()
	points, err := DurationSweep(m, baselinePersonal(), liveFlux(100), 12)
	require.NoError(t, err)
	require.Len(t, points, 12)

	assert.Equal(t, m.DurationDays, points[len(points)-1].DurationDays)
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t, points[i].TotalDoseMSv, points[i-1].TotalDoseMSv)
		assert.GreaterOrEqual(t, points[i].DurationDays, points[i-1].DurationDays)
	}
}

func TestDurationSweep_LastPointMatchesEstimate(t *testing.T) {
	m := baselineMission()
	m.Location = domain.LocationISSOrbit

	points, err := DurationSweep(m, baselinePersonal(), liveFlux(100), 10)
	require.NoError(t, err)

	full, err := Estimate(m, baselinePersonal(), liveFlux(100))
	require.NoError(t, err)
	assert.InDelta(t, full.TotalDoseMSv, points[len(points)-1].TotalDoseMSv, 1e-9)
}

func TestDurationSweep_ShortMission(t *testing.T) {
	m := baselineMission()
	m.DurationDays = 3

	points, err := DurationSweep(m, baselinePersonal(), liveFlux(100), 12)
	require.NoError(t, err)
	assert.Len(t, points, 3, "steps capped at mission length")
}

func TestDurationSweep_PropagatesConfigurationError(t *testing.T) {
	m := baselineMission()
	m.Shielding = "lead"

	_, err := DurationSweep(m, baselinePersonal(), liveFlux(100), 5)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}
