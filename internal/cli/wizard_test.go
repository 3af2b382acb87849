package cli

import (
	"testing"

	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateIntInRange(t *testing.T) {
	v := validateIntInRange(1, 20)

	assert.NoError(t, v("1"))
	assert.NoError(t, v("20"))
	assert.Error(t, v("0"))
	assert.Error(t, v("21"))
	assert.Error(t, v(""))
	assert.Error(t, v("abc"))
}

func TestParseIntOr(t *testing.T) {
	assert.Equal(t, 42, parseIntOr("42", 7))
	assert.Equal(t, 7, parseIntOr("", 7))
	assert.Equal(t, 7, parseIntOr("x", 7))
}

func TestParseShieldingMaterial(t *testing.T) {
	m, err := parseShieldingMaterial(" Aluminum ")
	require.NoError(t, err)
	assert.Equal(t, domain.ShieldingAluminum, m)

	_, err = parseShieldingMaterial("lead")
	assert.Error(t, err)
}

func TestParseLocation(t *testing.T) {
	l, err := parseLocation("iss-orbit")
	require.NoError(t, err)
	assert.Equal(t, domain.LocationISSOrbit, l)

	l, err = parseLocation("sea_level")
	require.NoError(t, err)
	assert.Equal(t, domain.LocationSeaLevel, l)

	_, err = parseLocation("moon")
	assert.Error(t, err)
}

func TestParseSex(t *testing.T) {
	s, err := parseSex("FEMALE")
	require.NoError(t, err)
	assert.Equal(t, domain.SexFemale, s)

	_, err = parseSex("other")
	assert.Error(t, err)
}

func TestWizardFormsBuild(t *testing.T) {
	duration, material, thickness, location, solar := "180", string(domain.ShieldingNone), "5", string(domain.LocationSeaLevel), "50"
	flare := false
	require.NotNil(t, wizardMissionForm(&duration, &material, &thickness, &location, &solar, &flare))

	age, sex := "30", string(domain.SexMale)
	sensitive := false
	require.NotNil(t, wizardPersonalForm(&age, &sex, &sensitive))
}
