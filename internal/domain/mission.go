package domain

import "fmt"

// Mission parameter bounds. Inputs outside these ranges are rejected by
// Validate, matching the ranges the input widgets offer.
const (
	MinDurationDays = 1
	MaxDurationDays = 1000
	MinThicknessCM  = 0
	MaxThicknessCM  = 20
	MinSolarCycle   = 0
	MaxSolarCycle   = 100
	MinAge          = 18
	MaxAge          = 80
)

// MaxFlareDays caps how long a simulated solar flare lasts.
const MaxFlareDays = 2

// FallbackProtonFlux is substituted when the live feed cannot be read.
const FallbackProtonFlux = 100

// MissionParameters describes one hypothetical mission. Values are created
// fresh per estimate and never stored.
type MissionParameters struct {
	DurationDays    int
	Shielding       ShieldingMaterial
	ThicknessCM     int
	Location        Location
	SolarCycleIndex int
	FlareSimulated  bool
}

// Normalize forces ThicknessCM to 0 when no shielding material is selected.
func (m *MissionParameters) Normalize() {
	if m.Shielding == ShieldingNone {
		m.ThicknessCM = 0
	}
}

// Validate range-checks every field against the canonical domains.
func (m MissionParameters) Validate() error {
	if m.DurationDays < MinDurationDays || m.DurationDays > MaxDurationDays {
		return fmt.Errorf("duration must be %d-%d days, got %d", MinDurationDays, MaxDurationDays, m.DurationDays)
	}
	if !ValidShieldingMaterials[string(m.Shielding)] {
		return fmt.Errorf("unknown shielding material %q", m.Shielding)
	}
	if m.ThicknessCM < MinThicknessCM || m.ThicknessCM > MaxThicknessCM {
		return fmt.Errorf("thickness must be %d-%d cm, got %d", MinThicknessCM, MaxThicknessCM, m.ThicknessCM)
	}
	if m.Shielding == ShieldingNone && m.ThicknessCM != 0 {
		return fmt.Errorf("thickness must be 0 without a shielding material")
	}
	if !ValidLocations[string(m.Location)] {
		return fmt.Errorf("unknown mission environment %q", m.Location)
	}
	if m.SolarCycleIndex < MinSolarCycle || m.SolarCycleIndex > MaxSolarCycle {
		return fmt.Errorf("solar cycle index must be %d-%d, got %d", MinSolarCycle, MaxSolarCycle, m.SolarCycleIndex)
	}
	return nil
}

// FlareSplit returns how many mission days run under the simulated flare and
// how many run at normal flux. normalDays is always >= 0.
func (m MissionParameters) FlareSplit() (flareDays, normalDays int) {
	if m.FlareSimulated {
		flareDays = MaxFlareDays
		if m.DurationDays < flareDays {
			flareDays = m.DurationDays
		}
	}
	return flareDays, m.DurationDays - flareDays
}

// PersonalFactors holds the personal risk inputs.
type PersonalFactors struct {
	Age                int
	Sex                Sex
	GeneticSensitivity bool
}

// Validate range-checks every field against the canonical domains.
func (p PersonalFactors) Validate() error {
	if p.Age < MinAge || p.Age > MaxAge {
		return fmt.Errorf("age must be %d-%d, got %d", MinAge, MaxAge, p.Age)
	}
	if !ValidSexes[string(p.Sex)] {
		return fmt.Errorf("unknown sex %q", p.Sex)
	}
	return nil
}

// FluxReading is a resolved proton flux measurement in protons/cm²/s/sr.
type FluxReading struct {
	ProtonFlux float64
	Source     FluxSource
}

// FallbackFluxReading is the reading substituted on any live-fetch failure.
func FallbackFluxReading() FluxReading {
	return FluxReading{ProtonFlux: FallbackProtonFlux, Source: FluxFallback}
}
