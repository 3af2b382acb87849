package dose

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/cosmodose/internal/domain"
)

// ErrInvalidConfiguration indicates an enum value outside the closed factor
// tables. The input boundary validates against the same sets, so this is a
// defensive check only.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Empirical model constants. Asserted without cited derivation in the source
// material; reproduced exactly, not tuned.
const (
	// BaseDosePerFluxUnit converts proton flux (protons/cm²/s/sr) into a
	// daily dose in mSv.
	BaseDosePerFluxUnit = 0.00005

	// AttenuationCoefficient drives the exponential decay of dose with
	// shielding thickness: exp(-coefficient * cm).
	AttenuationCoefficient = 0.1

	// FlareMultiplier scales the daily dose on simulated flare days.
	FlareMultiplier = 10

	// RiskPercentPerSievert linearizes cancer risk: 5% per 1000 mSv.
	RiskPercentPerSievert = 5

	// BackgroundMSvPerYear is the average Earth background dose used for the
	// equivalence display.
	BackgroundMSvPerYear = 2.4

	// Solar cycle factor interpolation endpoints over index [0,100].
	SolarFactorAtMinimum = 1.2
	SolarFactorAtMaximum = 0.8

	// ElevatedRiskThresholdPct separates the "safe" band from the warning band.
	ElevatedRiskThresholdPct = 3.0
)

// Personal risk multipliers, applied sequentially and independently.
const (
	AgeMultiplier         = 1.1 // age > 50
	FemaleMultiplier      = 1.2
	SensitivityMultiplier = 1.5
)

// AgeMultiplierThreshold is the age above which AgeMultiplier applies.
const AgeMultiplierThreshold = 50

var materialFactors = map[domain.ShieldingMaterial]float64{
	domain.ShieldingNone:         1.0,
	domain.ShieldingAluminum:     0.7,
	domain.ShieldingPolyethylene: 0.5,
}

var locationFactors = map[domain.Location]float64{
	domain.LocationSeaLevel: 1,
	domain.LocationAirplane: 30,
	domain.LocationISSOrbit: 250,
}

// MaterialFactor returns the shielding-class attenuation factor.
func MaterialFactor(m domain.ShieldingMaterial) (float64, error) {
	f, ok := materialFactors[m]
	if !ok {
		return 0, fmt.Errorf("%w: shielding material %q", ErrInvalidConfiguration, m)
	}
	return f, nil
}

// LocationFactor returns the environment dose multiplier.
func LocationFactor(l domain.Location) (float64, error) {
	f, ok := locationFactors[l]
	if !ok {
		return 0, fmt.Errorf("%w: mission environment %q", ErrInvalidConfiguration, l)
	}
	return f, nil
}

// AttenuationFactor returns exp(-0.1 * thickness) when a material is
// selected, 1.0 otherwise.
func AttenuationFactor(m domain.ShieldingMaterial, thicknessCM int) float64 {
	if m == domain.ShieldingNone {
		return 1.0
	}
	return math.Exp(-AttenuationCoefficient * float64(thicknessCM))
}

// SolarFactor linearly interpolates the solar cycle index over [0,100] to
// [1.2, 0.8]. Cosmic ray flux falls as solar activity rises.
func SolarFactor(index int) float64 {
	t := float64(index) / float64(domain.MaxSolarCycle)
	return SolarFactorAtMinimum + t*(SolarFactorAtMaximum-SolarFactorAtMinimum)
}

// FactorBreakdown records each multiplicative contribution to the daily dose
// so the report and TUI can show how the number came about.
type FactorBreakdown struct {
	BaseDosePerDay    float64 // proton flux * BaseDosePerFluxUnit
	MaterialFactor    float64
	AttenuationFactor float64
	LocationFactor    float64
	SolarFactor       float64
}

// DoseResult is the output of one estimate. All fields are derived and never
// negative.
type DoseResult struct {
	DailyDoseMSv    float64
	TotalDoseMSv    float64
	RiskPercent     float64
	BaseRiskPercent float64 // before personal multipliers
	BackgroundYears float64
	FlareDays       int
	NormalDays      int
	Factors         FactorBreakdown
}

// Estimate runs the full dose/risk chain: daily dose as a product of flux and
// the four factors, flare/normal day split, total dose, risk linearization,
// then the sequential personal multipliers. Pure; re-run in full on every
// parameter change.
func Estimate(m domain.MissionParameters, p domain.PersonalFactors, flux domain.FluxReading) (DoseResult, error) {
	materialFactor, err := MaterialFactor(m.Shielding)
	if err != nil {
		return DoseResult{}, err
	}
	locationFactor, err := LocationFactor(m.Location)
	if err != nil {
		return DoseResult{}, err
	}

	factors := FactorBreakdown{
		BaseDosePerDay:    flux.ProtonFlux * BaseDosePerFluxUnit,
		MaterialFactor:    materialFactor,
		AttenuationFactor: AttenuationFactor(m.Shielding, m.ThicknessCM),
		LocationFactor:    locationFactor,
		SolarFactor:       SolarFactor(m.SolarCycleIndex),
	}

	dailyDose := factors.BaseDosePerDay *
		factors.MaterialFactor *
		factors.AttenuationFactor *
		factors.LocationFactor *
		factors.SolarFactor

	flareDays, normalDays := m.FlareSplit()
	totalDose := dailyDose*float64(normalDays) + dailyDose*FlareMultiplier*float64(flareDays)

	baseRisk := (totalDose / 1000) * RiskPercentPerSievert

	risk := baseRisk
	if p.Age > AgeMultiplierThreshold {
		risk *= AgeMultiplier
	}
	if p.Sex == domain.SexFemale {
		risk *= FemaleMultiplier
	}
	if p.GeneticSensitivity {
		risk *= SensitivityMultiplier
	}

	return DoseResult{
		DailyDoseMSv:    dailyDose,
		TotalDoseMSv:    totalDose,
		RiskPercent:     risk,
		BaseRiskPercent: baseRisk,
		BackgroundYears: totalDose / BackgroundMSvPerYear,
		FlareDays:       flareDays,
		NormalDays:      normalDays,
		Factors:         factors,
	}, nil
}

// RiskBandFor classifies a risk percentage for the result banner.
func RiskBandFor(riskPercent float64) domain.RiskBand {
	if riskPercent > ElevatedRiskThresholdPct {
		return domain.RiskElevated
	}
	return domain.RiskSafe
}
