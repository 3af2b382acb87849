package app

import (
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/alexanderramin/cosmodose/internal/dose"
)

// EstimateRequest carries one set of inputs for the estimator. Flux may be
// pre-resolved (e.g. by the explore TUI reusing a previous reading); when nil
// the service fetches a live reading and substitutes the fallback on failure.
type EstimateRequest struct {
	Mission  domain.MissionParameters
	Personal domain.PersonalFactors
	Flux     *domain.FluxReading

	// SweepSteps controls the resolution of the dose-vs-duration chart
	// series. Zero uses a default; negative disables the sweep.
	SweepSteps int
}

// NewEstimateRequest returns a request seeded with the default inputs the
// interactive surfaces start from.
func NewEstimateRequest() EstimateRequest {
	return EstimateRequest{
		Mission: domain.MissionParameters{
			DurationDays:    180,
			Shielding:       domain.ShieldingNone,
			ThicknessCM:     0,
			Location:        domain.LocationSeaLevel,
			SolarCycleIndex: 50,
		},
		Personal: domain.PersonalFactors{
			Age: 30,
			Sex: domain.SexMale,
		},
		SweepSteps: 12,
	}
}

// EstimateResponse is the full display payload for one estimate.
type EstimateResponse struct {
	EstimateID string
	Result     dose.DoseResult
	Flux       domain.FluxReading
	RiskBand   domain.RiskBand
	Sweep      []dose.SweepPoint
	Warnings   []string
}

type EstimateErrorCode string

const (
	EstimateErrInvalidParameters    EstimateErrorCode = "INVALID_PARAMETERS"
	EstimateErrInvalidConfiguration EstimateErrorCode = "INVALID_CONFIGURATION"
)

type EstimateError struct {
	Code    EstimateErrorCode
	Message string
}

func (e *EstimateError) Error() string {
	return string(e.Code) + ": " + e.Message
}
