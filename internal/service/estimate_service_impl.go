package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/cosmodose/internal/app"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/alexanderramin/cosmodose/internal/dose"
	"github.com/alexanderramin/cosmodose/internal/flux"
	"github.com/google/uuid"
)

const defaultSweepSteps = 12

type estimateService struct {
	flux flux.Client
}

// NewEstimateService creates an EstimateService backed by the given flux
// client. The client is only consulted when a request carries no reading.
func NewEstimateService(fluxClient flux.Client) EstimateService {
	return &estimateService{flux: fluxClient}
}

func (s *estimateService) Estimate(ctx context.Context, req app.EstimateRequest) (*app.EstimateResponse, error) {
	req.Mission.Normalize()

	if err := req.Mission.Validate(); err != nil {
		return nil, &app.EstimateError{Code: app.EstimateErrInvalidParameters, Message: err.Error()}
	}
	if err := req.Personal.Validate(); err != nil {
		return nil, &app.EstimateError{Code: app.EstimateErrInvalidParameters, Message: err.Error()}
	}

	reading, warnings := s.resolveFlux(ctx, req.Flux)

	result, err := dose.Estimate(req.Mission, req.Personal, reading)
	if err != nil {
		// Only reachable with enum values outside the closed sets, which
		// Validate has already rejected.
		return nil, &app.EstimateError{Code: app.EstimateErrInvalidConfiguration, Message: err.Error()}
	}

	resp := &app.EstimateResponse{
		EstimateID: uuid.NewString(),
		Result:     result,
		Flux:       reading,
		RiskBand:   dose.RiskBandFor(result.RiskPercent),
		Warnings:   warnings,
	}

	steps := req.SweepSteps
	if steps == 0 {
		steps = defaultSweepSteps
	}
	if steps > 0 {
		sweep, err := dose.DurationSweep(req.Mission, req.Personal, reading, steps)
		if err != nil {
			return nil, &app.EstimateError{Code: app.EstimateErrInvalidConfiguration, Message: err.Error()}
		}
		resp.Sweep = sweep
	}

	return resp, nil
}

// resolveFlux returns the supplied reading unchanged, or fetches a live one.
// Any fetch failure degrades to the fallback reading with a warning; the
// failure is never surfaced as an error.
func (s *estimateService) resolveFlux(ctx context.Context, supplied *domain.FluxReading) (domain.FluxReading, []string) {
	if supplied != nil {
		return *supplied, nil
	}

	reading, err := s.flux.Latest(ctx)
	if err != nil {
		fallback := domain.FallbackFluxReading()
		warning := fmt.Sprintf("Unable to fetch live data. Using fallback flux: %g p/cm²/s/sr", fallback.ProtonFlux)
		return fallback, []string{warning}
	}
	return reading, nil
}

type fluxService struct {
	inner *estimateService
}

// NewFluxService exposes the same resolve-with-fallback behavior on its own,
// for the flux subcommand and the explore view's refetch action.
func NewFluxService(fluxClient flux.Client) FluxService {
	return &fluxService{inner: &estimateService{flux: fluxClient}}
}

func (s *fluxService) CurrentReading(ctx context.Context) (domain.FluxReading, []string) {
	return s.inner.resolveFlux(ctx, nil)
}
