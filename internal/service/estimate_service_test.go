package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/cosmodose/internal/app"
	"github.com/alexanderramin/cosmodose/internal/contract"
	"github.com/alexanderramin/cosmodose/internal/domain"
	"github.com/alexanderramin/cosmodose/internal/flux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFluxClient returns a fixed reading or error.
type fakeFluxClient struct {
	reading domain.FluxReading
	err     error
	calls   int
}

func (f *fakeFluxClient) Latest(ctx context.Context) (domain.FluxReading, error) {
	f.calls++
	if f.err != nil {
		return domain.FluxReading{}, f.err
	}
	return f.reading, nil
}

func TestEstimateService_UsesLiveReading(t *testing.T) {
	client := &fakeFluxClient{reading: domain.FluxReading{ProtonFlux: 100, Source: domain.FluxLive}}
	svc := NewEstimateService(client)

	resp, err := svc.Estimate(context.Background(), contract.NewEstimateRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, domain.FluxLive, resp.Flux.Source)
	assert.InDelta(t, 0.9, resp.Result.TotalDoseMSv, 1e-12)
	assert.Empty(t, resp.Warnings)
	assert.NotEmpty(t, resp.EstimateID)
	assert.Equal(t, domain.RiskSafe, resp.RiskBand)
}

func TestEstimateService_FallsBackOnFetchFailure(t *testing.T) {
	client := &fakeFluxClient{err: flux.ErrSourceUnavailable}
	svc := NewEstimateService(client)

	resp, err := svc.Estimate(context.Background(), contract.NewEstimateRequest())
	require.NoError(t, err, "fetch failure must never surface as an error")

	assert.Equal(t, float64(100), resp.Flux.ProtonFlux, "fallback flux must be exactly 100")
	assert.Equal(t, domain.FluxFallback, resp.Flux.Source)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "fallback flux")
	assert.InDelta(t, 0.9, resp.Result.TotalDoseMSv, 1e-12)
}

func TestEstimateService_SuppliedReadingSkipsFetch(t *testing.T) {
	client := &fakeFluxClient{err: errors.New("should not be called")}
	svc := NewEstimateService(client)

	req := contract.NewEstimateRequest()
	req.Flux = &domain.FluxReading{ProtonFlux: 500, Source: domain.FluxLive}

	resp, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, client.calls)
	assert.Equal(t, 500.0, resp.Flux.ProtonFlux)
}

func TestEstimateService_NormalizesThickness(t *testing.T) {
	client := &fakeFluxClient{reading: domain.FluxReading{ProtonFlux: 100, Source: domain.FluxLive}}
	svc := NewEstimateService(client)

	req := contract.NewEstimateRequest()
	req.Mission.Shielding = domain.ShieldingNone
	req.Mission.ThicknessCM = 10 // stale widget value; must be forced to 0

	resp, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1.0, resp.Result.Factors.AttenuationFactor)
}

func TestEstimateService_RejectsInvalidParameters(t *testing.T) {
	svc := NewEstimateService(&fakeFluxClient{})

	req := contract.NewEstimateRequest()
	req.Mission.DurationDays = 0

	_, err := svc.Estimate(context.Background(), req)
	require.Error(t, err)

	var estErr *app.EstimateError
	require.ErrorAs(t, err, &estErr)
	assert.Equal(t, app.EstimateErrInvalidParameters, estErr.Code)
}

func TestEstimateService_RejectsUnknownEnum(t *testing.T) {
	svc := NewEstimateService(&fakeFluxClient{})

	req := contract.NewEstimateRequest()
	req.Personal.Sex = "unknown"

	_, err := svc.Estimate(context.Background(), req)
	var estErr *app.EstimateError
	require.ErrorAs(t, err, &estErr)
	assert.Equal(t, app.EstimateErrInvalidParameters, estErr.Code)
}

func TestEstimateService_BuildsSweep(t *testing.T) {
	client := &fakeFluxClient{reading: domain.FluxReading{ProtonFlux: 100, Source: domain.FluxLive}}
	svc := NewEstimateService(client)

	resp, err := svc.Estimate(context.Background(), contract.NewEstimateRequest())
	require.NoError(t, err)
	require.Len(t, resp.Sweep, 12)
	assert.InDelta(t, resp.Result.TotalDoseMSv, resp.Sweep[len(resp.Sweep)-1].TotalDoseMSv, 1e-9)
}

func TestEstimateService_NegativeSweepStepsDisablesSweep(t *testing.T) {
	client := &fakeFluxClient{reading: domain.FluxReading{ProtonFlux: 100, Source: domain.FluxLive}}
	svc := NewEstimateService(client)

	req := contract.NewEstimateRequest()
	req.SweepSteps = -1

	resp, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, resp.Sweep)
}

func TestEstimateService_ElevatedRiskBand(t *testing.T) {
	client := &fakeFluxClient{reading: domain.FluxReading{ProtonFlux: 100, Source: domain.FluxLive}}
	svc := NewEstimateService(client)

	req := contract.NewEstimateRequest()
	req.Mission.DurationDays = 1000
	req.Mission.Location = domain.LocationISSOrbit

	resp, err := svc.Estimate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.RiskElevated, resp.RiskBand)
}

func TestFluxService_CurrentReading_Fallback(t *testing.T) {
	svc := NewFluxService(&fakeFluxClient{err: flux.ErrTimeout})

	reading, warnings := svc.CurrentReading(context.Background())
	assert.Equal(t, domain.FallbackFluxReading(), reading)
	require.Len(t, warnings, 1)
}

func TestFluxService_CurrentReading_Live(t *testing.T) {
	svc := NewFluxService(&fakeFluxClient{reading: domain.FluxReading{ProtonFlux: 321, Source: domain.FluxLive}})

	reading, warnings := svc.CurrentReading(context.Background())
	assert.Equal(t, 321.0, reading.ProtonFlux)
	assert.Empty(t, warnings)
}
