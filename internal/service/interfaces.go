package service

import (
	"context"

	"github.com/alexanderramin/cosmodose/internal/app"
	"github.com/alexanderramin/cosmodose/internal/domain"
)

// EstimateService runs the dose/risk pipeline for one set of inputs.
// Implementations are stateless; every call is independent.
type EstimateService interface {
	Estimate(ctx context.Context, req app.EstimateRequest) (*app.EstimateResponse, error)
}

// FluxService resolves the current proton flux reading, substituting the
// fallback reading on any fetch failure.
type FluxService interface {
	CurrentReading(ctx context.Context) (domain.FluxReading, []string)
}
