package contract

import "github.com/alexanderramin/cosmodose/internal/app"

type EstimateRequest = app.EstimateRequest

func NewEstimateRequest() EstimateRequest {
	return app.NewEstimateRequest()
}

type EstimateResponse = app.EstimateResponse

type EstimateErrorCode = app.EstimateErrorCode

const (
	EstimateErrInvalidParameters    EstimateErrorCode = app.EstimateErrInvalidParameters
	EstimateErrInvalidConfiguration EstimateErrorCode = app.EstimateErrInvalidConfiguration
)

type EstimateError = app.EstimateError
