package flux

import "errors"

var (
	// ErrSourceUnavailable indicates the flux feed could not be reached.
	ErrSourceUnavailable = errors.New("flux source unavailable")

	// ErrTimeout indicates the fetch exceeded the configured timeout.
	ErrTimeout = errors.New("flux fetch timed out")

	// ErrMalformedFeed indicates the feed responded but its payload could not
	// be converted into a flux reading.
	ErrMalformedFeed = errors.New("malformed flux feed")
)
