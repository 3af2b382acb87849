package flux

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/cosmodose/internal/domain"
)

// Client provides access to a proton flux data source.
type Client interface {
	// Latest returns the most recent proton flux reading. A single attempt
	// is made per call: no retries, callers substitute the fallback reading
	// on any error.
	Latest(ctx context.Context) (domain.FluxReading, error)
}

// goesClient implements Client against the NOAA GOES JSON feed.
type goesClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewGOESClient creates a Client that reads the NOAA GOES proton flux feed.
func NewGOESClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &goesClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// fluxSample is one element of the GOES feed array. The flux field arrives as
// a JSON number in practice; json.Number also tolerates numeric strings.
type fluxSample struct {
	TimeTag string      `json:"time_tag"`
	Flux    json.Number `json:"flux"`
	Energy  string      `json:"energy"`
}

func (c *goesClient) Latest(ctx context.Context) (domain.FluxReading, error) {
	start := time.Now()
	requestID := newRequestID()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	reading, err := c.doRequest(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		if ctx.Err() != nil {
			err = ErrTimeout
		} else if isConnectionError(err) {
			err = fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
		}
		c.observer.OnFetchComplete(FetchEvent{
			RequestID: requestID,
			Endpoint:  c.cfg.Endpoint,
			LatencyMs: latency,
			Success:   false,
			ErrorCode: errorCode(err),
		})
		return domain.FluxReading{}, err
	}

	c.observer.OnFetchComplete(FetchEvent{
		RequestID: requestID,
		Endpoint:  c.cfg.Endpoint,
		LatencyMs: latency,
		Success:   true,
		Flux:      reading.ProtonFlux,
	})
	return reading, nil
}

func (c *goesClient) doRequest(ctx context.Context) (domain.FluxReading, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint, nil)
	if err != nil {
		return domain.FluxReading{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.FluxReading{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.FluxReading{}, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return domain.FluxReading{}, fmt.Errorf("%w: feed returned status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	var samples []fluxSample
	if err := json.Unmarshal(body, &samples); err != nil {
		return domain.FluxReading{}, fmt.Errorf("%w: %v", ErrMalformedFeed, err)
	}
	if len(samples) == 0 {
		return domain.FluxReading{}, fmt.Errorf("%w: empty feed", ErrMalformedFeed)
	}

	// The feed is ordered oldest-first; the last element is the current reading.
	last := samples[len(samples)-1]
	value, err := last.Flux.Float64()
	if err != nil {
		return domain.FluxReading{}, fmt.Errorf("%w: flux field %q", ErrMalformedFeed, last.Flux)
	}

	return domain.FluxReading{ProtonFlux: value, Source: domain.FluxLive}, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrSourceUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrMalformedFeed):
		return "MALFORMED"
	default:
		return "UNKNOWN"
	}
}
