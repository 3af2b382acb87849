package flux

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// FetchEvent records metadata about a single flux fetch attempt.
type FetchEvent struct {
	RequestID string
	Endpoint  string
	LatencyMs int64
	Success   bool
	ErrorCode string
	Flux      float64
}

// Observer receives events about flux fetches for logging and diagnostics.
type Observer interface {
	OnFetchComplete(event FetchEvent)
}

// LogObserver writes fetch events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnFetchComplete(event FetchEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] flux_fetch id=%s endpoint=%s latency_ms=%d status=%s flux=%g\n",
		ts, event.RequestID, event.Endpoint, event.LatencyMs, status, event.Flux)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnFetchComplete(FetchEvent) {}

// newRequestID tags each fetch attempt for log correlation.
func newRequestID() string {
	return uuid.NewString()
}
