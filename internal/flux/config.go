package flux

import (
	"os"
	"strconv"
)

// DefaultEndpoint is the NOAA GOES differential proton flux feed read by the
// live flux client.
const DefaultEndpoint = "https://services.swpc.noaa.gov/json/goes/primary/differential-proton-flux-1-day.json"

// Config holds all configuration for the live flux subsystem.
type Config struct {
	Endpoint  string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:  DefaultEndpoint,
		TimeoutMs: 5000,
		LogCalls:  false,
	}
}

// LoadConfig reads flux configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("COSMODOSE_FLUX_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("COSMODOSE_FLUX_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("COSMODOSE_FLUX_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
