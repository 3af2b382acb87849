package cli

import (
	"math/rand"

	"github.com/alexanderramin/cosmodose/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Estimates service.EstimateService
	Flux      service.FluxService

	// IsInteractive reports whether stdin is a terminal. The bare root
	// command launches the explore TUI only when it is.
	IsInteractive func() bool

	// Rand drives the fun-fact pick. Never used in the dose path.
	Rand *rand.Rand
}
