package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alexanderramin/cosmodose/internal/cli"
	"github.com/alexanderramin/cosmodose/internal/flux"
	"github.com/alexanderramin/cosmodose/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := flux.LoadConfig()

	var observer flux.Observer = flux.NoopObserver{}
	if cfg.LogCalls {
		observer = flux.NewLogObserver(os.Stderr)
	}
	fluxClient := flux.NewGOESClient(cfg, observer)

	app := &cli.App{
		Estimates: service.NewEstimateService(fluxClient),
		Flux:      service.NewFluxService(fluxClient),
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Detect an interactive terminal for the bare-invocation explorer.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
