// Package main is the entry point for the vim-flavor plugin manager.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/cmd/vim-flavor/commands"
	"github.com/ngtk/vim-flavor/internal/app"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	_ "github.com/ngtk/vim-flavor/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Options())

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Per-flavor failures are already logged.
		if errors.Is(err, domain.ErrResolutionFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
