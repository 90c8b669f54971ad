package app

import (
	"github.com/ngtk/vim-flavor/internal/adapters/settings" //nolint:depguard // Wired in app layer
	"github.com/ngtk/vim-flavor/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
	Settings  *settings.Settings
}

// Options returns run options pointing at the configured files.
func (c *Components) Options() Options {
	return Options{
		FlavorfilePath: c.Settings.Flavorfile,
		LockfilePath:   c.Settings.Lockfile,
	}
}
