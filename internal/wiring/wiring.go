// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/ngtk/vim-flavor/internal/adapters/config"
	_ "github.com/ngtk/vim-flavor/internal/adapters/fs"
	_ "github.com/ngtk/vim-flavor/internal/adapters/lockfile"
	_ "github.com/ngtk/vim-flavor/internal/adapters/logger"
	_ "github.com/ngtk/vim-flavor/internal/adapters/settings"
	_ "github.com/ngtk/vim-flavor/internal/adapters/telemetry/progrock"
	_ "github.com/ngtk/vim-flavor/internal/adapters/vcs"
	// Register app and engine nodes.
	_ "github.com/ngtk/vim-flavor/internal/app"
	_ "github.com/ngtk/vim-flavor/internal/engine/resolver"
)
