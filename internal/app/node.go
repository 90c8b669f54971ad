package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/ngtk/vim-flavor/internal/adapters/lockfile"           //nolint:depguard // Wired in app layer
	"github.com/ngtk/vim-flavor/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/ngtk/vim-flavor/internal/adapters/settings"           //nolint:depguard // Wired in app layer
	"github.com/ngtk/vim-flavor/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"github.com/ngtk/vim-flavor/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			lockfile.NodeID,
			resolver.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.FlavorfileLoader](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockStore](ctx)
			if err != nil {
				return nil, err
			}

			res, err := graft.Dep[*resolver.Resolver](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, store, res, log, telemetry), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
			settings.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	s, err := graft.Dep[*settings.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: telemetry,
		Settings:  s,
	}, nil
}
