package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/adapters/settings"            //nolint:depguard // Wired in engine wiring
	"github.com/ngtk/vim-flavor/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/ngtk/vim-flavor/internal/adapters/vcs"                //nolint:depguard // Wired in engine wiring
	"github.com/ngtk/vim-flavor/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			vcs.FetcherNodeID,
			vcs.CatalogNodeID,
			progrock.NodeID,
			settings.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			fetcher, err := graft.Dep[ports.RepositoryFetcher](ctx)
			if err != nil {
				return nil, err
			}

			catalog, err := graft.Dep[ports.VersionCatalog](ctx)
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

			return New(fetcher, catalog, telemetry, s.Jobs), nil
		},
	})
}
