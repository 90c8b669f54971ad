package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/adapters/logger"
	"github.com/ngtk/vim-flavor/internal/core/ports"
)

// NodeID is the graft node providing ports.FlavorfileLoader.
const NodeID graft.ID = "adapter.flavorfile_loader"

func init() {
	graft.Register(graft.Node[ports.FlavorfileLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FlavorfileLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
