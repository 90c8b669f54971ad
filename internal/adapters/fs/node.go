package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/adapters/settings"
	"github.com/ngtk/vim-flavor/internal/core/ports"
)

// LocatorNodeID is the graft node providing ports.RepositoryLocator.
const LocatorNodeID graft.ID = "adapter.fs.locator"

func init() {
	graft.Register(graft.Node[ports.RepositoryLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.RepositoryLocator, error) {
			s, err := graft.Dep[*settings.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(s.ReposDir()), nil
		},
	})
}
