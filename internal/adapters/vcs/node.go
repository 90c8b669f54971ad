package vcs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/adapters/fs"
	"github.com/ngtk/vim-flavor/internal/adapters/logger"
	"github.com/ngtk/vim-flavor/internal/core/ports"
)

const (
	// RepositoriesNodeID is the graft node providing *Repositories.
	RepositoriesNodeID graft.ID = "adapter.vcs.repositories"
	// CatalogNodeID is the graft node providing ports.VersionCatalog.
	CatalogNodeID graft.ID = "adapter.vcs.catalog"
	// FetcherNodeID is the graft node providing ports.RepositoryFetcher.
	FetcherNodeID graft.ID = "adapter.vcs.fetcher"
)

func init() {
	graft.Register(graft.Node[*Repositories]{
		ID:        RepositoriesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LocatorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Repositories, error) {
			locator, err := graft.Dep[ports.RepositoryLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRepositories(locator, NewGit(), NewMercurial(), log), nil
		},
	})

	graft.Register(graft.Node[ports.VersionCatalog]{
		ID:        CatalogNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RepositoriesNodeID},
		Run: func(ctx context.Context) (ports.VersionCatalog, error) {
			return graft.Dep[*Repositories](ctx)
		},
	})

	graft.Register(graft.Node[ports.RepositoryFetcher]{
		ID:        FetcherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RepositoriesNodeID},
		Run: func(ctx context.Context) (ports.RepositoryFetcher, error) {
			return graft.Dep[*Repositories](ctx)
		},
	})
}
