package ports

import (
	"context"

	"github.com/ngtk/vim-flavor/internal/core/domain"
)

// VersionCatalog lists the versions available for a repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type VersionCatalog interface {
	// ListAvailable returns the tags of the repository cache that parse as versions, unsorted.
	// It fails with domain.ErrRepositoryUnavailable when the tags cannot be listed.
	ListAvailable(ctx context.Context, repo string) ([]domain.Version, error)
}
