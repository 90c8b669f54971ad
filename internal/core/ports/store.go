package ports

import "github.com/ngtk/vim-flavor/internal/core/domain"

// LockStore persists pinned flavors.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockStore interface {
	// Load reads the lockfile at path.
	// A missing lockfile yields an empty set and no error.
	Load(path string) (domain.FlavorSet, error)

	// Save replaces the lockfile at path with flavors.
	Save(path string, flavors domain.FlavorSet) error
}
