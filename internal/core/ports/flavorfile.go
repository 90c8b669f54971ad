package ports

import "github.com/ngtk/vim-flavor/internal/core/domain"

// FlavorfileLoader reads the declared flavors.
//
//go:generate go run go.uber.org/mock/mockgen -source=flavorfile.go -destination=mocks/mock_flavorfile.go -package=mocks
type FlavorfileLoader interface {
	// Load parses the flavorfile at path. Every returned flavor is unresolved.
	Load(path string) (domain.FlavorSet, error)
}
