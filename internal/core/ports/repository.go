package ports

import "context"

// RepositoryFetcher keeps the local cache of a repository current.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type RepositoryFetcher interface {
	// Fetch clones the repository when no cache exists and updates it otherwise.
	Fetch(ctx context.Context, repo string) error
}

// RepositoryLocator maps a repository identity to where it lives.
type RepositoryLocator interface {
	// URI returns the clone URI for repo.
	URI(repo string) string

	// CachePath returns the directory holding the local cache of repo.
	CachePath(repo string) string
}
