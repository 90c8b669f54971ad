// Package ports defines the core interfaces for the application.
package ports

import "context"

// VCS drives one version control client against a local repository cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VCS interface {
	// Clone copies the repository at uri into dir.
	Clone(ctx context.Context, uri, dir string) error

	// Update fetches new commits and tags into the existing cache at dir.
	Update(ctx context.Context, dir string) error

	// Tags lists every tag name of the cache at dir, unfiltered.
	Tags(ctx context.Context, dir string) ([]string, error)
}
