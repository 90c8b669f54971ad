package vcs

import (
	"context"

	"github.com/ngtk/vim-flavor/internal/core/ports"
)

var _ ports.VCS = (*Git)(nil)

// Git implements ports.VCS with the git command line client.
type Git struct {
	runner runner
}

// NewGit creates a Git client using the git binary on PATH.
func NewGit() *Git {
	return &Git{runner: runner{binary: "git"}}
}

// Clone copies the repository at uri into dir.
func (g *Git) Clone(ctx context.Context, uri, dir string) error {
	_, err := g.runner.run(ctx, "", "clone", "--quiet", "--", uri, dir)
	return err
}

// Update fetches commits and tags into the cache at dir.
func (g *Git) Update(ctx context.Context, dir string) error {
	_, err := g.runner.run(ctx, dir, "fetch", "--quiet", "--tags", "--force", "origin")
	return err
}

// Tags lists the tags of the cache at dir.
func (g *Git) Tags(ctx context.Context, dir string) ([]string, error) {
	out, err := g.runner.run(ctx, dir, "tag", "--list")
	if err != nil {
		return nil, err
	}
	return lines(out), nil
}
