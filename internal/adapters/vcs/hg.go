package vcs

import (
	"context"
	"strings"

	"github.com/ngtk/vim-flavor/internal/core/ports"
)

var _ ports.VCS = (*Mercurial)(nil)

// Mercurial implements ports.VCS with the hg command line client.
type Mercurial struct {
	runner runner
}

// NewMercurial creates a Mercurial client using the hg binary on PATH.
func NewMercurial() *Mercurial {
	return &Mercurial{runner: runner{binary: "hg"}}
}

// Clone copies the repository at uri into dir.
func (m *Mercurial) Clone(ctx context.Context, uri, dir string) error {
	_, err := m.runner.run(ctx, "", "clone", "--quiet", "--noupdate", uri, dir)
	return err
}

// Update pulls new changesets into the cache at dir.
func (m *Mercurial) Update(ctx context.Context, dir string) error {
	_, err := m.runner.run(ctx, dir, "pull", "--quiet")
	return err
}

// Tags lists the tags of the cache at dir, without the moving "tip" tag.
func (m *Mercurial) Tags(ctx context.Context, dir string) ([]string, error) {
	out, err := m.runner.run(ctx, dir, "tags", "--quiet")
	if err != nil {
		return nil, err
	}
	var tags []string
	for _, tag := range lines(out) {
		if !strings.EqualFold(tag, "tip") {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
