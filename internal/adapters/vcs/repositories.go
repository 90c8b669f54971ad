package vcs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ngtk/vim-flavor/internal/adapters/fs"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.RepositoryFetcher = (*Repositories)(nil)
	_ ports.VersionCatalog    = (*Repositories)(nil)
)

// Repositories maintains repository caches and lists their versions,
// choosing the client from the repository URI.
type Repositories struct {
	locator  ports.RepositoryLocator
	verifier *fs.Verifier
	clients  map[Kind]ports.VCS
	logger   ports.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRepositories creates Repositories using git and hg for the matching kinds.
func NewRepositories(locator ports.RepositoryLocator, git, hg ports.VCS, logger ports.Logger) *Repositories {
	return &Repositories{
		locator:  locator,
		verifier: fs.NewVerifier(),
		clients:  map[Kind]ports.VCS{KindGit: git, KindMercurial: hg},
		logger:   logger,
		locks:    make(map[string]*sync.Mutex),
	}
}

// lockPath serializes work on one cache directory.
func (r *Repositories) lockPath(path string) func() {
	r.mu.Lock()
	l, ok := r.locks[path]
	if !ok {
		l = &sync.Mutex{}
		r.locks[path] = l
	}
	r.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Fetch clones repo into its cache, or updates the cache when it holds a
// finished checkout. A directory left by an interrupted clone is replaced.
func (r *Repositories) Fetch(ctx context.Context, repo string) error {
	uri := r.locator.URI(repo)
	path := r.locator.CachePath(repo)
	kind := KindOf(uri)
	client := r.clients[kind]

	unlock := r.lockPath(path)
	defer unlock()

	cloned, err := r.verifier.HasCheckout(path, kind.Marker())
	if err == nil {
		if cloned {
			r.progress(ctx, "updating "+repo)
			err = client.Update(ctx, path)
		} else {
			if prepErr := r.prepare(path); prepErr != nil {
				return zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheCreateFailed, prepErr), "prepare cache"), "repo", repo)
			}
			r.progress(ctx, "cloning "+uri)
			err = client.Clone(ctx, uri, path)
		}
	}

	if err != nil {
		fetchErr := zerr.Wrap(errors.Join(domain.ErrRepositoryFetchFailed, err), "fetch repository")
		fetchErr = zerr.With(fetchErr, "repo", repo)
		return zerr.With(fetchErr, "uri", uri)
	}
	return nil
}

// prepare clears leftovers at path and creates its parent.
func (r *Repositories) prepare(path string) error {
	exists, err := r.verifier.Exists(path)
	if err != nil {
		return err
	}
	if exists {
		if err := os.RemoveAll(path); err != nil {
			return err
		}
	}
	return os.MkdirAll(filepath.Dir(path), 0o750)
}

// progress reports msg on the vertex in ctx, or through the logger when
// nothing is recording.
func (r *Repositories) progress(ctx context.Context, msg string) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, msg)
		return
	}
	r.logger.Info(msg)
}

// ListAvailable lists the tags of the cache of repo that parse as versions.
func (r *Repositories) ListAvailable(ctx context.Context, repo string) ([]domain.Version, error) {
	uri := r.locator.URI(repo)
	path := r.locator.CachePath(repo)

	unlock := r.lockPath(path)
	defer unlock()

	tags, err := r.clients[KindOf(uri)].Tags(ctx, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrRepositoryUnavailable, err), "list tags"), "repo", repo)
	}
	return domain.VersionsFromTags(tags), nil
}
