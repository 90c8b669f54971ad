// Package resolver pins every unresolved flavor to the best available version.
package resolver

import (
	"context"
	"errors"
	"sync"

	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Resolver queries repositories concurrently, one worker per repository,
// bounded by the configured number of jobs.
type Resolver struct {
	fetcher   ports.RepositoryFetcher
	catalog   ports.VersionCatalog
	telemetry ports.Telemetry
	jobs      int
}

// New creates a Resolver running at most jobs repositories at once.
func New(
	fetcher ports.RepositoryFetcher,
	catalog ports.VersionCatalog,
	telemetry ports.Telemetry,
	jobs int,
) *Resolver {
	if jobs < 1 {
		jobs = 1
	}
	return &Resolver{
		fetcher:   fetcher,
		catalog:   catalog,
		telemetry: telemetry,
		jobs:      jobs,
	}
}

// Resolve returns a copy of flavors in which every unlocked flavor is pinned.
// Locked flavors are passed through without querying their repository.
// Failures do not stop other repositories; they are returned joined as
// *domain.FlavorError values ordered by repository, and the failed flavors
// stay unlocked in the result.
func (r *Resolver) Resolve(ctx context.Context, flavors domain.FlavorSet) (domain.FlavorSet, error) {
	out := make(domain.FlavorSet, len(flavors))
	var pending []domain.Flavor
	for _, f := range flavors.Sorted() {
		out[f.Repo] = f
		if f.IsLocked() {
			_, vertex := r.telemetry.Record(ctx, f.Repo)
			vertex.Log(domain.LogLevelInfo, "using locked "+f.Locked.String())
			vertex.Cached()
			continue
		}
		pending = append(pending, f)
	}

	var (
		mu       sync.Mutex
		failures = make(map[string]error)
		g        errgroup.Group
	)
	g.SetLimit(r.jobs)

	for _, f := range pending {
		g.Go(func() error {
			v, err := r.resolveOne(ctx, f)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[f.Repo] = err
				return nil
			}
			out[f.Repo] = f.WithLocked(v)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, f := range pending {
		if err, ok := failures[f.Repo]; ok {
			errs = append(errs, &domain.FlavorError{Repo: f.Repo, Err: err})
		}
	}
	return out, errors.Join(errs...)
}

func (r *Resolver) resolveOne(ctx context.Context, f domain.Flavor) (v domain.Version, err error) {
	ctx, vertex := r.telemetry.Record(ctx, f.Repo)
	defer func() {
		if err != nil {
			vertex.Log(domain.LogLevelError, err.Error())
		} else {
			vertex.Log(domain.LogLevelInfo, "picked "+v.String())
		}
		vertex.Complete(err)
	}()

	if err := ctx.Err(); err != nil {
		return domain.Version{}, err
	}

	if err := r.fetcher.Fetch(ctx, f.Repo); err != nil {
		return domain.Version{}, err
	}

	available, err := r.catalog.ListAvailable(ctx, f.Repo)
	if err != nil {
		return domain.Version{}, err
	}

	return domain.PickBestVersion(f.Constraint, available)
}
