// Package app implements the application layer for vim-flavor.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"github.com/ngtk/vim-flavor/internal/engine/resolver"
	"github.com/ngtk/vim-flavor/internal/ui/report"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader    ports.FlavorfileLoader
	store     ports.LockStore
	resolver  *resolver.Resolver
	logger    ports.Logger
	telemetry ports.Telemetry
	report    *report.Writer
}

// Options locates the files a run reads and writes.
type Options struct {
	FlavorfilePath string
	LockfilePath   string
}

// New creates a new App instance reporting to stdout.
func New(
	loader ports.FlavorfileLoader,
	store ports.LockStore,
	res *resolver.Resolver,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:    loader,
		store:     store,
		resolver:  res,
		logger:    logger,
		telemetry: telemetry,
		report:    report.New(os.Stdout),
	}
}

// WithOutput redirects the change report to w.
func (a *App) WithOutput(w io.Writer) *App {
	a.report = report.New(w)
	return a
}

// Install pins new or changed flavors and keeps every other pin.
func (a *App) Install(ctx context.Context, opts Options) error {
	return a.run(ctx, opts, domain.ModeInstall)
}

// Update re-resolves every declared flavor.
func (a *App) Update(ctx context.Context, opts Options) error {
	return a.run(ctx, opts, domain.ModeUpdate)
}

// Check verifies that the lockfile covers the declarations without touching
// any repository or writing anything.
func (a *App) Check(_ context.Context, opts Options) error {
	declared, previous, err := a.load(opts)
	if err != nil {
		return err
	}

	plan := domain.Reconcile(declared, previous, domain.ModeInstall)

	var stale []string
	for _, repo := range previous.Repos() {
		if _, ok := declared[repo]; !ok {
			stale = append(stale, repo)
		}
	}

	if unlocked := plan.Unlocked(); len(unlocked) > 0 || len(stale) > 0 {
		err := zerr.Wrap(domain.ErrLockfileOutdated, "lockfile does not match the flavorfile")
		if len(unlocked) > 0 {
			err = zerr.With(err, "unresolved", strings.Join(unlocked, ", "))
		}
		if len(stale) > 0 {
			err = zerr.With(err, "stale", strings.Join(stale, ", "))
		}
		return zerr.With(err, "lockfile", opts.LockfilePath)
	}

	return a.report.Changes(domain.Diff(previous, plan))
}

func (a *App) run(ctx context.Context, opts Options, mode domain.Mode) error {
	// 1. Load declarations and the previous lock
	declared, previous, err := a.load(opts)
	if err != nil {
		return err
	}

	// 2. Decide which pins survive
	plan := domain.Reconcile(declared, previous, mode)
	if n := len(plan.Unlocked()); n > 0 {
		a.logger.Info(fmt.Sprintf("resolving %d of %d flavors (%s)", n, len(plan), mode))
	}

	// 3. Resolve the rest, then let the progress display finish drawing
	resolved, err := a.resolver.Resolve(ctx, plan)
	if closeErr := a.telemetry.Close(); closeErr != nil {
		a.logger.Warn("progress display: " + closeErr.Error())
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zerr.Wrap(ctxErr, "resolution interrupted")
		}
		for _, failure := range domain.FlavorErrors(err) {
			a.logger.Error(failure)
		}
		return zerr.With(
			zerr.Wrap(errors.Join(domain.ErrResolutionFailed, err), "failed to resolve flavors"),
			"flavors", domain.FailedRepos(err),
		)
	}

	// 4. Persist and report
	if err := a.store.Save(opts.LockfilePath, resolved); err != nil {
		return zerr.Wrap(err, "failed to save lockfile")
	}

	return a.report.Changes(domain.Diff(previous, resolved))
}

func (a *App) load(opts Options) (declared, locked domain.FlavorSet, err error) {
	declared, err = a.loader.Load(opts.FlavorfilePath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load flavorfile")
	}

	locked, err = a.store.Load(opts.LockfilePath)
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to load lockfile")
	}

	return declared, locked, nil
}
