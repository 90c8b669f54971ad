package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ngtk/vim-flavor/internal/adapters/telemetry"
	"github.com/ngtk/vim-flavor/internal/app"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports/mocks"
	"github.com/ngtk/vim-flavor/internal/engine/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	smartinput = "kana/vim-smartinput"
	textobj    = "kana/vim-textobj-user"
)

var opts = app.Options{FlavorfilePath: "VimFlavor", LockfilePath: "VimFlavor.lock"}

type fixture struct {
	loader  *mocks.MockFlavorfileLoader
	store   *mocks.MockLockStore
	fetcher *mocks.MockRepositoryFetcher
	catalog *mocks.MockVersionCatalog
	logger  *mocks.MockLogger
	out     *bytes.Buffer
	app     *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:  mocks.NewMockFlavorfileLoader(ctrl),
		store:   mocks.NewMockLockStore(ctrl),
		fetcher: mocks.NewMockRepositoryFetcher(ctrl),
		catalog: mocks.NewMockVersionCatalog(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		out:     &bytes.Buffer{},
	}
	tel := telemetry.NewNoOp()
	res := resolver.New(f.fetcher, f.catalog, tel, 2)
	f.app = app.New(f.loader, f.store, res, f.logger, tel).WithOutput(f.out)
	return f
}

func (f *fixture) tags(repo string, vs ...string) {
	out := make([]domain.Version, 0, len(vs))
	for _, s := range vs {
		out = append(out, domain.MustParseVersion(s))
	}
	f.fetcher.EXPECT().Fetch(gomock.Any(), repo).Return(nil)
	f.catalog.EXPECT().ListAvailable(gomock.Any(), repo).Return(out, nil)
}

func declared(repo, constraint string) domain.Flavor {
	return domain.NewFlavor(repo, domain.MustParseConstraint(constraint))
}

func locked(repo, constraint, version string) domain.Flavor {
	return declared(repo, constraint).WithLocked(domain.MustParseVersion(version))
}

func TestApp_Install_KeepsExistingPins(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("VimFlavor").Return(domain.NewFlavorSet(
		declared(smartinput, ">= 0"),
		declared(textobj, "~> 0.3"),
	), nil)
	f.store.EXPECT().Load("VimFlavor.lock").Return(domain.NewFlavorSet(
		locked(smartinput, ">= 0", "0.0.1"),
	), nil)
	f.logger.EXPECT().Info("resolving 1 of 2 flavors (install)")
	f.tags(textobj, "0.3.12", "1.0.0")

	var saved domain.FlavorSet
	f.store.EXPECT().Save("VimFlavor.lock", gomock.Any()).DoAndReturn(
		func(_ string, set domain.FlavorSet) error {
			saved = set
			return nil
		})

	err := f.app.Install(context.Background(), opts)
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, "0.0.1", saved[smartinput].Locked.String())
	assert.Equal(t, "0.3.12", saved[textobj].Locked.String())
	assert.Contains(t, f.out.String(), "+ kana/vim-textobj-user 0.3.12")
	assert.Contains(t, f.out.String(), "Locked 2 flavors (1 added)")
}

func TestApp_Update_ReResolvesEverything(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("VimFlavor").Return(domain.NewFlavorSet(declared(smartinput, ">= 0")), nil)
	f.store.EXPECT().Load("VimFlavor.lock").Return(domain.NewFlavorSet(
		locked(smartinput, ">= 0", "0.0.1"),
		locked(textobj, ">= 0", "0.3.12"),
	), nil)
	f.logger.EXPECT().Info("resolving 1 of 1 flavors (update)")
	f.tags(smartinput, "0.0.1", "0.0.2")

	var saved domain.FlavorSet
	f.store.EXPECT().Save("VimFlavor.lock", gomock.Any()).DoAndReturn(
		func(_ string, set domain.FlavorSet) error {
			saved = set
			return nil
		})

	err := f.app.Update(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, []string{smartinput}, saved.Repos())
	assert.Equal(t, "0.0.2", saved[smartinput].Locked.String())
	assert.Contains(t, f.out.String(), "↑ kana/vim-smartinput 0.0.1 -> 0.0.2")
	assert.Contains(t, f.out.String(), "- kana/vim-textobj-user 0.3.12")
}

func TestApp_Install_ResolutionFailureWritesNothing(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("VimFlavor").Return(domain.NewFlavorSet(
		declared(smartinput, ">= 1.0"),
		declared(textobj, ">= 0"),
	), nil)
	f.store.EXPECT().Load("VimFlavor.lock").Return(domain.FlavorSet{}, nil)
	f.logger.EXPECT().Info("resolving 2 of 2 flavors (install)")
	f.tags(smartinput, "0.0.1")
	f.fetcher.EXPECT().Fetch(gomock.Any(), textobj).Return(domain.ErrRepositoryUnavailable)

	var logged []string
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		var fe *domain.FlavorError
		require.ErrorAs(t, err, &fe)
		logged = append(logged, fe.Repo)
	}).Times(2)

	err := f.app.Install(context.Background(), opts)
	require.ErrorIs(t, err, domain.ErrResolutionFailed)
	assert.ErrorIs(t, err, domain.ErrNoMatchingVersion)
	assert.ErrorIs(t, err, domain.ErrRepositoryUnavailable)
	assert.Equal(t, "kana/vim-smartinput, kana/vim-textobj-user", domain.FailedRepos(err))
	assert.Equal(t, []string{smartinput, textobj}, logged)
	assert.Empty(t, f.out.String())
}

func TestApp_Install_LoaderError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("VimFlavor").Return(nil, domain.ErrFlavorfileReadFailed)

	err := f.app.Install(context.Background(), opts)
	require.ErrorIs(t, err, domain.ErrFlavorfileReadFailed)
}

func TestApp_Install_SaveError(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load("VimFlavor").Return(domain.NewFlavorSet(declared(smartinput, ">= 0")), nil)
	f.store.EXPECT().Load("VimFlavor.lock").Return(domain.NewFlavorSet(locked(smartinput, ">= 0", "0.0.1")), nil)
	f.store.EXPECT().Save("VimFlavor.lock", gomock.Any()).Return(domain.ErrLockfileWriteFailed)

	err := f.app.Install(context.Background(), opts)
	require.ErrorIs(t, err, domain.ErrLockfileWriteFailed)
}

func TestApp_Check(t *testing.T) {
	tests := []struct {
		name     string
		declared domain.FlavorSet
		locked   domain.FlavorSet
		wantErr  error
	}{
		{
			name:     "up to date",
			declared: domain.NewFlavorSet(declared(smartinput, ">=0")),
			locked:   domain.NewFlavorSet(locked(smartinput, ">= 0", "0.0.1")),
		},
		{
			name:     "new flavor",
			declared: domain.NewFlavorSet(declared(smartinput, ">= 0"), declared(textobj, ">= 0")),
			locked:   domain.NewFlavorSet(locked(smartinput, ">= 0", "0.0.1")),
			wantErr:  domain.ErrLockfileOutdated,
		},
		{
			name:     "changed constraint",
			declared: domain.NewFlavorSet(declared(smartinput, ">= 0.0.2")),
			locked:   domain.NewFlavorSet(locked(smartinput, ">= 0", "0.0.1")),
			wantErr:  domain.ErrLockfileOutdated,
		},
		{
			name:     "stale entry",
			declared: domain.NewFlavorSet(declared(smartinput, ">= 0")),
			locked: domain.NewFlavorSet(
				locked(smartinput, ">= 0", "0.0.1"),
				locked(textobj, ">= 0", "0.3.12"),
			),
			wantErr: domain.ErrLockfileOutdated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.loader.EXPECT().Load("VimFlavor").Return(tt.declared, nil)
			f.store.EXPECT().Load("VimFlavor.lock").Return(tt.locked, nil)

			err := f.app.Check(context.Background(), opts)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, f.out.String(), "Lockfile is up to date (1 flavor)")
		})
	}
}

func TestApp_Install_Interrupted(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f.loader.EXPECT().Load("VimFlavor").Return(domain.NewFlavorSet(declared(smartinput, ">= 0")), nil)
	f.store.EXPECT().Load("VimFlavor.lock").Return(domain.FlavorSet{}, nil)
	f.logger.EXPECT().Info(gomock.Any())

	err := f.app.Install(ctx, opts)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, domain.ErrResolutionFailed))
}
