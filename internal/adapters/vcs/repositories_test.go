package vcs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ngtk/vim-flavor/internal/adapters/vcs"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"github.com/ngtk/vim-flavor/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repos   *vcs.Repositories
	locator *mocks.MockRepositoryLocator
	git     *mocks.MockVCS
	hg      *mocks.MockVCS
	logger  *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		locator: mocks.NewMockRepositoryLocator(ctrl),
		git:     mocks.NewMockVCS(ctrl),
		hg:      mocks.NewMockVCS(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.repos = vcs.NewRepositories(f.locator, f.git, f.hg, f.logger)
	return f
}

func (f *fixture) locate(repo, uri, path string) {
	f.locator.EXPECT().URI(repo).Return(uri).AnyTimes()
	f.locator.EXPECT().CachePath(repo).Return(path).AnyTimes()
}

func TestRepositories_FetchClonesMissingCache(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "repos", "smartinput")
	uri := "https://github.com/kana/vim-smartinput.git"
	f.locate("kana/vim-smartinput", uri, path)
	f.git.EXPECT().Clone(gomock.Any(), uri, path).Return(nil)

	require.NoError(t, f.repos.Fetch(t.Context(), "kana/vim-smartinput"))

	_, err := os.Stat(filepath.Dir(path))
	assert.NoError(t, err, "parent directory should be created")
}

func TestRepositories_FetchUpdatesExistingCache(t *testing.T) {
	f := newFixture(t)
	path := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(path, ".git"), 0o750))
	f.locate("kana/vim-smartinput", "https://github.com/kana/vim-smartinput.git", path)
	f.git.EXPECT().Update(gomock.Any(), path).Return(nil)

	require.NoError(t, f.repos.Fetch(t.Context(), "kana/vim-smartinput"))
}

func TestRepositories_FetchReplacesInterruptedClone(t *testing.T) {
	f := newFixture(t)
	path := t.TempDir()
	leftover := filepath.Join(path, "README")
	require.NoError(t, os.WriteFile(leftover, []byte("partial"), 0o600))

	uri := "https://github.com/kana/vim-smartinput.git"
	f.locate("kana/vim-smartinput", uri, path)
	f.git.EXPECT().Clone(gomock.Any(), uri, path).Return(nil)

	require.NoError(t, f.repos.Fetch(t.Context(), "kana/vim-smartinput"))

	_, err := os.Stat(leftover)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRepositories_FetchLogsToVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	locator := mocks.NewMockRepositoryLocator(ctrl)
	git := mocks.NewMockVCS(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	repos := vcs.NewRepositories(locator, git, mocks.NewMockVCS(ctrl), mocks.NewMockLogger(ctrl))

	path := filepath.Join(t.TempDir(), "smartinput")
	uri := "https://github.com/kana/vim-smartinput.git"
	locator.EXPECT().URI("kana/vim-smartinput").Return(uri)
	locator.EXPECT().CachePath("kana/vim-smartinput").Return(path)
	vertex.EXPECT().Log(domain.LogLevelInfo, "cloning "+uri)
	git.EXPECT().Clone(gomock.Any(), uri, path).Return(nil)

	ctx := ports.ContextWithVertex(t.Context(), vertex)
	require.NoError(t, repos.Fetch(ctx, "kana/vim-smartinput"))
}

func TestRepositories_FetchUsesMercurialForHgURI(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "bar")
	uri := "ssh://hg@bitbucket.org/hoo/bar"
	f.locate(uri, uri, path)
	f.hg.EXPECT().Clone(gomock.Any(), uri, path).Return(nil)

	require.NoError(t, f.repos.Fetch(t.Context(), uri))
}

func TestRepositories_FetchFailure(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(t.TempDir(), "missing")
	uri := "https://github.com/kana/nope.git"
	f.locate("kana/nope", uri, path)
	f.git.EXPECT().Clone(gomock.Any(), uri, path).Return(errors.New("repository not found"))

	err := f.repos.Fetch(t.Context(), "kana/nope")
	require.ErrorIs(t, err, domain.ErrRepositoryFetchFailed)
	assert.ErrorContains(t, err, "repository not found")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "kana/nope", zErr.Metadata()["repo"])
	assert.Equal(t, uri, zErr.Metadata()["uri"])
}

func TestRepositories_ListAvailable(t *testing.T) {
	f := newFixture(t)
	path := t.TempDir()
	f.locate("kana/vim-smartinput", "https://github.com/kana/vim-smartinput.git", path)
	f.git.EXPECT().Tags(gomock.Any(), path).Return([]string{"1.2", "2.4.6_", "test", "2.9"}, nil)

	got, err := f.repos.ListAvailable(t.Context(), "kana/vim-smartinput")
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "1.2", got[0].String())
	assert.Equal(t, "2.9", got[1].String())
}

func TestRepositories_ListAvailableFailure(t *testing.T) {
	f := newFixture(t)
	path := t.TempDir()
	f.locate("kana/vim-smartinput", "https://github.com/kana/vim-smartinput.git", path)
	f.git.EXPECT().Tags(gomock.Any(), path).Return(nil, errors.New("not a git repository"))

	_, err := f.repos.ListAvailable(t.Context(), "kana/vim-smartinput")
	require.ErrorIs(t, err, domain.ErrRepositoryUnavailable)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "kana/vim-smartinput", zErr.Metadata()["repo"])
}
