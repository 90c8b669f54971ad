package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ngtk/vim-flavor/internal/adapters/config"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeFlavorfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "VimFlavor")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeFlavorfile(t, `
flavors:
  - repo: kana/vim-smartinput
  - repo: kana/vim-textobj-user
    version: "~> 0.3"
  - repo: thinca/vim-themis
    version: ">= 1.5"
    groups: [development, test]
`)
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	set, err := config.NewLoader(logger).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"kana/vim-smartinput", "kana/vim-textobj-user", "thinca/vim-themis"}, set.Repos())

	smartinput := set["kana/vim-smartinput"]
	assert.Equal(t, ">= 0", smartinput.Constraint.String())
	assert.False(t, smartinput.IsLocked())
	assert.Empty(t, smartinput.Groups())

	assert.Equal(t, "~> 0.3", set["kana/vim-textobj-user"].Constraint.String())
	assert.Equal(t, []string{"development", "test"}, set["thinca/vim-themis"].Groups())
}

func TestLoader_EmptyWarns(t *testing.T) {
	path := writeFlavorfile(t, "flavors: []\n")
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn("no flavors declared in " + path)

	set, err := config.NewLoader(logger).Load(path)
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoader_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	path := filepath.Join(t.TempDir(), "VimFlavor")

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(path)
	require.ErrorIs(t, err, domain.ErrFlavorfileReadFailed)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			name:    "malformed yaml",
			content: "flavors: [",
			want:    domain.ErrFlavorfileParseFailed,
		},
		{
			name:    "missing repo",
			content: "flavors:\n  - version: '>= 1'\n",
			want:    domain.ErrMissingRepository,
		},
		{
			name:    "duplicate repo",
			content: "flavors:\n  - repo: a/b\n  - repo: a/b\n",
			want:    domain.ErrDuplicateFlavor,
		},
		{
			name:    "bad constraint",
			content: "flavors:\n  - repo: a/b\n    version: 'newest'\n",
			want:    domain.ErrInvalidConstraintFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_DuplicateNamesRepo(t *testing.T) {
	_, err := config.Parse([]byte("flavors:\n  - repo: a/b\n  - repo: a/b\n"))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "a/b", zErr.Metadata()["repo"])
}
