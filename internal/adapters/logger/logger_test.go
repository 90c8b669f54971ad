package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ngtk/vim-flavor/internal/adapters/logger"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without colors.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("resolving 2 flavors")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("no lockfile found")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("boom"),
			goldenName: "error_standard",
		},
		{
			name: "zerr chain with metadata",
			err: zerr.With(
				zerr.Wrap(domain.ErrRepositoryUnavailable, "list tags"),
				"repo", "kana/vim-smartinput",
			),
			goldenName: "error_chain",
		},
		{
			name: "joined flavor failures",
			err: zerr.Wrap(errors.Join(
				domain.ErrResolutionFailed,
				errors.Join(
					&domain.FlavorError{Repo: "kana/vim-smartinput", Err: domain.ErrNoMatchingVersion},
					&domain.FlavorError{Repo: "kana/vim-textobj-user", Err: domain.ErrRepositoryUnavailable},
				),
			), "install"),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New().(*logger.Logger)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
