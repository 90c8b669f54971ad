package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/ngtk/vim-flavor/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points every setting at a fresh directory and returns it.
func setupHome(t *testing.T, flavorfile string) string {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	// Nodes are cached process-wide; settings must be read again per test.
	graft.ResetDefaultCache()
	t.Cleanup(graft.ResetDefaultCache)

	tmpDir := t.TempDir()
	t.Setenv("VIMFLAVOR_HOME", filepath.Join(tmpDir, "home"))
	t.Setenv("VIMFLAVOR_FLAVORFILE", filepath.Join(tmpDir, "VimFlavor"))
	t.Setenv("VIMFLAVOR_LOCKFILE", filepath.Join(tmpDir, "VimFlavor.lock"))

	if flavorfile != "" {
		err := os.WriteFile(filepath.Join(tmpDir, "VimFlavor"), []byte(flavorfile), 0o600)
		if err != nil {
			t.Fatalf("failed to write flavorfile: %v", err)
		}
	}
	return tmpDir
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	originalArgs := os.Args
	t.Cleanup(func() { os.Args = originalArgs })
	os.Args = args
}

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		flavorfile   string
		args         []string
		expectedExit int
	}{
		{
			name:         "install with nothing declared",
			flavorfile:   "flavors: []\n",
			args:         []string{"vim-flavor", "install"},
			expectedExit: 0,
		},
		{
			name:         "missing flavorfile",
			args:         []string{"vim-flavor", "install"},
			expectedExit: 1,
		},
		{
			name:         "malformed constraint",
			flavorfile:   "flavors:\n  - repo: kana/vim-smartinput\n    version: \"~> test\"\n",
			args:         []string{"vim-flavor", "install"},
			expectedExit: 1,
		},
		{
			name:         "check without lockfile",
			flavorfile:   "flavors:\n  - repo: kana/vim-smartinput\n",
			args:         []string{"vim-flavor", "check"},
			expectedExit: 1,
		},
		{
			name:         "version",
			args:         []string{"vim-flavor", "version"},
			expectedExit: 0,
		},
		{
			name:         "unknown command",
			args:         []string{"vim-flavor", "upgrade"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupHome(t, tt.flavorfile)
			withArgs(t, tt.args...)

			exitCode := run(func(a *app.App) {
				a.WithOutput(&bytes.Buffer{})
			})
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_InstallWritesLockfile(t *testing.T) {
	tmpDir := setupHome(t, "flavors: []\n")
	withArgs(t, "vim-flavor", "install")

	out := &bytes.Buffer{}
	exitCode := run(func(a *app.App) {
		a.WithOutput(out)
	})
	require.Equal(t, 0, exitCode)

	data, err := os.ReadFile(filepath.Join(tmpDir, "VimFlavor.lock"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `format: "1.0"`)
	assert.Contains(t, out.String(), "Lockfile is up to date (0 flavors)")
}

func TestRun_SettingsInitError(t *testing.T) {
	tmpDir := setupHome(t, "flavors: []\n")

	// A config file that is not YAML makes settings fail before the logger exists.
	home := filepath.Join(tmpDir, "home")
	require.NoError(t, os.MkdirAll(home, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("jobs: [\n"), 0o600))

	withArgs(t, "vim-flavor", "install")
	assert.Equal(t, 1, run())
}

func TestRun_QuietOutput(t *testing.T) {
	setupHome(t, "flavors: []\n")
	t.Setenv("VIMFLAVOR_OUTPUT", "none")
	withArgs(t, "vim-flavor", "install")

	out := &bytes.Buffer{}
	exitCode := run(func(a *app.App) {
		a.WithOutput(out)
	})
	require.Equal(t, 0, exitCode)
	assert.Contains(t, out.String(), "Lockfile is up to date")
}
