// Package vcs drives git and mercurial clients to maintain repository caches
// and list their tags.
package vcs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ngtk/vim-flavor/internal/core/ports"
	"go.trai.ch/zerr"
)

// runner executes one client binary.
type runner struct {
	binary string
}

// run executes the binary with args and returns its stdout.
// Stderr is captured for error reports and mirrored to the vertex in ctx.
func (r runner) run(ctx context.Context, dir string, args ...string) ([]byte, error) {
	//nolint:gosec // binary is fixed per client and arguments are passed without a shell
	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0", "HGPLAIN=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stderr = io.MultiWriter(&stderr, v.Stderr())
	}

	if err := cmd.Run(); err != nil {
		runErr := zerr.Wrap(err, "command failed")
		runErr = zerr.With(runErr, "command", r.binary+" "+strings.Join(args, " "))

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			runErr = zerr.With(runErr, "exit_code", exitErr.ExitCode())
		}
		return nil, zerr.With(runErr, "stderr", strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// lines splits command output into trimmed, non-empty lines.
func lines(out []byte) []string {
	var result []string
	for line := range strings.SplitSeq(string(out), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			result = append(result, line)
		}
	}
	return result
}
