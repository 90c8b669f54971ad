// Package fs maps repository identities to clone URIs and cache directories,
// and checks whether a cache directory holds a finished checkout.
package fs

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/ngtk/vim-flavor/internal/core/ports"
)

var _ ports.RepositoryLocator = (*Locator)(nil)

var (
	// githubShorthand matches "user/repo".
	githubShorthand = regexp.MustCompile(`^([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)$`)
	// vimScriptsShorthand matches a bare "repo", mirrored under vim-scripts on GitHub.
	vimScriptsShorthand = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
	// unsafePathChars matches characters replaced when deriving a directory name.
	unsafePathChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)
)

// Locator resolves repository identities against a cache root.
type Locator struct {
	reposDir string
}

// NewLocator creates a Locator storing caches under reposDir.
func NewLocator(reposDir string) *Locator {
	return &Locator{reposDir: filepath.Clean(reposDir)}
}

// URI expands GitHub shorthands. Full URIs, scp-style addresses and local
// paths are returned unchanged.
func (l *Locator) URI(repo string) string {
	if strings.Contains(repo, "://") || strings.HasPrefix(repo, "git@") ||
		strings.HasPrefix(repo, "/") || strings.HasPrefix(repo, ".") {
		return repo
	}
	if m := githubShorthand.FindStringSubmatch(repo); m != nil {
		return fmt.Sprintf("https://github.com/%s/%s.git", m[1], strings.TrimSuffix(m[2], ".git"))
	}
	if vimScriptsShorthand.MatchString(repo) {
		return fmt.Sprintf("https://github.com/vim-scripts/%s.git", strings.TrimSuffix(repo, ".git"))
	}
	return repo
}

// CachePath returns a directory unique to the repository's URI.
// Identities expanding to the same URI share a cache.
func (l *Locator) CachePath(repo string) string {
	uri := l.URI(repo)
	name := unsafePathChars.ReplaceAllString(uri, "_")
	return filepath.Join(l.reposDir, fmt.Sprintf("%s-%016x", name, xxhash.Sum64String(uri)))
}
