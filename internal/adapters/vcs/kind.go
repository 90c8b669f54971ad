package vcs

import "strings"

// Kind names a version control system.
type Kind string

const (
	// KindGit is the default for every repository.
	KindGit Kind = "git"
	// KindMercurial is used for URIs whose user is hg.
	KindMercurial Kind = "hg"
)

// KindOf classifies a clone URI. Only a URI with user "hg", as in
// ssh://hg@bitbucket.org/user/repo, is Mercurial.
func KindOf(uri string) Kind {
	rest := uri
	if _, after, ok := strings.Cut(uri, "://"); ok {
		rest = after
	}
	if user, _, ok := strings.Cut(rest, "@"); ok && user == "hg" {
		return KindMercurial
	}
	return KindGit
}

// Marker is the metadata directory a finished checkout of this kind contains.
func (k Kind) Marker() string {
	if k == KindMercurial {
		return ".hg"
	}
	return ".git"
}
