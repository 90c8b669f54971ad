package domain

import (
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/zerr"
)

// VersionsFromTags keeps the tags that parse as versions, in their original
// order, dropping any tag equal in value to one already kept.
func VersionsFromTags(tags []string) []Version {
	out := make([]Version, 0, len(tags))
	for _, tag := range tags {
		v, err := ParseVersion(tag)
		if err != nil {
			continue
		}
		if containsVersion(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func containsVersion(vs []Version, v Version) bool {
	for _, existing := range vs {
		if existing.Equal(v) {
			return true
		}
	}
	return false
}

// PickBestVersion returns the greatest candidate satisfying c.
// Among candidates of equal value the first one wins.
func PickBestVersion(c VersionConstraint, candidates []Version) (Version, error) {
	var best Version
	for _, v := range candidates {
		if !c.SatisfiedBy(v) {
			continue
		}
		if best.IsZero() || v.Compare(best) > 0 {
			best = v
		}
	}
	if best.IsZero() {
		return Version{}, zerr.With(zerr.Wrap(ErrNoMatchingVersion, "pick version"), "constraint", c.String())
	}
	return best, nil
}

// FlavorError attributes a resolution failure to one repository.
type FlavorError struct {
	Repo string
	Err  error
}

func (e *FlavorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Repo, e.Err)
}

func (e *FlavorError) Unwrap() error {
	return e.Err
}

// FlavorErrors extracts every FlavorError joined into err, in join order.
func FlavorErrors(err error) []*FlavorError {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FlavorError); ok {
		return []*FlavorError{fe}
	}
	var out []*FlavorError
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			out = append(out, FlavorErrors(e)...)
		}
		return out
	}
	if inner := errors.Unwrap(err); inner != nil {
		return FlavorErrors(inner)
	}
	return nil
}

// FailedRepos lists the repositories named by the FlavorErrors in err.
func FailedRepos(err error) string {
	failures := FlavorErrors(err)
	repos := make([]string, 0, len(failures))
	for _, f := range failures {
		repos = append(repos, f.Repo)
	}
	return strings.Join(repos, ", ")
}
