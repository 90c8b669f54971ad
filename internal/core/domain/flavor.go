package domain

import (
	"maps"
	"slices"
)

// Flavor is one plugin dependency: where it comes from, which versions are
// acceptable and, once resolved, which version is pinned.
// Flavors are values; the With* methods return modified copies.
type Flavor struct {
	// Repo identifies the repository and is the key of a FlavorSet.
	Repo string
	// Constraint limits the acceptable versions.
	Constraint VersionConstraint
	// Locked is the pinned version. The zero Version means unresolved.
	Locked Version
	groups []string
}

// NewFlavor builds a declared, unresolved flavor.
func NewFlavor(repo string, constraint VersionConstraint, groups ...string) Flavor {
	return Flavor{
		Repo:       repo,
		Constraint: constraint,
		groups:     normalizeGroups(groups),
	}
}

func normalizeGroups(groups []string) []string {
	if len(groups) == 0 {
		return nil
	}
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		if g != "" {
			out = append(out, g)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Groups returns the sorted group names. An empty result means the default group.
func (f Flavor) Groups() []string {
	return slices.Clone(f.groups)
}

// IsLocked reports whether a version has been pinned.
func (f Flavor) IsLocked() bool {
	return !f.Locked.IsZero()
}

// WithLocked returns a copy of f pinned to v.
func (f Flavor) WithLocked(v Version) Flavor {
	out := f
	out.groups = slices.Clone(f.groups)
	out.Locked = v
	return out
}

// WithGroups returns a copy of f with the given groups.
func (f Flavor) WithGroups(groups ...string) Flavor {
	out := f
	out.groups = normalizeGroups(groups)
	return out
}

// Equal compares every field by value.
func (f Flavor) Equal(other Flavor) bool {
	if f.Repo != other.Repo || !f.Constraint.Equal(other.Constraint) {
		return false
	}
	if f.IsLocked() != other.IsLocked() {
		return false
	}
	if f.IsLocked() && !f.Locked.Equal(other.Locked) {
		return false
	}
	return slices.Equal(f.groups, other.groups)
}

// FlavorSet maps a repository identity to its flavor.
type FlavorSet map[string]Flavor

// NewFlavorSet builds a set keyed by each flavor's Repo.
// A later flavor with the same Repo replaces an earlier one.
func NewFlavorSet(flavors ...Flavor) FlavorSet {
	set := make(FlavorSet, len(flavors))
	for _, f := range flavors {
		set[f.Repo] = f
	}
	return set
}

// Repos returns the keys in sorted order.
func (s FlavorSet) Repos() []string {
	return slices.Sorted(maps.Keys(s))
}

// Sorted returns the flavors ordered by Repo.
func (s FlavorSet) Sorted() []Flavor {
	out := make([]Flavor, 0, len(s))
	for _, repo := range s.Repos() {
		out = append(out, s[repo])
	}
	return out
}

// Unlocked returns the repos whose flavor has no pinned version, sorted.
func (s FlavorSet) Unlocked() []string {
	var out []string
	for _, repo := range s.Repos() {
		if !s[repo].IsLocked() {
			out = append(out, repo)
		}
	}
	return out
}

// Equal reports whether both sets hold equal flavors under the same keys.
func (s FlavorSet) Equal(other FlavorSet) bool {
	return maps.EqualFunc(s, other, Flavor.Equal)
}
