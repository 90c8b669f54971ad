package domain

// ChangeKind classifies how a flavor's pin moved between two locks.
type ChangeKind string

const (
	// ChangeAdded marks a flavor absent from the previous lock.
	ChangeAdded ChangeKind = "added"
	// ChangeRemoved marks a flavor absent from the next lock.
	ChangeRemoved ChangeKind = "removed"
	// ChangeUpgraded marks a flavor pinned to a greater version.
	ChangeUpgraded ChangeKind = "upgraded"
	// ChangeDowngraded marks a flavor pinned to a lesser version.
	ChangeDowngraded ChangeKind = "downgraded"
	// ChangeUnchanged marks a flavor pinned to an equal version.
	ChangeUnchanged ChangeKind = "unchanged"
)

// Change describes one repository in a lock diff.
// Previous or Next is the zero Version when the flavor is added or removed.
type Change struct {
	Repo     string
	Kind     ChangeKind
	Previous Version
	Next     Version
}

// Diff compares two locks and returns one Change per repository, sorted by repo.
// Pins are compared as versions, so a move from 1.2 to 1.2.0 is unchanged even
// though the lockfile text differs. Previous and Next keep the original text.
func Diff(previous, next FlavorSet) []Change {
	repos := make(FlavorSet, len(previous)+len(next))
	for repo, f := range previous {
		repos[repo] = f
	}
	for repo, f := range next {
		repos[repo] = f
	}

	changes := make([]Change, 0, len(repos))
	for _, repo := range repos.Repos() {
		p, hadPrev := previous[repo]
		n, hasNext := next[repo]
		c := Change{Repo: repo, Previous: p.Locked, Next: n.Locked}
		switch {
		case !hasNext:
			c.Kind = ChangeRemoved
		case !hadPrev || !p.IsLocked():
			c.Kind = ChangeAdded
		default:
			switch cmp := n.Locked.Compare(p.Locked); {
			case cmp > 0:
				c.Kind = ChangeUpgraded
			case cmp < 0:
				c.Kind = ChangeDowngraded
			default:
				c.Kind = ChangeUnchanged
			}
		}
		changes = append(changes, c)
	}
	return changes
}
