package domain

// Mode selects how previously pinned versions are treated.
type Mode int

const (
	// ModeInstall keeps a pinned version while its constraint is unchanged.
	ModeInstall Mode = iota
	// ModeUpdate discards every pinned version.
	ModeUpdate
)

func (m Mode) String() string {
	switch m {
	case ModeInstall:
		return "install"
	case ModeUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// Reconcile merges freshly declared flavors with the last lock.
// The result has exactly the keys of declared. In install mode a locked
// version is carried over when the declared constraint equals the locked one;
// otherwise the declared flavor is used as is. Groups always come from declared.
// Neither input is modified.
func Reconcile(declared, locked FlavorSet, mode Mode) FlavorSet {
	out := make(FlavorSet, len(declared))
	for repo, d := range declared {
		l, wasLocked := locked[repo]
		switch {
		case !wasLocked, mode == ModeUpdate:
			out[repo] = d
		case d.Constraint.Equal(l.Constraint) && l.IsLocked():
			out[repo] = d.WithLocked(l.Locked)
		default:
			out[repo] = d
		}
	}
	return out
}
