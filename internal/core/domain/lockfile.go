package domain

// LockfileFormat is the format version written into new lockfiles.
// Readers accept any format with the same major version.
const LockfileFormat = "1.0"

// Lockfile is the persisted snapshot of pinned flavors.
type Lockfile struct {
	// Format is the lockfile format version, e.g. "1.0".
	Format string

	// Flavors maps a repository identity to its pinned flavor.
	Flavors FlavorSet
}

// NewLockfile wraps flavors in a lockfile of the current format.
func NewLockfile(flavors FlavorSet) Lockfile {
	return Lockfile{Format: LockfileFormat, Flavors: flavors}
}
