package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersionFormat is returned when a string has no leading numeric segment
	// or contains characters a version cannot hold.
	ErrInvalidVersionFormat = zerr.New("invalid version format")

	// ErrInvalidConstraintFormat is returned when a constraint is not of the form "<op> <version>".
	ErrInvalidConstraintFormat = zerr.New("invalid constraint format")

	// ErrRepositoryUnavailable is returned when the tags of a repository cannot be listed.
	ErrRepositoryUnavailable = zerr.New("repository unavailable")

	// ErrRepositoryFetchFailed is returned when a repository cannot be cloned or updated.
	ErrRepositoryFetchFailed = zerr.New("failed to fetch repository")

	// ErrNoMatchingVersion is returned when no available version satisfies a constraint.
	ErrNoMatchingVersion = zerr.New("no version matches the constraint")

	// ErrResolutionFailed is returned when at least one flavor could not be resolved.
	ErrResolutionFailed = zerr.New("failed to resolve flavors")

	// ErrFlavorfileReadFailed is returned when the flavorfile cannot be read.
	ErrFlavorfileReadFailed = zerr.New("failed to read flavorfile")

	// ErrFlavorfileParseFailed is returned when the flavorfile is not valid YAML.
	ErrFlavorfileParseFailed = zerr.New("failed to parse flavorfile")

	// ErrDuplicateFlavor is returned when the same repository is declared twice.
	ErrDuplicateFlavor = zerr.New("flavor declared more than once")

	// ErrMissingRepository is returned when a declaration has no repository.
	ErrMissingRepository = zerr.New("flavor has no repository")

	// ErrLockfileReadFailed is returned when an existing lockfile cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when the lockfile content is malformed.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrLockfileWriteFailed is returned when the lockfile cannot be written.
	ErrLockfileWriteFailed = zerr.New("failed to write lockfile")

	// ErrUnsupportedLockfileFormat is returned when the lockfile was written by an
	// incompatible format version.
	ErrUnsupportedLockfileFormat = zerr.New("unsupported lockfile format")

	// ErrLockfileOutdated is returned by check when declared flavors are not all pinned.
	ErrLockfileOutdated = zerr.New("lockfile is out of date")

	// ErrCacheCreateFailed is returned when the repository cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create repository cache")
)
