// Package lockfile persists pinned flavors as a YAML lockfile.
package lockfile

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.LockStore = (*Store)(nil)

// supportedFormats accepts every format sharing the current major version.
var supportedFormats = func() *semver.Constraints {
	c, err := semver.NewConstraint("^1")
	if err != nil {
		panic(err)
	}
	return c
}()

// fileDTO is the on-disk shape of a lockfile.
type fileDTO struct {
	Format  string               `yaml:"format"`
	Flavors map[string]flavorDTO `yaml:"flavors"`
}

type flavorDTO struct {
	Constraint string   `yaml:"constraint"`
	Locked     string   `yaml:"locked"`
	Groups     []string `yaml:"groups"`
}

// Store implements ports.LockStore using YAML files.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the lockfile at path. A missing file is an empty lock.
func (s *Store) Load(path string) (domain.FlavorSet, error) {
	lock, err := s.Read(path)
	if err != nil {
		return nil, err
	}
	return lock.Flavors, nil
}

// Read reads the lockfile at path including its format version.
func (s *Store) Read(path string) (domain.Lockfile, error) {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockfile(domain.FlavorSet{}), nil
		}
		return domain.Lockfile{}, zerr.With(zerr.Wrap(domain.ErrLockfileReadFailed, err.Error()), "path", path)
	}

	lock, err := Decode(data)
	if err != nil {
		return domain.Lockfile{}, zerr.With(err, "path", path)
	}
	return lock, nil
}

// Decode parses lockfile content.
func Decode(data []byte) (domain.Lockfile, error) {
	var dto fileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.Lockfile{}, zerr.Wrap(domain.ErrLockfileParseFailed, err.Error())
	}

	if dto.Format == "" {
		dto.Format = domain.LockfileFormat
	}
	format, err := semver.NewVersion(dto.Format)
	if err != nil || !supportedFormats.Check(format) {
		return domain.Lockfile{}, zerr.With(zerr.Wrap(domain.ErrUnsupportedLockfileFormat, "check format"), "format", dto.Format)
	}

	flavors := make(domain.FlavorSet, len(dto.Flavors))
	for repo, f := range dto.Flavors {
		constraint, err := domain.ParseConstraint(f.Constraint)
		if err != nil {
			return domain.Lockfile{}, zerr.With(zerr.Wrap(domain.ErrLockfileParseFailed, err.Error()), "repo", repo)
		}
		locked, err := domain.ParseVersion(f.Locked)
		if err != nil {
			return domain.Lockfile{}, zerr.With(zerr.Wrap(domain.ErrLockfileParseFailed, err.Error()), "repo", repo)
		}
		flavors[repo] = domain.NewFlavor(repo, constraint, f.Groups...).WithLocked(locked)
	}

	return domain.Lockfile{Format: dto.Format, Flavors: flavors}, nil
}

// Encode renders a lockfile with repositories in sorted order.
// Every flavor must be locked.
func Encode(lock domain.Lockfile) ([]byte, error) {
	format := lock.Format
	if format == "" {
		format = domain.LockfileFormat
	}

	flavors := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range lock.Flavors.Sorted() {
		if !f.IsLocked() {
			return nil, zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, "flavor is not locked"), "repo", f.Repo)
		}
		entry := &yaml.Node{Kind: yaml.MappingNode}
		entry.Content = append(entry.Content,
			plain("constraint"), quoted(f.Constraint.String()),
			plain("locked"), quoted(f.Locked.String()),
		)
		if groups := f.Groups(); len(groups) > 0 {
			seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, g := range groups {
				seq.Content = append(seq.Content, plain(g))
			}
			entry.Content = append(entry.Content, plain("groups"), seq)
		}
		flavors.Content = append(flavors.Content, plain(f.Repo), entry)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content,
		plain("format"), quoted(format),
		plain("flavors"), flavors,
	)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return nil, zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error())
	}
	return buf.Bytes(), nil
}

func plain(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func quoted(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

// Save writes flavors to path atomically, creating parent directories.
func (s *Store) Save(path string, flavors domain.FlavorSet) error {
	data, err := Encode(domain.NewLockfile(flavors))
	if err != nil {
		return zerr.With(err, "path", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // Best effort cleanup; fails harmlessly after rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}
	//nolint:gosec // Lockfiles are meant to be committed and shared
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrLockfileWriteFailed, err.Error()), "path", path)
	}
	return nil
}
