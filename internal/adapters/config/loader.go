// Package config provides the flavorfile loader for vim-flavor.
package config

import (
	"os"

	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/ngtk/vim-flavor/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.FlavorfileLoader = (*Loader)(nil)

// Loader implements ports.FlavorfileLoader for YAML flavorfiles.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the flavorfile at path.
func (l *Loader) Load(path string) (domain.FlavorSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrFlavorfileReadFailed, err.Error()), "path", path)
	}

	set, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if len(set) == 0 {
		l.logger.Warn("no flavors declared in " + path)
	}
	return set, nil
}

// Parse decodes flavorfile content. A declaration without a version accepts any version.
func Parse(data []byte) (domain.FlavorSet, error) {
	var file Flavorfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(domain.ErrFlavorfileParseFailed, err.Error())
	}

	set := make(domain.FlavorSet, len(file.Flavors))
	for i, dto := range file.Flavors {
		if dto.Repo == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrMissingRepository, "invalid declaration"), "index", i)
		}
		if _, exists := set[dto.Repo]; exists {
			return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateFlavor, "invalid declaration"), "repo", dto.Repo)
		}

		version := dto.Version
		if version == "" {
			version = domain.AnyVersion
		}
		constraint, err := domain.ParseConstraint(version)
		if err != nil {
			return nil, zerr.With(err, "repo", dto.Repo)
		}

		set[dto.Repo] = domain.NewFlavor(dto.Repo, constraint, dto.Groups...)
	}
	return set, nil
}
