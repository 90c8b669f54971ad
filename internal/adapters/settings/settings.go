// Package settings loads process-wide settings from the environment and an
// optional config file using viper.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
	"go.trai.ch/zerr"
)

const (
	// EnvPrefix prefixes every environment variable read, e.g. VIMFLAVOR_HOME.
	EnvPrefix = "VIMFLAVOR"
	// DefaultFlavorfile is the declaration file looked up in the working directory.
	DefaultFlavorfile = "VimFlavor"
	// DefaultLockfile is the lockfile written next to the declaration file.
	DefaultLockfile = "VimFlavor.lock"
	// ConfigFileName is read from the home directory when present.
	ConfigFileName = "config.yaml"
)

// Settings holds the values that shape a run.
type Settings struct {
	// Home is the root of the repository caches.
	Home string `mapstructure:"home"`
	// Jobs bounds how many repositories are resolved at once.
	Jobs int `mapstructure:"jobs"`
	// Flavorfile is the default declaration path.
	Flavorfile string `mapstructure:"flavorfile"`
	// Lockfile is the default lockfile path.
	Lockfile string `mapstructure:"lockfile"`
	// Output selects the progress display: auto, tui, linear or none.
	Output string `mapstructure:"output"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	home := ".vim-flavor"
	if dir, err := os.UserHomeDir(); err == nil {
		home = filepath.Join(dir, ".vim-flavor")
	}
	return Settings{
		Home:       home,
		Jobs:       runtime.NumCPU(),
		Flavorfile: DefaultFlavorfile,
		Lockfile:   DefaultLockfile,
		Output:     "auto",
	}
}

// Load resolves settings from defaults, then <home>/config.yaml, then
// VIMFLAVOR_* environment variables.
func Load() (*Settings, error) {
	v := viper.New()

	defaults := Defaults()
	v.SetDefault("home", defaults.Home)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("flavorfile", defaults.Flavorfile)
	v.SetDefault("lockfile", defaults.Lockfile)
	v.SetDefault("output", defaults.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	configPath := filepath.Join(v.GetString("home"), ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read settings file"), "path", configPath)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat settings file"), "path", configPath)
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, zerr.Wrap(err, "failed to decode settings")
	}
	if s.Jobs < 1 {
		s.Jobs = 1
	}
	return &s, nil
}

// ReposDir is the directory holding one cache per repository.
func (s *Settings) ReposDir() string {
	return filepath.Join(s.Home, "repos")
}
