package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Verifier checks whether a cache directory holds a finished checkout.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// HasCheckout reports whether dir contains the metadata directory marker,
// e.g. ".git". A missing dir is not an error.
func (v *Verifier) HasCheckout(dir, marker string) (bool, error) {
	path := filepath.Join(dir, marker)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat checkout"), "path", path)
	}
	return info.IsDir(), nil
}

// Exists reports whether path exists.
func (v *Verifier) Exists(path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", path)
	}
	return true, nil
}
