package domain_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/ngtk/vim-flavor/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		input    string
		segments []string
	}{
		{"1.2", []string{"1", "2"}},
		{"1.2.0", []string{"1", "2", "0"}},
		{"1.2a", []string{"1", "2", "a"}},
		{"2.4.6b", []string{"2", "4", "6", "b"}},
		{"1.0.rc1", []string{"1", "0", "rc", "1"}},
		{"1.0-beta", []string{"1", "0", "pre", "beta"}},
		{" 3.6c ", []string{"3", "6", "c"}},
		{"0", []string{"0"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := domain.ParseVersion(tt.input)
			require.NoError(t, err)

			got := make([]string, 0, len(tt.segments))
			for _, s := range v.Segments() {
				got = append(got, s.String())
			}
			assert.Equal(t, tt.segments, got)
			assert.False(t, v.IsZero())
		})
	}
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, input := range []string{"", "  ", "test", "2.4.6_", "v1.0", ".1", "1..2", "1.2.", "1 2"} {
		t.Run(input, func(t *testing.T) {
			_, err := domain.ParseVersion(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidVersionFormat))

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, input, zErr.Metadata()["version"])
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.2.0a", "1.2.0", -1},
		{"1.2a", "1.2", -1},
		{"1.2", "1.2.0", 0},
		{"1.2.0.0", "1.2", 0},
		{"1.10", "1.9", 1},
		{"2.0", "1.99.99", 1},
		{"1.0a", "1.0b", -1},
		{"1.0.rc1", "1.0.rc2", -1},
		{"1.0.beta", "1.0.alpha", 1},
		{"1.0.1a", "1.0", 1},
		{"1.0-beta", "1.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_vs_"+tt.b, func(t *testing.T) {
			a := domain.MustParseVersion(tt.a)
			b := domain.MustParseVersion(tt.b)
			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
			assert.Equal(t, tt.want == 0, a.Equal(b))
		})
	}
}

func TestVersionCompare_Reflexive(t *testing.T) {
	for _, s := range []string{"0", "1.2", "1.2.0a", "3.6c", "10.0.rc1"} {
		v := domain.MustParseVersion(s)
		assert.Equal(t, 0, v.Compare(v), s)
	}
}

func TestVersionCompare_TotalOrder(t *testing.T) {
	inputs := []string{"2.0", "1.2.0a", "1.2", "0.9", "1.2.1", "1.2a", "1.10", "1.2.0b"}
	versions := make([]domain.Version, 0, len(inputs))
	for _, s := range inputs {
		versions = append(versions, domain.MustParseVersion(s))
	}

	slices.SortFunc(versions, domain.Version.Compare)

	got := make([]string, 0, len(versions))
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"0.9", "1.2a", "1.2.0a", "1.2.0b", "1.2", "1.2.1", "1.10", "2.0"}, got)

	for i := range versions {
		for j := i + 1; j < len(versions); j++ {
			assert.LessOrEqual(t, versions[i].Compare(versions[j]), 0)
		}
	}
}

func TestVersion_ZeroValue(t *testing.T) {
	var v domain.Version
	assert.True(t, v.IsZero())
	assert.Empty(t, v.String())
}

func TestVersionsFromTags(t *testing.T) {
	got := domain.VersionsFromTags([]string{"1.2", "2.4.6_", "test", "2.9"})

	require.Len(t, got, 2)
	assert.Equal(t, "1.2", got[0].String())
	assert.Equal(t, "2.9", got[1].String())
}

func TestVersionsFromTags_Prerelease(t *testing.T) {
	got := domain.VersionsFromTags([]string{"1.2a", "2.4.6b", "3.6c"})
	require.Len(t, got, 3)
}

func TestVersionsFromTags_DeduplicatesByValue(t *testing.T) {
	got := domain.VersionsFromTags([]string{"1.2", "1.2.0", "1.3", "1.2.0.0"})

	require.Len(t, got, 2)
	assert.Equal(t, "1.2", got[0].String())
	assert.Equal(t, "1.3", got[1].String())
}
