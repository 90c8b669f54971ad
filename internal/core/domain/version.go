package domain

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// versionPattern accepts a leading number followed by dot separated
// alphanumeric parts, with an optional hyphenated prerelease suffix.
var versionPattern = regexp.MustCompile(`^[0-9]+(\.[0-9A-Za-z]+)*(-[0-9A-Za-z-]+(\.[0-9A-Za-z-]+)*)?$`)

// segmentPattern splits a version into runs of digits or runs of letters.
var segmentPattern = regexp.MustCompile(`[0-9]+|[A-Za-z]+`)

// Segment is one component of a Version: either a non-negative integer or a
// token of letters marking a prerelease.
type Segment struct {
	num   uint64
	token string
}

// IsToken reports whether the segment is a prerelease token.
func (s Segment) IsToken() bool {
	return s.token != ""
}

func (s Segment) String() string {
	if s.IsToken() {
		return s.token
	}
	return strconv.FormatUint(s.num, 10)
}

// compareSegments orders integers numerically, tokens lexicographically,
// and any token below any integer.
func compareSegments(a, b Segment) int {
	switch {
	case a.IsToken() && b.IsToken():
		return strings.Compare(a.token, b.token)
	case a.IsToken():
		return -1
	case b.IsToken():
		return 1
	case a.num < b.num:
		return -1
	case a.num > b.num:
		return 1
	default:
		return 0
	}
}

// Version is an ordered, immutable version parsed from a tag or a
// constraint bound. The zero value is the absent version.
type Version struct {
	raw      string
	segments []Segment
}

// ParseVersion parses s into a Version.
// Strings without a leading numeric segment are rejected with ErrInvalidVersionFormat.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if !versionPattern.MatchString(trimmed) {
		return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersionFormat, "parse version"), "version", s)
	}

	// A hyphenated suffix is a prerelease: "1.0-rc1" orders like "1.0.pre.rc1".
	normalized := strings.ReplaceAll(trimmed, "-", ".pre.")

	parts := segmentPattern.FindAllString(normalized, -1)
	segments := make([]Segment, 0, len(parts))
	for _, part := range parts {
		if part[0] >= '0' && part[0] <= '9' {
			n, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return Version{}, zerr.With(zerr.Wrap(ErrInvalidVersionFormat, "version segment out of range"), "version", s)
			}
			segments = append(segments, Segment{num: n})
			continue
		}
		segments = append(segments, Segment{token: part})
	}

	return Version{raw: trimmed, segments: segments}, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
// It is intended for literals in tests and tables.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// IsZero reports whether v is the absent version.
func (v Version) IsZero() bool {
	return len(v.segments) == 0
}

// String returns the text the version was parsed from.
func (v Version) String() string {
	return v.raw
}

// Segments returns a copy of the parsed segments.
func (v Version) Segments() []Segment {
	out := make([]Segment, len(v.segments))
	copy(out, v.segments)
	return out
}

// segment returns the i-th segment, padding with zero past the end.
func (v Version) segment(i int) Segment {
	if i < len(v.segments) {
		return v.segments[i]
	}
	return Segment{}
}

// Compare returns -1, 0 or +1 when v is less than, equal to or greater than other.
// The shorter side is padded with zeros, so "1.2" equals "1.2.0" while
// "1.2.0a" sorts below "1.2.0".
func (v Version) Compare(other Version) int {
	n := max(len(v.segments), len(other.segments))
	for i := range n {
		if c := compareSegments(v.segment(i), other.segment(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether v and other compare equal.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// release returns the leading segments before the first token.
func (v Version) release() []Segment {
	for i, s := range v.segments {
		if s.IsToken() {
			return v.segments[:i]
		}
	}
	return v.segments
}
