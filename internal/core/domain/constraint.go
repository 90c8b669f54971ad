package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Operator is the comparison applied by a VersionConstraint.
type Operator string

const (
	// OpEqual matches exactly the bound.
	OpEqual Operator = "="
	// OpNotEqual matches everything but the bound.
	OpNotEqual Operator = "!="
	// OpGreater matches versions above the bound.
	OpGreater Operator = ">"
	// OpLess matches versions below the bound.
	OpLess Operator = "<"
	// OpGreaterEqual matches the bound and above.
	OpGreaterEqual Operator = ">="
	// OpLessEqual matches the bound and below.
	OpLessEqual Operator = "<="
	// OpPessimistic matches the bound and above while the leading release
	// segments of the bound stay fixed.
	OpPessimistic Operator = "~>"
)

// operators is ordered so that two-character operators are tried first.
var operators = []Operator{OpPessimistic, OpGreaterEqual, OpLessEqual, OpNotEqual, OpGreater, OpLess, OpEqual}

// VersionConstraint is a single operator applied to a bound Version.
type VersionConstraint struct {
	op    Operator
	bound Version
}

// AnyVersion is the constraint used when a declaration names no version.
const AnyVersion = ">= 0"

// ParseConstraint parses "<op> <version>". The operator is required.
func ParseConstraint(s string) (VersionConstraint, error) {
	text := strings.TrimSpace(s)
	for _, op := range operators {
		rest, found := strings.CutPrefix(text, string(op))
		if !found {
			continue
		}
		bound, err := ParseVersion(strings.TrimSpace(rest))
		if err != nil {
			break
		}
		return VersionConstraint{op: op, bound: bound}, nil
	}
	return VersionConstraint{}, zerr.With(zerr.Wrap(ErrInvalidConstraintFormat, "parse constraint"), "constraint", s)
}

// MustParseConstraint is like ParseConstraint but panics on malformed input.
func MustParseConstraint(s string) VersionConstraint {
	c, err := ParseConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Operator returns the comparison operator.
func (c VersionConstraint) Operator() Operator {
	return c.op
}

// Bound returns the bound version.
func (c VersionConstraint) Bound() Version {
	return c.bound
}

// IsZero reports whether c was never parsed.
func (c VersionConstraint) IsZero() bool {
	return c.op == "" && c.bound.IsZero()
}

// String renders the constraint in canonical "<op> <version>" form.
func (c VersionConstraint) String() string {
	if c.IsZero() {
		return ""
	}
	return string(c.op) + " " + c.bound.String()
}

// Equal reports whether both constraints have the same operator and an equal bound.
// Formatting differences such as whitespace do not matter.
func (c VersionConstraint) Equal(other VersionConstraint) bool {
	return c.op == other.op && c.bound.Equal(other.bound)
}

// SatisfiedBy reports whether v meets the constraint.
func (c VersionConstraint) SatisfiedBy(v Version) bool {
	cmp := v.Compare(c.bound)
	switch c.op {
	case OpEqual:
		return cmp == 0
	case OpNotEqual:
		return cmp != 0
	case OpGreater:
		return cmp > 0
	case OpLess:
		return cmp < 0
	case OpGreaterEqual:
		return cmp >= 0
	case OpLessEqual:
		return cmp <= 0
	case OpPessimistic:
		return cmp >= 0 && c.sharesPessimisticPrefix(v)
	default:
		return false
	}
}

// sharesPessimisticPrefix checks that v starts with the release segments of
// the bound minus the last one. A single-segment bound pins that segment.
func (c VersionConstraint) sharesPessimisticPrefix(v Version) bool {
	prefix := c.bound.release()
	if len(prefix) > 1 {
		prefix = prefix[:len(prefix)-1]
	}
	for i, s := range prefix {
		if compareSegments(v.segment(i), s) != 0 {
			return false
		}
	}
	return true
}
