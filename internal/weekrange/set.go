package weekrange

import (
	"strings"
	"time"
)

// RangeSet is an ordered collection of ranges. Order is significant:
// FirstMatch returns the earliest listed range that matches. Like Range,
// a RangeSet is read-only after construction.
type RangeSet struct {
	ranges []Range
}

// ParseFunc builds one Range from a single segment of a set
// specification. ParseSetFunc callers can substitute their own.
type ParseFunc func(string) (Range, error)

// NewSet builds a set from already-constructed ranges, preserving order.
func NewSet(ranges ...Range) RangeSet {
	rs := make([]Range, len(ranges))
	copy(rs, ranges)
	return RangeSet{ranges: rs}
}

// ParseSet builds a set from a comma-separated list of range
// expressions, e.g. "Mon 09:00 - 18:00, Tue 09:00 - 18:00". Empty
// segments are skipped; the first malformed segment aborts the whole
// parse with its error.
func ParseSet(s string) (RangeSet, error) {
	return ParseSetFunc(s, Parse)
}

// ParseSetFunc is ParseSet with a caller-supplied segment parser.
func ParseSetFunc(s string, parse ParseFunc) (RangeSet, error) {
	var set RangeSet
	for _, segment := range strings.Split(s, ",") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		r, err := parse(segment)
		if err != nil {
			return RangeSet{}, err
		}
		set.ranges = append(set.ranges, r)
	}
	return set, nil
}

// FirstMatch scans the set in order and returns the first range that
// contains t. The second return is false when no range matches.
func (s RangeSet) FirstMatch(t time.Time) (Range, bool) {
	for _, r := range s.ranges {
		if r.Intersects(t) {
			return r, true
		}
	}
	return Range{}, false
}

// Intersects reports whether any range in the set contains t.
func (s RangeSet) Intersects(t time.Time) bool {
	_, ok := s.FirstMatch(t)
	return ok
}

// Len returns the number of ranges in the set.
func (s RangeSet) Len() int { return len(s.ranges) }

// Ranges returns a copy of the member ranges in order.
func (s RangeSet) Ranges() []Range {
	out := make([]Range, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// String renders the set as a comma-separated list of its members.
func (s RangeSet) String() string {
	parts := make([]string, len(s.ranges))
	for i, r := range s.ranges {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}
