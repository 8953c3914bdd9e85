package weekrange

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Weekday numbering follows time.Weekday: Sunday=0 through Saturday=6.

var (
	abbrevOnce sync.Once
	abbrevs    [7]string // lowercase three-letter forms, Sunday first
)

// weekdayAbbrevs returns the lowercase three-letter weekday
// abbreviations, Sunday first. Computed once per process; read-only
// afterwards.
func weekdayAbbrevs() [7]string {
	abbrevOnce.Do(func() {
		for i := range abbrevs {
			abbrevs[i] = strings.ToLower(time.Weekday(i).String()[:3])
		}
	})
	return abbrevs
}

// WeekdayNames returns the Sunday-first list of full weekday names used
// for day resolution and rendering.
func WeekdayNames() [7]string {
	var names [7]string
	for i := range names {
		names[i] = time.Weekday(i).String()
	}
	return names
}

// dayAbbrev renders a weekday number as its capitalized three-letter
// abbreviation ("Mon", "Tue", ...).
func dayAbbrev(day int) string {
	return time.Weekday(day).String()[:3]
}

// ParseDay converts a weekday token to its number, Sunday=0 through
// Saturday=6. The token may be a digit string ("0".."6") or a weekday
// name of at least three letters; names are matched case-insensitively
// on their first three letters.
func ParseDay(token string) (int, error) {
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("%w: %q is not in 0 (Sunday) .. 6 (Saturday)", ErrInvalidDay, token)
		}
		return n, nil
	}

	lowered := strings.ToLower(token)
	if len(lowered) > 3 {
		lowered = lowered[:3]
	}
	for i, abbrev := range weekdayAbbrevs() {
		if lowered == abbrev {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (use a number 0-6, Sunday first, or a three-letter abbreviation like %q)",
		ErrInvalidDay, token, dayAbbrev(1))
}
