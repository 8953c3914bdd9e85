package weekrange

import (
	"fmt"
	"regexp"
	"strconv"
)

// rangeRE is the grammar for a single range expression: an optional
// three-letter weekday, "H:MM" or "HH:MM", a dash, then the same for the
// end side. "Mon 12:00 - Tue 13:00" and "12:00 - 13:00" both match.
var rangeRE = regexp.MustCompile(
	`^\s*(?:([A-Za-z]{3})\s+)?(\d{1,2}):(\d{1,2})\s*-\s*(?:([A-Za-z]{3})\s+)?(\d{1,2}):(\d{1,2})\s*$`)

// Parse builds a Range from a textual expression. The weekday is
// optional on either side, subject to the day rules documented on New.
func Parse(s string) (Range, error) {
	m := rangeRE.FindStringSubmatch(s)
	if m == nil {
		return Range{}, fmt.Errorf("%w: %q (expected \"[Day] HH:MM - [Day] HH:MM\", e.g. \"Mon 12:00 - Tue 12:35\")",
			ErrBadFormat, s)
	}

	// The digit groups always convert; the grammar guarantees 1-2 digits.
	startHour, _ := strconv.Atoi(m[2])
	startMinute, _ := strconv.Atoi(m[3])
	endHour, _ := strconv.Atoi(m[5])
	endMinute, _ := strconv.Atoi(m[6])

	return New(m[1], startHour, startMinute, m[4], endHour, endMinute)
}
