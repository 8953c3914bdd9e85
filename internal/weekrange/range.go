// Package weekrange matches instants against recurring weekly time
// windows, such as "business hours Mon-Fri 09:00-18:00" or a wraparound
// window like "Fri 22:00 - Mon 06:00".
//
// A Range is left-inclusive and right-exclusive: an instant exactly at
// the start boundary is inside the window, one exactly at the end
// boundary is outside. Ranges where the start sorts after the end are
// "outer" ranges: they match everything except the span from end to
// start, which is how wraparound across midnight or across the week
// boundary is expressed.
//
// Ranges are immutable once constructed and safe to share between
// goroutines.
package weekrange

import (
	"errors"
	"fmt"
)

// Errors reported during range construction and parsing.
var (
	// ErrInvalidDay reports a weekday token that cannot be resolved.
	ErrInvalidDay = errors.New("invalid weekday")
	// ErrRangeConfig reports an inconsistent range: asymmetric day
	// specification, a zero-length range, or an out-of-range field.
	ErrRangeConfig = errors.New("invalid range configuration")
	// ErrBadFormat reports text that does not match the range grammar.
	ErrBadFormat = errors.New("malformed range expression")
)

// noDay marks a day-less (time-only) side of a range.
const noDay = -1

// matchKind identifies which comparison law a Range uses. The kind is
// fixed once at construction so Intersects never re-derives the
// topology of the window.
type matchKind uint8

const (
	timeOnlyInner matchKind = iota
	timeOnlyInnerSameHour
	timeOnlyOuter
	timeOnlyOuterSameHour
	inner
	innerSameDay
	innerSameDayHour
	outer
	outerSameDay
	outerSameDayHour
)

// Range is one weekly time window. The zero value is not a valid Range;
// construct one with New or Parse.
type Range struct {
	startDay    int // 0=Sunday..6=Saturday, noDay when day-less
	startHour   int
	startMinute int
	endDay      int
	endHour     int
	endMinute   int
	kind        matchKind
}

// New builds a Range from its fields. Day tokens may be empty (day-less
// side), a digit "0".."6", or a weekday name of three or more letters.
// Both days must be given or both empty, with one exception: the end day
// may be omitted when the end time of day is strictly after the start
// time of day, in which case it defaults to the start day ("Mon 12:00 -
// 18:00" means "Mon 12:00 - Mon 18:00").
func New(startDay string, startHour, startMinute int, endDay string, endHour, endMinute int) (Range, error) {
	r := Range{
		startDay:    noDay,
		startHour:   startHour,
		startMinute: startMinute,
		endDay:      noDay,
		endHour:     endHour,
		endMinute:   endMinute,
	}

	var err error
	if startDay != "" {
		if r.startDay, err = ParseDay(startDay); err != nil {
			return Range{}, err
		}
	}
	if endDay != "" {
		if r.endDay, err = ParseDay(endDay); err != nil {
			return Range{}, err
		}
	}

	if err := checkClock(startHour, startMinute); err != nil {
		return Range{}, err
	}
	if err := checkClock(endHour, endMinute); err != nil {
		return Range{}, err
	}

	if r.endDay == noDay && r.startDay != noDay {
		// Allow ranges like "Mon 12:00 - 18:00", but not "Mon 18:00 - 12:00".
		if r.endHour > r.startHour || (r.endHour == r.startHour && r.endMinute > r.startMinute) {
			r.endDay = r.startDay
		} else {
			return Range{}, fmt.Errorf("%w: start and end day must both be empty or both defined, unless the end time is after the start time on the same day", ErrRangeConfig)
		}
	}
	if r.startDay == noDay && r.endDay != noDay {
		return Range{}, fmt.Errorf("%w: start and end day must both be empty or both defined", ErrRangeConfig)
	}

	kind, err := classify(r)
	if err != nil {
		return Range{}, err
	}
	r.kind = kind
	return r, nil
}

// checkClock rejects out-of-range clock fields. The grammar only
// constrains digit count, so "25:00" reaches this check.
func checkClock(hour, minute int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("%w: hour %d is not in 0..23", ErrRangeConfig, hour)
	}
	if minute < 0 || minute > 59 {
		return fmt.Errorf("%w: minute %d is not in 0..59", ErrRangeConfig, minute)
	}
	return nil
}

// classify picks the comparison law for a resolved range. Exactly one
// of the ten cases applies; identical start and end is the only
// rejected configuration left at this point.
func classify(r Range) (matchKind, error) {
	if r.startDay == noDay {
		switch {
		case r.startHour > r.endHour:
			return timeOnlyOuter, nil
		case r.startHour == r.endHour:
			switch {
			case r.startMinute > r.endMinute:
				return timeOnlyOuterSameHour, nil
			case r.startMinute == r.endMinute:
				return 0, fmt.Errorf("%w: start and end time cannot be the same", ErrRangeConfig)
			default:
				return timeOnlyInnerSameHour, nil
			}
		default:
			return timeOnlyInner, nil
		}
	}

	switch {
	case r.startDay > r.endDay:
		return outer, nil
	case r.startDay == r.endDay:
		switch {
		case r.startHour > r.endHour:
			return outerSameDay, nil
		case r.startHour == r.endHour:
			switch {
			case r.startMinute > r.endMinute:
				return outerSameDayHour, nil
			case r.startMinute == r.endMinute:
				return 0, fmt.Errorf("%w: start and end time cannot be the same", ErrRangeConfig)
			default:
				return innerSameDayHour, nil
			}
		default:
			return innerSameDay, nil
		}
	default:
		return inner, nil
	}
}

// String renders the range canonically: "HH:MM - HH:MM" when day-less,
// "Mon 09:00 - Mon 18:00" when day-bound. An implicitly defaulted end
// day renders explicitly.
func (r Range) String() string {
	if r.startDay == noDay {
		return fmt.Sprintf("%02d:%02d - %02d:%02d", r.startHour, r.startMinute, r.endHour, r.endMinute)
	}
	return fmt.Sprintf("%s %02d:%02d - %s %02d:%02d",
		dayAbbrev(r.startDay), r.startHour, r.startMinute,
		dayAbbrev(r.endDay), r.endHour, r.endMinute)
}
