package weekrange

import "time"

// Intersects reports whether t falls inside the range. Only the weekday,
// hour and minute of t are considered, exactly as given; no timezone
// conversion is performed.
func (r Range) Intersects(t time.Time) bool {
	return r.intersects(int(t.Weekday()), t.Hour(), t.Minute())
}

// intersects dispatches to the comparison law selected at construction.
// Each law implements left-inclusive, right-exclusive semantics for its
// topology; the outer laws are the complements of the inner law over the
// same boundary points.
func (r Range) intersects(day, hour, minute int) bool {
	switch r.kind {
	case timeOnlyInnerSameHour:
		return hour == r.startHour && minute >= r.startMinute && minute < r.endMinute

	case timeOnlyOuterSameHour:
		// Complement: outside the excluded span [end, start) of the
		// start hour.
		return !(hour == r.startHour && minute >= r.endMinute && minute < r.startMinute)

	case timeOnlyInner:
		switch {
		case hour == r.startHour:
			return minute >= r.startMinute
		case hour == r.endHour:
			return minute < r.endMinute
		default:
			return hour > r.startHour && hour < r.endHour
		}

	case timeOnlyOuter:
		switch {
		case hour == r.startHour:
			return minute >= r.startMinute
		case hour == r.endHour:
			return minute < r.endMinute
		default:
			return hour > r.startHour || hour < r.endHour
		}

	case inner:
		switch {
		case day < r.startDay || day > r.endDay:
			return false
		case day == r.startDay:
			return hour > r.startHour || (hour == r.startHour && minute >= r.startMinute)
		case day == r.endDay:
			return hour < r.endHour || (hour == r.endHour && minute < r.endMinute)
		default:
			return true
		}

	case innerSameDay:
		if day != r.startDay {
			return false
		}
		switch {
		case hour == r.startHour:
			return minute >= r.startMinute
		case hour == r.endHour:
			return minute < r.endMinute
		default:
			return hour > r.startHour && hour < r.endHour
		}

	case innerSameDayHour:
		return day == r.startDay && hour == r.startHour &&
			minute >= r.startMinute && minute < r.endMinute

	case outer:
		switch {
		case day > r.endDay && day < r.startDay:
			return false
		case day == r.startDay:
			return hour > r.startHour || (hour == r.startHour && minute >= r.startMinute)
		case day == r.endDay:
			return hour < r.endHour || (hour == r.endHour && minute < r.endMinute)
		default:
			return true
		}

	case outerSameDay:
		if day != r.startDay {
			return true
		}
		switch {
		case hour == r.startHour:
			return minute >= r.startMinute
		case hour == r.endHour:
			return minute < r.endMinute
		default:
			return hour > r.startHour || hour < r.endHour
		}

	case outerSameDayHour:
		return !(day == r.startDay && hour == r.startHour &&
			minute >= r.endMinute && minute < r.startMinute)

	default:
		return false
	}
}
