package weekrange

import (
	"errors"
	"testing"
)

func TestParseSet(t *testing.T) {
	set, err := ParseSet("Mon 09:00 - 18:00, Tue 09:00 - 18:00")
	if err != nil {
		t.Fatalf("ParseSet failed: %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}

	ranges := set.Ranges()
	if got, want := ranges[0].String(), "Mon 09:00 - Mon 18:00"; got != want {
		t.Errorf("first range = %q, want %q", got, want)
	}
	if got, want := ranges[1].String(), "Tue 09:00 - Tue 18:00"; got != want {
		t.Errorf("second range = %q, want %q", got, want)
	}

	// Tuesday 10:00 matches the second range, not the first.
	matched, ok := set.FirstMatch(at(2, 10, 0))
	if !ok {
		t.Fatal("expected a match at Tuesday 10:00")
	}
	if got, want := matched.String(), "Tue 09:00 - Tue 18:00"; got != want {
		t.Errorf("FirstMatch returned %q, want %q", got, want)
	}
}

func TestParseSetSkipsEmptySegments(t *testing.T) {
	set, err := ParseSet(", Mon 09:00 - 18:00,, Tue 09:00 - 18:00, ")
	if err != nil {
		t.Fatalf("ParseSet failed: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
}

func TestParseSetAbortsOnFirstBadSegment(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want error
	}{
		{"bad format", "Mon 09:00 - 18:00, nonsense", ErrBadFormat},
		{"bad day", "Xyz 09:00 - 18:00, Mon 09:00 - 18:00", ErrInvalidDay},
		{"zero length", "Mon 09:00 - 18:00, 12:00 - 12:00", ErrRangeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := ParseSet(tt.spec)
			if err == nil {
				t.Fatalf("ParseSet(%q) succeeded, want error", tt.spec)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
			if set.Len() != 0 {
				t.Errorf("partial set returned with %d ranges", set.Len())
			}
		})
	}
}

func TestFirstMatchOrdering(t *testing.T) {
	// Both ranges contain Wednesday 12:00; insertion order decides.
	wide := mustParse(t, "Mon 00:00 - Sat 23:59")
	narrow := mustParse(t, "Wed 09:00 - Wed 18:00")
	instant := at(3, 12, 0)

	got, ok := NewSet(wide, narrow).FirstMatch(instant)
	if !ok || got != wide {
		t.Errorf("FirstMatch on [wide, narrow] = %v, want the wide range", got)
	}

	got, ok = NewSet(narrow, wide).FirstMatch(instant)
	if !ok || got != narrow {
		t.Errorf("FirstMatch on [narrow, wide] = %v, want the narrow range", got)
	}
}

func TestFirstMatchNoMatch(t *testing.T) {
	set, err := ParseSet("Mon 09:00 - 18:00")
	if err != nil {
		t.Fatalf("ParseSet failed: %v", err)
	}
	if _, ok := set.FirstMatch(at(0, 12, 0)); ok {
		t.Error("Sunday noon should not match a Monday-only set")
	}
	if set.Intersects(at(0, 12, 0)) {
		t.Error("Intersects should agree with FirstMatch")
	}
}

func TestParseSetFunc(t *testing.T) {
	calls := 0
	parse := func(s string) (Range, error) {
		calls++
		return Parse(s)
	}

	set, err := ParseSetFunc("Mon 09:00 - 18:00, Tue 09:00 - 18:00", parse)
	if err != nil {
		t.Fatalf("ParseSetFunc failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("segment parser called %d times, want 2", calls)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
}

func TestSetString(t *testing.T) {
	set, err := ParseSet("mon 9:00 - 18:00, 22:00 - 06:00")
	if err != nil {
		t.Fatalf("ParseSet failed: %v", err)
	}
	want := "Mon 09:00 - Mon 18:00, 22:00 - 06:00"
	if got := set.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
