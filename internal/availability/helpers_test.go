package availability

import (
	"testing"
	"time"
)

var testDay = time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)

// at returns the test day at the given HH:MM.
func at(t *testing.T, clock string) time.Time {
	t.Helper()
	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	return testDay.Add(time.Duration(c.Hour())*time.Hour + time.Duration(c.Minute())*time.Minute)
}

func span(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: at(t, start), End: at(t, end)}
}

func starts(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Start.Format(ClockLayout)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
