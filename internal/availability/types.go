package availability

import "time"

const (
	// DateLayout is the calendar date format used by events and requests.
	DateLayout = "2006-01-02"
	// ClockLayout is the time-of-day format slots are rendered with.
	ClockLayout = "15:04"

	DefaultDurationMinutes = 15
	MinDurationMinutes     = 15
	DurationStepMinutes    = 5
)

// Category classifies a calendar entry. Only CategoryFree opens time for
// booking; every other value occupies time.
type Category int

const CategoryFree Category = 2

func (c Category) IsFree() bool {
	return c == CategoryFree
}

// CalendarEvent is a raw calendar row as read from storage.
type CalendarEvent struct {
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM[:SS]
	EndTime   string // HH:MM[:SS]
	Category  Category
}

// Interval is a half-open span of time [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

func (i Interval) IsEmpty() bool {
	return !i.Start.Before(i.End)
}

// withStartAtLeast returns the interval with its start moved forward to t.
// A t before the current start leaves the interval unchanged.
func (i Interval) withStartAtLeast(t time.Time) Interval {
	if t.After(i.Start) {
		return Interval{Start: t, End: i.End}
	}
	return i
}

// Slot is a bookable span of exactly one slot duration.
type Slot struct {
	Start time.Time
	End   time.Time
}

// DailyAvailability holds the slots found on one calendar date.
type DailyAvailability struct {
	Date  time.Time
	Slots []Slot
}

// Request is a validated availability query. Build it with RequestValidator.
type Request struct {
	ProviderID      string
	FacilityID      string
	DateFrom        time.Time
	DateTo          time.Time
	DurationMinutes int
}

func (r *Request) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}
