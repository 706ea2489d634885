package availability

import (
	"time"
)

var clockLayouts = []string{"15:04:05", "15:04"}

// dayBucket collects one date's parsed intervals.
type dayBucket struct {
	date time.Time
	free []Interval
	busy []Interval
}

// ComputeAvailability groups events by date and returns the slots of each date
// that has free time left after busy time is removed. Dates appear in the
// order their first free event appears in events; dates without slots are
// omitted. A single malformed event fails the whole computation.
func ComputeAvailability(events []CalendarEvent, duration time.Duration) ([]DailyAvailability, error) {
	if err := CheckDuration(duration); err != nil {
		return nil, err
	}

	buckets := make(map[string]*dayBucket)
	var freeDates []string

	for _, event := range events {
		day, interval, err := parseEvent(event)
		if err != nil {
			return nil, err
		}

		key := day.Format(DateLayout)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &dayBucket{date: day}
			buckets[key] = bucket
		}

		if event.Category.IsFree() {
			if len(bucket.free) == 0 {
				freeDates = append(freeDates, key)
			}
			bucket.free = append(bucket.free, interval)
		} else {
			bucket.busy = append(bucket.busy, interval)
		}
	}

	result := make([]DailyAvailability, 0, len(freeDates))
	for _, key := range freeDates {
		bucket := buckets[key]
		busy := Merge(bucket.busy)

		var slots []Slot
		for _, free := range bucket.free {
			slots = append(slots, GenerateSlots(free, busy, duration)...)
		}

		if len(slots) > 0 {
			result = append(result, DailyAvailability{Date: bucket.date, Slots: slots})
		}
	}

	return result, nil
}

func parseEvent(event CalendarEvent) (time.Time, Interval, error) {
	day, err := time.Parse(DateLayout, event.Date)
	if err != nil {
		return time.Time{}, Interval{}, integrityError(event, "invalid event date format")
	}

	start, okStart := parseClock(day, event.StartTime)
	end, okEnd := parseClock(day, event.EndTime)
	if !okStart || !okEnd {
		return time.Time{}, Interval{}, integrityError(event, "invalid event time format for date")
	}

	if !start.Before(end) {
		return time.Time{}, Interval{}, integrityError(event, "event has non-positive duration")
	}

	return day, Interval{Start: start, End: end}, nil
}

// parseClock places a time of day on day.
func parseClock(day time.Time, clock string) (time.Time, bool) {
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, clock)
		if err != nil {
			continue
		}
		return day.Add(time.Duration(t.Hour())*time.Hour +
			time.Duration(t.Minute())*time.Minute +
			time.Duration(t.Second())*time.Second), true
	}
	return time.Time{}, false
}

func integrityError(event CalendarEvent, reason string) error {
	return &DataIntegrityError{
		Date:      event.Date,
		StartTime: event.StartTime,
		EndTime:   event.EndTime,
		Reason:    reason,
	}
}
