package availability

import "time"

// GenerateSlots subtracts busy time from a free interval and splits what is
// left into back-to-back slots of the given duration. busy must already be
// merged and sorted (see Merge). A trailing remainder shorter than duration
// is dropped.
func GenerateSlots(free Interval, busy []Interval, duration time.Duration) []Slot {
	if free.IsEmpty() || duration <= 0 {
		return nil
	}

	var slots []Slot
	remaining := free
	for _, b := range busy {
		if !b.Start.Before(remaining.End) || !b.End.After(remaining.Start) {
			continue
		}

		slots = append(slots, fill(Interval{Start: remaining.Start, End: b.Start}, duration)...)
		remaining = remaining.withStartAtLeast(b.End)
		if remaining.IsEmpty() {
			return slots
		}
	}

	return append(slots, fill(remaining, duration)...)
}

// fill tiles span with whole slots starting at span.Start.
func fill(span Interval, duration time.Duration) []Slot {
	if span.IsEmpty() {
		return nil
	}

	var slots []Slot
	for current := span.Start; !current.Add(duration).After(span.End); current = current.Add(duration) {
		slots = append(slots, Slot{Start: current, End: current.Add(duration)})
	}
	return slots
}
