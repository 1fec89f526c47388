package availability

import "time"

// FilterAvailable drops candidates that start at or before now on the current
// day, or whose [start, start+duration) overlaps a busy interval. Order is kept.
func FilterAvailable(candidates []CandidateSlot, busy []Interval, now time.Time, isToday bool, duration time.Duration) []CandidateSlot {
	available := make([]CandidateSlot, 0, len(candidates))
	for _, c := range candidates {
		if isToday && !c.Start.After(now) {
			continue
		}
		if overlapsAny(c.Start, c.Start.Add(duration), busy) {
			continue
		}
		available = append(available, c)
	}
	return available
}

func overlapsAny(start, end time.Time, busy []Interval) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
