package availability

import "time"

// DefaultGranularity is the step between candidate start times.
const DefaultGranularity = 15 * time.Minute

// CandidateSlot is a potential appointment start.
type CandidateSlot struct {
	Start time.Time `json:"start"`
	Label string    `json:"label"`
}

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects the interval.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return start.Before(iv.End) && end.After(iv.Start)
}

// GenerateCandidates walks the window from Open in granularity steps and keeps
// every start s with s+duration <= Close. Labels are rendered in the window's
// location.
func GenerateCandidates(window OperatingWindow, duration, granularity time.Duration) []CandidateSlot {
	if duration <= 0 || granularity <= 0 || !window.Open.Before(window.Close) {
		return nil
	}

	loc := window.Open.Location()
	var slots []CandidateSlot
	for s := window.Open; !s.Add(duration).After(window.Close); s = s.Add(granularity) {
		slots = append(slots, CandidateSlot{
			Start: s,
			Label: s.In(loc).Format(LabelLayout),
		})
	}
	return slots
}

// Labels returns the display labels of slots, in order.
func Labels(slots []CandidateSlot) []string {
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.Label)
	}
	return labels
}
