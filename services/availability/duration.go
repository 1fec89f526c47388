package availability

// DurationLookup answers per-service durations in minutes.
type DurationLookup interface {
	Duration(serviceID string) (minutes int, ok bool)
}

// DurationTable is a snapshot of the service catalog keyed by service ID.
type DurationTable map[string]int

// Duration implements DurationLookup.
func (t DurationTable) Duration(serviceID string) (int, bool) {
	m, ok := t[serviceID]
	return m, ok
}

// ResolveDuration sums the durations of serviceIDs. It stops at the first ID
// the lookup cannot resolve. An empty list resolves to 0.
func ResolveDuration(serviceIDs []string, lookup DurationLookup) (int, error) {
	total := 0
	for _, id := range serviceIDs {
		minutes, ok := lookup.Duration(id)
		if !ok {
			return 0, serviceNotFoundError(id)
		}
		if minutes <= 0 {
			return 0, validationError("service %s has a non-positive duration", id)
		}
		total += minutes
	}
	return total, nil
}
