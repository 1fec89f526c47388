package availability

import (
	"time"

	"chairbook/models"
)

// AppointmentInterval resolves one appointment to its busy interval on day.
func AppointmentInterval(cal *Calendar, day time.Time, appt models.Appointment, lookup DurationLookup) (Interval, error) {
	if len(appt.Services) == 0 {
		return Interval{}, validationError("appointment %s has no services", appt.ID)
	}
	minute, err := ParseClock(appt.Time)
	if err != nil {
		return Interval{}, invalidDateError(appt.Time, err)
	}
	total, err := ResolveDuration(appt.Services, lookup)
	if err != nil {
		return Interval{}, err
	}
	start := cal.At(day, minute)
	return Interval{Start: start, End: start.Add(time.Duration(total) * time.Minute)}, nil
}

// BuildOccupancy converts the appointments booked on day into busy intervals.
// Appointments on other dates are ignored. Any appointment that cannot be
// resolved fails the whole build rather than being dropped.
func BuildOccupancy(cal *Calendar, day time.Time, appts []models.Appointment, lookup DurationLookup) ([]Interval, error) {
	date := day.In(cal.Location()).Format(DateLayout)
	busy := make([]Interval, 0, len(appts))
	for _, appt := range appts {
		if appt.Date != date {
			continue
		}
		iv, err := AppointmentInterval(cal, day, appt, lookup)
		if err != nil {
			return nil, err
		}
		busy = append(busy, iv)
	}
	return busy, nil
}
