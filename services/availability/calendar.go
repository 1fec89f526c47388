package availability

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the calendar date format used on the wire and in storage.
	DateLayout = "2006-01-02"
	// ClockLayout is the canonical stored wall-clock format.
	ClockLayout = "15:04"
	// LabelLayout is the display format of a candidate slot.
	LabelLayout = "3:04 PM"

	minutesPerDay = 24 * 60
)

// DayHours is one weekday's opening hours in minutes from midnight.
type DayHours struct {
	Open  int
	Close int
}

// WeeklyHours is indexed by time.Weekday. A nil entry means closed.
type WeeklyHours [7]*DayHours

// OperatingWindow is the bookable range of one calendar date.
type OperatingWindow struct {
	Open  time.Time
	Close time.Time
}

// DefaultWeeklyHours is Mon-Thu 15:00-20:00 and Fri-Sun 08:00-20:00.
func DefaultWeeklyHours() WeeklyHours {
	afternoon := func() *DayHours { return &DayHours{Open: 15 * 60, Close: 20 * 60} }
	allDay := func() *DayHours { return &DayHours{Open: 8 * 60, Close: 20 * 60} }
	return WeeklyHours{
		time.Sunday:    allDay(),
		time.Monday:    afternoon(),
		time.Tuesday:   afternoon(),
		time.Wednesday: afternoon(),
		time.Thursday:  afternoon(),
		time.Friday:    allDay(),
		time.Saturday:  allDay(),
	}
}

// ParseWeeklyHours reads seven "HH:MM-HH:MM" or "closed" entries indexed by
// time.Weekday. Empty entries fall back to the default for that day.
func ParseWeeklyHours(spec [7]string) (WeeklyHours, error) {
	hours := DefaultWeeklyHours()
	for day, raw := range spec {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.EqualFold(raw, "closed") {
			hours[day] = nil
			continue
		}
		openRaw, closeRaw, ok := strings.Cut(raw, "-")
		if !ok {
			return WeeklyHours{}, fmt.Errorf("%s hours %q: expected HH:MM-HH:MM", time.Weekday(day), raw)
		}
		o, err := ParseClock(openRaw)
		if err != nil {
			return WeeklyHours{}, fmt.Errorf("%s opening time: %w", time.Weekday(day), err)
		}
		c, err := ParseClock(closeRaw)
		if err != nil {
			return WeeklyHours{}, fmt.Errorf("%s closing time: %w", time.Weekday(day), err)
		}
		hours[day] = &DayHours{Open: o, Close: c}
	}
	if err := hours.Validate(); err != nil {
		return WeeklyHours{}, err
	}
	return hours, nil
}

// Validate checks that every open day opens strictly before it closes.
func (w WeeklyHours) Validate() error {
	for day, h := range w {
		if h == nil {
			continue
		}
		if h.Open < 0 || h.Close > minutesPerDay || h.Open >= h.Close {
			return fmt.Errorf("%s: opening time must be before closing time", time.Weekday(day))
		}
	}
	return nil
}

// ParseClock parses "15:04", "3:04 PM" or "3:04PM" into minutes from midnight.
func ParseClock(value string) (int, error) {
	v := strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range []string{ClockLayout, LabelLayout, "3:04PM"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unrecognised time %q", value)
}

// FormatClock renders minutes from midnight in ClockLayout.
func FormatClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// Calendar maps calendar dates to operating windows in one location.
type Calendar struct {
	loc   *time.Location
	hours WeeklyHours
}

// NewCalendar copies hours so later changes by the caller have no effect.
func NewCalendar(loc *time.Location, hours WeeklyHours) (*Calendar, error) {
	if loc == nil {
		return nil, fmt.Errorf("calendar: location is required")
	}
	if err := hours.Validate(); err != nil {
		return nil, fmt.Errorf("calendar: %w", err)
	}
	var copied WeeklyHours
	for i, h := range hours {
		if h != nil {
			d := *h
			copied[i] = &d
		}
	}
	return &Calendar{loc: loc, hours: copied}, nil
}

// Location returns the configured business timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// ParseDate returns midnight of the given ISO date in the business timezone.
func (c *Calendar) ParseDate(date string) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, strings.TrimSpace(date), c.loc)
	if err != nil {
		return time.Time{}, invalidDateError(date, err)
	}
	return day, nil
}

// At returns the instant of a wall-clock minute on day, in the business timezone.
func (c *Calendar) At(day time.Time, minute int) time.Time {
	d := day.In(c.loc)
	return time.Date(d.Year(), d.Month(), d.Day(), minute/60, minute%60, 0, 0, c.loc)
}

// OperatingWindow returns the window for day, or false when the business is closed.
func (c *Calendar) OperatingWindow(day time.Time) (OperatingWindow, bool) {
	d := day.In(c.loc)
	h := c.hours[d.Weekday()]
	if h == nil {
		return OperatingWindow{}, false
	}
	return OperatingWindow{Open: c.At(d, h.Open), Close: c.At(d, h.Close)}, true
}

// IsSameDay reports whether two instants fall on the same business date.
func (c *Calendar) IsSameDay(a, b time.Time) bool {
	return a.In(c.loc).Format(DateLayout) == b.In(c.loc).Format(DateLayout)
}
