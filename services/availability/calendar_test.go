package availability

import (
	"testing"
	"time"
	_ "time/tzdata"
)

func chicago(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func defaultCalendar(t *testing.T) *Calendar {
	t.Helper()
	cal, err := NewCalendar(chicago(t), DefaultWeeklyHours())
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	return cal
}

func TestOperatingWindow_WeekdayPolicy(t *testing.T) {
	cal := defaultCalendar(t)

	tests := []struct {
		date      string
		wantOpen  string
		wantClose string
	}{
		{"2026-10-19", "15:00", "20:00"}, // Monday
		{"2026-10-22", "15:00", "20:00"}, // Thursday
		{"2026-10-23", "08:00", "20:00"}, // Friday
		{"2026-10-24", "08:00", "20:00"}, // Saturday
		{"2026-10-25", "08:00", "20:00"}, // Sunday
	}
	for _, tt := range tests {
		day, err := cal.ParseDate(tt.date)
		if err != nil {
			t.Fatalf("%s: parse: %v", tt.date, err)
		}
		w, ok := cal.OperatingWindow(day)
		if !ok {
			t.Fatalf("%s: expected open day", tt.date)
		}
		if got := w.Open.Format(ClockLayout); got != tt.wantOpen {
			t.Fatalf("%s: open = %s, want %s", tt.date, got, tt.wantOpen)
		}
		if got := w.Close.Format(ClockLayout); got != tt.wantClose {
			t.Fatalf("%s: close = %s, want %s", tt.date, got, tt.wantClose)
		}
		if w.Open.Location() != cal.Location() {
			t.Fatalf("%s: window not in business timezone", tt.date)
		}
	}
}

func TestOperatingWindow_IgnoresCallerTimezone(t *testing.T) {
	cal := defaultCalendar(t)
	// 2026-10-20 03:00 in UTC is still Monday evening in Chicago.
	w, ok := cal.OperatingWindow(time.Date(2026, 10, 20, 3, 0, 0, 0, time.UTC))
	if !ok {
		t.Fatal("expected open day")
	}
	if w.Open.Weekday() != time.Monday || w.Open.Format(ClockLayout) != "15:00" {
		t.Fatalf("unexpected window open %s", w.Open)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	cal := defaultCalendar(t)
	for _, in := range []string{"", "2026-13-01", "2026-02-30", "19/10/2026", "tomorrow"} {
		if _, err := cal.ParseDate(in); KindOf(err) != KindInvalidDate {
			t.Fatalf("ParseDate(%q): expected InvalidDate, got %v", in, err)
		}
	}
}

func TestParseWeeklyHours(t *testing.T) {
	var spec [7]string
	spec[time.Monday] = "09:30-17:00"
	spec[time.Sunday] = "closed"

	hours, err := ParseWeeklyHours(spec)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if hours[time.Sunday] != nil {
		t.Fatal("expected Sunday closed")
	}
	if got := *hours[time.Monday]; got.Open != 9*60+30 || got.Close != 17*60 {
		t.Fatalf("unexpected Monday hours %+v", got)
	}
	if got := *hours[time.Friday]; got.Open != 8*60 {
		t.Fatalf("expected Friday default, got %+v", got)
	}

	bad := [7]string{time.Tuesday: "20:00-15:00"}
	if _, err := ParseWeeklyHours(bad); err == nil {
		t.Fatal("expected error for open after close")
	}
	malformed := [7]string{time.Tuesday: "noon"}
	if _, err := ParseWeeklyHours(malformed); err == nil {
		t.Fatal("expected error for malformed hours")
	}
}

func TestCalendar_ClosedDay(t *testing.T) {
	hours := DefaultWeeklyHours()
	hours[time.Sunday] = nil
	cal, err := NewCalendar(chicago(t), hours)
	if err != nil {
		t.Fatalf("new calendar: %v", err)
	}
	day, _ := cal.ParseDate("2026-10-25")
	if _, ok := cal.OperatingWindow(day); ok {
		t.Fatal("expected Sunday closed")
	}
}

func TestParseClock(t *testing.T) {
	tests := map[string]int{
		"15:00":    15 * 60,
		"3:00 PM":  15 * 60,
		"3:45pm":   15*60 + 45,
		"8:00 AM":  8 * 60,
		"12:15 AM": 15,
	}
	for in, want := range tests {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %d, want %d", in, got, want)
		}
	}
	if _, err := ParseClock("25:00"); err == nil {
		t.Fatal("expected error for 25:00")
	}
	if got := FormatClock(15*60 + 5); got != "15:05" {
		t.Fatalf("FormatClock = %s", got)
	}
}
