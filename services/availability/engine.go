package availability

import (
	"context"
	"strconv"
	"strings"
	"time"

	"chairbook/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AppointmentSource reads the booked appointments of one calendar date.
type AppointmentSource interface {
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
}

// ServiceCatalog returns the duration in minutes of every known service.
type ServiceCatalog interface {
	ServiceDurations(ctx context.Context) (map[string]int, error)
}

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Query is one availability request.
type Query struct {
	Date            string
	DurationMinutes int
	ServiceIDs      []string
}

// Result holds the bookable slots of a query, in ascending order.
type Result struct {
	Date            string
	DurationMinutes int
	Slots           []CandidateSlot
}

// Engine answers availability queries. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	Calendar     *Calendar
	Appointments AppointmentSource
	Catalog      ServiceCatalog
	Clock        Clock
	Granularity  time.Duration
	Logger       *zap.Logger
}

// ParseDurationParam validates a raw duration request parameter. Empty input
// returns 0 so callers can fall back to service-derived durations.
func ParseDurationParam(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, validationError("duration must be a whole number of minutes")
	}
	if minutes <= 0 {
		return 0, validationError("duration must be positive")
	}
	return minutes, nil
}

func (q Query) validate() error {
	if strings.TrimSpace(q.Date) == "" {
		return validationError("date is required")
	}
	if q.DurationMinutes < 0 {
		return validationError("duration must be positive")
	}
	if q.DurationMinutes == 0 && len(q.ServiceIDs) == 0 {
		return validationError("duration or services is required")
	}
	return nil
}

// Query computes the bookable start times for q. Either the full slot list or
// an *Error is returned, never both.
func (e *Engine) Query(ctx context.Context, q Query) (*Result, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}
	day, err := e.Calendar.ParseDate(q.Date)
	if err != nil {
		return nil, err
	}
	date := day.Format(DateLayout)

	window, open := e.Calendar.OperatingWindow(day)
	if !open && q.DurationMinutes > 0 {
		return &Result{Date: date, DurationMinutes: q.DurationMinutes, Slots: []CandidateSlot{}}, nil
	}

	var (
		appts     []models.Appointment
		durations map[string]int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		appts, err = e.Appointments.ListByDate(gctx, date)
		if err != nil {
			return repositoryError("failed to load appointments", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		durations, err = e.Catalog.ServiceDurations(gctx)
		if err != nil {
			return repositoryError("failed to load service catalog", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	lookup := DurationTable(durations)

	minutes := q.DurationMinutes
	if minutes == 0 {
		minutes, err = ResolveDuration(q.ServiceIDs, lookup)
		if err != nil {
			return nil, err
		}
	}
	if !open {
		return &Result{Date: date, DurationMinutes: minutes, Slots: []CandidateSlot{}}, nil
	}

	busy, err := BuildOccupancy(e.Calendar, day, appts, lookup)
	if err != nil {
		return nil, err
	}

	duration := time.Duration(minutes) * time.Minute
	candidates := GenerateCandidates(window, duration, e.granularity())
	now := e.clock().Now()
	slots := FilterAvailable(candidates, busy, now, e.Calendar.IsSameDay(day, now), duration)

	e.logger().Debug("availability computed",
		zap.String("date", date),
		zap.Int("duration", minutes),
		zap.Int("candidates", len(candidates)),
		zap.Int("busy", len(busy)),
		zap.Int("available", len(slots)),
	)
	return &Result{Date: date, DurationMinutes: minutes, Slots: slots}, nil
}

func (e *Engine) granularity() time.Duration {
	if e.Granularity <= 0 {
		return DefaultGranularity
	}
	return e.Granularity
}

func (e *Engine) clock() Clock {
	if e.Clock == nil {
		return SystemClock
	}
	return e.Clock
}

func (e *Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
