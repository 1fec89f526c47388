package booking

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"chairbook/models"
	"chairbook/services/availability"
	"chairbook/services/tasks"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultAppointmentService implements AppointmentService.
type DefaultAppointmentService struct {
	Calendar     *availability.Calendar
	Appointments AppointmentStore
	Catalog      ServiceCatalog
	Products     ProductLookup
	Users        UserStore
	Locker       Locker
	Mailer       tasks.Mailer
	Clock        availability.Clock
	Logger       *zap.Logger
}

func (s *DefaultAppointmentService) CreateAppointment(ctx context.Context, userID string, req models.AppointmentRequest) (*models.Appointment, error) {
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return nil, validationErr("date and time are required")
	}
	if len(req.Services) == 0 {
		return nil, validationErr("at least one service is required")
	}
	appt := &models.Appointment{
		ID:       uuid.New().String(),
		Client:   userID,
		Services: req.Services,
	}
	if req.Note != nil {
		appt.Note = *req.Note
	}
	if req.Product != nil && *req.Product != "" {
		if _, err := s.Products.GetByID(ctx, *req.Product); err != nil {
			return nil, translate(err)
		}
		appt.Product = *req.Product
	}

	day, minute, err := s.parseStart(req.Date, req.Time)
	if err != nil {
		return nil, err
	}
	appt.Date = day.Format(availability.DateLayout)
	appt.Time = availability.FormatClock(minute)

	err = s.withDateLock(ctx, appt.Date, func() error {
		duration, err := s.checkSlot(ctx, day, minute, appt.Services, "")
		if err != nil {
			return err
		}
		appt.DurationMinutes = duration
		appt.CreatedAt = s.now()

		if err := s.Appointments.Create(ctx, appt); err != nil {
			return err
		}
		if err := s.Users.AddAppointment(ctx, userID, appt.ID); err != nil {
			// Undo the insert so the slot is not held by an orphan.
			if derr := s.Appointments.Delete(ctx, appt.ID); derr != nil {
				s.logger().Error("failed to roll back appointment", zap.String("appointmentID", appt.ID), zap.Error(derr))
			}
			return translate(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger().Info("appointment created",
		zap.String("appointmentID", appt.ID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time),
		zap.Int("duration", appt.DurationMinutes),
	)
	s.sendConfirmation(ctx, userID, appt)
	return appt, nil
}

func (s *DefaultAppointmentService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListAppointments(ctx context.Context) ([]models.Appointment, error) {
	return s.Appointments.GetAll(ctx)
}

func (s *DefaultAppointmentService) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	return s.Appointments.ListByClient(ctx, userID)
}

// maxEditAttempts bounds retries when the appointment changes date between the
// unlocked read and taking its date locks.
const maxEditAttempts = 3

// EditAppointment applies the non-empty fields of req. Every edit runs under
// the locks of the stored date and the requested date, on a fresh read. A
// change of date, time or services is re-checked against the day's bookings.
func (s *DefaultAppointmentService) EditAppointment(ctx context.Context, userID, id string, req models.AppointmentRequest) (*models.Appointment, error) {
	if req.Services != nil && len(req.Services) == 0 {
		return nil, validationErr("at least one service is required")
	}
	if req.Product != nil && *req.Product != "" {
		if _, err := s.Products.GetByID(ctx, *req.Product); err != nil {
			return nil, translate(err)
		}
	}

	for attempt := 0; attempt < maxEditAttempts; attempt++ {
		seen, err := s.owned(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		target := seen.Date
		if req.Date != "" {
			day, err := s.Calendar.ParseDate(req.Date)
			if err != nil {
				return nil, translate(err)
			}
			target = day.Format(availability.DateLayout)
		}

		var updated *models.Appointment
		moved := false
		err = s.withDateLocks(ctx, []string{seen.Date, target}, func() error {
			latest, err := s.owned(ctx, userID, id)
			if err != nil {
				return err
			}
			if latest.Date != seen.Date {
				moved = true
				return nil
			}
			updated, err = s.applyEdit(ctx, latest, req)
			return err
		})
		if err != nil {
			return nil, err
		}
		if !moved {
			return updated, nil
		}
	}
	return nil, fmt.Errorf("%w: appointment %s changed date during edit", ErrLockTimeout, id)
}

// applyEdit writes req over current. Callers hold the lock of current.Date and
// of the requested date.
func (s *DefaultAppointmentService) applyEdit(ctx context.Context, current *models.Appointment, req models.AppointmentRequest) (*models.Appointment, error) {
	updated := *current
	if req.Note != nil {
		updated.Note = *req.Note
	}
	if req.Product != nil {
		updated.Product = *req.Product
	}

	reschedule := req.Date != "" || req.Time != "" || req.Services != nil
	if req.Services != nil {
		updated.Services = req.Services
	}
	if req.Date != "" {
		updated.Date = req.Date
	}
	if req.Time != "" {
		updated.Time = req.Time
	}

	if reschedule {
		day, minute, err := s.parseStart(updated.Date, updated.Time)
		if err != nil {
			return nil, err
		}
		updated.Date = day.Format(availability.DateLayout)
		updated.Time = availability.FormatClock(minute)

		duration, err := s.checkSlot(ctx, day, minute, updated.Services, updated.ID)
		if err != nil {
			return nil, err
		}
		updated.DurationMinutes = duration
	}

	if err := s.Appointments.Replace(ctx, &updated); err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

func (s *DefaultAppointmentService) DeleteAppointment(ctx context.Context, userID, id string) error {
	appt, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.Appointments.Delete(ctx, appt.ID); err != nil {
		return translate(err)
	}
	if err := s.Users.RemoveAppointment(ctx, appt.Client, appt.ID); err != nil {
		s.logger().Warn("failed to detach appointment from user",
			zap.String("appointmentID", appt.ID), zap.String("userID", appt.Client), zap.Error(err))
	}
	return nil
}

func (s *DefaultAppointmentService) owned(ctx context.Context, userID, id string) (*models.Appointment, error) {
	appt, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	if appt.Client != userID {
		return nil, ErrForbidden
	}
	return appt, nil
}

func (s *DefaultAppointmentService) parseStart(date, clock string) (time.Time, int, error) {
	day, err := s.Calendar.ParseDate(date)
	if err != nil {
		return time.Time{}, 0, translate(err)
	}
	minute, err := availability.ParseClock(clock)
	if err != nil {
		return time.Time{}, 0, validationErr("invalid time %q", clock)
	}
	return day, minute, nil
}

// checkSlot verifies that services starting at minute on day fit the operating
// window, lie in the future and overlap no other appointment except excludeID.
// It returns the resolved duration in minutes. Callers hold the date lock.
func (s *DefaultAppointmentService) checkSlot(ctx context.Context, day time.Time, minute int, services []string, excludeID string) (int, error) {
	durations, err := s.Catalog.ServiceDurations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load service catalog: %w", err)
	}
	lookup := availability.DurationTable(durations)
	total, err := availability.ResolveDuration(services, lookup)
	if err != nil {
		return 0, translate(err)
	}

	window, open := s.Calendar.OperatingWindow(day)
	if !open {
		return 0, fmt.Errorf("%w: closed on %s", ErrSlotUnavailable, day.Format(availability.DateLayout))
	}
	start := s.Calendar.At(day, minute)
	end := start.Add(time.Duration(total) * time.Minute)
	if start.Before(window.Open) || end.After(window.Close) {
		return 0, fmt.Errorf("%w: outside business hours", ErrSlotUnavailable)
	}
	if !start.After(s.now()) {
		return 0, fmt.Errorf("%w: start is in the past", ErrSlotUnavailable)
	}

	appts, err := s.Appointments.ListByDate(ctx, day.Format(availability.DateLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to load appointments: %w", err)
	}
	others := appts[:0:0]
	for _, a := range appts {
		if a.ID != excludeID {
			others = append(others, a)
		}
	}
	busy, err := availability.BuildOccupancy(s.Calendar, day, others, lookup)
	if err != nil {
		return 0, translate(err)
	}
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return 0, fmt.Errorf("%w: overlaps %s-%s", ErrSlotUnavailable,
				b.Start.Format(availability.LabelLayout), b.End.Format(availability.LabelLayout))
		}
	}
	return total, nil
}

func (s *DefaultAppointmentService) withDateLock(ctx context.Context, date string, fn func() error) error {
	return s.withDateLocks(ctx, []string{date}, fn)
}

// withDateLocks takes the locks of every distinct date in ascending order, so
// two writers spanning the same pair of days cannot deadlock.
func (s *DefaultAppointmentService) withDateLocks(ctx context.Context, dates []string, fn func() error) error {
	keys := make([]string, 0, len(dates))
	for _, d := range dates {
		k := dateKey(d)
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		lctx, cancel := context.WithTimeout(ctx, LockWait)
		release, err := s.Locker.Lock(lctx, k)
		cancel()
		if err != nil {
			return err
		}
		defer release()
	}
	return fn()
}

func (s *DefaultAppointmentService) sendConfirmation(ctx context.Context, userID string, appt *models.Appointment) {
	if s.Mailer == nil {
		return
	}
	user, err := s.Users.GetByID(ctx, userID)
	if err != nil || user.Email == "" {
		s.logger().Warn("no confirmation recipient", zap.String("userID", userID), zap.Error(err))
		return
	}
	day, minute, err := s.parseStart(appt.Date, appt.Time)
	if err != nil {
		return
	}
	start := s.Calendar.At(day, minute)
	payload := models.EmailPayload{
		To:      user.Email,
		Subject: "Your appointment is confirmed",
		Body: fmt.Sprintf("Hi %s,\n\nYour appointment on %s at %s (%d minutes) is confirmed.\n",
			user.FullName, start.Format("Monday, January 2"), start.Format(availability.LabelLayout), appt.DurationMinutes),
	}
	if err := s.Mailer.EnqueueEmail(ctx, payload); err != nil {
		s.logger().Error("failed to enqueue confirmation", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

func (s *DefaultAppointmentService) now() time.Time {
	if s.Clock == nil {
		return availability.SystemClock.Now()
	}
	return s.Clock.Now()
}

func (s *DefaultAppointmentService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
