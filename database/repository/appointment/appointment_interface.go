package appointmentRepo

import (
	"context"

	"chairbook/models"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// ListByDate returns the appointments booked on a "2006-01-02" date, ordered by time.
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	Replace(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
	// CountByService reports how many appointments reference a service.
	CountByService(ctx context.Context, serviceID string) (int64, error)
	// CountUpcomingByService counts references on or after fromDate.
	CountUpcomingByService(ctx context.Context, serviceID, fromDate string) (int64, error)
	// CountByProduct reports how many appointments reference a product.
	CountByProduct(ctx context.Context, productID string) (int64, error)
}
