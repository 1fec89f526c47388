package booking

import (
	"context"

	"chairbook/models"
)

// AppointmentService manages the appointment lifecycle.
type AppointmentService interface {
	CreateAppointment(ctx context.Context, userID string, req models.AppointmentRequest) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	EditAppointment(ctx context.Context, userID, id string, req models.AppointmentRequest) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, userID, id string) error
}

// AppointmentStore is the persistence the booking service needs.
type AppointmentStore interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	Replace(ctx context.Context, appt *models.Appointment) error
	Delete(ctx context.Context, id string) error
}

// ServiceCatalog resolves service durations.
type ServiceCatalog interface {
	ServiceDurations(ctx context.Context) (map[string]int, error)
}

// ProductLookup confirms a product exists.
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
}

// UserStore keeps each user's list of appointment IDs.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	AddAppointment(ctx context.Context, userID, appointmentID string) error
	RemoveAppointment(ctx context.Context, userID, appointmentID string) error
}
