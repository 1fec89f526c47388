package userRepo

import (
	"context"

	"chairbook/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// AddAppointment records an appointment ID on the user.
	AddAppointment(ctx context.Context, userID, appointmentID string) error
	// RemoveAppointment removes an appointment ID from the user.
	RemoveAppointment(ctx context.Context, userID, appointmentID string) error
}
