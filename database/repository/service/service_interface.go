package serviceRepo

import (
	"context"

	"chairbook/models"
)

// ServiceRepository defines methods for salon service data access.
type ServiceRepository interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, id string, update models.ServiceUpdate) (*models.Service, error)
	Delete(ctx context.Context, id string) error
	// ServiceDurations returns the duration in minutes of every service, keyed by ID.
	ServiceDurations(ctx context.Context) (map[string]int, error)
}
