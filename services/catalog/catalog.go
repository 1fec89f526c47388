// Package catalog manages the salon's services and retail products.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"chairbook/database"
	"chairbook/models"

	"github.com/google/uuid"
)

var (
	ErrValidation = errors.New("invalid catalog entry")
	ErrNotFound   = errors.New("not found")
	// ErrInUse is returned when deleting an entry that appointments still
	// reference, or lengthening a service that upcoming appointments use.
	ErrInUse = errors.New("still referenced by appointments")
)

type ServiceStore interface {
	Create(ctx context.Context, service *models.Service) error
	GetByID(ctx context.Context, id string) (*models.Service, error)
	GetAll(ctx context.Context) ([]models.Service, error)
	Update(ctx context.Context, id string, update models.ServiceUpdate) (*models.Service, error)
	Delete(ctx context.Context, id string) error
}

type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// References counts appointments pointing at a catalog entry.
type References interface {
	CountByService(ctx context.Context, serviceID string) (int64, error)
	// CountUpcomingByService counts appointments on or after a "2006-01-02" date.
	CountUpcomingByService(ctx context.Context, serviceID, fromDate string) (int64, error)
	CountByProduct(ctx context.Context, productID string) (int64, error)
}

// Service implements the catalog operations.
type Service struct {
	Services     ServiceStore
	Products     ProductStore
	Appointments References
	// Today returns the business date as "2006-01-02". Nil uses the local clock.
	Today func() string
}

func (s *Service) today() string {
	if s.Today == nil {
		return time.Now().Format("2006-01-02")
	}
	return s.Today()
}

func notFound(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}

func validateService(name, description string, duration int, price float64) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return fmt.Errorf("%w: serviceName and description are required", ErrValidation)
	}
	if duration <= 0 {
		return fmt.Errorf("%w: duration must be a positive number of minutes", ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	return nil
}

func (s *Service) CreateService(ctx context.Context, in models.Service) (*models.Service, error) {
	if err := validateService(in.ServiceName, in.Description, in.Duration, in.Price); err != nil {
		return nil, err
	}
	in.ID = uuid.New().String()
	if err := s.Services.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *Service) GetServices(ctx context.Context) ([]models.Service, error) {
	return s.Services.GetAll(ctx)
}

func (s *Service) GetService(ctx context.Context, id string) (*models.Service, error) {
	svc, err := s.Services.GetByID(ctx, id)
	return svc, notFound(err)
}

func (s *Service) EditService(ctx context.Context, id string, update models.ServiceUpdate) (*models.Service, error) {
	if update.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if update.Duration != nil && *update.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be a positive number of minutes", ErrValidation)
	}
	if update.Price != nil && *update.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if update.Duration != nil {
		if err := s.checkLengthen(ctx, id, *update.Duration); err != nil {
			return nil, err
		}
	}
	svc, err := s.Services.Update(ctx, id, update)
	return svc, notFound(err)
}

// checkLengthen refuses a longer duration while upcoming appointments use the
// service, since their busy intervals would grow into neighbouring bookings.
func (s *Service) checkLengthen(ctx context.Context, id string, duration int) error {
	current, err := s.Services.GetByID(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if duration <= current.Duration {
		return nil
	}
	n, err := s.Appointments.CountUpcomingByService(ctx, id, s.today())
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: service %s cannot be lengthened while %d upcoming appointment(s) use it", ErrInUse, id, n)
	}
	return nil
}

// DeleteService removes a service unless an appointment still uses it. Booked
// appointments derive their length from it.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	n, err := s.Appointments.CountByService(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: service %s is used by %d appointment(s)", ErrInUse, id, n)
	}
	return notFound(s.Services.Delete(ctx, id))
}

func (s *Service) CreateProduct(ctx context.Context, in models.Product) (*models.Product, error) {
	if strings.TrimSpace(in.ProductName) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: productName and description are required", ErrValidation)
	}
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	in.ID = uuid.New().String()
	if err := s.Products.Create(ctx, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func (s *Service) GetProducts(ctx context.Context) ([]models.Product, error) {
	return s.Products.GetAll(ctx)
}

func (s *Service) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	p, err := s.Products.GetByID(ctx, id)
	return p, notFound(err)
}

func (s *Service) EditProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	if update.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrValidation)
	}
	if update.Price != nil && *update.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	p, err := s.Products.Update(ctx, id, update)
	return p, notFound(err)
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	n, err := s.Appointments.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: product %s is used by %d appointment(s)", ErrInUse, id, n)
	}
	return notFound(s.Products.Delete(ctx, id))
}
