package user

import (
	"context"
	"errors"
	"testing"

	"chairbook/database"
	"chairbook/models"

	"golang.org/x/crypto/bcrypt"
)

type memRepo struct {
	byID map[string]*models.User
}

func (r *memRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return u, nil
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memRepo) Create(_ context.Context, u *models.User) error {
	r.byID[u.ID] = u
	return nil
}

func newTestService() (*DefaultUserService, *memRepo) {
	repo := &memRepo{byID: map[string]*models.User{}}
	return &DefaultUserService{
		Repo:       repo,
		IssueToken: func(sub, email string) (string, error) { return "token-" + sub, nil },
		Hasher: func(p []byte) ([]byte, error) {
			return bcrypt.GenerateFromPassword(p, bcrypt.MinCost)
		},
	}, repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	res, err := svc.Register(ctx, models.UserRegistration{
		FullName: "Ana Diaz", Phone: "555-0100", Email: " Ana@Example.com ", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if res.Token != "token-"+res.ID || res.Email != "ana@example.com" {
		t.Fatalf("unexpected response %+v", res)
	}
	stored := repo.byID[res.ID]
	if stored.PasswordHash == "secret123" || stored.Appointments == nil {
		t.Fatalf("unexpected stored user %+v", stored)
	}

	if _, err := svc.Register(ctx, models.UserRegistration{
		FullName: "Other", Phone: "1", Email: "ana@example.com", Password: "secret123",
	}); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	if _, err := svc.Login(ctx, "ANA@example.com", "secret123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.Login(ctx, "ana@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc, _ := newTestService()
	for _, reg := range []models.UserRegistration{
		{Phone: "1", Email: "a@b.co", Password: "secret123"},
		{FullName: "A", Phone: "1", Email: "not-an-email", Password: "secret123"},
		{FullName: "A", Phone: "1", Email: "a@b.co", Password: "123"},
	} {
		if _, err := svc.Register(context.Background(), reg); !errors.Is(err, ErrValidation) {
			t.Fatalf("%+v: expected ErrValidation, got %v", reg, err)
		}
	}
}

func TestGetUserByID(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.GetUserByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
