package user

import (
	"context"
	"errors"

	"chairbook/models"
)

type UserService interface {
	Register(ctx context.Context, reg models.UserRegistration) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// Repository is the user persistence the service needs.
type Repository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// TokenIssuer signs access tokens for a user.
type TokenIssuer func(subject, email string) (string, error)

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo       Repository
	IssueToken TokenIssuer
	Hasher     func(password []byte) ([]byte, error)
}

// AuthResponse contains the user's ID, token, and profile basics.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

var (
	ErrValidation         = errors.New("invalid account details")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotFound           = errors.New("user not found")
)
