package user

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"chairbook/database"
	"chairbook/models"
	"chairbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

func hashPassword(password []byte) ([]byte, error) {
	return bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
}

// Register validates reg, rejects duplicate emails and stores a new user with
// a bcrypt password hash.
func (s *DefaultUserService) Register(ctx context.Context, reg models.UserRegistration) (*AuthResponse, error) {
	reg.Email = strings.ToLower(strings.TrimSpace(reg.Email))
	reg.FullName = strings.TrimSpace(reg.FullName)
	if reg.FullName == "" || reg.Phone == "" || reg.Email == "" || reg.Password == "" {
		return nil, fmt.Errorf("%w: fullName, phone, email and password are required", ErrValidation)
	}
	if _, err := mail.ParseAddress(reg.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(reg.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLen)
	}

	existing, err := s.Repo.GetByEmail(ctx, reg.Email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hasher := s.Hasher
	if hasher == nil {
		hasher = hashPassword
	}
	hash, err := hasher([]byte(reg.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &models.User{
		ID:           uuid.New().String(),
		FullName:     reg.FullName,
		Phone:        reg.Phone,
		Email:        reg.Email,
		FirstTime:    reg.FirstTime,
		MinLen:       reg.MinLen,
		MaxLen:       reg.MaxLen,
		Shape:        reg.Shape,
		Appointments: []string{},
		PasswordHash: string(hash),
		CreatedOn:    time.Now(),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.authResponse(u)
}

// Login verifies the password and issues a token.
func (s *DefaultUserService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.authResponse(u)
}

func (s *DefaultUserService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *DefaultUserService) authResponse(u *models.User) (*AuthResponse, error) {
	issue := s.IssueToken
	if issue == nil {
		issue = utils.GenerateAccessToken
	}
	token, err := issue(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &AuthResponse{ID: u.ID, Token: token, FullName: u.FullName, Email: u.Email}, nil
}
