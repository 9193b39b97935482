// Package auth implements registration, credential verification, and
// stateless bearer-token issuance for the monitoring API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/polesense/polesense-be/internal/models"
	"github.com/polesense/polesense-be/internal/storage"
)

// ErrInvalidCredentials is returned for an unknown email and for a wrong
// password alike, so callers cannot probe which emails are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrMissingFields indicates a registration with an empty identity field.
var ErrMissingFields = errors.New("all fields are required")

// Service owns the register/signin/user-info flows on top of the user store.
type Service struct {
	store  storage.UserStore
	tokens *TokenManager
}

// NewService constructs the auth service.
func NewService(store storage.UserStore, tokens *TokenManager) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register creates a user, storing only a bcrypt hash of the password.
// The role defaults to technician when empty. The store reports duplicate
// emails as storage.ErrAlreadyExists.
func (s *Service) Register(ctx context.Context, name, email, phone, password, role string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || phone == "" || password == "" {
		return models.User{}, ErrMissingFields
	}
	if role == "" {
		role = models.DefaultRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.store.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: string(hash),
	})
}

// Authenticate verifies credentials and mints a token bound to the user's
// id and role.
func (s *Service) Authenticate(ctx context.Context, email, password string) (token string, user models.User, err error) {
	user, err = s.store.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", models.User{}, ErrInvalidCredentials
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}
	token, err = s.tokens.Generate(user)
	if err != nil {
		return "", models.User{}, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// ValidateToken verifies a bearer token and returns the asserted subject.
func (s *Service) ValidateToken(token string) (userID int64, role string, err error) {
	return s.tokens.Verify(token)
}

// GetUserInfo resolves a validated subject to its current name and role.
// Returns storage.ErrNotFound if the record no longer exists.
func (s *Service) GetUserInfo(ctx context.Context, userID int64) (models.User, error) {
	return s.store.FindByID(ctx, userID)
}
