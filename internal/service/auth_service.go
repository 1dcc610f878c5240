package service

import (
	"context"

	"postboard/internal/auth"
	"postboard/internal/errors"
	"postboard/internal/model"
	"postboard/internal/repository"
)

// AuthService handles the login check. No session or token is issued.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   *auth.PasswordHasher
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher *auth.PasswordHasher) AuthService {
	return &authService{userRepo: userRepo, hasher: hasher}
}

// Login verifies the credential pair. An unknown email and a wrong password
// return the identical error value, so responses cannot be used to enumerate
// registered emails.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, errors.ErrInvalidCredentials
	}
	return user, nil
}
