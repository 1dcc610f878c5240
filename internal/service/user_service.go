package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"postboard/internal/auth"
	"postboard/internal/errors"
	"postboard/internal/model"
	"postboard/internal/repository"
)

// UserService exposes user registration and lookup.
type UserService interface {
	CreateUser(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

type userService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
}

// NewUserService builds a UserService with repository and password hasher.
func NewUserService(repo repository.UserRepository, hasher *auth.PasswordHasher) UserService {
	return &userService{repo: repo, hasher: hasher}
}

// CreateUser hashes the password before the record is constructed; plaintext
// is never persisted.
func (s *userService) CreateUser(ctx context.Context, email, password string) (*model.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, errors.ErrMissingUserFields
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// The pre-check races with concurrent inserts; the unique index is
		// authoritative.
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
