package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront-backend/internal/model"
	"storefront-backend/internal/repository"
)

type UserService interface {
	// Resolve maps the authenticated principal (the token subject) to the
	// owning user entity.
	Resolve(ctx context.Context, username string) (*model.User, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

func (s *userServiceImpl) Resolve(ctx context.Context, username string) (*model.User, error) {
	if username == "" {
		return nil, ErrNotAuthenticated
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}
