package service

import (
	"context"

	"github.com/blaisecz/habit-tracker/internal/domain"
	"github.com/blaisecz/habit-tracker/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	intensity := req.PreferredIntensity
	if intensity == "" {
		intensity = domain.IntensityMedium
	}

	goals := req.Goals
	if goals == nil {
		goals = []string{}
	}

	user := &domain.User{
		ID:                 uuid.New(),
		Timezone:           req.Timezone,
		PreferredIntensity: intensity,
		Goals:              datatypes.JSONSlice[string](goals),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
