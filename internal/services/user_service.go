package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// ActiveUserID resolves a username to the id of an active user.
func (s *UserService) ActiveUserID(ctx context.Context, username string) (uint, error) {
	user, err := s.repo.FindActiveByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrUserNotFound
		}
		return 0, apperrors.Store("failed to resolve user", err)
	}
	return user.ID, nil
}

func (s *UserService) List(ctx context.Context, activeOnly bool) ([]model.User, error) {
	users, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, apperrors.Store("failed to list users", err)
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.Validation("username is required")
	}
	if req.Role == "" {
		req.Role = constants.RoleUser
	}
	if !req.Role.Valid() {
		return nil, apperrors.Validation("role must be %s or %s", constants.RoleAdmin, constants.RoleUser)
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, apperrors.Conflict("user '%s' already exists", username)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Store("failed to look up user", err)
	}

	user := &model.User{
		Username: username,
		Role:     req.Role,
		FullName: strings.TrimSpace(req.FullName),
		IsActive: true,
	}
	if email := strings.TrimSpace(req.Email); email != "" {
		user.Email = &email
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperrors.Store("failed to create user", err)
	}
	return user, nil
}

func (s *UserService) SetActive(ctx context.Context, username string, active bool) error {
	if err := s.repo.SetActive(ctx, username, active); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Store("failed to update user", err)
	}
	return nil
}
