package repository

import (
	"context"

	"gorm.io/gorm"

	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindActiveByUsername treats inactive users as missing.
func (r *UserRepository) FindActiveByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND is_active = ?", username, true).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, activeOnly bool) ([]model.User, error) {
	query := r.db.WithContext(ctx).Order("username asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var users []model.User
	err := query.Find(&users).Error
	return users, err
}

func (r *UserRepository) SetActive(ctx context.Context, username string, active bool) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
