package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) FindByID(ctx context.Context, id uint) (*model.Notification, error) {
	var n model.Notification
	if err := r.db.WithContext(ctx).First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uint, unreadOnly bool) ([]model.NotificationView, error) {
	query := r.db.WithContext(ctx).
		Table("notifications").
		Select("notifications.*, tasks.code AS task_code, tasks.description AS task_description, "+
			"users.full_name AS created_by_name").
		Joins("LEFT JOIN tasks ON tasks.id = notifications.task_id").
		Joins("LEFT JOIN users ON users.id = notifications.created_by").
		Where("notifications.user_id = ?", userID)
	if unreadOnly {
		query = query.Where("notifications.is_read = ?", false)
	}

	var views []model.NotificationView
	err := query.Order("notifications.created_at desc, notifications.id desc").Scan(&views).Error
	return views, err
}

// Exists reports whether userID already has a notification of the given type for taskID.
func (r *NotificationRepository) Exists(ctx context.Context, userID, taskID uint, kind constants.NotificationType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND task_id = ? AND type = ?", userID, taskID, kind).
		Count(&count).Error
	return count > 0, err
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
