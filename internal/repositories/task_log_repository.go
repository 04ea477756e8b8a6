package repository

import (
	"context"

	"gorm.io/gorm"

	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

// TaskLogRepository is append-only: entries are never updated or deleted.
type TaskLogRepository struct {
	db *gorm.DB
}

func NewTaskLogRepository(db *gorm.DB) *TaskLogRepository {
	return &TaskLogRepository{db: db}
}

func (r *TaskLogRepository) Create(ctx context.Context, entry *model.TaskLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns every entry, or only those of taskCode when it is not empty.
func (r *TaskLogRepository) List(ctx context.Context, taskCode string) ([]model.TaskLog, error) {
	query := r.db.WithContext(ctx).Order("created_at desc, id desc")
	if taskCode != "" {
		query = query.Where("task_code = ?", taskCode)
	}

	var entries []model.TaskLog
	err := query.Find(&entries).Error
	return entries, err
}

func (r *TaskLogRepository) ListByUser(ctx context.Context, username string) ([]model.TaskLog, error) {
	var entries []model.TaskLog
	err := r.db.WithContext(ctx).
		Where("actor = ?", username).
		Order("created_at desc, id desc").
		Find(&entries).Error
	return entries, err
}
