package repository

import (
	"context"

	"gorm.io/gorm"

	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) ListByTask(ctx context.Context, taskID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at desc, id desc").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) ListByUser(ctx context.Context, username string) ([]model.CommentWithTask, error) {
	var comments []model.CommentWithTask
	err := r.db.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.text, comments.author, comments.task_id, comments.created_at, comments.hours, "+
			"tasks.code AS task_code, tasks.description AS task_description").
		Joins("JOIN tasks ON tasks.id = comments.task_id").
		Where("comments.author = ?", username).
		Order("comments.created_at desc, comments.id desc").
		Scan(&comments).Error
	return comments, err
}

func (r *CommentRepository) Update(ctx context.Context, id uint, text string, hours float64) error {
	res := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"text":  text,
			"hours": hours,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Comment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommentRepository) TotalHoursByTask(ctx context.Context, taskID uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("task_id = ?", taskID).
		Select("COALESCE(SUM(hours), 0)").
		Scan(&total).Error
	return total, err
}
