package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrNotFound = gorm.ErrRecordNotFound

// TaskChanges are the mutable columns of a task. Code, ReportedAt and
// CreatedBy never change after creation.
type TaskChanges struct {
	TicketRef      *string
	Description    string
	DueAt          *time.Time
	Status         constants.TaskStatus
	Assignee       string
	Assignees      string
	Priority       constants.Priority
	Comments       string
	EstimatedHours float64
	DedicatedHours float64
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	return findTask(r.db.WithContext(ctx), id)
}

func (r *TaskRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Order("reported_at desc, id desc").Find(&tasks).Error
	return tasks, err
}

// ListOverdue returns open tasks whose due date is before now, oldest deadline first.
func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time, limit int) ([]model.Task, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	var tasks []model.Task
	query := r.db.WithContext(ctx).
		Where("due_at IS NOT NULL AND due_at < ? AND status <> ?", now, constants.StatusClosed).
		Order("due_at asc").Limit(limit)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateWithSnapshot loads the task, writes the changes and reloads it inside a
// single transaction, returning the state before and after the write.
func (r *TaskRepository) UpdateWithSnapshot(ctx context.Context, id uint, changes TaskChanges) (*model.Task, *model.Task, error) {
	var before, after *model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if before, err = findTask(tx, id); err != nil {
			return err
		}

		res := tx.Model(&model.Task{}).Where("id = ?", id).Updates(map[string]interface{}{
			"ticket_ref":      changes.TicketRef,
			"description":     changes.Description,
			"due_at":          changes.DueAt,
			"status":          changes.Status,
			"assignee":        changes.Assignee,
			"assignees":       changes.Assignees,
			"priority":        changes.Priority,
			"comments":        changes.Comments,
			"estimated_hours": changes.EstimatedHours,
			"dedicated_hours": changes.DedicatedHours,
		})
		if res.Error != nil {
			return res.Error
		}

		after, err = findTask(tx, id)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return before, after, nil
}

// Delete removes the task together with its comments and attachments.
func (r *TaskRepository) Delete(ctx context.Context, id uint) (*model.Task, error) {
	var task *model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if task, err = findTask(tx, id); err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Task{}, id).Error
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func findTask(db *gorm.DB, id uint) (*model.Task, error) {
	var task model.Task
	if err := db.First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
