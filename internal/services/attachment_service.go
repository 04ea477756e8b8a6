package services

import (
	"context"
	"errors"

	"github.com/vincent-petithory/dataurl"
	"gorm.io/gorm"

	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
)

type AttachmentService struct {
	attachments *repository.AttachmentRepository
	tasks       *repository.TaskRepository
}

func NewAttachmentService(attachments *repository.AttachmentRepository, tasks *repository.TaskRepository) *AttachmentService {
	return &AttachmentService{
		attachments: attachments,
		tasks:       tasks,
	}
}

func (s *AttachmentService) ListByTask(ctx context.Context, taskID uint) ([]model.Attachment, error) {
	attachments, err := s.attachments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, apperrors.Store("failed to list attachments", err)
	}
	return attachments, nil
}

// Create stores a data URL blob for the task. The blob must carry its media type.
func (s *AttachmentService) Create(ctx context.Context, taskID uint, data string) (*model.Attachment, error) {
	decoded, err := dataurl.DecodeString(data)
	if err != nil {
		return nil, apperrors.Validation("allegato must be a data URL: %v", err)
	}

	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Store("failed to load task", err)
	}

	attachment := &model.Attachment{TaskID: taskID, Data: data}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		return nil, apperrors.Store("failed to create attachment", err)
	}

	logging.Logger.WithField("task_id", taskID).
		WithField("content_type", decoded.ContentType()).
		WithField("bytes", len(decoded.Data)).
		Debug("attachment stored")
	return attachment, nil
}

func (s *AttachmentService) Delete(ctx context.Context, id uint) error {
	if err := s.attachments.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAttachmentNotFound
		}
		return apperrors.Store("failed to delete attachment", err)
	}
	return nil
}
