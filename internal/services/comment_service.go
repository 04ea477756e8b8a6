package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
)

type CommentService struct {
	comments *repository.CommentRepository
	tasks    *repository.TaskRepository
}

func NewCommentService(comments *repository.CommentRepository, tasks *repository.TaskRepository) *CommentService {
	return &CommentService{
		comments: comments,
		tasks:    tasks,
	}
}

func (s *CommentService) Create(ctx context.Context, req *dto.CreateCommentRequest, actor string) (*model.Comment, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.ErrCommentTextRequired
	}
	if req.TaskID == 0 {
		return nil, apperrors.ErrCommentTaskRequired
	}
	if req.Hours < 0 {
		return nil, apperrors.ErrNegativeHours
	}

	if _, err := s.tasks.FindByID(ctx, req.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Store("failed to load task", err)
	}

	comment := &model.Comment{
		Text:   req.Text,
		Author: actor,
		TaskID: req.TaskID,
		Hours:  req.Hours,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.Store("failed to create comment", err)
	}
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.Store("failed to load comment", err)
	}
	return comment, nil
}

func (s *CommentService) ListByTask(ctx context.Context, taskID uint) ([]model.Comment, error) {
	comments, err := s.comments.ListByTask(ctx, taskID)
	if err != nil {
		return nil, apperrors.Store("failed to list comments", err)
	}
	return comments, nil
}

func (s *CommentService) ListByUser(ctx context.Context, username string) ([]model.CommentWithTask, error) {
	comments, err := s.comments.ListByUser(ctx, username)
	if err != nil {
		return nil, apperrors.Store("failed to list user comments", err)
	}
	return comments, nil
}

// Update rewrites text and hours. Authorship is checked by the caller.
func (s *CommentService) Update(ctx context.Context, id uint, req *dto.UpdateCommentRequest) (*model.Comment, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.ErrCommentTextRequired
	}
	if req.Hours < 0 {
		return nil, apperrors.ErrNegativeHours
	}

	if err := s.comments.Update(ctx, id, req.Text, req.Hours); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, apperrors.Store("failed to update comment", err)
	}
	return s.Get(ctx, id)
}

func (s *CommentService) Delete(ctx context.Context, id uint) error {
	if err := s.comments.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCommentNotFound
		}
		return apperrors.Store("failed to delete comment", err)
	}
	return nil
}

// TotalHours sums the hours of every comment of the task.
func (s *CommentService) TotalHours(ctx context.Context, taskID uint) (float64, error) {
	total, err := s.comments.TotalHoursByTask(ctx, taskID)
	if err != nil {
		return 0, apperrors.Store("failed to compute total hours", err)
	}
	return total, nil
}
