package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"gorm.io/gorm"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
)

type BreakerSettings struct {
	// Failures is the number of consecutive insert failures that opens the breaker.
	Failures int
	Timeout  time.Duration
}

type NotificationService struct {
	repo    *repository.NotificationRepository
	users   UserResolver
	breaker *gobreaker.CircuitBreaker
}

func NewNotificationService(
	repo *repository.NotificationRepository,
	users UserResolver,
	settings BreakerSettings,
) *NotificationService {
	failures := uint32(settings.Failures)
	if failures == 0 {
		failures = 5
	}

	return &NotificationService{
		repo:  repo,
		users: users,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "notifications",
			MaxRequests: 1,
			Timeout:     settings.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= failures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logging.Logger.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
			},
		}),
	}
}

func (s *NotificationService) NotifyAssigned(ctx context.Context, task *model.Task, assigneeID uint, actor Actor) error {
	return s.create(ctx, &model.Notification{
		UserID:    assigneeID,
		TaskID:    &task.ID,
		Type:      constants.NotificationTaskAssigned,
		Title:     "Nuovo task assegnato",
		Message:   fmt.Sprintf("%s ti ha assegnato il task %s: %s", actor.Username, task.Code, task.Description),
		CreatedBy: actor.ID,
	})
}

func (s *NotificationService) NotifyUpdated(ctx context.Context, task *model.Task, actor Actor) error {
	if task.CreatedBy == nil {
		return nil
	}

	return s.create(ctx, &model.Notification{
		UserID:    *task.CreatedBy,
		TaskID:    &task.ID,
		Type:      constants.NotificationTaskUpdated,
		Title:     "Task aggiornato",
		Message:   fmt.Sprintf("%s ha aggiornato il task %s: %s", actor.Username, task.Code, task.Description),
		CreatedBy: actor.ID,
	})
}

// NotifyOverdueOnce emits a task_overdue notification unless userID already
// received one for this task. It reports whether a notification was created.
func (s *NotificationService) NotifyOverdueOnce(ctx context.Context, task *model.Task, userID uint) (bool, error) {
	exists, err := s.repo.Exists(ctx, userID, task.ID, constants.NotificationTaskOverdue)
	if err != nil {
		return false, apperrors.Store("failed to check notifications", err)
	}
	if exists {
		return false, nil
	}

	due := ""
	if task.DueAt != nil {
		due = task.DueAt.Format("02/01/2006")
	}

	err = s.create(ctx, &model.Notification{
		UserID:  userID,
		TaskID:  &task.ID,
		Type:    constants.NotificationTaskOverdue,
		Title:   "Task scaduto",
		Message: fmt.Sprintf("Il task %s (%s) è scaduto il %s", task.Code, task.Description, due),
	})
	return err == nil, err
}

func (s *NotificationService) ListForUser(ctx context.Context, username string, unreadOnly bool) ([]model.NotificationView, error) {
	userID, err := s.users.ActiveUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	views, err := s.repo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, apperrors.Store("failed to list notifications", err)
	}
	return views, nil
}

// MarkRead flags a notification as read. Only its addressee may do so.
func (s *NotificationService) MarkRead(ctx context.Context, id uint, username string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotificationNotFound
		}
		return apperrors.Store("failed to load notification", err)
	}

	userID, err := s.users.ActiveUserID(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrNotificationForbidden
		}
		return err
	}
	if n.UserID != userID {
		return apperrors.ErrNotificationForbidden
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		return apperrors.Store("failed to update notification", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, username string) (int64, error) {
	userID, err := s.users.ActiveUserID(ctx, username)
	if err != nil {
		return 0, err
	}

	n, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, apperrors.Store("failed to update notifications", err)
	}
	return n, nil
}

func (s *NotificationService) create(ctx context.Context, n *model.Notification) error {
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return nil, s.repo.Create(ctx, n)
	})
	if err != nil {
		return apperrors.Store("failed to create notification", err)
	}
	return nil
}
