package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/assignees"
	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
)

type TaskService struct {
	tasks    *repository.TaskRepository
	logs     *repository.TaskLogRepository
	users    UserResolver
	notifier NotificationSink
	now      func() time.Time
}

func NewTaskService(
	tasks *repository.TaskRepository,
	logs *repository.TaskLogRepository,
	users UserResolver,
	notifier NotificationSink,
) *TaskService {
	return &TaskService{
		tasks:    tasks,
		logs:     logs,
		users:    users,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateTask persists a new task on behalf of actor, who must be an active user.
// Assignment notifications are best-effort; the audit entry is not.
func (s *TaskService) CreateTask(ctx context.Context, req *dto.CreateTaskRequest, actor string) (*model.Task, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, apperrors.ErrTaskCodeRequired
	}

	assignment := assignees.Normalize(req.Assignees, req.Assignee)
	if assignment.Empty() {
		return nil, apperrors.ErrAssigneeRequired
	}
	if err := validateTaskFields(req); err != nil {
		return nil, err
	}

	creatorID, err := s.users.ActiveUserID(ctx, actor)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.Validation("user '%s' not found or inactive", actor)
		}
		return nil, err
	}

	exists, err := s.tasks.ExistsByCode(ctx, code)
	if err != nil {
		return nil, apperrors.Store("failed to check task code", err)
	}
	if exists {
		return nil, apperrors.Conflict("task with codiceTask '%s' already exists", code)
	}

	reportedAt := s.now()
	if req.ReportedAt != nil {
		reportedAt = req.ReportedAt.UTC()
	}

	task := &model.Task{
		Code:           code,
		TicketRef:      req.TicketRefPtr(),
		Description:    req.Description,
		ReportedAt:     reportedAt,
		DueAt:          utc(req.DueAt),
		Status:         req.Status,
		Software:       req.Software,
		Assignee:       assignment.Primary,
		Assignees:      assignment.Canonical,
		Client:         req.Client,
		Priority:       req.Priority,
		Comments:       req.Comments,
		CreatedBy:      &creatorID,
		EstimatedHours: req.EstimatedHours,
		DedicatedHours: req.DedicatedHours,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, apperrors.Store("failed to create task", err)
	}

	creator := Actor{Username: actor, ID: &creatorID}
	s.observe(task, actor, s.notifyCreated(ctx, task, creator))

	if err := s.writeLog(ctx, actor, task.Code, describeCreation(task)); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask replaces the mutable fields of a task, notifies newly assigned
// users and the creator, and records one audit entry describing the diff.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, req *dto.UpdateTaskRequest, actor string) (*model.Task, error) {
	assignment := assignees.Normalize(req.Assignees, req.Assignee)
	if assignment.Empty() {
		return nil, apperrors.ErrAssigneeRequired
	}
	if err := validateTaskFields(req); err != nil {
		return nil, err
	}

	before, after, err := s.tasks.UpdateWithSnapshot(ctx, id, repository.TaskChanges{
		TicketRef:      req.TicketRefPtr(),
		Description:    req.Description,
		DueAt:          utc(req.DueAt),
		Status:         req.Status,
		Assignee:       assignment.Primary,
		Assignees:      assignment.Canonical,
		Priority:       req.Priority,
		Comments:       req.Comments,
		EstimatedHours: req.EstimatedHours,
		DedicatedHours: req.DedicatedHours,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Store("failed to update task", err)
	}

	// Best-effort phase: nothing below may undo the write above.
	s.observe(after, actor, s.notifyUpdated(ctx, before, after, s.resolveActor(ctx, actor)))

	if err := s.writeLog(ctx, actor, before.Code, describeChanges(before, after)); err != nil {
		return nil, err
	}

	return after, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint, actor string) error {
	task, err := s.tasks.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return apperrors.Store("failed to delete task", err)
	}

	return s.writeLog(ctx, actor, task.Code, describeDeletion(task))
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.Store("failed to load task", err)
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filter dto.TaskFilter) ([]model.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, apperrors.Store("failed to list tasks", err)
	}

	filtered := tasks[:0]
	for _, task := range tasks {
		if matches(task, filter) {
			filtered = append(filtered, task)
		}
	}
	return filtered, nil
}

func (s *TaskService) ListLogs(ctx context.Context, taskCode string) ([]model.TaskLog, error) {
	entries, err := s.logs.List(ctx, taskCode)
	if err != nil {
		return nil, apperrors.Store("failed to list task logs", err)
	}
	return entries, nil
}

func (s *TaskService) ListLogsByUser(ctx context.Context, username string) ([]model.TaskLog, error) {
	entries, err := s.logs.ListByUser(ctx, username)
	if err != nil {
		return nil, apperrors.Store("failed to list task logs", err)
	}
	return entries, nil
}

func (s *TaskService) notifyCreated(ctx context.Context, task *model.Task, creator Actor) []error {
	var errs []error
	for _, username := range assignees.Parse(task.Assignees, task.Assignee) {
		userID, err := s.users.ActiveUserID(ctx, username)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUserNotFound) {
				errs = append(errs, err)
			}
			continue
		}
		if creator.Is(userID) {
			continue
		}
		if err := s.notifier.NotifyAssigned(ctx, task, userID, creator); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// notifyUpdated sends nothing when the actor does not resolve to an active user.
func (s *TaskService) notifyUpdated(ctx context.Context, before, after *model.Task, actor Actor) []error {
	if actor.ID == nil {
		return nil
	}

	var errs []error

	added := assignees.Added(
		assignees.Parse(before.Assignees, before.Assignee),
		assignees.Parse(after.Assignees, after.Assignee),
	)
	for _, username := range added {
		userID, err := s.users.ActiveUserID(ctx, username)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUserNotFound) {
				errs = append(errs, err)
			}
			continue
		}
		if actor.Is(userID) {
			continue
		}
		if err := s.notifier.NotifyAssigned(ctx, after, userID, actor); err != nil {
			errs = append(errs, err)
		}
	}

	if after.CreatedBy != nil && !actor.Is(*after.CreatedBy) {
		if err := s.notifier.NotifyUpdated(ctx, after, actor); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}

func (s *TaskService) resolveActor(ctx context.Context, username string) Actor {
	actor := Actor{Username: username}
	userID, err := s.users.ActiveUserID(ctx, username)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			logging.Logger.WithError(err).WithField("actor", username).Warn("failed to resolve acting user")
		}
		return actor
	}
	actor.ID = &userID
	return actor
}

func (s *TaskService) observe(task *model.Task, actor string, errs []error) {
	for _, err := range errs {
		logging.Logger.WithError(err).WithFields(logrus.Fields{
			"task":  task.Code,
			"actor": actor,
		}).Warn("notification skipped")
	}
}

func (s *TaskService) writeLog(ctx context.Context, actor, taskCode, event string) error {
	entry := &model.TaskLog{
		Actor:     actor,
		TaskCode:  taskCode,
		Event:     event,
		CreatedAt: s.now(),
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		return apperrors.Store("failed to write task log", err)
	}
	return nil
}

func validateTaskFields(req *dto.TaskRequestData) error {
	if req.Status != "" && !req.Status.Valid() {
		return apperrors.Validation("invalid stato '%s'", req.Status)
	}
	if req.Priority != "" && !req.Priority.Valid() {
		return apperrors.Validation("invalid priorità '%s'", req.Priority)
	}
	if req.EstimatedHours < 0 || req.DedicatedHours < 0 {
		return apperrors.ErrNegativeHours
	}
	return nil
}

func matches(task model.Task, f dto.TaskFilter) bool {
	if f.Status != "" && task.Status != f.Status {
		return false
	}
	if f.Priority != "" && task.Priority != f.Priority {
		return false
	}
	if f.Software != "" && task.Software != f.Software {
		return false
	}
	if f.Client != "" && task.Client != f.Client {
		return false
	}
	if f.Assignee != "" && !assignees.Contains(task.Assignees, task.Assignee, f.Assignee) {
		return false
	}
	return true
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
