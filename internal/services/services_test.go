package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
)

// recordingSink is an in-memory NotificationSink for testing
type recordingSink struct {
	mu       sync.Mutex
	assigned []uint
	updated  []uint
	err      error
}

func (s *recordingSink) NotifyAssigned(ctx context.Context, task *model.Task, assigneeID uint, actor Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.assigned = append(s.assigned, assigneeID)
	return nil
}

func (s *recordingSink) NotifyUpdated(ctx context.Context, task *model.Task, actor Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}
	s.updated = append(s.updated, *task.CreatedBy)
	return nil
}

type fixture struct {
	db          *gorm.DB
	users       map[string]uint
	sink        *recordingSink
	taskRepo    *repository.TaskRepository
	logRepo     *repository.TaskLogRepository
	userService *UserService
	taskService *TaskService
}

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newFixture(t *testing.T, usernames ...string) *fixture {
	db := setupTestDB(t)

	f := &fixture{
		db:       db,
		users:    make(map[string]uint),
		sink:     &recordingSink{},
		taskRepo: repository.NewTaskRepository(db),
		logRepo:  repository.NewTaskLogRepository(db),
	}
	f.userService = NewUserService(repository.NewUserRepository(db))
	f.taskService = NewTaskService(f.taskRepo, f.logRepo, f.userService, f.sink)

	for _, username := range usernames {
		user, err := f.userService.Create(context.Background(), dto.CreateUserRequest{Username: username})
		if err != nil {
			t.Fatalf("failed to seed user %s: %v", username, err)
		}
		f.users[username] = user.ID
	}

	return f
}

func (f *fixture) createTask(t *testing.T, actor string, req dto.CreateTaskRequest) *model.Task {
	t.Helper()

	task, err := f.taskService.CreateTask(context.Background(), &req, actor)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	f.sink.mu.Lock()
	f.sink.assigned, f.sink.updated = nil, nil
	f.sink.mu.Unlock()

	return task
}

func (f *fixture) logs(t *testing.T, code string) []model.TaskLog {
	t.Helper()

	entries, err := f.logRepo.List(context.Background(), code)
	if err != nil {
		t.Fatalf("failed to list logs: %v", err)
	}
	return entries
}

func updateFrom(task *model.Task) dto.UpdateTaskRequest {
	return dto.UpdateTaskRequest{
		Code:        task.Code,
		Description: task.Description,
		DueAt:       task.DueAt,
		Status:      task.Status,
		Assignee:    task.Assignee,
		Client:      task.Client,
		Priority:    task.Priority,
		Comments:    task.Comments,
		Software:    task.Software,
	}
}

func TestTaskService_CreateRequiresAssignee(t *testing.T) {
	f := newFixture(t, "alice")
	ctx := context.Background()

	_, err := f.taskService.CreateTask(ctx, &dto.CreateTaskRequest{Code: "T-1", Assignees: []string{}}, "alice")
	if !errors.Is(err, apperrors.ErrAssigneeRequired) {
		t.Fatalf("expected ErrAssigneeRequired, got %v", err)
	}

	tasks, _ := f.taskService.ListTasks(ctx, dto.TaskFilter{})
	if len(tasks) != 0 {
		t.Errorf("expected no task rows, got %d", len(tasks))
	}
}

func TestTaskService_CreateRequiresCode(t *testing.T) {
	f := newFixture(t, "alice")

	_, err := f.taskService.CreateTask(context.Background(), &dto.CreateTaskRequest{Assignee: "alice"}, "alice")
	if !errors.Is(err, apperrors.ErrTaskCodeRequired) {
		t.Fatalf("expected ErrTaskCodeRequired, got %v", err)
	}
}

func TestTaskService_CreateRequiresActiveCreator(t *testing.T) {
	f := newFixture(t, "alice", "ghost")
	ctx := context.Background()

	if err := f.userService.SetActive(ctx, "ghost", false); err != nil {
		t.Fatalf("failed to deactivate user: %v", err)
	}

	for _, actor := range []string{"ghost", constants.UnknownActor} {
		_, err := f.taskService.CreateTask(ctx, &dto.CreateTaskRequest{Code: "T-1", Assignee: "alice"}, actor)
		if apperrors.StatusCode(err) != 400 {
			t.Errorf("actor %s: expected validation error, got %v", actor, err)
		}
	}

	tasks, _ := f.taskService.ListTasks(ctx, dto.TaskFilter{})
	if len(tasks) != 0 {
		t.Errorf("expected no task rows, got %d", len(tasks))
	}
	if entries := f.logs(t, ""); len(entries) != 0 {
		t.Errorf("expected no log entries, got %d", len(entries))
	}
}

func TestTaskService_CreateRejectsDuplicateCode(t *testing.T) {
	f := newFixture(t, "alice")
	f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice"})

	_, err := f.taskService.CreateTask(context.Background(), &dto.CreateTaskRequest{Code: "T-1", Assignee: "alice"}, "alice")
	if apperrors.StatusCode(err) != 409 {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestTaskService_CreateRoundTripsAssignees(t *testing.T) {
	f := newFixture(t, "alice")
	task := f.createTask(t, "alice", dto.CreateTaskRequest{
		Code:      "T-1",
		Assignees: []string{"x", "y", "z"},
	})

	fetched, err := f.taskService.GetTask(context.Background(), task.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}

	resp := dto.NewTaskResponse(fetched)
	if !reflect.DeepEqual(resp.Assignees, []string{"x", "y", "z"}) {
		t.Errorf("expected [x y z], got %v", resp.Assignees)
	}
	if fetched.Assignee != "x" {
		t.Errorf("expected legacy field x, got %q", fetched.Assignee)
	}
	if fetched.CreatedBy == nil || *fetched.CreatedBy != f.users["alice"] {
		t.Errorf("expected createdBy to be alice, got %v", fetched.CreatedBy)
	}
	if fetched.EstimatedHours != 0 || fetched.DedicatedHours != 0 {
		t.Errorf("expected zero hours, got %v/%v", fetched.EstimatedHours, fetched.DedicatedHours)
	}
}

func TestTaskService_CreateKeepsCommaInsideUsername(t *testing.T) {
	f := newFixture(t, "alice")
	task := f.createTask(t, "alice", dto.CreateTaskRequest{
		Code:      "T-1",
		Assignees: []string{"rossi,mario", "alice"},
	})

	if task.Assignees != "rossi,mario, alice" {
		t.Errorf("unexpected canonical list %q", task.Assignees)
	}
	resp := dto.NewTaskResponse(task)
	if !reflect.DeepEqual(resp.Assignees, []string{"rossi,mario", "alice"}) {
		t.Errorf("expected [rossi,mario alice], got %v", resp.Assignees)
	}

	tasks, _ := f.taskService.ListTasks(context.Background(), dto.TaskFilter{Assignee: "mario"})
	if len(tasks) != 0 {
		t.Errorf("expected no match for a username fragment, got %d", len(tasks))
	}
}

func TestTaskService_CreateNotifiesAssigneesExceptCreator(t *testing.T) {
	f := newFixture(t, "alice", "bob")

	_, err := f.taskService.CreateTask(context.Background(), &dto.CreateTaskRequest{
		Code:        "T-1",
		Description: "Login broken",
		Assignees:   []string{"alice", "bob", "nobody"},
	}, "alice")
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if !reflect.DeepEqual(f.sink.assigned, []uint{f.users["bob"]}) {
		t.Errorf("expected one notification to bob, got %v", f.sink.assigned)
	}

	entries := f.logs(t, "T-1")
	if len(entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(entries))
	}
	want := "Task creato: Login broken - Assegnato a: alice, bob, nobody"
	if entries[0].Event != want {
		t.Errorf("expected %q, got %q", want, entries[0].Event)
	}
}

func TestTaskService_UpdateNotifiesOnlyAddedUsers(t *testing.T) {
	f := newFixture(t, "alice", "bob", "carol")
	task := f.createTask(t, "carol", dto.CreateTaskRequest{Code: "T-1", Assignees: []string{"alice"}})

	req := updateFrom(task)
	req.Assignee = ""
	req.Assignees = []string{"alice", "bob"}

	updated, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "carol")
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if !reflect.DeepEqual(f.sink.assigned, []uint{f.users["bob"]}) {
		t.Errorf("expected exactly one notification to bob, got %v", f.sink.assigned)
	}
	if len(f.sink.updated) != 0 {
		t.Errorf("creator updated own task, expected no update notification, got %v", f.sink.updated)
	}
	if updated.Assignees != "alice, bob" || updated.Assignee != "alice" {
		t.Errorf("unexpected assignment %q / %q", updated.Assignees, updated.Assignee)
	}
}

func TestTaskService_UpdateSameAssigneeSetIsSilent(t *testing.T) {
	f := newFixture(t, "alice", "bob", "carol")
	task := f.createTask(t, "carol", dto.CreateTaskRequest{Code: "T-1", Assignees: []string{"alice", "bob"}})

	req := updateFrom(task)
	req.Assignee = ""
	req.Assignees = []string{" bob", "alice ", "bob"}

	if _, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "carol"); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if len(f.sink.assigned) != 0 {
		t.Errorf("expected no assignment notifications, got %v", f.sink.assigned)
	}
}

func TestTaskService_UpdateNotifiesCreatorWhenSomeoneElseEdits(t *testing.T) {
	f := newFixture(t, "alice", "bob", "carol")
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignees: []string{"bob"}})

	req := updateFrom(task)
	req.Assignee = ""
	req.Assignees = []string{"bob", "alice"}

	if _, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "carol"); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if !reflect.DeepEqual(f.sink.assigned, []uint{f.users["alice"]}) {
		t.Errorf("expected assignment notification to alice, got %v", f.sink.assigned)
	}
	if !reflect.DeepEqual(f.sink.updated, []uint{f.users["alice"]}) {
		t.Errorf("expected update notification to alice, got %v", f.sink.updated)
	}
}

func TestTaskService_UpdateByUnresolvedActorIsSilent(t *testing.T) {
	f := newFixture(t, "alice", "bob", "carol")
	task := f.createTask(t, "carol", dto.CreateTaskRequest{Code: "T-1", Assignees: []string{"alice"}})

	req := updateFrom(task)
	req.Assignee = ""
	req.Assignees = []string{"alice", "bob"}

	updated, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, constants.UnknownActor)
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if len(f.sink.assigned) != 0 || len(f.sink.updated) != 0 {
		t.Errorf("expected no notifications, got assigned=%v updated=%v", f.sink.assigned, f.sink.updated)
	}
	if updated.Assignees != "alice, bob" {
		t.Errorf("expected update to be persisted, got %q", updated.Assignees)
	}

	entries := f.logs(t, "T-1")
	if len(entries) != 2 || entries[0].Actor != constants.UnknownActor {
		t.Errorf("expected update entry by Unknown, got %+v", entries)
	}
}

func TestTaskService_UpdateReportsLogFailure(t *testing.T) {
	f := newFixture(t, "alice")
	ctx := context.Background()
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice", Status: constants.StatusOpen})

	if err := f.db.Migrator().DropTable(&model.TaskLog{}); err != nil {
		t.Fatalf("failed to drop task logs: %v", err)
	}

	req := updateFrom(task)
	req.Status = constants.StatusClosed

	_, err := f.taskService.UpdateTask(ctx, task.ID, &req, "alice")
	if err == nil {
		t.Fatal("expected log write failure to be returned")
	}
	if apperrors.StatusCode(err) != 500 || !strings.Contains(err.Error(), "failed to write task log") {
		t.Errorf("unexpected error %v", err)
	}

	stored, err := f.taskService.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if stored.Status != constants.StatusClosed {
		t.Errorf("expected update to stay persisted, got stato %q", stored.Status)
	}
}

func TestTaskService_UpdateLogsOnlyChangedFields(t *testing.T) {
	f := newFixture(t, "alice")
	task := f.createTask(t, "alice", dto.CreateTaskRequest{
		Code:        "T-1",
		Description: "A",
		Status:      constants.StatusOpen,
		Assignee:    "alice",
	})

	req := updateFrom(task)
	req.Status = constants.StatusClosed

	if _, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "alice"); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	entries := f.logs(t, "T-1")
	if len(entries) != 2 {
		t.Fatalf("expected creation and update entries, got %d", len(entries))
	}

	lines := strings.Split(entries[0].Event, "\n")
	want := []string{"Task aggiornato", "Stato: aperto -> chiuso"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("expected %q, got %q", want, lines)
	}
	if entries[0].Actor != "alice" || entries[0].TaskCode != "T-1" {
		t.Errorf("unexpected log entry %+v", entries[0])
	}
}

func TestTaskService_UpdateWithoutChangesStillLogs(t *testing.T) {
	f := newFixture(t, "alice")
	due := time.Date(2030, 5, 1, 9, 0, 0, 0, time.UTC)
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice", DueAt: &due})

	req := updateFrom(task)
	if _, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "alice"); err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	entries := f.logs(t, "T-1")
	if entries[0].Event != "Task aggiornato" {
		t.Errorf("expected bare header, got %q", entries[0].Event)
	}
}

func TestTaskService_UpdateMissingTask(t *testing.T) {
	f := newFixture(t, "alice")

	req := dto.UpdateTaskRequest{Assignee: "alice"}
	_, err := f.taskService.UpdateTask(context.Background(), 999, &req, "alice")
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	if entries := f.logs(t, ""); len(entries) != 0 {
		t.Errorf("expected no log entries, got %d", len(entries))
	}
}

func TestTaskService_UpdateSurvivesNotificationFailure(t *testing.T) {
	f := newFixture(t, "alice", "bob", "carol")
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice"})
	f.sink.err = errors.New("notifications store down")

	req := updateFrom(task)
	req.Assignee = ""
	req.Assignees = []string{"alice", "bob"}

	updated, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "carol")
	if err != nil {
		t.Fatalf("expected update to succeed, got %v", err)
	}
	if updated.Assignees != "alice, bob" {
		t.Errorf("expected update to be persisted, got %q", updated.Assignees)
	}

	entries := f.logs(t, "T-1")
	if len(entries) != 2 || !strings.Contains(entries[0].Event, "Utenti assegnati: alice -> alice, bob") {
		t.Errorf("expected update log entry, got %+v", entries)
	}
}

func TestTaskService_UpdateNeverTouchesImmutableFields(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	reported := time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice", ReportedAt: &reported})

	req := updateFrom(task)
	req.Code = "CHANGED"
	later := reported.Add(48 * time.Hour)
	req.ReportedAt = &later

	updated, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "bob")
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if updated.Code != "T-1" {
		t.Errorf("expected code to stay T-1, got %s", updated.Code)
	}
	if !updated.ReportedAt.Equal(reported) {
		t.Errorf("expected reported date to stay %v, got %v", reported, updated.ReportedAt)
	}
	if updated.CreatedBy == nil || *updated.CreatedBy != f.users["alice"] {
		t.Errorf("expected creator to stay alice, got %v", updated.CreatedBy)
	}
}

func TestTaskService_UpdateRejectsEmptyAssignment(t *testing.T) {
	f := newFixture(t, "alice")
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice"})

	req := updateFrom(task)
	req.Assignee = ""
	req.Assignees = nil

	if _, err := f.taskService.UpdateTask(context.Background(), task.ID, &req, "alice"); !errors.Is(err, apperrors.ErrAssigneeRequired) {
		t.Fatalf("expected ErrAssigneeRequired, got %v", err)
	}
}

func TestTaskService_DeleteCascadesAndLogs(t *testing.T) {
	f := newFixture(t, "alice")
	ctx := context.Background()
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Description: "Crash", Assignee: "alice"})

	comments := NewCommentService(repository.NewCommentRepository(f.db), f.taskRepo)
	if _, err := comments.Create(ctx, &dto.CreateCommentRequest{Text: "looking", TaskID: task.ID}, "alice"); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	if err := f.taskService.DeleteTask(ctx, task.ID, "alice"); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}

	left, _ := comments.ListByTask(ctx, task.ID)
	if len(left) != 0 {
		t.Errorf("expected comments to be deleted, got %d", len(left))
	}
	if entries := f.logs(t, "T-1"); entries[0].Event != "Task eliminato: Crash" {
		t.Errorf("unexpected deletion log %q", entries[0].Event)
	}

	if err := f.taskService.DeleteTask(ctx, task.ID, "alice"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestTaskService_ListFilters(t *testing.T) {
	f := newFixture(t, "alice")
	f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignees: []string{"bob", "carol"}, Status: constants.StatusOpen})
	f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-2", Assignee: "carol", Status: constants.StatusClosed})

	tasks, err := f.taskService.ListTasks(context.Background(), dto.TaskFilter{Assignee: "carol", Status: constants.StatusOpen})
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Code != "T-1" {
		t.Errorf("expected only T-1, got %+v", tasks)
	}
}

func TestCommentService_TotalHours(t *testing.T) {
	f := newFixture(t, "alice")
	ctx := context.Background()
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice"})
	comments := NewCommentService(repository.NewCommentRepository(f.db), f.taskRepo)

	for _, hours := range []float64{1.5, 0, 2.25} {
		if _, err := comments.Create(ctx, &dto.CreateCommentRequest{Text: "work", TaskID: task.ID, Hours: hours}, "alice"); err != nil {
			t.Fatalf("failed to create comment: %v", err)
		}
	}

	total, err := comments.TotalHours(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to compute total: %v", err)
	}
	if total != 3.75 {
		t.Errorf("expected 3.75, got %v", total)
	}

	if empty, _ := comments.TotalHours(ctx, 999); empty != 0 {
		t.Errorf("expected 0 for task without comments, got %v", empty)
	}
}

func TestCommentService_Validation(t *testing.T) {
	f := newFixture(t, "alice")
	ctx := context.Background()
	comments := NewCommentService(repository.NewCommentRepository(f.db), f.taskRepo)

	if _, err := comments.Create(ctx, &dto.CreateCommentRequest{Text: "  ", TaskID: 1}, "alice"); !errors.Is(err, apperrors.ErrCommentTextRequired) {
		t.Errorf("expected ErrCommentTextRequired, got %v", err)
	}
	if _, err := comments.Create(ctx, &dto.CreateCommentRequest{Text: "hi", TaskID: 42}, "alice"); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if _, err := comments.Update(ctx, 42, &dto.UpdateCommentRequest{Text: "hi"}); !errors.Is(err, apperrors.ErrCommentNotFound) {
		t.Errorf("expected ErrCommentNotFound, got %v", err)
	}
}

func TestCommentService_ListByUserJoinsTask(t *testing.T) {
	f := newFixture(t, "alice")
	ctx := context.Background()
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-7", Description: "Printer", Assignee: "alice"})
	comments := NewCommentService(repository.NewCommentRepository(f.db), f.taskRepo)

	if _, err := comments.Create(ctx, &dto.CreateCommentRequest{Text: "fixed", TaskID: task.ID, Hours: 1}, "alice"); err != nil {
		t.Fatalf("failed to create comment: %v", err)
	}

	rows, err := comments.ListByUser(ctx, "alice")
	if err != nil {
		t.Fatalf("failed to list comments: %v", err)
	}
	if len(rows) != 1 || rows[0].TaskCode != "T-7" || rows[0].TaskDescription != "Printer" {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestNotificationService_AssignAndMarkRead(t *testing.T) {
	f := newFixture(t, "alice", "bob")
	ctx := context.Background()
	notifications := NewNotificationService(repository.NewNotificationRepository(f.db), f.userService, BreakerSettings{})
	f.taskService = NewTaskService(f.taskRepo, f.logRepo, f.userService, notifications)

	if _, err := f.taskService.CreateTask(ctx, &dto.CreateTaskRequest{Code: "T-1", Description: "Crash", Assignee: "bob"}, "alice"); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	views, err := notifications.ListForUser(ctx, "bob", true)
	if err != nil {
		t.Fatalf("failed to list notifications: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("expected one notification, got %d", len(views))
	}
	n := views[0]
	if n.Type != constants.NotificationTaskAssigned || n.TaskCode == nil || *n.TaskCode != "T-1" {
		t.Errorf("unexpected notification %+v", n)
	}
	if n.CreatedBy == nil || *n.CreatedBy != f.users["alice"] {
		t.Errorf("expected createdBy alice, got %v", n.CreatedBy)
	}

	if err := notifications.MarkRead(ctx, n.ID, "alice"); !errors.Is(err, apperrors.ErrNotificationForbidden) {
		t.Errorf("expected ErrNotificationForbidden, got %v", err)
	}
	if err := notifications.MarkRead(ctx, n.ID, "bob"); err != nil {
		t.Fatalf("failed to mark read: %v", err)
	}

	unread, _ := notifications.ListForUser(ctx, "bob", true)
	if len(unread) != 0 {
		t.Errorf("expected no unread notifications, got %d", len(unread))
	}
}

func TestNotificationService_OverdueOnce(t *testing.T) {
	f := newFixture(t, "alice")
	ctx := context.Background()
	notifications := NewNotificationService(repository.NewNotificationRepository(f.db), f.userService, BreakerSettings{})
	task := f.createTask(t, "alice", dto.CreateTaskRequest{Code: "T-1", Assignee: "alice"})

	created, err := notifications.NotifyOverdueOnce(ctx, task, f.users["alice"])
	if err != nil || !created {
		t.Fatalf("expected first overdue notification, got %v %v", created, err)
	}

	created, err = notifications.NotifyOverdueOnce(ctx, task, f.users["alice"])
	if err != nil || created {
		t.Errorf("expected duplicate to be skipped, got %v %v", created, err)
	}
}
