package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/assignees"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/logging"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/queue"
	repository "github.com/AMSkillPower/TaskMngrCommenti/internal/repositories"
)

type OverdueNotifier interface {
	NotifyOverdueOnce(ctx context.Context, task *model.Task, userID uint) (bool, error)
}

type OverdueOptions struct {
	Workers   int
	QueueSize int
	BatchSize int
	// Interval between scans. Zero disables the background loop.
	Interval time.Duration
}

// OverdueService periodically finds tasks past their due date and notifies
// their assignees once per task.
type OverdueService struct {
	queue     chan uint
	wg        sync.WaitGroup
	scanWG    sync.WaitGroup
	inFlight  sync.Map
	tasks     *repository.TaskRepository
	users     UserResolver
	notifier  OverdueNotifier
	lease     queue.Lease
	interval  time.Duration
	batchSize int
	stop      chan struct{}
	stopOnce  sync.Once
	now       func() time.Time
}

func NewOverdueService(
	tasks *repository.TaskRepository,
	users UserResolver,
	notifier OverdueNotifier,
	lease queue.Lease,
	opts OverdueOptions,
) *OverdueService {
	p := &OverdueService{
		queue:     make(chan uint, opts.QueueSize),
		tasks:     tasks,
		users:     users,
		notifier:  notifier,
		lease:     lease,
		interval:  opts.Interval,
		batchSize: opts.BatchSize,
		stop:      make(chan struct{}),
		now:       func() time.Time { return time.Now().UTC() },
	}

	if p.interval > 0 {
		p.scanWG.Add(1)
		go p.scanLoop()
	}

	for i := 1; i <= opts.Workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

// Enqueue schedules a task for an overdue check. It returns false when the
// task is already queued or the queue is full.
func (p *OverdueService) Enqueue(taskID uint) bool {
	ok, _ := p.enqueueIfNotPresent(taskID)
	return ok
}

// ScanOnce enqueues every overdue task if this instance holds the sweep lease.
func (p *OverdueService) ScanOnce(ctx context.Context) (int, error) {
	ttl := p.interval / 2
	if ttl <= 0 {
		ttl = time.Second
	}

	acquired, err := p.lease.Acquire(ctx, ttl)
	if err != nil {
		return 0, err
	}
	if !acquired {
		logging.Logger.Debug("overdue sweep: lease held elsewhere")
		return 0, nil
	}

	tasks, err := p.tasks.ListOverdue(ctx, p.now(), p.batchSize)
	if err != nil {
		return 0, apperrors.Store("failed to list overdue tasks", err)
	}

	enqueued := 0
	for _, task := range tasks {
		ok, queueFull := p.enqueueIfNotPresent(task.ID)
		if queueFull {
			break
		}
		if ok {
			enqueued++
		}
	}
	return enqueued, nil
}

func (p *OverdueService) scanLoop() {
	defer p.scanWG.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n, err := p.ScanOnce(context.Background()); err != nil {
				logging.Logger.WithError(err).Error("overdue sweep failed")
			} else if n > 0 {
				logging.Logger.WithField("tasks", n).Info("overdue sweep queued tasks")
			}
		case <-p.stop:
			return
		}
	}
}

func (p *OverdueService) worker(workerID int) {
	defer p.wg.Done()

	log := logging.Logger.WithField("worker", workerID)
	log.Debug("overdue worker started")

	for taskID := range p.queue {
		p.handleTask(log, taskID)
	}

	log.Debug("overdue worker stopped")
}

func (p *OverdueService) handleTask(log *logrus.Entry, taskID uint) {
	defer p.inFlight.Delete(taskID)

	ctx := context.Background()
	log = log.WithField("task_id", taskID)

	task, err := p.tasks.FindByID(ctx, taskID)
	if err != nil {
		log.WithError(err).Warn("overdue task not found")
		return
	}
	if task.Status == constants.StatusClosed || task.DueAt == nil || !task.DueAt.Before(p.now()) {
		return
	}

	for _, username := range assignees.Parse(task.Assignees, task.Assignee) {
		userID, err := p.users.ActiveUserID(ctx, username)
		if err != nil {
			if !errors.Is(err, apperrors.ErrUserNotFound) {
				log.WithError(err).WithField("user", username).Warn("failed to resolve assignee")
			}
			continue
		}

		created, err := p.notifier.NotifyOverdueOnce(ctx, task, userID)
		if err != nil {
			log.WithError(err).WithField("user", username).Warn("failed to notify overdue task")
			continue
		}
		if created {
			log.WithField("user", username).Info("overdue notification sent")
		}
	}
}

// enqueueIfNotPresent reports (enqueued, queueFull).
func (p *OverdueService) enqueueIfNotPresent(taskID uint) (bool, bool) {
	if _, loaded := p.inFlight.LoadOrStore(taskID, struct{}{}); loaded {
		return false, false
	}

	select {
	case p.queue <- taskID:
		return true, false
	default:
		p.inFlight.Delete(taskID)
		return false, true
	}
}

func (p *OverdueService) Shutdown(ctx context.Context) {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.scanWG.Wait()
		close(p.queue)
	})

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Logger.Info("overdue workers shut down cleanly")
	case <-ctx.Done():
		logging.Logger.Warn("overdue workers shutdown timed out")
	}
}
