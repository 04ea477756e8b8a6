package services

import (
	"context"

	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

// Actor is the user performing a write. ID is nil when the username does not
// resolve to an active user.
type Actor struct {
	Username string
	ID       *uint
}

// Is reports whether the actor resolved to userID.
func (a Actor) Is(userID uint) bool {
	return a.ID != nil && *a.ID == userID
}

type UserResolver interface {
	ActiveUserID(ctx context.Context, username string) (uint, error)
}

// NotificationSink receives the notifications produced by the task workflow.
// Failures are reported back but never abort the workflow.
type NotificationSink interface {
	NotifyAssigned(ctx context.Context, task *model.Task, assigneeID uint, actor Actor) error
	NotifyUpdated(ctx context.Context, task *model.Task, actor Actor) error
}
