package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/assignees"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

const (
	logTaskUpdated = "Task aggiornato"
	logTaskCreated = "Task creato: %s"
	logAssignedTo  = " - Assegnato a: %s"
	logTaskDeleted = "Task eliminato: %s"
)

// describeChanges renders the audit entry of an update: a header line followed
// by one "<Label>: <old> -> <new>" line per changed field, in fixed order.
func describeChanges(before, after *model.Task) string {
	lines := []string{logTaskUpdated}

	diff := func(label, prev, next string) {
		if prev != next {
			lines = append(lines, fmt.Sprintf("%s: %s -> %s", label, prev, next))
		}
	}

	diff("Descrizione", before.Description, after.Description)
	diff("Data scadenza", formatDate(before.DueAt), formatDate(after.DueAt))
	diff("Stato", string(before.Status), string(after.Status))
	diff("Utenti assegnati",
		assignees.Display(before.Assignees, before.Assignee),
		assignees.Display(after.Assignees, after.Assignee))
	diff("Priorità", string(before.Priority), string(after.Priority))
	diff("Commenti", before.Comments, after.Comments)

	return strings.Join(lines, "\n")
}

func describeCreation(task *model.Task) string {
	event := fmt.Sprintf(logTaskCreated, task.Description)
	if task.Assignees != "" {
		event += fmt.Sprintf(logAssignedTo, task.Assignees)
	}
	return event
}

func describeDeletion(task *model.Task) string {
	return fmt.Sprintf(logTaskDeleted, task.Description)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
