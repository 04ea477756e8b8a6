package dto

import (
	"strings"
	"time"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/assignees"
	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
	model "github.com/AMSkillPower/TaskMngrCommenti/internal/models"
)

// TaskRequestData is the full task payload accepted by create and update.
type TaskRequestData struct {
	Code           string               `json:"codiceTask"`
	TicketRef      string               `json:"rifTicket"`
	Description    string               `json:"descrizione"`
	ReportedAt     *time.Time           `json:"dataSegnalazione"`
	DueAt          *time.Time           `json:"dataScadenza"`
	Status         constants.TaskStatus `json:"stato"`
	Software       string               `json:"software"`
	Assignee       string               `json:"utente"`
	Assignees      []string             `json:"utenti"`
	Client         string               `json:"clienti"`
	Priority       constants.Priority   `json:"priorità"`
	Comments       string               `json:"commenti"`
	EstimatedHours float64              `json:"oreStimate"`
	DedicatedHours float64              `json:"oreDedicate"`
}

type CreateTaskRequest = TaskRequestData

type UpdateTaskRequest = TaskRequestData

// TicketRefPtr returns nil for an empty ticket reference.
func (r *TaskRequestData) TicketRefPtr() *string {
	ref := strings.TrimSpace(r.TicketRef)
	if ref == "" {
		return nil
	}
	return &ref
}

type TaskFilter struct {
	Status   constants.TaskStatus
	Priority constants.Priority
	Software string
	Client   string
	Assignee string
}

type TaskResponse struct {
	*model.Task
	Assignees []string `json:"utenti,omitempty"`
}

func NewTaskResponse(task *model.Task) TaskResponse {
	resp := TaskResponse{Task: task}
	if task.Assignees != "" {
		resp.Assignees = assignees.Parse(task.Assignees, "")
	}
	return resp
}

func NewTaskResponses(tasks []model.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewTaskResponse(&tasks[i]))
	}
	return out
}
