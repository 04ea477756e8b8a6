package validators

import (
	"unicode/utf8"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/assignees"
	dto "github.com/AMSkillPower/TaskMngrCommenti/internal/data_models"
	apperrors "github.com/AMSkillPower/TaskMngrCommenti/internal/errors"
)

// Column sizes of the tasks table.
const (
	maxCodeLen        = 50
	maxTicketRefLen   = 50
	maxDescriptionLen = 255
	maxSoftwareLen    = 50
	maxAssigneeLen    = 30
	maxAssigneesLen   = 500
	maxClientLen      = 50
	maxCommentsLen    = 4000
	maxHours          = 999.99
)

func ValidateTaskRequest(r *dto.TaskRequestData) error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"codiceTask", r.Code, maxCodeLen},
		{"rifTicket", r.TicketRef, maxTicketRefLen},
		{"descrizione", r.Description, maxDescriptionLen},
		{"software", r.Software, maxSoftwareLen},
		{"utente", r.Assignee, maxAssigneeLen},
		{"clienti", r.Client, maxClientLen},
		{"commenti", r.Comments, maxCommentsLen},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return apperrors.Validation("%s must be at most %d characters", f.name, f.max)
		}
	}

	assignment := assignees.Normalize(r.Assignees, r.Assignee)
	for _, u := range assignment.List {
		if utf8.RuneCountInString(u) > maxAssigneeLen {
			return apperrors.Validation("utenti entries must be at most %d characters", maxAssigneeLen)
		}
	}
	if utf8.RuneCountInString(assignment.Canonical) > maxAssigneesLen {
		return apperrors.Validation("utenti must be at most %d characters once joined", maxAssigneesLen)
	}

	if r.EstimatedHours > maxHours || r.DedicatedHours > maxHours {
		return apperrors.Validation("hours must be at most %.2f", maxHours)
	}
	if r.ReportedAt != nil && r.DueAt != nil && r.DueAt.Before(*r.ReportedAt) {
		return apperrors.Validation("dataScadenza must not precede dataSegnalazione")
	}
	return nil
}
