package model

import (
	"time"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
)

type Task struct {
	ID             uint                 `gorm:"primaryKey" json:"id"`
	Code           string               `gorm:"size:50;not null;uniqueIndex" json:"codiceTask"`
	TicketRef      *string              `gorm:"size:50" json:"rifTicket"`
	Description    string               `gorm:"size:255" json:"descrizione"`
	ReportedAt     time.Time            `gorm:"not null;index" json:"dataSegnalazione"`
	DueAt          *time.Time           `json:"dataScadenza"`
	Status         constants.TaskStatus `gorm:"size:30;index" json:"stato"`
	Software       string               `gorm:"size:50" json:"software"`
	Assignee       string               `gorm:"size:30" json:"utente"`
	Assignees      string               `gorm:"size:500" json:"-"`
	Client         string               `gorm:"size:50" json:"clienti"`
	Priority       constants.Priority   `gorm:"size:30" json:"priorità"`
	Comments       string               `gorm:"size:4000" json:"commenti"`
	CreatedBy      *uint                `gorm:"index" json:"createdBy"`
	EstimatedHours float64              `gorm:"type:decimal(5,2);not null;default:0" json:"oreStimate"`
	DedicatedHours float64              `gorm:"type:decimal(5,2);not null;default:0" json:"oreDedicate"`
}
