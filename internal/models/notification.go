package model

import (
	"time"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
)

type Notification struct {
	ID        uint                       `gorm:"primaryKey" json:"id"`
	UserID    uint                       `gorm:"not null;index" json:"userId"`
	TaskID    *uint                      `gorm:"index" json:"taskId,omitempty"`
	Type      constants.NotificationType `gorm:"size:30;not null" json:"type"`
	Title     string                     `gorm:"size:200;not null" json:"title"`
	Message   string                     `gorm:"size:1000;not null" json:"message"`
	IsRead    bool                       `gorm:"not null" json:"isRead"`
	CreatedAt time.Time                  `gorm:"autoCreateTime" json:"createdAt"`
	CreatedBy *uint                      `json:"createdBy,omitempty"`
}

// NotificationView is a notification joined with its task and author for display.
type NotificationView struct {
	Notification
	TaskCode        *string `gorm:"column:task_code" json:"codiceTask,omitempty"`
	TaskDescription *string `gorm:"column:task_description" json:"taskDescrizione,omitempty"`
	CreatedByName   *string `gorm:"column:created_by_name" json:"createdByName,omitempty"`
}
