package model

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:4000;not null" json:"commento"`
	Author    string    `gorm:"size:50;not null;index" json:"utente"`
	TaskID    uint      `gorm:"not null;index" json:"idTask"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"datetime"`
	Hours     float64   `gorm:"type:decimal(5,2);not null;default:0" json:"oreDedicate"`

	Task *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}

// CommentWithTask is a comment joined with the code and description of its task.
type CommentWithTask struct {
	ID              uint      `gorm:"column:id" json:"id"`
	Text            string    `gorm:"column:text" json:"commento"`
	Author          string    `gorm:"column:author" json:"utente"`
	TaskID          uint      `gorm:"column:task_id" json:"idTask"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"datetime"`
	Hours           float64   `gorm:"column:hours" json:"oreDedicate"`
	TaskCode        string    `gorm:"column:task_code" json:"codiceTask"`
	TaskDescription string    `gorm:"column:task_description" json:"taskDescrizione"`
}
