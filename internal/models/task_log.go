package model

import "time"

type TaskLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Actor     string    `gorm:"size:50;not null;index" json:"utente"`
	TaskCode  string    `gorm:"size:50;not null;index" json:"codiceTask"`
	Event     string    `gorm:"type:text;not null" json:"eventLog"`
	CreatedAt time.Time `gorm:"not null;index" json:"data"`
}
