package model

import (
	"time"

	"github.com/AMSkillPower/TaskMngrCommenti/internal/constants"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	Role      constants.Role `gorm:"size:10;not null" json:"role"`
	FullName  string         `gorm:"size:100" json:"fullName"`
	Email     *string        `gorm:"size:100" json:"email,omitempty"`
	IsActive  bool           `gorm:"not null;index" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// All lists every model managed by AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Task{},
		&Comment{},
		&Attachment{},
		&TaskLog{},
		&Notification{},
	}
}
