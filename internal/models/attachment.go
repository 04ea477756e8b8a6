package model

// Attachment holds the file inline as a data URL, which carries its own media type.
type Attachment struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Data   string `gorm:"type:text;not null" json:"allegato"`
	TaskID uint   `gorm:"not null;index" json:"idTask"`

	Task *Task `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}
