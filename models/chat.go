package models

import (
	"time"
)

// Chat represents an agent conversation scoped to a project
type Chat struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	ProjectID uint      `json:"project_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	StatusID  uint      `json:"status_id" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Project Project    `json:"-" gorm:"foreignKey:ProjectID"`
	User    User       `json:"-" gorm:"foreignKey:UserID"`
	Status  ChatStatus `json:"-" gorm:"foreignKey:StatusID"`
	Tasks   []Task     `json:"tasks,omitempty" gorm:"foreignKey:ChatID"`
}
