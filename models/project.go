package models

import (
	"time"
)

// Project represents a repository a user is working on
type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	UserOwnerID uint      `json:"user_owner_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Owner User   `json:"-" gorm:"foreignKey:UserOwnerID"`
	Chats []Chat `json:"chats,omitempty" gorm:"foreignKey:ProjectID"`
}
