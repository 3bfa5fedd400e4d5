package models

import (
	"time"
)

// User represents an account in the system. Users carry no business
// attributes beyond identity; the mobile client provisions one up front.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:UserOwnerID"`
	Chats    []Chat    `json:"chats,omitempty" gorm:"foreignKey:UserID"`
}
