package models

import (
	"time"
)

// Task priorities. Any other value is rejected before persistence.
const (
	PriorityHigh   = 1
	PriorityMedium = 2
	PriorityLow    = 3
)

// ValidPriority reports whether p is one of the three allowed priorities
func ValidPriority(p int) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Task represents a unit of work inside a chat. CompletedAt is null until
// the task's status transitions to Done; the store stamps it on that
// transition and never clears it afterwards.
type Task struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	StatusID    uint       `json:"status_id" gorm:"not null;default:1"`
	ChatID      uint       `json:"chat_id" gorm:"not null;index"`
	Priority    int        `json:"priority" gorm:"default:2"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`

	// Relations
	Status TaskStatus `json:"-" gorm:"foreignKey:StatusID"`
	Chat   Chat       `json:"-" gorm:"foreignKey:ChatID"`
}
