package models

// Chat and task statuses are immutable reference sets: fixed label rows
// referenced by foreign key, never embedded or extended at runtime.

const (
	ChatStatusActive   = "Active"
	ChatStatusArchived = "Archived"

	TaskStatusTodo       = "Todo"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
	TaskStatusFailed     = "Failed"
)

// Default status ids assigned when a create request omits status_id.
const (
	DefaultChatStatusID uint = 1 // Active
	DefaultTaskStatusID uint = 1 // Todo
)

// ChatStatus is a lookup row for chat states
type ChatStatus struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Label string `json:"label" gorm:"not null"`
}

// TaskStatus is a lookup row for task states
type TaskStatus struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Label string `json:"label" gorm:"not null"`
}

// DefaultChatStatuses returns the fixed chat status rows in id order
func DefaultChatStatuses() []ChatStatus {
	return []ChatStatus{
		{ID: 1, Label: ChatStatusActive},
		{ID: 2, Label: ChatStatusArchived},
	}
}

// DefaultTaskStatuses returns the fixed task status rows in id order
func DefaultTaskStatuses() []TaskStatus {
	return []TaskStatus{
		{ID: 1, Label: TaskStatusTodo},
		{ID: 2, Label: TaskStatusInProgress},
		{ID: 3, Label: TaskStatusDone},
		{ID: 4, Label: TaskStatusFailed},
	}
}
