package dto

// CreateTaskRequest represents the request payload for creating a task.
// StatusID defaults to Todo and Priority to medium when omitted.
type CreateTaskRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	StatusID    uint   `json:"status_id"`
	ChatID      uint   `json:"chat_id" binding:"required"`
	Priority    int    `json:"priority"`
}

// UpdateTaskRequest represents a partial task update; only fields present
// in the payload are applied.
type UpdateTaskRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	StatusID    *uint   `json:"status_id"`
	ChatID      *uint   `json:"chat_id"`
	Priority    *int    `json:"priority"`
}
