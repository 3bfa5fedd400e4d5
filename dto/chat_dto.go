package dto

// CreateChatRequest represents the request payload for creating a chat.
// StatusID defaults to the Active status when omitted.
type CreateChatRequest struct {
	Name      string `json:"name" binding:"required"`
	ProjectID uint   `json:"project_id" binding:"required"`
	UserID    uint   `json:"user_id" binding:"required"`
	StatusID  uint   `json:"status_id"`
}
