package dto

// CreateProjectRequest represents the request payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	UserOwnerID uint   `json:"user_owner_id" binding:"required"`
}
