package repositories

import (
	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
)

// StatusRepository handles reads of the chat and task status reference sets
type StatusRepository struct{}

// NewStatusRepository creates a new status repository instance
func NewStatusRepository() *StatusRepository {
	return &StatusRepository{}
}

// FindAllChatStatuses retrieves all chat status rows
func (r *StatusRepository) FindAllChatStatuses() ([]models.ChatStatus, error) {
	var statuses []models.ChatStatus
	result := database.DB.Order("id").Find(&statuses)
	return statuses, result.Error
}

// FindChatStatusByID retrieves a chat status by its ID
func (r *StatusRepository) FindChatStatusByID(id uint) (models.ChatStatus, error) {
	var status models.ChatStatus
	result := database.DB.First(&status, id)
	return status, result.Error
}

// FindAllTaskStatuses retrieves all task status rows
func (r *StatusRepository) FindAllTaskStatuses() ([]models.TaskStatus, error) {
	var statuses []models.TaskStatus
	result := database.DB.Order("id").Find(&statuses)
	return statuses, result.Error
}

// FindTaskStatusByID retrieves a task status by its ID
func (r *StatusRepository) FindTaskStatusByID(id uint) (models.TaskStatus, error) {
	var status models.TaskStatus
	result := database.DB.First(&status, id)
	return status, result.Error
}
