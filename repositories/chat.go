package repositories

import (
	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
)

// ChatRepository handles database operations for chats
type ChatRepository struct{}

// NewChatRepository creates a new chat repository instance
func NewChatRepository() *ChatRepository {
	return &ChatRepository{}
}

// FindAll retrieves all chats
func (r *ChatRepository) FindAll() ([]models.Chat, error) {
	var chats []models.Chat
	result := database.DB.Find(&chats)
	return chats, result.Error
}

// FindByProjectID retrieves all chats belonging to a project
func (r *ChatRepository) FindByProjectID(projectID uint) ([]models.Chat, error) {
	var chats []models.Chat
	result := database.DB.Where("project_id = ?", projectID).Find(&chats)
	return chats, result.Error
}

// FindByID retrieves a chat by its ID
func (r *ChatRepository) FindByID(id uint) (models.Chat, error) {
	var chat models.Chat
	result := database.DB.First(&chat, id)
	return chat, result.Error
}

// Exists checks whether a chat with the given ID exists
func (r *ChatRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Chat{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
