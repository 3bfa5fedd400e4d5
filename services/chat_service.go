package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
	"github.com/agentdesk-backend/repositories"
)

// ChatService handles business logic for chats
type ChatService struct {
	chatRepo *repositories.ChatRepository
}

// NewChatService creates a new chat service instance
func NewChatService() *ChatService {
	return &ChatService{
		chatRepo: repositories.NewChatRepository(),
	}
}

// CreateChat creates a chat after verifying the project, user and status
// references all resolve. A zero statusID falls back to the Active status.
func (s *ChatService) CreateChat(name string, projectID, userID, statusID uint) (models.Chat, error) {
	if statusID == 0 {
		statusID = models.DefaultChatStatusID
	}

	chat := models.Chat{
		Name:      name,
		ProjectID: projectID,
		UserID:    userID,
		StatusID:  statusID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Project{}, projectID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.User{}, userID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.ChatStatus{}, statusID); err != nil {
			return err
		}
		return tx.Create(&chat).Error
	})
	if err != nil {
		return models.Chat{}, err
	}
	return chat, nil
}

// ListChats retrieves all chats, optionally filtered by project
func (s *ChatService) ListChats(projectID uint) ([]models.Chat, error) {
	if projectID != 0 {
		return s.chatRepo.FindByProjectID(projectID)
	}
	return s.chatRepo.FindAll()
}

// GetChat retrieves a chat by ID
func (s *ChatService) GetChat(id uint) (models.Chat, error) {
	chat, err := s.chatRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Chat{}, ErrNotFound
	}
	return chat, err
}

// DeleteChat removes a chat and its tasks in one transaction
func (s *ChatService) DeleteChat(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var chat models.Chat
		if err := tx.First(&chat, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("chat_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Chat{}, id).Error
	})
}

// requireRow fails with ErrInvalidReference when no row of the given model
// carries the id. Runs inside the caller's transaction.
func requireRow(tx *gorm.DB, model interface{}, id uint) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrInvalidReference
	}
	return nil
}
