package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
	"github.com/agentdesk-backend/repositories"
)

// UserService handles business logic for users
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// CreateUser creates a new user. Users carry no input attributes, so this
// always succeeds barring infrastructure failure.
func (s *UserService) CreateUser() (models.User, error) {
	return s.userRepo.Create(models.User{})
}

// ListUsers retrieves all users
func (s *UserService) ListUsers() ([]models.User, error) {
	return s.userRepo.FindAll()
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uint) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrNotFound
	}
	return user, err
}

// DeleteUser removes a user and everything it owns. The cascade is
// orchestrated here rather than in the database: tasks, then chats, then
// projects, then the user, inside one transaction so a failure leaves
// nothing half-deleted.
func (s *UserService) DeleteUser(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var projectIDs []uint
		if err := tx.Model(&models.Project{}).Where("user_owner_id = ?", id).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			var chatIDs []uint
			if err := tx.Model(&models.Chat{}).Where("project_id IN ?", projectIDs).Pluck("id", &chatIDs).Error; err != nil {
				return err
			}

			if len(chatIDs) > 0 {
				if err := tx.Where("chat_id IN ?", chatIDs).Delete(&models.Task{}).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.Chat{}).Error; err != nil {
				return err
			}

			if err := tx.Where("user_owner_id = ?", id).Delete(&models.Project{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
