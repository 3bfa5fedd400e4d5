package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
	"github.com/agentdesk-backend/repositories"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// CreateProject creates a project after verifying the owner exists. The
// check and the insert share a transaction so the reference cannot vanish
// between them.
func (s *ProjectService) CreateProject(name, description string, ownerID uint) (models.Project, error) {
	project := models.Project{
		Name:        name,
		Description: description,
		UserOwnerID: ownerID,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", ownerID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrInvalidReference
		}
		return tx.Create(&project).Error
	})
	if err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// ListProjects retrieves all projects, optionally filtered by owner
func (s *ProjectService) ListProjects(userID uint) ([]models.Project, error) {
	if userID != 0 {
		return s.projectRepo.FindByOwnerID(userID)
	}
	return s.projectRepo.FindAll()
}

// GetProject retrieves a project by ID
func (s *ProjectService) GetProject(id uint) (models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, ErrNotFound
	}
	return project, err
}

// DeleteProject removes a project and its chats and tasks in one transaction
func (s *ProjectService) DeleteProject(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var chatIDs []uint
		if err := tx.Model(&models.Chat{}).Where("project_id = ?", id).Pluck("id", &chatIDs).Error; err != nil {
			return err
		}

		if len(chatIDs) > 0 {
			if err := tx.Where("chat_id IN ?", chatIDs).Delete(&models.Task{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", id).Delete(&models.Chat{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}
