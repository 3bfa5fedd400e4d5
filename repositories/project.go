package repositories

import (
	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Find(&projects)
	return projects, result.Error
}

// FindByOwnerID retrieves all projects owned by a user
func (r *ProjectRepository) FindByOwnerID(userID uint) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("user_owner_id = ?", userID).Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, id)
	return project, result.Error
}

// Exists checks whether a project with the given ID exists
func (r *ProjectRepository) Exists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
