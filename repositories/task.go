package repositories

import (
	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindAll retrieves all tasks
func (r *TaskRepository) FindAll() ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.Find(&tasks)
	return tasks, result.Error
}

// FindByChatID retrieves all tasks belonging to a chat
func (r *TaskRepository) FindByChatID(chatID uint) ([]models.Task, error) {
	var tasks []models.Task
	result := database.DB.Where("chat_id = ?", chatID).Find(&tasks)
	return tasks, result.Error
}

// FindByID retrieves a task by its ID
func (r *TaskRepository) FindByID(id uint) (models.Task, error) {
	var task models.Task
	result := database.DB.First(&task, id)
	return task, result.Error
}

// CountByChatID counts tasks belonging to a chat
func (r *TaskRepository) CountByChatID(chatID uint) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Task{}).Where("chat_id = ?", chatID).Count(&count)
	return count, result.Error
}
