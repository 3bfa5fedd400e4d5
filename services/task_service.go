package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
	"github.com/agentdesk-backend/repositories"
)

// TaskUpdate carries the fields of a partial task update; nil fields are
// left untouched.
type TaskUpdate struct {
	Name        *string
	Description *string
	StatusID    *uint
	ChatID      *uint
	Priority    *int
}

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo *repositories.TaskRepository
}

// NewTaskService creates a new task service instance
func NewTaskService() *TaskService {
	return &TaskService{
		taskRepo: repositories.NewTaskRepository(),
	}
}

// CreateTask creates a task after validating its chat and status references
// and its priority. Zero statusID falls back to Todo, zero priority to
// medium.
func (s *TaskService) CreateTask(name, description string, statusID, chatID uint, priority int) (models.Task, error) {
	if statusID == 0 {
		statusID = models.DefaultTaskStatusID
	}
	if priority == 0 {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return models.Task{}, ErrInvalidPriority
	}

	task := models.Task{
		Name:        name,
		Description: description,
		StatusID:    statusID,
		ChatID:      chatID,
		Priority:    priority,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := requireRow(tx, &models.Chat{}, chatID); err != nil {
			return err
		}
		if err := requireRow(tx, &models.TaskStatus{}, statusID); err != nil {
			return err
		}
		return tx.Create(&task).Error
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ListTasks retrieves all tasks, optionally filtered by chat
func (s *TaskService) ListTasks(chatID uint) ([]models.Task, error) {
	if chatID != 0 {
		return s.taskRepo.FindByChatID(chatID)
	}
	return s.taskRepo.FindAll()
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(id uint) (models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Task{}, ErrNotFound
	}
	return task, err
}

// UpdateTask applies a partial update. A status change to Done stamps
// completed_at in the same write; completed_at is never cleared once set,
// even when the status later regresses to a non-Done state.
func (s *TaskService) UpdateTask(id uint, update TaskUpdate) (models.Task, error) {
	var task models.Task

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		changes := map[string]interface{}{}

		if update.Name != nil {
			changes["name"] = *update.Name
		}
		if update.Description != nil {
			changes["description"] = *update.Description
		}
		if update.Priority != nil {
			if !models.ValidPriority(*update.Priority) {
				return ErrInvalidPriority
			}
			changes["priority"] = *update.Priority
		}
		if update.ChatID != nil {
			if err := requireRow(tx, &models.Chat{}, *update.ChatID); err != nil {
				return err
			}
			changes["chat_id"] = *update.ChatID
		}
		if update.StatusID != nil {
			var status models.TaskStatus
			if err := tx.First(&status, *update.StatusID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrInvalidReference
				}
				return err
			}
			changes["status_id"] = status.ID
			if status.Label == models.TaskStatusDone && task.CompletedAt == nil {
				changes["completed_at"] = time.Now()
			}
		}

		if len(changes) == 0 {
			return nil
		}
		if err := tx.Model(&task).Updates(changes).Error; err != nil {
			return err
		}
		// Reload so the caller sees stamped timestamps
		return tx.First(&task, id).Error
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}
