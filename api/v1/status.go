package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agentdesk-backend/repositories"
	"github.com/agentdesk-backend/services"
)

var statusRepo = repositories.NewStatusRepository()

// ListChatStatuses returns the chat status reference set
func ListChatStatuses(c *gin.Context) {
	statuses, err := statusRepo.FindAllChatStatuses()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// GetChatStatus returns a single chat status by id
func GetChatStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := statusRepo.FindChatStatusByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = services.ErrNotFound
		}
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// ListTaskStatuses returns the task status reference set
func ListTaskStatuses(c *gin.Context) {
	statuses, err := statusRepo.FindAllTaskStatuses()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

// GetTaskStatus returns a single task status by id
func GetTaskStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := statusRepo.FindTaskStatusByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = services.ErrNotFound
		}
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
