package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk-backend/dto"
	"github.com/agentdesk-backend/services"
)

var taskService = services.NewTaskService()

// CreateTask creates a task inside an existing chat
func CreateTask(c *gin.Context) {
	var payload dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := taskService.CreateTask(payload.Name, payload.Description, payload.StatusID, payload.ChatID, payload.Priority)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ListTasks returns all tasks, optionally filtered by ?chat_id=
func ListTasks(c *gin.Context) {
	chatID, ok := parseOptionalQuery(c, "chat_id")
	if !ok {
		return
	}

	tasks, err := taskService.ListTasks(chatID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTask returns a single task by id
func GetTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := taskService.GetTask(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to a task. Setting the status to
// Done stamps the completion timestamp in the same write.
func UpdateTask(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	task, err := taskService.UpdateTask(id, services.TaskUpdate{
		Name:        payload.Name,
		Description: payload.Description,
		StatusID:    payload.StatusID,
		ChatID:      payload.ChatID,
		Priority:    payload.Priority,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}
