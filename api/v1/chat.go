package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk-backend/dto"
	"github.com/agentdesk-backend/services"
)

var chatService = services.NewChatService()

// CreateChat creates a chat inside an existing project
func CreateChat(c *gin.Context) {
	var payload dto.CreateChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	chat, err := chatService.CreateChat(payload.Name, payload.ProjectID, payload.UserID, payload.StatusID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// ListChats returns all chats, optionally filtered by ?project_id=
func ListChats(c *gin.Context) {
	projectID, ok := parseOptionalQuery(c, "project_id")
	if !ok {
		return
	}

	chats, err := chatService.ListChats(projectID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// GetChat returns a single chat by id
func GetChat(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	chat, err := chatService.GetChat(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// DeleteChat removes a chat and its tasks
func DeleteChat(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := chatService.DeleteChat(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
