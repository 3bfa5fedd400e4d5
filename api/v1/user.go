package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk-backend/services"
)

var userService = services.NewUserService()

// CreateUser creates a new user. There is no input payload.
func CreateUser(c *gin.Context) {
	user, err := userService.CreateUser()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers returns all users
func ListUsers(c *gin.Context) {
	users, err := userService.ListUsers()
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser returns a single user by id
func GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := userService.GetUser(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user and cascades over its projects, chats and tasks
func DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := userService.DeleteUser(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
