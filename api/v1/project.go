package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk-backend/dto"
	"github.com/agentdesk-backend/services"
)

var projectService = services.NewProjectService()

// CreateProject creates a project owned by an existing user
func CreateProject(c *gin.Context) {
	var payload dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := projectService.CreateProject(payload.Name, payload.Description, payload.UserOwnerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// ListProjects returns all projects, optionally filtered by ?user_id=
func ListProjects(c *gin.Context) {
	userID, ok := parseOptionalQuery(c, "user_id")
	if !ok {
		return
	}

	projects, err := projectService.ListProjects(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject returns a single project by id
func GetProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	project, err := projectService.GetProject(id)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project and cascades over its chats and tasks
func DeleteProject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := projectService.DeleteProject(id); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
