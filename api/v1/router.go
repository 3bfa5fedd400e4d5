package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/agentdesk-backend/services"
)

// RegisterRoutes registers all v1 API routes on the given group. The
// request registry is injected so tests can run with their own timing.
func RegisterRoutes(router *gin.RouterGroup, registry *services.RequestRegistry) {
	// Simulated request endpoints
	requestController := NewRequestController(registry)
	requestController.RegisterRoutes(router)

	// User endpoints
	userGroup := router.Group("/users")
	{
		userGroup.POST("", CreateUser)
		userGroup.GET("", ListUsers)
		userGroup.GET("/:id", GetUser)
		userGroup.DELETE("/:id", DeleteUser)
	}

	// Project endpoints
	projectGroup := router.Group("/projects")
	{
		projectGroup.POST("", CreateProject)
		projectGroup.GET("", ListProjects)
		projectGroup.GET("/:id", GetProject)
		projectGroup.DELETE("/:id", DeleteProject)
	}

	// Status reference sets (read only)
	router.GET("/chat-statuses", ListChatStatuses)
	router.GET("/chat-statuses/:id", GetChatStatus)
	router.GET("/task-statuses", ListTaskStatuses)
	router.GET("/task-statuses/:id", GetTaskStatus)

	// Chat endpoints
	chatGroup := router.Group("/chats")
	{
		chatGroup.POST("", CreateChat)
		chatGroup.GET("", ListChats)
		chatGroup.GET("/:id", GetChat)
		chatGroup.DELETE("/:id", DeleteChat)
	}

	// Task endpoints
	taskGroup := router.Group("/tasks")
	{
		taskGroup.POST("", CreateTask)
		taskGroup.GET("", ListTasks)
		taskGroup.GET("/:id", GetTask)
		taskGroup.PUT("/:id", UpdateTask)
	}
}
