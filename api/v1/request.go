package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agentdesk-backend/dto"
	"github.com/agentdesk-backend/services"
)

// RequestController serves the legacy simulated-request endpoints backed
// by the injected in-memory registry
type RequestController struct {
	registry *services.RequestRegistry
}

// NewRequestController creates a request controller over the given registry
func NewRequestController(registry *services.RequestRegistry) *RequestController {
	return &RequestController{registry: registry}
}

// RegisterRoutes registers the simulated request routes
func (rc *RequestController) RegisterRoutes(router *gin.RouterGroup) {
	requestGroup := router.Group("/requests")
	{
		requestGroup.POST("", rc.SubmitRequest)
		requestGroup.GET("", rc.ListRequests)
		requestGroup.GET("/:id", rc.GetRequestDetail)
		requestGroup.GET("/:id/status", rc.GetRequestStatus)
		requestGroup.GET("/:id/tasks", rc.GetRequestTasks)
	}
}

// SubmitRequest accepts a free-text submission and starts its simulation.
// The response returns immediately; processing happens in the background.
func (rc *RequestController) SubmitRequest(c *gin.Context) {
	var payload dto.SubmitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	requestID := rc.registry.Submit(payload.Request)

	c.JSON(http.StatusOK, dto.SubmitResponse{
		RequestID: requestID,
		Status:    services.RequestStatusProcessing,
	})
}

// GetRequestStatus reports whether a simulated request finished processing
func (rc *RequestController) GetRequestStatus(c *gin.Context) {
	ready, status, err := rc.registry.Status(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestStatusResponse{
		Ready:  ready,
		Status: status,
	})
}

// GetRequestTasks returns the synthesized task list once the request is ready
func (rc *RequestController) GetRequestTasks(c *gin.Context) {
	tasks, err := rc.registry.Tasks(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestTasksResponse{Tasks: tasks})
}

// ListRequests returns every known request id (debug)
func (rc *RequestController) ListRequests(c *gin.Context) {
	ids := rc.registry.IDs()
	c.JSON(http.StatusOK, dto.RequestListResponse{
		Requests: ids,
		Total:    len(ids),
	})
}

// GetRequestDetail returns the raw registry state of one request (debug)
func (rc *RequestController) GetRequestDetail(c *gin.Context) {
	request, tasks, err := rc.registry.Detail(c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RequestDetailResponse{
		Request: request,
		Tasks:   tasks,
	})
}
