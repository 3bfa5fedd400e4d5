package dto

import "github.com/agentdesk-backend/services"

// SubmitRequest represents a free-text submission to the request simulator
type SubmitRequest struct {
	Request string `json:"request" binding:"required"`
}

// SubmitResponse acknowledges a submission
type SubmitResponse struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

// RequestStatusResponse reports readiness of a simulated request
type RequestStatusResponse struct {
	Ready  bool   `json:"ready"`
	Status string `json:"status"`
}

// RequestTasksResponse carries the synthesized task list
type RequestTasksResponse struct {
	Tasks []services.SimulatedTask `json:"tasks"`
}

// RequestListResponse lists all known request identifiers (debug)
type RequestListResponse struct {
	Requests []string `json:"requests"`
	Total    int      `json:"total"`
}

// RequestDetailResponse exposes the raw registry state of one request (debug)
type RequestDetailResponse struct {
	Request services.SimulatedRequest `json:"request"`
	Tasks   []services.SimulatedTask  `json:"tasks"`
}
