package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Simulated request states
const (
	RequestStatusProcessing = "processing"
	RequestStatusReady      = "ready"
)

// Simulated task states
const (
	SimTaskPending    = "pending"
	SimTaskInProgress = "in_progress"
	SimTaskCompleted  = "completed"
	SimTaskFailed     = "failed"
)

// taskCatalog is the fixed template list simulated plans draw from, in
// order. A submission synthesizes between 4 and all 8 of these.
var taskCatalog = []SimulatedTask{
	{Name: "Initialize Project", Description: "Setting up project structure and dependencies"},
	{Name: "Data Processing", Description: "Processing and analyzing input data"},
	{Name: "API Integration", Description: "Connecting to external services and APIs"},
	{Name: "Model Training", Description: "Training machine learning models"},
	{Name: "Quality Assurance", Description: "Running tests and validation checks"},
	{Name: "Deployment", Description: "Deploying to production environment"},
	{Name: "Monitoring Setup", Description: "Setting up monitoring and alerts"},
	{Name: "Documentation", Description: "Creating and updating documentation"},
}

// SimulatedTask is a synthesized sub-task of a simulated request
type SimulatedTask struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

// SimulatedRequest is a free-text submission tracked by the registry
type SimulatedRequest struct {
	Request   string    `json:"request"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Ready     bool      `json:"ready"`
}

// RequestRegistry is the transient, process-lifetime store of simulated
// requests and their task plans. Nothing here is persisted; a restart
// loses all in-flight simulations. All access goes through the mutex so
// lookups never interleave with simulator mutation.
type RequestRegistry struct {
	mu       sync.RWMutex
	requests map[string]*SimulatedRequest
	tasks    map[string][]SimulatedTask

	readyDelay time.Duration
	taskDelay  time.Duration
	shouldFail FailurePolicy
}

// FailurePolicy decides whether the last task of a plan fails. It is
// injectable so tests can force both outcomes.
type FailurePolicy func(requestID string) bool

// NewRequestRegistry creates a registry with the reference timing: 5s until
// ready, 2s between task transitions, hash-derived failures.
func NewRequestRegistry() *RequestRegistry {
	return NewRequestRegistryWithConfig(5*time.Second, 2*time.Second, HashFailurePolicy)
}

// NewRequestRegistryWithConfig creates a registry with explicit delays and
// failure policy
func NewRequestRegistryWithConfig(readyDelay, taskDelay time.Duration, policy FailurePolicy) *RequestRegistry {
	return &RequestRegistry{
		requests:   make(map[string]*SimulatedRequest),
		tasks:      make(map[string][]SimulatedTask),
		readyDelay: readyDelay,
		taskDelay:  taskDelay,
		shouldFail: policy,
	}
}

// Submit registers a free-text submission, synthesizes its task plan and
// starts the lifecycle simulation. It returns immediately with the new
// request id; clients observe progress by polling.
func (r *RequestRegistry) Submit(text string) string {
	requestID := uuid.NewString()

	// 4-7 tasks depending on submission length
	count := 4 + len(text)%4
	if count > len(taskCatalog) {
		count = len(taskCatalog)
	}

	tasks := make([]SimulatedTask, count)
	for i, template := range taskCatalog[:count] {
		status := SimTaskPending
		if i == 0 {
			status = SimTaskInProgress
		}
		tasks[i] = SimulatedTask{
			ID:          uuid.NewString(),
			Name:        template.Name,
			Status:      status,
			Description: template.Description,
		}
	}

	r.mu.Lock()
	r.requests[requestID] = &SimulatedRequest{
		Request:   text,
		Status:    RequestStatusProcessing,
		CreatedAt: time.Now(),
	}
	r.tasks[requestID] = tasks
	r.mu.Unlock()

	go r.simulate(requestID)

	return requestID
}

// Status reports readiness of a request
func (r *RequestRegistry) Status(requestID string) (ready bool, status string, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[requestID]
	if !ok {
		return false, "", ErrNotFound
	}
	return request.Ready, request.Status, nil
}

// Tasks returns a copy of the synthesized task list. It fails with
// ErrNotReady until the simulator marks the request ready.
func (r *RequestRegistry) Tasks(requestID string) ([]SimulatedTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[requestID]
	if !ok {
		return nil, ErrNotFound
	}
	if !request.Ready {
		return nil, ErrNotReady
	}

	tasks := make([]SimulatedTask, len(r.tasks[requestID]))
	copy(tasks, r.tasks[requestID])
	return tasks, nil
}

// IDs returns all known request identifiers (debug)
func (r *RequestRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.requests))
	for id := range r.requests {
		ids = append(ids, id)
	}
	return ids
}

// Detail returns the raw state of a request and its tasks (debug)
func (r *RequestRegistry) Detail(requestID string) (SimulatedRequest, []SimulatedTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[requestID]
	if !ok {
		return SimulatedRequest{}, nil, ErrNotFound
	}

	tasks := make([]SimulatedTask, len(r.tasks[requestID]))
	copy(tasks, r.tasks[requestID])
	return *request, tasks, nil
}

// Remove evicts a request and its tasks. An in-flight simulation for the
// id keeps running but every further step becomes a no-op.
func (r *RequestRegistry) Remove(requestID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.requests, requestID)
	delete(r.tasks, requestID)
}
