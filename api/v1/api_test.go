package v1_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/agentdesk-backend/api/v1"
	"github.com/agentdesk-backend/database"
	"github.com/agentdesk-backend/models"
	"github.com/agentdesk-backend/services"
)

// setupAPI builds a router over a fresh in-memory store and a registry
// with millisecond timing so simulations finish within the test.
func setupAPI(t *testing.T, policy services.FailurePolicy) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	require.NoError(t, database.InitializeInMemory(strings.ReplaceAll(t.Name(), "/", "_")))
	chatStatuses := models.DefaultChatStatuses()
	require.NoError(t, database.DB.Create(&chatStatuses).Error)
	taskStatuses := models.DefaultTaskStatuses()
	require.NoError(t, database.DB.Create(&taskStatuses).Error)

	registry := services.NewRequestRegistryWithConfig(20*time.Millisecond, 10*time.Millisecond, policy)

	router := gin.New()
	api := router.Group("/api")
	v1.RegisterRoutes(api, registry)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSubmitRequestLifecycle(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	// len("abc") = 3 -> 7 synthesized tasks
	w := doJSON(t, router, "POST", "/api/requests", gin.H{"request": "abc"})
	require.Equal(t, http.StatusOK, w.Code)

	submitted := decode(t, w)
	requestID, _ := submitted["request_id"].(string)
	require.NotEmpty(t, requestID)
	assert.Equal(t, "processing", submitted["status"])

	// Unknown ids are 404, regardless of readiness
	w = doJSON(t, router, "GET", "/api/requests/no-such-id/tasks", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, router, "GET", "/api/requests/no-such-id/status", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Before the processing delay elapses the task list is refused
	w = doJSON(t, router, "GET", fmt.Sprintf("/api/requests/%s/tasks", requestID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The debug detail endpoint shows the freshly synthesized plan
	w = doJSON(t, router, "GET", "/api/requests/"+requestID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)
	tasks := detail["tasks"].([]interface{})
	require.Len(t, tasks, 7)
	first := tasks[0].(map[string]interface{})
	assert.Equal(t, "in_progress", first["status"])
	for _, raw := range tasks[1:] {
		task := raw.(map[string]interface{})
		assert.Equal(t, "pending", task["status"])
	}

	// Poll until the simulator marks the request ready
	require.Eventually(t, func() bool {
		w := doJSON(t, router, "GET", fmt.Sprintf("/api/requests/%s/status", requestID), nil)
		if w.Code != http.StatusOK {
			return false
		}
		return decode(t, w)["ready"] == true
	}, 2*time.Second, 10*time.Millisecond)

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/requests/%s/tasks", requestID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	ready := decode(t, w)
	assert.Len(t, ready["tasks"].([]interface{}), 7)

	// The registry lists the id
	w = doJSON(t, router, "GET", "/api/requests", nil)
	require.Equal(t, http.StatusOK, w.Code)
	listing := decode(t, w)
	assert.EqualValues(t, 1, listing["total"])
	assert.Contains(t, listing["requests"], requestID)
}

func TestSubmitRequestRequiresBody(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	w := doJSON(t, router, "POST", "/api/requests", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateChatUnknownProjectIsRejected(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	w := doJSON(t, router, "POST", "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	userID := decode(t, w)["id"]

	w = doJSON(t, router, "POST", "/api/chats", gin.H{
		"name":       "dangling",
		"project_id": 12345,
		"user_id":    userID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No chat was created
	w = doJSON(t, router, "GET", "/api/chats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var chats []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &chats))
	assert.Empty(t, chats)
}

func TestWorkItemChainOverHTTP(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	w := doJSON(t, router, "POST", "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	userID := decode(t, w)["id"].(float64)

	w = doJSON(t, router, "POST", "/api/projects", gin.H{
		"name":          "Sample IDE Project",
		"description":   "fixture",
		"user_owner_id": userID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	project := decode(t, w)
	assert.EqualValues(t, userID, project["user_owner_id"])

	w = doJSON(t, router, "POST", "/api/chats", gin.H{
		"name":       "Main Development Chat",
		"project_id": project["id"],
		"user_id":    userID,
	})
	require.Equal(t, http.StatusOK, w.Code)
	chat := decode(t, w)
	assert.EqualValues(t, 1, chat["status_id"])

	w = doJSON(t, router, "POST", "/api/tasks", gin.H{
		"name":     "Set up project structure",
		"chat_id":  chat["id"],
		"priority": 1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	task := decode(t, w)
	taskID := task["id"].(float64)
	assert.EqualValues(t, 1, task["priority"])

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/tasks/%.0f", taskID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	fetched := decode(t, w)
	assert.Nil(t, fetched["completed_at"])
	assert.EqualValues(t, chat["id"], fetched["chat_id"])

	// Done transition stamps completed_at
	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/tasks/%.0f", taskID), gin.H{"status_id": 3})
	require.Equal(t, http.StatusOK, w.Code)
	done := decode(t, w)
	require.NotNil(t, done["completed_at"])
	stamp := done["completed_at"]

	// Regression to Todo leaves the stamp in place
	w = doJSON(t, router, "PUT", fmt.Sprintf("/api/tasks/%.0f", taskID), gin.H{"status_id": 1})
	require.Equal(t, http.StatusOK, w.Code)
	reverted := decode(t, w)
	assert.Equal(t, stamp, reverted["completed_at"])
	assert.EqualValues(t, 1, reverted["status_id"])
}

func TestTaskValidationOverHTTP(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	w := doJSON(t, router, "GET", "/api/tasks/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, "PUT", "/api/tasks/999", gin.H{"status_id": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Invalid priority on create is a 400
	w = doJSON(t, router, "POST", "/api/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	userID := decode(t, w)["id"]
	w = doJSON(t, router, "POST", "/api/projects", gin.H{"name": "p", "user_owner_id": userID})
	require.Equal(t, http.StatusOK, w.Code)
	projectID := decode(t, w)["id"]
	w = doJSON(t, router, "POST", "/api/chats", gin.H{"name": "c", "project_id": projectID, "user_id": userID})
	require.Equal(t, http.StatusOK, w.Code)
	chatID := decode(t, w)["id"]

	w = doJSON(t, router, "POST", "/api/tasks", gin.H{"name": "bad", "chat_id": chatID, "priority": 9})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatusReferenceEndpoints(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	w := doJSON(t, router, "GET", "/api/task-statuses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var statuses []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statuses))
	require.Len(t, statuses, 4)
	assert.Equal(t, "Todo", statuses[0]["label"])
	assert.Equal(t, "Done", statuses[2]["label"])

	w = doJSON(t, router, "GET", "/api/chat-statuses/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Active", decode(t, w)["label"])

	w = doJSON(t, router, "GET", "/api/chat-statuses/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectListFilteredByOwner(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	w := doJSON(t, router, "POST", "/api/users", nil)
	ownerID := decode(t, w)["id"]
	w = doJSON(t, router, "POST", "/api/users", nil)
	otherID := decode(t, w)["id"]

	for _, owner := range []interface{}{ownerID, ownerID, otherID} {
		w = doJSON(t, router, "POST", "/api/projects", gin.H{"name": "p", "user_owner_id": owner})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w = doJSON(t, router, "GET", fmt.Sprintf("/api/projects?user_id=%.0f", ownerID.(float64)), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var projects []interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 2)

	w = doJSON(t, router, "GET", "/api/projects", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projects))
	assert.Len(t, projects, 3)
}

func TestDeleteUserCascadesOverHTTP(t *testing.T) {
	router := setupAPI(t, func(string) bool { return false })

	w := doJSON(t, router, "POST", "/api/users", nil)
	userID := decode(t, w)["id"].(float64)
	w = doJSON(t, router, "POST", "/api/projects", gin.H{"name": "p", "user_owner_id": userID})
	projectID := decode(t, w)["id"]
	w = doJSON(t, router, "POST", "/api/chats", gin.H{"name": "c", "project_id": projectID, "user_id": userID})
	chatID := decode(t, w)["id"]
	w = doJSON(t, router, "POST", "/api/tasks", gin.H{"name": "t", "chat_id": chatID})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "DELETE", fmt.Sprintf("/api/users/%.0f", userID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	for _, path := range []string{"/api/tasks", "/api/chats", "/api/projects", "/api/users"} {
		w = doJSON(t, router, "GET", path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var rows []interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
		assert.Empty(t, rows, path)
	}
}
