package delivery

import (
	"errors"
	"net/http"

	"planner-backend/internal/task/domain"
	"planner-backend/internal/task/repository"
	"planner-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
	Type  string `json:"type"`
}

// CreateTask creates a new task
// POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation_error"})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req.Title, req.Date, domain.TaskType(req.Type))
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTasks returns the authenticated user's tasks
// GET /tasks?date=2024-01-15&type=holiday&q=exam
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	filter := repository.TaskFilter{
		Date:  c.Query("date"),
		Type:  domain.TaskType(c.Query("type")),
		Query: c.Query("q"),
	}

	tasks, err := h.taskUsecase.GetUserTasks(userID, filter)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	if tasks == nil {
		tasks = []*domain.Task{}
	}
	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID returns a specific task
// GET /tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	task, err := h.taskUsecase.GetTaskByID(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update to a task
// PATCH /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "kind": "validation_error"})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondTaskError maps usecase errors onto the API error taxonomy. Missing
// and foreign-owned ids produce the same response.
func respondTaskError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error(), "kind": "validation_error", "fields": vErr.Fields})
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found", "kind": "not_found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "kind": "internal"})
	}
}
