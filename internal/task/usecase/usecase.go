package usecase

import (
	"planner-backend/internal/task/domain"
	"planner-backend/internal/task/repository"
)

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	// CreateTask creates a new task for the user
	CreateTask(userID, title, date string, taskType domain.TaskType) (*domain.Task, error)

	// GetTaskByID retrieves a task by ID (with ownership check)
	GetTaskByID(userID, taskID string) (*domain.Task, error)

	// GetUserTasks retrieves the user's tasks matching the filter
	GetUserTasks(userID string, filter repository.TaskFilter) ([]*domain.Task, error)

	// UpdateTask applies a partial update to an existing task
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)

	// DeleteTask deletes a task
	DeleteTask(userID, taskID string) error
}

// TaskUpdateRequest represents the fields that can be updated.
// Nil fields are left untouched.
type TaskUpdateRequest struct {
	Title  *string `json:"title,omitempty"`
	Date   *string `json:"date,omitempty"`
	Type   *string `json:"type,omitempty"`
	Status *string `json:"status,omitempty"`
}
