package repository

import (
	"planner-backend/internal/task/domain"
)

// TaskFilter narrows a listing. Zero-value fields impose no constraint.
type TaskFilter struct {
	// Date matches the exact calendar date (YYYY-MM-DD).
	Date string
	// Type matches the task type exactly.
	Type domain.TaskType
	// Query matches case-insensitive substrings of the title.
	Query string
}

// TaskRepository defines the interface for task data access.
// Every lookup is scoped to the owning user; a miss and a foreign-owned hit
// both surface as domain.ErrTaskNotFound.
type TaskRepository interface {
	// Create persists a new task, assigning a fresh id.
	Create(task *domain.Task) error

	// FindByID returns the task with the given id owned by userID.
	FindByID(userID, id string) (*domain.Task, error)

	// FindByUser returns the user's tasks matching all provided filters,
	// ordered by date ascending, then creation time ascending.
	FindByUser(userID string, filter TaskFilter) ([]*domain.Task, error)

	// Update persists changes to an existing task of the user.
	Update(userID string, task *domain.Task) error

	// Delete removes the user's task with the given id.
	Delete(userID, id string) error

	// HolidayDates returns the set of dates on which the user already has a
	// task of type holiday.
	HolidayDates(userID string) (map[string]bool, error)
}
