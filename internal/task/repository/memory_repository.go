package repository

import (
	"sort"
	"strings"
	"sync"
	"time"

	"planner-backend/internal/task/domain"

	"github.com/google/uuid"
)

// memoryTaskRepository is an in-memory TaskRepository used when the server
// runs with SKIP_DB=1 and as a fixture in tests. It guards its map with a
// mutex since it serves concurrent requests.
type memoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]*domain.Task
}

// NewMemoryTaskRepository creates an in-memory TaskRepository.
func NewMemoryTaskRepository() TaskRepository {
	return &memoryTaskRepository{tasks: make(map[string]*domain.Task)}
}

func (r *memoryTaskRepository) Create(task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memoryTaskRepository) FindByID(userID, id string) (*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok || task.UserID != userID {
		return nil, domain.ErrTaskNotFound
	}
	clone := *task
	return &clone, nil
}

func (r *memoryTaskRepository) FindByUser(userID string, filter TaskFilter) ([]*domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		if filter.Date != "" && task.Date != filter.Date {
			continue
		}
		if filter.Type != "" && task.Type != filter.Type {
			continue
		}
		if filter.Query != "" && !strings.Contains(strings.ToLower(task.Title), strings.ToLower(filter.Query)) {
			continue
		}
		clone := *task
		result = append(result, &clone)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *memoryTaskRepository) Update(userID string, task *domain.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != userID {
		return domain.ErrTaskNotFound
	}
	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = time.Now()
	clone := *task
	r.tasks[task.ID] = &clone
	return nil
}

func (r *memoryTaskRepository) Delete(userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[id]
	if !ok || existing.UserID != userID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memoryTaskRepository) HolidayDates(userID string) (map[string]bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := make(map[string]bool)
	for _, task := range r.tasks {
		if task.UserID == userID && task.Type == domain.TypeHoliday {
			set[task.Date] = true
		}
	}
	return set, nil
}
