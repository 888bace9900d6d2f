package repository

import (
	"errors"
	"strings"
	"time"

	"planner-backend/internal/task/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTaskRepository implements TaskRepository using GORM
type gormTaskRepository struct {
	db *gorm.DB
}

// NewGormTaskRepository creates a new GORM-based TaskRepository
func NewGormTaskRepository(db *gorm.DB) TaskRepository {
	return &gormTaskRepository{db: db}
}

func (r *gormTaskRepository) Create(task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = time.Now()
	return r.db.Create(task).Error
}

func (r *gormTaskRepository) FindByID(userID, id string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *gormTaskRepository) FindByUser(userID string, filter TaskFilter) ([]*domain.Task, error) {
	query := r.db.Model(&domain.Task{}).Where("user_id = ?", userID)

	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Query != "" {
		query = query.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.Query)+"%")
	}

	var tasks []*domain.Task
	err := query.Order("date ASC, created_at ASC").Find(&tasks).Error
	return tasks, err
}

func (r *gormTaskRepository) Update(userID string, task *domain.Task) error {
	task.UpdatedAt = time.Now()
	res := r.db.Model(&domain.Task{}).
		Where("id = ? AND user_id = ?", task.ID, userID).
		Updates(task)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *gormTaskRepository) Delete(userID, id string) error {
	res := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Task{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

func (r *gormTaskRepository) HolidayDates(userID string) (map[string]bool, error) {
	var dates []string
	err := r.db.Model(&domain.Task{}).
		Where("user_id = ? AND type = ?", userID, domain.TypeHoliday).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set, nil
}
