package usecase

import (
	"strings"

	"planner-backend/internal/task/domain"
	"planner-backend/internal/task/repository"
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) CreateTask(userID, title, date string, taskType domain.TaskType) (*domain.Task, error) {
	task, err := domain.NewTask(userID, title, date, taskType, domain.SourceLocal)
	if err != nil {
		return nil, err
	}
	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(userID, taskID string) (*domain.Task, error) {
	return u.taskRepo.FindByID(userID, taskID)
}

func (u *taskUsecase) GetUserTasks(userID string, filter repository.TaskFilter) ([]*domain.Task, error) {
	if filter.Type != "" && !domain.ValidTaskType(filter.Type) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "type", Message: "must be one of: task, meeting, deadline, event, holiday, news"},
		}}
	}
	if filter.Date != "" && !domain.ValidDate(filter.Date) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"},
		}}
	}
	return u.taskRepo.FindByUser(userID, filter)
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(userID, taskID)
	if err != nil {
		return nil, err
	}

	var fields []domain.FieldError

	if updates.Title != nil {
		title := strings.TrimSpace(*updates.Title)
		if title == "" {
			fields = append(fields, domain.FieldError{Field: "title", Message: "must not be empty"})
		} else {
			task.Title = title
		}
	}
	if updates.Date != nil {
		if !domain.ValidDate(*updates.Date) {
			fields = append(fields, domain.FieldError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
		} else {
			task.Date = *updates.Date
		}
	}
	if updates.Type != nil {
		t := domain.TaskType(*updates.Type)
		if !domain.ValidTaskType(t) {
			fields = append(fields, domain.FieldError{Field: "type", Message: "must be one of: task, meeting, deadline, event, holiday, news"})
		} else {
			task.Type = t
		}
	}
	if updates.Status != nil {
		s := domain.TaskStatus(*updates.Status)
		if !domain.ValidTaskStatus(s) {
			fields = append(fields, domain.FieldError{Field: "status", Message: "must be one of: pending, done"})
		} else {
			task.Status = s
		}
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	if err := u.taskRepo.Update(userID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	return u.taskRepo.Delete(userID, taskID)
}
