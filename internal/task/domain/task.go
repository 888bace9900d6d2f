package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TaskType categorizes a task
type TaskType string

const (
	TypeTask     TaskType = "task"
	TypeMeeting  TaskType = "meeting"
	TypeDeadline TaskType = "deadline"
	TypeEvent    TaskType = "event"
	TypeHoliday  TaskType = "holiday"
	TypeNews     TaskType = "news"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
)

// TaskSource records where a task came from
type TaskSource string

const (
	SourceLocal TaskSource = "local"
	SourceNager TaskSource = "nager"
)

// ErrTaskNotFound is returned for ids that do not exist or belong to another
// user. The two cases are indistinguishable to the caller.
var ErrTaskNotFound = errors.New("task not found")

const (
	maxTitleLen = 200
	dateLayout  = "2006-01-02"
)

// Task represents a planner entry owned by exactly one user.
// Date is stored as an ISO calendar date (YYYY-MM-DD).
type Task struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	UserID    string     `json:"user_id" gorm:"index;not null"`
	Title     string     `json:"title" gorm:"not null"`
	Date      string     `json:"date" gorm:"index;not null"`
	Type      TaskType   `json:"type" gorm:"default:task"`
	Status    TaskStatus `json:"status" gorm:"default:pending"`
	Source    TaskSource `json:"source" gorm:"default:local"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError collects every offending field of a task payload.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid task: " + strings.Join(msgs, "; ")
}

// ValidTaskType reports whether t is one of the enumerated types.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TypeTask, TypeMeeting, TypeDeadline, TypeEvent, TypeHoliday, TypeNews:
		return true
	}
	return false
}

// ValidTaskStatus reports whether s is one of the enumerated statuses.
func ValidTaskStatus(s TaskStatus) bool {
	return s == StatusPending || s == StatusDone
}

// ValidDate reports whether d is a real calendar date in YYYY-MM-DD form.
func ValidDate(d string) bool {
	_, err := time.Parse(dateLayout, d)
	return err == nil
}

// NewTask builds a validated task for the given owner. An empty type defaults
// to TypeTask; status always starts as pending. Every invalid field is
// reported, not just the first one.
func NewTask(userID, title, date string, taskType TaskType, source TaskSource) (*Task, error) {
	var fields []FieldError

	title = strings.TrimSpace(title)
	if title == "" {
		fields = append(fields, FieldError{Field: "title", Message: "must not be empty"})
	} else if len(title) > maxTitleLen {
		fields = append(fields, FieldError{Field: "title", Message: fmt.Sprintf("must be at most %d characters", maxTitleLen)})
	}

	if !ValidDate(date) {
		fields = append(fields, FieldError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	}

	if taskType == "" {
		taskType = TypeTask
	}
	if !ValidTaskType(taskType) {
		fields = append(fields, FieldError{Field: "type", Message: "must be one of: task, meeting, deadline, event, holiday, news"})
	}

	if source == "" {
		source = SourceLocal
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	return &Task{
		UserID: userID,
		Title:  title,
		Date:   date,
		Type:   taskType,
		Status: StatusPending,
		Source: source,
	}, nil
}
