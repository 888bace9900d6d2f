package usecase

import (
	"testing"

	"planner-backend/internal/task/domain"
	"planner-backend/internal/task/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUsecase() TaskUsecase {
	return NewTaskUsecase(repository.NewMemoryTaskRepository())
}

func strPtr(s string) *string { return &s }

func TestCreateThenGet(t *testing.T) {
	uc := newUsecase()

	created, err := uc.CreateTask("user-1", "Study", "2024-01-15", domain.TypeDeadline)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetTaskByID("user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Date, got.Date)
	assert.Equal(t, created.Type, got.Type)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestCreateTask_Invalid(t *testing.T) {
	uc := newUsecase()

	_, err := uc.CreateTask("user-1", "", "2024-01-15", domain.TypeTask)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestGet_NotFoundAndForeignAreIndistinguishable(t *testing.T) {
	uc := newUsecase()

	task, err := uc.CreateTask("owner", "Private", "2024-01-15", domain.TypeTask)
	require.NoError(t, err)

	_, missingErr := uc.GetTaskByID("owner", "no-such-id")
	_, foreignErr := uc.GetTaskByID("intruder", task.ID)

	assert.ErrorIs(t, missingErr, domain.ErrTaskNotFound)
	assert.ErrorIs(t, foreignErr, domain.ErrTaskNotFound)
	assert.Equal(t, missingErr.Error(), foreignErr.Error())
}

func TestUpdate_OnlyChangesSuppliedFields(t *testing.T) {
	uc := newUsecase()

	created, err := uc.CreateTask("user-1", "Study", "2024-01-15", domain.TypeDeadline)
	require.NoError(t, err)

	updated, err := uc.UpdateTask("user-1", created.ID, TaskUpdateRequest{Status: strPtr("done")})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDone, updated.Status)
	assert.Equal(t, "Study", updated.Title)
	assert.Equal(t, "2024-01-15", updated.Date)
	assert.Equal(t, domain.TypeDeadline, updated.Type)
}

func TestUpdate_RejectsInvalidEnums(t *testing.T) {
	uc := newUsecase()

	created, err := uc.CreateTask("user-1", "Study", "2024-01-15", domain.TypeTask)
	require.NoError(t, err)

	_, err = uc.UpdateTask("user-1", created.ID, TaskUpdateRequest{Status: strPtr("archived")})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = uc.UpdateTask("user-1", created.ID, TaskUpdateRequest{Type: strPtr("chore")})
	require.ErrorAs(t, err, &vErr)

	// nothing leaked through
	got, err := uc.GetTaskByID("user-1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, domain.TypeTask, got.Type)
}

func TestUpdate_ForeignTask(t *testing.T) {
	uc := newUsecase()

	created, err := uc.CreateTask("owner", "Study", "2024-01-15", domain.TypeTask)
	require.NoError(t, err)

	_, err = uc.UpdateTask("intruder", created.ID, TaskUpdateRequest{Status: strPtr("done")})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestDelete(t *testing.T) {
	uc := newUsecase()

	created, err := uc.CreateTask("user-1", "Study", "2024-01-15", domain.TypeTask)
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask("user-1", created.ID))

	_, err = uc.GetTaskByID("user-1", created.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// deleting again is an error, not a no-op
	assert.ErrorIs(t, uc.DeleteTask("user-1", created.ID), domain.ErrTaskNotFound)
}

func TestDelete_ForeignTask(t *testing.T) {
	uc := newUsecase()

	created, err := uc.CreateTask("owner", "Study", "2024-01-15", domain.TypeTask)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteTask("intruder", created.ID), domain.ErrTaskNotFound)

	_, err = uc.GetTaskByID("owner", created.ID)
	assert.NoError(t, err)
}

func TestGetUserTasks_Filters(t *testing.T) {
	uc := newUsecase()

	_, err := uc.CreateTask("user-1", "Christmas", "2024-12-25", domain.TypeHoliday)
	require.NoError(t, err)
	_, err = uc.CreateTask("user-1", "Final exam", "2024-12-25", domain.TypeDeadline)
	require.NoError(t, err)
	_, err = uc.CreateTask("user-1", "New Year", "2025-01-01", domain.TypeHoliday)
	require.NoError(t, err)
	_, err = uc.CreateTask("user-2", "Someone else's holiday", "2024-12-25", domain.TypeHoliday)
	require.NoError(t, err)

	holidays, err := uc.GetUserTasks("user-1", repository.TaskFilter{Type: domain.TypeHoliday})
	require.NoError(t, err)
	require.Len(t, holidays, 2)
	for _, task := range holidays {
		assert.Equal(t, "user-1", task.UserID)
		assert.Equal(t, domain.TypeHoliday, task.Type)
	}

	byDate, err := uc.GetUserTasks("user-1", repository.TaskFilter{Date: "2024-12-25"})
	require.NoError(t, err)
	assert.Len(t, byDate, 2)

	combined, err := uc.GetUserTasks("user-1", repository.TaskFilter{Date: "2024-12-25", Type: domain.TypeHoliday})
	require.NoError(t, err)
	require.Len(t, combined, 1)
	assert.Equal(t, "Christmas", combined[0].Title)

	byQuery, err := uc.GetUserTasks("user-1", repository.TaskFilter{Query: "year"})
	require.NoError(t, err)
	require.Len(t, byQuery, 1)
	assert.Equal(t, "New Year", byQuery[0].Title)
}

func TestGetUserTasks_OrderedByDate(t *testing.T) {
	uc := newUsecase()

	_, err := uc.CreateTask("user-1", "Later", "2024-06-01", domain.TypeTask)
	require.NoError(t, err)
	_, err = uc.CreateTask("user-1", "Earlier", "2024-01-01", domain.TypeTask)
	require.NoError(t, err)

	tasks, err := uc.GetUserTasks("user-1", repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Earlier", tasks[0].Title)
	assert.Equal(t, "Later", tasks[1].Title)
}

func TestGetUserTasks_InvalidFilter(t *testing.T) {
	uc := newUsecase()

	var vErr *domain.ValidationError
	_, err := uc.GetUserTasks("user-1", repository.TaskFilter{Type: "chore"})
	require.ErrorAs(t, err, &vErr)

	_, err = uc.GetUserTasks("user-1", repository.TaskFilter{Date: "not-a-date"})
	require.ErrorAs(t, err, &vErr)
}
