package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask_Valid(t *testing.T) {
	task, err := NewTask("user-1", "Study for exam", "2024-01-15", TypeDeadline, "")
	require.NoError(t, err)

	assert.Equal(t, "user-1", task.UserID)
	assert.Equal(t, "Study for exam", task.Title)
	assert.Equal(t, "2024-01-15", task.Date)
	assert.Equal(t, TypeDeadline, task.Type)
	assert.Equal(t, StatusPending, task.Status)
	assert.Equal(t, SourceLocal, task.Source)
}

func TestNewTask_DefaultsTypeToTask(t *testing.T) {
	task, err := NewTask("user-1", "Buy books", "2024-02-01", "", "")
	require.NoError(t, err)
	assert.Equal(t, TypeTask, task.Type)
}

func TestNewTask_TrimsTitle(t *testing.T) {
	task, err := NewTask("user-1", "  Seminar  ", "2024-02-01", TypeEvent, "")
	require.NoError(t, err)
	assert.Equal(t, "Seminar", task.Title)
}

func TestNewTask_EmptyTitle(t *testing.T) {
	_, err := NewTask("user-1", "   ", "2024-01-15", TypeTask, "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, "title", vErr.Fields[0].Field)
}

func TestNewTask_InvalidDate(t *testing.T) {
	for _, date := range []string{"2024-13-01", "2024-02-30", "15.01.2024", "not-a-date", ""} {
		_, err := NewTask("user-1", "Study", date, TypeTask, "")
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr, "date %q should be rejected", date)
		assert.Equal(t, "date", vErr.Fields[0].Field)
	}
}

func TestNewTask_InvalidType(t *testing.T) {
	_, err := NewTask("user-1", "Study", "2024-01-15", "chore", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Fields[0].Field)
}

func TestNewTask_ReportsEveryInvalidField(t *testing.T) {
	_, err := NewTask("user-1", "", "nope", "chore", "")
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 3)

	fields := make([]string, len(vErr.Fields))
	for i, f := range vErr.Fields {
		fields[i] = f.Field
	}
	assert.ElementsMatch(t, []string{"title", "date", "type"}, fields)
}

func TestValidTaskStatus(t *testing.T) {
	assert.True(t, ValidTaskStatus(StatusPending))
	assert.True(t, ValidTaskStatus(StatusDone))
	assert.False(t, ValidTaskStatus("todo"))
	assert.False(t, ValidTaskStatus(""))
}
