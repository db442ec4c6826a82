package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskBuilder_Chain(t *testing.T) {
	task, err := NewTaskBuilder("Buy milk").
		SetReminder("2024-01-09 08:00 PM").
		SetPriority(2).
		SetTags("home,errands").
		SetDueDate("2024-01-10 09:00 AM").
		WithID("tsk_1").
		Build()

	require.NoError(t, err)
	assert.Equal(t, "tsk_1", task.ID())
	assert.Equal(t, "Buy milk", task.Description())
	assert.Equal(t, 2, task.Priority())
	assert.Equal(t, []string{"home", "errands"}, task.Tags)
	_, hasDue := task.DueDate()
	assert.True(t, hasDue)
	_, hasReminder := task.Reminder()
	assert.True(t, hasReminder)
}

func TestTaskBuilder_OmittedStepsKeepDefaults(t *testing.T) {
	task, err := NewTaskBuilder("Call bank").SetPriority(1).Build()

	require.NoError(t, err)
	assert.Equal(t, 1, task.Priority())
	assert.Nil(t, task.Tags)
	_, hasDue := task.DueDate()
	assert.False(t, hasDue)
	assert.False(t, task.IsCompleted())
}

func TestTaskBuilder_RecordsFirstError(t *testing.T) {
	b := NewTaskBuilder("t").
		SetDueDate("not a date").
		SetReminder("also not a date").
		SetPriority(3)

	require.Error(t, b.Err())
	var fe *FormatError
	require.ErrorAs(t, b.Err(), &fe)
	assert.Equal(t, "due date", fe.Field)

	task, err := b.Build()
	assert.ErrorIs(t, err, ErrInvalidTimestamp)
	assert.Equal(t, 3, task.Priority(), "later valid steps still apply")
}

func TestTaskBuilder_BuildReturnsSameTask(t *testing.T) {
	b := NewTaskBuilder("t")
	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)

	assert.Same(t, first, second)
}
