package seedfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
items:
  - description: Submit report
    due: 2024-01-15 05:30 PM
    reminder: 2024-01-15 9:00 am
    tags: work,urgent
    priority: 1
  - kind: note
    description: Meeting notes
    content: Discuss Q1 goals
    completed: true
  - kind: task
    description: Call mom
`

func TestParse(t *testing.T) {
	items, err := Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, items, 3)

	task, ok := items[0].(*domain.Task)
	require.True(t, ok)
	assert.Equal(t, "Submit report", task.Description())
	assert.Equal(t, []string{"work", "urgent"}, task.Tags)
	assert.Equal(t, 1, task.Priority())
	due, ok := task.DueDate()
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 17, 30, 0, 0, time.Local), due)
	reminder, ok := task.Reminder()
	require.True(t, ok)
	assert.Equal(t, 9, reminder.Hour())
	assert.False(t, task.IsCompleted())

	note, ok := items[1].(*domain.Note)
	require.True(t, ok)
	assert.Equal(t, "Discuss Q1 goals", note.Content)
	assert.True(t, note.IsCompleted())

	plain, ok := items[2].(*domain.Task)
	require.True(t, ok)
	assert.Nil(t, plain.Tags)
	_, hasDue := plain.DueDate()
	assert.False(t, hasDue)

	for _, it := range items {
		assert.Empty(t, it.ID(), "IDs are assigned by the collection")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "empty file",
			content: "  \n",
			wantErr: domain.ErrEmptyFile,
		},
		{
			name:    "no items",
			content: "items: []\n",
			wantErr: domain.ErrNoItemsInFile,
		},
		{
			name:    "missing description",
			content: "items:\n  - description: ok\n  - priority: 2\n",
			wantErr: domain.ErrEmptyDescription,
			wantMsg: "item 2",
		},
		{
			name:    "invalid due date",
			content: "items:\n  - description: x\n    due: tomorrow\n",
			wantErr: domain.ErrInvalidTimestamp,
			wantMsg: "item 1",
		},
		{
			name:    "invalid note reminder",
			content: "items:\n  - kind: note\n    description: x\n    reminder: 2024-13-01 01:00 PM\n",
			wantErr: domain.ErrInvalidTimestamp,
		},
		{
			name:    "reminder after due",
			content: "items:\n  - description: x\n    due: 2024-01-15 05:30 PM\n    reminder: 2024-01-16 05:30 PM\n",
			wantErr: domain.ErrReminderAfterDue,
		},
		{
			name:    "unknown kind",
			content: "items:\n  - kind: event\n    description: x\n",
			wantErr: domain.ErrInvalidItemKind,
		},
		{
			name:    "unknown key",
			content: "items:\n  - description: x\n    colour: red\n",
			wantMsg: "decode yaml",
		},
		{
			name:    "malformed yaml",
			content: "items: [\n",
			wantMsg: "decode yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Nil(t, items)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestFile_Items(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f := New(path)

	items, err := f.Items(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestFile_Items_Missing(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml")).Items(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFile_Items_ParseErrorNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - due: x\n"), 0o644))

	_, err := New(path).Items(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
