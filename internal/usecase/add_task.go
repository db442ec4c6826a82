// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
// Date fields take TimestampHint text; blank means none.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Description string // Task description (required)
	DueDate     string // Due date text (optional)
	Tags        string // Comma-separated tags (optional)
	Reminder    string // Reminder text (optional)
	Priority    int    // Priority (0 = none)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task *domain.Task // The added task
}

// AddTask is the use case for adding a task to the collection.
type AddTask struct {
	items  *domain.Collection
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(items *domain.Collection, logger domain.Logger) *AddTask {
	return &AddTask{
		items:  items,
		logger: logger,
	}
}

// Execute builds the task, checks the reminder against the due date and adds it.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrEmptyDescription
	}

	task, err := domain.NewTaskBuilder(in.Description).
		SetDueDate(in.DueDate).
		SetTags(in.Tags).
		SetPriority(in.Priority).
		SetReminder(in.Reminder).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build task: %w", err)
	}
	if err := domain.CheckReminder(task); err != nil {
		return nil, err
	}

	if err := uc.items.Add(task); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("item", fmt.Sprintf("added task %s: %s", task.ID(), task.Description()))
	}

	return &AddTaskOutput{Task: task}, nil
}
