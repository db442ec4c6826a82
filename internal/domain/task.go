package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Task is an Item with tags, built through TaskBuilder.
type Task struct {
	Tags []string
	itemBase
}

// NewTask creates a pending task with no priority, dates or tags.
func NewTask(description string) *Task {
	return &Task{itemBase: itemBase{description: description}}
}

// Kind returns KindTask.
func (t *Task) Kind() Kind { return KindTask }

// SetTags splits text on commas. Whitespace is kept and empty segments are
// not dropped, so "" yields a single empty tag.
func (t *Task) SetTags(text string) {
	t.Tags = strings.Split(text, ",")
}

// Display formats the task as
// "<description> - <status>[, Priority: p][, Due: ts][, Reminder: ts]".
func (t *Task) Display() string {
	var b strings.Builder
	b.WriteString(t.statusPrefix())
	if t.priority != 0 {
		fmt.Fprintf(&b, ", Priority: %d", t.priority)
	}
	if t.due != nil {
		b.WriteString(", Due: " + FormatTimestamp(*t.due))
	}
	if t.reminder != nil {
		b.WriteString(", Reminder: " + FormatTimestamp(*t.reminder))
	}
	return b.String()
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() Item {
	c := *t
	c.Tags = slices.Clone(t.Tags)
	return &c
}
