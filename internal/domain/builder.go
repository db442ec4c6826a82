package domain

// TaskBuilder configures a Task step by step. Setters return the builder so
// calls chain in any order; a step that is skipped leaves the field at its
// default. The builder is single-use: Build returns the same *Task each time.
type TaskBuilder struct {
	task *Task
	err  error
}

// NewTaskBuilder starts a task with the given description.
func NewTaskBuilder(description string) *TaskBuilder {
	return &TaskBuilder{task: NewTask(description)}
}

// WithID assigns the task identifier.
func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.setID(id)
	return b
}

// SetDueDate parses the due date; see Item.SetDueDate.
func (b *TaskBuilder) SetDueDate(text string) *TaskBuilder {
	b.record(b.task.SetDueDate(text))
	return b
}

// SetTags splits text on commas; see Task.SetTags.
func (b *TaskBuilder) SetTags(text string) *TaskBuilder {
	b.task.SetTags(text)
	return b
}

// SetPriority stores p verbatim.
func (b *TaskBuilder) SetPriority(p int) *TaskBuilder {
	b.task.SetPriority(p)
	return b
}

// SetReminder parses the reminder; see Item.SetReminder.
func (b *TaskBuilder) SetReminder(text string) *TaskBuilder {
	b.record(b.task.SetReminder(text))
	return b
}

// Err returns the first error recorded by a setter.
func (b *TaskBuilder) Err() error {
	return b.err
}

// Build returns the task and the first setter error, if any.
func (b *TaskBuilder) Build() (*Task, error) {
	return b.task, b.err
}

func (b *TaskBuilder) record(err error) {
	if b.err == nil {
		b.err = err
	}
}
