// Package domain contains core business entities and interfaces.
package domain

import (
	"fmt"
	"time"
)

// Kind identifies the concrete variant of an Item.
type Kind string

const (
	KindTask Kind = "task"
	KindNote Kind = "note"
)

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindTask, KindNote:
		return Kind(s), nil
	case "":
		return KindTask, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidItemKind, s)
	}
}

// Item is a trackable entry. It is implemented only by *Task and *Note;
// callers that need variant data switch on the concrete type.
type Item interface {
	ID() string
	Kind() Kind
	Description() string
	Status() Status
	IsCompleted() bool
	Priority() int
	DueDate() (time.Time, bool)
	Reminder() (time.Time, bool)

	// MarkCompleted sets the item completed. It is idempotent.
	MarkCompleted()
	// SetPriority stores p verbatim; 0 means no priority.
	SetPriority(p int)
	// SetDueDate parses text in TimestampHint format. Blank text clears the
	// due date; invalid text returns a *FormatError and leaves it unchanged.
	SetDueDate(text string) error
	// SetReminder follows the SetDueDate contract.
	SetReminder(text string) error

	// Display returns a one-line summary of the item.
	Display() string
	// Clone returns a deep copy that shares nothing mutable with the receiver.
	Clone() Item

	setID(id string)
}

// itemBase holds the fields shared by every Item variant.
// Fields are ordered to minimize memory padding.
type itemBase struct {
	due         *time.Time
	reminder    *time.Time
	id          string
	description string
	priority    int
	completed   bool
}

func (b *itemBase) ID() string          { return b.id }
func (b *itemBase) Description() string { return b.description }
func (b *itemBase) IsCompleted() bool   { return b.completed }
func (b *itemBase) Priority() int       { return b.priority }
func (b *itemBase) Status() Status      { return StatusOf(b.completed) }

func (b *itemBase) DueDate() (time.Time, bool) {
	if b.due == nil {
		return time.Time{}, false
	}
	return *b.due, true
}

func (b *itemBase) Reminder() (time.Time, bool) {
	if b.reminder == nil {
		return time.Time{}, false
	}
	return *b.reminder, true
}

func (b *itemBase) MarkCompleted() { b.completed = true }

func (b *itemBase) SetPriority(p int) { b.priority = p }

func (b *itemBase) SetDueDate(text string) error {
	t, err := ParseTimestamp("due date", text)
	if err != nil {
		return err
	}
	b.due = t
	return nil
}

func (b *itemBase) SetReminder(text string) error {
	t, err := ParseTimestamp("reminder", text)
	if err != nil {
		return err
	}
	b.reminder = t
	return nil
}

func (b *itemBase) setID(id string) { b.id = id }

// statusPrefix renders "<description> - <status>".
func (b *itemBase) statusPrefix() string {
	return b.description + " - " + b.Status().Display()
}

// CheckReminder returns ErrReminderAfterDue when both dates are set and the
// reminder falls after the due date.
func CheckReminder(it Item) error {
	due, hasDue := it.DueDate()
	reminder, hasReminder := it.Reminder()
	if hasDue && hasReminder && reminder.After(due) {
		return fmt.Errorf("%w: reminder %s, due %s", ErrReminderAfterDue,
			FormatTimestamp(reminder), FormatTimestamp(due))
	}
	return nil
}
