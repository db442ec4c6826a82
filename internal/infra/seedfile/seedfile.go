// Package seedfile reads the YAML file of items preloaded into a session.
//
// Format:
//
//	items:
//	  - description: Submit report
//	    due: 2024-01-15 05:30 PM
//	    reminder: 2024-01-15 09:00 AM
//	    tags: work,urgent
//	    priority: 1
//	  - kind: note
//	    description: Meeting notes
//	    content: Discuss Q1 goals
//	    completed: true
//
// kind defaults to task. Timestamps use the same format as the console menu.
package seedfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/runoshun/todo/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure File implements domain.ItemSource.
var _ domain.ItemSource = (*File)(nil)

// File is an ItemSource backed by a YAML file on disk.
type File struct {
	path string
}

// New creates a File reading from path.
func New(path string) *File {
	return &File{path: path}
}

// Items reads and parses the file.
func (f *File) Items(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return items, nil
}

// document is the top-level YAML structure.
type document struct {
	Items []entry `yaml:"items"`
}

// entry is one item in the seed file.
// Fields are ordered to minimize memory padding.
type entry struct {
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
	Content     string `yaml:"content"`
	Due         string `yaml:"due"`
	Reminder    string `yaml:"reminder"`
	Tags        string `yaml:"tags"`
	Priority    int    `yaml:"priority"`
	Completed   bool   `yaml:"completed"`
}

// Parse decodes seed file content into items, in file order.
// Unknown keys are rejected. Errors name the 1-based entry they come from.
func Parse(data []byte) ([]domain.Item, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(doc.Items) == 0 {
		return nil, domain.ErrNoItemsInFile
	}

	items := make([]domain.Item, 0, len(doc.Items))
	for i, e := range doc.Items {
		item, err := e.toItem()
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (e entry) toItem() (domain.Item, error) {
	if e.Description == "" {
		return nil, domain.ErrEmptyDescription
	}
	kind, err := domain.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}

	var item domain.Item
	switch kind {
	case domain.KindNote:
		note := domain.NewNote(e.Description, e.Content)
		note.SetPriority(e.Priority)
		if err := note.SetDueDate(e.Due); err != nil {
			return nil, err
		}
		if err := note.SetReminder(e.Reminder); err != nil {
			return nil, err
		}
		item = note
	default:
		b := domain.NewTaskBuilder(e.Description).
			SetDueDate(e.Due).
			SetReminder(e.Reminder).
			SetPriority(e.Priority)
		if e.Tags != "" {
			b.SetTags(e.Tags)
		}
		task, err := b.Build()
		if err != nil {
			return nil, err
		}
		item = task
	}

	if err := domain.CheckReminder(item); err != nil {
		return nil, err
	}
	if e.Completed {
		item.MarkCompleted()
	}
	return item, nil
}
