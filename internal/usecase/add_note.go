package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// AddNoteInput contains the parameters for adding a note.
type AddNoteInput struct {
	Description string // Note description (required)
	Content     string // Free text
}

// AddNoteOutput contains the result of adding a note.
type AddNoteOutput struct {
	Note *domain.Note // The added note
}

// AddNote is the use case for adding a note to the collection.
type AddNote struct {
	items  *domain.Collection
	logger domain.Logger
}

// NewAddNote creates a new AddNote use case.
func NewAddNote(items *domain.Collection, logger domain.Logger) *AddNote {
	return &AddNote{
		items:  items,
		logger: logger,
	}
}

// Execute adds a new note.
func (uc *AddNote) Execute(_ context.Context, in AddNoteInput) (*AddNoteOutput, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrEmptyDescription
	}

	note := domain.NewNote(in.Description, in.Content)
	if err := uc.items.Add(note); err != nil {
		return nil, fmt.Errorf("add note: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("item", fmt.Sprintf("added note %s: %s", note.ID(), note.Description()))
	}

	return &AddNoteOutput{Note: note}, nil
}
