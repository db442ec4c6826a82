package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// UndoInput contains the parameters for undoing the last action.
type UndoInput struct{}

// UndoOutput contains the result of an undo.
type UndoOutput struct {
	Remaining int  // Live item count after the undo
	Undone    bool // False when there was nothing to undo
}

// Undo is the use case for reverting the last add, complete or delete.
type Undo struct {
	items  *domain.Collection
	logger domain.Logger
}

// NewUndo creates a new Undo use case.
func NewUndo(items *domain.Collection, logger domain.Logger) *Undo {
	return &Undo{
		items:  items,
		logger: logger,
	}
}

// Execute restores the previous state. Undo with empty history is a no-op.
func (uc *Undo) Execute(_ context.Context, _ UndoInput) (*UndoOutput, error) {
	undone := uc.items.Undo()

	if uc.logger != nil {
		if undone {
			uc.logger.Info("history", fmt.Sprintf("undo: %d items, %d snapshots left", uc.items.Len(), uc.items.HistoryLen()))
		} else {
			uc.logger.Debug("history", "undo: nothing to undo")
		}
	}

	return &UndoOutput{
		Remaining: uc.items.Len(),
		Undone:    undone,
	}, nil
}
