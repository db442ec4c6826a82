package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// CompleteItemInput contains the parameters for completing an item.
// ID takes precedence over Description when set.
type CompleteItemInput struct {
	Description string // Exact description of the item
	ID          string // Generated item ID (optional)
}

// CompleteItemOutput contains the result of completing an item.
type CompleteItemOutput struct {
	Found bool // False when no item matched; nothing changed
}

// CompleteItem is the use case for marking an item completed.
type CompleteItem struct {
	items  *domain.Collection
	logger domain.Logger
}

// NewCompleteItem creates a new CompleteItem use case.
func NewCompleteItem(items *domain.Collection, logger domain.Logger) *CompleteItem {
	return &CompleteItem{
		items:  items,
		logger: logger,
	}
}

// Execute marks the first matching item completed. A miss is not an error.
func (uc *CompleteItem) Execute(_ context.Context, in CompleteItemInput) (*CompleteItemOutput, error) {
	key := in.Description
	var found bool
	if in.ID != "" {
		key = in.ID
		found = uc.items.MarkCompletedByID(in.ID)
	} else {
		found = uc.items.MarkCompleted(in.Description)
	}

	if uc.logger != nil {
		if found {
			uc.logger.Info("item", fmt.Sprintf("completed %q", key))
		} else {
			uc.logger.Warn("item", fmt.Sprintf("complete: no item matches %q", key))
		}
	}

	return &CompleteItemOutput{Found: found}, nil
}
