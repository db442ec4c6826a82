package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteItemInput contains the parameters for deleting an item.
// ID takes precedence over Description when set.
type DeleteItemInput struct {
	Description string // Exact description of the item
	ID          string // Generated item ID (optional)
}

// DeleteItemOutput contains the result of deleting an item.
type DeleteItemOutput struct {
	Found bool // False when no item matched; nothing changed
}

// DeleteItem is the use case for removing an item.
type DeleteItem struct {
	items  *domain.Collection
	logger domain.Logger
}

// NewDeleteItem creates a new DeleteItem use case.
func NewDeleteItem(items *domain.Collection, logger domain.Logger) *DeleteItem {
	return &DeleteItem{
		items:  items,
		logger: logger,
	}
}

// Execute removes the first matching item. A miss is not an error.
func (uc *DeleteItem) Execute(_ context.Context, in DeleteItemInput) (*DeleteItemOutput, error) {
	key := in.Description
	var found bool
	if in.ID != "" {
		key = in.ID
		found = uc.items.DeleteByID(in.ID)
	} else {
		found = uc.items.Delete(in.Description)
	}

	if uc.logger != nil {
		if found {
			uc.logger.Info("item", fmt.Sprintf("deleted %q", key))
		} else {
			uc.logger.Warn("item", fmt.Sprintf("delete: no item matches %q", key))
		}
	}

	return &DeleteItemOutput{Found: found}, nil
}
