package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ImportItemsInput contains the parameters for importing items.
type ImportItemsInput struct {
	DryRun bool // If true, read and validate without adding
}

// ImportItemsOutput contains the result of importing items.
type ImportItemsOutput struct {
	Items []domain.Item // Imported items (or items that would be imported in dry-run mode)
}

// ImportItems is the use case for preloading items from an ItemSource.
type ImportItems struct {
	items  *domain.Collection
	source domain.ItemSource
	logger domain.Logger
}

// NewImportItems creates a new ImportItems use case.
func NewImportItems(items *domain.Collection, source domain.ItemSource, logger domain.Logger) *ImportItems {
	return &ImportItems{
		items:  items,
		source: source,
		logger: logger,
	}
}

// Execute reads every item from the source and adds them in order, one
// snapshot per item. Nothing is added when reading fails.
func (uc *ImportItems) Execute(ctx context.Context, in ImportItemsInput) (*ImportItemsOutput, error) {
	items, err := uc.source.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}

	if in.DryRun {
		return &ImportItemsOutput{Items: items}, nil
	}

	for i, it := range items {
		if err := uc.items.Add(it); err != nil {
			return nil, fmt.Errorf("import item %d: %w", i+1, err)
		}
	}

	if uc.logger != nil {
		uc.logger.Info("item", fmt.Sprintf("imported %d items", len(items)))
	}

	return &ImportItemsOutput{Items: items}, nil
}
