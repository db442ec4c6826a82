package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ListItemsInput contains the parameters for listing items.
type ListItemsInput struct {
	Filter string // "all", "completed" or "pending" ("" = all)
	Sort   string // "none", "priority" or "due" ("" = none)
}

// ListItemsOutput contains the result of listing items.
type ListItemsOutput struct {
	Filter domain.ViewFilter // Parsed filter
	Sort   domain.SortKey    // Parsed sort key
	Items  []domain.Item     // Matching items in display order
}

// ListItems is the use case for viewing and sorting items.
type ListItems struct {
	items *domain.Collection
}

// NewListItems creates a new ListItems use case.
func NewListItems(items *domain.Collection) *ListItems {
	return &ListItems{items: items}
}

// Execute returns the items passing the filter, in the requested order.
func (uc *ListItems) Execute(_ context.Context, in ListItemsInput) (*ListItemsOutput, error) {
	filter, err := domain.ParseViewFilter(in.Filter)
	if err != nil {
		return nil, err
	}
	key, err := domain.ParseSortKey(in.Sort)
	if err != nil {
		return nil, err
	}

	sorted, err := uc.items.Sorted(key)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(sorted))
	for _, it := range sorted {
		if filter.Matches(it) {
			items = append(items, it)
		}
	}

	return &ListItemsOutput{
		Filter: filter,
		Sort:   key,
		Items:  items,
	}, nil
}
