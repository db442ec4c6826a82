package domain

import "fmt"

// ViewFilter selects items by completion state.
type ViewFilter string

const (
	FilterAll       ViewFilter = "all"
	FilterCompleted ViewFilter = "completed"
	FilterPending   ViewFilter = "pending"
)

// ParseViewFilter converts user input into a ViewFilter. Empty input means all.
func ParseViewFilter(s string) (ViewFilter, error) {
	switch ViewFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterCompleted, FilterPending:
		return ViewFilter(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want all, completed or pending)", ErrInvalidFilter, s)
	}
}

// Matches reports whether it passes the filter.
func (f ViewFilter) Matches(it Item) bool {
	switch f {
	case FilterCompleted:
		return it.IsCompleted()
	case FilterPending:
		return !it.IsCompleted()
	default:
		return true
	}
}

// EmptyMessage is shown when a view under this filter has no items.
func (f ViewFilter) EmptyMessage() string {
	switch f {
	case FilterCompleted:
		return "There are no completed tasks in the list."
	case FilterPending:
		return "There are no pending tasks in the list."
	default:
		return "The list is empty."
	}
}

// SortKey selects the ordering of a listing.
type SortKey string

const (
	SortNone     SortKey = "none"
	SortPriority SortKey = "priority"
	SortDueDate  SortKey = "due"
)

// ParseSortKey converts user input into a SortKey. Empty input means none.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "", SortNone:
		return SortNone, nil
	case SortPriority, SortDueDate:
		return SortKey(s), nil
	default:
		return "", fmt.Errorf("%w: %q (want none, priority or due)", ErrInvalidSortKey, s)
	}
}
