package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// Collection owns the live item sequence and its undo history.
// Every successful add, complete or delete records exactly one snapshot of
// the resulting state; lookups that miss record nothing.
//
// The live slice is copy-on-write: a mutation builds a new slice and the old
// one stays valid as a snapshot. Views and sorts hand out clones, so changing
// a returned item never reaches the collection or its history.
type Collection struct {
	ids     IDGenerator
	history *History
	items   []Item
}

// CollectionOption configures a Collection.
type CollectionOption func(*Collection)

// WithHistoryLimit caps the number of retained snapshots. n <= 0 is unbounded.
func WithHistoryLimit(n int) CollectionOption {
	return func(c *Collection) {
		c.history = NewHistory(n)
	}
}

// WithIDGenerator sets the generator used for items added without an ID.
func WithIDGenerator(g IDGenerator) CollectionOption {
	return func(c *Collection) {
		c.ids = g
	}
}

// NewCollection creates an empty collection with an empty history.
func NewCollection(opts ...CollectionOption) *Collection {
	c := &Collection{
		ids:     &SequentialIDs{},
		history: NewHistory(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends item and saves state. Items without an ID get one.
func (c *Collection) Add(item Item) error {
	if item == nil {
		return ErrNilItem
	}
	if item.ID() == "" {
		item.setID(c.ids.NewID(item.Kind()))
	}
	c.items = append(slices.Clip(c.items), item)
	c.saveState()
	return nil
}

// MarkCompleted completes the first item whose description equals
// description exactly. It returns false, saving nothing, on a miss.
func (c *Collection) MarkCompleted(description string) bool {
	return c.completeAt(c.indexOf(byDescription(description)))
}

// MarkCompletedByID is MarkCompleted keyed by item ID.
func (c *Collection) MarkCompletedByID(id string) bool {
	return c.completeAt(c.indexOf(byID(id)))
}

// Delete removes the first item whose description equals description
// exactly. It returns false, saving nothing, on a miss.
func (c *Collection) Delete(description string) bool {
	return c.deleteAt(c.indexOf(byDescription(description)))
}

// DeleteByID is Delete keyed by item ID.
func (c *Collection) DeleteByID(id string) bool {
	return c.deleteAt(c.indexOf(byID(id)))
}

// View returns clones of the items passing filter in insertion order.
func (c *Collection) View(filter ViewFilter) []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if filter.Matches(it) {
			out = append(out, it.Clone())
		}
	}
	return out
}

// SortByPriority returns the items ordered by ascending priority. Items with
// equal priority keep their insertion order.
func (c *Collection) SortByPriority() []Item {
	out := c.View(FilterAll)
	slices.SortStableFunc(out, func(a, b Item) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	return out
}

// SortByDueDate returns the items ordered by ascending due date. Items
// without a due date sort last; ties keep their insertion order.
func (c *Collection) SortByDueDate() []Item {
	out := c.View(FilterAll)
	slices.SortStableFunc(out, compareDueDate)
	return out
}

// Sorted dispatches on key.
func (c *Collection) Sorted(key SortKey) ([]Item, error) {
	switch key {
	case SortNone, "":
		return c.View(FilterAll), nil
	case SortPriority:
		return c.SortByPriority(), nil
	case SortDueDate:
		return c.SortByDueDate(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, key)
	}
}

// Undo discards the latest snapshot and restores the one before it, or the
// initial empty state once none remain. It returns false when there is
// nothing to undo. Undo itself records no snapshot.
func (c *Collection) Undo() bool {
	if _, ok := c.history.Pop(); !ok {
		return false
	}
	c.items = c.history.Current().items
	return true
}

// Len returns the number of live items.
func (c *Collection) Len() int {
	return len(c.items)
}

// HistoryLen returns the number of retained snapshots.
func (c *Collection) HistoryLen() int {
	return c.history.Len()
}

func (c *Collection) saveState() {
	c.history.Push(Snapshot{items: c.items})
}

func (c *Collection) completeAt(i int) bool {
	if i < 0 {
		return false
	}
	// Complete a copy so earlier snapshots keep the pending item.
	done := c.items[i].Clone()
	done.MarkCompleted()
	next := slices.Clone(c.items)
	next[i] = done
	c.items = next
	c.saveState()
	return true
}

func (c *Collection) deleteAt(i int) bool {
	if i < 0 {
		return false
	}
	c.items = slices.Delete(slices.Clone(c.items), i, i+1)
	c.saveState()
	return true
}

func (c *Collection) indexOf(match func(Item) bool) int {
	return slices.IndexFunc(c.items, match)
}

func byDescription(description string) func(Item) bool {
	return func(it Item) bool { return it.Description() == description }
}

func byID(id string) func(Item) bool {
	return func(it Item) bool { return it.ID() == id }
}

func compareDueDate(a, b Item) int {
	ad, aok := a.DueDate()
	bd, bok := b.DueDate()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return 1
	case !bok:
		return -1
	default:
		return ad.Compare(bd)
	}
}
