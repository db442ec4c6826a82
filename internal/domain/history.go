package domain

import "slices"

// Snapshot is an immutable capture of the item sequence.
// The backing slice is shared with the Collection that produced it, which
// never writes to a slice after publishing it.
type Snapshot struct {
	items []Item
}

// History is an append-only stack of snapshots, popped by undo.
// With a positive limit the oldest snapshot is evicted into base, which is
// the state restored once every retained snapshot has been popped.
type History struct {
	base      Snapshot
	snapshots []Snapshot
	limit     int
}

// NewHistory creates an empty history. limit <= 0 means unbounded.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push appends s, evicting the oldest snapshot when over the limit.
func (h *History) Push(s Snapshot) {
	h.snapshots = append(h.snapshots, s)
	if h.limit > 0 && len(h.snapshots) > h.limit {
		h.base = h.snapshots[0]
		h.snapshots = slices.Delete(h.snapshots, 0, 1)
	}
}

// Pop removes the most recent snapshot. It returns false when empty.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.snapshots) == 0 {
		return Snapshot{}, false
	}
	last := h.snapshots[len(h.snapshots)-1]
	h.snapshots = slices.Delete(h.snapshots, len(h.snapshots)-1, len(h.snapshots))
	return last, true
}

// Current returns the most recent snapshot, or the base when empty.
func (h *History) Current() Snapshot {
	if len(h.snapshots) == 0 {
		return h.base
	}
	return h.snapshots[len(h.snapshots)-1]
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}
