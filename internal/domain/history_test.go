package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snap(descs ...string) Snapshot {
	items := make([]Item, 0, len(descs))
	for _, d := range descs {
		items = append(items, NewTask(d))
	}
	return Snapshot{items: items}
}

func TestHistory_PushPop(t *testing.T) {
	h := NewHistory(0)
	_, ok := h.Pop()
	assert.False(t, ok)
	assert.Zero(t, len(h.Current().items))

	h.Push(snap("a"))
	h.Push(snap("a", "b"))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 2, len(h.Current().items))

	last, ok := h.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, len(last.items))
	assert.Equal(t, 1, len(h.Current().items))

	_, ok = h.Pop()
	require.True(t, ok)
	assert.Zero(t, h.Len())
	assert.Zero(t, len(h.Current().items), "base is empty when nothing was evicted")
}

func TestHistory_LimitEvictsIntoBase(t *testing.T) {
	h := NewHistory(2)
	h.Push(snap("a"))
	h.Push(snap("a", "b"))
	h.Push(snap("a", "b", "c"))

	assert.Equal(t, 2, h.Len())
	_, _ = h.Pop()
	_, _ = h.Pop()
	assert.Equal(t, 1, len(h.Current().items), "evicted snapshot becomes the base")
}
